// Package drivertest provides an in-memory driver.Session for exercising
// page objects without a browser.
package drivertest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/v0xg/devhub-listing/internal/driver"
	"github.com/v0xg/devhub-listing/internal/locator"
)

// Node is a fake DOM element. Zero value is a visible element with no text.
type Node struct {
	Value    string
	Attrs    map[string]string
	Checked  bool
	Hidden   bool
	Checkbox bool // clicking toggles Checked
	Children map[locator.Locator][]*Node

	// OnClick runs after the click has been applied.
	OnClick func()

	Clicks int
	Typed  []string
}

// Child returns the first child registered under loc, or nil.
func (n *Node) Child(loc locator.Locator) *Node {
	if kids := n.Children[loc]; len(kids) > 0 {
		return kids[0]
	}
	return nil
}

// Session maps locators to nodes. Tests mutate it to model UI transitions.
type Session struct {
	URL     string
	Nodes   map[locator.Locator][]*Node
	Visited []string

	// NavigateErr, when set, is returned by Navigate.
	NavigateErr error
	Shot        []byte
}

var _ driver.Session = (*Session)(nil)

// NewSession returns an empty page.
func NewSession() *Session {
	return &Session{Nodes: map[locator.Locator][]*Node{}}
}

// Set replaces the nodes matched by loc.
func (s *Session) Set(loc locator.Locator, nodes ...*Node) {
	s.Nodes[loc] = nodes
}

// Remove deletes every node matched by loc.
func (s *Session) Remove(loc locator.Locator) {
	delete(s.Nodes, loc)
}

// Get returns the first node matched by loc, or nil.
func (s *Session) Get(loc locator.Locator) *Node {
	if nodes := s.Nodes[loc]; len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

func (s *Session) Navigate(url string) error {
	if s.NavigateErr != nil {
		return s.NavigateErr
	}
	s.URL = url
	s.Visited = append(s.Visited, url)
	return nil
}

func (s *Session) Find(loc locator.Locator) (driver.Element, error) {
	n := s.Get(loc)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", driver.ErrElementNotFound, loc)
	}
	return &element{n: n}, nil
}

func (s *Session) FindAll(loc locator.Locator) ([]driver.Element, error) {
	var els []driver.Element
	for _, n := range s.Nodes[loc] {
		els = append(els, &element{n: n})
	}
	return els, nil
}

func (s *Session) Screenshot() ([]byte, error) {
	if s.Shot == nil {
		return nil, errors.New("no screenshot configured")
	}
	return s.Shot, nil
}

type element struct {
	n *Node
}

func (e *element) Text() (string, error) {
	return e.n.Value, nil
}

func (e *element) Attribute(name string) (string, error) {
	return e.n.Attrs[name], nil
}

func (e *element) Click() error {
	if e.n.Hidden {
		return errors.New("element is not visible")
	}
	e.n.Clicks++
	if e.n.Checkbox {
		e.n.Checked = !e.n.Checked
	}
	if e.n.OnClick != nil {
		e.n.OnClick()
	}
	return nil
}

func (e *element) Type(text string) error {
	e.n.Value = text
	e.n.Typed = append(e.n.Typed, text)
	return nil
}

func (e *element) Checked() (bool, error) {
	return e.n.Checked, nil
}

func (e *element) Visible() (bool, error) {
	return !e.n.Hidden, nil
}

func (e *element) Find(loc locator.Locator) (driver.Element, error) {
	c := e.n.Child(loc)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", driver.ErrElementNotFound, loc)
	}
	return &element{n: c}, nil
}

// Checkbox builds an <li> node holding a label and a checkbox input, found
// through the given relative locators.
func Checkbox(labelLoc, inputLoc locator.Locator, name string, checked bool) *Node {
	return &Node{
		Children: map[locator.Locator][]*Node{
			labelLoc: {{Value: name}},
			inputLoc: {{Checkbox: true, Checked: checked}},
		},
	}
}

// Joined renders values the way the listing page shows multi-value fields.
func Joined(values ...string) string {
	return strings.Join(values, " · ")
}
