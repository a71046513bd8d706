// Package driver adapts live browser sessions to the small surface the page
// objects need: find by locator, read, click, type.
package driver

import (
	"errors"

	"github.com/v0xg/devhub-listing/internal/locator"
)

// ErrElementNotFound is returned when a locator matches nothing.
var ErrElementNotFound = errors.New("element not found")

// textOf mirrors what a user sees: form controls report their value, never
// their placeholder. Playwright passes the element as el, Rod binds it to
// this.
const textOf = `function (el) {
	el = el || this;
	switch (el.tagName) {
	case 'INPUT':
	case 'TEXTAREA':
		return el.value;
	default:
		return el.innerText;
	}
}`

// Session is a live browser tab owned by the caller.
type Session interface {
	// Navigate loads url and waits for the load event.
	Navigate(url string) error
	// Find returns the first element matching loc without waiting.
	Find(loc locator.Locator) (Element, error)
	// FindAll returns every element matching loc; no match is not an error.
	FindAll(loc locator.Locator) ([]Element, error)
	// Screenshot captures the viewport as PNG.
	Screenshot() ([]byte, error)
}

// Element is a handle to one DOM element. Handles are short-lived; callers
// re-query the session instead of holding them across actions.
type Element interface {
	// Text is the displayed text; inputs report their value.
	Text() (string, error)
	// Attribute returns the attribute value, or "" when absent.
	Attribute(name string) (string, error)
	Click() error
	// Type clears the element and types text into it.
	Type(text string) error
	Checked() (bool, error)
	Visible() (bool, error)
	// Find returns the first descendant matching loc.
	Find(loc locator.Locator) (Element, error)
}

// Browser is a launched browser with one open tab.
type Browser interface {
	Session() Session
	Close() error
}
