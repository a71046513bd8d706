// Package locator describes how to find an element on a page.
package locator

import (
	"fmt"
	"strings"
)

// Strategy is the lookup method used by a Locator.
type Strategy string

const (
	CSS   Strategy = "css"
	ID    Strategy = "id"
	XPath Strategy = "xpath"
)

// Locator is a (strategy, selector) pair identifying at most one element.
type Locator struct {
	Strategy Strategy
	Value    string
}

// ByCSS returns a CSS selector locator.
func ByCSS(selector string) Locator {
	return Locator{Strategy: CSS, Value: selector}
}

// ByID returns a locator matching the element id exactly.
func ByID(id string) Locator {
	return Locator{Strategy: ID, Value: id}
}

// ByXPath returns an XPath locator.
func ByXPath(expr string) Locator {
	return Locator{Strategy: XPath, Value: expr}
}

// String renders the locator as "strategy=value" for logs and errors.
func (l Locator) String() string {
	return string(l.Strategy) + "=" + l.Value
}

// IsXPath reports whether the locator must be resolved with an XPath query.
func (l Locator) IsXPath() bool {
	return l.Strategy == XPath
}

var attrEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// CSS renders CSS and ID locators as a CSS selector. XPath locators have no
// CSS form and return an error.
func (l Locator) CSS() (string, error) {
	switch l.Strategy {
	case CSS:
		return l.Value, nil
	case ID:
		// attribute form tolerates ids that are not valid CSS identifiers
		return `[id="` + attrEscaper.Replace(l.Value) + `"]`, nil
	case XPath:
		return "", fmt.Errorf("xpath locator %q has no css form", l.Value)
	default:
		return "", fmt.Errorf("unknown locator strategy: %s", l.Strategy)
	}
}

// Selector renders the locator in the form driver backends accept: a CSS
// selector for CSS and ID, the raw expression for XPath.
func (l Locator) Selector() string {
	if l.IsXPath() {
		return l.Value
	}
	sel, err := l.CSS()
	if err != nil {
		return l.Value
	}
	return sel
}
