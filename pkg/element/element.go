// Package element wraps a browser locator with the helpers the table
// layer needs: input probing, attribute matching and disabled-state checks.
package element

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ensono/smarttable/pkg/validate"
)

// ErrNoMatch indicates no element satisfied an attribute search.
var ErrNoMatch = errors.New("no matching element")

// inputSelectors are the form-control tags probed by InnerInput, in the
// order they are tried.
var inputSelectors = []string{"input", "textarea", "select"}

// Element layers convenience behaviour on top of a Locator. The zero value
// is not usable; create one with New.
type Element struct {
	Locator
}

// New wraps a Locator in an Element.
func New(l Locator) *Element {
	if l == nil {
		panic("element: nil locator")
	}
	return &Element{Locator: l}
}

// Child resolves a child locator as an Element.
func (e *Element) Child(selector string) *Element {
	return New(e.Locator.Locator(selector))
}

// NthChild narrows the element to the match at the given index.
func (e *Element) NthChild(index int) *Element {
	return New(e.Nth(index))
}

// IsValid reports whether at least one element matches the locator.
func (e *Element) IsValid() (bool, error) {
	n, err := e.Count()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// HasChild reports whether a child matching the selector exists.
func (e *Element) HasChild(selector string) (bool, error) {
	return e.Child(selector).IsValid()
}

// InnerInput looks for a form control (input, textarea or select) inside
// this element. The second return value is false when none exists.
func (e *Element) InnerInput() (*Element, bool, error) {
	for _, selector := range inputSelectors {
		ok, err := e.HasChild(selector)
		if err != nil {
			return nil, false, fmt.Errorf("probing for %s: %w", selector, err)
		}
		if ok {
			return e.Child(selector), true, nil
		}
	}
	return nil, false, nil
}

// WithAttribute returns the first matching element whose named attribute
// satisfies the comparison against the required value. ErrNoMatch is
// returned when no element qualifies.
func (e *Element) WithAttribute(attribute, required string, method validate.Method) (*Element, error) {
	n, err := e.Count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		value, err := e.Nth(i).GetAttribute(attribute)
		if err != nil {
			return nil, fmt.Errorf("reading attribute %q: %w", attribute, err)
		}
		if validate.Compare(required, value, method).Passed() {
			return e.NthChild(i), nil
		}
	}
	return nil, fmt.Errorf("%w: no element with the value %q in the %q attribute", ErrNoMatch, required, attribute)
}

// IsDisabled reports whether this element is disabled: a present disabled
// attribute (empty or containing "true"), a class containing "disabled", or
// the engine reporting it as disabled.
func (e *Element) IsDisabled() (bool, error) {
	present, err := e.HasAttribute("disabled")
	if err != nil {
		return false, err
	}
	if present {
		value, err := e.GetAttribute("disabled")
		if err != nil {
			return false, err
		}
		if strings.TrimSpace(value) == "" || strings.Contains(value, "true") {
			return true, nil
		}
	}
	class, err := e.GetAttribute("class")
	if err != nil {
		return false, err
	}
	if strings.Contains(class, "disabled") {
		return true, nil
	}
	return e.Disabled()
}

// SelfOrAncestorDisabled reports whether this element or any of its
// ancestors up to the document root is disabled. Pagination controls often
// mark a wrapping list item rather than the link itself.
func (e *Element) SelfOrAncestorDisabled() (bool, error) {
	disabled, err := e.IsDisabled()
	if err != nil || disabled {
		return disabled, err
	}
	parent := New(e.Parent())
	ok, err := parent.IsValid()
	if err != nil || !ok {
		return false, err
	}
	return parent.SelfOrAncestorDisabled()
}

// EnterValue writes the value into this element: select elements pick the
// option with the matching label, everything else is filled.
func (e *Element) EnterValue(value string) error {
	tag, err := e.TagName()
	if err != nil {
		return fmt.Errorf("resolving tag name: %w", err)
	}
	if strings.EqualFold(tag, "select") {
		return e.SelectByLabel(value)
	}
	return e.Fill(value)
}

// Text waits for the page to settle and returns the element's text content.
func (e *Element) Text() (string, error) {
	if err := e.WaitReady(); err != nil {
		return "", fmt.Errorf("waiting for page to settle: %w", err)
	}
	return e.TextContent()
}
