package element

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrStaticDocument indicates an interaction that needs a live browser was
// attempted on a parsed document.
var ErrStaticDocument = errors.New("static document")

// staticLocator serves the Locator interface from a parsed HTML document
// instead of a live page. Selectors are CSS; the Playwright-style " >> "
// chaining separator is accepted for compatibility with shared table
// definitions. Form values can be written (Fill, SelectByLabel) by mutating
// the parsed tree, but nothing can be clicked.
type staticLocator struct {
	sel *goquery.Selection
}

// NewStatic parses an HTML document and returns an Element rooted at it,
// for offline extraction from saved pages and for tests.
func NewStatic(r io.Reader) (*Element, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return New(&staticLocator{sel: doc.Selection}), nil
}

// NewStaticFromString parses HTML markup and returns an Element rooted at it.
func NewStaticFromString(markup string) (*Element, error) {
	return NewStatic(strings.NewReader(markup))
}

func (s *staticLocator) first() (*goquery.Selection, error) {
	if s.sel.Length() == 0 {
		return nil, errors.New("no element matches the locator")
	}
	return s.sel.First(), nil
}

func (s *staticLocator) Count() (int, error) {
	return s.sel.Length(), nil
}

func (s *staticLocator) Nth(index int) Locator {
	return &staticLocator{sel: s.sel.Eq(index)}
}

func (s *staticLocator) Locator(selector string) Locator {
	sel := s.sel
	for _, part := range strings.Split(selector, " >> ") {
		sel = sel.Find(strings.TrimSpace(part))
	}
	return &staticLocator{sel: sel}
}

func (s *staticLocator) Parent() Locator {
	return &staticLocator{sel: s.sel.First().Parent()}
}

func (s *staticLocator) TextContent() (string, error) {
	first, err := s.first()
	if err != nil {
		return "", err
	}
	return first.Text(), nil
}

func (s *staticLocator) AllTextContents() ([]string, error) {
	contents := make([]string, 0, s.sel.Length())
	s.sel.Each(func(_ int, node *goquery.Selection) {
		contents = append(contents, node.Text())
	})
	return contents, nil
}

func (s *staticLocator) InnerText() (string, error) {
	return s.TextContent()
}

func (s *staticLocator) InnerHTML() (string, error) {
	first, err := s.first()
	if err != nil {
		return "", err
	}
	return first.Html()
}

func (s *staticLocator) InputValue() (string, error) {
	first, err := s.first()
	if err != nil {
		return "", err
	}
	switch goquery.NodeName(first) {
	case "input":
		return first.AttrOr("value", ""), nil
	case "textarea":
		return first.Text(), nil
	case "select":
		selected := first.Find("option[selected]")
		if selected.Length() == 0 {
			selected = first.Find("option")
		}
		return selected.First().Text(), nil
	default:
		return "", fmt.Errorf("element %s has no input value", goquery.NodeName(first))
	}
}

func (s *staticLocator) GetAttribute(name string) (string, error) {
	first, err := s.first()
	if err != nil {
		return "", err
	}
	return first.AttrOr(name, ""), nil
}

func (s *staticLocator) HasAttribute(name string) (bool, error) {
	first, err := s.first()
	if err != nil {
		return false, err
	}
	_, present := first.Attr(name)
	return present, nil
}

func (s *staticLocator) TagName() (string, error) {
	first, err := s.first()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(goquery.NodeName(first)), nil
}

func (s *staticLocator) Click() error {
	return fmt.Errorf("%w: cannot click without a live page", ErrStaticDocument)
}

func (s *staticLocator) Fill(value string) error {
	first, err := s.first()
	if err != nil {
		return err
	}
	switch goquery.NodeName(first) {
	case "input":
		first.SetAttr("value", value)
		return nil
	case "textarea":
		first.SetText(value)
		return nil
	default:
		return fmt.Errorf("cannot fill a %s element", goquery.NodeName(first))
	}
}

func (s *staticLocator) SelectByLabel(label string) error {
	first, err := s.first()
	if err != nil {
		return err
	}
	if goquery.NodeName(first) != "select" {
		return fmt.Errorf("cannot select an option on a %s element", goquery.NodeName(first))
	}
	var found bool
	first.Find("option").Each(func(_ int, option *goquery.Selection) {
		if option.Text() == label {
			option.SetAttr("selected", "selected")
			found = true
		} else {
			option.RemoveAttr("selected")
		}
	})
	if !found {
		return fmt.Errorf("no option with the label %q", label)
	}
	return nil
}

func (s *staticLocator) Disabled() (bool, error) {
	return s.HasAttribute("disabled")
}

func (s *staticLocator) WaitReady() error {
	return nil
}
