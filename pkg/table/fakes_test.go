package table

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ensono/smarttable/pkg/element"
)

// emptyLoc matches nothing, ending ancestor walks and IfSet checks.
type emptyLoc struct{}

func (emptyLoc) Count() (int, error)              { return 0, nil }
func (emptyLoc) Nth(int) element.Locator          { return emptyLoc{} }
func (emptyLoc) Locator(string) element.Locator   { return emptyLoc{} }
func (emptyLoc) Parent() element.Locator          { return emptyLoc{} }
func (emptyLoc) TextContent() (string, error)     { return "", errors.New("no element") }
func (emptyLoc) AllTextContents() ([]string, error) { return nil, nil }
func (emptyLoc) InnerText() (string, error)       { return "", errors.New("no element") }
func (emptyLoc) InnerHTML() (string, error)       { return "", errors.New("no element") }
func (emptyLoc) InputValue() (string, error)      { return "", errors.New("no element") }
func (emptyLoc) GetAttribute(string) (string, error) { return "", nil }
func (emptyLoc) HasAttribute(string) (bool, error) { return false, nil }
func (emptyLoc) TagName() (string, error)         { return "", errors.New("no element") }
func (emptyLoc) Click() error                     { return errors.New("no element") }
func (emptyLoc) Fill(string) error                { return errors.New("no element") }
func (emptyLoc) SelectByLabel(string) error       { return errors.New("no element") }
func (emptyLoc) Disabled() (bool, error)          { return false, nil }
func (emptyLoc) WaitReady() error                 { return nil }

// fakeButton is a single clickable navigation control whose attributes can
// change with page state.
type fakeButton struct {
	label string
	attrs func() map[string]string
	click func() error
}

func (b *fakeButton) Count() (int, error) { return 1, nil }

func (b *fakeButton) Nth(index int) element.Locator {
	if index == 0 {
		return b
	}
	return emptyLoc{}
}

func (b *fakeButton) Locator(string) element.Locator { return emptyLoc{} }
func (b *fakeButton) Parent() element.Locator        { return emptyLoc{} }
func (b *fakeButton) TextContent() (string, error)   { return b.label, nil }
func (b *fakeButton) AllTextContents() ([]string, error) {
	return []string{b.label}, nil
}
func (b *fakeButton) InnerText() (string, error)  { return b.label, nil }
func (b *fakeButton) InnerHTML() (string, error)  { return b.label, nil }
func (b *fakeButton) InputValue() (string, error) { return "", errors.New("not an input") }

func (b *fakeButton) GetAttribute(name string) (string, error) {
	if b.attrs == nil {
		return "", nil
	}
	return b.attrs()[name], nil
}

func (b *fakeButton) HasAttribute(name string) (bool, error) {
	if b.attrs == nil {
		return false, nil
	}
	_, present := b.attrs()[name]
	return present, nil
}

func (b *fakeButton) TagName() (string, error) { return "A", nil }

func (b *fakeButton) Click() error {
	if b.click == nil {
		return nil
	}
	return b.click()
}

func (b *fakeButton) Fill(string) error          { return errors.New("not an input") }
func (b *fakeButton) SelectByLabel(string) error { return errors.New("not a select") }
func (b *fakeButton) Disabled() (bool, error)    { return false, nil }
func (b *fakeButton) WaitReady() error           { return nil }

// fakeGroup is a locator matching several buttons, for page-number groups.
type fakeGroup struct {
	members []element.Locator
}

func (g *fakeGroup) Count() (int, error) { return len(g.members), nil }

func (g *fakeGroup) Nth(index int) element.Locator {
	if index < 0 || index >= len(g.members) {
		return emptyLoc{}
	}
	return g.members[index]
}

func (g *fakeGroup) Locator(string) element.Locator { return emptyLoc{} }
func (g *fakeGroup) Parent() element.Locator        { return emptyLoc{} }

func (g *fakeGroup) TextContent() (string, error) {
	if len(g.members) == 0 {
		return "", errors.New("no element")
	}
	return g.members[0].TextContent()
}

func (g *fakeGroup) AllTextContents() ([]string, error) {
	texts := make([]string, 0, len(g.members))
	for _, member := range g.members {
		text, err := member.TextContent()
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func (g *fakeGroup) InnerText() (string, error)          { return g.TextContent() }
func (g *fakeGroup) InnerHTML() (string, error)          { return g.TextContent() }
func (g *fakeGroup) InputValue() (string, error)         { return "", errors.New("not an input") }
func (g *fakeGroup) GetAttribute(name string) (string, error) {
	return g.Nth(0).GetAttribute(name)
}
func (g *fakeGroup) HasAttribute(name string) (bool, error) {
	return g.Nth(0).HasAttribute(name)
}
func (g *fakeGroup) TagName() (string, error)     { return "A", nil }
func (g *fakeGroup) Click() error                 { return g.Nth(0).Click() }
func (g *fakeGroup) Fill(string) error            { return errors.New("not an input") }
func (g *fakeGroup) SelectByLabel(string) error   { return errors.New("not a select") }
func (g *fakeGroup) Disabled() (bool, error)      { return false, nil }
func (g *fakeGroup) WaitReady() error             { return nil }

// fakeBar is a navigation bar serving configured controls by selector.
type fakeBar struct {
	controls map[string]element.Locator
}

func (f *fakeBar) Count() (int, error) { return 1, nil }
func (f *fakeBar) Nth(int) element.Locator { return f }

func (f *fakeBar) Locator(selector string) element.Locator {
	if control, ok := f.controls[selector]; ok {
		return control
	}
	return emptyLoc{}
}

func (f *fakeBar) Parent() element.Locator              { return emptyLoc{} }
func (f *fakeBar) TextContent() (string, error)         { return "", nil }
func (f *fakeBar) AllTextContents() ([]string, error)   { return nil, nil }
func (f *fakeBar) InnerText() (string, error)           { return "", nil }
func (f *fakeBar) InnerHTML() (string, error)           { return "", nil }
func (f *fakeBar) InputValue() (string, error)          { return "", errors.New("not an input") }
func (f *fakeBar) GetAttribute(string) (string, error)  { return "", nil }
func (f *fakeBar) HasAttribute(string) (bool, error)    { return false, nil }
func (f *fakeBar) TagName() (string, error)             { return "DIV", nil }
func (f *fakeBar) Click() error                         { return errors.New("not clickable") }
func (f *fakeBar) Fill(string) error                    { return errors.New("not an input") }
func (f *fakeBar) SelectByLabel(string) error           { return errors.New("not a select") }
func (f *fakeBar) Disabled() (bool, error)              { return false, nil }
func (f *fakeBar) WaitReady() error                     { return nil }

// lazyLoc defers resolution of the underlying locator to each call, so a
// locator chain held by a Table follows page changes in a paged harness.
type lazyLoc struct {
	resolve func() element.Locator
}

func (l lazyLoc) Nth(index int) element.Locator {
	return lazyLoc{resolve: func() element.Locator { return l.resolve().Nth(index) }}
}

func (l lazyLoc) Locator(selector string) element.Locator {
	return lazyLoc{resolve: func() element.Locator { return l.resolve().Locator(selector) }}
}

func (l lazyLoc) Parent() element.Locator {
	return lazyLoc{resolve: func() element.Locator { return l.resolve().Parent() }}
}

func (l lazyLoc) Count() (int, error)                { return l.resolve().Count() }
func (l lazyLoc) TextContent() (string, error)       { return l.resolve().TextContent() }
func (l lazyLoc) AllTextContents() ([]string, error) { return l.resolve().AllTextContents() }
func (l lazyLoc) InnerText() (string, error)         { return l.resolve().InnerText() }
func (l lazyLoc) InnerHTML() (string, error)         { return l.resolve().InnerHTML() }
func (l lazyLoc) InputValue() (string, error)        { return l.resolve().InputValue() }
func (l lazyLoc) GetAttribute(name string) (string, error) {
	return l.resolve().GetAttribute(name)
}
func (l lazyLoc) HasAttribute(name string) (bool, error) {
	return l.resolve().HasAttribute(name)
}
func (l lazyLoc) TagName() (string, error)      { return l.resolve().TagName() }
func (l lazyLoc) Click() error                  { return l.resolve().Click() }
func (l lazyLoc) Fill(value string) error       { return l.resolve().Fill(value) }
func (l lazyLoc) SelectByLabel(label string) error {
	return l.resolve().SelectByLabel(label)
}
func (l lazyLoc) Disabled() (bool, error) { return l.resolve().Disabled() }
func (l lazyLoc) WaitReady() error        { return l.resolve().WaitReady() }

// pagedHarness serves a different static table per page, with previous and
// next controls that become disabled at the boundaries, plus page-number
// buttons marking the current page.
type pagedHarness struct {
	pages   []*element.Element
	current int
}

func newPagedHarness(t *testing.T, pages ...string) *pagedHarness {
	t.Helper()
	harness := &pagedHarness{}
	for _, markup := range pages {
		doc, err := element.NewStaticFromString(markup)
		require.NoError(t, err)
		harness.pages = append(harness.pages, doc.Child("table"))
	}
	return harness
}

// tableRoot returns a root element that always reflects the current page.
func (h *pagedHarness) tableRoot() *element.Element {
	return element.New(lazyLoc{resolve: func() element.Locator {
		return h.pages[h.current].Locator
	}})
}

// navigator builds a Navigator over fake previous/next controls and
// page-number buttons wired to the harness state.
func (h *pagedHarness) navigator() *Navigator {
	previous := &fakeButton{
		label: "Previous",
		attrs: func() map[string]string {
			if h.current == 0 {
				return map[string]string{"class": "disabled"}
			}
			return nil
		},
		click: func() error {
			if h.current == 0 {
				return errors.New("clicked a disabled control")
			}
			h.current--
			return nil
		},
	}
	next := &fakeButton{
		label: "Next",
		attrs: func() map[string]string {
			if h.current == len(h.pages)-1 {
				return map[string]string{"class": "disabled"}
			}
			return nil
		},
		click: func() error {
			if h.current == len(h.pages)-1 {
				return errors.New("clicked a disabled control")
			}
			h.current++
			return nil
		},
	}

	group := &fakeGroup{}
	for i := range h.pages {
		page := i
		group.members = append(group.members, &fakeButton{
			label: fmt.Sprintf("%d", page+1),
			attrs: func() map[string]string {
				class := "paginate_button"
				if h.current == page {
					class += " current"
				}
				return map[string]string{"class": class}
			},
			click: func() error {
				h.current = page
				return nil
			},
		})
	}

	bar := &fakeBar{controls: map[string]element.Locator{
		"a.previous":        previous,
		"a.next":            next,
		"a.paginate_button": group,
	}}
	return NewNavigator(element.New(bar)).
		WithPreviousPage("a.previous").
		WithNextPage("a.next").
		WithPageNumberButtons("a.paginate_button", "class", "current")
}
