package element

// Locator is the subset of browser-locator behaviour the table helpers rely
// on. The production implementation wraps a Playwright locator; tests and
// offline extraction use the goquery-backed Static implementation. Every
// call re-queries the live element tree, nothing is cached.
type Locator interface {
	// Count returns the number of elements matching the locator.
	Count() (int, error)

	// Nth narrows the locator to the element at the given index (0-based).
	Nth(index int) Locator

	// Locator resolves a child locator relative to this one. The selector
	// string is opaque to this package and interpreted by the engine.
	Locator(selector string) Locator

	// Parent resolves the direct parent of the first matching element. The
	// result matches nothing once the document root has been passed.
	Parent() Locator

	// TextContent returns the full text content of the first match.
	TextContent() (string, error)

	// AllTextContents returns the text content of every match, in order.
	AllTextContents() ([]string, error)

	// InnerText returns the rendered text of the first match.
	InnerText() (string, error)

	// InnerHTML returns the inner markup of the first match.
	InnerHTML() (string, error)

	// InputValue returns the current value of an input, textarea or select.
	InputValue() (string, error)

	// GetAttribute returns the value of the named attribute, empty when the
	// attribute is absent.
	GetAttribute(name string) (string, error)

	// HasAttribute reports whether the named attribute is present at all,
	// distinguishing an empty attribute from a missing one.
	HasAttribute(name string) (bool, error)

	// TagName returns the upper-cased tag name of the first match.
	TagName() (string, error)

	// Click activates the first match.
	Click() error

	// Fill replaces the value of an editable element.
	Fill(value string) error

	// SelectByLabel selects the option with the given label in a select
	// element.
	SelectByLabel(label string) error

	// Disabled reports the engine's own view of whether the element is
	// disabled, without considering ancestors.
	Disabled() (bool, error)

	// WaitReady blocks until the page is settled enough for text extraction,
	// e.g. a network-idle wait. Implementations without asynchronous
	// rendering return immediately.
	WaitReady() error
}
