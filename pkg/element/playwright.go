package element

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// playwrightLocator adapts a Playwright locator to the Locator interface.
// The page is retained for load-state waits, which Playwright exposes at
// page level rather than locator level.
type playwrightLocator struct {
	page playwright.Page
	loc  playwright.Locator
}

// FromPage resolves a selector on a Playwright page and wraps it.
func FromPage(page playwright.Page, selector string) *Element {
	return New(&playwrightLocator{page: page, loc: page.Locator(selector)})
}

// FromPlaywright wraps an existing Playwright locator.
func FromPlaywright(page playwright.Page, locator playwright.Locator) *Element {
	return New(&playwrightLocator{page: page, loc: locator})
}

func (p *playwrightLocator) wrap(loc playwright.Locator) Locator {
	return &playwrightLocator{page: p.page, loc: loc}
}

func (p *playwrightLocator) Count() (int, error) {
	return p.loc.Count()
}

func (p *playwrightLocator) Nth(index int) Locator {
	return p.wrap(p.loc.Nth(index))
}

func (p *playwrightLocator) Locator(selector string) Locator {
	return p.wrap(p.loc.Locator(selector))
}

func (p *playwrightLocator) Parent() Locator {
	return p.wrap(p.loc.Locator("xpath=.."))
}

func (p *playwrightLocator) TextContent() (string, error) {
	return p.loc.TextContent()
}

func (p *playwrightLocator) AllTextContents() ([]string, error) {
	return p.loc.AllTextContents()
}

func (p *playwrightLocator) InnerText() (string, error) {
	return p.loc.InnerText()
}

func (p *playwrightLocator) InnerHTML() (string, error) {
	return p.loc.InnerHTML()
}

func (p *playwrightLocator) InputValue() (string, error) {
	return p.loc.InputValue()
}

func (p *playwrightLocator) GetAttribute(name string) (string, error) {
	return p.loc.GetAttribute(name)
}

func (p *playwrightLocator) HasAttribute(name string) (bool, error) {
	result, err := p.loc.Evaluate("(el, name) => el.hasAttribute(name)", name)
	if err != nil {
		return false, fmt.Errorf("attribute probe failed: %w", err)
	}
	present, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("attribute probe returned %T, expected bool", result)
	}
	return present, nil
}

func (p *playwrightLocator) TagName() (string, error) {
	result, err := p.loc.Evaluate("el => el.tagName", nil)
	if err != nil {
		return "", fmt.Errorf("tag name lookup failed: %w", err)
	}
	tag, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("tag name lookup returned %T, expected string", result)
	}
	return tag, nil
}

func (p *playwrightLocator) Click() error {
	return p.loc.Click()
}

func (p *playwrightLocator) Fill(value string) error {
	return p.loc.Fill(value)
}

func (p *playwrightLocator) SelectByLabel(label string) error {
	_, err := p.loc.SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{label},
	})
	return err
}

func (p *playwrightLocator) Disabled() (bool, error) {
	return p.loc.IsDisabled()
}

// WaitReady waits for the network to go idle so asynchronously rendered
// table content has settled before text is extracted.
func (p *playwrightLocator) WaitReady() error {
	return p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}
