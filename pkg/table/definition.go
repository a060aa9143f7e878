package table

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ensono/smarttable/pkg/element"
)

// Definition describes a table and its optional navigation controls as a
// set of locators, loadable from YAML so test suites can keep selectors out
// of code:
//
//	table: "#example"
//	headers: "thead th"
//	rows: "tbody tr"
//	cells: "td"
//	navigation:
//	  bar: "#example_paginate"
//	  previous: "a.previous"
//	  next: "a.next"
//	  pages:
//	    buttons: "a.paginate_button"
//	    attribute: "class"
//	    marker: "current"
//	  timeout: 30s
type Definition struct {
	Table      string                `yaml:"table"`
	Headers    string                `yaml:"headers"`
	Rows       string                `yaml:"rows"`
	Cells      string                `yaml:"cells"`
	Navigation *NavigationDefinition `yaml:"navigation,omitempty"`
}

// NavigationDefinition describes the pagination controls of a table. Every
// control is optional; absent selectors are left unconfigured.
type NavigationDefinition struct {
	Bar      string                 `yaml:"bar"`
	Previous string                 `yaml:"previous,omitempty"`
	Next     string                 `yaml:"next,omitempty"`
	First    string                 `yaml:"first,omitempty"`
	Last     string                 `yaml:"last,omitempty"`
	Pages    *PageButtonsDefinition `yaml:"pages,omitempty"`
	Timeout  string                 `yaml:"timeout,omitempty"`
}

// PageButtonsDefinition describes the page-number button group and how the
// currently selected button is marked.
type PageButtonsDefinition struct {
	Buttons   string `yaml:"buttons"`
	Attribute string `yaml:"attribute"`
	Marker    string `yaml:"marker"`
}

// LoadDefinition reads and parses a table definition from a YAML file.
func LoadDefinition(path string) (*Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table definition: %w", err)
	}
	return ParseDefinition(raw)
}

// ParseDefinition parses a table definition from YAML.
func ParseDefinition(raw []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parsing table definition: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) validate() error {
	switch {
	case d.Table == "":
		return fmt.Errorf("table definition is missing the table locator")
	case d.Headers == "":
		return fmt.Errorf("table definition is missing the headers locator")
	case d.Rows == "":
		return fmt.Errorf("table definition is missing the rows locator")
	case d.Cells == "":
		return fmt.Errorf("table definition is missing the cells locator")
	}
	if nav := d.Navigation; nav != nil {
		if nav.Bar == "" {
			return fmt.Errorf("navigation definition is missing the bar locator")
		}
		if nav.Timeout != "" {
			if _, err := time.ParseDuration(nav.Timeout); err != nil {
				return fmt.Errorf("invalid navigation timeout %q: %w", nav.Timeout, err)
			}
		}
	}
	return nil
}

// Build constructs a Table, with a Navigator when navigation is defined,
// resolving every locator under the given document element.
func (d *Definition) Build(doc *element.Element) (*Table, error) {
	t, err := New(doc.Child(d.Table), d.Headers, d.Rows, d.Cells)
	if err != nil {
		return nil, err
	}
	if d.Navigation == nil {
		return t, nil
	}

	nav := NewNavigator(doc.Child(d.Navigation.Bar)).
		WithPreviousPage(d.Navigation.Previous).
		WithNextPage(d.Navigation.Next).
		WithFirstPage(d.Navigation.First).
		WithLastPage(d.Navigation.Last)
	if pages := d.Navigation.Pages; pages != nil {
		nav.WithPageNumberButtons(pages.Buttons, pages.Attribute, pages.Marker)
	}
	if d.Navigation.Timeout != "" {
		timeout, err := time.ParseDuration(d.Navigation.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid navigation timeout %q: %w", d.Navigation.Timeout, err)
		}
		nav.WithTimeout(timeout)
	}
	return t.WithNavigator(nav), nil
}
