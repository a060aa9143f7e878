package table

import (
	"fmt"
	"sort"

	"github.com/ensono/smarttable/pkg/element"
	"github.com/ensono/smarttable/pkg/validate"
)

// Row is an ephemeral view of one table row, addressed by column header. It
// is bound to its position on the currently visible page and must not be
// retained across page navigation.
type Row struct {
	table *Table
	el    *element.Element
}

// newRow wraps a row element, verifying that the number of cells found
// matches the header count. A mismatch is reported with both counts and the
// row's cleaned markup, since it usually means the locators are wrong.
func newRow(t *Table, el *element.Element) (*Row, error) {
	cellCount, err := el.Child(t.cellSelector).Count()
	if err != nil {
		return nil, fmt.Errorf("counting row cells: %w", err)
	}
	if cellCount != len(t.headers) {
		markup, htmlErr := el.InnerHTML()
		if htmlErr != nil {
			markup = fmt.Sprintf("<unavailable: %v>", htmlErr)
		} else {
			markup = cleanMarkup(markup, 512)
		}
		return nil, fmt.Errorf(
			"%w: %d headers identified but %d cells of data extracted, verify the locators are accurate; row markup: %s",
			ErrRowShape, len(t.headers), cellCount, markup)
	}
	return &Row{table: t, el: el}, nil
}

// AsElement returns the row's underlying element.
func (r *Row) AsElement() *element.Element {
	return r.el
}

// Cells returns the element matching every cell in the row.
func (r *Row) Cells() *element.Element {
	return r.el.Child(r.table.cellSelector)
}

// Cell returns the cell element in the named column.
func (r *Row) Cell(header string) (*element.Element, error) {
	index, err := r.table.ColumnIndex(header)
	if err != nil {
		return nil, err
	}
	return r.Cells().NthChild(index), nil
}

// CellValue returns the value of the cell in the named column. For
// input-backed tables the embedded control's current value is read when one
// exists; otherwise the rendered text is returned.
func (r *Row) CellValue(header string) (string, error) {
	cell, err := r.Cell(header)
	if err != nil {
		return "", err
	}
	switch r.table.kind {
	case inputCells:
		input, ok, err := cell.InnerInput()
		if err != nil {
			return "", err
		}
		if ok {
			return input.InputValue()
		}
		return cell.InnerText()
	default:
		return cell.Text()
	}
}

// Values returns the value of every cell in the row, in column order. For
// text tables this is a single bulk extraction; input-backed tables are
// read cell by cell.
func (r *Row) Values() ([]string, error) {
	if r.table.kind == standardCells {
		return r.Cells().AllTextContents()
	}
	values := make([]string, 0, len(r.table.headers))
	for _, header := range r.table.headers {
		value, err := r.CellValue(header)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// ValueMap builds a Record for the row. With no fields given, every column
// is included using one bulk extraction; with fields given, only those
// columns are read, one cell at a time.
func (r *Row) ValueMap(fields ...string) (Record, error) {
	if len(fields) == 0 {
		values, err := r.Values()
		if err != nil {
			return nil, err
		}
		record := make(Record, len(r.table.headers))
		for i, header := range r.table.headers {
			record[header] = values[i]
		}
		return record, nil
	}
	record := make(Record, len(fields))
	for _, field := range fields {
		value, err := r.CellValue(field)
		if err != nil {
			return nil, err
		}
		record[field] = value
	}
	return record, nil
}

// EnterData writes a value into the input element inside the named column's
// cell. ErrNotEditable is returned when the cell holds no input element.
func (r *Row) EnterData(header, value string) error {
	cell, err := r.Cell(header)
	if err != nil {
		return err
	}
	input, ok, err := cell.InnerInput()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: the %q column does not contain an input element", ErrNotEditable, header)
	}
	return input.EnterValue(value)
}

// EnterAll enters each field of the record into its column. Fields are
// applied in sorted order so behaviour is repeatable; the outcome does not
// depend on ordering.
func (r *Row) EnterAll(data Record) error {
	fields := make([]string, 0, len(data))
	for field := range data {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if err := r.EnterData(field, data[field]); err != nil {
			return err
		}
	}
	return nil
}

// SelectLink clicks the first descendant of the named column's cell that
// carries an href attribute.
func (r *Row) SelectLink(header string) error {
	cell, err := r.Cell(header)
	if err != nil {
		return err
	}
	return cell.Child("[href]").NthChild(0).Click()
}

// ValidateValues compares the row's cells against the expected values,
// reporting every mismatching field in the result's reason.
func (r *Row) ValidateValues(expected Record, method validate.Method) (validate.Result, error) {
	fields := make([]string, 0, len(expected))
	for field := range expected {
		fields = append(fields, field)
	}
	actual, err := r.ValueMap(fields...)
	if err != nil {
		return validate.Result{}, err
	}
	return validate.FieldsMatch(expected, func(field string) string {
		return actual[field]
	}, method), nil
}
