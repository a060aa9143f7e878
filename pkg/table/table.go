package table

import (
	"fmt"

	"github.com/ensono/smarttable/pkg/element"
	"github.com/ensono/smarttable/pkg/logging"
	"github.com/ensono/smarttable/pkg/validate"
)

// Record maps column headers to cell values for one row of table data.
type Record = map[string]string

// cellKind selects how cell values are read. It is decided once at
// construction by probing the table for form controls and never changes.
type cellKind int

const (
	// standardCells reads the rendered text of each cell.
	standardCells cellKind = iota
	// inputCells reads the current value of an embedded form control when
	// one exists, falling back to rendered text.
	inputCells
)

// Table interacts with a web table: header lookups, row search, bulk
// extraction and multiset validation, across pages when a Navigator is
// attached. The header list is fixed at construction; rows are resolved
// lazily on every call so the data is always fresh.
type Table struct {
	root            *element.Element
	headersSelector string
	rowSelector     string
	cellSelector    string
	headers         []string
	kind            cellKind
	nav             *Navigator
	log             *logging.Logger
}

// New builds a Table from its root element and the locators for headers,
// rows and cells, all relative to the root. The page is allowed to settle
// before headers are read, and the cell strategy is probed once: a table
// containing any form control is treated as input-backed.
func New(root *element.Element, headersSelector, rowSelector, cellSelector string) (*Table, error) {
	if root == nil {
		return nil, fmt.Errorf("table root element is required")
	}
	if err := root.WaitReady(); err != nil {
		return nil, fmt.Errorf("waiting for page to settle: %w", err)
	}

	headers, err := root.Child(headersSelector).AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("reading table headers: %w", err)
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("no headers found with the locator %q", headersSelector)
	}

	_, hasInput, err := root.InnerInput()
	if err != nil {
		return nil, fmt.Errorf("probing table for input cells: %w", err)
	}
	kind := standardCells
	if hasInput {
		kind = inputCells
	}

	log, _ := logging.New("table")
	log.Debugf("table resolved with %d headers %v, input cells: %t", len(headers), headers, hasInput)

	return &Table{
		root:            root,
		headersSelector: headersSelector,
		rowSelector:     rowSelector,
		cellSelector:    cellSelector,
		headers:         headers,
		kind:            kind,
		log:             log,
	}, nil
}

// WithNavigator attaches page navigation to the table and returns the table
// for chaining. Search, extraction and validation become pagination-aware.
func (t *Table) WithNavigator(nav *Navigator) *Table {
	t.nav = nav
	return t
}

// Navigate returns the attached Navigator, nil when none is set.
func (t *Table) Navigate() *Navigator {
	return t.nav
}

// NavigationSet reports whether a Navigator has been attached.
func (t *Table) NavigationSet() bool {
	return t.nav != nil
}

// AsElement returns the table's root element.
func (t *Table) AsElement() *element.Element {
	return t.root
}

// Headers returns a copy of the resolved column headers, in table order.
func (t *Table) Headers() []string {
	return append([]string(nil), t.headers...)
}

// ColumnIndex returns the index of the named column within the headers.
func (t *Table) ColumnIndex(header string) (int, error) {
	for i, h := range t.headers {
		if h == header {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: no column with the header %q exists", ErrColumnNotFound, header)
}

// Columns returns the element for the header cells.
func (t *Table) Columns() *element.Element {
	return t.root.Child(t.headersSelector)
}

// Column returns the header cell element for the named column.
func (t *Table) Column(header string) (*element.Element, error) {
	index, err := t.ColumnIndex(header)
	if err != nil {
		return nil, err
	}
	return t.ColumnAt(index), nil
}

// ColumnAt returns the header cell element at the given index.
func (t *Table) ColumnAt(index int) *element.Element {
	return t.Columns().NthChild(index)
}

// rowElements returns the element matching every row on the current page.
func (t *Table) rowElements() *element.Element {
	return t.root.Child(t.rowSelector)
}

// RowCount returns the number of rows on the current page.
func (t *Table) RowCount() (int, error) {
	return t.rowElements().Count()
}

// Row returns the row at the given index on the current page (0 = first).
func (t *Table) Row(index int) (*Row, error) {
	return newRow(t, t.rowElements().NthChild(index))
}

// Rows returns every row on the current page. Rows are ephemeral views
// bound to their position; do not retain them across page navigation.
func (t *Table) Rows() ([]*Row, error) {
	count, err := t.RowCount()
	if err != nil {
		return nil, fmt.Errorf("counting rows: %w", err)
	}
	rows := make([]*Row, 0, count)
	for i := 0; i < count; i++ {
		row, err := t.Row(i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FindRowOnPage returns the first row on the current page whose cells
// contain all the required values. The second return value is false when no
// row on this page matches; other pages are not visited.
func (t *Table) FindRowOnPage(required Record) (*Row, bool, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, false, err
	}
	for _, row := range rows {
		values, err := row.ValueMap()
		if err != nil {
			return nil, false, err
		}
		if validate.FieldsPresent(required, values, validate.Equals) {
			return row, true, nil
		}
	}
	return nil, false, nil
}

// FindRow searches every reachable page for a row containing all the
// required values, starting from the first page when navigation is set.
// ErrRowNotFound is returned once pagination is exhausted.
func (t *Table) FindRow(required Record) (*Row, error) {
	fields := make([]string, 0, len(required))
	for field := range required {
		fields = append(fields, field)
	}
	if err := validate.ValuesPresentInList(fields, t.headers).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrColumnNotFound, err)
	}

	if err := t.toFirstPageIfSet(); err != nil {
		return nil, err
	}
	for {
		row, found, err := t.FindRowOnPage(required)
		if err != nil {
			return nil, err
		}
		if found {
			return row, nil
		}
		moved, err := t.toNextPageIfSet()
		if err != nil {
			return nil, err
		}
		if !moved {
			return nil, fmt.Errorf("%w with the following values: %v", ErrRowNotFound, required)
		}
		t.log.Debugf("row %v not on page, advanced to next page", required)
	}
}

// ExtractDataOnPage maps every row on the current page to a Record. With no
// fields given, every column is extracted.
func (t *Table) ExtractDataOnPage(fields ...string) ([]Record, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	data := make([]Record, 0, len(rows))
	for _, row := range rows {
		record, err := row.ValueMap(fields...)
		if err != nil {
			return nil, err
		}
		data = append(data, record)
	}
	return data, nil
}

// ExtractData extracts records from every reachable page, starting from the
// first page when navigation is set. Without navigation it is equivalent to
// ExtractDataOnPage.
func (t *Table) ExtractData(fields ...string) ([]Record, error) {
	if err := t.toFirstPageIfSet(); err != nil {
		return nil, err
	}
	var data []Record
	for {
		page, err := t.ExtractDataOnPage(fields...)
		if err != nil {
			return nil, err
		}
		data = append(data, page...)
		moved, err := t.toNextPageIfSet()
		if err != nil {
			return nil, err
		}
		if !moved {
			return data, nil
		}
	}
}

// listOfValuesOnPage collects the named column's value from every row on
// the current page.
func (t *Table) listOfValuesOnPage(field string) ([]string, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		value, err := row.CellValue(field)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// ListOfValues collects the named column's value from every row on every
// reachable page.
func (t *Table) ListOfValues(field string) ([]string, error) {
	if err := t.toFirstPageIfSet(); err != nil {
		return nil, err
	}
	var values []string
	for {
		page, err := t.listOfValuesOnPage(field)
		if err != nil {
			return nil, err
		}
		values = append(values, page...)
		moved, err := t.toNextPageIfSet()
		if err != nil {
			return nil, err
		}
		if !moved {
			return values, nil
		}
	}
}

// ValidateTable checks that each expected record is satisfied by a distinct
// row somewhere in the table. Rows on each page are scanned once; every
// still-unsatisfied expected record is checked against the row and consumed
// on a match, so duplicate expectations need duplicate rows. Pages are
// visited until the expected set is empty or pagination runs out. The
// returned Result reports exactly the unmatched remainder; the error return
// covers browser failures only.
func (t *Table) ValidateTable(expected []Record, method validate.Method) (validate.Result, error) {
	remaining := append([]Record(nil), expected...)
	if err := t.toFirstPageIfSet(); err != nil {
		return validate.Result{}, err
	}
	for {
		var err error
		remaining, err = t.validatePage(remaining, method)
		if err != nil {
			return validate.Result{}, err
		}
		if len(remaining) == 0 {
			return validate.Pass(), nil
		}
		moved, err := t.toNextPageIfSet()
		if err != nil {
			return validate.Result{}, err
		}
		if !moved {
			return validate.Failf("matches not found for the following data: %v", remaining), nil
		}
		t.log.Debugf("%d expected records unmatched, advanced to next page", len(remaining))
	}
}

// validatePage scans the current page's rows once, consuming each expected
// record satisfied by a row. Expected records are checked last to first so
// removal keeps the remaining indices stable.
func (t *Table) validatePage(remaining []Record, method validate.Method) ([]Record, error) {
	count, err := t.RowCount()
	if err != nil {
		return nil, fmt.Errorf("counting rows: %w", err)
	}
	for i := 0; i < count; i++ {
		if len(remaining) == 0 {
			break
		}
		row, err := t.Row(i)
		if err != nil {
			return nil, err
		}
		values, err := row.ValueMap()
		if err != nil {
			return nil, err
		}
		for j := len(remaining) - 1; j >= 0; j-- {
			if validate.FieldsPresent(remaining[j], values, method) {
				remaining = append(remaining[:j], remaining[j+1:]...)
				break
			}
		}
	}
	return remaining, nil
}

// toFirstPageIfSet resets to the first page when navigation is attached and
// a first or previous control is configured.
func (t *Table) toFirstPageIfSet() error {
	if !t.NavigationSet() {
		return nil
	}
	_, err := t.nav.FirstPageIfSet()
	return err
}

// toNextPageIfSet advances a page when navigation is attached and a next
// control is configured. It reports whether a new page was reached.
func (t *Table) toNextPageIfSet() (bool, error) {
	if !t.NavigationSet() {
		return false, nil
	}
	return t.nav.NextPageIfSet()
}
