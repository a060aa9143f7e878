package table

import "errors"

// Sentinel errors for the table and navigation layer. Callers can use
// errors.Is to distinguish a misconfigured locator from a genuine miss.
var (
	// ErrColumnNotFound indicates a named column does not exist in the
	// table's headers.
	ErrColumnNotFound = errors.New("column not found")

	// ErrRowNotFound indicates no row satisfied the search criteria after
	// every reachable page was checked.
	ErrRowNotFound = errors.New("no row of data found")

	// ErrRowShape indicates the number of cells found in a row does not
	// match the number of headers, which almost always means the row or
	// cell locators are wrong.
	ErrRowShape = errors.New("row shape mismatch")

	// ErrNotEditable indicates data entry was attempted on a cell with no
	// input element inside it.
	ErrNotEditable = errors.New("cell is not editable")

	// ErrNavigationUnset indicates a navigation control was used before its
	// locator was configured. This is a programming mistake, not a page
	// state.
	ErrNavigationUnset = errors.New("navigation control not configured")

	// ErrPageUnreachable indicates a requested page number could not be
	// reached by stepping, because a control reported disabled first.
	ErrPageUnreachable = errors.New("page unreachable")
)
