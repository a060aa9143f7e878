// Package table provides models for interacting with web tables in
// end-to-end tests: header-addressed rows, page-scoped and cross-page
// search and extraction, multiset validation of expected data, and a
// pagination driver.
//
// # Structure
//
// The package is built around three types:
//
//  1. Table: owns the header-to-index mapping and the row, cell and header
//     locators; enumerates rows lazily and never caches page state.
//  2. Row: an ephemeral view of one row on the currently visible page,
//     addressed by column header.
//  3. Navigator: drives optional previous/next/first/last controls and a
//     page-number button group, with every stepping loop bounded by a
//     configurable time limit.
//
// # Cell strategies
//
// At construction the table is probed once for form controls. A table with
// any input, textarea or select cell reads values from the embedded
// controls (falling back to rendered text); otherwise the rendered text of
// each cell is used. The decision is fixed for the table's lifetime.
//
// # Validation versus errors
//
// Comparison outcomes (Compare, ValidateTable, ValidateValues) are
// validate.Result values carrying human-readable reasons: an expected
// mismatch is a normal, inspectable outcome. Errors are reserved for
// misconfigured locators (ErrNavigationUnset, ErrRowShape), missing data
// (ErrColumnNotFound, ErrRowNotFound, ErrNotEditable), unreachable pages
// (ErrPageUnreachable) and failures from the underlying browser engine.
//
// # Concurrency
//
// A Table and its Navigator drive a single browser page and must not be
// used from multiple goroutines. Nothing is cached: every accessor
// re-queries the live element tree.
package table
