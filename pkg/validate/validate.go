package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Method selects how two values are compared.
type Method int

const (
	// Equals requires an exact string match.
	Equals Method = iota
	// EqualsCaseInsensitive requires a case-folded exact match.
	EqualsCaseInsensitive
	// Contains requires the expected value to appear within the actual value.
	Contains
	// MatchesPattern treats the expected value as a glob pattern that the
	// actual value must match, e.g. "user-*" or "202?-??-??".
	MatchesPattern
)

// String returns a human-readable name for the method.
func (m Method) String() string {
	switch m {
	case Equals:
		return "equals"
	case EqualsCaseInsensitive:
		return "equals (case insensitive)"
	case Contains:
		return "contains"
	case MatchesPattern:
		return "matches pattern"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Compare checks the actual value against the expected value using the given
// method. Both values must be strings; any other type fails with a type
// mismatch reason rather than panicking, so that comparison outcomes stay
// inspectable results instead of crashes.
func Compare(expected, actual any, method Method) Result {
	want, ok := expected.(string)
	if !ok {
		return Failf("expected value is not a string (got %T)", expected)
	}
	got, ok := actual.(string)
	if !ok {
		return Failf("actual value is not a string (got %T)", actual)
	}

	switch method {
	case Equals:
		if got == want {
			return Pass()
		}
		return Failf("expected {%s} actual {%s}", want, got)
	case EqualsCaseInsensitive:
		if strings.EqualFold(got, want) {
			return Pass()
		}
		return Failf("expected {%s} actual {%s}", want, got)
	case Contains:
		if strings.Contains(got, want) {
			return Pass()
		}
		return Failf("expected {%s} to contain {%s}", got, want)
	case MatchesPattern:
		g, err := glob.Compile(want)
		if err != nil {
			return Failf("invalid pattern {%s}: %v", want, err)
		}
		if g.Match(got) {
			return Pass()
		}
		return Failf("expected {%s} to match pattern {%s}", got, want)
	default:
		return Failf("unknown comparison method %v", method)
	}
}

// FieldsPresent reports whether every key in required exists in actual with a
// value that satisfies the comparison method. It is the non-consuming check
// used when searching rows: nothing is removed from either record.
func FieldsPresent(required, actual map[string]string, method Method) bool {
	for field, want := range required {
		got, ok := actual[field]
		if !ok || Compare(want, got, method).Failed() {
			return false
		}
	}
	return true
}

// FieldsMatch applies the lookup function to each expected field and compares
// the result with the expected value. Failures are collected per field, so
// the reason names every field that did not match.
func FieldsMatch(expected map[string]string, lookup func(field string) string, method Method) Result {
	fields := make([]string, 0, len(expected))
	for field := range expected {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var reasons []string
	for _, field := range fields {
		if r := Compare(expected[field], lookup(field), method); r.Failed() {
			reasons = append(reasons, fmt.Sprintf("%s: %s", field, r.Reason()))
		}
	}
	if len(reasons) == 0 {
		return Pass()
	}
	return Failf("%s", strings.Join(reasons, "\n"))
}

// RecordsPresent checks that every required record is satisfied by a distinct
// actual record. Matching is multiset-style: once an actual record satisfies
// a required record, both are consumed, so duplicate requirements need
// duplicate actual matches. Records are scanned last to first so removal does
// not disturb the remaining indices.
func RecordsPresent(required, actual []map[string]string, method Method) Result {
	remaining := append([]map[string]string(nil), required...)
	candidates := append([]map[string]string(nil), actual...)

requiredLoop:
	for j := len(remaining) - 1; j >= 0; j-- {
		for i := len(candidates) - 1; i >= 0; i-- {
			if FieldsPresent(remaining[j], candidates[i], method) {
				candidates = append(candidates[:i], candidates[i+1:]...)
				remaining = append(remaining[:j], remaining[j+1:]...)
				continue requiredLoop
			}
		}
	}
	if len(remaining) == 0 {
		return Pass()
	}
	return Failf("no matches found for the following data: %v", remaining)
}

// ValuesPresentInList checks that every expected value appears in the actual
// list, consuming one occurrence per match: three copies of a value in
// expected need three copies in actual.
func ValuesPresentInList(expected, actual []string) Result {
	missing := append([]string(nil), expected...)
	pool := append([]string(nil), actual...)

	for i := len(missing) - 1; i >= 0; i-- {
		for j, v := range pool {
			if v == missing[i] {
				pool = append(pool[:j], pool[j+1:]...)
				missing = append(missing[:i], missing[i+1:]...)
				break
			}
		}
	}
	if len(missing) == 0 {
		return Pass()
	}
	return Failf("the following values were not found: %v", missing)
}

// ListInAlphabeticalOrder checks that the values are in lexicographic order,
// ascending or descending. The failing adjacent pair is named in the reason.
func ListInAlphabeticalOrder(values []string, ascending bool) Result {
	for i := 1; i < len(values); i++ {
		previous, current := values[i-1], values[i]
		outOfOrder := previous > current
		if !ascending {
			outOfOrder = previous < current
		}
		if outOfOrder {
			direction := "ascending"
			if !ascending {
				direction = "descending"
			}
			return Failf("list is not in %s alphabetical order, failing elements {%s, %s}", direction, previous, current)
		}
	}
	return Pass()
}
