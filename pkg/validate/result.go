package validate

import (
	"errors"
	"fmt"
)

// Result is the outcome of a comparison or match. A failed Result is a
// normal, inspectable value carrying a human-readable reason; it is
// deliberately not an error so that an expected mismatch never reads as a
// crash. Use Err when a failure should abort the calling operation.
type Result struct {
	passed bool
	reason string
}

// Pass returns a passing result.
func Pass() Result {
	return Result{passed: true}
}

// Failf returns a failing result with a formatted reason.
func Failf(format string, args ...any) Result {
	return Result{reason: fmt.Sprintf(format, args...)}
}

// Passed reports whether the validation passed.
func (r Result) Passed() bool {
	return r.passed
}

// Failed reports whether the validation failed.
func (r Result) Failed() bool {
	return !r.passed
}

// Reason returns the failure reason, empty for a passing result.
func (r Result) Reason() string {
	return r.reason
}

// Err returns nil for a passing result, or an error carrying the failure
// reason for a failed one.
func (r Result) Err() error {
	if r.passed {
		return nil
	}
	return errors.New(r.reason)
}
