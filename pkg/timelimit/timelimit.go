// Package timelimit provides a small wall-clock deadline used to bound
// loops that repeatedly drive browser actions, such as stepping a table
// back to its first page one click at a time.
package timelimit

import (
	"errors"
	"fmt"
	"time"
)

// ErrLimitReached indicates a limit expired before the loop it bounded
// finished. It is distinct from a loop stopping naturally at a boundary.
var ErrLimitReached = errors.New("time limit reached")

// Limit is a wall-clock deadline. The zero value is not usable; create one
// with New.
type Limit struct {
	duration time.Duration
	deadline time.Time
	now      func() time.Time
}

// New creates a Limit that expires after the given duration, starting now.
func New(d time.Duration) *Limit {
	l := &Limit{duration: d, now: time.Now}
	l.Reset()
	return l
}

// Reset restarts the limit from the current time.
func (l *Limit) Reset() {
	l.deadline = l.now().Add(l.duration)
}

// Remaining reports whether any time is left before the deadline.
func (l *Limit) Remaining() bool {
	return !l.now().After(l.deadline)
}

// Check returns nil while time remains, or an error wrapping
// ErrLimitReached once the deadline has passed.
func (l *Limit) Check() error {
	if l.Remaining() {
		return nil
	}
	return fmt.Errorf("%w: the limit of %s has elapsed", ErrLimitReached, l.duration)
}
