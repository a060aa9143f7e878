package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ensono/smarttable/pkg/element"
	"github.com/ensono/smarttable/pkg/logging"
	"github.com/ensono/smarttable/pkg/timelimit"
	"github.com/ensono/smarttable/pkg/validate"
)

// DefaultNavigationTimeout bounds every stepping loop a Navigator runs.
// Exceeding it is a fatal timeout, distinct from a control reporting
// disabled, which is the natural page boundary.
const DefaultNavigationTimeout = 2 * time.Minute

// Navigator drives a table's pagination controls. Each control is optional
// and configured with a locator relative to the navigation bar; operations
// on an unconfigured control fail with ErrNavigationUnset.
type Navigator struct {
	bar      *element.Element
	previous *element.Element
	next     *element.Element
	first    *element.Element
	last     *element.Element

	pageButtons   *element.Element
	pageAttribute string
	pageMarker    string

	timeout time.Duration
	log     *logging.Logger
}

// NewNavigator creates a Navigator rooted at the navigation bar element,
// the parent of every pagination control.
func NewNavigator(bar *element.Element) *Navigator {
	log, _ := logging.New("navigator")
	return &Navigator{
		bar:     bar,
		timeout: DefaultNavigationTimeout,
		log:     log,
	}
}

func (n *Navigator) control(selector string) *element.Element {
	if selector == "" {
		return nil
	}
	return n.bar.Child(selector)
}

// WithPreviousPage configures the previous-page control. An empty selector
// clears it.
func (n *Navigator) WithPreviousPage(selector string) *Navigator {
	n.previous = n.control(selector)
	return n
}

// WithNextPage configures the next-page control. An empty selector clears it.
func (n *Navigator) WithNextPage(selector string) *Navigator {
	n.next = n.control(selector)
	return n
}

// WithFirstPage configures the first-page control. An empty selector clears
// it.
func (n *Navigator) WithFirstPage(selector string) *Navigator {
	n.first = n.control(selector)
	return n
}

// WithLastPage configures the last-page control. An empty selector clears it.
func (n *Navigator) WithLastPage(selector string) *Navigator {
	n.last = n.control(selector)
	return n
}

// WithPageNumberButtons configures the group of page-number buttons. The
// current page is the member whose named attribute contains the marker
// value, e.g. buttons "a.paginate_button", attribute "class", marker
// "current".
func (n *Navigator) WithPageNumberButtons(selector, attribute, marker string) *Navigator {
	n.pageButtons = n.control(selector)
	n.pageAttribute = attribute
	n.pageMarker = marker
	return n
}

// WithTimeout sets the ceiling on elapsed wall-clock time for stepping
// loops such as FirstPage without a first control.
func (n *Navigator) WithTimeout(timeout time.Duration) *Navigator {
	n.timeout = timeout
	return n
}

// step clicks the control unless it, or any ancestor, is disabled. It
// reports whether a click was performed; a disabled control means the table
// boundary was reached.
func (n *Navigator) step(control *element.Element, name string) (bool, error) {
	if control == nil {
		return false, fmt.Errorf("%w: the %s page locator has not been set", ErrNavigationUnset, name)
	}
	disabled, err := control.SelfOrAncestorDisabled()
	if err != nil {
		return false, fmt.Errorf("checking the %s page control: %w", name, err)
	}
	if disabled {
		return false, nil
	}
	if err := control.Click(); err != nil {
		return false, fmt.Errorf("clicking the %s page control: %w", name, err)
	}
	n.log.Debugf("stepped via the %s page control", name)
	return true, nil
}

// PreviousPage navigates one page back. It returns false without acting
// when the control is disabled, and fails when the control was never
// configured.
func (n *Navigator) PreviousPage() (bool, error) {
	return n.step(n.previous, "previous")
}

// NextPage navigates one page forward. It returns false without acting when
// the control is disabled, and fails when the control was never configured.
func (n *Navigator) NextPage() (bool, error) {
	return n.step(n.next, "next")
}

// PreviousPageIfSet navigates back only when the control is configured.
func (n *Navigator) PreviousPageIfSet() (bool, error) {
	if n.previous == nil {
		return false, nil
	}
	return n.PreviousPage()
}

// NextPageIfSet navigates forward only when the control is configured.
func (n *Navigator) NextPageIfSet() (bool, error) {
	if n.next == nil {
		return false, nil
	}
	return n.NextPage()
}

// FirstPage navigates to the first page: via the first-page control when
// configured, otherwise by stepping back until the previous control reports
// disabled, bounded by the configured timeout.
func (n *Navigator) FirstPage() error {
	switch {
	case n.first != nil:
		if err := n.first.Click(); err != nil {
			return fmt.Errorf("clicking the first page control: %w", err)
		}
		return nil
	case n.previous != nil:
		limit := timelimit.New(n.timeout)
		for {
			moved, err := n.PreviousPage()
			if err != nil {
				return err
			}
			if !moved {
				return nil
			}
			if err := limit.Check(); err != nil {
				return fmt.Errorf("navigating to the first page: %w", err)
			}
		}
	default:
		return fmt.Errorf("%w: neither the first nor previous page locators have been set", ErrNavigationUnset)
	}
}

// FirstPageIfSet navigates to the first page when a first or previous
// control is configured, reporting whether navigation was performed.
func (n *Navigator) FirstPageIfSet() (bool, error) {
	if n.first == nil && n.previous == nil {
		return false, nil
	}
	if err := n.FirstPage(); err != nil {
		return false, err
	}
	return true, nil
}

// LastPage navigates to the last page: via the last-page control when
// configured, otherwise by stepping forward until the next control reports
// disabled, bounded by the configured timeout.
func (n *Navigator) LastPage() error {
	switch {
	case n.last != nil:
		if err := n.last.Click(); err != nil {
			return fmt.Errorf("clicking the last page control: %w", err)
		}
		return nil
	case n.next != nil:
		limit := timelimit.New(n.timeout)
		for {
			moved, err := n.NextPage()
			if err != nil {
				return err
			}
			if !moved {
				return nil
			}
			if err := limit.Check(); err != nil {
				return fmt.Errorf("navigating to the last page: %w", err)
			}
		}
	default:
		return fmt.Errorf("%w: neither the last nor next page locators have been set", ErrNavigationUnset)
	}
}

// LastPageIfSet navigates to the last page when a last or next control is
// configured, reporting whether navigation was performed.
func (n *Navigator) LastPageIfSet() (bool, error) {
	if n.last == nil && n.next == nil {
		return false, nil
	}
	if err := n.LastPage(); err != nil {
		return false, err
	}
	return true, nil
}

// CurrentPageNumber finds the page-number button marked as current and
// parses its text as the page number. The page-number button group must be
// configured.
func (n *Navigator) CurrentPageNumber() (int, error) {
	if n.pageButtons == nil {
		return 0, fmt.Errorf("%w: the current page number can only be retrieved once page number buttons are configured", ErrNavigationUnset)
	}
	current, err := n.pageButtons.WithAttribute(n.pageAttribute, n.pageMarker, validate.Contains)
	if err != nil {
		return 0, fmt.Errorf("finding the current page button: %w", err)
	}
	text, err := current.Text()
	if err != nil {
		return 0, fmt.Errorf("reading the current page button: %w", err)
	}
	page, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("parsing page number %q: %w", text, err)
	}
	return page, nil
}

// ToPage steps toward the requested page, re-reading the current page
// number each iteration to choose the direction. ErrPageUnreachable is
// returned when a control reports disabled before the page is reached, and
// the whole walk is bounded by the configured timeout.
func (n *Navigator) ToPage(page int) error {
	limit := timelimit.New(n.timeout)
	for {
		current, err := n.CurrentPageNumber()
		if err != nil {
			return err
		}
		if current == page {
			return nil
		}
		var moved bool
		if page < current {
			moved, err = n.PreviousPage()
		} else {
			moved, err = n.NextPage()
		}
		if err != nil {
			return err
		}
		if !moved {
			return fmt.Errorf("%w: required page %d but cannot navigate past page %d", ErrPageUnreachable, page, current)
		}
		if err := limit.Check(); err != nil {
			return fmt.Errorf("navigating to page %d: %w", page, err)
		}
	}
}
