package pagination

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats row numbers in range labels with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// DefaultRangeSeparator joins the visible range and the row count in RangeLabel.
const DefaultRangeSeparator = "of"

// GetNumberOfPages returns ceil(rowCount / rowsPerPage).
// It returns 0 when there are no rows or rowsPerPage is not positive; callers
// that always want at least one page apply that policy themselves.
func GetNumberOfPages(rowCount, rowsPerPage int) int {
	if rowCount <= 0 || rowsPerPage <= 0 {
		return 0
	}
	return (rowCount + rowsPerPage - 1) / rowsPerPage
}

// Action is a navigation request issued by a pagination control.
type Action int

const (
	// First moves to page 1.
	First Action = iota
	// Previous moves back one page.
	Previous
	// Next moves forward one page.
	Next
	// Last moves to the final page.
	Last
)

// String returns the control name for the action.
func (a Action) String() string {
	switch a {
	case First:
		return "first"
	case Previous:
		return "previous"
	case Next:
		return "next"
	case Last:
		return "last"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// ParseAction parses "first", "previous" (or "prev"), "next" or "last".
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return First, nil
	case "previous", "prev":
		return Previous, nil
	case "next":
		return Next, nil
	case "last":
		return Last, nil
	default:
		return First, fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
}

// State is the caller-owned pagination state.
type State struct {
	// CurrentPage is 1-indexed.
	CurrentPage int
	RowsPerPage int
	RowCount    int
}

// Pages returns the number of pages for the state.
func (s State) Pages() int {
	return GetNumberOfPages(s.RowCount, s.RowsPerPage)
}

// IsFirstPage reports whether no earlier page exists.
func (s State) IsFirstPage() bool {
	return s.CurrentPage <= 1
}

// IsLastPage reports whether no later page exists.
func (s State) IsLastPage() bool {
	return s.CurrentPage >= s.Pages()
}

// Navigate returns the page that action leads to from state and whether it
// differs from the current page. Next and Previous are no-ops on the last and
// first page; First and Last are no-ops when already on that page.
func Navigate(state State, action Action) (int, bool) {
	pages := state.Pages()
	current := state.CurrentPage

	switch action {
	case First:
		if current > 1 {
			return 1, true
		}
	case Previous:
		if current > 1 {
			return current - 1, true
		}
	case Next:
		if current < pages {
			return current + 1, true
		}
	case Last:
		if current < pages {
			return pages, true
		}
	}
	return current, false
}

// ChangeRowsPerPage returns state with rowsPerPage applied and the current page
// lowered, if needed, so it still exists under the new page size. The page
// never drops below 1.
func ChangeRowsPerPage(state State, rowsPerPage int) State {
	next := state
	next.RowsPerPage = rowsPerPage
	next.CurrentPage = max(1, min(state.CurrentPage, next.Pages()))
	return next
}

// Bounds returns the half-open, 0-based index range [start, end) of the rows
// on the current page. Pages past the end yield an empty range.
//
//nolint:nonamedreturns // Named returns document the range ends.
func (s State) Bounds() (start, end int) {
	if s.RowsPerPage <= 0 || s.CurrentPage < 1 {
		return 0, 0
	}
	start = min((s.CurrentPage-1)*s.RowsPerPage, s.RowCount)
	end = min(start+s.RowsPerPage, s.RowCount)
	return start, end
}

// Page returns the items on the current page of state, ignoring
// state.RowCount in favor of len(items).
func Page[T any](items []T, state State) []T {
	state.RowCount = len(items)
	start, end := state.Bounds()
	return items[start:end]
}

// RangeLabel describes the visible rows, e.g. "11-20 of 40".
// An empty separator uses DefaultRangeSeparator.
func RangeLabel(state State, separator string) string {
	start, end := state.Bounds()
	return WindowLabel(start, end, state.RowCount, separator)
}

// WindowLabel describes the half-open, 0-based window [start, end) of total
// rows the way RangeLabel does. It serves offset-based windows that do not
// align to page boundaries.
func WindowLabel(start, end, total int, separator string) string {
	if separator == "" {
		separator = DefaultRangeSeparator
	}
	if end <= start {
		return printer.Sprintf("0-0 %s %d", separator, total)
	}
	return printer.Sprintf("%d-%d %s %d", start+1, end, separator, total)
}
