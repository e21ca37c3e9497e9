package pagination

import (
	"fmt"
	"slices"
)

// DefaultRowsPerPageOptions are the page sizes offered by rows-per-page selectors.
//
//nolint:gochecknoglobals // Read-only default option list.
var DefaultRowsPerPageOptions = []int{10, 15, 20, 25, 30}

// ClampPageSize applies a default to non-positive sizes and caps sizes above maxSize.
// A non-positive maxSize disables the cap. The result is always at least 1.
func ClampPageSize(size, defaultSize, maxSize int) int {
	if size <= 0 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return max(size, MinPageSize)
}

// ValidateRowsPerPageOptions checks that every option is a usable page size.
func ValidateRowsPerPageOptions(options []int) error {
	for _, opt := range options {
		if opt < MinPageSize || opt > MaxPageSize {
			return fmt.Errorf("%w: got %d", ErrInvalidRowsOption, opt)
		}
	}
	return nil
}

// StepRowsPerPage returns the option delta steps away from current within the
// sorted options, clamped to the first and last option. When current is not an
// option, stepping starts from the nearest larger option.
func StepRowsPerPage(options []int, current, delta int) int {
	if len(options) == 0 {
		return current
	}
	sorted := slices.Clone(options)
	slices.Sort(sorted)

	idx, found := slices.BinarySearch(sorted, current)
	if !found && delta > 0 {
		// idx already points at the next larger option.
		delta--
	}
	idx = max(0, min(idx+delta, len(sorted)-1))
	return sorted[idx]
}
