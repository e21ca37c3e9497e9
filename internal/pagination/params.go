package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Pagination modes and validation limits.
const (
	DefaultLimit       = 0
	MaxLimit           = 10000
	DefaultRowsPerPage = 10
	MinPageSize        = 1
	MaxPageSize        = 1000
	DefaultOffset      = 0
	DefaultPage        = 1
	DefaultSortField   = ""
	DefaultSortOrder   = "asc"
	SortOrderAsc       = "asc"
	SortOrderDesc      = "desc"
)

// Common validation errors.
var (
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'age:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidAction     = errors.New("navigation action must be first, previous, next or last")
	ErrInvalidRowsOption = errors.New("rows-per-page options must be positive")
)

// Params holds CLI pagination flags and provides validation.
// Supports two pagination modes:
//   - Offset-based: --limit and --offset
//   - Page-based: --page and --page-size
//
// These modes are mutually exclusive.
type Params struct {
	// Limit is the maximum number of rows to return (offset-based mode).
	Limit int

	// Offset is the number of rows to skip (offset-based mode).
	Offset int

	// Page is the 1-based page number (page-based mode).
	Page int

	// PageSize is the number of rows per page (page-based mode).
	PageSize int

	// SortField is the field path to sort by (e.g., "age", "address.city").
	SortField string

	// SortOrder is the sort direction: "asc" or "desc".
	SortOrder string
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Limit:     DefaultLimit,
		Offset:    DefaultOffset,
		Page:      0, // 0 means page-based mode not active
		PageSize:  0, // Requires Page > 0 to be valid
		SortField: DefaultSortField,
		SortOrder: DefaultSortOrder,
	}
}

// Validate checks if the pagination parameters are valid and consistent.
func (p Params) Validate() error {
	if p.Limit < 0 {
		return errors.New("limit cannot be negative")
	}
	if p.Limit > MaxLimit {
		return fmt.Errorf("limit cannot exceed %d", MaxLimit)
	}
	if p.Offset < 0 {
		return errors.New("offset cannot be negative")
	}
	if p.Page < 0 {
		return errors.New("page cannot be negative")
	}
	if p.PageSize < 0 {
		return errors.New("page-size cannot be negative")
	}
	if p.PageSize > MaxPageSize {
		return fmt.Errorf("page-size cannot exceed %d", MaxPageSize)
	}

	// Check mutual exclusion of page and offset (before pairing checks)
	if p.Page > 0 && p.Offset > 0 {
		return errors.New("page and offset parameters are mutually exclusive")
	}

	if p.Page == 0 && p.PageSize > 0 {
		return errors.New("page must be specified when using page-size: page must be >= 1")
	}
	if p.PageSize == 0 && p.Page > 0 {
		return errors.New("page-size must be specified when using page: page-size must be > 0")
	}

	return nil
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "age", "salary:desc", "address.city:asc"
// Returns the field name and order, or an error if invalid.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// IsPageBased returns true if page-based pagination is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// IsOffsetBased returns true if offset-based pagination is active.
func (p Params) IsOffsetBased() bool {
	return !p.IsPageBased()
}

// IsEnabled returns true if any pagination parameters are set.
func (p Params) IsEnabled() bool {
	return p.Limit > 0 || p.Page > 0 || p.PageSize > 0 || p.Offset > 0
}

// CalculateTotalPages calculates the total number of pages given a total row count.
// Only applicable for page-based mode. Returns 0 for offset-based mode.
func (p Params) CalculateTotalPages(totalRows int) int {
	if !p.IsPageBased() {
		return 0
	}
	return GetNumberOfPages(totalRows, p.PageSize)
}

// CalculateOffsetLimit returns the effective offset and limit for pagination.
// Handles both page-based and offset-based pagination modes.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.IsPageBased() {
		offset = (p.Page - 1) * p.PageSize
		// Use explicit limit if set, otherwise use page size
		if p.Limit > 0 {
			limit = p.Limit
		} else {
			limit = p.PageSize
		}
	} else {
		offset = p.Offset
		limit = p.Limit
	}

	return offset, limit
}

// State converts page-based params into a navigation State for totalRows.
// Offset-based params map to the page containing Offset.
func (p Params) State(totalRows int) State {
	meta := NewMeta(p, totalRows)
	return State{
		CurrentPage: meta.CurrentPage,
		RowsPerPage: meta.PageSize,
		RowCount:    totalRows,
	}
}

// Apply applies pagination to items and returns the selected window.
// For page-based pagination, a page beyond the end is capped to the last page.
// For offset-based pagination, an offset beyond the end yields an empty slice.
func Apply[T any](p Params, items []T) []T {
	if len(items) == 0 {
		return items
	}

	offset, limit := p.CalculateOffsetLimit()

	if p.IsPageBased() && offset >= len(items) {
		pageSize := p.PageSize
		if pageSize <= 0 {
			pageSize = len(items)
		}
		// Last page starts at the last multiple of pageSize that's < len(items)
		offset = ((len(items) - 1) / pageSize) * pageSize
	}

	if offset >= len(items) {
		return []T{}
	}

	end := offset + limit
	if limit == 0 || end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}
