package table

import "errors"

// Common errors returned by the table package.
var (
	// ErrInvalidSelector is returned when a selector is neither a path nor a formatter.
	ErrInvalidSelector = errors.New("selector must be a . delimited path (e.g. my.property) or a formatter")

	// ErrInvalidDirection is returned when a sort direction string is not asc or desc.
	ErrInvalidDirection = errors.New("sort direction must be 'asc' or 'desc'")

	// ErrInvalidSortField is returned when sorting by a field no sortable column exposes.
	ErrInvalidSortField = errors.New("invalid sort field")
)
