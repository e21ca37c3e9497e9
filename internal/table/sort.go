package table

import (
	"fmt"
	"slices"
	"strings"
)

// Direction is a sort direction.
type Direction int

const (
	// Ascending orders smallest values first.
	Ascending Direction = iota
	// Descending orders largest values first.
	Descending
)

// Sort direction strings.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return DirectionDesc
	}
	return DirectionAsc
}

// Invert returns the opposite direction.
func (d Direction) Invert() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// DirectionFromBool maps true to Ascending and false to Descending.
func DirectionFromBool(asc bool) Direction {
	if asc {
		return Ascending
	}
	return Descending
}

// ParseDirection parses "asc" or "desc" (case-insensitive, surrounding space ignored).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case DirectionAsc:
		return Ascending, nil
	case DirectionDesc:
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: got %q", ErrInvalidDirection, s)
	}
}

// SortFunc is a caller-supplied sort that fully replaces the default ordering.
type SortFunc func(rows []Row, field string, dir Direction) []Row

// SortKey is one criterion of a multi-key sort.
type SortKey struct {
	Field     string
	Direction Direction
}

// Sort returns rows ordered by the value at field.
//
// When fn is non-nil the call is delegated to it with a copy of rows.
// Otherwise rows are stably sorted with CompareValues, so rows with equal
// keys keep their relative order in either direction. rows is never modified.
func Sort(rows []Row, field string, dir Direction, fn SortFunc) []Row {
	if fn != nil {
		return fn(slices.Clone(rows), field, dir)
	}
	return SortBy(rows, SortKey{Field: field, Direction: dir})
}

// SortBy returns a stably sorted copy of rows, ordered by keys in priority order.
// With no keys the copy keeps the input order.
func SortBy(rows []Row, keys ...SortKey) []Row {
	// Resolve every key once per row rather than once per comparison.
	type entry struct {
		row  Row
		vals []any
	}
	entries := make([]entry, len(rows))
	for i, row := range rows {
		vals := make([]any, len(keys))
		for k, key := range keys {
			vals[k] = resolvePath(row, key.Field)
		}
		entries[i] = entry{row: row, vals: vals}
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		for k, key := range keys {
			c := CompareValues(a.vals[k], b.vals[k])
			if key.Direction == Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})

	sorted := make([]Row, len(entries))
	for i, e := range entries {
		sorted[i] = e.row
	}
	return sorted
}
