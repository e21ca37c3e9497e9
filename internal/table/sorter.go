package table

import (
	"fmt"
	"sort"
	"strings"
)

// Sorter defines the interface for sorting rows by a named field.
type Sorter interface {
	// Sort sorts rows by the specified field and order.
	Sort(rows []Row, field string, dir Direction) []Row
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns a list of valid field names for sorting.
	GetValidFields() []string
}

// ColumnSorter implements Sorter over a set of column definitions.
// Valid fields are the paths of sortable columns; a column's own SortFunc
// takes precedence over the default comparison sort.
type ColumnSorter struct {
	columns map[string]Column
}

// NewColumnSorter creates a ColumnSorter from columns.
// Columns that are not sortable, or whose selector is not a path, are ignored.
func NewColumnSorter(columns []Column) *ColumnSorter {
	s := &ColumnSorter{columns: make(map[string]Column)}
	for _, col := range columns {
		field := col.Field()
		if !col.Sortable || field == "" {
			continue
		}
		s.columns[field] = col
	}
	return s
}

// IsValidField checks if the field is valid for sorting.
func (s *ColumnSorter) IsValidField(field string) bool {
	_, ok := s.columns[field]
	return ok
}

// GetValidFields returns all valid sort fields.
func (s *ColumnSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.columns))
	for field := range s.columns {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort sorts rows by the specified field and direction.
// Returns a new sorted slice; does not modify the original.
// If field is invalid, returns the original slice unchanged.
func (s *ColumnSorter) Sort(rows []Row, field string, dir Direction) []Row {
	col, ok := s.columns[field]
	if !ok {
		return rows
	}
	return Sort(rows, field, dir, col.SortFunc)
}

// ValidateField returns ErrInvalidSortField, listing the valid fields, when
// field is not sortable.
func (s *ColumnSorter) ValidateField(field string) error {
	if s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid fields: %s)",
		ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
}
