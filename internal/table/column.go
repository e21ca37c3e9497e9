package table

// Column describes how one field is displayed.
type Column struct {
	// ID is assigned by DecorateColumns and stays stable for the table's lifetime.
	ID string `json:"id" yaml:"id"`

	// Name is the header text.
	Name string `json:"name" yaml:"name"`

	// Selector extracts the cell value from a row.
	Selector Selector `json:"-" yaml:"-"`

	// Sortable marks the column as eligible for user-requested sorting.
	Sortable bool `json:"sortable" yaml:"sortable"`

	// SortFunc, when set, replaces the default comparison-based sort for this column.
	SortFunc SortFunc `json:"-" yaml:"-"`

	// Hooks resolve per-row cell properties.
	Hooks CellHooks `json:"-" yaml:"-"`

	// Width is a preferred display width in characters (0 = automatic).
	Width int `json:"width,omitempty" yaml:"width,omitempty"`

	// Right requests right alignment (typically numeric columns).
	Right bool `json:"right,omitempty" yaml:"right,omitempty"`

	// Omit hides the column without removing it from the definition list.
	Omit bool `json:"omit,omitempty" yaml:"omit,omitempty"`
}

// Field returns the column's path when its selector is a PathSelector, or "" otherwise.
func (c Column) Field() string {
	if p, ok := c.Selector.(PathSelector); ok {
		return string(p)
	}
	return ""
}

// Header returns the column's display name, falling back to its field path.
func (c Column) Header() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Field()
}

// Value resolves the column's cell value for row.
func (c Column) Value(row Row) (any, error) {
	return GetProperty(row, c.Selector)
}

// DecorateColumns returns a copy of columns in which every column carries a
// freshly generated ID from ids. Any ID already present is replaced. The input
// slice is not modified. A nil ids falls back to a new ULIDSource.
func DecorateColumns(columns []Column, ids IDSource) []Column {
	if ids == nil {
		ids = NewULIDSource()
	}

	decorated := make([]Column, len(columns))
	for i, col := range columns {
		col.ID = ids.NextID()
		decorated[i] = col
	}
	return decorated
}

// VisibleColumns returns the columns whose Omit flag is unset.
func VisibleColumns(columns []Column) []Column {
	visible := make([]Column, 0, len(columns))
	for _, col := range columns {
		if !col.Omit {
			visible = append(visible, col)
		}
	}
	return visible
}

// ColumnsFromFields builds sortable path columns named after their field paths.
func ColumnsFromFields(fields []string) []Column {
	columns := make([]Column, len(fields))
	for i, f := range fields {
		columns[i] = Column{
			Name:     f,
			Selector: PathSelector(f),
			Sortable: true,
		}
	}
	return columns
}
