package table

// CellProps holds per-row presentation properties for one cell.
type CellProps struct {
	Style    string
	Title    string
	Disabled bool
}

// CellHooks are optional functions evaluated per row to produce CellProps.
// Each hook has a fixed signature and is called directly; a nil hook leaves
// the corresponding base property untouched.
type CellHooks struct {
	// Style returns a named style for the cell (e.g. "warn", "muted").
	Style func(row Row) string

	// Title returns hover/annotation text for the cell.
	Title func(row Row) string

	// Disabled reports whether the cell should be rendered inactive.
	Disabled func(row Row) bool
}

// IsZero reports whether no hook is set.
func (h CellHooks) IsZero() bool {
	return h.Style == nil && h.Title == nil && h.Disabled == nil
}

// Resolve evaluates the hooks against row, starting from base.
func (h CellHooks) Resolve(base CellProps, row Row) CellProps {
	props := base
	if h.Style != nil {
		props.Style = h.Style(row)
	}
	if h.Title != nil {
		props.Title = h.Title(row)
	}
	if h.Disabled != nil {
		props.Disabled = h.Disabled(row)
	}
	return props
}
