package tui

import (
	"fmt"
	"strings"

	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/datatable/internal/pagination"
	"github.com/rshade/datatable/internal/table"
)

// Layout constants.
const (
	defaultWidth   = 100
	defaultHeight  = 24
	chromeHeight   = 6 // title, header border, footer, help
	headerHeight   = 2
	minColumnWidth = 3
	maxColumnWidth = 40
	cellPadding    = 2
)

// BrowseOptions configures a BrowseModel.
type BrowseOptions struct {
	Title              string
	RowsPerPage        int
	RowsPerPageOptions []int
	SortField          string
	Direction          table.Direction
	RangeSeparator     string
	RowsPerPageText    string
	Precision          int
}

// BrowseModel is the Bubble Tea model for paging through rows interactively.
// Rows are re-sorted and re-sliced on every change; nothing is cached
// between page computations except the sorted order.
type BrowseModel struct {
	columns    []table.Column
	rows       []table.Row // Source of truth
	sorted     []table.Row // Sorted for display
	sorter     *table.ColumnSorter
	sortFields []string
	sortField  string
	direction  table.Direction

	page    pagination.State
	options []int
	opts    BrowseOptions

	table    btable.Model
	width    int
	height   int
	quitting bool
}

// NewBrowseModel creates a model over rows displayed with the visible subset
// of columns.
func NewBrowseModel(columns []table.Column, rows []table.Row, opts BrowseOptions) *BrowseModel {
	visible := table.VisibleColumns(columns)

	if opts.RowsPerPage <= 0 {
		opts.RowsPerPage = pagination.DefaultRowsPerPage
	}
	if len(opts.RowsPerPageOptions) == 0 {
		opts.RowsPerPageOptions = pagination.DefaultRowsPerPageOptions
	}
	if opts.RowsPerPageText == "" {
		opts.RowsPerPageText = "Rows per page:"
	}

	m := &BrowseModel{
		columns:   visible,
		rows:      rows,
		sorter:    table.NewColumnSorter(visible),
		direction: opts.Direction,
		page: pagination.State{
			CurrentPage: 1,
			RowsPerPage: opts.RowsPerPage,
			RowCount:    len(rows),
		},
		options: opts.RowsPerPageOptions,
		opts:    opts,
		width:   defaultWidth,
		height:  defaultHeight,
	}

	for _, col := range visible {
		if m.sorter.IsValidField(col.Field()) {
			m.sortFields = append(m.sortFields, col.Field())
		}
	}
	if m.sorter.IsValidField(opts.SortField) {
		m.sortField = opts.SortField
	}

	m.table = btable.New(btable.WithFocused(true))
	s := btable.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	m.table.SetStyles(s)

	m.applySort()
	m.refresh()
	return m
}

// Init initializes the model.
func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case keyQuit, keyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case keyNext, keyNextAlt:
			m.navigate(pagination.Next)
			return m, nil
		case keyPrev, keyPrevAlt:
			m.navigate(pagination.Previous)
			return m, nil
		case keyFirst:
			m.navigate(pagination.First)
			return m, nil
		case keyLast:
			m.navigate(pagination.Last)
			return m, nil
		case keySort:
			m.cycleSort()
			return m, nil
		case keyReverse:
			m.reverse()
			return m, nil
		case keyMoreRows:
			m.stepRowsPerPage(1)
			return m, nil
		case keyFewerRows:
			m.stepRowsPerPage(-1)
			return m, nil
		}
	}

	// Row-level navigation is handled by the embedded table.
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the model.
func (m *BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.opts.Title != "" {
		b.WriteString(TitleStyle.Render(m.opts.Title))
		b.WriteString("\n")
	}
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(FooterStyle.Render(m.footer()))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(helpText))
	return b.String()
}

// CurrentPage returns the 1-based page being displayed.
func (m *BrowseModel) CurrentPage() int { return m.page.CurrentPage }

// Pages returns the total number of pages.
func (m *BrowseModel) Pages() int { return m.page.Pages() }

// RowsPerPage returns the active page size.
func (m *BrowseModel) RowsPerPage() int { return m.page.RowsPerPage }

// SortField returns the active sort field, or "" when rows are unsorted.
func (m *BrowseModel) SortField() string { return m.sortField }

// Direction returns the active sort direction.
func (m *BrowseModel) Direction() table.Direction { return m.direction }

// Quitting reports whether the user asked to leave.
func (m *BrowseModel) Quitting() bool { return m.quitting }

// PageRows returns the rows on the current page in display order.
func (m *BrowseModel) PageRows() []table.Row {
	return pagination.Page(m.sorted, m.page)
}

// SelectedRow returns the row under the cursor, if any.
func (m *BrowseModel) SelectedRow() (table.Row, bool) {
	rows := m.PageRows()
	i := m.table.Cursor()
	if i < 0 || i >= len(rows) {
		return nil, false
	}
	return rows[i], true
}

func (m *BrowseModel) navigate(action pagination.Action) {
	page, changed := pagination.Navigate(m.page, action)
	if !changed {
		return
	}
	m.page.CurrentPage = page
	m.refresh()
	m.table.SetCursor(0)
}

// cycleSort moves to the next sortable column in display order, ascending.
func (m *BrowseModel) cycleSort() {
	if len(m.sortFields) == 0 {
		return
	}
	next := 0
	for i, f := range m.sortFields {
		if f == m.sortField {
			next = (i + 1) % len(m.sortFields)
			break
		}
	}
	m.sortField = m.sortFields[next]
	m.direction = table.Ascending
	m.applySort()
	m.refresh()
}

func (m *BrowseModel) reverse() {
	if m.sortField == "" {
		return
	}
	m.direction = m.direction.Invert()
	m.applySort()
	m.refresh()
}

func (m *BrowseModel) stepRowsPerPage(delta int) {
	size := pagination.StepRowsPerPage(m.options, m.page.RowsPerPage, delta)
	if size == m.page.RowsPerPage {
		return
	}
	m.page = pagination.ChangeRowsPerPage(m.page, size)
	m.refresh()
	m.table.SetCursor(0)
}

func (m *BrowseModel) applySort() {
	if m.sortField == "" {
		m.sorted = m.rows
		return
	}
	m.sorted = m.sorter.Sort(m.rows, m.sortField, m.direction)
}

// refresh rebuilds the embedded table for the current page.
func (m *BrowseModel) refresh() {
	pageRows := m.PageRows()
	cells := make([][]string, len(pageRows))
	for r, row := range pageRows {
		cells[r] = make([]string, len(m.columns))
		for c, col := range m.columns {
			cells[r][c] = cellText(col, row, m.opts.Precision)
		}
	}

	cols := make([]btable.Column, len(m.columns))
	for c, col := range m.columns {
		title := col.Header()
		if f := col.Field(); f != "" && f == m.sortField {
			title += " " + sortIndicator(m.direction == table.Ascending)
		}
		cols[c] = btable.Column{Title: title, Width: columnWidth(col, title, cells, c)}
	}

	rows := make([]btable.Row, len(cells))
	for r := range cells {
		row := make(btable.Row, len(cells[r]))
		for c, text := range cells[r] {
			props := m.columns[c].Hooks.Resolve(table.CellProps{}, pageRows[r])
			row[c] = styleCell(text, props, cols[c].Width, m.columns[c].Right)
		}
		rows[r] = row
	}

	// Clear rows before swapping columns so the table never renders
	// stale rows against a different column set.
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetWidth(m.width)
	m.table.SetHeight(max(1, min(m.page.RowsPerPage, m.height-chromeHeight)) + headerHeight)
}

func (m *BrowseModel) footer() string {
	parts := []string{
		fmt.Sprintf("%s %d", m.opts.RowsPerPageText, m.page.RowsPerPage),
		pagination.RangeLabel(m.page, m.opts.RangeSeparator),
		fmt.Sprintf("page %d/%d", m.page.CurrentPage, max(1, m.page.Pages())),
	}
	if m.sortField != "" {
		parts = append(parts, fmt.Sprintf("sort: %s %s", m.sortField, m.direction))
	}
	if row, ok := m.SelectedRow(); ok {
		for _, col := range m.columns {
			if col.Hooks.Title == nil {
				continue
			}
			if title := col.Hooks.Title(row); title != "" {
				parts = append(parts, title)
			}
		}
	}
	return strings.Join(parts, "  •  ")
}

func cellText(col table.Column, row table.Row, precision int) string {
	v, err := col.Value(row)
	if err != nil {
		return "!"
	}
	return table.FormatValue(v, precision)
}

func columnWidth(col table.Column, title string, cells [][]string, c int) int {
	if col.Width > 0 {
		return col.Width
	}
	w := lipgloss.Width(title)
	for _, row := range cells {
		w = max(w, lipgloss.Width(row[c]))
	}
	return max(minColumnWidth, min(w+cellPadding, maxColumnWidth))
}

func styleCell(text string, props table.CellProps, width int, right bool) string {
	if right {
		if pad := width - lipgloss.Width(text); pad > 0 {
			text = strings.Repeat(" ", pad) + text
		}
	}
	switch {
	case props.Disabled:
		return CellStyle(StyleMuted).Render(text)
	case props.Style != "":
		return CellStyle(props.Style).Render(text)
	default:
		return text
	}
}
