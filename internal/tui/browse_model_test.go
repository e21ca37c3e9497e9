package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datatable/internal/table"
)

func testColumns() []table.Column {
	return []table.Column{
		{Name: "Name", Selector: table.Path("name"), Sortable: true},
		{Name: "Age", Selector: table.Path("age"), Sortable: true, Right: true},
		{Name: "Note", Selector: table.Format(func(r table.Row) any { return fmt.Sprintf("#%v", r["age"]) })},
		{Name: "Hidden", Selector: table.Path("secret"), Omit: true},
	}
}

// testRows returns n rows with names r01..rNN and descending ages.
func testRows(n int) []table.Row {
	rows := make([]table.Row, n)
	for i := range rows {
		rows[i] = table.Row{"name": fmt.Sprintf("r%02d", i+1), "age": n - i, "secret": "x"}
	}
	return rows
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *BrowseModel, msg tea.Msg) *BrowseModel {
	t.Helper()
	updated, _ := m.Update(msg)
	bm, ok := updated.(*BrowseModel)
	require.True(t, ok)
	return bm
}

func TestNewBrowseModel_Defaults(t *testing.T) {
	m := NewBrowseModel(testColumns(), testRows(40), BrowseOptions{})

	assert.Equal(t, 1, m.CurrentPage())
	assert.Equal(t, 4, m.Pages())
	assert.Equal(t, 10, m.RowsPerPage())
	assert.Empty(t, m.SortField())
	assert.Len(t, m.columns, 3, "omitted columns are dropped")
	assert.Equal(t, []string{"name", "age"}, m.sortFields)
	assert.Nil(t, m.Init())

	rows := m.PageRows()
	require.Len(t, rows, 10)
	assert.Equal(t, "r01", rows[0]["name"])
}

func TestBrowseModel_Navigation(t *testing.T) {
	m := NewBrowseModel(testColumns(), testRows(40), BrowseOptions{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.CurrentPage(), "previous on first page is a no-op")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.CurrentPage())
	assert.Equal(t, "r11", m.PageRows()[0]["name"])

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 4, m.CurrentPage())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 4, m.CurrentPage(), "next on last page is a no-op")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 4, m.CurrentPage())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 1, m.CurrentPage())

	m = press(t, m, keyRunes("n"))
	m = press(t, m, keyRunes("n"))
	m = press(t, m, keyRunes("p"))
	assert.Equal(t, 2, m.CurrentPage())
}

func TestBrowseModel_SinglePageIgnoresNavigation(t *testing.T) {
	m := NewBrowseModel(testColumns(), testRows(5), BrowseOptions{})
	for _, k := range []tea.KeyType{tea.KeyRight, tea.KeyEnd, tea.KeyLeft, tea.KeyHome} {
		m = press(t, m, tea.KeyMsg{Type: k})
		assert.Equal(t, 1, m.CurrentPage())
	}
}

func TestBrowseModel_SortCycleAndReverse(t *testing.T) {
	m := NewBrowseModel(testColumns(), testRows(40), BrowseOptions{})

	// Reverse without a sort field does nothing.
	m = press(t, m, keyRunes("r"))
	assert.Empty(t, m.SortField())

	m = press(t, m, keyRunes("s"))
	assert.Equal(t, "name", m.SortField())
	assert.Equal(t, table.Ascending, m.Direction())
	assert.Equal(t, "r01", m.PageRows()[0]["name"])

	m = press(t, m, keyRunes("s"))
	assert.Equal(t, "age", m.SortField())
	assert.Equal(t, "r40", m.PageRows()[0]["name"], "youngest first")

	m = press(t, m, keyRunes("r"))
	assert.Equal(t, table.Descending, m.Direction())
	assert.Equal(t, "r01", m.PageRows()[0]["name"])

	// Cycling wraps and resets to ascending.
	m = press(t, m, keyRunes("s"))
	assert.Equal(t, "name", m.SortField())
	assert.Equal(t, table.Ascending, m.Direction())
}

func TestBrowseModel_InitialSort(t *testing.T) {
	m := NewBrowseModel(testColumns(), testRows(12), BrowseOptions{SortField: "age", Direction: table.Descending})
	assert.Equal(t, "age", m.SortField())
	assert.Equal(t, "r01", m.PageRows()[0]["name"])

	m = NewBrowseModel(testColumns(), testRows(12), BrowseOptions{SortField: "secret"})
	assert.Empty(t, m.SortField(), "non-sortable field is ignored")
}

func TestBrowseModel_RowsPerPage(t *testing.T) {
	m := NewBrowseModel(testColumns(), testRows(40), BrowseOptions{})

	m = press(t, m, keyRunes("-"))
	assert.Equal(t, 10, m.RowsPerPage(), "already at smallest option")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 4, m.CurrentPage())

	m = press(t, m, keyRunes("+"))
	assert.Equal(t, 15, m.RowsPerPage())
	assert.Equal(t, 3, m.CurrentPage(), "page clamps to the new last page")

	m = press(t, m, keyRunes("+"))
	m = press(t, m, keyRunes("+"))
	m = press(t, m, keyRunes("+"))
	m = press(t, m, keyRunes("+"))
	assert.Equal(t, 30, m.RowsPerPage())
	assert.Equal(t, 2, m.CurrentPage())
	assert.Len(t, m.PageRows(), 10)
}

func TestBrowseModel_Quit(t *testing.T) {
	m := NewBrowseModel(testColumns(), testRows(3), BrowseOptions{})
	updated, cmd := m.Update(keyRunes("q"))
	bm, ok := updated.(*BrowseModel)
	require.True(t, ok)
	assert.True(t, bm.Quitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, bm.View())
}

func TestBrowseModel_WindowResize(t *testing.T) {
	m := NewBrowseModel(testColumns(), testRows(3), BrowseOptions{})
	m = press(t, m, tea.WindowSizeMsg{Width: 60, Height: 10})
	assert.Equal(t, 60, m.width)
	assert.Equal(t, 10, m.height)
}

func TestBrowseModel_View(t *testing.T) {
	m := NewBrowseModel(testColumns(), testRows(40), BrowseOptions{
		Title:          "People",
		SortField:      "name",
		RangeSeparator: "de",
	})
	view := m.View()

	assert.Contains(t, view, "People")
	assert.Contains(t, view, "Name ▲")
	assert.Contains(t, view, "1-10 de 40")
	assert.Contains(t, view, "Rows per page: 10")
	assert.Contains(t, view, "page 1/4")
	assert.Contains(t, view, "sort: name asc")
	assert.Contains(t, view, "r01")
	assert.Contains(t, view, "#40")
	assert.NotContains(t, view, "Hidden")
}

func TestBrowseModel_EmptyRows(t *testing.T) {
	m := NewBrowseModel(testColumns(), nil, BrowseOptions{})
	assert.Equal(t, 0, m.Pages())
	assert.Empty(t, m.PageRows())
	_, ok := m.SelectedRow()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "0-0 of 0")
	assert.Contains(t, m.View(), "page 1/1")
}

func TestBrowseModel_TitleHookInFooter(t *testing.T) {
	cols := []table.Column{{
		Name:     "Name",
		Selector: table.Path("name"),
		Hooks: table.CellHooks{
			Title: func(r table.Row) string { return "selected " + r["name"].(string) },
		},
	}}
	m := NewBrowseModel(cols, testRows(3), BrowseOptions{})

	row, ok := m.SelectedRow()
	require.True(t, ok)
	assert.Equal(t, "r01", row["name"])
	assert.Contains(t, m.footer(), "selected r01")
}

func TestStyleCell(t *testing.T) {
	assert.Equal(t, "   42", styleCell("42", table.CellProps{}, 5, true))
	assert.Equal(t, "42", styleCell("42", table.CellProps{}, 5, false))
	assert.Contains(t, styleCell("x", table.CellProps{Disabled: true}, 3, false), "x")
	assert.Contains(t, styleCell("x", table.CellProps{Style: StyleError}, 3, false), "x")
}

func TestColumnWidth(t *testing.T) {
	cells := [][]string{{"abc"}, {"abcdefgh"}}
	assert.Equal(t, 10, columnWidth(table.Column{}, "ab", cells, 0))
	assert.Equal(t, 7, columnWidth(table.Column{Width: 7}, "ab", cells, 0))
	assert.Equal(t, minColumnWidth, columnWidth(table.Column{}, "", [][]string{{""}}, 0))
}
