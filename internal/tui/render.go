package tui

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/datatable/internal/table"
)

// RenderTable renders rows as a static bordered table. Cell hooks select
// per-cell styles; a positive width caps the table width.
func RenderTable(columns []table.Column, rows []table.Row, width, precision int) string {
	visible := table.VisibleColumns(columns)

	headers := make([]string, len(visible))
	for i, col := range visible {
		headers[i] = col.Header()
	}

	cells := make([][]string, len(rows))
	props := make([][]table.CellProps, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(visible))
		props[r] = make([]table.CellProps, len(visible))
		for c, col := range visible {
			cells[r][c] = cellText(col, row, precision)
			props[r][c] = col.Hooks.Resolve(table.CellProps{}, row)
		}
	}

	base := lipgloss.NewStyle().Padding(0, 1)
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return base.Bold(true)
			}
			s := base
			if col < len(visible) && visible[col].Right {
				s = s.Align(lipgloss.Right)
			}
			if row < 0 || row >= len(props) || col >= len(props[row]) {
				return s
			}
			p := props[row][col]
			switch {
			case p.Disabled:
				return s.Inherit(CellStyle(StyleMuted))
			case p.Style != "":
				return s.Inherit(CellStyle(p.Style))
			default:
				return s
			}
		})

	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}
