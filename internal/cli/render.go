package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"syscall"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rshade/datatable/internal/config"
	"github.com/rshade/datatable/internal/pagination"
	"github.com/rshade/datatable/internal/table"
	"github.com/rshade/datatable/internal/tui"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// ErrUnsupportedOutput is returned for unknown --output values.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// rowsOutput is the JSON and YAML document shape for rendered rows.
type rowsOutput struct {
	Rows       []map[string]any `json:"rows"                 yaml:"rows"`
	Total      int              `json:"total"                yaml:"total"`
	Pagination *pagination.Meta `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// renderRequest carries everything a renderer may need.
type renderRequest struct {
	columns   []table.Column
	rows      []table.Row // Rows on the page being rendered
	total     int         // Rows before pagination
	meta      *pagination.Meta
	label     string // Visible range, e.g. "11-20 of 40"; shown with meta
	precision int
}

// validateOutputFormat rejects formats the renderers do not understand.
func validateOutputFormat(format string) error {
	if !slices.Contains(config.ValidOutputFormats, format) {
		return fmt.Errorf("%w: %q (valid: %s)", ErrUnsupportedOutput, format,
			strings.Join(config.ValidOutputFormats, ", "))
	}
	return nil
}

// renderRows routes rows to the renderer for format.
func renderRows(w io.Writer, format string, req renderRequest) error {
	switch format {
	case config.FormatJSON:
		return renderRowsJSON(w, req)
	case config.FormatNDJSON:
		// NDJSON streams rows only; pagination metadata is not emitted.
		err := renderRowsNDJSON(w, req)
		if isBrokenPipe(err) {
			return nil
		}
		return err
	case config.FormatYAML:
		return renderRowsYAML(w, req)
	case config.FormatStyled:
		return renderRowsStyled(w, req)
	case config.FormatTable:
		return renderRowsTable(w, req)
	default:
		return validateOutputFormat(format)
	}
}

// renderRowsTable renders rows as an aligned plain-text table.
func renderRowsTable(w io.Writer, req renderRequest) error {
	columns := table.VisibleColumns(req.columns)
	if len(req.rows) == 0 {
		fmt.Fprintln(w, "No rows to display.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	headers := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = strings.ToUpper(recordKey(col, i))
		rules[i] = strings.Repeat("-", len(headers[i]))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))

	cells := make([]string, len(columns))
	for _, row := range req.rows {
		for i, col := range columns {
			v, err := col.Value(row)
			if err != nil {
				return fmt.Errorf("column %q: %w", recordKey(col, i), err)
			}
			cells[i] = table.FormatValue(v, req.precision)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}

	if req.meta != nil {
		fmt.Fprintf(w, "\n%s (page %d of %d)\n", req.label, req.meta.CurrentPage, req.meta.TotalPages)
	}
	return nil
}

// renderRowsStyled renders rows as a bordered lipgloss table.
func renderRowsStyled(w io.Writer, req renderRequest) error {
	fmt.Fprintln(w, tui.RenderTable(req.columns, req.rows, terminalWidth(), req.precision))
	if req.meta != nil {
		fmt.Fprintln(w, tui.FooterStyle.Render(fmt.Sprintf("%s (page %d of %d)",
			req.label, req.meta.CurrentPage, req.meta.TotalPages)))
	}
	return nil
}

// renderRowsJSON renders rows as a single indented JSON document.
func renderRowsJSON(w io.Writer, req renderRequest) error {
	out, err := buildRowsOutput(req)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// renderRowsNDJSON renders one JSON object per row.
func renderRowsNDJSON(w io.Writer, req renderRequest) error {
	encoder := json.NewEncoder(w)
	columns := table.VisibleColumns(req.columns)
	for _, row := range req.rows {
		rec, err := projectRow(columns, row)
		if err != nil {
			return err
		}
		if err = encoder.Encode(rec); err != nil {
			return fmt.Errorf("encoding NDJSON: %w", err)
		}
	}
	return nil
}

// renderRowsYAML renders rows as a YAML document.
func renderRowsYAML(w io.Writer, req renderRequest) error {
	out, err := buildRowsOutput(req)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(out); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

func buildRowsOutput(req renderRequest) (rowsOutput, error) {
	columns := table.VisibleColumns(req.columns)
	out := rowsOutput{
		Rows:       make([]map[string]any, 0, len(req.rows)),
		Total:      req.total,
		Pagination: req.meta,
	}
	for _, row := range req.rows {
		rec, err := projectRow(columns, row)
		if err != nil {
			return rowsOutput{}, err
		}
		out.Rows = append(out.Rows, rec)
	}
	return out, nil
}

// projectRow resolves every column of row into a record keyed by column header.
func projectRow(columns []table.Column, row table.Row) (map[string]any, error) {
	rec := make(map[string]any, len(columns))
	for i, col := range columns {
		v, err := col.Value(row)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", recordKey(col, i), err)
		}
		rec[recordKey(col, i)] = v
	}
	return rec, nil
}

// recordKey names column i in rendered output.
func recordKey(col table.Column, i int) string {
	if h := col.Header(); h != "" {
		return h
	}
	return fmt.Sprintf("column_%d", i+1)
}

// isBrokenPipe checks if an error is a broken pipe error (SIGPIPE).
// This occurs when output is piped to commands like `head` that close the pipe early.
func isBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EPIPE
	}
	return strings.Contains(err.Error(), "broken pipe")
}
