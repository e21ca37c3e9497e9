package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/datatable/internal/config"
	"github.com/rshade/datatable/internal/ingest"
	"github.com/rshade/datatable/internal/pagination"
	"github.com/rshade/datatable/internal/table"
	"github.com/rshade/datatable/internal/tui"
)

// ErrNotTerminal is returned when browse is run without an interactive terminal.
var ErrNotTerminal = errors.New("browse requires an interactive terminal; use 'datatable view' instead")

// browseParams holds the parameters for the browse command execution.
type browseParams struct {
	columns  string
	sort     string
	rowsPath string
	format   string
	pageSize int
}

// NewBrowseCmd creates the "browse" command that opens rows in an
// interactive pager.
func NewBrowseCmd() *cobra.Command {
	var params browseParams

	cmd := &cobra.Command{
		Use:   "browse FILE...",
		Short: "Page through rows interactively",
		Long: `Open rows in an interactive terminal table.

Keys:
  ←/→ or p/n   previous/next page
  home/end     first/last page
  s            sort by the next sortable column
  r            reverse the sort direction
  +/-          more/fewer rows per page
  ↑/↓          move the cursor
  q            quit`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}
			model, err := buildBrowseModel(cmd, args, params)
			if err != nil {
				return err
			}
			if _, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run(); err != nil {
				return fmt.Errorf("failed to run interactive browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&params.columns, "columns", "",
		"Comma-separated column paths, optionally with headers (e.g., 'id,address.city=City')")
	cmd.Flags().StringVar(&params.sort, "sort", "", "Initial sort expression (e.g., 'age:desc')")
	cmd.Flags().StringVar(&params.rowsPath, "rows-path", "",
		"Path to the row array inside a JSON or YAML document")
	cmd.Flags().StringVar(&params.format, "format", "",
		"Input format: json, ndjson, yaml or csv (default: from file extension)")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0, "Initial rows per page (default: table.rows_per_page)")

	return cmd
}

// buildBrowseModel loads rows and configures the interactive model.
func buildBrowseModel(cmd *cobra.Command, paths []string, params browseParams) (*tui.BrowseModel, error) {
	cfg := config.GetGlobalConfig()

	if params.pageSize < 0 || params.pageSize > pagination.MaxPageSize {
		return nil, fmt.Errorf("page-size must be between 0 and %d, got %d", pagination.MaxPageSize, params.pageSize)
	}

	format, err := ingest.ParseFormat(params.format)
	if err != nil {
		return nil, err
	}
	rows, err := ingest.LoadAll(cmd.Context(), paths, ingest.Options{Format: format, RowsPath: params.rowsPath})
	if err != nil {
		return nil, fmt.Errorf("loading rows: %w", err)
	}

	columns, err := resolveColumns(params.columns, rows, "")
	if err != nil {
		return nil, err
	}

	opts := tui.BrowseOptions{
		Title:              browseTitle(paths),
		RowsPerPage:        pagination.ClampPageSize(params.pageSize, cfg.Table.RowsPerPage, pagination.MaxPageSize),
		RowsPerPageOptions: cfg.Table.RowsPerPageOptions,
		RangeSeparator:     cfg.Table.RangeSeparator,
		RowsPerPageText:    cfg.Table.RowsPerPageText,
		Precision:          cfg.Output.Precision,
	}

	if params.sort != "" {
		field, order, parseErr := pagination.ParseSort(params.sort)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid sort expression: %w", parseErr)
		}
		if err = table.NewColumnSorter(columns).ValidateField(field); err != nil {
			return nil, err
		}
		if !strings.Contains(params.sort, ":") {
			order = cfg.Table.DefaultSortOrder
		}
		dir, dirErr := table.ParseDirection(order)
		if dirErr != nil {
			return nil, dirErr
		}
		opts.SortField = field
		opts.Direction = dir
	}

	return tui.NewBrowseModel(columns, rows, opts), nil
}

func browseTitle(paths []string) string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return strings.Join(names, ", ")
}
