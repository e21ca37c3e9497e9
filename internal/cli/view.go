package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/datatable/internal/config"
	"github.com/rshade/datatable/internal/ingest"
	"github.com/rshade/datatable/internal/logging"
	"github.com/rshade/datatable/internal/pagination"
	"github.com/rshade/datatable/internal/table"
)

// viewParams holds the parameters for the view command execution.
type viewParams struct {
	columns  string
	sort     string
	page     int
	pageSize int
	limit    int
	offset   int
	rowsPath string
	format   string
	output   string
	idSource string
}

// NewViewCmd creates the "view" command that loads rows from one or more
// files, sorts and paginates them, and renders the selected window.
func NewViewCmd() *cobra.Command {
	var params viewParams

	cmd := &cobra.Command{
		Use:   "view FILE...",
		Short: "Sort, paginate and render rows from files",
		Long: `Load rows from JSON, NDJSON, YAML or CSV files and render them.

Rows from multiple files are concatenated in argument order. Columns default to
every top-level field; --columns picks and names them, and accepts dot paths
into nested objects.

Pagination is either page-based (--page with --page-size) or offset-based
(--offset with --limit). The two modes are mutually exclusive. When --page is
given without --page-size the configured rows per page is used.`,
		Example: `  # Render all rows as a table
  datatable view people.json

  # Second page of 10 rows, sorted by nested city
  datatable view people.json --columns name,address.city=City --sort address.city --page 2 --page-size 10

  # Rows nested inside an API response, as YAML
  datatable view response.json --rows-path data.items --output yaml

  # Skip 20 rows and take 5
  datatable view events.ndjson --offset 20 --limit 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeView(cmd, args, params)
		},
	}

	cmd.Flags().StringVar(&params.columns, "columns", "",
		"Comma-separated column paths, optionally with headers (e.g., 'id,address.city=City')")
	cmd.Flags().StringVar(&params.sort, "sort", "",
		"Sort expression (e.g., 'age:desc', 'address.city')")
	cmd.Flags().IntVar(&params.page, "page", 0,
		"Page number for page-based pagination (1-indexed, 0 = disabled)")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0,
		"Number of rows per page (defaults to table.rows_per_page when --page is set)")
	cmd.Flags().IntVar(&params.limit, "limit", 0,
		"Maximum number of rows to return (0 = unlimited)")
	cmd.Flags().IntVar(&params.offset, "offset", 0,
		"Number of rows to skip for offset-based pagination")
	cmd.Flags().StringVar(&params.rowsPath, "rows-path", "",
		"Path to the row array inside a JSON or YAML document (e.g., 'data.items')")
	cmd.Flags().StringVar(&params.format, "format", "",
		"Input format: json, ndjson, yaml or csv (default: from file extension)")
	cmd.Flags().StringVar(&params.output, "output", "",
		"Output format: table, json, ndjson, yaml or styled (default: output.default_format)")
	cmd.Flags().StringVar(&params.idSource, "id-source", "",
		"Column id source: ulid, uuid or counter (default: table.id_source)")

	return cmd
}

// executeView loads, sorts, paginates and renders rows.
//
//nolint:funlen // Linear pipeline: load, columns, sort, paginate, render.
func executeView(cmd *cobra.Command, paths []string, params viewParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()
	cfg := config.GetGlobalConfig()

	output := params.output
	if output == "" {
		output = config.GetDefaultOutputFormat()
	}
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	format, err := ingest.ParseFormat(params.format)
	if err != nil {
		return err
	}

	rows, err := ingest.LoadAll(ctx, paths, ingest.Options{Format: format, RowsPath: params.rowsPath})
	if err != nil {
		return fmt.Errorf("loading rows: %w", err)
	}

	columns, err := resolveColumns(params.columns, rows, params.idSource)
	if err != nil {
		return err
	}

	if params.sort != "" {
		rows, err = sortRows(columns, rows, params.sort, cfg.Table.DefaultSortOrder)
		if err != nil {
			return err
		}
	}

	pageParams := pagination.Params{
		Limit:    params.limit,
		Offset:   params.offset,
		Page:     params.page,
		PageSize: params.pageSize,
	}
	if pageParams.Page > 0 && pageParams.PageSize == 0 {
		pageParams.PageSize = pagination.ClampPageSize(0, cfg.Table.RowsPerPage, pagination.MaxPageSize)
	}
	if validationErr := pageParams.Validate(); validationErr != nil {
		return fmt.Errorf("invalid pagination parameters: %w", validationErr)
	}

	total := len(rows)
	if pageParams.IsPageBased() {
		// A page past the end shows the last page.
		if pages := pageParams.CalculateTotalPages(total); pageParams.Page > pages {
			pageParams.Page = max(1, pages)
		}
	}

	paged := rows
	var meta *pagination.Meta
	var label string
	if pageParams.IsEnabled() {
		paged = pagination.Apply(pageParams, rows)
		m := pagination.NewMeta(pageParams, total)
		meta = &m
		offset, _ := pageParams.CalculateOffsetLimit()
		label = pagination.WindowLabel(offset, offset+len(paged), total, cfg.Table.RangeSeparator)
		log.Debug().Ctx(ctx).
			Int("current_page", meta.CurrentPage).
			Int("total_pages", meta.TotalPages).
			Bool("has_next", meta.HasNext).
			Bool("has_previous", meta.HasPrevious).
			Msg("applied pagination")
	}

	req := renderRequest{
		columns:   columns,
		rows:      paged,
		total:     total,
		meta:      meta,
		label:     label,
		precision: cfg.Output.Precision,
	}
	if err = renderRows(cmd.OutOrStdout(), output, req); err != nil {
		return err
	}

	log.Info().Ctx(ctx).Str("operation", "view").
		Int("row_count", total).
		Int("rendered", len(paged)).
		Dur("duration_ms", time.Since(start)).
		Msg("view complete")
	return nil
}

// sortRows applies a "field[:order]" expression, validating the field
// against the sortable columns. Expressions without an order use
// defaultOrder.
func sortRows(columns []table.Column, rows []table.Row, expr, defaultOrder string) ([]table.Row, error) {
	field, order, err := pagination.ParseSort(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid sort expression: %w", err)
	}
	if !strings.Contains(expr, ":") && defaultOrder != "" {
		order = defaultOrder
	}

	sorter := table.NewColumnSorter(columns)
	if err = sorter.ValidateField(field); err != nil {
		return nil, err
	}

	dir, err := table.ParseDirection(order)
	if err != nil {
		return nil, err
	}
	return sorter.Sort(rows, field, dir), nil
}
