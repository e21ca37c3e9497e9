package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/datatable/internal/config"
	"github.com/rshade/datatable/internal/pagination"
)

// pagesParams holds the parameters for the pages command execution.
type pagesParams struct {
	rows     int
	pageSize int
	page     int
	action   string
	output   string
}

// pageTarget is where one navigation action leads.
type pageTarget struct {
	Action  string `json:"action"`
	Page    int    `json:"page"`
	Changed bool   `json:"changed"`
}

// pagesOutput is the JSON shape of the pages command.
type pagesOutput struct {
	RowCount    int          `json:"row_count"`
	RowsPerPage int          `json:"rows_per_page"`
	CurrentPage int          `json:"current_page"`
	Pages       int          `json:"pages"`
	Range       string       `json:"range"`
	Navigation  []pageTarget `json:"navigation"`
}

// NewPagesCmd creates the "pages" command that prints paginator arithmetic
// for a row count without loading any data.
func NewPagesCmd() *cobra.Command {
	var params pagesParams

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Show page count and navigation targets for a row count",
		Example: `  # 40 rows at 10 per page, viewing the last page
  datatable pages --rows 40 --page-size 10 --page 4

  # Where does "next" lead from page 4?
  datatable pages --rows 40 --page-size 10 --page 4 --action next

  # As JSON
  datatable pages --rows 12345 --page-size 100 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executePages(cmd, params)
		},
	}

	cmd.Flags().IntVar(&params.rows, "rows", 0, "Total number of rows (required)")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0,
		"Rows per page, at most 1000 (default: table.rows_per_page)")
	cmd.Flags().IntVar(&params.page, "page", 1, "Current page (1-indexed)")
	cmd.Flags().StringVar(&params.action, "action", "",
		"Only show the target of one action: first, previous, next or last")
	cmd.Flags().StringVar(&params.output, "output", config.FormatTable, "Output format: table or json")

	_ = cmd.MarkFlagRequired("rows")

	return cmd
}

func executePages(cmd *cobra.Command, params pagesParams) error {
	if params.rows < 0 {
		return fmt.Errorf("rows cannot be negative, got %d", params.rows)
	}
	if params.page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", params.page)
	}
	if params.pageSize < 0 {
		return fmt.Errorf("page-size cannot be negative, got %d", params.pageSize)
	}
	if params.pageSize > pagination.MaxPageSize {
		return fmt.Errorf("page-size cannot exceed %d, got %d", pagination.MaxPageSize, params.pageSize)
	}

	actions := []pagination.Action{pagination.First, pagination.Previous, pagination.Next, pagination.Last}
	if params.action != "" {
		action, err := pagination.ParseAction(params.action)
		if err != nil {
			return err
		}
		actions = []pagination.Action{action}
	}

	tableCfg := config.GetTableConfig()
	state := pagination.State{
		CurrentPage: params.page,
		RowsPerPage: pagination.ClampPageSize(params.pageSize, tableCfg.RowsPerPage, pagination.MaxPageSize),
		RowCount:    params.rows,
	}
	// Clamp the current page to the pages that exist.
	state = pagination.ChangeRowsPerPage(state, state.RowsPerPage)

	out := pagesOutput{
		RowCount:    state.RowCount,
		RowsPerPage: state.RowsPerPage,
		CurrentPage: state.CurrentPage,
		Pages:       state.Pages(),
		Range:       pagination.RangeLabel(state, tableCfg.RangeSeparator),
	}
	for _, action := range actions {
		page, changed := pagination.Navigate(state, action)
		out.Navigation = append(out.Navigation, pageTarget{Action: action.String(), Page: page, Changed: changed})
	}

	switch params.output {
	case config.FormatJSON:
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case config.FormatTable:
		return renderPagesTable(cmd.OutOrStdout(), out)
	default:
		return fmt.Errorf("%w: %q (valid: table, json)", ErrUnsupportedOutput, params.output)
	}
}

func renderPagesTable(w io.Writer, out pagesOutput) error {
	fmt.Fprintf(w, "Rows:          %d\n", out.RowCount)
	fmt.Fprintf(w, "Rows per page: %d\n", out.RowsPerPage)
	fmt.Fprintf(w, "Page:          %d of %d\n", out.CurrentPage, out.Pages)
	fmt.Fprintf(w, "Showing:       %s\n\n", out.Range)

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tTARGET\tCHANGES PAGE")
	fmt.Fprintln(tw, "------\t------\t------------")
	for _, t := range out.Navigation {
		changes := "no"
		if t.Changed {
			changes = "yes"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", t.Action, t.Page, changes)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}
	return nil
}
