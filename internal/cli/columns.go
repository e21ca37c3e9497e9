package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/datatable/internal/config"
	"github.com/rshade/datatable/internal/ingest"
	"github.com/rshade/datatable/internal/table"
)

// columnsParams holds the parameters for the columns command execution.
type columnsParams struct {
	columns  string
	rowsPath string
	format   string
	idSource string
	output   string
}

// columnInfo is the rendered description of one decorated column.
type columnInfo struct {
	ID       string `json:"id"       yaml:"id"`
	Name     string `json:"name"     yaml:"name"`
	Field    string `json:"field"    yaml:"field"`
	Sortable bool   `json:"sortable" yaml:"sortable"`
	Right    bool   `json:"right"    yaml:"right"`
}

// NewColumnsCmd creates the "columns" command that prints the decorated
// column definitions for a file.
func NewColumnsCmd() *cobra.Command {
	var params columnsParams

	cmd := &cobra.Command{
		Use:   "columns FILE...",
		Short: "List the columns derived from row files, with generated ids",
		Example: `  # Columns inferred from every top-level field
  datatable columns people.json

  # Deterministic ids
  datatable columns people.json --id-source counter --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeColumns(cmd, args, params)
		},
	}

	cmd.Flags().StringVar(&params.columns, "columns", "",
		"Comma-separated column paths, optionally with headers (e.g., 'id,address.city=City')")
	cmd.Flags().StringVar(&params.rowsPath, "rows-path", "",
		"Path to the row array inside a JSON or YAML document")
	cmd.Flags().StringVar(&params.format, "format", "",
		"Input format: json, ndjson, yaml or csv (default: from file extension)")
	cmd.Flags().StringVar(&params.idSource, "id-source", "",
		"Column id source: ulid, uuid or counter (default: table.id_source)")
	cmd.Flags().StringVar(&params.output, "output", config.FormatTable, "Output format: table, json or yaml")

	return cmd
}

func executeColumns(cmd *cobra.Command, paths []string, params columnsParams) error {
	format, err := ingest.ParseFormat(params.format)
	if err != nil {
		return err
	}
	rows, err := ingest.LoadAll(cmd.Context(), paths, ingest.Options{Format: format, RowsPath: params.rowsPath})
	if err != nil {
		return fmt.Errorf("loading rows: %w", err)
	}

	columns, err := resolveColumns(params.columns, rows, params.idSource)
	if err != nil {
		return err
	}

	infos := make([]columnInfo, len(columns))
	for i, col := range columns {
		infos[i] = describeColumn(col)
	}

	w := cmd.OutOrStdout()
	switch params.output {
	case config.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err = encoder.Encode(infos); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case config.FormatYAML:
		if err = yaml.NewEncoder(w).Encode(infos); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return nil
	case config.FormatTable:
		return renderColumnsTable(w, infos)
	default:
		return fmt.Errorf("%w: %q (valid: table, json, yaml)", ErrUnsupportedOutput, params.output)
	}
}

func describeColumn(col table.Column) columnInfo {
	return columnInfo{
		ID:       col.ID,
		Name:     col.Header(),
		Field:    col.Field(),
		Sortable: col.Sortable,
		Right:    col.Right,
	}
}

func renderColumnsTable(w io.Writer, infos []columnInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFIELD\tSORTABLE\tALIGN")
	fmt.Fprintln(tw, "--\t----\t-----\t--------\t-----")
	for _, c := range infos {
		align := "left"
		if c.Right {
			align = "right"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", c.ID, c.Name, c.Field, c.Sortable, align)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}
	return nil
}
