package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/datatable/internal/config"
	"github.com/rshade/datatable/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the datatable CLI.
// It loads configuration, wires up logging and tracing, and registers the
// view, pages, columns, browse and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "datatable",
		Short:   "Sort, paginate and render tabular data",
		Long:    "datatable: load rows from JSON, NDJSON, YAML or CSV files, then sort, paginate and render them",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to a configuration file (default ~/.datatable/config.yaml)")
	cmd.AddCommand(
		NewViewCmd(),
		NewPagesCmd(),
		NewColumnsCmd(),
		NewBrowseCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Show the first page of a JSON array, sorted by age descending
  datatable view people.json --sort age:desc --page 1 --page-size 10

  # Pick columns and headers, reading rows nested inside a document
  datatable view response.json --rows-path data.items --columns id,name=Name,address.city=City

  # Stream a CSV file as NDJSON
  datatable view sales.csv --output ndjson

  # Page arithmetic without data
  datatable pages --rows 40 --page-size 10 --page 4

  # Browse interactively
  datatable browse people.json

  # Change the default rows per page
  datatable config set table.rows_per_page 25`
