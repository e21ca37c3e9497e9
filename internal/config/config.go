// Package config loads datatable configuration from YAML, the environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/datatable/internal/pagination"
	"github.com/rshade/datatable/internal/table"
)

// Output formats understood by the CLI.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatYAML   = "yaml"
	FormatStyled = "styled"
)

// ValidOutputFormats lists every accepted output format.
//
//nolint:gochecknoglobals // Read-only lookup list.
var ValidOutputFormats = []string{FormatTable, FormatJSON, FormatNDJSON, FormatYAML, FormatStyled}

// Defaults applied by New.
const (
	defaultPrecision       = 2
	defaultRowsPerPageText = "Rows per page:"
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	configDirName          = ".datatable"
	configFileName         = "config.yaml"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete datatable configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Table   TableConfig   `yaml:"table"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls how pages are written.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" env:"DATATABLE_OUTPUT_FORMAT"`
	Precision     int    `yaml:"precision"      env:"DATATABLE_OUTPUT_PRECISION"`
}

// TableConfig holds table and pagination defaults.
type TableConfig struct {
	RowsPerPage        int    `yaml:"rows_per_page"         env:"DATATABLE_ROWS_PER_PAGE"`
	RowsPerPageOptions []int  `yaml:"rows_per_page_options" env:"DATATABLE_ROWS_PER_PAGE_OPTIONS" envSeparator:","`
	IDSource           string `yaml:"id_source"             env:"DATATABLE_ID_SOURCE"`
	DefaultSortOrder   string `yaml:"default_sort_order"    env:"DATATABLE_SORT_ORDER"`
	RangeSeparator     string `yaml:"range_separator"`
	RowsPerPageText    string `yaml:"rows_per_page_text"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"  env:"DATATABLE_LOG_LEVEL"`
	Format string `yaml:"format" env:"DATATABLE_LOG_FORMAT"`
	File   string `yaml:"file"   env:"DATATABLE_LOG_FILE"`
	Caller bool   `yaml:"caller" env:"DATATABLE_LOG_CALLER"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     defaultPrecision,
		},
		Table: TableConfig{
			RowsPerPage:        pagination.DefaultRowsPerPage,
			RowsPerPageOptions: slices.Clone(pagination.DefaultRowsPerPageOptions),
			IDSource:           table.IDSourceULID,
			DefaultSortOrder:   pagination.DefaultSortOrder,
			RangeSeparator:     pagination.DefaultRangeSeparator,
			RowsPerPageText:    defaultRowsPerPageText,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path and the process
// environment, in increasing precedence. A missing file at the default path
// is not an error; a missing file at an explicit path is.
func Load(path string) (*Config, error) {
	cfg := New()

	explicit := path != ""
	if !explicit {
		def, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = def
	}

	if err := ShallowMergeYAML(cfg, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg, nil); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto cfg. A nil environ reads the
// process environment. Unset variables leave fields untouched.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(ValidOutputFormats, c.Output.DefaultFormat) {
		return fmt.Errorf("%w: output.default_format %q (valid: %v)",
			ErrInvalidConfig, c.Output.DefaultFormat, ValidOutputFormats)
	}
	if c.Output.Precision < 0 {
		return fmt.Errorf("%w: output.precision must be >= 0", ErrInvalidConfig)
	}

	if c.Table.RowsPerPage < pagination.MinPageSize || c.Table.RowsPerPage > pagination.MaxPageSize {
		return fmt.Errorf("%w: table.rows_per_page must be between %d and %d, got %d",
			ErrInvalidConfig, pagination.MinPageSize, pagination.MaxPageSize, c.Table.RowsPerPage)
	}
	if err := pagination.ValidateRowsPerPageOptions(c.Table.RowsPerPageOptions); err != nil {
		return fmt.Errorf("%w: table.rows_per_page_options: %w", ErrInvalidConfig, err)
	}
	if _, err := table.NewIDSource(c.Table.IDSource); err != nil {
		return fmt.Errorf("%w: table.id_source: %w", ErrInvalidConfig, err)
	}
	if _, err := table.ParseDirection(c.Table.DefaultSortOrder); err != nil {
		return fmt.Errorf("%w: table.default_sort_order: %w", ErrInvalidConfig, err)
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// GetConfigDir returns the datatable configuration directory.
// DATATABLE_HOME overrides the default of ~/.datatable.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("DATATABLE_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// DefaultConfigPath returns the path of the default configuration file.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
