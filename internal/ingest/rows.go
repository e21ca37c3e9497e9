package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/rshade/datatable/internal/logging"
	"github.com/rshade/datatable/internal/table"
)

// Options controls how a row file is read.
type Options struct {
	// Format overrides extension-based detection when set.
	Format Format

	// RowsPath locates the row array inside a JSON or YAML document
	// (e.g. "data.items"). Empty means the document itself is the array.
	RowsPath string
}

// LoadRows reads the file at path and decodes it into rows.
func LoadRows(ctx context.Context, path string, opts Options) ([]table.Row, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_rows").
		Str("path", path).
		Msg("loading rows")

	format := opts.Format
	if format == FormatAuto {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Err(err).
			Str("path", path).
			Msg("failed to read row file")
		return nil, fmt.Errorf("reading rows from %s: %w", path, err)
	}

	rows, err := ParseRows(ctx, data, format, opts.RowsPath)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("format", string(format)).
		Int("row_count", len(rows)).
		Msg("rows loaded")

	return rows, nil
}

// ParseRows decodes data in the given format. rowsPath is honoured by JSON
// and YAML and ignored by line- and record-oriented formats.
func ParseRows(ctx context.Context, data []byte, format Format, rowsPath string) ([]table.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return parseJSON(data, rowsPath)
	case FormatNDJSON:
		return parseNDJSON(data)
	case FormatYAML:
		return parseYAML(data, rowsPath)
	case FormatCSV:
		return parseCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
