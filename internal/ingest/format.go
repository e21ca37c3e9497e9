package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a row file encoding.
type Format string

// Supported input formats. FormatAuto picks one from the file extension.
const (
	FormatAuto   Format = ""
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatYAML   Format = "yaml"
	FormatCSV    Format = "csv"
)

// Ingest errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrRowsPathNotFound  = errors.New("rows path not found")
	ErrNotAnArray        = errors.New("rows are not an array")
	ErrNotAnObject       = errors.New("row is not an object")
)

// ParseFormat validates an explicit format name. The empty string selects
// FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatJSON, FormatNDJSON, FormatYAML, FormatCSV:
		return f, nil
	case "jsonl":
		return FormatNDJSON, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".ndjson", ".jsonl":
		return FormatNDJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format from extension %q of %s", ErrUnsupportedFormat, ext, path)
	}
}
