package ingest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rshade/datatable/internal/table"
)

func parseYAML(data []byte, rowsPath string) ([]table.Row, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}

	if rowsPath != "" {
		root, ok := doc.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q (document is not a mapping)", ErrRowsPathNotFound, rowsPath)
		}
		v, err := table.GetProperty(table.Row(root), table.Path(rowsPath))
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, fmt.Errorf("%w: %q", ErrRowsPathNotFound, rowsPath)
		}
		doc = v
	}

	if doc == nil {
		return []table.Row{}, nil
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: YAML rows must be a sequence", ErrNotAnArray)
	}
	return toRows(items)
}
