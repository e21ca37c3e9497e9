package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/datatable/internal/config"
	"github.com/rshade/datatable/internal/table"
)

// ErrEmptyColumn is returned for blank entries in a --columns list.
var ErrEmptyColumn = errors.New("column path cannot be empty")

// parseColumns parses a --columns value: comma-separated "path" or
// "path=Header" entries. Every parsed column is sortable.
func parseColumns(spec string) ([]table.Column, error) {
	var columns []table.Column
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		path, header, _ := strings.Cut(entry, "=")
		path = strings.TrimSpace(path)
		if path == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyColumn, spec)
		}
		columns = append(columns, table.Column{
			Name:     strings.TrimSpace(header),
			Selector: table.Path(path),
			Sortable: true,
		})
	}
	return columns, nil
}

// inferColumns builds one sortable column per top-level field found in
// rows, in sorted field order.
func inferColumns(rows []table.Row) []table.Column {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for k := range row {
			seen[k] = struct{}{}
		}
	}
	fields := make([]string, 0, len(seen))
	for k := range seen {
		fields = append(fields, k)
	}
	slices.Sort(fields)
	return table.ColumnsFromFields(fields)
}

// alignNumeric marks columns whose first non-nil value is numeric as
// right-aligned.
func alignNumeric(columns []table.Column, rows []table.Row) {
	for i := range columns {
		for _, row := range rows {
			v, err := columns[i].Value(row)
			if err != nil || v == nil {
				continue
			}
			columns[i].Right = isNumber(v)
			break
		}
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

// resolveColumns returns decorated columns for rows: parsed from spec when
// set, otherwise inferred. IDs come from the configured id source.
func resolveColumns(spec string, rows []table.Row, idSource string) ([]table.Column, error) {
	var columns []table.Column
	if spec != "" {
		parsed, err := parseColumns(spec)
		if err != nil {
			return nil, err
		}
		columns = parsed
	} else {
		columns = inferColumns(rows)
	}
	alignNumeric(columns, rows)

	if idSource == "" {
		idSource = config.GetTableConfig().IDSource
	}
	ids, err := table.NewIDSource(idSource)
	if err != nil {
		return nil, err
	}
	return table.DecorateColumns(columns, ids), nil
}
