package ingest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/rshade/datatable/internal/table"
)

const maxLineBytes = 1 << 20

func parseJSON(data []byte, rowsPath string) ([]table.Row, error) {
	if rowsPath != "" {
		if !gjson.ValidBytes(data) {
			return nil, errors.New("invalid JSON document")
		}
		res := gjson.GetBytes(data, gjsonPath(rowsPath))
		if !res.Exists() {
			return nil, fmt.Errorf("%w: %q", ErrRowsPathNotFound, rowsPath)
		}
		if !res.IsArray() {
			return nil, fmt.Errorf("%w: %q is %s", ErrNotAnArray, rowsPath, res.Type)
		}
		data = []byte(res.Raw)
	}

	var doc any
	if err := decodeJSON(data, &doc); err != nil {
		return nil, err
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level JSON value must be an array (use a rows path for nested arrays)", ErrNotAnArray)
	}
	return toRows(items)
}

// gjsonPath escapes each segment of a dot path so that gjson wildcards,
// queries and modifiers are matched literally, as table.GetProperty does.
func gjsonPath(path string) string {
	parts := strings.Split(path, ".")
	for i, p := range parts {
		parts[i] = gjson.Escape(p)
	}
	return strings.Join(parts, ".")
}

func parseNDJSON(data []byte) ([]table.Row, error) {
	var rows []table.Row
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var v any
		if err := decodeJSON(raw, &v); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("line %d: %w", line, ErrNotAnObject)
		}
		rows = append(rows, table.Row(obj))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}
	return rows, nil
}

// decodeJSON keeps integers exact: numbers decode as int64 when integral and
// float64 otherwise.
func decodeJSON(data []byte, v *any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding JSON: %w", err)
	}
	*v = normalizeNumbers(*v)
	return nil
}

func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case map[string]any:
		for k, e := range x {
			x[k] = normalizeNumbers(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = normalizeNumbers(e)
		}
		return x
	default:
		return v
	}
}

func toRows(items []any) ([]table.Row, error) {
	rows := make([]table.Row, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d: %w", i, ErrNotAnObject)
		}
		rows = append(rows, table.Row(obj))
	}
	return rows, nil
}
