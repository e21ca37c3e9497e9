package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Row is one record of tabular data, keyed by field name.
// Nested records are plain maps, lists are []any, matching what the JSON
// and YAML decoders produce.
type Row map[string]any

// Selector identifies how a cell value is extracted from a Row.
// It is a closed union: PathSelector or FormatSelector.
type Selector interface {
	isSelector()
}

// PathSelector is a dot-delimited field path such as "address.city".
type PathSelector string

// FormatSelector computes a cell value directly from the row.
type FormatSelector func(row Row) any

func (PathSelector) isSelector()   {}
func (FormatSelector) isSelector() {}

// Path is shorthand for PathSelector(path).
func Path(path string) Selector {
	return PathSelector(path)
}

// Format is shorthand for FormatSelector(fn).
func Format(fn func(row Row) any) Selector {
	return FormatSelector(fn)
}

// GetProperty returns the value selected from row.
//
// A FormatSelector is invoked with the row and its result returned unchanged.
// A PathSelector is split on "." and each segment descends one level into the
// row. Descent stops at the first falsy value (nil, false, zero, ""), which is
// returned as-is; a missing segment yields nil.
//
// A nil selector or a nil formatter returns ErrInvalidSelector.
func GetProperty(row Row, sel Selector) (any, error) {
	switch s := sel.(type) {
	case FormatSelector:
		if s == nil {
			return nil, fmt.Errorf("%w: nil formatter", ErrInvalidSelector)
		}
		return s(row), nil
	case PathSelector:
		return resolvePath(row, string(s)), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidSelector, sel)
	}
}

// resolvePath walks row along the dot-separated segments of path.
func resolvePath(row Row, path string) any {
	var acc any = row
	for _, part := range strings.Split(path, ".") {
		if isFalsy(acc) {
			return acc
		}
		acc = child(acc, part)
	}
	return acc
}

// child returns the value stored under part in v, or nil when v has no such member.
func child(v any, part string) any {
	switch node := v.(type) {
	case Row:
		return node[part]
	case map[string]any:
		return node[part]
	case []any:
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 || idx >= len(node) {
			return nil
		}
		return node[idx]
	default:
		return nil
	}
}

// isFalsy reports whether v counts as empty when walking a path.
//
//nolint:cyclop // One branch per numeric kind.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case Row:
		return x == nil
	case map[string]any:
		return x == nil
	case bool:
		return !x
	case string:
		return x == ""
	case int:
		return x == 0
	case int8:
		return x == 0
	case int16:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	case uint:
		return x == 0
	case uint8:
		return x == 0
	case uint16:
		return x == 0
	case uint32:
		return x == 0
	case uint64:
		return x == 0
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	case float64:
		return x == 0 || math.IsNaN(x)
	default:
		return false
	}
}
