package table

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// Kind ranks used to order values of different types against each other.
// Lower ranks sort first in ascending order; nil always sorts last.
const (
	rankNumber = iota
	rankNaN
	rankString
	rankBool
	rankTime
	rankOther
	rankNil
)

// CompareValues orders two cell values and returns -1, 0 or +1.
//
// Numbers of any Go numeric kind (and json.Number) compare numerically,
// strings lexically, bools false before true and time.Time chronologically.
// Values of different kinds are ordered by kind: numbers, NaN, strings,
// bools, times, everything else (by fmt representation), and nil last.
func CompareValues(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankNumber:
		return compareNumbers(a, b)
	case rankString:
		return strings.Compare(a.(string), b.(string)) //nolint:forcetypeassert // rank guarantees string
	case rankBool:
		return compareBools(a.(bool), b.(bool)) //nolint:forcetypeassert // rank guarantees bool
	case rankTime:
		return a.(time.Time).Compare(b.(time.Time)) //nolint:forcetypeassert // rank guarantees time
	case rankOther:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	default:
		// NaN and nil compare equal among themselves.
		return 0
	}
}

func rank(v any) int {
	switch v.(type) {
	case nil:
		return rankNil
	case string:
		return rankString
	case bool:
		return rankBool
	case time.Time:
		return rankTime
	}
	if f, ok := toFloat(v); ok {
		if math.IsNaN(f) {
			return rankNaN
		}
		return rankNumber
	}
	return rankOther
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// compareNumbers compares two numeric values, keeping full precision when
// both are signed integers.
func compareNumbers(a, b any) int {
	ia, aInt := toInt64(a)
	ib, bInt := toInt64(b)
	if aInt && bInt {
		return cmp.Compare(ia, ib)
	}
	fa, _ := toFloat(a)
	fb, _ := toFloat(b)
	return cmp.Compare(fa, fb)
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case json.Number:
		i, err := x.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

//nolint:cyclop // One branch per numeric kind.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
