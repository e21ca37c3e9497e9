package table

import "slices"

// InsertItem returns a new slice with item placed at index; s is not modified.
// A negative index counts back from the end of s, and the result is clamped
// to [0, len(s)], so out-of-range indexes prepend or append.
func InsertItem[T any](s []T, item T, index int) []T {
	i := clampIndex(index, len(s))

	out := make([]T, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, item)
	return append(out, s[i:]...)
}

// RemoveItem returns a copy of s without the first element equal to item.
// When item is absent the copy equals s.
func RemoveItem[T comparable](s []T, item T) []T {
	return RemoveItemFunc(s, func(v T) bool { return v == item })
}

// RemoveItemFunc returns a copy of s without the first element for which match is true.
func RemoveItemFunc[T any](s []T, match func(T) bool) []T {
	out := slices.Clone(s)
	if i := slices.IndexFunc(out, match); i >= 0 {
		return slices.Delete(out, i, i+1)
	}
	return out
}

// Pull returns the elements of s whose position in values is below 1: those
// absent from values, and those equal to values[0]. This index-based exclusion
// is kept for compatibility with existing column-reordering callers; use
// Without for set subtraction.
func Pull[T comparable](s []T, values []T) []T {
	out := make([]T, 0, len(s))
	for _, el := range s {
		if slices.Index(values, el) < 1 {
			out = append(out, el)
		}
	}
	return out
}

// Without returns the elements of s that do not appear in values.
func Without[T comparable](s []T, values []T) []T {
	out := make([]T, 0, len(s))
	for _, el := range s {
		if !slices.Contains(values, el) {
			out = append(out, el)
		}
	}
	return out
}

func clampIndex(index, n int) int {
	if index < 0 {
		index += n
	}
	return max(0, min(index, n))
}
