package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/datatable/internal/table"
)

func TestInsertItem(t *testing.T) {
	orig := []int{1, 2, 3}

	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{name: "middle", index: 1, want: []int{1, 9, 2, 3}},
		{name: "front", index: 0, want: []int{9, 1, 2, 3}},
		{name: "end", index: 3, want: []int{1, 2, 3, 9}},
		{name: "past end appends", index: 10, want: []int{1, 2, 3, 9}},
		{name: "negative counts from end", index: -1, want: []int{1, 2, 9, 3}},
		{name: "very negative prepends", index: -10, want: []int{9, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.InsertItem(orig, 9, tt.index))
			assert.Equal(t, []int{1, 2, 3}, orig)
		})
	}
}

func TestInsertItem_DoesNotAliasInput(t *testing.T) {
	backing := make([]int, 3, 10)
	copy(backing, []int{1, 2, 3})

	out := table.InsertItem(backing, 9, 1)
	out[0] = 100

	assert.Equal(t, []int{1, 2, 3}, backing)
	assert.Equal(t, []int{1, 2, 3, 0}, backing[:4])
}

func TestRemoveItem(t *testing.T) {
	orig := []int{1, 2, 3}

	assert.Equal(t, []int{1, 3}, table.RemoveItem(orig, 2))
	assert.Equal(t, []int{1, 2, 3}, orig)

	// An absent item must not remove the trailing element.
	assert.Equal(t, []int{1, 2, 3}, table.RemoveItem(orig, 42))

	assert.Equal(t, []int{2, 1}, table.RemoveItem([]int{1, 2, 1}, 1))
	assert.Empty(t, table.RemoveItem([]int{}, 1))
}

func TestRemoveItem_Structs(t *testing.T) {
	type sel struct {
		ID   string
		Rank int
	}
	items := []sel{{"a", 1}, {"b", 2}, {"a", 1}}

	assert.Equal(t, []sel{{"b", 2}, {"a", 1}}, table.RemoveItem(items, sel{"a", 1}))
}

func TestRemoveItemFunc(t *testing.T) {
	rows := []table.Row{{"id": 1}, {"id": 2}}
	out := table.RemoveItemFunc(rows, func(r table.Row) bool { return r["id"] == 2 })

	assert.Equal(t, []table.Row{{"id": 1}}, out)
	assert.Len(t, rows, 2)
}

func TestPull(t *testing.T) {
	// Elements found at index >= 1 of values are dropped; values[0] and
	// absent elements are kept.
	assert.Equal(t, []string{"a", "b", "d"}, table.Pull([]string{"a", "b", "c", "d"}, []string{"b", "c"}))
	assert.Equal(t, []int{1, 2, 3}, table.Pull([]int{1, 2, 3}, nil))
}

func TestWithout(t *testing.T) {
	assert.Equal(t, []string{"a", "d"}, table.Without([]string{"a", "b", "c", "d"}, []string{"b", "c"}))
	assert.Equal(t, []int{1, 2, 3}, table.Without([]int{1, 2, 3}, nil))
}
