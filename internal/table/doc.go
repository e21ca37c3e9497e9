// Package table provides the data-transformation core of the datatable widget.
//
// It contains the pieces a rendering layer calls while drawing a table:
//   - Column decoration: stamps every column definition with a unique ID
//   - Property resolution: extracts a cell value from a Row via a Selector
//   - Sorting: stable single- and multi-key ordering of rows
//   - List helpers: immutable insert/remove/pull on ordered slices
//
// Everything in this package is pure: inputs are never mutated and results are
// always freshly allocated, so the functions are safe to call from multiple
// goroutines without coordination.
package table
