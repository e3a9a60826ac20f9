package table

import "sort"

// Row is the set of (column, word-ordinal) pairs sharing one row index of a
// TwoDArray.
type Row struct {
	cols map[int]int // column index -> 1-based word ordinal
}

func newRow() *Row {
	return &Row{cols: make(map[int]int)}
}

// Len reports the row's column population.
func (r *Row) Len() int {
	return len(r.cols)
}

// SortedColumns returns the row's column indices in ascending order. Go
// maps iterate in randomized order, so the packer, which needs a
// deterministic view, goes through this.
func (r *Row) SortedColumns() []int {
	cols := make([]int, 0, len(r.cols))
	for c := range r.cols {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	return cols
}

// Ordinal returns the 1-based word-ordinal stored at column c.
func (r *Row) Ordinal(c int) int {
	return r.cols[c]
}
