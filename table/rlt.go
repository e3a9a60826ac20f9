package table

import (
	"strconv"
	"strings"
)

// Rlt (row lookup table) is the dense, per-row displacement table produced
// by the packing search. Entry r holds the signed displacement applied to
// row r; rows never populated by a word (including gaps below
// LastRowIndex) hold zero.
type Rlt struct {
	table      []int
	numEntries int
}

func newRlt(size int) *Rlt {
	return &Rlt{table: make([]int, size)}
}

// Get returns the displacement stored at row index idx, or 0 if idx falls
// outside the table — the same zero a never-populated row would hold.
func (r *Rlt) Get(idx int) int {
	if idx < 0 || idx >= len(r.table) {
		return 0
	}

	return r.table[idx]
}

func (r *Rlt) set(idx, value int) {
	r.table[idx] = value
}

// Len is the number of rows the table covers (LastRowIndex + 1).
func (r *Rlt) Len() int {
	return len(r.table)
}

// NumEntries is N, the target modulus the emitted hash function reduces
// against — the word count, not the table length.
func (r *Rlt) NumEntries() int {
	return r.numEntries
}

func (r *Rlt) setNumEntries(n int) {
	r.numEntries = n
}

// Text renders the table as comma-space-separated signed decimals: the
// literal form embedded into the emitted pseudo-code's
// `row_lookup_table = [...]` line.
func (r *Rlt) Text() string {
	parts := make([]string, len(r.table))
	for i, v := range r.table {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}
