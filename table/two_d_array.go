package table

import (
	"sort"

	"github.com/katalvlaran/mphf/hashalgo"
)

// TwoDArray is the sparse row/column mapping produced by applying a
// HashAlgorithm's (h1, h2) pair to every word of a word list, in
// word-ordinal order.
type TwoDArray struct {
	rows         map[int]*Row
	numEntries   int
	lastRowIndex int
	rowsBySize   []int // row indices, descending population then ascending index
}

// NewTwoDArray builds the sparse 2-D table from words (already validated,
// in word-ordinal order — the word at index i has ordinal i+1) and algo.
// A collision — two words sharing the same (h1, h2) pair — aborts the
// build and names both words; it means algo cannot produce an MPHF for
// this word list and the caller must pick a different one (e.g. a larger
// Elc window).
func NewTwoDArray(words []string, algo hashalgo.HashAlgorithm) (*TwoDArray, error) {
	td := &TwoDArray{rows: make(map[int]*Row)}

	for i, w := range words {
		ordinal := i + 1

		r, err := algo.H1(w)
		if err != nil {
			return nil, err
		}
		c, err := algo.H2(w)
		if err != nil {
			return nil, err
		}

		row, ok := td.rows[r]
		if !ok {
			row = newRow()
			td.rows[r] = row
		}
		if prior, exists := row.cols[c]; exists {
			return nil, wrap(ErrCollision, "%q and %q", words[prior-1], w)
		}
		row.cols[c] = ordinal

		if r > td.lastRowIndex {
			td.lastRowIndex = r
		}
	}

	td.numEntries = len(words)
	td.rowsBySize = sortedRowIndices(td.rows)

	return td, nil
}

func sortedRowIndices(rows map[int]*Row) []int {
	idx := make([]int, 0, len(rows))
	for r := range rows {
		idx = append(idx, r)
	}
	sort.Slice(idx, func(i, j int) bool {
		ri, rj := idx[i], idx[j]
		pi, pj := rows[ri].Len(), rows[rj].Len()
		if pi != pj {
			return pi > pj // descending population
		}
		return ri < rj // ascending row index on ties
	})

	return idx
}

// NumEntries is the word count N.
func (td *TwoDArray) NumEntries() int {
	return td.numEntries
}

// NumRows is the count of distinct row indices populated by at least one word.
func (td *TwoDArray) NumRows() int {
	return len(td.rows)
}

// LastRowIndex is the maximum row index used by any word.
func (td *TwoDArray) LastRowIndex() int {
	return td.lastRowIndex
}

// RowSizeIterator yields this table's populated rows from most-populated to
// least, ties broken by ascending row index — the order the packing search
// must visit them in.
func (td *TwoDArray) RowSizeIterator() *RowSizeIterator {
	return &RowSizeIterator{td: td, pos: -1}
}
