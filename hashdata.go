package mphf

import (
	"github.com/katalvlaran/mphf/hashalgo"
	"github.com/katalvlaran/mphf/table"
)

// HashData is the result of a successful Generate call: a pseudo-code
// rendering of the emitted hash function, plus a live closure computing the
// same function in-process. HashData keeps the Rlt produced by the packing
// stage and the HashAlgorithm passed to Generate, so it remains valid after
// the WordList and TwoDArray used to build it go out of scope. Neither is
// copied: the HashAlgorithm value is shared with the caller, and a change
// made to it after Generate returns changes what Closure computes.
type HashData struct {
	// String is the four-line pseudo-code rendering described in the
	// package's external interface: a row_lookup_table literal, the two
	// index assignments, and the hash_value expression.
	String string

	rlt  *table.Rlt
	algo hashalgo.HashAlgorithm
}

func newHashData(rlt *table.Rlt, algo hashalgo.HashAlgorithm) *HashData {
	return &HashData{
		String: renderText(rlt, algo),
		rlt:    rlt,
		algo:   algo,
	}
}

// Closure evaluates the emitted hash function on word. It is defined for
// any member of the original WordList; for non-members, a failing H1 or H2
// is treated as 0, so the result still falls in [0, N) but carries no
// meaning — callers needing a membership check must do it themselves.
func (h *HashData) Closure(word string) int {
	r, err := h.algo.H1(word)
	if err != nil {
		r = 0
	}
	c, err := h.algo.H2(word)
	if err != nil {
		c = 0
	}

	n := h.rlt.NumEntries()
	v := (h.rlt.Get(r) + c) % n
	if v < 0 {
		v += n
	}

	return v
}
