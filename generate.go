package mphf

import (
	"errors"

	"github.com/katalvlaran/mphf/hashalgo"
	"github.com/katalvlaran/mphf/table"
	"github.com/katalvlaran/mphf/wordlist"
)

// Generate runs the full construction pipeline over wl and algo: validate,
// build the sparse TwoDArray, pack it into a dense OneDPackedArray, verify
// the result is a bijection onto [0, N), and assemble HashData. Each stage
// aborts immediately on failure; no partial HashData is ever returned. A
// returned error is always *Error, classified by Kind so callers can branch
// with errors.Is against the package's sentinel errors without depending on
// which stage package produced the underlying cause.
func Generate(wl *wordlist.WordList, algo hashalgo.HashAlgorithm) (*HashData, error) {
	if err := wl.IsValid(); err != nil {
		return nil, newError(KindWordList, err)
	}

	words := wl.Words()

	td, err := table.NewTwoDArray(words, algo)
	if err != nil {
		return nil, newError(classifyTwoDArrayErr(err), err)
	}

	packed, err := table.NewOneDPackedArray(td)
	if err != nil {
		return nil, newError(KindOneDPackedArray, err)
	}

	rlt := packed.Rlt()
	if err := verify(words, rlt, algo); err != nil {
		return nil, newError(KindHash, err)
	}

	return newHashData(rlt, algo), nil
}

// classifyTwoDArrayErr distinguishes a hash-algorithm domain failure
// (word too short, bad character — surfaced verbatim from H1/H2) from a
// genuine table collision, since table.NewTwoDArray returns both through
// the same error result: H1/H2 errors unwrapped, collisions wrapped with
// table.ErrCollision.
func classifyTwoDArrayErr(err error) Kind {
	if errors.Is(err, hashalgo.ErrShortWord) || errors.Is(err, hashalgo.ErrBadChar) {
		return KindElcAlgorithm
	}

	return KindTwoDArray
}
