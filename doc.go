// Package mphf constructs a minimal perfect hash function from a fixed,
// known-at-build-time set of uppercase ASCII words.
//
// Generate runs the full pipeline — validate the WordList, build the sparse
// (h1, h2) TwoDArray, pack it into a dense OneDPackedArray via row
// displacement, verify the result is a bijection onto [0, N) — and returns
// HashData: a pseudo-code rendering suitable for transcription into another
// language, and a live Go closure usable in-process.
//
// Subpackages:
//
//	wordlist/ — the ordered input key set and its validation and file loader
//	hashalgo/ — the HashAlgorithm contract and the ElcAlgorithm implementation
//	table/    — the sparse-to-dense row-displacement packing construction
//
// A failed build never returns a partial HashData; every stage's error is
// classified into one of five Kinds (see Error) and returned verbatim.
package mphf
