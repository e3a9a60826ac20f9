// Package wordlist holds the ordered set of keys an MPHF is built over.
//
// A WordList is nothing more than an insertion-ordered sequence of strings:
// the order fixes each word's 1-based ordinal, which is what the packing
// stage ultimately stores at its hash position. IsValid enforces the three
// assumptions the rest of the construction relies on — non-empty, ASCII
// uppercase alphabetic, pairwise distinct — and reports the first offending
// position so callers can fix their input without a second pass.
package wordlist
