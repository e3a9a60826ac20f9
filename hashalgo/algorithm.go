package hashalgo

// HashAlgorithm pairs a row selector (h1) and a column selector (h2) over a
// word, plus a textual rendering of each suitable for embedding into the
// pseudo-code emitted by the top-level generator. Both h1 and h2 must be
// total on every word the caller intends to build an MPHF over; a non-nil
// error signals the word is outside the algorithm's domain (too short, or
// containing a character the algorithm can't fold).
type HashAlgorithm interface {
	// H1 computes the row index for word.
	H1(word string) (int, error)
	// H2 computes the column index for word.
	H2(word string) (int, error)
	// H1Text renders the right-hand side of an `h1(word) = ...` assignment.
	H1Text() string
	// H2Text renders the right-hand side of an `h2(word) = ...` assignment.
	H2Text() string
}
