package wordlist

// WordList is an ordered, insertion-order sequence of candidate keys for an
// MPHF build. Position is 1-based in user-visible validation errors, and
// insertion order fixes the word-ordinal every downstream component keys
// its results by.
type WordList struct {
	words []string
}

// New returns an empty WordList.
func New() *WordList {
	return &WordList{}
}

// Push appends word to the end of the list.
func (wl *WordList) Push(word string) {
	wl.words = append(wl.words, word)
}

// Len reports the number of words currently held.
func (wl *WordList) Len() int {
	return len(wl.words)
}

// IsEmpty reports whether the list holds no words.
func (wl *WordList) IsEmpty() bool {
	return len(wl.words) == 0
}

// Words returns the words in insertion order. The caller must treat the
// returned slice as read-only: word-ordinals (1-based) are defined by this
// order and downstream components depend on it staying stable.
func (wl *WordList) Words() []string {
	return wl.words
}
