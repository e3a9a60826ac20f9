package hashalgo

import "fmt"

// Elc implements HashAlgorithm with the "Extremal Letter Count" scheme:
// h1 folds the first Count characters of a word as base-Radix digits,
// most-significant-first; h2 folds the last Count characters, read from
// the end of the word backwards, so the word's final character contributes
// the most-significant digit of h2.
type Elc struct {
	// Count is the window size, in characters, folded by h1 and h2.
	Count int
	// Radix is the base each character digit is folded with (A=0..Z=25 fits
	// any Radix >= 26; smaller radixes are the caller's responsibility).
	Radix int
}

// NewElc constructs an Elc with the given window size and digit radix.
func NewElc(count, radix int) *Elc {
	return &Elc{Count: count, Radix: radix}
}

// DefaultElc returns the canonical (1, 26) configuration: h1 is the index
// of a word's first letter, h2 the index of its last letter.
func DefaultElc() *Elc {
	return &Elc{Count: 1, Radix: 26}
}

// H1 folds the leading Count-character window, most-significant-first.
func (e *Elc) H1(word string) (int, error) {
	return e.fold(word, false)
}

// H2 folds the trailing Count-character window, read back-to-front so the
// word's last character is most significant.
func (e *Elc) H2(word string) (int, error) {
	return e.fold(word, true)
}

// H1Text renders the pseudo-code right-hand side for H1.
func (e *Elc) H1Text() string {
	if e.Count == 1 {
		return "ord(word[0]) - ord('A')"
	}

	return fmt.Sprintf("fold(word[0:%d], radix=%d) // base-%d digits, most-significant-first", e.Count, e.Radix, e.Radix)
}

// H2Text renders the pseudo-code right-hand side for H2.
func (e *Elc) H2Text() string {
	if e.Count == 1 {
		return "ord(word[len(word)-1]) - ord('A')"
	}

	return fmt.Sprintf("fold(reverse(word)[0:%d], radix=%d) // last %d letters, most-significant-first", e.Count, e.Radix, e.Count)
}

func (e *Elc) fold(word string, trailing bool) (int, error) {
	runes := []rune(word)
	if len(runes) < e.Count {
		return 0, wrap(ErrShortWord, "word %q has length %d, need >= %d", word, len(runes), e.Count)
	}

	window := make([]rune, e.Count)
	if trailing {
		for i := 0; i < e.Count; i++ {
			window[i] = runes[len(runes)-1-i]
		}
	} else {
		copy(window, runes[:e.Count])
	}

	acc := 0
	for _, c := range window {
		if c < 'A' || c > 'Z' {
			return 0, wrap(ErrBadChar, "non-uppercase character in hashed window of %q", word)
		}
		acc = acc*e.Radix + int(c-'A')
	}

	return acc, nil
}
