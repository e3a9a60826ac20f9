package wordlist

import (
	"errors"
	"fmt"
)

// Sentinel errors for the wordlist package. Callers branch on semantics with
// errors.Is(err, ErrX); messages carry the human-readable detail.
var (
	// ErrEmpty indicates the word list holds no words at all.
	ErrEmpty = errors.New("wordlist: empty word list")

	// ErrInvalidChar indicates a word contains a rune outside A-Z, or is
	// itself empty (a blank line from a loaded file counts as a word here).
	ErrInvalidChar = errors.New("wordlist: non-ASCII-uppercase-alphabetic word")

	// ErrDuplicate indicates two words at different positions are identical.
	ErrDuplicate = errors.New("wordlist: duplicate word")
)

func wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
