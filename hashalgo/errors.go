package hashalgo

import (
	"errors"
	"fmt"
)

var (
	// ErrShortWord indicates a word is shorter than the algorithm's window.
	ErrShortWord = errors.New("hashalgo: word shorter than window")

	// ErrBadChar indicates a non-uppercase rune inside the hashed window.
	ErrBadChar = errors.New("hashalgo: non-uppercase character in window")
)

func wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
