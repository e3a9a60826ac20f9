package wordlist_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mphf/wordlist"
)

func TestWordListBasics(t *testing.T) {
	wl := wordlist.New()
	assert.True(t, wl.IsEmpty())
	assert.Equal(t, 0, wl.Len())

	wl.Push("HELLO")
	assert.False(t, wl.IsEmpty())
	assert.Equal(t, 1, wl.Len())
	assert.Equal(t, []string{"HELLO"}, wl.Words())
}

func TestIsValidEmpty(t *testing.T) {
	wl := wordlist.New()
	err := wl.IsValid()
	assert.ErrorIs(t, err, wordlist.ErrEmpty)
}

func TestIsValidLowercaseRejected(t *testing.T) {
	wl := wordlist.New()
	wl.Push("hELLO")
	err := wl.IsValid()
	assert.ErrorIs(t, err, wordlist.ErrInvalidChar)
}

func TestIsValidBlankLineRejected(t *testing.T) {
	wl := wordlist.New()
	wl.Push("HELLO")
	wl.Push("")
	err := wl.IsValid()
	assert.ErrorIs(t, err, wordlist.ErrInvalidChar)
}

func TestIsValidDuplicateRejected(t *testing.T) {
	wl := wordlist.New()
	wl.Push("HELLO")
	wl.Push("WORLD")
	wl.Push("HELLO")
	err := wl.IsValid()
	assert.ErrorIs(t, err, wordlist.ErrDuplicate)
	assert.Contains(t, err.Error(), "position 3")
	assert.Contains(t, err.Error(), "position 1")
}

func TestIsValidAccepts(t *testing.T) {
	wl := wordlist.New()
	for _, w := range []string{"AND", "ARRAY", "BEGIN", "CHAR", "CONST", "DIV", "DO", "EOF"} {
		wl.Push(w)
	}
	assert.NoError(t, wl.IsValid())
}

func TestIsValidNonAlphaRejected(t *testing.T) {
	wl := wordlist.New()
	wl.Push("AB3D")
	var target error = wordlist.ErrInvalidChar
	assert.True(t, errors.Is(wl.IsValid(), target))
}
