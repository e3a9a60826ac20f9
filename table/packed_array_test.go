package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mphf/hashalgo"
)

// fakeAlgo lets tests place words at exact (row, column) pairs without
// depending on ElcAlgorithm's character folding.
type fakeAlgo struct {
	h1, h2 map[string]int
}

func (f *fakeAlgo) H1(word string) (int, error) { return f.h1[word], nil }
func (f *fakeAlgo) H2(word string) (int, error) { return f.h2[word], nil }
func (f *fakeAlgo) H1Text() string              { return "fake.h1(word)" }
func (f *fakeAlgo) H2Text() string              { return "fake.h2(word)" }

var _ hashalgo.HashAlgorithm = (*fakeAlgo)(nil)

func TestNewOneDPackedArray_FiveWordPack(t *testing.T) {
	words := []string{"AXXA", "AXXC", "AXXD", "BXXA", "BXXC"}
	algo := hashalgo.DefaultElc()

	td, err := NewTwoDArray(words, algo)
	require.NoError(t, err)

	packed, err := NewOneDPackedArray(td)
	require.NoError(t, err)

	assert.Equal(t, 5, packed.Len())
	assert.Equal(t, []int{1, 5, 2, 3, 4}, []int{
		packed.At(0), packed.At(1), packed.At(2), packed.At(3), packed.At(4),
	})

	// hash_value(word) = (rlt[h1(word)] + h2(word)) mod N must recover each
	// word's packed position.
	rlt := packed.Rlt()
	assert.Equal(t, 0, rlt.Get(0))
	assert.Equal(t, 4, rlt.Get(1))

	for i, w := range words {
		h1, _ := algo.H1(w)
		h2, _ := algo.H2(w)
		pos := mod(rlt.Get(h1)+h2, packed.Len())
		assert.Equal(t, i+1, packed.At(pos), "word %q", w)
	}
}

func TestNewOneDPackedArray_BijectiveOverRange(t *testing.T) {
	words := []string{"APPLE", "BERRY", "CHERRY", "DATES", "EGGS", "FIGS", "GRAPE", "HONEY"}
	algo := hashalgo.DefaultElc()

	td, err := NewTwoDArray(words, algo)
	require.NoError(t, err)

	packed, err := NewOneDPackedArray(td)
	require.NoError(t, err)

	seen := make(map[int]bool, packed.Len())
	for i := 0; i < packed.Len(); i++ {
		v := packed.At(i)
		assert.False(t, seen[v], "ordinal %d placed twice", v)
		seen[v] = true
		assert.True(t, v >= 1 && v <= len(words))
	}
	assert.Len(t, seen, len(words))
}

// TestNewOneDPackedArray_Unplaceable constructs a row shape — two
// already-placed, non-adjacent columns followed by a row whose own two
// columns are adjacent — that this displacement search cannot reconcile
// within its bounded search range, even though the array has enough free
// slots overall.
func TestNewOneDPackedArray_Unplaceable(t *testing.T) {
	algo := &fakeAlgo{
		h1: map[string]int{"a1": 0, "a2": 0, "b1": 1, "b2": 1},
		h2: map[string]int{"a1": 0, "a2": 2, "b1": 0, "b2": 1},
	}
	words := []string{"a1", "a2", "b1", "b2"}

	td, err := NewTwoDArray(words, algo)
	require.NoError(t, err)

	_, err = NewOneDPackedArray(td)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnplaceable))
}

func TestMod(t *testing.T) {
	cases := []struct{ a, n, want int }{
		{5, 3, 2},
		{-1, 3, 2},
		{-4, 3, 2},
		{0, 5, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, mod(c.a, c.n))
	}
}
