package mphf

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/mphf/hashalgo"
	"github.com/katalvlaran/mphf/table"
)

var (
	// ErrVerifyCollision indicates two words produced the same hash value.
	ErrVerifyCollision = errors.New("mphf: collision detected while verifying the hash")
	// ErrVerifyGap indicates the result set is not exactly {0, ..., N-1}.
	ErrVerifyGap = errors.New("mphf: unexpected gap found in index list")
	// ErrVerifyRange indicates a hash value fell outside [0, N), or that H1
	// or H2 failed for a word so no hash value could be computed.
	ErrVerifyRange = errors.New("mphf: hash value is out of range")
)

// verify computes the emitted hash over every word in words (in order) and
// confirms the result set is exactly {0, ..., len(words)-1} with no
// repeats. A successful build without this check is a contract violation:
// Generate always calls it before returning HashData.
func verify(words []string, rlt *table.Rlt, algo hashalgo.HashAlgorithm) error {
	n := rlt.NumEntries()
	seen := make(map[int]bool, n)
	results := make([]int, 0, n)

	for _, w := range words {
		r, err := algo.H1(w)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrVerifyRange, err)
		}
		c, err := algo.H2(w)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrVerifyRange, err)
		}

		v := (rlt.Get(r) + c) % n
		if v < 0 {
			v += n
		}
		if v >= n {
			return fmt.Errorf("%w: word %q hashed to %d, outside [0, %d)", ErrVerifyRange, w, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: word %q collides at %d", ErrVerifyCollision, w, v)
		}
		seen[v] = true
		results = append(results, v)
	}

	sort.Ints(results)
	for i, v := range results {
		if v != i {
			return fmt.Errorf("%w: expected %d, found %d", ErrVerifyGap, i, v)
		}
	}

	return nil
}
