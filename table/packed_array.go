package table

import (
	"github.com/sirupsen/logrus"
)

// OneDPackedArray is the dense, length-N array produced by row-displacement
// packing: for every word, position (rlt[h1(word)] + h2(word)) mod N holds
// that word's ordinal, and every position in [0, N) is filled exactly once.
type OneDPackedArray struct {
	array []int // word ordinals by packed position; debugging/verification aid
	rlt   *Rlt
}

// NewOneDPackedArray runs the packing search over td's rows, largest
// population first. For each row it searches ascending displacements,
// starting from the value that aligns the row's smallest column with the
// smallest unused array position, until one produces a target set that is
// both internally distinct (mod N doesn't collapse two columns together)
// and disjoint from every previously placed row. It fails with
// ErrUnplaceable if a row exhausts every displacement before the search
// bound is reached — meaning this HashAlgorithm cannot yield an MPHF for
// this word list.
func NewOneDPackedArray(td *TwoDArray) (*OneDPackedArray, error) {
	n := td.NumEntries()
	packed := &OneDPackedArray{
		array: make([]int, n),
		rlt:   newRlt(td.LastRowIndex() + 1),
	}
	packed.rlt.setNumEntries(n)

	occupied := make([]bool, n)

	it := td.RowSizeIterator()
	for it.Next() {
		rowIndex, row := it.RowIndex(), it.Row()
		cols := row.SortedColumns()
		c0 := cols[0]
		d := firstUnused(occupied) - c0

		for {
			targets, ok := tryDisplacement(cols, d, n, occupied)
			if ok {
				for i, c := range cols {
					occupied[targets[i]] = true
					packed.array[targets[i]] = row.Ordinal(c)
				}
				packed.rlt.set(rowIndex, d)
				logrus.WithFields(logrus.Fields{
					"row":          rowIndex,
					"population":   len(cols),
					"displacement": d,
				}).Debug("table: row placed")

				break
			}

			d++
			if d+c0 >= n {
				return nil, wrap(ErrUnplaceable, "row %d (population %d) exhausted displacements up to bound %d", rowIndex, len(cols), n)
			}
			logrus.WithFields(logrus.Fields{
				"row":          rowIndex,
				"displacement": d,
			}).Debug("table: displacement rejected, bumping")
		}
	}

	return packed, nil
}

// firstUnused returns the smallest index not yet occupied. The packing
// search only calls this while at least one row remains to place, so an
// unoccupied index always exists among occupied's n slots.
func firstUnused(occupied []bool) int {
	for i, used := range occupied {
		if !used {
			return i
		}
	}

	return len(occupied)
}

// tryDisplacement computes the candidate target set for displacement d and
// reports whether it is free of both within-row and cross-row collisions.
func tryDisplacement(cols []int, d, n int, occupied []bool) ([]int, bool) {
	targets := make([]int, len(cols))
	seen := make(map[int]bool, len(cols))
	for i, c := range cols {
		t := mod(c+d, n)
		if seen[t] || occupied[t] {
			return nil, false
		}
		seen[t] = true
		targets[i] = t
	}

	return targets, true
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}

// Len is N, the packed array's length.
func (p *OneDPackedArray) Len() int {
	return len(p.array)
}

// At returns the word-ordinal stored at packed position i.
func (p *OneDPackedArray) At(i int) int {
	return p.array[i]
}

// Rlt returns the owned displacement table.
func (p *OneDPackedArray) Rlt() *Rlt {
	return p.rlt
}
