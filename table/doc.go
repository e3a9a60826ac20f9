// Package table implements the MSMP row-displacement construction: turning
// a sparse (h1, h2) mapping over a word list into a single dense 1-D array
// with no collisions and no gaps.
//
// TwoDArray builds the sparse structure first — row r holds the set of
// (column, word-ordinal) pairs for every word with h1(word) == r — and
// exposes its rows sorted by descending population via RowSizeIterator.
// OneDPackedArray then consumes that order: for each row, largest first,
// it searches ascending integer displacements until one shifts every
// column of the row onto a position that is both internally distinct
// (no wraparound collisions within the row) and still unused by any
// previously placed row. The per-row displacements, once found, form the
// Rlt (row lookup table) that the emitted hash function looks up at
// runtime by h1(word) alone.
//
// Densest rows are placed first because the array is emptiest then,
// minimizing how far later, sparser rows need to be displaced to avoid
// collisions — the standard heuristic for this construction. Displacements
// are searched in ascending order starting from the value that aligns the
// row's smallest column with the smallest unused array position, which
// guarantees termination and picks the lexicographically-first feasible
// displacement per row.
package table
