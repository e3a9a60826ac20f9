package table

// RowSizeIterator walks a TwoDArray's populated rows from most-populated to
// least, ties broken by ascending row index. Call Next before the first
// RowIndex/Row access, as with a bufio.Scanner.
type RowSizeIterator struct {
	td  *TwoDArray
	pos int
}

// Next advances to the next row and reports whether one remains.
func (it *RowSizeIterator) Next() bool {
	it.pos++
	return it.pos < len(it.td.rowsBySize)
}

// RowIndex returns the current row's index. Valid only after Next returns true.
func (it *RowSizeIterator) RowIndex() int {
	return it.td.rowsBySize[it.pos]
}

// Row returns the current row. Valid only after Next returns true.
func (it *RowSizeIterator) Row() *Row {
	return it.td.rows[it.RowIndex()]
}
