package table

import (
	"errors"
	"fmt"
)

var (
	// ErrCollision indicates two words share the same (row, column) pair.
	ErrCollision = errors.New("table: collision between two words")

	// ErrUnplaceable indicates a row exhausted every displacement up to the
	// array bound without finding a collision-free target set.
	ErrUnplaceable = errors.New("table: unable to minimally pack array")
)

func wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
