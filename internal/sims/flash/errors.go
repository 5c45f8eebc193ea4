package flash

import "errors"

var (
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidShape reports a malformed initial grid.
	ErrInvalidShape = errors.New("invalid grid shape")
	// ErrInvalidCell reports a cell that cannot exist between ticks.
	ErrInvalidCell = errors.New("invalid cell")
	// ErrNotSynchronized reports that no tick flashed every cell within the
	// allowed number of ticks.
	ErrNotSynchronized = errors.New("grid did not synchronize")
	// ErrInvalidTicks reports a negative tick count.
	ErrInvalidTicks = errors.New("invalid tick count")
)
