package maze

import (
	"errors"
	"fmt"
)

// Maze-related errors.
var (
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrUnsatisfiableMask = errors.New("pattern mask is unsatisfiable")
	ErrNoPath            = errors.New("no path between entry and exit")
	ErrMalformedHex      = errors.New("malformed hex maze")
)

// OutOfBoundsError reports a coordinate outside a grid.
type OutOfBoundsError struct {
	Pos    CellPosition
	Height int
	Width  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: (%d,%d) on %dx%d grid", ErrOutOfBounds, e.Pos.Row, e.Pos.Col, e.Height, e.Width)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// UnsatisfiableMaskError reports a mask that cannot be embedded in a grid
// of the given dimensions.
type UnsatisfiableMaskError struct {
	Height  int
	Width   int
	Visited int // cells reached by the carver, zero when carving never ran
	Reason  string
}

func (e *UnsatisfiableMaskError) Error() string {
	msg := fmt.Sprintf("%s for %dx%d grid: %s", ErrUnsatisfiableMask, e.Height, e.Width, e.Reason)
	if e.Visited > 0 {
		msg += fmt.Sprintf(" (visited %d of %d cells)", e.Visited, e.Height*e.Width)
	}
	return msg
}

func (e *UnsatisfiableMaskError) Unwrap() error {
	return ErrUnsatisfiableMask
}
