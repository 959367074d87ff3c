package board

import "errors"

var (
	// ErrInvalidDimensions is returned when a board is too small to hold the
	// four opening discs.
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrInvalidCell is returned by FromCells for a cell that breaks the
	// border/play-area layout.
	ErrInvalidCell = errors.New("invalid cell")
)
