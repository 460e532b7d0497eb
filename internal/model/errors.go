package model

import "errors"

// Configuration-time errors. Both are fatal: they are reported before
// any search begins and are never recovered from. Callers match them
// with errors.Is.
var (
	// ErrInvalidShape marks a piece definition that is empty or not
	// 4-connected.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidBoard marks a board with non-positive or over-maximum
	// dimensions, or a blocked cell outside the grid.
	ErrInvalidBoard = errors.New("invalid board")
)
