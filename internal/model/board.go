package model

import "fmt"

// MaxBoardDim is the largest supported board edge length. A 50x50 board
// (2500 cells) matches the scale the solver is designed for.
const MaxBoardDim = 50

// Board is a rectangular grid with a set of permanently blocked cells.
// Dimensions and blocked cells are fixed at construction; all mutable
// search state lives in the engine, not here.
type Board struct {
	Width  int
	Height int

	blocked map[Cell]bool
}

// NewBoard validates and builds a board. Returns ErrInvalidBoard if a
// dimension is non-positive or exceeds MaxBoardDim, or if a blocked
// cell lies outside the grid.
func NewBoard(width, height int, blocked []Cell) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidBoard, width, height)
	}
	if width > MaxBoardDim || height > MaxBoardDim {
		return nil, fmt.Errorf("%w: dimensions %dx%d exceed maximum %dx%d", ErrInvalidBoard, width, height, MaxBoardDim, MaxBoardDim)
	}
	b := &Board{
		Width:   width,
		Height:  height,
		blocked: make(map[Cell]bool, len(blocked)),
	}
	for _, c := range blocked {
		if !b.InBounds(c) {
			return nil, fmt.Errorf("%w: blocked cell (%d,%d) is out of bounds", ErrInvalidBoard, c.Row, c.Col)
		}
		b.blocked[c] = true
	}
	return b, nil
}

// InBounds reports whether the cell lies on the grid.
func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Height && c.Col >= 0 && c.Col < b.Width
}

// Blocked reports whether the cell is permanently blocked.
func (b *Board) Blocked(c Cell) bool { return b.blocked[c] }

// FreeCells returns the coverable cells in row-major order: lowest row
// first, then lowest column. This order defines which empty cell the
// solver targets next, so it is part of the reproducibility contract.
func (b *Board) FreeCells() []Cell {
	out := make([]Cell, 0, b.Width*b.Height-len(b.blocked))
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			cell := Cell{Row: r, Col: c}
			if !b.blocked[cell] {
				out = append(out, cell)
			}
		}
	}
	return out
}

// FreeCellCount returns the number of coverable cells.
func (b *Board) FreeCellCount() int {
	return b.Width*b.Height - len(b.blocked)
}

// BlockedCells returns the blocked cells in row-major order.
func (b *Board) BlockedCells() []Cell {
	out := make([]Cell, 0, len(b.blocked))
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			cell := Cell{Row: r, Col: c}
			if b.blocked[cell] {
				out = append(out, cell)
			}
		}
	}
	return out
}
