// Package model holds the immutable puzzle entities shared by the
// solver engine, persistence, importers, and exporters: cells, shapes
// and their orientations, boards, pieces, and the puzzle configuration
// that ties them together.
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Piece is one polyomino piece definition: a normalized base shape and
// the number of copies that must be placed. The ID exists for editors
// and persistence; the solver identifies pieces only by their index in
// the configuration.
type Piece struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Shape Shape  `json:"shape"`
	Count int    `json:"count"`
}

// NewPiece builds a piece from raw cells, normalizing the shape.
// Returns ErrInvalidShape for empty or disconnected input.
func NewPiece(label string, cells []Cell, count int) (Piece, error) {
	shape, err := NewShape(cells)
	if err != nil {
		return Piece{}, err
	}
	return Piece{
		ID:    uuid.New().String()[:8],
		Label: label,
		Shape: shape,
		Count: count,
	}, nil
}

// Orientations returns the piece's distinct orientations in normalizer
// order. The engine calls this once per piece at configuration time.
func (p Piece) Orientations() []Shape { return p.Shape.Orientations() }

// Puzzle is a complete puzzle configuration: board dimensions, blocked
// cells, and the piece inventory. It is the unit of save/load, import,
// and export, and the input the engine validates before a run.
type Puzzle struct {
	Name    string  `json:"name"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Blocked []Cell  `json:"blocked,omitempty"`
	Pieces  []Piece `json:"pieces"`
}

// NewPuzzle returns an empty puzzle with the given dimensions.
func NewPuzzle(name string, width, height int) Puzzle {
	return Puzzle{Name: name, Width: width, Height: height}
}

// Board constructs the board described by the puzzle.
func (p Puzzle) Board() (*Board, error) {
	return NewBoard(p.Width, p.Height, p.Blocked)
}

// TotalPieceArea returns the summed cell count of all piece copies.
func (p Puzzle) TotalPieceArea() int {
	total := 0
	for _, pc := range p.Pieces {
		total += pc.Shape.Area() * pc.Count
	}
	return total
}

// String formats the puzzle for logs and listings, e.g. "Pentos (5x4, 4 pieces)".
func (p Puzzle) String() string {
	return fmt.Sprintf("%s (%dx%d, %d pieces)", p.Name, p.Width, p.Height, len(p.Pieces))
}
