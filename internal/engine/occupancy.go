package engine

import "github.com/madargani/polyomino-jigsaw-solver/internal/model"

// tag records who covers a cell. A zero placement ID means empty.
type tag struct {
	pieceIdx    int
	placementID int
}

// occupancy is the mutable per-cell state of one search run. It is
// owned exclusively by the engine; legality is always checked before
// any mutation, so apply never has partial effects.
type occupancy struct {
	board *model.Board
	cells []tag
}

func newOccupancy(board *model.Board) *occupancy {
	return &occupancy{
		board: board,
		cells: make([]tag, board.Width*board.Height),
	}
}

func (o *occupancy) index(c model.Cell) int {
	return c.Row*o.board.Width + c.Col
}

// empty reports whether the cell is in bounds, not blocked, and not
// covered by any placement.
func (o *occupancy) empty(c model.Cell) bool {
	return o.board.InBounds(c) && !o.board.Blocked(c) && o.cells[o.index(c)].placementID == 0
}

// canPlace reports whether every one of the given absolute cells is
// free to cover.
func (o *occupancy) canPlace(cells []model.Cell) bool {
	for _, c := range cells {
		if !o.empty(c) {
			return false
		}
	}
	return true
}

// apply marks the cells as covered. Callers must have verified
// legality with canPlace first.
func (o *occupancy) apply(cells []model.Cell, t tag) {
	for _, c := range cells {
		o.cells[o.index(c)] = t
	}
}

// undo clears the cells, exactly reversing an apply with the same
// arguments.
func (o *occupancy) undo(cells []model.Cell) {
	for _, c := range cells {
		o.cells[o.index(c)] = tag{}
	}
}

// firstEmpty returns the first empty free cell in row-major order.
// This is the cell every candidate placement at the current depth must
// cover, which bounds branching: anchors are enumerated per orientation
// cell instead of over the whole board.
func (o *occupancy) firstEmpty() (model.Cell, bool) {
	for r := 0; r < o.board.Height; r++ {
		for c := 0; c < o.board.Width; c++ {
			cell := model.Cell{Row: r, Col: c}
			if !o.board.Blocked(cell) && o.cells[o.index(cell)].placementID == 0 {
				return cell, true
			}
		}
	}
	return model.Cell{}, false
}

// translate maps an orientation onto the board at the given anchor,
// returning the absolute cells it would cover.
func translate(orientation model.Shape, anchor model.Cell) []model.Cell {
	out := make([]model.Cell, len(orientation))
	for i, c := range orientation {
		out[i] = anchor.Add(c)
	}
	return out
}
