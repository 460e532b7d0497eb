package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/madargani/polyomino-jigsaw-solver/internal/engine"
	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

// DefaultCellSizeMM is the edge length one board cell maps to in an
// exported DXF drawing.
const DefaultCellSizeMM = 20.0

// ExportDXF writes the solved layout as a DXF drawing: every placed
// piece becomes its traced boundary as LINE entities, sized so each
// board cell is cellSize millimeters. CAD and CNC tools chain
// connected LINEs back into closed outlines, so the output can be used
// to cut the physical pieces. DXF has Y pointing up, so rows are
// flipped.
func ExportDXF(path string, board *model.Board, state engine.SearchState, cellSize float64) error {
	if state.Kind != engine.EventSolved {
		return fmt.Errorf("nothing to export: search state is %q, not solved", state.Kind)
	}
	if cellSize <= 0 {
		cellSize = DefaultCellSizeMM
	}

	drawing := dxf.NewDrawing()

	for _, pl := range state.Stack {
		for _, e := range boundaryEdges(pl.Cells) {
			x1 := float64(e.from.Col) * cellSize
			y1 := float64(board.Height-e.from.Row) * cellSize
			x2 := float64(e.to.Col) * cellSize
			y2 := float64(board.Height-e.to.Row) * cellSize
			if _, err := drawing.Line(x1, y1, 0, x2, y2, 0); err != nil {
				return fmt.Errorf("failed to add outline segment: %w", err)
			}
		}
	}

	if err := drawing.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF to %s: %w", path, err)
	}
	return nil
}

// edge is one unit-length boundary segment between two grid corners.
// Corners use the same coordinates as cells: corner (r,c) is the
// top-left corner of cell (r,c).
type edge struct {
	from, to model.Cell
}

// boundaryEdges traces the outline of a cell set: every cell side
// whose neighbor is outside the set is part of the boundary.
func boundaryEdges(cells []model.Cell) []edge {
	in := make(map[model.Cell]bool, len(cells))
	for _, c := range cells {
		in[c] = true
	}

	var edges []edge
	for _, c := range cells {
		// Top side
		if !in[model.Cell{Row: c.Row - 1, Col: c.Col}] {
			edges = append(edges, edge{
				from: model.Cell{Row: c.Row, Col: c.Col},
				to:   model.Cell{Row: c.Row, Col: c.Col + 1},
			})
		}
		// Bottom side
		if !in[model.Cell{Row: c.Row + 1, Col: c.Col}] {
			edges = append(edges, edge{
				from: model.Cell{Row: c.Row + 1, Col: c.Col},
				to:   model.Cell{Row: c.Row + 1, Col: c.Col + 1},
			})
		}
		// Left side
		if !in[model.Cell{Row: c.Row, Col: c.Col - 1}] {
			edges = append(edges, edge{
				from: model.Cell{Row: c.Row, Col: c.Col},
				to:   model.Cell{Row: c.Row + 1, Col: c.Col},
			})
		}
		// Right side
		if !in[model.Cell{Row: c.Row, Col: c.Col + 1}] {
			edges = append(edges, edge{
				from: model.Cell{Row: c.Row, Col: c.Col + 1},
				to:   model.Cell{Row: c.Row + 1, Col: c.Col + 1},
			})
		}
	}
	return edges
}
