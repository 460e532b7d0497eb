package model

import "fmt"

// IsConnected reports whether every cell is reachable from every other
// via up/down/left/right steps through cells in the set. The empty set
// is vacuously connected.
func IsConnected(cells []Cell) bool {
	return len(ConnectedComponents(cells)) <= 1
}

// ConnectedComponents partitions the cells into 4-connected groups
// using a flood fill.
func ConnectedComponents(cells []Cell) [][]Cell {
	remaining := make(map[Cell]bool, len(cells))
	for _, c := range cells {
		remaining[c] = true
	}

	var components [][]Cell
	for _, start := range cells {
		if !remaining[start] {
			continue
		}
		var component []Cell
		queue := []Cell{start}
		delete(remaining, start)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			component = append(component, cur)
			for _, d := range [4]Cell{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
				next := cur.Add(d)
				if remaining[next] {
					delete(remaining, next)
					queue = append(queue, next)
				}
			}
		}
		components = append(components, component)
	}
	return components
}

// Validate checks a puzzle configuration before a search run: the board
// must construct, every piece shape must be a valid polyomino with a
// positive count, and the total piece area must equal the board's free
// cell count (an exact cover is impossible otherwise). This catches
// hopeless configurations up front; the engine itself treats any valid
// configuration as searchable and reports exhaustion as no_solution.
func (p Puzzle) Validate() error {
	board, err := p.Board()
	if err != nil {
		return err
	}
	for i, pc := range p.Pieces {
		if _, err := NewShape(pc.Shape); err != nil {
			return fmt.Errorf("piece %d (%s): %w", i, pc.Label, err)
		}
		if pc.Count <= 0 {
			return fmt.Errorf("piece %d (%s): count must be positive, got %d", i, pc.Label, pc.Count)
		}
		w, h := pc.Shape.Width(), pc.Shape.Height()
		if !(w <= board.Width && h <= board.Height) && !(h <= board.Width && w <= board.Height) {
			return fmt.Errorf("piece %d (%s): does not fit the board in any orientation", i, pc.Label)
		}
	}
	if area, free := p.TotalPieceArea(), board.FreeCellCount(); area != free {
		return fmt.Errorf("piece area %d does not match free cell count %d", area, free)
	}
	return nil
}
