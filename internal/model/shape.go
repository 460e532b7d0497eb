package model

import (
	"fmt"
	"sort"
)

// Cell represents a single grid coordinate. Row 0 is the top of the
// board, column 0 the left edge.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the cell offset by another cell treated as a vector.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Sub returns the component-wise difference of two cells.
func (c Cell) Sub(d Cell) Cell {
	return Cell{Row: c.Row - d.Row, Col: c.Col - d.Col}
}

// Shape is a polyomino: a non-empty, 4-connected set of cells
// normalized so the minimum row and minimum column are both zero.
// Cells are kept sorted in row-major order, which makes shape
// comparison cheap and gives anchors a stable enumeration order.
type Shape []Cell

// NewShape builds a normalized Shape from raw cell coordinates.
// Duplicate input cells are collapsed. Returns ErrInvalidShape if the
// input is empty or the cells are not 4-connected.
func NewShape(cells []Cell) (Shape, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: shape has no cells", ErrInvalidShape)
	}
	seen := make(map[Cell]bool, len(cells))
	s := make(Shape, 0, len(cells))
	for _, c := range cells {
		if !seen[c] {
			seen[c] = true
			s = append(s, c)
		}
	}
	s = s.normalized()
	if !IsConnected(s) {
		return nil, fmt.Errorf("%w: cells are not 4-connected", ErrInvalidShape)
	}
	return s, nil
}

// normalized translates the shape so its bounding box starts at (0, 0)
// and sorts the cells in row-major order.
func (s Shape) normalized() Shape {
	if len(s) == 0 {
		return s
	}
	minRow, minCol := s[0].Row, s[0].Col
	for _, c := range s[1:] {
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
	}
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Row - minRow, Col: c.Col - minCol}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Area returns the number of cells in the shape.
func (s Shape) Area() int { return len(s) }

// Width returns the bounding-box width of a normalized shape.
func (s Shape) Width() int {
	w := 0
	for _, c := range s {
		if c.Col+1 > w {
			w = c.Col + 1
		}
	}
	return w
}

// Height returns the bounding-box height of a normalized shape.
func (s Shape) Height() int {
	h := 0
	for _, c := range s {
		if c.Row+1 > h {
			h = c.Row + 1
		}
	}
	return h
}

// Equal reports whether two normalized shapes cover the same cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Rotate90 returns the shape rotated 90 degrees clockwise, re-normalized.
func (s Shape) Rotate90() Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Col, Col: -c.Row}
	}
	return out.normalized()
}

// Mirror returns the shape flipped horizontally, re-normalized.
func (s Shape) Mirror() Shape {
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Cell{Row: c.Row, Col: -c.Col}
	}
	return out.normalized()
}

// Orientations returns the distinct orientations of the shape, at most
// eight, produced by applying the symmetry transforms in a fixed order:
// identity, rotate90, rotate180, rotate270, then the same four rotations
// of the mirrored shape. Duplicates are dropped keeping the first
// occurrence, so symmetric pieces yield fewer entries. The order is
// stable and determines the solver's try-order.
func (s Shape) Orientations() []Shape {
	var out []Shape
	add := func(cand Shape) {
		for _, o := range out {
			if o.Equal(cand) {
				return
			}
		}
		out = append(out, cand)
	}

	cur := s.normalized()
	for i := 0; i < 4; i++ {
		add(cur)
		cur = cur.Rotate90()
	}
	cur = s.Mirror()
	for i := 0; i < 4; i++ {
		add(cur)
		cur = cur.Rotate90()
	}
	return out
}

// String renders the shape as a small text grid, useful in error
// messages and test failures.
func (s Shape) String() string {
	h, w := s.Height(), s.Width()
	grid := make([][]byte, h)
	for r := range grid {
		grid[r] = make([]byte, w)
		for c := range grid[r] {
			grid[r][c] = '.'
		}
	}
	for _, c := range s {
		grid[c.Row][c.Col] = '#'
	}
	out := make([]byte, 0, h*(w+1))
	for r, row := range grid {
		if r > 0 {
			out = append(out, '\n')
		}
		out = append(out, row...)
	}
	return string(out)
}
