package export

import (
	"strings"

	"github.com/madargani/polyomino-jigsaw-solver/internal/engine"
	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

// pieceLetters are the glyphs assigned to pieces by configuration
// index; boards never hold more than a few dozen distinct pieces.
const pieceLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// RenderASCII draws a snapshot as a text grid, one letter per piece,
// '#' for blocked cells and '.' for empty ones. The output is
// deterministic, which makes it handy both for terminal visualization
// and for golden comparisons in tests.
func RenderASCII(board *model.Board, state engine.SearchState) string {
	grid := make([][]byte, board.Height)
	for r := range grid {
		grid[r] = make([]byte, board.Width)
		for c := range grid[r] {
			cell := model.Cell{Row: r, Col: c}
			if board.Blocked(cell) {
				grid[r][c] = '#'
			} else {
				grid[r][c] = '.'
			}
		}
	}
	for _, pl := range state.Stack {
		letter := pieceLetters[pl.PieceIndex%len(pieceLetters)]
		for _, c := range pl.Cells {
			grid[c.Row][c.Col] = letter
		}
	}

	var sb strings.Builder
	sb.Grow(board.Height * (board.Width + 1))
	for r, row := range grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}
