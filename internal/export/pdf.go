// Package export renders solved puzzles to shareable formats: a PDF
// layout diagram, DXF outlines for cutting physical pieces, a QR share
// code, and plain text. It consumes only the board, the puzzle
// configuration, and SearchState snapshots; nothing here reaches back
// into the engine.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/madargani/polyomino-jigsaw-solver/internal/engine"
	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

// pieceColor is an RGB fill for a placed piece.
type pieceColor struct {
	R, G, B int
}

// pieceColors is the palette placements cycle through, keyed by piece
// index so all copies of a piece share a color.
var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendWidth  = 70.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders a solved placement stack as a one-page colored
// grid diagram with a piece legend. Returns an error if the state is
// not a solution.
func ExportPDF(path string, p model.Puzzle, state engine.SearchState) error {
	if state.Kind != engine.EventSolved {
		return fmt.Errorf("nothing to export: search state is %q, not solved", state.Kind)
	}
	board, err := p.Board()
	if err != nil {
		return err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%dx%d, %d placements)", p.Name, p.Width, p.Height, len(state.Stack))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Scale the grid to the drawing area left of the legend.
	drawWidth := pageWidth - marginLeft - marginRight - legendWidth
	drawHeight := pageHeight - drawAreaTop - marginBottom
	cellSize := math.Min(drawWidth/float64(board.Width), drawHeight/float64(board.Height))

	offsetX := marginLeft
	offsetY := drawAreaTop

	// Board background and blocked cells.
	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	pdf.Rect(offsetX, offsetY, float64(board.Width)*cellSize, float64(board.Height)*cellSize, "FD")

	pdf.SetFillColor(60, 60, 60)
	for _, c := range board.BlockedCells() {
		pdf.Rect(offsetX+float64(c.Col)*cellSize, offsetY+float64(c.Row)*cellSize, cellSize, cellSize, "F")
	}

	// Placements.
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(30, 30, 30)
	for _, pl := range state.Stack {
		col := pieceColors[pl.PieceIndex%len(pieceColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		for _, c := range pl.Cells {
			pdf.Rect(offsetX+float64(c.Col)*cellSize, offsetY+float64(c.Row)*cellSize, cellSize, cellSize, "FD")
		}
	}

	// Grid lines over everything for readability.
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.1)
	for r := 0; r <= board.Height; r++ {
		y := offsetY + float64(r)*cellSize
		pdf.Line(offsetX, y, offsetX+float64(board.Width)*cellSize, y)
	}
	for c := 0; c <= board.Width; c++ {
		x := offsetX + float64(c)*cellSize
		pdf.Line(x, offsetY, x, offsetY+float64(board.Height)*cellSize)
	}

	renderLegend(pdf, p, state)

	return pdf.OutputFileAndClose(path)
}

// renderLegend lists each piece with its color swatch, size, and copy
// count along the right edge of the page.
func renderLegend(pdf *fpdf.Fpdf, p model.Puzzle, state engine.SearchState) {
	x := pageWidth - marginRight - legendWidth
	y := drawAreaTop

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(x, y)
	pdf.CellFormat(legendWidth, 6, "Pieces", "", 0, "L", false, 0, "")
	y += 8

	placed := make(map[int]int)
	for _, pl := range state.Stack {
		placed[pl.PieceIndex]++
	}

	pdf.SetFont("Helvetica", "", 9)
	for i, piece := range p.Pieces {
		if y > pageHeight-marginBottom-6 {
			break
		}
		col := pieceColors[i%len(pieceColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.Rect(x, y, 5, 5, "FD")

		pdf.SetXY(x+7, y)
		line := fmt.Sprintf("%s: %d cells, %d placed", piece.Label, piece.Shape.Area(), placed[i])
		pdf.CellFormat(legendWidth-7, 5, line, "", 0, "L", false, 0, "")
		y += 7
	}
}
