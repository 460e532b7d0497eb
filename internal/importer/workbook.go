package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

// boardSheetName is the worksheet a workbook puzzle describes its
// board on; every other sheet defines one piece.
const boardSheetName = "Board"

// ImportWorkbook reads a full puzzle drawn in an Excel workbook.
//
// The "Board" sheet is a grid with one spreadsheet cell per board
// cell: "#" or "x" marks a blocked cell, anything else (".", "o",
// empty within the grid) a free one. Board dimensions come from the
// grid extents. Every other sheet defines one piece: its non-empty
// cells are the shape, the sheet name is the label, and a " xN"
// suffix on the name sets the copy count (e.g. "L x2").
func ImportWorkbook(path string) (model.Puzzle, ImportResult) {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open workbook: %v", err))
		return model.Puzzle{}, result
	}
	defer f.Close()

	var puzzle model.Puzzle
	boardSeen := false

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Sheet %q: %v", sheet, err))
			continue
		}

		if strings.EqualFold(sheet, boardSheetName) {
			width, height, blocked, err := parseBoardGrid(rows)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Sheet %q: %v", sheet, err))
				continue
			}
			puzzle.Width = width
			puzzle.Height = height
			puzzle.Blocked = blocked
			boardSeen = true
			continue
		}

		label, count := parseSheetName(sheet)
		cells := markedCells(rows)
		if len(cells) == 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Sheet %q: no marked cells, skipped", sheet))
			continue
		}
		piece, err := model.NewPiece(label, cells, count)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Sheet %q: %v", sheet, err))
			continue
		}
		result.Pieces = append(result.Pieces, piece)
	}

	if !boardSeen {
		result.Errors = append(result.Errors, fmt.Sprintf("Workbook has no %q sheet", boardSheetName))
		return model.Puzzle{}, result
	}

	puzzle.Name = strings.TrimSuffix(fileBase(path), ".xlsx")
	puzzle.Pieces = result.Pieces
	return puzzle, result
}

// parseBoardGrid derives board dimensions and blocked cells from the
// Board sheet's rows.
func parseBoardGrid(rows [][]string) (width, height int, blocked []model.Cell, err error) {
	height = len(rows)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 || height == 0 {
		return 0, 0, nil, fmt.Errorf("board grid is empty")
	}
	for r, row := range rows {
		for c, v := range row {
			if isBlockedMark(v) {
				blocked = append(blocked, model.Cell{Row: r, Col: c})
			}
		}
	}
	return width, height, blocked, nil
}

func isBlockedMark(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "#", "x":
		return true
	}
	return false
}

// markedCells collects the coordinates of all non-empty cells in a
// piece sheet.
func markedCells(rows [][]string) []model.Cell {
	var cells []model.Cell
	for r, row := range rows {
		for c, v := range row {
			if strings.TrimSpace(v) != "" {
				cells = append(cells, model.Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// parseSheetName splits a piece sheet name into label and copy count:
// "L x2" means two copies of the piece named "L".
func parseSheetName(name string) (string, int) {
	idx := strings.LastIndex(name, " x")
	if idx < 0 {
		return name, 1
	}
	count, err := strconv.Atoi(strings.TrimSpace(name[idx+2:]))
	if err != nil || count < 1 {
		return name, 1
	}
	return strings.TrimSpace(name[:idx]), count
}

// fileBase returns the final path element without touching the
// platform separator rules excelize already normalized.
func fileBase(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
