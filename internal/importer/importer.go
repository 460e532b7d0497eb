// Package importer reads puzzle definitions from CSV piece lists and
// Excel workbooks. CSV import supports automatic delimiter detection
// and case-insensitive header recognition; workbook import lets a
// puzzle be drawn directly in spreadsheet cells.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

// ImportResult holds the imported pieces plus any per-row problems.
// Errors describe rows that were skipped; Warnings describe rows that
// were imported with a correction.
type ImportResult struct {
	Pieces   []model.Piece
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label int
	Cells int
	Count int
}

// headerAliases maps canonical column names to their accepted aliases
// (all lowercase).
var headerAliases = map[string][]string{
	"label": {"label", "name", "piece", "piece name", "id", "description"},
	"cells": {"cells", "shape", "coords", "coordinates", "pattern"},
	"count": {"count", "quantity", "qty", "copies", "num", "amount"},
}

// DetectCSVDelimiter determines the most likely CSV delimiter by trying
// comma, semicolon, tab, and pipe. The delimiter producing the most
// consistent multi-column row structure wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}
	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping,
// matching case-insensitively against known aliases. When no header is
// recognized it falls back to positional Label, Cells, Count and
// reports false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Cells: -1, Count: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "label":
					if mapping.Label == -1 {
						mapping.Label = i
					}
				case "cells":
					if mapping.Cells == -1 {
						mapping.Cells = i
					}
				case "count":
					if mapping.Count == -1 {
						mapping.Count = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Label: 0, Cells: 1, Count: 2}, false
	}
	return mapping, true
}

// ParseCellList parses a shape cell list of the form "r,c; r,c; ...".
func ParseCellList(s string) ([]model.Cell, error) {
	var cells []model.Cell
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid cell %q, expected \"row,col\"", pair)
		}
		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid row in cell %q", pair)
		}
		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid column in cell %q", pair)
		}
		cells = append(cells, model.Cell{Row: row, Col: col})
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("empty cell list")
	}
	return cells, nil
}

// ImportCSV reads a piece list from a CSV file. Each row defines one
// piece: a label, a cell list ("0,0;0,1;1,0"), and an optional copy
// count (default 1).
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read file: %v", err))
		return result
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File contains no rows")
		return result
	}

	mapping, hasHeader := DetectColumns(records[0])
	rows := records
	if hasHeader {
		rows = records[1:]
	}

	for i, row := range rows {
		rowLabel := fmt.Sprintf("Row %d", i+1)
		if hasHeader {
			rowLabel = fmt.Sprintf("Row %d", i+2)
		}
		piece, errMsg, warnMsg := parseRow(row, mapping, rowLabel, len(result.Pieces))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warnMsg != "" {
			result.Warnings = append(result.Warnings, warnMsg)
		}
		result.Pieces = append(result.Pieces, piece)
	}
	return result
}

// getCell safely retrieves a trimmed cell value from a row by index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a Piece from a row using the given column mapping.
// Returns the piece, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, pieceCount int) (model.Piece, string, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Piece %d", pieceCount+1)
	}

	cellsStr := getCell(row, mapping.Cells)
	if cellsStr == "" {
		return model.Piece{}, fmt.Sprintf("%s: Missing cell list", rowLabel), ""
	}
	cells, err := ParseCellList(cellsStr)
	if err != nil {
		return model.Piece{}, fmt.Sprintf("%s: %v", rowLabel, err), ""
	}

	count := 1
	warn := ""
	if countStr := getCell(row, mapping.Count); countStr != "" {
		count, err = strconv.Atoi(countStr)
		if err != nil || count < 1 {
			warn = fmt.Sprintf("%s: Invalid count '%s', defaulting to 1", rowLabel, countStr)
			count = 1
		}
	}

	piece, err := model.NewPiece(label, cells, count)
	if err != nil {
		return model.Piece{}, fmt.Sprintf("%s: %v", rowLabel, err), ""
	}
	return piece, "", warn
}
