package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectCSVDelimiter(t *testing.T) {
	assert.Equal(t, ',', DetectCSVDelimiter([]byte("label,cells,count\nL,\"0,0;0,1\",1\n")))
	assert.Equal(t, ';', DetectCSVDelimiter([]byte("label;cells;count\nL;0,0 0,1;1\n")))
	assert.Equal(t, '\t', DetectCSVDelimiter([]byte("label\tcells\tcount\nL\t0,0;0,1\t1\n")))
	assert.Equal(t, '|', DetectCSVDelimiter([]byte("label|cells|count\nL|0,0;0,1|1\n")))
}

func TestDetectColumns_HeaderAliases(t *testing.T) {
	mapping, ok := DetectColumns([]string{"Name", "Shape", "Qty"})
	assert.True(t, ok)
	assert.Equal(t, ColumnMapping{Label: 0, Cells: 1, Count: 2}, mapping)

	mapping, ok = DetectColumns([]string{"count", "cells", "label"})
	assert.True(t, ok)
	assert.Equal(t, ColumnMapping{Label: 2, Cells: 1, Count: 0}, mapping)
}

func TestDetectColumns_NoHeaderFallsBackToPositional(t *testing.T) {
	mapping, ok := DetectColumns([]string{"T", "0,0;0,1;1,1", "2"})
	assert.False(t, ok)
	assert.Equal(t, ColumnMapping{Label: 0, Cells: 1, Count: 2}, mapping)
}

func TestParseCellList(t *testing.T) {
	cells, err := ParseCellList("0,0; 0,1 ;1,0")
	require.NoError(t, err)
	assert.Equal(t, []model.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}, cells)

	_, err = ParseCellList("")
	assert.Error(t, err)

	_, err = ParseCellList("0,0;banana")
	assert.Error(t, err)
}

func TestImportCSV_WithHeader(t *testing.T) {
	path := writeTemp(t, "pieces.csv",
		"label,cells,count\n"+
			"L,\"0,0;1,0;1,1\",2\n"+
			"mono,\"0,0\",1\n")

	result := ImportCSV(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Pieces, 2)
	assert.Equal(t, "L", result.Pieces[0].Label)
	assert.Equal(t, 2, result.Pieces[0].Count)
	assert.Equal(t, 3, result.Pieces[0].Shape.Area())
	assert.Equal(t, "mono", result.Pieces[1].Label)
}

func TestImportCSV_SemicolonDelimited(t *testing.T) {
	// With a semicolon delimiter the cell list uses space-separated
	// pairs via quoting instead.
	path := writeTemp(t, "pieces.csv",
		"label;cells;count\n"+
			"bar;\"0,0\";3\n")

	result := ImportCSV(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Pieces, 1)
	assert.Equal(t, 3, result.Pieces[0].Count)
}

func TestImportCSV_SkipsBadRowsAndReports(t *testing.T) {
	path := writeTemp(t, "pieces.csv",
		"label,cells,count\n"+
			"good,\"0,0;0,1\",1\n"+
			"gap,\"0,0;0,2\",1\n"+
			"empty,,1\n")

	result := ImportCSV(path)
	assert.Len(t, result.Pieces, 1)
	assert.Len(t, result.Errors, 2)
}

func TestImportCSV_InvalidCountWarnsAndDefaults(t *testing.T) {
	path := writeTemp(t, "pieces.csv",
		"label,cells,count\n"+
			"L,\"0,0;1,0\",zero\n")

	result := ImportCSV(path)
	require.Len(t, result.Pieces, 1)
	assert.Equal(t, 1, result.Pieces[0].Count)
	assert.Len(t, result.Warnings, 1)
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.NotEmpty(t, result.Errors)
	assert.Empty(t, result.Pieces)
}

func TestParseSheetName(t *testing.T) {
	label, count := parseSheetName("L x2")
	assert.Equal(t, "L", label)
	assert.Equal(t, 2, count)

	label, count = parseSheetName("square")
	assert.Equal(t, "square", label)
	assert.Equal(t, 1, count)

	label, count = parseSheetName("odd xfoo")
	assert.Equal(t, "odd xfoo", label)
	assert.Equal(t, 1, count)
}
