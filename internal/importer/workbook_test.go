package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

// writeWorkbook builds a test workbook with a 3x2 board (one blocked
// corner) and two piece sheets.
func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(boardSheetName)
	require.NoError(t, err)
	// 3 wide, 2 tall; (1,2) blocked.
	for _, cell := range []string{"A1", "B1", "C1", "A2", "B2"} {
		require.NoError(t, f.SetCellValue(boardSheetName, cell, "."))
	}
	require.NoError(t, f.SetCellValue(boardSheetName, "C2", "#"))

	_, err = f.NewSheet("L x1")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("L x1", "A1", "x"))
	require.NoError(t, f.SetCellValue("L x1", "A2", "x"))
	require.NoError(t, f.SetCellValue("L x1", "B2", "x"))

	_, err = f.NewSheet("domino")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("domino", "A1", "x"))
	require.NoError(t, f.SetCellValue("domino", "B1", "x"))

	require.NoError(t, f.DeleteSheet("Sheet1"))

	path := filepath.Join(t.TempDir(), "puzzle.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImportWorkbook(t *testing.T) {
	puzzle, result := ImportWorkbook(writeWorkbook(t))
	require.Empty(t, result.Errors)

	assert.Equal(t, 3, puzzle.Width)
	assert.Equal(t, 2, puzzle.Height)
	assert.Equal(t, []model.Cell{{Row: 1, Col: 2}}, puzzle.Blocked)
	assert.Equal(t, "puzzle", puzzle.Name)

	require.Len(t, puzzle.Pieces, 2)
	assert.Equal(t, "L", puzzle.Pieces[0].Label)
	assert.Equal(t, 1, puzzle.Pieces[0].Count)
	assert.Equal(t, 3, puzzle.Pieces[0].Shape.Area())
	assert.Equal(t, "domino", puzzle.Pieces[1].Label)
	assert.Equal(t, 2, puzzle.Pieces[1].Shape.Area())
}

func TestImportWorkbook_ImportedPuzzleIsSolvable(t *testing.T) {
	// The board has 5 free cells and the pieces cover 5.
	puzzle, result := ImportWorkbook(writeWorkbook(t))
	require.Empty(t, result.Errors)
	assert.NoError(t, puzzle.Validate())
}

func TestImportWorkbook_MissingBoardSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "x"))
	path := filepath.Join(t.TempDir(), "noboard.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, result := ImportWorkbook(path)
	assert.NotEmpty(t, result.Errors)
}

func TestImportWorkbook_MissingFile(t *testing.T) {
	_, result := ImportWorkbook(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.NotEmpty(t, result.Errors)
}
