package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

func samplePuzzle(t *testing.T) model.Puzzle {
	t.Helper()
	p := model.NewPuzzle("sample", 2, 2)
	p.Blocked = []model.Cell{{Row: 1, Col: 1}}
	piece, err := model.NewPiece("L", []model.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0},
	}, 1)
	require.NoError(t, err)
	p.Pieces = []model.Piece{piece}
	return p
}

func TestSaveLoadPuzzle_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.json")
	original := samplePuzzle(t)

	require.NoError(t, SavePuzzle(path, original))

	loaded, err := LoadPuzzle(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadPuzzle_MissingFile(t *testing.T) {
	_, err := LoadPuzzle(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadPuzzle_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadPuzzle(path)
	assert.Error(t, err)
}

func TestLoadPuzzle_RejectsDisconnectedShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gap.json")
	body := `{"name":"gap","width":3,"height":3,"pieces":[
		{"id":"abc","label":"gap","count":1,
		 "shape":[{"row":0,"col":0},{"row":0,"col":2}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	_, err := LoadPuzzle(path)
	assert.ErrorIs(t, err, model.ErrInvalidShape)
}

func TestLoadPuzzle_RejectsInvalidBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	body := `{"name":"board","width":0,"height":3,"pieces":[]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	_, err := LoadPuzzle(path)
	assert.ErrorIs(t, err, model.ErrInvalidBoard)
}

func TestLoadPuzzle_NormalizesShapes(t *testing.T) {
	// Shapes in hand-written files may be off-origin; loading snaps
	// them back.
	path := filepath.Join(t.TempDir(), "offset.json")
	body := `{"name":"offset","width":2,"height":1,"pieces":[
		{"id":"abc","label":"domino","count":1,
		 "shape":[{"row":4,"col":7},{"row":4,"col":8}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	p, err := LoadPuzzle(path)
	require.NoError(t, err)
	assert.Equal(t, model.Shape{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, p.Pieces[0].Shape)
}

func TestLoadPuzzle_DefaultsNameFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pentomino-rect.json")
	body := `{"width":2,"height":1,"pieces":[]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	p, err := LoadPuzzle(path)
	require.NoError(t, err)
	assert.Equal(t, "pentomino-rect", p.Name)
}

func TestListPuzzles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SavePuzzle(filepath.Join(dir, "b.json"), samplePuzzle(t)))
	require.NoError(t, SavePuzzle(filepath.Join(dir, "a.json"), samplePuzzle(t)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	paths, err := ListPuzzles(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "a.json", filepath.Base(paths[0]))
	assert.Equal(t, "b.json", filepath.Base(paths[1]))
}

func TestListPuzzles_MissingDirIsEmpty(t *testing.T) {
	paths, err := ListPuzzles(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestImportPuzzle_AssignsFreshIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.json")
	original := samplePuzzle(t)
	require.NoError(t, ExportPuzzle(path, original))

	imported, err := ImportPuzzle(path)
	require.NoError(t, err)
	require.Len(t, imported.Pieces, 1)
	assert.NotEqual(t, original.Pieces[0].ID, imported.Pieces[0].ID)
	assert.Equal(t, original.Pieces[0].Shape, imported.Pieces[0].Shape)
}
