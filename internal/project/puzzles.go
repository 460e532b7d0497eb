// Package project handles puzzle persistence: saving and loading
// puzzle configurations under the user's puzzle directory, and
// exporting/importing them at arbitrary paths for sharing. The solver
// core never touches the filesystem; this package is the collaborator
// that feeds it validated configurations.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

// DefaultPuzzleDir returns the directory for saved puzzles,
// ~/.polyomino-puzzles/saved.
func DefaultPuzzleDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".polyomino-puzzles", "saved"), nil
}

// SavePuzzle writes the puzzle to the given JSON file, creating parent
// directories as needed.
func SavePuzzle(path string, p model.Puzzle) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create puzzle directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write puzzle to %s: %w", path, err)
	}
	return nil
}

// LoadPuzzle reads a puzzle from a JSON file and re-normalizes every
// piece shape, so hand-edited or corrupted files surface
// ErrInvalidShape/ErrInvalidBoard here instead of inside a run.
func LoadPuzzle(path string) (model.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Puzzle{}, fmt.Errorf("failed to read puzzle from %s: %w", path, err)
	}
	var p model.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Puzzle{}, fmt.Errorf("invalid puzzle file %s: %w", path, err)
	}
	if _, err := p.Board(); err != nil {
		return model.Puzzle{}, fmt.Errorf("puzzle file %s: %w", path, err)
	}
	for i := range p.Pieces {
		shape, err := model.NewShape(p.Pieces[i].Shape)
		if err != nil {
			return model.Puzzle{}, fmt.Errorf("puzzle file %s, piece %d (%s): %w", path, i, p.Pieces[i].Label, err)
		}
		p.Pieces[i].Shape = shape
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// ListPuzzles returns the JSON puzzle files in dir, sorted by name.
// A missing directory is treated as empty.
func ListPuzzles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ExportPuzzle writes the puzzle to a user-specified location for
// sharing. Identical format to SavePuzzle; the distinction mirrors the
// save-versus-export flows of the editor.
func ExportPuzzle(path string, p model.Puzzle) error {
	return SavePuzzle(path, p)
}

// ImportPuzzle reads a shared puzzle file and assigns fresh piece IDs
// so imported pieces never collide with existing ones.
func ImportPuzzle(path string) (model.Puzzle, error) {
	p, err := LoadPuzzle(path)
	if err != nil {
		return model.Puzzle{}, err
	}
	for i := range p.Pieces {
		np, err := model.NewPiece(p.Pieces[i].Label, p.Pieces[i].Shape, p.Pieces[i].Count)
		if err != nil {
			return model.Puzzle{}, err
		}
		p.Pieces[i] = np
	}
	return p, nil
}
