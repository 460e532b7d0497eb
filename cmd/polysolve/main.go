// polysolve: Polyomino Jigsaw Puzzle Solver
//
// A command-line solver for polyomino exact-cover puzzles: load or
// import a puzzle, search for a placement of every piece, and export
// the solution as ASCII, PDF, DXF or a QR share code.
//
// Build:
//   go build -o polysolve ./cmd/polysolve
//
// Examples:
//   polysolve -puzzle pentominoes.json
//   polysolve -import pieces.xlsx -pdf solution.pdf
//   polysolve -puzzle board.json -watch -delay 50ms

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/madargani/polyomino-jigsaw-solver/internal/engine"
	"github.com/madargani/polyomino-jigsaw-solver/internal/export"
	"github.com/madargani/polyomino-jigsaw-solver/internal/importer"
	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
	"github.com/madargani/polyomino-jigsaw-solver/internal/project"
)

func main() {
	var (
		puzzlePath = flag.String("puzzle", "", "load a saved puzzle JSON file")
		importPath = flag.String("import", "", "import a puzzle from a .csv or .xlsx file")
		savePath   = flag.String("save", "", "save the loaded puzzle as JSON before solving")
		pdfPath    = flag.String("pdf", "", "export the solution as a PDF diagram")
		dxfPath    = flag.String("dxf", "", "export the solution piece outlines as DXF")
		qrPath     = flag.String("qr", "", "export the puzzle as a QR share code PNG")
		cellSize   = flag.Float64("cell-size", export.DefaultCellSizeMM, "DXF cell size in millimetres")
		watch      = flag.Bool("watch", false, "print the board after every search event")
		delay      = flag.Duration("delay", 0, "pause between steps in watch mode (e.g. 50ms)")
		maxSteps   = flag.Int("max-steps", 0, "abort after this many steps (0 = unlimited)")
		list       = flag.Bool("list", false, "list saved puzzles and exit")
	)
	flag.Parse()

	if err := run(*puzzlePath, *importPath, *savePath, *pdfPath, *dxfPath, *qrPath,
		*cellSize, *watch, *delay, *maxSteps, *list); err != nil {
		fmt.Fprintln(os.Stderr, "polysolve:", err)
		os.Exit(1)
	}
}

func run(puzzlePath, importPath, savePath, pdfPath, dxfPath, qrPath string,
	cellSize float64, watch bool, delay time.Duration, maxSteps int, list bool) error {

	if list {
		return listPuzzles()
	}

	p, err := loadPuzzle(puzzlePath, importPath)
	if err != nil {
		return err
	}

	if err := p.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	if savePath != "" {
		if err := project.ExportPuzzle(savePath, p); err != nil {
			return err
		}
		fmt.Println("saved puzzle to", savePath)
	}
	if qrPath != "" {
		if err := export.ExportShareCode(qrPath, p); err != nil {
			return err
		}
		fmt.Println("wrote share code to", qrPath)
	}

	board, err := p.Board()
	if err != nil {
		return err
	}

	state, stats, err := solve(p, board, watch, delay, maxSteps)
	if err != nil {
		return err
	}

	switch state.Kind {
	case engine.EventSolved:
		fmt.Printf("solved in %d steps (%d attempts, %d placements, %d backtracks)\n",
			stats.Steps, stats.Attempts, stats.Placements, stats.Removals)
		fmt.Println(export.RenderASCII(board, state))
	case engine.EventNoSolution:
		fmt.Printf("no solution after %d steps (%d attempts)\n", stats.Steps, stats.Attempts)
		return nil
	default:
		return fmt.Errorf("search aborted after %d steps", stats.Steps)
	}

	if pdfPath != "" {
		if err := export.ExportPDF(pdfPath, p, state); err != nil {
			return err
		}
		fmt.Println("wrote solution diagram to", pdfPath)
	}
	if dxfPath != "" {
		if err := export.ExportDXF(dxfPath, board, state, cellSize); err != nil {
			return err
		}
		fmt.Println("wrote cutting outlines to", dxfPath)
	}
	return nil
}

func loadPuzzle(puzzlePath, importPath string) (model.Puzzle, error) {
	switch {
	case puzzlePath != "" && importPath != "":
		return model.Puzzle{}, fmt.Errorf("use either -puzzle or -import, not both")
	case puzzlePath != "":
		return project.LoadPuzzle(puzzlePath)
	case importPath != "":
		return importFile(importPath)
	default:
		return model.Puzzle{}, fmt.Errorf("no puzzle given; use -puzzle, -import or -list")
	}
}

func importFile(path string) (model.Puzzle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		p, result := importer.ImportWorkbook(path)
		reportImport(result)
		if len(result.Errors) > 0 {
			return model.Puzzle{}, fmt.Errorf("failed to import %s", path)
		}
		return p, nil
	case ".csv":
		result := importer.ImportCSV(path)
		reportImport(result)
		if len(result.Pieces) == 0 {
			return model.Puzzle{}, fmt.Errorf("no pieces imported from %s", path)
		}
		// CSV files carry pieces only; size the board to fit them.
		p := model.NewPuzzle(fileBase(path), 0, 0)
		p.Pieces = result.Pieces
		p.Width, p.Height = fitBoard(result.Pieces)
		return p, nil
	default:
		return model.Puzzle{}, fmt.Errorf("unsupported import format %q", filepath.Ext(path))
	}
}

func reportImport(r importer.ImportResult) {
	for _, e := range r.Errors {
		fmt.Fprintln(os.Stderr, "import error:", e)
	}
	for _, w := range r.Warnings {
		fmt.Fprintln(os.Stderr, "import warning:", w)
	}
}

// fitBoard picks the most square board whose area matches the total
// piece area, falling back to a single row for prime areas.
func fitBoard(pieces []model.Piece) (width, height int) {
	area := 0
	for _, pc := range pieces {
		area += pc.Shape.Area() * pc.Count
	}
	if area == 0 {
		return 1, 1
	}
	for h := int(isqrt(area)); h >= 1; h-- {
		if area%h == 0 {
			return area / h, h
		}
	}
	return area, 1
}

func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

func fileBase(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func solve(p model.Puzzle, board *model.Board, watch bool, delay time.Duration,
	maxSteps int) (engine.SearchState, engine.Stats, error) {

	if !watch && maxSteps == 0 {
		res, err := engine.Solve(p)
		if err != nil {
			return engine.SearchState{}, engine.Stats{}, err
		}
		return res.State, res.Stats, nil
	}

	session, err := engine.NewSession(p)
	if err != nil {
		return engine.SearchState{}, engine.Stats{}, err
	}
	var (
		state engine.SearchState
		stats engine.Stats
	)
	for {
		state, err = session.Step()
		if err != nil {
			return engine.SearchState{}, engine.Stats{}, err
		}
		stats.Steps = state.Step
		switch state.Kind {
		case engine.EventAttempt:
			stats.Attempts++
		case engine.EventPlace:
			stats.Placements++
		case engine.EventRemove:
			stats.Removals++
		}
		if watch {
			fmt.Printf("step %d: %s\n%s\n\n", state.Step, state.Kind,
				export.RenderASCII(board, state))
			if delay > 0 {
				time.Sleep(delay)
			}
		}
		if state.Terminal() {
			return state, stats, nil
		}
		if maxSteps > 0 && state.Step >= uint64(maxSteps) {
			session.Cancel()
			return state, stats, nil
		}
	}
}

func listPuzzles() error {
	dir, err := project.DefaultPuzzleDir()
	if err != nil {
		return err
	}
	names, err := project.ListPuzzles(dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("no saved puzzles in", dir)
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
