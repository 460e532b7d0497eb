// Package engine implements the backtracking exact-cover search over a
// polyomino puzzle configuration. The recursion is flattened into an
// explicit frame stack with per-frame candidate cursors, so the search
// advances one emitted event at a time and can be suspended between any
// two events without coroutine support.
package engine

import (
	"fmt"

	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

// phase says what the next advance call has to do.
type phase int

const (
	// phaseSelect picks the next target cell, detects the solved state,
	// and opens a new frame.
	phaseSelect phase = iota
	// phaseResolve runs the legality check for the candidate announced
	// by the preceding attempt event and applies it if legal.
	phaseResolve
	// phaseIterate resumes candidate enumeration in the top frame after
	// a backtrack.
	phaseIterate
)

// frame is one level of the flattened recursion: the empty cell every
// candidate at this depth must cover, and cursors into the piece /
// orientation / anchor try-order. The cursors always point at the
// candidate currently under consideration (or applied).
type frame struct {
	target model.Cell
	piece  int
	orient int
	anchor int
}

// Engine runs one search over a board and piece inventory. It owns the
// occupancy state and placement stack for the duration of the run and
// is not safe for concurrent use; the Session wrapper is the intended
// entry point.
type Engine struct {
	board   *model.Board
	pieces  []model.Piece
	orients [][]model.Shape

	occ       *occupancy
	remaining []int
	stack     []Placement
	frames    []frame

	phase    phase
	steps    uint64
	nextID   int
	finished bool
}

// New validates the configuration and prepares a run: every piece
// shape is re-normalized (surfacing ErrInvalidShape for definitions
// built outside NewPiece) and its orientations are derived once.
// Occupancy starts all-empty.
func New(board *model.Board, pieces []model.Piece) (*Engine, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: board is nil", model.ErrInvalidBoard)
	}
	e := &Engine{
		board:     board,
		pieces:    pieces,
		orients:   make([][]model.Shape, len(pieces)),
		occ:       newOccupancy(board),
		remaining: make([]int, len(pieces)),
		phase:     phaseSelect,
		nextID:    1,
	}
	for i, p := range pieces {
		shape, err := model.NewShape(p.Shape)
		if err != nil {
			return nil, fmt.Errorf("piece %d (%s): %w", i, p.Label, err)
		}
		e.orients[i] = shape.Orientations()
		e.remaining[i] = p.Count
	}
	return e, nil
}

// advance runs the search to its next emit point and returns the event.
// Exactly one event is produced per call; between calls all state is at
// rest and occupancy is consistent. Must not be called after a terminal
// event.
func (e *Engine) advance() SearchState {
	switch e.phase {
	case phaseSelect:
		target, ok := e.occ.firstEmpty()
		if !ok {
			if e.totalRemaining() == 0 {
				e.finished = true
				return e.emit(EventSolved, nil)
			}
			// Board is full but copies remain: this branch cannot lead
			// to an exact cover.
			return e.unwind()
		}
		e.frames = append(e.frames, frame{target: target})
		return e.nextAttempt()

	case phaseResolve:
		f := &e.frames[len(e.frames)-1]
		cells := translate(e.orients[f.piece][f.orient], e.anchorCell(f))
		if !e.occ.canPlace(cells) {
			f.anchor++
			return e.nextAttempt()
		}
		pl := Placement{
			ID:               e.nextID,
			PieceIndex:       f.piece,
			OrientationIndex: f.orient,
			Anchor:           e.anchorCell(f),
			Cells:            cells,
		}
		e.nextID++
		e.occ.apply(cells, tag{pieceIdx: f.piece, placementID: pl.ID})
		e.remaining[f.piece]--
		e.stack = append(e.stack, pl)
		e.phase = phaseSelect
		return e.emit(EventPlace, &pl)

	default: // phaseIterate
		return e.nextAttempt()
	}
}

// nextAttempt advances the top frame's cursors to the next candidate
// and announces it. Try-order: pieces in configuration order (skipping
// exhausted counts), orientations in normalizer order, anchors by
// increasing index in the orientation's cell list. When no candidate
// remains the frame is abandoned and the search unwinds.
func (e *Engine) nextAttempt() SearchState {
	f := &e.frames[len(e.frames)-1]
	for f.piece < len(e.pieces) {
		if e.remaining[f.piece] == 0 {
			f.piece++
			f.orient, f.anchor = 0, 0
			continue
		}
		ors := e.orients[f.piece]
		if f.orient >= len(ors) {
			f.piece++
			f.orient, f.anchor = 0, 0
			continue
		}
		if f.anchor >= len(ors[f.orient]) {
			f.orient++
			f.anchor = 0
			continue
		}
		cand := Placement{
			ID:               e.nextID,
			PieceIndex:       f.piece,
			OrientationIndex: f.orient,
			Anchor:           e.anchorCell(f),
			Cells:            translate(ors[f.orient], e.anchorCell(f)),
		}
		e.phase = phaseResolve
		return e.emit(EventAttempt, &cand)
	}

	// Every piece/orientation/anchor combination at this target cell is
	// exhausted.
	e.frames = e.frames[:len(e.frames)-1]
	return e.unwind()
}

// unwind pops the enclosing frame's committed placement, or ends the
// search if no placements remain. The undone placement's frame resumes
// enumeration at its next anchor.
func (e *Engine) unwind() SearchState {
	if len(e.frames) == 0 {
		e.finished = true
		return e.emit(EventNoSolution, nil)
	}
	f := &e.frames[len(e.frames)-1]
	pl := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	e.occ.undo(pl.Cells)
	e.remaining[pl.PieceIndex]++
	f.anchor++
	e.phase = phaseIterate
	return e.emit(EventRemove, &pl)
}

// anchorCell positions the frame's current orientation so that its
// cell at the anchor cursor lands on the target cell. Enumerating one
// anchor per orientation cell covers every translation that can cover
// the target.
func (e *Engine) anchorCell(f *frame) model.Cell {
	return f.target.Sub(e.orients[f.piece][f.orient][f.anchor])
}

func (e *Engine) totalRemaining() int {
	total := 0
	for _, r := range e.remaining {
		total += r
	}
	return total
}

// emit stamps the step counter and snapshots the mutable state.
func (e *Engine) emit(kind EventKind, pl *Placement) SearchState {
	e.steps++
	st := SearchState{
		Kind:      kind,
		Step:      e.steps,
		Stack:     make([]Placement, len(e.stack)),
		Remaining: make([]int, len(e.remaining)),
		Placement: pl,
	}
	copy(st.Stack, e.stack)
	copy(st.Remaining, e.remaining)
	return st
}
