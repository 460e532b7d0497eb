package engine

import (
	"errors"

	"github.com/madargani/polyomino-jigsaw-solver/internal/model"
)

// ErrSessionClosed is returned by Step after Cancel or after a terminal
// event has been delivered.
var ErrSessionClosed = errors.New("session closed")

// Session is the resumable wrapper around one search run. Each Step
// call advances the engine to its next event and suspends there, so a
// caller controls pacing entirely: a visualizer may step on a timer, a
// batch caller in a tight loop. Sessions are single-threaded and own
// their engine's occupancy and placement stack exclusively; the session
// closes itself after the terminal event.
type Session struct {
	eng    *Engine
	closed bool
}

// NewSession validates the puzzle configuration and opens a session.
// Configuration errors (ErrInvalidBoard, ErrInvalidShape) surface here,
// before any search step runs.
func NewSession(p model.Puzzle) (*Session, error) {
	board, err := p.Board()
	if err != nil {
		return nil, err
	}
	return NewBoardSession(board, p.Pieces)
}

// NewBoardSession opens a session over an already-constructed board.
func NewBoardSession(board *model.Board, pieces []model.Piece) (*Session, error) {
	eng, err := New(board, pieces)
	if err != nil {
		return nil, err
	}
	return &Session{eng: eng}, nil
}

// Step advances the search to its next event and returns the snapshot.
// After a terminal event (solved or no_solution) the session releases
// its search state and every further Step fails with ErrSessionClosed.
func (s *Session) Step() (SearchState, error) {
	if s.closed {
		return SearchState{}, ErrSessionClosed
	}
	st := s.eng.advance()
	if st.Terminal() {
		s.close()
	}
	return st, nil
}

// Cancel terminates the session and releases the occupancy and
// placement state. Safe to call more than once.
func (s *Session) Cancel() { s.close() }

// Closed reports whether the session has terminated or been cancelled.
func (s *Session) Closed() bool { return s.closed }

func (s *Session) close() {
	s.closed = true
	s.eng = nil
}

// Stats summarizes a completed run.
type Stats struct {
	Steps      uint64 `json:"steps"`
	Attempts   int    `json:"attempts"`
	Placements int    `json:"placements"`
	Removals   int    `json:"removals"`
}

// Result is the terminal snapshot of a run plus its statistics.
type Result struct {
	State SearchState `json:"state"`
	Stats Stats       `json:"stats"`
}

// Solved reports whether the run ended in a complete cover.
func (r Result) Solved() bool { return r.State.Kind == EventSolved }

// Solve runs a puzzle to completion in one call, stepping an internal
// session until the terminal event. Exhaustive search always terminates
// for a valid configuration, so this returns either the solved state or
// no_solution.
func Solve(p model.Puzzle) (Result, error) {
	session, err := NewSession(p)
	if err != nil {
		return Result{}, err
	}
	var res Result
	for {
		st, err := session.Step()
		if err != nil {
			return Result{}, err
		}
		res.Stats.Steps = st.Step
		switch st.Kind {
		case EventAttempt:
			res.Stats.Attempts++
		case EventPlace:
			res.Stats.Placements++
		case EventRemove:
			res.Stats.Removals++
		}
		if st.Terminal() {
			res.State = st
			return res, nil
		}
	}
}
