package engine

import "github.com/madargani/polyomino-jigsaw-solver/internal/model"

// EventKind identifies what a search step did.
type EventKind string

const (
	// EventAttempt is emitted for a candidate placement before its
	// legality check.
	EventAttempt EventKind = "attempt"
	// EventPlace is emitted after a candidate passed the legality check
	// and was applied to the board.
	EventPlace EventKind = "place"
	// EventRemove is emitted after a placement was undone during
	// backtracking.
	EventRemove EventKind = "remove"
	// EventSolved is emitted once when every free cell is covered and
	// no piece copies remain. Terminal.
	EventSolved EventKind = "solved"
	// EventNoSolution is emitted once when the whole search tree is
	// exhausted without a solution. Terminal, and not an error.
	EventNoSolution EventKind = "no_solution"
)

// Placement is one piece copy assigned to the board: which piece (by
// configuration index), which of its orientations, the anchor the
// orientation was translated to, and the absolute cells it covers.
// The ID is unique within a run and increases in placement order.
type Placement struct {
	ID               int          `json:"id"`
	PieceIndex       int          `json:"piece"`
	OrientationIndex int          `json:"orientation"`
	Anchor           model.Cell   `json:"anchor"`
	Cells            []model.Cell `json:"cells"`
}

// SearchState is the snapshot handed out after every step. All slices
// are copies; receivers may hold onto a snapshot while the search keeps
// running.
type SearchState struct {
	// Kind says which event this snapshot represents.
	Kind EventKind `json:"kind"`
	// Step is a counter that increases by one per emitted event.
	Step uint64 `json:"step"`
	// Stack is the current partial solution in placement order.
	Stack []Placement `json:"stack"`
	// Remaining holds the unplaced copy count per configured piece.
	Remaining []int `json:"remaining"`
	// Placement is the placement the event refers to: the candidate
	// under consideration for attempt, the committed placement for
	// place, the undone one for remove. Nil for terminal events.
	Placement *Placement `json:"placement,omitempty"`
}

// Terminal reports whether the search ended with this event.
func (s SearchState) Terminal() bool {
	return s.Kind == EventSolved || s.Kind == EventNoSolution
}

// PlacedArea returns the number of cells covered by the current stack.
func (s SearchState) PlacedArea() int {
	total := 0
	for _, p := range s.Stack {
		total += len(p.Cells)
	}
	return total
}
