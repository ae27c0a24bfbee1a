// Package session implements the grab-and-drop state machine for the board
// view. Every interactive reordering gesture runs through one Coordinator:
// a session begins with a grab, moves across candidate drop targets, and
// ends with either a drop (one model mutation) or a cancel (no mutation).
package session

import (
	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/planner"
)

// Kind distinguishes what is being grabbed.
type Kind int

const (
	// KindBoardReorder drags a whole day-board to a new position.
	KindBoardReorder Kind = iota
	// KindItemMove drags a scheduled item within or across boards.
	KindItemMove
	// KindFavoriteInsert drags a favorite from the external favorites
	// list; the item does not exist on any board until the drop.
	KindFavoriteInsert
)

// Session describes one in-progress grab gesture.
type Session struct {
	Kind        Kind
	SourceBoard int
	SourceIndex int
	// Favorite is the candidate experience for KindFavoriteInsert.
	Favorite *domain.Experience
}

// DropTarget is a region that can accept a drop. Index -1 marks a board
// container (accepting board-reorder drops); a non-negative Index marks an
// insertion slot in that board's item list.
type DropTarget struct {
	Board  int
	Index  int
	Bounds Rect
	// Depth is the nesting level of the target region. When targets
	// overlap under a release point, the deepest one wins.
	Depth int
}

// Rect is a screen-space region in cells.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Accepts is the capability check: which targets a session kind may drop on.
func (s *Session) Accepts(t DropTarget) bool {
	switch s.Kind {
	case KindBoardReorder:
		return t.Index < 0
	case KindItemMove, KindFavoriteInsert:
		return t.Index >= 0
	default:
		return false
	}
}

// ResolveTarget picks the drop target under the release point. Among
// overlapping candidates the most specific (deepest) one wins; at equal
// depth the first encountered wins.
func ResolveTarget(x, y int, targets []DropTarget) (DropTarget, bool) {
	var best DropTarget
	found := false
	for _, t := range targets {
		if !t.Bounds.Contains(x, y) {
			continue
		}
		if !found || t.Depth > best.Depth {
			best = t
			found = true
		}
	}
	return best, found
}

// Coordinator enforces the single-active-session invariant and maps drops
// onto controller mutations.
type Coordinator struct {
	ctrl   *planner.Controller
	active *Session
}

func NewCoordinator(ctrl *planner.Controller) *Coordinator {
	return &Coordinator{ctrl: ctrl}
}

// Active returns the in-progress session, or nil.
func (c *Coordinator) Active() *Session { return c.active }

// Begin starts a session. A new grab is ignored while one is in progress.
func (c *Coordinator) Begin(s Session) bool {
	if c.active != nil {
		return false
	}
	c.active = &s
	return true
}

// Cancel aborts the in-progress session, leaving the model unchanged.
func (c *Coordinator) Cancel() {
	c.active = nil
}

// Drop ends the session on the given target. A drop on a target the session
// does not accept behaves like a cancel. A successful drop applies exactly
// one model mutation, which in turn fires exactly one change notification.
func (c *Coordinator) Drop(t DropTarget) bool {
	s := c.active
	if s == nil {
		return false
	}
	c.active = nil
	if !s.Accepts(t) {
		return false
	}
	switch s.Kind {
	case KindBoardReorder:
		return c.ctrl.ReorderBoards(s.SourceBoard, t.Board)
	case KindItemMove:
		return c.ctrl.MoveItem(s.SourceBoard, s.SourceIndex, t.Board, t.Index)
	case KindFavoriteInsert:
		return c.ctrl.InsertItem(t.Board, s.Favorite, t.Index)
	}
	return false
}
