// Package planner holds the itinerary's in-memory board model: ordered
// day-boards, ordered scheduled items, and the derived budgets. All
// mutations run synchronously on the UI goroutine; persistence sees only
// immutable snapshots taken after each committed change.
package planner

import (
	"github.com/google/uuid"
	"github.com/harukimoto/meguri/internal/domain"
)

// Model wraps an itinerary with the board mutations. Every mutation
// reports whether it was applied; out-of-range indices are no-ops so a
// stale UI event can never corrupt or crash the model.
type Model struct {
	it *domain.Itinerary
}

func NewModel(it *domain.Itinerary) *Model {
	m := &Model{it: it}
	for i := range it.Boards {
		m.recomputeBudget(i)
	}
	return m
}

// Itinerary returns the underlying itinerary.
func (m *Model) Itinerary() *domain.Itinerary { return m.it }

func (m *Model) boardInRange(i int) bool { return i >= 0 && i < len(m.it.Boards) }

func (m *Model) itemInRange(board, idx int) bool {
	return m.boardInRange(board) && idx >= 0 && idx < len(m.it.Boards[board].Items)
}

// ReorderBoards moves the board at from to position to, shifting the
// others. Board dates are derived from position, so no date bookkeeping is
// needed beyond the reorder itself.
func (m *Model) ReorderBoards(from, to int) bool {
	if !m.boardInRange(from) || !m.boardInRange(to) || from == to {
		return false
	}
	boards := m.it.Boards
	b := boards[from]
	boards = append(boards[:from], boards[from+1:]...)
	boards = append(boards[:to], append([]*domain.DayBoard{b}, boards[to:]...)...)
	m.it.Boards = boards
	return true
}

// InsertItem creates a scheduled item for exp on the given board. at is the
// insertion position; any out-of-range position (including -1) appends.
// A fresh key is always minted: inserting never reuses an existing identity.
func (m *Model) InsertItem(board int, exp *domain.Experience, at int) *domain.ScheduledItem {
	if !m.boardInRange(board) || exp == nil {
		return nil
	}
	item := &domain.ScheduledItem{
		Key:          uuid.New().String(),
		ExperienceID: exp.ID,
		Experience:   exp,
	}
	b := m.it.Boards[board]
	if at < 0 || at > len(b.Items) {
		at = len(b.Items)
	}
	b.Items = append(b.Items[:at], append([]*domain.ScheduledItem{item}, b.Items[at:]...)...)
	m.recomputeBudget(board)
	return item
}

// MoveItem removes the item at (fromBoard, fromIdx) and inserts it at
// (toBoard, toIdx). A same-board move is a pure reorder. The item keeps its
// key across the move. toIdx may equal the target board's length to append.
func (m *Model) MoveItem(fromBoard, fromIdx, toBoard, toIdx int) bool {
	if !m.itemInRange(fromBoard, fromIdx) || !m.boardInRange(toBoard) {
		return false
	}
	if toIdx < 0 || toIdx > len(m.it.Boards[toBoard].Items) {
		return false
	}

	source := m.it.Boards[fromBoard]
	item := source.Items[fromIdx]
	source.Items = append(source.Items[:fromIdx], source.Items[fromIdx+1:]...)

	target := m.it.Boards[toBoard]
	// A same-board move shrinks the board before re-insertion.
	if toIdx > len(target.Items) {
		toIdx = len(target.Items)
	}
	target.Items = append(target.Items[:toIdx], append([]*domain.ScheduledItem{item}, target.Items[toIdx:]...)...)

	m.recomputeBudget(fromBoard)
	if toBoard != fromBoard {
		m.recomputeBudget(toBoard)
	}
	return true
}

// RemoveItem deletes the item at (board, idx).
func (m *Model) RemoveItem(board, idx int) bool {
	if !m.itemInRange(board, idx) {
		return false
	}
	b := m.it.Boards[board]
	b.Items = append(b.Items[:idx], b.Items[idx+1:]...)
	m.recomputeBudget(board)
	return true
}

// RemoveBoard deletes the board and all of its items outright. Items are
// never migrated to neighboring boards.
func (m *Model) RemoveBoard(board int) bool {
	if !m.boardInRange(board) {
		return false
	}
	m.it.Boards = append(m.it.Boards[:board], m.it.Boards[board+1:]...)
	return true
}

// AppendBoard adds an empty day at the end of the itinerary.
func (m *Model) AppendBoard(id string) *domain.DayBoard {
	if id == "" {
		id = uuid.New().String()
	}
	b := &domain.DayBoard{ID: id}
	m.it.Boards = append(m.it.Boards, b)
	return b
}

// ApplyRouteOrder replaces a board's item order wholesale with the given
// sequence. The sequence must be a permutation of the board's current
// items (identity checked by key); anything else is rejected as stale.
// Budget is order-independent, so nothing is recomputed.
func (m *Model) ApplyRouteOrder(board int, order []*domain.ScheduledItem) bool {
	if !m.boardInRange(board) {
		return false
	}
	b := m.it.Boards[board]
	if len(order) != len(b.Items) {
		return false
	}
	current := make(map[string]bool, len(b.Items))
	for _, it := range b.Items {
		current[it.Key] = true
	}
	for _, it := range order {
		if !current[it.Key] {
			return false
		}
		delete(current, it.Key)
	}
	b.Items = append([]*domain.ScheduledItem(nil), order...)
	return true
}

// recomputeBudget recalculates a board's daily budget as the exact sum of
// its items' prices. The budget is always rebuilt from scratch, never
// patched incrementally, so it cannot drift.
func (m *Model) recomputeBudget(board int) {
	b := m.it.Boards[board]
	var total float64
	for _, item := range b.Items {
		total += item.Experience.PriceValue()
	}
	b.DailyBudget = total
}
