package planner

import (
	"log"

	"github.com/harukimoto/meguri/internal/domain"
)

// Listener receives the post-mutation snapshot. The persistence collaborator
// registers one to save optimistically; the render layer registers another
// to refresh.
type Listener func(Snapshot)

// Controller is the composition root for one open itinerary. It owns the
// board model, applies mutations, and fires exactly one change notification
// per committed mutation. Invalid indices coming from stale UI events are
// logged and dropped; nothing here ever panics on malformed input.
type Controller struct {
	model     *Model
	listeners []Listener
}

func NewController(it *domain.Itinerary) *Controller {
	return &Controller{model: NewModel(it)}
}

// OnBoardsChanged registers a listener fired after any committed mutation.
func (c *Controller) OnBoardsChanged(fn Listener) {
	c.listeners = append(c.listeners, fn)
}

// Itinerary returns the live itinerary backing this controller.
func (c *Controller) Itinerary() *domain.Itinerary { return c.model.Itinerary() }

// TravelDays returns the board count.
func (c *Controller) TravelDays() int { return c.model.Itinerary().TravelDays() }

func (c *Controller) notify() {
	snap := TakeSnapshot(c.model.Itinerary())
	for _, fn := range c.listeners {
		fn(snap)
	}
}

func (c *Controller) commit(op string, applied bool) bool {
	if !applied {
		log.Printf("planner: %s ignored (stale or out-of-range indices)", op)
		return false
	}
	c.notify()
	return true
}

func (c *Controller) ReorderBoards(from, to int) bool {
	return c.commit("reorder boards", c.model.ReorderBoards(from, to))
}

func (c *Controller) InsertItem(board int, exp *domain.Experience, at int) bool {
	return c.commit("insert item", c.model.InsertItem(board, exp, at) != nil)
}

func (c *Controller) MoveItem(fromBoard, fromIdx, toBoard, toIdx int) bool {
	return c.commit("move item", c.model.MoveItem(fromBoard, fromIdx, toBoard, toIdx))
}

func (c *Controller) RemoveItem(board, idx int) bool {
	return c.commit("remove item", c.model.RemoveItem(board, idx))
}

func (c *Controller) RemoveBoard(board int) bool {
	return c.commit("remove board", c.model.RemoveBoard(board))
}

func (c *Controller) AppendBoard() bool {
	return c.commit("append board", c.model.AppendBoard("") != nil)
}

// ApplyOptimizedRoute replaces a board's item order with the optimizer's
// output. Item identities are unchanged and budget is order-independent,
// so only the order is written back.
func (c *Controller) ApplyOptimizedRoute(board int, order []*domain.ScheduledItem) bool {
	return c.commit("apply optimized route", c.model.ApplyRouteOrder(board, order))
}
