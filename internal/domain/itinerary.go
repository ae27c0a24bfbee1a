package domain

import "time"

// Collaborator is a role-tagged user reference attached to an itinerary.
type Collaborator struct {
	UserName string
	Role     CollaboratorRole
}

// ScheduledItem is a single experience placed on a specific day. Its Key is
// a synthetic per-scheduling identity: the same experience can appear on
// several days, so the experience ID alone can never identify an item.
type ScheduledItem struct {
	Key          string
	ExperienceID string
	Experience   *Experience // resolved eagerly on load; the schema forbids dangling refs
}

// DayBoard holds the ordered scheduled items for one calendar day.
// Item position is the slice index; DailyBudget is derived and is only
// written by the planner's recompute pass.
type DayBoard struct {
	ID          string
	Items       []*ScheduledItem
	DailyBudget float64
}

type Itinerary struct {
	ID            string
	Title         string
	StartDate     time.Time
	Boards        []*DayBoard
	Private       bool
	Collaborators []Collaborator
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BoardDate returns the calendar date of the board at index i.
// Board order defines the chronological day index: board i = start date + i.
func (it *Itinerary) BoardDate(i int) time.Time {
	return it.StartDate.AddDate(0, 0, i)
}

// TravelDays returns the itinerary duration in days.
func (it *Itinerary) TravelDays() int {
	return len(it.Boards)
}

// TotalBudget returns the sum of all boards' daily budgets.
func (it *Itinerary) TotalBudget() float64 {
	var total float64
	for _, b := range it.Boards {
		total += b.DailyBudget
	}
	return total
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (it *Itinerary) DisplayID() string {
	if len(it.ID) >= 8 {
		return it.ID[:8]
	}
	return it.ID
}
