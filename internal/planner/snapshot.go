package planner

import (
	"time"

	"github.com/harukimoto/meguri/internal/domain"
)

// Snapshot is the serializable state handed to the persistence collaborator
// after each committed mutation. It carries only identities, positions and
// derived budgets; experiences themselves are owned elsewhere.
type Snapshot struct {
	ItineraryID string
	StartDate   time.Time
	Boards      []BoardSnapshot
	TotalBudget float64
}

type BoardSnapshot struct {
	ID     string
	Date   time.Time
	Budget float64
	Items  []ItemSnapshot
}

type ItemSnapshot struct {
	Key          string
	ExperienceID string
	Position     int
}

// TakeSnapshot captures the itinerary's boards, item order and budgets.
func TakeSnapshot(it *domain.Itinerary) Snapshot {
	snap := Snapshot{
		ItineraryID: it.ID,
		StartDate:   it.StartDate,
		TotalBudget: it.TotalBudget(),
		Boards:      make([]BoardSnapshot, 0, len(it.Boards)),
	}
	for i, b := range it.Boards {
		bs := BoardSnapshot{
			ID:     b.ID,
			Date:   it.BoardDate(i),
			Budget: b.DailyBudget,
			Items:  make([]ItemSnapshot, 0, len(b.Items)),
		}
		for pos, item := range b.Items {
			bs.Items = append(bs.Items, ItemSnapshot{
				Key:          item.Key,
				ExperienceID: item.ExperienceID,
				Position:     pos,
			})
		}
		snap.Boards = append(snap.Boards, bs)
	}
	return snap
}
