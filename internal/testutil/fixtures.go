package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/harukimoto/meguri/internal/domain"
)

// Experience options
type ExperienceOption func(*domain.Experience)

func WithCategory(c domain.Category) ExperienceOption {
	return func(e *domain.Experience) {
		e.Category = c
	}
}

func WithPrice(yen float64) ExperienceOption {
	return func(e *domain.Experience) {
		e.Price = &yen
	}
}

func WithNoPrice() ExperienceOption {
	return func(e *domain.Experience) {
		e.Price = nil
	}
}

func WithLocation(lng, lat float64) ExperienceOption {
	return func(e *domain.Experience) {
		e.Location = &domain.Coordinate{Lng: lng, Lat: lat}
	}
}

func WithNoLocation() ExperienceOption {
	return func(e *domain.Experience) {
		e.Location = nil
	}
}

// NewTestExperience builds an attraction with a price and no location.
func NewTestExperience(title string, opts ...ExperienceOption) *domain.Experience {
	price := 1000.0
	e := &domain.Experience{
		ID:       uuid.New().String(),
		Title:    title,
		Category: domain.CategoryAttraction,
		Price:    &price,
		AddedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tokyo landmark fixtures with real coordinates, useful when a test needs
// distances that behave like actual city geometry.

func SensojiTemple() *domain.Experience {
	return NewTestExperience("Sensō-ji",
		WithCategory(domain.CategoryAttraction),
		WithPrice(0),
		WithLocation(139.7967, 35.7148))
}

func TokyoSkytree() *domain.Experience {
	return NewTestExperience("Tokyo Skytree",
		WithCategory(domain.CategoryAttraction),
		WithPrice(2100),
		WithLocation(139.8107, 35.7101))
}

func MeijiShrine() *domain.Experience {
	return NewTestExperience("Meiji Jingū",
		WithCategory(domain.CategoryAttraction),
		WithPrice(0),
		WithLocation(139.6993, 35.6764))
}

func ShibuyaCrossing() *domain.Experience {
	return NewTestExperience("Shibuya Crossing",
		WithCategory(domain.CategoryAttraction),
		WithPrice(0),
		WithLocation(139.7004, 35.6595))
}

func IchiranShibuya() *domain.Experience {
	return NewTestExperience("Ichiran Shibuya",
		WithCategory(domain.CategoryRestaurant),
		WithPrice(980),
		WithLocation(139.7007, 35.6590))
}

// NewScheduledItem wraps an experience in a scheduled item with a fresh key.
func NewScheduledItem(e *domain.Experience) *domain.ScheduledItem {
	return &domain.ScheduledItem{
		Key:          uuid.New().String(),
		ExperienceID: e.ID,
		Experience:   e,
	}
}

// Itinerary options
type ItineraryOption func(*domain.Itinerary)

func WithStartDate(d time.Time) ItineraryOption {
	return func(it *domain.Itinerary) {
		it.StartDate = d
	}
}

func WithCollaborator(name string, role domain.CollaboratorRole) ItineraryOption {
	return func(it *domain.Itinerary) {
		it.Collaborators = append(it.Collaborators, domain.Collaborator{UserName: name, Role: role})
	}
}

func WithBoardItems(board int, experiences ...*domain.Experience) ItineraryOption {
	return func(it *domain.Itinerary) {
		for _, e := range experiences {
			it.Boards[board].Items = append(it.Boards[board].Items, NewScheduledItem(e))
		}
	}
}

// NewTestItinerary builds an itinerary with the given number of empty
// day-boards, starting on a fixed date so board dates are stable.
func NewTestItinerary(title string, days int, opts ...ItineraryOption) *domain.Itinerary {
	now := time.Now().UTC()
	it := &domain.Itinerary{
		ID:        uuid.New().String(),
		Title:     title,
		StartDate: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := 0; i < days; i++ {
		it.Boards = append(it.Boards, &domain.DayBoard{ID: uuid.New().String()})
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}
