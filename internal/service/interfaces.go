package service

import (
	"context"

	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/planner"
)

type ItineraryService interface {
	// Create builds an itinerary with the given number of empty day-boards.
	Create(ctx context.Context, it *domain.Itinerary, days int) error
	GetByID(ctx context.Context, id string) (*domain.Itinerary, error)
	List(ctx context.Context) ([]*domain.Itinerary, error)
	// Save persists a post-mutation snapshot, replacing the stored boards.
	Save(ctx context.Context, snap planner.Snapshot) error
	Delete(ctx context.Context, id string) error
}

type FavoriteService interface {
	Add(ctx context.Context, e *domain.Experience) error
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context) ([]*domain.Experience, error)
	Remove(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context) (domain.RouteSettings, error)
	SetTransportMode(ctx context.Context, mode domain.TransportMode) error
	SetShowDistances(ctx context.Context, show bool) error
	SetShowOptimizer(ctx context.Context, show bool) error
}
