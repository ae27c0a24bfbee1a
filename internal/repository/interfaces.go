package repository

import (
	"context"

	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/planner"
)

type ItineraryRepo interface {
	Create(ctx context.Context, it *domain.Itinerary) error
	// GetByID loads the itinerary with its boards in position order, items
	// in position order, and each item's experience resolved.
	GetByID(ctx context.Context, id string) (*domain.Itinerary, error)
	List(ctx context.Context) ([]*domain.Itinerary, error)
	// SaveSnapshot replaces the itinerary's boards and items wholesale
	// with the given snapshot. This is the persistence collaborator's
	// entry point for post-mutation saves.
	SaveSnapshot(ctx context.Context, snap planner.Snapshot) error
	Delete(ctx context.Context, id string) error
}

type ExperienceRepo interface {
	Create(ctx context.Context, e *domain.Experience) error
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context) ([]*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	// Get returns the stored route settings, or the walking defaults when
	// nothing has been saved yet.
	Get(ctx context.Context) (domain.RouteSettings, error)
	Save(ctx context.Context, s domain.RouteSettings) error
}
