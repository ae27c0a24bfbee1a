package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/planner"
	"github.com/harukimoto/meguri/internal/repository"
)

type itineraryService struct {
	itineraries repository.ItineraryRepo
}

func NewItineraryService(itineraries repository.ItineraryRepo) ItineraryService {
	return &itineraryService{itineraries: itineraries}
}

func (s *itineraryService) Create(ctx context.Context, it *domain.Itinerary, days int) error {
	if days < 1 {
		return fmt.Errorf("an itinerary needs at least one day, got %d", days)
	}
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now
	for i := 0; i < days; i++ {
		it.Boards = append(it.Boards, &domain.DayBoard{ID: uuid.New().String()})
	}
	return s.itineraries.Create(ctx, it)
}

func (s *itineraryService) GetByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	return s.itineraries.GetByID(ctx, id)
}

func (s *itineraryService) List(ctx context.Context) ([]*domain.Itinerary, error) {
	return s.itineraries.List(ctx)
}

func (s *itineraryService) Save(ctx context.Context, snap planner.Snapshot) error {
	return s.itineraries.SaveSnapshot(ctx, snap)
}

func (s *itineraryService) Delete(ctx context.Context, id string) error {
	return s.itineraries.Delete(ctx, id)
}
