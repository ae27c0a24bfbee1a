package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/repository"
)

type favoriteService struct {
	experiences repository.ExperienceRepo
}

func NewFavoriteService(experiences repository.ExperienceRepo) FavoriteService {
	return &favoriteService{experiences: experiences}
}

func (s *favoriteService) Add(ctx context.Context, e *domain.Experience) error {
	if e.Title == "" {
		return fmt.Errorf("a favorite needs a title")
	}
	if !domain.ValidCategories[string(e.Category)] {
		return fmt.Errorf("unknown category %q", e.Category)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.AddedAt = time.Now().UTC()
	return s.experiences.Create(ctx, e)
}

func (s *favoriteService) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	return s.experiences.GetByID(ctx, id)
}

func (s *favoriteService) List(ctx context.Context) ([]*domain.Experience, error) {
	return s.experiences.List(ctx)
}

func (s *favoriteService) Remove(ctx context.Context, id string) error {
	return s.experiences.Delete(ctx, id)
}
