package service

import (
	"context"
	"fmt"

	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (domain.RouteSettings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) SetTransportMode(ctx context.Context, mode domain.TransportMode) error {
	if !domain.ValidTransportModes[string(mode)] {
		return fmt.Errorf("unknown transport mode %q", mode)
	}
	current, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	current.TransportMode = mode
	return s.settings.Save(ctx, current)
}

func (s *settingsService) SetShowDistances(ctx context.Context, show bool) error {
	current, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	current.ShowDistances = show
	return s.settings.Save(ctx, current)
}

func (s *settingsService) SetShowOptimizer(ctx context.Context, show bool) error {
	current, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	current.ShowOptimizer = show
	return s.settings.Save(ctx, current)
}
