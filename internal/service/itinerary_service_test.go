package service

import (
	"context"
	"testing"
	"time"

	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/repository"
	"github.com/harukimoto/meguri/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItineraryService(t *testing.T) ItineraryService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewItineraryService(
		repository.NewSQLiteItineraryRepo(database, testutil.NewTestUoW(database)))
}

func TestItineraryService_CreateBuildsEmptyDays(t *testing.T) {
	svc := newItineraryService(t)
	ctx := context.Background()

	it := &domain.Itinerary{Title: "Kansai", StartDate: time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, svc.Create(ctx, it, 4))
	assert.NotEmpty(t, it.ID, "an ID is minted when absent")

	got, err := svc.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.TravelDays())
	for _, b := range got.Boards {
		assert.Empty(t, b.Items)
		assert.Zero(t, b.DailyBudget)
	}
}

func TestItineraryService_CreateRejectsZeroDays(t *testing.T) {
	svc := newItineraryService(t)

	err := svc.Create(context.Background(), &domain.Itinerary{Title: "Nowhere"}, 0)
	assert.Error(t, err)
	err = svc.Create(context.Background(), &domain.Itinerary{Title: "Nowhere"}, -3)
	assert.Error(t, err)
}

func TestItineraryService_Delete(t *testing.T) {
	svc := newItineraryService(t)
	ctx := context.Background()

	it := &domain.Itinerary{Title: "Hokkaido"}
	require.NoError(t, svc.Create(ctx, it, 2))
	require.NoError(t, svc.Delete(ctx, it.ID))

	_, err := svc.GetByID(ctx, it.ID)
	assert.Error(t, err)
}
