package service

import (
	"context"
	"testing"

	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/repository"
	"github.com/harukimoto/meguri/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(t *testing.T) SettingsService {
	t.Helper()
	return NewSettingsService(repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t)))
}

func TestSettingsService_DefaultsThenModify(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRouteSettings(), got)

	require.NoError(t, svc.SetTransportMode(ctx, domain.ModeCycling))
	require.NoError(t, svc.SetShowDistances(ctx, false))

	got, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeCycling, got.TransportMode)
	assert.False(t, got.ShowDistances)
	assert.True(t, got.ShowOptimizer, "untouched settings keep their values")
}

func TestSettingsService_RejectsUnknownMode(t *testing.T) {
	svc := newSettingsService(t)

	err := svc.SetTransportMode(context.Background(), domain.TransportMode("rickshaw"))
	assert.ErrorContains(t, err, "unknown transport mode")
}

func TestSettingsService_ToggleOptimizer(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetShowOptimizer(ctx, false))
	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, got.ShowOptimizer)
}
