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

func newFavoriteService(t *testing.T) FavoriteService {
	t.Helper()
	return NewFavoriteService(repository.NewSQLiteExperienceRepo(testutil.NewTestDB(t)))
}

func TestFavoriteService_AddAndList(t *testing.T) {
	svc := newFavoriteService(t)
	ctx := context.Background()

	e := &domain.Experience{Title: "Dotonbori", Category: domain.CategoryAttraction}
	require.NoError(t, svc.Add(ctx, e))
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.AddedAt.IsZero())

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dotonbori", got[0].Title)
}

func TestFavoriteService_AddValidation(t *testing.T) {
	svc := newFavoriteService(t)
	ctx := context.Background()

	err := svc.Add(ctx, &domain.Experience{Category: domain.CategoryCafe})
	assert.ErrorContains(t, err, "title")

	err = svc.Add(ctx, &domain.Experience{Title: "x", Category: domain.Category("volcano")})
	assert.ErrorContains(t, err, "unknown category")
}

func TestFavoriteService_Remove(t *testing.T) {
	svc := newFavoriteService(t)
	ctx := context.Background()

	e := &domain.Experience{Title: "Nara Park", Category: domain.CategoryAttraction}
	require.NoError(t, svc.Add(ctx, e))
	require.NoError(t, svc.Remove(ctx, e.ID))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
