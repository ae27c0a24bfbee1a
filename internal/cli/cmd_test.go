package cli

import (
	"context"
	"testing"

	"github.com/harukimoto/meguri/internal/db"
	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/planner"
	"github.com/harukimoto/meguri/internal/repository"
	"github.com/harukimoto/meguri/internal/service"
	"github.com/harukimoto/meguri/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. IsInteractive reports false so commands never fall back to forms.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	return &App{
		Itineraries:   service.NewItineraryService(repository.NewSQLiteItineraryRepo(database, uow)),
		Favorites:     service.NewFavoriteService(repository.NewSQLiteExperienceRepo(database)),
		Settings:      service.NewSettingsService(repository.NewSQLiteSettingsRepo(database)),
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs the root command with the given args. Command output goes
// to the test's stdout; assertions run against the returned error and the
// app's services.
func executeCmd(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.Execute()
}

func TestItineraryAddCmd(t *testing.T) {
	app := testApp(t)

	require.NoError(t, executeCmd(t, app,
		"itinerary", "add", "--title", "Tokyo week", "--start", "2026-10-12", "--days", "5"))

	itineraries, err := app.Itineraries.List(context.Background())
	require.NoError(t, err)
	require.Len(t, itineraries, 1)
	assert.Equal(t, "Tokyo week", itineraries[0].Title)
	assert.Equal(t, 5, itineraries[0].TravelDays())
}

func TestItineraryAddCmd_RequiresTitleWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "itinerary", "add")
	assert.ErrorContains(t, err, "title is required")
}

func TestItineraryAddCmd_RejectsBadDate(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app,
		"itinerary", "add", "--title", "x", "--start", "next tuesday")
	assert.ErrorContains(t, err, "invalid start date")
}

func TestItineraryShowCmd_ResolvesPrefix(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	it := &domain.Itinerary{Title: "Kansai"}
	require.NoError(t, app.Itineraries.Create(ctx, it, 2))

	assert.NoError(t, executeCmd(t, app, "itinerary", "show", it.ID[:8]))

	err := executeCmd(t, app, "itinerary", "show", "zzzz")
	assert.ErrorContains(t, err, "not found")
}

func TestItineraryRemoveCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	it := &domain.Itinerary{Title: "Kansai"}
	require.NoError(t, app.Itineraries.Create(ctx, it, 2))
	require.NoError(t, executeCmd(t, app, "itinerary", "remove", it.ID))

	itineraries, err := app.Itineraries.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, itineraries)
}

func TestFavoriteAddCmd(t *testing.T) {
	app := testApp(t)

	require.NoError(t, executeCmd(t, app,
		"favorite", "add", "--title", "Ichiran Shibuya", "--category", "restaurant",
		"--price", "980", "--lng", "139.7007", "--lat", "35.6590"))

	favorites, err := app.Favorites.List(context.Background())
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	f := favorites[0]
	assert.Equal(t, domain.CategoryRestaurant, f.Category)
	require.NotNil(t, f.Price)
	assert.Equal(t, 980.0, *f.Price)
	require.NotNil(t, f.Location)
	assert.Equal(t, 35.6590, f.Location.Lat)
}

func TestFavoriteAddCmd_RejectsUnknownCategory(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app,
		"favorite", "add", "--title", "x", "--category", "volcano")
	assert.ErrorContains(t, err, "unknown category")
}

func TestRouteModeCmd(t *testing.T) {
	app := testApp(t)

	require.NoError(t, executeCmd(t, app, "route", "mode", "transit"))

	settings, err := app.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeTransit, settings.TransportMode)

	err = executeCmd(t, app, "route", "mode", "rocket")
	assert.ErrorContains(t, err, "unknown transport mode")
}

func TestOptimizeCmd_ApplyReordersAndPersists(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	// Collinear stops scheduled with a detour in the middle.
	a := testutil.NewTestExperience("A", testutil.WithLocation(0, 0))
	c := testutil.NewTestExperience("C", testutil.WithLocation(0.2, 0))
	b := testutil.NewTestExperience("B", testutil.WithLocation(0.1, 0))
	for _, e := range []*domain.Experience{a, c, b} {
		require.NoError(t, app.Favorites.Add(ctx, e))
	}

	it := &domain.Itinerary{Title: "Line walk"}
	require.NoError(t, app.Itineraries.Create(ctx, it, 1))
	seed := planner.NewController(it)
	for _, e := range []*domain.Experience{a, c, b} {
		require.True(t, seed.InsertItem(0, e, -1))
	}
	require.NoError(t, app.Itineraries.Save(ctx, planner.TakeSnapshot(it)))

	require.NoError(t, executeCmd(t, app, "optimize", it.ID, "1", "--apply"))

	got, err := app.Itineraries.GetByID(ctx, it.ID)
	require.NoError(t, err)
	titles := []string{}
	for _, item := range got.Boards[0].Items {
		titles = append(titles, item.Experience.Title)
	}
	assert.Equal(t, []string{"A", "B", "C"}, titles)
}

func TestOptimizeCmd_RejectsBadDay(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	it := &domain.Itinerary{Title: "Short"}
	require.NoError(t, app.Itineraries.Create(ctx, it, 1))

	err := executeCmd(t, app, "optimize", it.ID, "0")
	assert.ErrorContains(t, err, "day must be a positive number")

	err = executeCmd(t, app, "optimize", it.ID, "4")
	assert.ErrorContains(t, err, "only 1 days")
}

func TestMapCmd_UnknownItinerary(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "map", "nope")
	assert.ErrorContains(t, err, "not found")
}
