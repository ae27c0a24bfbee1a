package formatter

import (
	"testing"

	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/routing"
	"github.com/harukimoto/meguri/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func locatedStop(title string, lat, lng float64) *domain.ScheduledItem {
	return testutil.NewScheduledItem(
		testutil.NewTestExperience(title, testutil.WithLocation(lng, lat)))
}

func TestRoutePlanReport_NotApplicable(t *testing.T) {
	plan := routing.Optimize([]*domain.ScheduledItem{
		locatedStop("A", 0, 0),
		locatedStop("B", 0, 0.1),
	}, routing.Options{Mode: domain.ModeWalking})

	out := RoutePlanReport(plan, 0)
	assert.Contains(t, out, "Route report — day 1")
	assert.Contains(t, out, "Nothing to optimize")
}

func TestRoutePlanReport_SuggestsOrder(t *testing.T) {
	plan := routing.Optimize([]*domain.ScheduledItem{
		locatedStop("A", 0, 0),
		locatedStop("C", 0, 0.2),
		locatedStop("B", 0, 0.1),
	}, routing.Options{Mode: domain.ModeWalking})

	out := RoutePlanReport(plan, 2)
	assert.Contains(t, out, "day 3")
	assert.Contains(t, out, "current")
	assert.Contains(t, out, "optimized")
	assert.Contains(t, out, "savings")
	assert.Contains(t, out, "suggested order")
	assert.Contains(t, out, "1. A")
	assert.Contains(t, out, "2. B")
	assert.Contains(t, out, "3. C")
}

func TestRoutePlanReport_MentionsExcludedStops(t *testing.T) {
	items := []*domain.ScheduledItem{
		locatedStop("A", 0, 0),
		testutil.NewScheduledItem(testutil.NewTestExperience("ghost", testutil.WithNoLocation())),
	}
	plan := routing.Optimize(items, routing.Options{Mode: domain.ModeWalking})

	out := RoutePlanReport(plan, 0)
	assert.Contains(t, out, "1 stop(s) without locations excluded")
}

func TestRoutePlanReport_AlreadyWellOrdered(t *testing.T) {
	plan := routing.Optimize([]*domain.ScheduledItem{
		locatedStop("A", 0, 0),
		locatedStop("B", 0, 0.1),
		locatedStop("C", 0, 0.2),
	}, routing.Options{Mode: domain.ModeWalking})

	out := RoutePlanReport(plan, 0)
	assert.Contains(t, out, "already well ordered")
	assert.NotContains(t, out, "suggested order")
}
