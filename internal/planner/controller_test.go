package planner

import (
	"testing"

	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_NotifiesOncePerCommittedMutation(t *testing.T) {
	ctrl := NewController(testutil.NewTestItinerary("Tokyo", 2))
	var snaps []Snapshot
	ctrl.OnBoardsChanged(func(s Snapshot) { snaps = append(snaps, s) })

	require.True(t, ctrl.InsertItem(0, testutil.NewTestExperience("a", testutil.WithPrice(500)), -1))
	require.True(t, ctrl.MoveItem(0, 0, 1, 0))
	require.True(t, ctrl.RemoveItem(1, 0))

	assert.Len(t, snaps, 3, "exactly one notification per mutation")
}

func TestController_RejectedMutationDoesNotNotify(t *testing.T) {
	ctrl := NewController(testutil.NewTestItinerary("Tokyo", 1))
	notified := 0
	ctrl.OnBoardsChanged(func(Snapshot) { notified++ })

	assert.False(t, ctrl.MoveItem(0, 5, 0, 0))
	assert.False(t, ctrl.ReorderBoards(0, 0))
	assert.False(t, ctrl.RemoveBoard(9))
	assert.Zero(t, notified)
}

func TestController_SnapshotReflectsPostMutationState(t *testing.T) {
	ctrl := NewController(testutil.NewTestItinerary("Tokyo", 1))
	var last Snapshot
	ctrl.OnBoardsChanged(func(s Snapshot) { last = s })

	require.True(t, ctrl.InsertItem(0, testutil.NewTestExperience("a", testutil.WithPrice(1200)), -1))

	require.Len(t, last.Boards, 1)
	require.Len(t, last.Boards[0].Items, 1)
	assert.Equal(t, 0, last.Boards[0].Items[0].Position)
	assert.Equal(t, 1200.0, last.Boards[0].Budget)
	assert.Equal(t, 1200.0, last.TotalBudget)
}

func TestController_AppendBoardExtendsItinerary(t *testing.T) {
	ctrl := NewController(testutil.NewTestItinerary("Tokyo", 1))
	notified := 0
	ctrl.OnBoardsChanged(func(Snapshot) { notified++ })

	require.True(t, ctrl.AppendBoard())

	assert.Equal(t, 2, ctrl.TravelDays())
	assert.Equal(t, 1, notified)
}

func TestController_ApplyOptimizedRoute(t *testing.T) {
	it := testutil.NewTestItinerary("Tokyo", 1,
		testutil.WithBoardItems(0,
			testutil.NewTestExperience("a"),
			testutil.NewTestExperience("b")))
	ctrl := NewController(it)
	a, b := it.Boards[0].Items[0], it.Boards[0].Items[1]
	notified := 0
	ctrl.OnBoardsChanged(func(Snapshot) { notified++ })

	require.True(t, ctrl.ApplyOptimizedRoute(0, []*domain.ScheduledItem{b, a}))
	assert.Equal(t, b.Key, it.Boards[0].Items[0].Key)
	assert.Equal(t, 1, notified)

	// A stale order (item since removed) is rejected without notifying.
	require.True(t, ctrl.RemoveItem(0, 0))
	assert.False(t, ctrl.ApplyOptimizedRoute(0, []*domain.ScheduledItem{b, a}))
	assert.Equal(t, 2, notified)
}
