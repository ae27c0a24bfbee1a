package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already ran the migrations once; re-running must be a no-op.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestOpenDB_EnforcesForeignKeys(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO day_boards (id, itinerary_id, position) VALUES ('b1', 'missing', 0)`)
	assert.Error(t, err, "orphan board must violate the foreign key")
}

func TestDeleteItineraryCascadesToItems(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	mustExec := func(q string, args ...any) {
		t.Helper()
		_, err := database.Exec(q, args...)
		require.NoError(t, err)
	}
	mustExec(`INSERT INTO experiences (id, title, category, added_at)
		VALUES ('e1', 'Sensō-ji', 'attraction', '2026-08-31T00:00:00Z')`)
	mustExec(`INSERT INTO itineraries (id, title, start_date, created_at, updated_at)
		VALUES ('i1', 'Tokyo', '2026-10-12', '2026-08-31T00:00:00Z', '2026-08-31T00:00:00Z')`)
	mustExec(`INSERT INTO day_boards (id, itinerary_id, position) VALUES ('b1', 'i1', 0)`)
	mustExec(`INSERT INTO scheduled_items (key, board_id, experience_id, position)
		VALUES ('k1', 'b1', 'e1', 0)`)

	// A scheduled experience cannot be deleted out from under its items, so
	// loading an item always resolves its experience.
	_, err = database.Exec(`DELETE FROM experiences WHERE id = 'e1'`)
	assert.Error(t, err, "a referenced experience must not be deletable")

	mustExec(`DELETE FROM itineraries WHERE id = 'i1'`)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM scheduled_items`).Scan(&n))
	assert.Zero(t, n, "items go with their board and itinerary")
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM experiences`).Scan(&n))
	assert.Equal(t, 1, n, "experiences are independent of itineraries")

	mustExec(`DELETE FROM experiences WHERE id = 'e1'`)
}
