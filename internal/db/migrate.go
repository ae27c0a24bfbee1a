package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations is the ordered list of schema statements. Statements are
// idempotent (CREATE IF NOT EXISTS) so the whole list re-runs on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS experiences (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		category   TEXT NOT NULL
		           CHECK(category IN ('hotel','restaurant','cafe','attraction','shop','onsen')),
		price      REAL,
		location   TEXT, -- JSON [lng, lat]; NULL when unknown
		added_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS itineraries (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		start_date TEXT NOT NULL,
		private    INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS collaborators (
		itinerary_id TEXT NOT NULL REFERENCES itineraries(id) ON DELETE CASCADE,
		user_name    TEXT NOT NULL,
		role         TEXT NOT NULL CHECK(role IN ('owner','editor','viewer')),
		PRIMARY KEY (itinerary_id, user_name)
	)`,

	`CREATE TABLE IF NOT EXISTS day_boards (
		id           TEXT PRIMARY KEY,
		itinerary_id TEXT NOT NULL REFERENCES itineraries(id) ON DELETE CASCADE,
		position     INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS scheduled_items (
		key           TEXT PRIMARY KEY,
		board_id      TEXT NOT NULL REFERENCES day_boards(id) ON DELETE CASCADE,
		experience_id TEXT NOT NULL REFERENCES experiences(id),
		position      INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_day_boards_itinerary
		ON day_boards(itinerary_id, position)`,

	`CREATE INDEX IF NOT EXISTS idx_scheduled_items_board
		ON scheduled_items(board_id, position)`,

	`CREATE TABLE IF NOT EXISTS route_settings (
		id             INTEGER PRIMARY KEY CHECK(id = 1),
		transport_mode TEXT NOT NULL
		               CHECK(transport_mode IN ('walking','cycling','transit','driving')),
		show_distances INTEGER NOT NULL DEFAULT 1,
		show_optimizer INTEGER NOT NULL DEFAULT 1
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
