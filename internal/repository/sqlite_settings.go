package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harukimoto/meguri/internal/domain"
)

// SQLiteSettingsRepo stores the single route-settings row.
type SQLiteSettingsRepo struct {
	db *sql.DB
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(db *sql.DB) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: db}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (domain.RouteSettings, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT transport_mode, show_distances, show_optimizer FROM route_settings WHERE id = 1`)

	var (
		mode          string
		showDistances int
		showOptimizer int
	)
	if err := row.Scan(&mode, &showDistances, &showOptimizer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultRouteSettings(), nil
		}
		return domain.RouteSettings{}, fmt.Errorf("loading route settings: %w", err)
	}
	return domain.RouteSettings{
		TransportMode: domain.TransportMode(mode),
		ShowDistances: intToBool(showDistances),
		ShowOptimizer: intToBool(showOptimizer),
	}, nil
}

func (r *SQLiteSettingsRepo) Save(ctx context.Context, s domain.RouteSettings) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO route_settings (id, transport_mode, show_distances, show_optimizer)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			transport_mode = excluded.transport_mode,
			show_distances = excluded.show_distances,
			show_optimizer = excluded.show_optimizer`,
		string(s.TransportMode), boolToInt(s.ShowDistances), boolToInt(s.ShowOptimizer))
	if err != nil {
		return fmt.Errorf("saving route settings: %w", err)
	}
	return nil
}
