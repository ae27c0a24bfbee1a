package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harukimoto/meguri/internal/domain"
)

// experienceColumns is the canonical SELECT column list for experiences.
const experienceColumns = `id, title, category, price, location, added_at`

// SQLiteExperienceRepo implements ExperienceRepo using a SQLite database.
type SQLiteExperienceRepo struct {
	db *sql.DB
}

// NewSQLiteExperienceRepo creates a new SQLiteExperienceRepo.
func NewSQLiteExperienceRepo(db *sql.DB) *SQLiteExperienceRepo {
	return &SQLiteExperienceRepo{db: db}
}

func (r *SQLiteExperienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experiences (id, title, category, price, location, added_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		string(e.Category),
		nullableFloatToValue(e.Price),
		coordinateToJSON(e.Location),
		e.AddedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting experience: %w", err)
	}
	return nil
}

func (r *SQLiteExperienceRepo) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	e, err := scanExperience(row)
	if err != nil {
		return nil, fmt.Errorf("loading experience %q: %w", id, err)
	}
	return e, nil
}

func (r *SQLiteExperienceRepo) List(ctx context.Context) ([]*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences ORDER BY added_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing experiences: %w", err)
	}
	defer rows.Close()

	var out []*domain.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning experience: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *SQLiteExperienceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting experience: %w", err)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanExperience(s scanner) (*domain.Experience, error) {
	var (
		e        domain.Experience
		category string
		price    sql.NullFloat64
		location sql.NullString
		addedAt  string
	)
	if err := s.Scan(&e.ID, &e.Title, &category, &price, &location, &addedAt); err != nil {
		return nil, err
	}
	e.Category = domain.Category(category)
	if price.Valid {
		v := price.Float64
		e.Price = &v
	}
	if location.Valid {
		e.Location = parseCoordinate(location.String)
	}
	e.AddedAt = parseTime(addedAt, time.RFC3339)
	return &e, nil
}
