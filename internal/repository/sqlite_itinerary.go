package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harukimoto/meguri/internal/db"
	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/planner"
)

// SQLiteItineraryRepo implements ItineraryRepo using a SQLite database.
// Snapshot saves run inside a unit of work: the itinerary's boards are
// deleted (cascading to items) and reinserted from the snapshot.
type SQLiteItineraryRepo struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLiteItineraryRepo creates a new SQLiteItineraryRepo.
func NewSQLiteItineraryRepo(database *sql.DB, uow db.UnitOfWork) *SQLiteItineraryRepo {
	return &SQLiteItineraryRepo{db: database, uow: uow}
}

func (r *SQLiteItineraryRepo) Create(ctx context.Context, it *domain.Itinerary) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO itineraries (id, title, start_date, private, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			it.ID,
			it.Title,
			it.StartDate.Format(dateLayout),
			boolToInt(it.Private),
			it.CreatedAt.Format(time.RFC3339),
			it.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting itinerary: %w", err)
		}
		for _, c := range it.Collaborators {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO collaborators (itinerary_id, user_name, role) VALUES (?, ?, ?)`,
				it.ID, c.UserName, string(c.Role),
			); err != nil {
				return fmt.Errorf("inserting collaborator: %w", err)
			}
		}
		for pos, b := range it.Boards {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO day_boards (id, itinerary_id, position) VALUES (?, ?, ?)`,
				b.ID, it.ID, pos,
			); err != nil {
				return fmt.Errorf("inserting day board: %w", err)
			}
			for ipos, item := range b.Items {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO scheduled_items (key, board_id, experience_id, position)
					 VALUES (?, ?, ?, ?)`,
					item.Key, b.ID, item.ExperienceID, ipos,
				); err != nil {
					return fmt.Errorf("inserting scheduled item: %w", err)
				}
			}
		}
		return nil
	})
}

func (r *SQLiteItineraryRepo) GetByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, start_date, private, created_at, updated_at
		 FROM itineraries WHERE id = ?`, id)
	it, err := scanItinerary(row)
	if err != nil {
		return nil, fmt.Errorf("loading itinerary %q: %w", id, err)
	}
	if err := r.loadCollaborators(ctx, it); err != nil {
		return nil, err
	}
	if err := r.loadBoards(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (r *SQLiteItineraryRepo) List(ctx context.Context) ([]*domain.Itinerary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, start_date, private, created_at, updated_at
		 FROM itineraries ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing itineraries: %w", err)
	}
	defer rows.Close()

	var out []*domain.Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning itinerary: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, it := range out {
		if err := r.loadBoards(ctx, it); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SaveSnapshot replaces the itinerary's boards and items with the snapshot
// contents. Deleting day_boards cascades to scheduled_items.
func (r *SQLiteItineraryRepo) SaveSnapshot(ctx context.Context, snap planner.Snapshot) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM day_boards WHERE itinerary_id = ?`, snap.ItineraryID,
		); err != nil {
			return fmt.Errorf("clearing day boards: %w", err)
		}
		for pos, b := range snap.Boards {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO day_boards (id, itinerary_id, position) VALUES (?, ?, ?)`,
				b.ID, snap.ItineraryID, pos,
			); err != nil {
				return fmt.Errorf("inserting day board: %w", err)
			}
			for _, item := range b.Items {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO scheduled_items (key, board_id, experience_id, position)
					 VALUES (?, ?, ?, ?)`,
					item.Key, b.ID, item.ExperienceID, item.Position,
				); err != nil {
					return fmt.Errorf("inserting scheduled item: %w", err)
				}
			}
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE itineraries SET updated_at = ? WHERE id = ?`,
			nowUTC(), snap.ItineraryID,
		); err != nil {
			return fmt.Errorf("touching itinerary: %w", err)
		}
		return nil
	})
}

func (r *SQLiteItineraryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM itineraries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting itinerary: %w", err)
	}
	return nil
}

func (r *SQLiteItineraryRepo) loadCollaborators(ctx context.Context, it *domain.Itinerary) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_name, role FROM collaborators WHERE itinerary_id = ? ORDER BY user_name`,
		it.ID)
	if err != nil {
		return fmt.Errorf("listing collaborators: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.Collaborator
		var role string
		if err := rows.Scan(&c.UserName, &role); err != nil {
			return fmt.Errorf("scanning collaborator: %w", err)
		}
		c.Role = domain.CollaboratorRole(role)
		it.Collaborators = append(it.Collaborators, c)
	}
	return rows.Err()
}

func (r *SQLiteItineraryRepo) loadBoards(ctx context.Context, it *domain.Itinerary) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM day_boards WHERE itinerary_id = ? ORDER BY position`, it.ID)
	if err != nil {
		return fmt.Errorf("listing day boards: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b domain.DayBoard
		if err := rows.Scan(&b.ID); err != nil {
			return fmt.Errorf("scanning day board: %w", err)
		}
		it.Boards = append(it.Boards, &b)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, b := range it.Boards {
		if err := r.loadItems(ctx, b); err != nil {
			return err
		}
		var total float64
		for _, item := range b.Items {
			total += item.Experience.PriceValue()
		}
		b.DailyBudget = total
	}
	return nil
}

func (r *SQLiteItineraryRepo) loadItems(ctx context.Context, b *domain.DayBoard) error {
	query := `SELECT s.key, s.experience_id,
			e.id, e.title, e.category, e.price, e.location, e.added_at
		FROM scheduled_items s
		JOIN experiences e ON s.experience_id = e.id
		WHERE s.board_id = ?
		ORDER BY s.position`
	rows, err := r.db.QueryContext(ctx, query, b.ID)
	if err != nil {
		return fmt.Errorf("listing scheduled items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			item     domain.ScheduledItem
			exp      domain.Experience
			category string
			price    sql.NullFloat64
			location sql.NullString
			addedAt  string
		)
		if err := rows.Scan(&item.Key, &item.ExperienceID,
			&exp.ID, &exp.Title, &category, &price, &location, &addedAt); err != nil {
			return fmt.Errorf("scanning scheduled item: %w", err)
		}
		exp.Category = domain.Category(category)
		if price.Valid {
			v := price.Float64
			exp.Price = &v
		}
		if location.Valid {
			exp.Location = parseCoordinate(location.String)
		}
		exp.AddedAt = parseTime(addedAt, time.RFC3339)
		item.Experience = &exp
		b.Items = append(b.Items, &item)
	}
	return rows.Err()
}

func scanItinerary(s scanner) (*domain.Itinerary, error) {
	var (
		it        domain.Itinerary
		startDate string
		private   int
		createdAt string
		updatedAt string
	)
	if err := s.Scan(&it.ID, &it.Title, &startDate, &private, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	it.StartDate = parseTime(startDate, dateLayout)
	it.Private = intToBool(private)
	it.CreatedAt = parseTime(createdAt, time.RFC3339)
	it.UpdatedAt = parseTime(updatedAt, time.RFC3339)
	return &it, nil
}
