package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ExhibitionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewExhibitionRepo(db *dbpg.DB) *ExhibitionRepository {
	return &ExhibitionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ExhibitionRepository) GetByID(ctx context.Context, id string) (*domain.Exhibition, error) {
	query := `SELECT id, title, location, start_date, end_date, total_slots, available_slots, created_at, updated_at
			  FROM exhibitions
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get exhibition: %w", err)
	}

	var e domain.Exhibition
	if err = row.Scan(
		&e.ID, &e.Title, &e.Location, &e.StartDate, &e.EndDate,
		&e.TotalSlots, &e.AvailableSlots, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExhibitionNotFound
		}
		return nil, fmt.Errorf("scan exhibition: %w", err)
	}

	return &e, nil
}

func (r *ExhibitionRepository) List(ctx context.Context) ([]*domain.Exhibition, error) {
	query := `SELECT id, title, location, start_date, end_date, total_slots, available_slots, created_at, updated_at
			  FROM exhibitions
			  ORDER BY start_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list exhibitions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Exhibition
	for rows.Next() {
		var e domain.Exhibition
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Location, &e.StartDate, &e.EndDate,
			&e.TotalSlots, &e.AvailableSlots, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan exhibition: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
