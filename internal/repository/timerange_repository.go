package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/booking-service/internal/domain"
)

// TimeRangeRepository encapsulates time range persistence.
type TimeRangeRepository interface {
	Create(ctx context.Context, start, end time.Time) (*domain.TimeRange, error)
	ListAll(ctx context.Context) ([]domain.TimeRange, error)
	Deactivate(ctx context.Context, id string) (*domain.TimeRange, error)
}

type timeRangeRepository struct {
	pool *pgxpool.Pool
}

// NewTimeRangeRepository instantiates repository.
func NewTimeRangeRepository(pool *pgxpool.Pool) TimeRangeRepository {
	return &timeRangeRepository{pool: pool}
}

func (r *timeRangeRepository) Create(ctx context.Context, start, end time.Time) (*domain.TimeRange, error) {
	if r.pool == nil {
		return nil, domain.ErrStoreUnavailable
	}
	const query = `
        INSERT INTO time_ranges (start_at, end_at)
        VALUES ($1,$2)
        RETURNING id, start_at, end_at, is_active, created_at`
	var tr domain.TimeRange
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(
		&tr.ID,
		&tr.Start,
		&tr.End,
		&tr.IsActive,
		&tr.CreatedAt,
	); err != nil {
		return nil, classifyWriteError(err)
	}
	return &tr, nil
}

func (r *timeRangeRepository) ListAll(ctx context.Context) ([]domain.TimeRange, error) {
	if r.pool == nil {
		return nil, domain.ErrStoreUnavailable
	}
	const query = `
        SELECT id, start_at, end_at, is_active, created_at
        FROM time_ranges
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()
	return scanTimeRanges(rows)
}

// Deactivate flips is_active off and returns the updated record. Running it
// again on an already inactive id is a no-op that returns the same final
// state.
func (r *timeRangeRepository) Deactivate(ctx context.Context, id string) (*domain.TimeRange, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidIdentifier, id)
	}
	if r.pool == nil {
		return nil, domain.ErrStoreUnavailable
	}
	const query = `
        UPDATE time_ranges SET is_active=FALSE
        WHERE id=$1
        RETURNING id, start_at, end_at, is_active, created_at`
	var tr domain.TimeRange
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&tr.ID,
		&tr.Start,
		&tr.End,
		&tr.IsActive,
		&tr.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRangeNotFound
		}
		return nil, classifyWriteError(err)
	}
	return &tr, nil
}

// classifyWriteError separates server-side write rejections from
// connectivity loss.
func classifyWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s", domain.ErrPersistence, pgErr.Message)
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

func scanTimeRanges(rows pgx.Rows) ([]domain.TimeRange, error) {
	var result []domain.TimeRange
	for rows.Next() {
		var tr domain.TimeRange
		if err := rows.Scan(
			&tr.ID,
			&tr.Start,
			&tr.End,
			&tr.IsActive,
			&tr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		result = append(result, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return result, nil
}
