package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, title, place_count, waiting_list_only, cancelled, start_date, end_date,
	booking_deadline, group_reservation_limit, tags, group_token, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, $13)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		e.ID, e.Title, e.PlaceCount, e.WaitingListOnly, e.Cancelled, e.StartDate, e.EndDate,
		e.BookingDeadline, e.GroupReservationLimit, pq.Array(e.Tags), e.GroupToken, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: event %s already exists", domain.ErrValidation, e.ID)
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return scanEvent(row)
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY start_date, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// SetCancelled flags the event as cancelled. Bookings stay untouched and
// reject further changes.
func (r *EventRepository) SetCancelled(ctx context.Context, id string, cancelled bool) error {
	query := `UPDATE events SET cancelled = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, cancelled)
	if err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel event rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func scanEvent(row scanner) (*domain.Event, error) {
	var (
		e     domain.Event
		token sql.NullString
	)
	err := row.Scan(
		&e.ID, &e.Title, &e.PlaceCount, &e.WaitingListOnly, &e.Cancelled, &e.StartDate, &e.EndDate,
		&e.BookingDeadline, &e.GroupReservationLimit, pq.Array(&e.Tags), &token, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	e.GroupToken = token.String
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return &e, nil
}
