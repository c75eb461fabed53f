package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stpnv0/EventBookingCore/internal/domain"
)

// eventTx is a database transaction holding one event's advisory lock.
type eventTx struct {
	tx      *sql.Tx
	eventID string
}

func (t *eventTx) check(eventID string) error {
	if eventID != t.eventID {
		return fmt.Errorf("event %s is not locked by this transaction (holds %s)", eventID, t.eventID)
	}
	return nil
}

func (t *eventTx) GetBooking(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	if err := t.check(eventID); err != nil {
		return nil, err
	}

	query := `SELECT ` + bookingColumns + `
			  FROM event_bookings
			  WHERE event_id = $1 AND user_id = $2`
	return scanBooking(t.tx.QueryRowContext(ctx, query, eventID, userID))
}

func (t *eventTx) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	if err := t.check(eventID); err != nil {
		return nil, err
	}

	query := `SELECT ` + bookingColumns + `
			  FROM event_bookings
			  WHERE event_id = $1
			  ORDER BY created_at, id`
	rows, err := t.tx.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}
	return collectBookings(rows)
}

func (t *eventTx) StatusCounts(ctx context.Context, eventID string, includeDeletedUsers bool) (domain.StatusCounts, error) {
	if err := t.check(eventID); err != nil {
		return nil, err
	}

	rows, err := t.tx.QueryContext(ctx, statusCountsQuery, eventID, includeDeletedUsers)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	return collectCounts(rows)
}

func (t *eventTx) CreateBooking(ctx context.Context, nb domain.NewBooking) (*domain.Booking, error) {
	if err := t.check(nb.EventID); err != nil {
		return nil, err
	}

	info, err := encodeInfo(nb.AdditionalInfo)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO event_bookings (id, event_id, user_id, reserved_by, status, additional_info, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6::jsonb, now(), now())
			  RETURNING ` + bookingColumns

	b, err := scanBooking(t.tx.QueryRowContext(ctx, query,
		uuid.New().String(), nb.EventID, nb.UserID, nb.ReservedByID, nb.Status, info,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewBookingError(domain.ErrDuplicateBooking, nb.EventID, nb.UserID)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("user %s: %w", nb.UserID, domain.ErrUserNotFound)
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return b, nil
}

func (t *eventTx) UpdateBookingStatus(ctx context.Context, eventID, userID string, upd domain.StatusUpdate) (*domain.Booking, error) {
	if err := t.check(eventID); err != nil {
		return nil, err
	}

	info, err := encodeInfo(upd.AdditionalInfo)
	if err != nil {
		return nil, err
	}

	query := `UPDATE event_bookings
			  SET status = $3,
			      reserved_by = COALESCE($4, reserved_by),
			      additional_info = COALESCE($5::jsonb, additional_info),
			      updated_at = now()
			  WHERE event_id = $1 AND user_id = $2
			  RETURNING ` + bookingColumns

	return scanBooking(t.tx.QueryRowContext(ctx, query, eventID, userID, upd.Status, upd.ReservedByID, info))
}

func (t *eventTx) DeleteBooking(ctx context.Context, eventID, userID string) error {
	if err := t.check(eventID); err != nil {
		return err
	}

	res, err := t.tx.ExecContext(ctx, `DELETE FROM event_bookings WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (t *eventTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return domain.ErrTxDone
		}
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (t *eventTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
