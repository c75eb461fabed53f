package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stpnv0/EventBookingCore/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

const bookingColumns = `id, event_id, user_id, reserved_by, status, additional_info, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// eventLockKey derives the advisory lock id of an event.
func eventLockKey(eventID string) int64 {
	return int64(crc32.ChecksumIEEE([]byte("event_bookings" + eventID)))
}

// LockEvent opens a transaction whose first statement takes the event's
// transaction-scoped advisory lock. The lock goes away with the transaction.
func (r *BookingRepository) LockEvent(ctx context.Context, eventID string) (ports.EventTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, eventLockKey(eventID)); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("lock event %s: %w", eventID, err)
	}

	return &eventTx{tx: tx, eventID: eventID}, nil
}

func (r *BookingRepository) GetBooking(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM event_bookings
			  WHERE event_id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return scanBooking(row)
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM event_bookings
			  WHERE event_id = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}
	return collectBookings(rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM event_bookings
			  WHERE user_id = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	return collectBookings(rows)
}

func (r *BookingRepository) ListReservationsByReserver(ctx context.Context, reserverID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM event_bookings
			  WHERE reserved_by = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, reserverID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return collectBookings(rows)
}

func (r *BookingRepository) StatusCounts(ctx context.Context, eventID string, includeDeletedUsers bool) (domain.StatusCounts, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, statusCountsQuery, eventID, includeDeletedUsers)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	return collectCounts(rows)
}

// ListExpiredReservations filters on the parsed close date in Go so a
// malformed value never fails the whole query.
func (r *BookingRepository) ListExpiredReservations(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM event_bookings
			  WHERE status = $1 AND additional_info ? $2
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusReserved, domain.InfoReservationCloseDate)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	reserved, err := collectBookings(rows)
	if err != nil {
		return nil, err
	}

	expired := reserved[:0]
	for _, b := range reserved {
		if closeDate, ok := b.ReservationCloseDate(); ok && closeDate.Before(now) {
			expired = append(expired, b)
		}
	}
	return expired, nil
}

func (r *BookingRepository) DeleteAdditionalInformation(ctx context.Context, userID string) error {
	query := `UPDATE event_bookings
			  SET additional_info = NULL, updated_at = now()
			  WHERE user_id = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID); err != nil {
		return fmt.Errorf("delete additional information: %w", err)
	}
	return nil
}

func (r *BookingRepository) ScrubPersonalInformation(ctx context.Context, endedBefore time.Time) (int64, error) {
	query := `
		UPDATE event_bookings b
		SET additional_info = CASE
				WHEN b.additional_info IS NULL THEN NULL
				ELSE COALESCE((
					SELECT jsonb_object_agg(kv.key, CASE WHEN kv.key = ANY($2) THEN to_jsonb($3::text) ELSE kv.value END)
					FROM jsonb_each(b.additional_info) kv
				), '{}'::jsonb)
			END,
			pii_removed = now(),
			updated_at = now()
		FROM events e
		WHERE b.event_id = e.id
		  AND b.pii_removed IS NULL
		  AND COALESCE(e.end_date, e.start_date) < $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		endedBefore, pq.Array(domain.PersonalInfoKeys), domain.RemovedValue,
	)
	if err != nil {
		return 0, fmt.Errorf("scrub personal information: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("scrub rows affected: %w", err)
	}
	return n, nil
}

const statusCountsQuery = `
	SELECT b.status, u.role, COUNT(*)
	FROM event_bookings b
	JOIN users u ON u.id = b.user_id
	WHERE b.event_id = $1 AND ($2::boolean OR NOT u.deleted)
	GROUP BY b.status, u.role`

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var (
		b    domain.Booking
		info []byte
	)
	err := row.Scan(&b.ID, &b.EventID, &b.UserID, &b.ReservedByID, &b.Status, &info, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	if len(info) > 0 {
		if err = json.Unmarshal(info, &b.AdditionalInfo); err != nil {
			return nil, fmt.Errorf("decode additional information of booking %s: %w", b.ID, err)
		}
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	defer rows.Close()

	res := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func collectCounts(rows *sql.Rows) (domain.StatusCounts, error) {
	defer rows.Close()

	counts := make(domain.StatusCounts)
	for rows.Next() {
		var (
			status domain.BookingStatus
			role   domain.Role
			n      int
		)
		if err := rows.Scan(&status, &role, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts.Add(status, role, n)
	}

	return counts, rows.Err()
}

// encodeInfo renders additional information as jsonb text. A nil map stays
// SQL NULL.
func encodeInfo(info map[string]string) (any, error) {
	if info == nil {
		return nil, nil
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("encode additional information: %w", err)
	}
	return string(raw), nil
}

func pgCode(err error) pq.ErrorCode {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool { return pgCode(err) == uniqueViolation }

func isForeignKeyViolation(err error) bool { return pgCode(err) == foreignKeyViolation }
