package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventBookingCore/internal/domain"
)

// BookingStore persists bookings. Every read-then-write on an event's
// bookings must go through the EventTx returned by LockEvent.
type BookingStore interface {
	// LockEvent opens a transaction holding the event's exclusive lock until
	// Commit or Rollback.
	LockEvent(ctx context.Context, eventID string) (EventTx, error)

	GetBooking(ctx context.Context, eventID, userID string) (*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListReservationsByReserver(ctx context.Context, reserverID string) ([]*domain.Booking, error)
	StatusCounts(ctx context.Context, eventID string, includeDeletedUsers bool) (domain.StatusCounts, error)

	// ListExpiredReservations returns RESERVED bookings whose reservation
	// close date is before now.
	ListExpiredReservations(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	DeleteAdditionalInformation(ctx context.Context, userID string) error
	// ScrubPersonalInformation replaces personal keys in the additional
	// information of bookings on events that ended before endedBefore.
	ScrubPersonalInformation(ctx context.Context, endedBefore time.Time) (int64, error)
}

// EventTx is a transaction scoped to one locked event. Reads see the
// transaction's own writes.
type EventTx interface {
	GetBooking(ctx context.Context, eventID, userID string) (*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	StatusCounts(ctx context.Context, eventID string, includeDeletedUsers bool) (domain.StatusCounts, error)

	CreateBooking(ctx context.Context, b domain.NewBooking) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, eventID, userID string, upd domain.StatusUpdate) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, eventID, userID string) error

	Commit() error
	// Rollback is a no-op after Commit.
	Rollback() error
}
