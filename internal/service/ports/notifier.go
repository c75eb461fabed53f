package ports

import (
	"context"

	"github.com/stpnv0/EventBookingCore/internal/domain"
)

type Notifier interface {
	SendBookingConfirmed(ctx context.Context, event *domain.Event, user *domain.User, booking *domain.Booking) error
	SendWaitlisted(ctx context.Context, event *domain.Event, user *domain.User) error
	SendPromoted(ctx context.Context, event *domain.Event, user *domain.User, booking *domain.Booking) error
	// SendCancelled tells the user, and the reserver when reservedBy is set,
	// that the booking was cancelled.
	SendCancelled(ctx context.Context, event *domain.Event, user *domain.User, reservedBy *domain.User) error
	SendReservationRequested(ctx context.Context, event *domain.Event, user *domain.User, reserverName string) error
	SendReservationRecap(ctx context.Context, event *domain.Event, reserver *domain.User, reserved []*domain.User) error
}
