package service

import (
	"context"
	"errors"

	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stpnv0/EventBookingCore/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type cancellation struct {
	previous  *domain.Booking
	cancelled *domain.Booking
	promoted  *domain.Booking
}

// CancelBooking cancels the user's booking. Freeing a confirmed or reserved
// place promotes the oldest waiting-list booking in the same transaction.
func (s *BookingService) CancelBooking(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	event, user, err := s.load(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if err = ensureNotCancelled(event, user.ID); err != nil {
		return nil, err
	}

	res, err := s.cancel(ctx, event, user, nil)
	if err != nil {
		return nil, err
	}
	return res.cancelled, nil
}

// cancel runs the cancellation under the event lock. A non-nil guard is
// checked against the locked booking first and aborts it with its error.
func (s *BookingService) cancel(ctx context.Context, event *domain.Event, user *domain.User, guard func(*domain.Booking) error) (*cancellation, error) {
	var res cancellation

	err := s.inEventTx(ctx, event.ID, []string{user.ID}, func(tx ports.EventTx) error {
		current, err := currentBooking(ctx, tx, event.ID, user.ID)
		if err != nil {
			return err
		}
		if guard != nil {
			if err = guard(current); err != nil {
				return err
			}
		}

		t, err := domain.Plan(domain.OpCancel, current, domain.BookingStatusCancelled)
		if err != nil {
			return domain.NewBookingError(err, event.ID, user.ID)
		}

		res.previous = current
		if res.cancelled, err = apply(ctx, tx, t, event.ID, user.ID, nil, nil); err != nil {
			return err
		}

		if t.PromoteWaitingList {
			res.promoted, err = s.promoteNextInLine(ctx, tx, event)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", res.cancelled.ID),
		logger.String("event_id", event.ID),
		logger.String("user_id", user.ID),
		logger.String("previous_status", string(res.previous.Status)),
	)
	s.afterCancelled(ctx, event, user, res.previous)

	if res.promoted != nil {
		s.logger.Info("booking promoted",
			logger.String("booking_id", res.promoted.ID),
			logger.String("event_id", event.ID),
			logger.String("user_id", res.promoted.UserID),
			logger.String("reason", "waiting list"),
		)
		s.afterPromotedFromWaitingList(ctx, event, res.promoted)
	}

	return &res, nil
}

// promoteNextInLine confirms the oldest waiting-list booking if it fits. The
// check only counts confirmed bookings. Returns nil when nobody is promoted.
func (s *BookingService) promoteNextInLine(ctx context.Context, tx ports.EventTx, event *domain.Event) (*domain.Booking, error) {
	bookings, err := tx.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, storeErr("list bookings", err)
	}

	next := oldestWaiting(bookings)
	if next == nil {
		return nil, nil
	}

	candidate := s.capacityCandidate(ctx, event, next.UserID)
	err = s.ensureCapacity(ctx, tx, event, []*domain.User{candidate}, true)
	if errors.Is(err, domain.ErrEventIsFull) {
		s.logger.Debug("waiting list not promoted, event still full",
			logger.String("event_id", event.ID),
			logger.String("user_id", next.UserID),
		)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	t, err := domain.Plan(domain.OpPromote, next, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, domain.NewBookingError(err, event.ID, next.UserID)
	}
	return apply(ctx, tx, t, event.ID, next.UserID, nil, nil)
}

// capacityCandidate resolves the user for role-based counting. An unknown
// user is counted as capacity relevant.
func (s *BookingService) capacityCandidate(ctx context.Context, event *domain.Event, userID string) *domain.User {
	user, err := s.users.GetByID(ctx, userID)
	if err == nil && user == nil {
		err = domain.ErrUserNotFound
	}
	if err != nil {
		s.logger.Warn("failed to resolve waiting-list user, counting toward capacity",
			logger.String("event_id", event.ID),
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return &domain.User{ID: userID, Role: domain.RoleStudent}
	}
	return user
}

// oldestWaiting picks the earliest created waiting-list booking. Ties keep
// the store's order.
func oldestWaiting(bookings []*domain.Booking) *domain.Booking {
	var oldest *domain.Booking
	for _, b := range bookings {
		if b.Status != domain.BookingStatusWaitingList {
			continue
		}
		if oldest == nil || b.CreatedAt.Before(oldest.CreatedAt) {
			oldest = b
		}
	}
	return oldest
}
