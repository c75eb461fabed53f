package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// CancelExpiredReservations cancels RESERVED bookings past their reservation
// close date through the regular cancel path, so the waiting list moves up.
// A failure on one booking does not stop the others.
func (s *BookingService) CancelExpiredReservations(ctx context.Context) ([]*domain.Booking, error) {
	now := s.now()
	expired, err := s.store.ListExpiredReservations(ctx, now)
	if err != nil {
		return nil, storeErr("list expired reservations", err)
	}

	var (
		cancelled []*domain.Booking
		errs      []error
	)
	for _, b := range expired {
		event, user, err := s.load(ctx, b.EventID, b.UserID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if event.Cancelled {
			continue
		}

		res, err := s.cancel(ctx, event, user, stillExpired(event.ID, user.ID, now))
		if err != nil {
			if domain.IsBusiness(err) {
				s.logger.Debug("expired reservation skipped",
					logger.String("event_id", b.EventID),
					logger.String("user_id", b.UserID),
					logger.String("reason", err.Error()),
				)
				continue
			}
			errs = append(errs, err)
			continue
		}
		cancelled = append(cancelled, res.cancelled)
	}

	if len(cancelled) > 0 {
		s.logger.Info("expired reservations cancelled",
			logger.Int("count", len(cancelled)),
		)
	}

	return cancelled, errors.Join(errs...)
}

// stillExpired re-checks under the lock that the reservation was neither
// confirmed nor renewed since it was listed.
func stillExpired(eventID, userID string, now time.Time) func(*domain.Booking) error {
	return func(current *domain.Booking) error {
		if current == nil || current.Status != domain.BookingStatusReserved {
			return domain.NewBookingError(domain.ErrBookingUpdateInvalid, eventID, userID).
				WithReason("reservation is no longer pending")
		}
		closeDate, ok := current.ReservationCloseDate()
		if !ok || !closeDate.Before(now) {
			return domain.NewBookingError(domain.ErrBookingUpdateInvalid, eventID, userID).
				WithReason("reservation is still open")
		}
		return nil
	}
}

// ScrubPersonalInformation removes personal keys from additional information
// on events that ended longer than the retention period ago.
func (s *BookingService) ScrubPersonalInformation(ctx context.Context) (int64, error) {
	n, err := s.store.ScrubPersonalInformation(ctx, s.now().Add(-s.cfg.PIIRetention))
	if err != nil {
		return 0, storeErr("scrub personal information", err)
	}

	if n > 0 {
		s.logger.Info("personal information scrubbed",
			logger.Int64("bookings", n),
		)
	}
	return n, nil
}

// DeleteUserAdditionalInformation erases additional information from every
// booking of the user. The bookings stay.
func (s *BookingService) DeleteUserAdditionalInformation(ctx context.Context, userID string) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	if err = s.store.DeleteAdditionalInformation(ctx, user.ID); err != nil {
		return storeErr("delete additional information", err)
	}

	s.logger.Info("booking information erased",
		logger.String("user_id", user.ID),
	)
	return nil
}

// ResendNotification sends the notification that matches the booking's
// current status again. Unlike booking side effects it runs synchronously
// and reports failures.
func (s *BookingService) ResendNotification(ctx context.Context, eventID, userID string) error {
	event, user, err := s.load(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if err = ensureNotCancelled(event, user.ID); err != nil {
		return err
	}

	b, err := s.store.GetBooking(ctx, event.ID, user.ID)
	if err != nil {
		return storeErr("get booking", err)
	}

	switch b.Status {
	case domain.BookingStatusConfirmed:
		err = s.notifier.SendBookingConfirmed(ctx, event, user, b)
	case domain.BookingStatusCancelled:
		err = s.notifier.SendCancelled(ctx, event, user, nil)
	case domain.BookingStatusWaitingList:
		err = s.notifier.SendWaitlisted(ctx, event, user)
	case domain.BookingStatusReserved:
		err = s.notifier.SendReservationRequested(ctx, event, user, s.reserverName(ctx, b))
	default:
		return domain.NewBookingError(domain.ErrBookingUpdateInvalid, event.ID, user.ID).
			WithReason("no notification for status %s", b.Status)
	}
	if err != nil {
		return fmt.Errorf("resend notification: %w", err)
	}
	return nil
}

func (s *BookingService) reserverName(ctx context.Context, b *domain.Booking) string {
	if b.ReservedByID == nil {
		return ""
	}
	reserver, err := s.users.GetByID(ctx, *b.ReservedByID)
	if err != nil {
		s.logger.Error("failed to resolve reserving user",
			logger.String("event_id", b.EventID),
			logger.String("reserver_id", *b.ReservedByID),
			logger.String("error", err.Error()),
		)
		return ""
	}
	return reserver.FullName()
}
