package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/EventBookingCore/internal/capacity"
	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stpnv0/EventBookingCore/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RequestReservations reserves places for a batch of users on behalf of
// reserverID. Users without a verified email are left out. The whole batch
// is reserved under one lock or not at all.
func (s *BookingService) RequestReservations(ctx context.Context, eventID string, userIDs []string, reserverID string) ([]*domain.Booking, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	reserver, err := s.loadUser(ctx, reserverID)
	if err != nil {
		return nil, err
	}
	if err = ensureNotCancelled(event, userIDs...); err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("%w: no users to reserve", domain.ErrValidation)
	}

	users, err := s.reservableUsers(ctx, event, userIDs)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return []*domain.Booking{}, nil
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	info := map[string]string{
		domain.InfoReservationCloseDate: s.reservationCloseDate(event).Format(domain.ReservationCloseLayout),
	}

	reservations := make([]*domain.Booking, 0, len(users))
	err = s.inEventTx(ctx, event.ID, ids, func(tx ports.EventTx) error {
		plans := make([]domain.Transition, len(users))
		for i, u := range users {
			current, err := currentBooking(ctx, tx, event.ID, u.ID)
			if err != nil {
				return err
			}
			if plans[i], err = domain.Plan(domain.OpRequestReservation, current, domain.BookingStatusReserved); err != nil {
				return domain.NewBookingError(err, event.ID, u.ID)
			}
		}

		if err := s.ensureCapacity(ctx, tx, event, users, capacity.CountOnlyConfirmed(event)); err != nil {
			return err
		}
		if err := enforceReservationLimit(ctx, tx, event, users, reserver); err != nil {
			return err
		}

		for i, u := range users {
			b, err := apply(ctx, tx, plans[i], event.ID, u.ID, &reserver.ID, info)
			if err != nil {
				return err
			}
			reservations = append(reservations, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservations created",
		logger.String("event_id", event.ID),
		logger.String("reserver_id", reserver.ID),
		logger.String("user_ids", strings.Join(ids, ",")),
		logger.Int("count", len(reservations)),
	)
	s.afterReserved(ctx, event, reserver, reservations)

	return reservations, nil
}

// reservableUsers resolves the batch and drops users whose email is not
// verified. Every other validation error fails the batch.
func (s *BookingService) reservableUsers(ctx context.Context, event *domain.Event, userIDs []string) ([]*domain.User, error) {
	seen := make(map[string]struct{}, len(userIDs))
	users := make([]*domain.User, 0, len(userIDs))
	var unverified []string

	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: user %s listed twice", domain.ErrValidation, id)
		}
		seen[id] = struct{}{}

		u, err := s.loadUser(ctx, id)
		if err != nil {
			return nil, err
		}

		err = s.ensureValidEventAndUser(event, u, true)
		switch {
		case errors.Is(err, domain.ErrEmailMustBeVerified):
			unverified = append(unverified, u.ID)
		case err != nil:
			return nil, err
		default:
			users = append(users, u)
		}
	}

	if len(unverified) > 0 {
		s.logger.Warn("reservation requested for users without a verified email",
			logger.String("event_id", event.ID),
			logger.String("user_ids", strings.Join(unverified, ",")),
		)
	}
	return users, nil
}

// reservationCloseDate is now plus the close interval, or the event start
// when that comes first.
func (s *BookingService) reservationCloseDate(event *domain.Event) time.Time {
	closeAt := s.now().Add(s.cfg.ReservationCloseInterval)
	if !event.StartDate.IsZero() && event.StartDate.Before(closeAt) {
		closeAt = event.StartDate
	}
	return closeAt
}

// enforceReservationLimit counts the reserver's live reservations on the
// event plus the capacity-relevant users in this batch.
func enforceReservationLimit(ctx context.Context, tx ports.EventTx, event *domain.Event, users []*domain.User, reserver *domain.User) error {
	if event.GroupReservationLimit == nil {
		return nil
	}

	bookings, err := tx.ListByEvent(ctx, event.ID)
	if err != nil {
		return storeErr("list bookings", err)
	}

	existing := 0
	for _, b := range bookings {
		if b.ReservedByID != nil && *b.ReservedByID == reserver.ID && b.Status != domain.BookingStatusCancelled {
			existing++
		}
	}

	requested := capacity.RelevantCount(event, users)
	if *event.GroupReservationLimit-existing-requested < 0 {
		ids := make([]string, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		return domain.NewBookingError(domain.ErrGroupReservationLimit, event.ID, ids...).
			WithReason("limit is %d, %d reserved already, %d requested", *event.GroupReservationLimit, existing, requested)
	}
	return nil
}
