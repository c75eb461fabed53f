package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stpnv0/EventBookingCore/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Everything here runs after the booking change is committed. Failures are
// logged by the dispatcher and never reach the caller.

func (s *BookingService) submit(ctx context.Context, name string, event *domain.Event, userID string, run func(ctx context.Context) error) {
	s.dispatcher.Submit(ctx, ports.SideEffect{
		Name:    name,
		EventID: event.ID,
		UserID:  userID,
		Run:     run,
	})
}

// notify drops notifications about changes recorded after the event ended.
func (s *BookingService) notify(ctx context.Context, name string, event *domain.Event, userID string, send func(ctx context.Context) error) {
	if !event.NotifiableAt(s.now()) {
		s.logger.Debug("notification skipped, event has ended",
			logger.String("notification", name),
			logger.String("event_id", event.ID),
			logger.String("user_id", userID),
		)
		return
	}
	s.submit(ctx, name, event, userID, send)
}

func (s *BookingService) joinEventGroup(ctx context.Context, event *domain.Event, user *domain.User, addToGroup bool) {
	if event.GroupToken == "" {
		return
	}
	s.submit(ctx, "join event group", event, user.ID, func(ctx context.Context) error {
		return s.groups.AddUserViaToken(ctx, event.GroupToken, user, addToGroup)
	})
}

func (s *BookingService) leaveEventGroup(ctx context.Context, event *domain.Event, user *domain.User) {
	if event.GroupToken == "" {
		return
	}
	s.submit(ctx, "leave event group", event, user.ID, func(ctx context.Context) error {
		return s.removeFromEventGroup(ctx, event, user)
	})
}

func (s *BookingService) removeFromEventGroup(ctx context.Context, event *domain.Event, user *domain.User) error {
	if event.GroupToken == "" {
		return nil
	}
	group, err := s.groups.ResolveGroupForToken(ctx, event.GroupToken, user)
	if err != nil {
		return fmt.Errorf("resolve event group: %w", err)
	}
	return s.groups.RemoveUser(ctx, group, user)
}

func (s *BookingService) afterCreated(ctx context.Context, event *domain.Event, user *domain.User, booking *domain.Booking) {
	s.joinEventGroup(ctx, event, user, true)

	switch booking.Status {
	case domain.BookingStatusConfirmed:
		s.notify(ctx, "booking confirmed", event, user.ID, func(ctx context.Context) error {
			return s.notifier.SendBookingConfirmed(ctx, event, user, booking)
		})
	case domain.BookingStatusWaitingList:
		s.notify(ctx, "waitlisted", event, user.ID, func(ctx context.Context) error {
			return s.notifier.SendWaitlisted(ctx, event, user)
		})
	}
}

func (s *BookingService) afterConfirmed(ctx context.Context, event *domain.Event, user *domain.User, booking *domain.Booking) {
	s.joinEventGroup(ctx, event, user, true)
	s.notify(ctx, "booking confirmed", event, user.ID, func(ctx context.Context) error {
		return s.notifier.SendBookingConfirmed(ctx, event, user, booking)
	})
}

// afterWaitlisted grants the group owner access to the user, joining the
// group itself only when asked to.
func (s *BookingService) afterWaitlisted(ctx context.Context, event *domain.Event, user *domain.User, addToGroup bool) {
	s.joinEventGroup(ctx, event, user, addToGroup)
	s.notify(ctx, "waitlisted", event, user.ID, func(ctx context.Context) error {
		return s.notifier.SendWaitlisted(ctx, event, user)
	})
}

func (s *BookingService) afterPromoted(ctx context.Context, event *domain.Event, user *domain.User, booking *domain.Booking) {
	s.joinEventGroup(ctx, event, user, true)
	s.notify(ctx, "promoted", event, user.ID, func(ctx context.Context) error {
		return s.notifier.SendPromoted(ctx, event, user, booking)
	})
}

// afterPromotedFromWaitingList resolves the promoted user inside the task so
// a lookup failure only loses the side effects.
func (s *BookingService) afterPromotedFromWaitingList(ctx context.Context, event *domain.Event, booking *domain.Booking) {
	notifiable := event.NotifiableAt(s.now())

	s.submit(ctx, "promoted from waiting list", event, booking.UserID, func(ctx context.Context) error {
		user, err := s.users.GetByID(ctx, booking.UserID)
		if err != nil {
			return fmt.Errorf("resolve promoted user: %w", err)
		}

		var errs []error
		if event.GroupToken != "" {
			if err = s.groups.AddUserViaToken(ctx, event.GroupToken, user, true); err != nil {
				errs = append(errs, fmt.Errorf("join event group: %w", err))
			}
		}
		if notifiable {
			if err = s.notifier.SendPromoted(ctx, event, user, booking); err != nil {
				errs = append(errs, fmt.Errorf("send promoted: %w", err))
			}
		}
		return errors.Join(errs...)
	})
}

// afterCancelled notifies the user and, for reservations, the reserver.
func (s *BookingService) afterCancelled(ctx context.Context, event *domain.Event, user *domain.User, previous *domain.Booking) {
	if previous.Status != domain.BookingStatusReserved {
		s.leaveEventGroup(ctx, event, user)
	}

	var reserverID string
	if previous.Status == domain.BookingStatusReserved && previous.ReservedByID != nil {
		reserverID = *previous.ReservedByID
	}

	s.notify(ctx, "cancelled", event, user.ID, func(ctx context.Context) error {
		var reserver *domain.User
		if reserverID != "" {
			r, err := s.users.GetByID(ctx, reserverID)
			if err != nil {
				s.logger.Error("failed to resolve reserving user for cancellation",
					logger.String("event_id", event.ID),
					logger.String("user_id", user.ID),
					logger.String("reserver_id", reserverID),
					logger.String("error", err.Error()),
				)
			} else {
				reserver = r
			}
		}
		return s.notifier.SendCancelled(ctx, event, user, reserver)
	})
}

// afterReserved notifies every reserved user and sends the reserver a recap.
// Users are resolved again so a vanished account is skipped, not fatal.
func (s *BookingService) afterReserved(ctx context.Context, event *domain.Event, reserver *domain.User, reservations []*domain.Booking) {
	for _, b := range reservations {
		s.submit(ctx, "reservation requested", event, b.UserID, func(ctx context.Context) error {
			user, err := s.users.GetByID(ctx, b.UserID)
			if err != nil {
				return fmt.Errorf("resolve reserved user: %w", err)
			}
			return s.notifier.SendReservationRequested(ctx, event, user, reserver.FullName())
		})
	}

	s.submit(ctx, "reservation recap", event, reserver.ID, func(ctx context.Context) error {
		reserved := make([]*domain.User, 0, len(reservations))
		for _, b := range reservations {
			user, err := s.users.GetByID(ctx, b.UserID)
			if err != nil {
				s.logger.Error("failed to resolve reserved user for recap",
					logger.String("event_id", event.ID),
					logger.String("user_id", b.UserID),
					logger.String("error", err.Error()),
				)
				continue
			}
			reserved = append(reserved, user)
		}
		return s.notifier.SendReservationRecap(ctx, event, reserver, reserved)
	})
}
