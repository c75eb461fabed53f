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

const (
	defaultReservationCloseInterval = 14 * 24 * time.Hour
	defaultPIIRetention             = 30 * 24 * time.Hour
)

type BookingConfig struct {
	// ReservationCloseInterval is how long a reservation stays open before it
	// is cancelled, capped at the event start.
	ReservationCloseInterval time.Duration
	// PIIRetention is how long after an event ends personal details in
	// additional information are kept.
	PIIRetention time.Duration
}

type Option func(*BookingService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *BookingService) {
		s.now = now
	}
}

// BookingService books users onto events. Every capacity decision is taken
// while holding the event lock; group membership and notifications run
// through the dispatcher after commit.
type BookingService struct {
	store      ports.BookingStore
	events     ports.EventRepo
	users      ports.UserDirectory
	groups     ports.GroupMembership
	notifier   ports.Notifier
	dispatcher ports.Dispatcher
	cfg        BookingConfig
	logger     logger.Logger
	now        func() time.Time
}

func NewBookingService(
	store ports.BookingStore,
	events ports.EventRepo,
	users ports.UserDirectory,
	groups ports.GroupMembership,
	notifier ports.Notifier,
	dispatcher ports.Dispatcher,
	cfg BookingConfig,
	logger logger.Logger,
	opts ...Option,
) *BookingService {
	if cfg.ReservationCloseInterval <= 0 {
		cfg.ReservationCloseInterval = defaultReservationCloseInterval
	}
	if cfg.PIIRetention <= 0 {
		cfg.PIIRetention = defaultPIIRetention
	}

	s := &BookingService{
		store:      store,
		events:     events,
		users:      users,
		groups:     groups,
		notifier:   notifier,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrAddToWaitingList books the user directly, falling back to the
// waiting list when the event is full. Waiting-list-only events always get a
// waiting-list booking.
func (s *BookingService) CreateOrAddToWaitingList(ctx context.Context, eventID, userID string, info map[string]string) (*domain.Booking, error) {
	event, user, err := s.load(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if err = ensureNotCancelled(event, user.ID); err != nil {
		return nil, err
	}

	target := domain.BookingStatusConfirmed
	if event.WaitingListOnly {
		target = domain.BookingStatusWaitingList
	}

	var booking *domain.Booking
	err = s.inEventTx(ctx, event.ID, []string{user.ID}, func(tx ports.EventTx) error {
		current, err := currentBooking(ctx, tx, event.ID, user.ID)
		if err != nil {
			return err
		}

		t, err := domain.Plan(domain.OpCreate, current, target)
		if err != nil {
			return domain.NewBookingError(err, event.ID, user.ID)
		}
		if t.CheckCapacity {
			err = s.ensureCapacity(ctx, tx, event, []*domain.User{user}, capacity.CountOnlyConfirmed(event))
			if errors.Is(err, domain.ErrEventIsFull) {
				t, err = domain.Plan(domain.OpCreate, current, domain.BookingStatusWaitingList)
			}
			if err != nil {
				return err
			}
		}

		booking, err = apply(ctx, tx, t, event.ID, user.ID, nil, info)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logChange(booking)
	s.afterCreated(ctx, event, user, booking)

	return booking, nil
}

// CreateBooking is the admin path: no deadline or email checks, capacity is
// only checked for CONFIRMED bookings.
func (s *BookingService) CreateBooking(ctx context.Context, eventID, userID string, info map[string]string, status domain.BookingStatus) (*domain.Booking, error) {
	event, user, err := s.load(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if err = ensureNotCancelled(event, user.ID); err != nil {
		return nil, err
	}

	var booking *domain.Booking
	err = s.inEventTx(ctx, event.ID, []string{user.ID}, func(tx ports.EventTx) error {
		current, err := currentBooking(ctx, tx, event.ID, user.ID)
		if err != nil {
			return err
		}

		t, err := domain.Plan(domain.OpCreate, current, status)
		if err != nil {
			return domain.NewBookingError(err, event.ID, user.ID)
		}
		if t.CheckCapacity {
			if err = s.ensureCapacity(ctx, tx, event, []*domain.User{user}, capacity.CountOnlyConfirmed(event)); err != nil {
				return err
			}
		}

		booking, err = apply(ctx, tx, t, event.ID, user.ID, nil, info)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logChange(booking)
	s.afterCreated(ctx, event, user, booking)

	return booking, nil
}

// RequestBooking is the self-service booking. The user needs a verified email
// and the event must still be open for bookings.
func (s *BookingService) RequestBooking(ctx context.Context, eventID, userID string, info map[string]string) (*domain.Booking, error) {
	event, user, err := s.load(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if err = ensureNotCancelled(event, user.ID); err != nil {
		return nil, err
	}
	if err = s.ensureValidEventAndUser(event, user, true); err != nil {
		return nil, err
	}

	var booking *domain.Booking
	err = s.inEventTx(ctx, event.ID, []string{user.ID}, func(tx ports.EventTx) error {
		current, err := currentBooking(ctx, tx, event.ID, user.ID)
		if err != nil {
			return err
		}

		t, err := domain.Plan(domain.OpRequestBooking, current, domain.BookingStatusConfirmed)
		if err != nil {
			return domain.NewBookingError(err, event.ID, user.ID)
		}

		countOnlyConfirmed := capacity.CountOnlyConfirmed(event)
		if t.CheckCapacity {
			if err = s.ensureCapacity(ctx, tx, event, []*domain.User{user}, countOnlyConfirmed); err != nil {
				return err
			}
		}

		booking, err = apply(ctx, tx, t, event.ID, user.ID, nil, info)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logChange(booking)
	s.afterConfirmed(ctx, event, user, booking)

	return booking, nil
}

// RequestWaitingListBooking only succeeds when there is no place left, the
// booking deadline has passed or the event is waiting-list-only.
func (s *BookingService) RequestWaitingListBooking(ctx context.Context, eventID, userID string, info map[string]string) (*domain.Booking, error) {
	event, user, err := s.load(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if err = ensureNotCancelled(event, user.ID); err != nil {
		return nil, err
	}
	if err = s.ensureValidEventAndUser(event, user, false); err != nil {
		return nil, err
	}

	var booking *domain.Booking
	err = s.inEventTx(ctx, event.ID, []string{user.ID}, func(tx ports.EventTx) error {
		current, err := currentBooking(ctx, tx, event.ID, user.ID)
		if err != nil {
			return err
		}

		t, err := domain.Plan(domain.OpRequestWaitingList, current, domain.BookingStatusWaitingList)
		if err != nil {
			return domain.NewBookingError(err, event.ID, user.ID)
		}

		if !event.WaitingListOnly && !event.DeadlinePassed(s.now()) {
			counts, err := s.counts(ctx, tx, event)
			if err != nil {
				return err
			}
			available := capacity.PlacesAvailable(event, counts, capacity.CountOnlyConfirmed(event))
			if available != nil && *available > 0 {
				return domain.NewBookingError(domain.ErrEventIsNotFull, event.ID, user.ID).
					WithReason("%d places available, book the event instead", *available)
			}
		}

		booking, err = apply(ctx, tx, t, event.ID, user.ID, nil, info)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logChange(booking)
	s.afterWaitlisted(ctx, event, user, event.WaitingListOnly)

	return booking, nil
}

// PromoteToConfirmed moves a waiting-list or cancelled booking to CONFIRMED.
// Only confirmed bookings are counted for this check.
func (s *BookingService) PromoteToConfirmed(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	event, user, err := s.load(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if err = ensureNotCancelled(event, user.ID); err != nil {
		return nil, err
	}

	var booking *domain.Booking
	err = s.inEventTx(ctx, event.ID, []string{user.ID}, func(tx ports.EventTx) error {
		current, err := currentBooking(ctx, tx, event.ID, user.ID)
		if err != nil {
			return err
		}

		t, err := domain.Plan(domain.OpPromote, current, domain.BookingStatusConfirmed)
		if err != nil {
			return domain.NewBookingError(err, event.ID, user.ID)
		}
		if t.CheckCapacity {
			if err = s.ensureCapacity(ctx, tx, event, []*domain.User{user}, true); err != nil {
				return err
			}
		}

		booking, err = apply(ctx, tx, t, event.ID, user.ID, nil, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logChange(booking)
	s.afterPromoted(ctx, event, user, booking)

	return booking, nil
}

func (s *BookingService) RecordAttendance(ctx context.Context, eventID, userID string, attended bool) (*domain.Booking, error) {
	event, user, err := s.load(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if err = ensureNotCancelled(event, user.ID); err != nil {
		return nil, err
	}

	target := domain.BookingStatusAbsent
	if attended {
		target = domain.BookingStatusAttended
	}

	var booking *domain.Booking
	err = s.inEventTx(ctx, event.ID, []string{user.ID}, func(tx ports.EventTx) error {
		current, err := currentBooking(ctx, tx, event.ID, user.ID)
		if err != nil {
			return err
		}

		t, err := domain.Plan(domain.OpRecordAttendance, current, target)
		if err != nil {
			return domain.NewBookingError(err, event.ID, user.ID)
		}

		booking, err = apply(ctx, tx, t, event.ID, user.ID, nil, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logChange(booking)
	return booking, nil
}

// DeleteBooking removes the row for good, also on cancelled events. The user
// leaves the event group before the lock is released.
func (s *BookingService) DeleteBooking(ctx context.Context, eventID, userID string) error {
	event, user, err := s.load(ctx, eventID, userID)
	if err != nil {
		return err
	}

	err = s.inEventTx(ctx, event.ID, []string{user.ID}, func(tx ports.EventTx) error {
		err := tx.DeleteBooking(ctx, event.ID, user.ID)
		if errors.Is(err, domain.ErrBookingNotFound) {
			return domain.NewBookingError(domain.ErrBookingUpdateInvalid, event.ID, user.ID).
				WithReason("unable to delete a booking that doesn't exist")
		}
		if err != nil {
			return storeErr("delete booking", err)
		}

		if err = s.removeFromEventGroup(ctx, event, user); err != nil {
			s.logger.Error("failed to remove user from event group",
				logger.String("event_id", event.ID),
				logger.String("user_id", user.ID),
				logger.String("error", err.Error()),
			)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("booking deleted",
		logger.String("event_id", event.ID),
		logger.String("user_id", user.ID),
	)
	return nil
}

// inEventTx runs fn while holding the event lock. Commit happens only when fn
// succeeds, anything else rolls the whole transaction back.
func (s *BookingService) inEventTx(ctx context.Context, eventID string, userIDs []string, fn func(tx ports.EventTx) error) error {
	tx, err := s.store.LockEvent(ctx, eventID)
	if err != nil {
		s.logInfra("failed to lock event", eventID, userIDs, err)
		return fmt.Errorf("lock event: %w: %w", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		if !domain.IsBusiness(err) {
			s.logInfra("booking transaction failed", eventID, userIDs, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		s.logInfra("failed to commit booking transaction", eventID, userIDs, err)
		return fmt.Errorf("commit: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *BookingService) load(ctx context.Context, eventID, userID string) (*domain.Event, *domain.User, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return event, user, nil
}

func (s *BookingService) loadEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, storeErr("get event", err)
	}
	if event == nil {
		panic(fmt.Sprintf("event repository returned no event and no error for %q", eventID))
	}
	return event, nil
}

func (s *BookingService) loadUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	if user == nil {
		panic(fmt.Sprintf("user directory returned no user and no error for %q", userID))
	}
	return user, nil
}

// ensureValidEventAndUser rejects events that are over, closed for booking
// (when enforceDeadline is set) and users without a verified email.
func (s *BookingService) ensureValidEventAndUser(event *domain.Event, user *domain.User, enforceDeadline bool) error {
	now := s.now()
	if event.HasEnded(now) {
		return domain.NewBookingError(domain.ErrEventDeadlinePassed, event.ID, user.ID).
			WithReason("the event is in the past")
	}
	if enforceDeadline && event.DeadlinePassed(now) {
		return domain.NewBookingError(domain.ErrEventDeadlinePassed, event.ID, user.ID).
			WithReason("the booking deadline has passed")
	}
	if !user.EmailVerified {
		return domain.NewBookingError(domain.ErrEmailMustBeVerified, event.ID, user.ID)
	}
	return nil
}

func ensureNotCancelled(event *domain.Event, userIDs ...string) error {
	if event.Cancelled {
		return domain.NewBookingError(domain.ErrEventIsCancelled, event.ID, userIDs...)
	}
	return nil
}

func (s *BookingService) counts(ctx context.Context, tx ports.EventTx, event *domain.Event) (domain.StatusCounts, error) {
	counts, err := tx.StatusCounts(ctx, event.ID, capacity.IncludeDeletedUsers(event, s.now()))
	if err != nil {
		return nil, storeErr("status counts", err)
	}
	return counts, nil
}

func (s *BookingService) ensureCapacity(ctx context.Context, tx ports.EventTx, event *domain.Event, users []*domain.User, countOnlyConfirmed bool) error {
	counts, err := s.counts(ctx, tx, event)
	if err != nil {
		return err
	}
	return capacity.EnsureCapacity(event, counts, users, countOnlyConfirmed)
}

func currentBooking(ctx context.Context, tx ports.EventTx, eventID, userID string) (*domain.Booking, error) {
	b, err := tx.GetBooking(ctx, eventID, userID)
	if errors.Is(err, domain.ErrBookingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get booking", err)
	}
	return b, nil
}

func apply(ctx context.Context, tx ports.EventTx, t domain.Transition, eventID, userID string, reservedBy *string, info map[string]string) (*domain.Booking, error) {
	var (
		b   *domain.Booking
		err error
	)
	if t.Insert {
		b, err = tx.CreateBooking(ctx, domain.NewBooking{
			EventID:        eventID,
			UserID:         userID,
			ReservedByID:   reservedBy,
			Status:         t.To,
			AdditionalInfo: info,
		})
	} else {
		b, err = tx.UpdateBookingStatus(ctx, eventID, userID, domain.StatusUpdate{
			Status:         t.To,
			ReservedByID:   reservedBy,
			AdditionalInfo: info,
		})
	}
	if err != nil {
		return nil, storeErr("save booking", err)
	}
	return b, nil
}

// storeErr passes business conditions through and marks everything else as
// a store failure.
func storeErr(op string, err error) error {
	if domain.IsBusiness(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

func (s *BookingService) logChange(b *domain.Booking) {
	msg := "booking updated"
	switch b.Status {
	case domain.BookingStatusConfirmed:
		msg = "booking confirmed"
	case domain.BookingStatusWaitingList:
		msg = "booking waitlisted"
	case domain.BookingStatusReserved:
		msg = "booking reserved"
	case domain.BookingStatusCancelled:
		msg = "booking cancelled"
	case domain.BookingStatusAttended, domain.BookingStatusAbsent:
		msg = "attendance recorded"
	}

	s.logger.Info(msg,
		logger.String("booking_id", b.ID),
		logger.String("event_id", b.EventID),
		logger.String("user_id", b.UserID),
		logger.String("status", string(b.Status)),
	)
}

func (s *BookingService) logInfra(msg, eventID string, userIDs []string, err error) {
	s.logger.Error(msg,
		logger.String("event_id", eventID),
		logger.String("user_ids", strings.Join(userIDs, ",")),
		logger.String("error", err.Error()),
	)
}
