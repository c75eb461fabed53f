package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/stpnv0/EventBookingCore/internal/dispatch"
	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stpnv0/EventBookingCore/internal/repository/memory"
	"github.com/stpnv0/EventBookingCore/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fixture struct {
	store      *memory.Store
	notifier   *mocks.MockNotifier
	groups     *mocks.MockGroupMembership
	dispatcher *dispatch.Dispatcher
	svc        *BookingService
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := newTestLogger(t)

	f := &fixture{
		notifier: mocks.NewMockNotifier(t),
		groups:   mocks.NewMockGroupMembership(t),
		now:      time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}

	var (
		mu      sync.Mutex
		created = f.now.Add(-time.Hour)
	)
	// every store write gets a distinct, increasing timestamp
	f.store = memory.New(memory.WithClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		created = created.Add(time.Millisecond)
		return created
	}))
	f.dispatcher = dispatch.New(4, time.Second, log)
	f.svc = NewBookingService(
		f.store, f.store.Events(), f.store.Users(),
		f.groups, f.notifier, f.dispatcher,
		BookingConfig{}, log,
		WithClock(func() time.Time { return f.now }),
	)

	// registered after the mocks so it runs before their assertions
	t.Cleanup(f.dispatcher.Wait)

	return f
}

type eventOpt func(*domain.Event)

func withPlaces(n int) eventOpt { return func(e *domain.Event) { e.PlaceCount = pointer.ToInt(n) } }

func withTags(tags ...string) eventOpt { return func(e *domain.Event) { e.Tags = tags } }

func (f *fixture) addEvent(t *testing.T, opts ...eventOpt) *domain.Event {
	t.Helper()
	e := &domain.Event{
		Title:     "Physics masterclass",
		StartDate: f.now.Add(7 * 24 * time.Hour),
		EndDate:   pointer.ToTime(f.now.Add(7*24*time.Hour + 3*time.Hour)),
		Tags:      []string{},
	}
	for _, opt := range opts {
		opt(e)
	}
	require.NoError(t, f.store.CreateEvent(context.Background(), e))
	return e
}

func (f *fixture) addUser(t *testing.T, id string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:            id,
		GivenName:     id,
		FamilyName:    "Tester",
		Email:         id + "@example.com",
		Role:          role,
		EmailVerified: true,
	}
	require.NoError(t, f.store.CreateUser(context.Background(), u))
	return u
}

// allowNotifications accepts any notification.
func (f *fixture) allowNotifications() {
	f.notifier.EXPECT().SendBookingConfirmed(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notifier.EXPECT().SendWaitlisted(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notifier.EXPECT().SendPromoted(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notifier.EXPECT().SendCancelled(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notifier.EXPECT().SendReservationRequested(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notifier.EXPECT().SendReservationRecap(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (f *fixture) status(t *testing.T, eventID, userID string) domain.BookingStatus {
	t.Helper()
	b, err := f.store.GetBooking(context.Background(), eventID, userID)
	require.NoError(t, err)
	return b.Status
}

func userID(id string) any {
	return mock.MatchedBy(func(u *domain.User) bool { return u != nil && u.ID == id })
}

func TestBookingService_RequestBooking_Confirms(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(2))
	f.addUser(t, "alice", domain.RoleStudent)

	f.notifier.EXPECT().SendBookingConfirmed(mock.Anything, mock.Anything, userID("alice"), mock.Anything).Return(nil).Once()

	booking, err := f.svc.RequestBooking(context.Background(), event.ID, "alice", map[string]string{"dietaryRequirements": "none"})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, event.ID, booking.EventID)
	assert.Equal(t, "none", booking.AdditionalInfo["dietaryRequirements"])
	assert.NotEmpty(t, booking.ID)

	places, err := f.svc.GetPlacesAvailable(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, *places)
}

func TestBookingService_RequestBooking_PolicyErrors(t *testing.T) {
	tests := []struct {
		name    string
		event   func(f *fixture, t *testing.T) *domain.Event
		userOpt func(u *domain.User)
		wantErr error
	}{
		{
			name:    "email not verified",
			event:   func(f *fixture, t *testing.T) *domain.Event { return f.addEvent(t, withPlaces(5)) },
			userOpt: func(u *domain.User) { u.EmailVerified = false },
			wantErr: domain.ErrEmailMustBeVerified,
		},
		{
			name: "booking deadline passed",
			event: func(f *fixture, t *testing.T) *domain.Event {
				return f.addEvent(t, withPlaces(5), func(e *domain.Event) {
					e.BookingDeadline = pointer.ToTime(f.now.Add(-time.Minute))
				})
			},
			wantErr: domain.ErrEventDeadlinePassed,
		},
		{
			name: "event in the past",
			event: func(f *fixture, t *testing.T) *domain.Event {
				return f.addEvent(t, func(e *domain.Event) {
					e.StartDate = f.now.Add(-48 * time.Hour)
					e.EndDate = nil
				})
			},
			wantErr: domain.ErrEventDeadlinePassed,
		},
		{
			name: "event cancelled",
			event: func(f *fixture, t *testing.T) *domain.Event {
				return f.addEvent(t, func(e *domain.Event) { e.Cancelled = true })
			},
			wantErr: domain.ErrEventIsCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			event := tt.event(f, t)

			u := &domain.User{ID: "bob", Email: "bob@example.com", Role: domain.RoleStudent, EmailVerified: true}
			if tt.userOpt != nil {
				tt.userOpt(u)
			}
			require.NoError(t, f.store.CreateUser(context.Background(), u))

			_, err := f.svc.RequestBooking(context.Background(), event.ID, "bob", nil)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.KindPolicy, domain.KindOf(err))
			_, err = f.store.GetBooking(context.Background(), event.ID, "bob")
			assert.ErrorIs(t, err, domain.ErrBookingNotFound)
		})
	}
}

func TestBookingService_RequestBooking_EventFull(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(1))
	f.addUser(t, "alice", domain.RoleTeacher)
	f.addUser(t, "bob", domain.RoleTeacher)

	_, err := f.svc.RequestBooking(context.Background(), event.ID, "alice", nil)
	require.NoError(t, err)

	_, err = f.svc.RequestBooking(context.Background(), event.ID, "bob", nil)

	require.ErrorIs(t, err, domain.ErrEventIsFull)
	var bookingErr *domain.BookingError
	require.ErrorAs(t, err, &bookingErr)
	assert.Equal(t, event.ID, bookingErr.EventID)
	assert.Equal(t, []string{"bob"}, bookingErr.UserIDs)
}

func TestBookingService_DuplicateRejectedByEveryOperation(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(1))
	f.addUser(t, "alice", domain.RoleStudent)

	_, err := f.svc.RequestBooking(context.Background(), event.ID, "alice", nil)
	require.NoError(t, err)

	ctx := context.Background()
	ops := map[string]func() error{
		"request booking": func() error {
			_, err := f.svc.RequestBooking(ctx, event.ID, "alice", nil)
			return err
		},
		"create booking": func() error {
			_, err := f.svc.CreateBooking(ctx, event.ID, "alice", nil, domain.BookingStatusConfirmed)
			return err
		},
		"create or add to waiting list": func() error {
			_, err := f.svc.CreateOrAddToWaitingList(ctx, event.ID, "alice", nil)
			return err
		},
		"request waiting list": func() error {
			_, err := f.svc.RequestWaitingListBooking(ctx, event.ID, "alice", nil)
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			require.ErrorIs(t, err, domain.ErrDuplicateBooking)
			assert.Equal(t, domain.KindStateConflict, domain.KindOf(err))
		})
	}
	assert.Equal(t, domain.BookingStatusConfirmed, f.status(t, event.ID, "alice"))
}

func TestBookingService_CreateOrAddToWaitingList_FallsBack(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(1))
	f.addUser(t, "alice", domain.RoleStudent)
	f.addUser(t, "bob", domain.RoleStudent)

	f.notifier.EXPECT().SendBookingConfirmed(mock.Anything, mock.Anything, userID("alice"), mock.Anything).Return(nil).Once()
	f.notifier.EXPECT().SendWaitlisted(mock.Anything, mock.Anything, userID("bob")).Return(nil).Once()

	first, err := f.svc.CreateOrAddToWaitingList(context.Background(), event.ID, "alice", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, first.Status)

	second, err := f.svc.CreateOrAddToWaitingList(context.Background(), event.ID, "bob", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaitingList, second.Status)
}

func TestBookingService_CreateOrAddToWaitingList_WaitingListOnlyEvent(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(10), func(e *domain.Event) { e.WaitingListOnly = true })
	f.addUser(t, "alice", domain.RoleStudent)

	booking, err := f.svc.CreateOrAddToWaitingList(context.Background(), event.ID, "alice", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaitingList, booking.Status)
}

func TestBookingService_CreateBooking(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(1))
	f.addUser(t, "alice", domain.RoleStudent)
	f.addUser(t, "bob", domain.RoleStudent)

	_, err := f.svc.CreateBooking(context.Background(), event.ID, "alice", nil, domain.BookingStatusConfirmed)
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(context.Background(), event.ID, "bob", nil, domain.BookingStatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrEventIsFull)

	_, err = f.svc.CreateBooking(context.Background(), event.ID, "bob", nil, domain.BookingStatusReserved)
	assert.ErrorIs(t, err, domain.ErrBookingUpdateInvalid)

	booking, err := f.svc.CreateBooking(context.Background(), event.ID, "bob", nil, domain.BookingStatusWaitingList)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaitingList, booking.Status)
}

func TestBookingService_RequestWaitingListBooking(t *testing.T) {
	t.Run("event is not full", func(t *testing.T) {
		f := newFixture(t)
		event := f.addEvent(t, withPlaces(2))
		f.addUser(t, "alice", domain.RoleStudent)

		_, err := f.svc.RequestWaitingListBooking(context.Background(), event.ID, "alice", nil)

		require.ErrorIs(t, err, domain.ErrEventIsNotFull)
		assert.Equal(t, domain.KindCapacity, domain.KindOf(err))
	})

	t.Run("event is full", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		event := f.addEvent(t, withPlaces(1))
		f.addUser(t, "alice", domain.RoleStudent)
		f.addUser(t, "bob", domain.RoleStudent)

		_, err := f.svc.RequestBooking(context.Background(), event.ID, "alice", nil)
		require.NoError(t, err)

		booking, err := f.svc.RequestWaitingListBooking(context.Background(), event.ID, "bob", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusWaitingList, booking.Status)
	})

	t.Run("booking deadline passed", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		event := f.addEvent(t, withPlaces(5), func(e *domain.Event) {
			e.BookingDeadline = pointer.ToTime(f.now.Add(-time.Hour))
		})
		f.addUser(t, "alice", domain.RoleStudent)

		booking, err := f.svc.RequestWaitingListBooking(context.Background(), event.ID, "alice", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusWaitingList, booking.Status)
	})

	t.Run("waiting list only event adds to group", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		event := f.addEvent(t, withPlaces(5), func(e *domain.Event) {
			e.WaitingListOnly = true
			e.GroupToken = "ABC123"
		})
		f.addUser(t, "alice", domain.RoleStudent)

		f.groups.EXPECT().AddUserViaToken(mock.Anything, "ABC123", userID("alice"), true).Return(nil).Once()

		_, err := f.svc.RequestWaitingListBooking(context.Background(), event.ID, "alice", nil)
		require.NoError(t, err)
	})

	t.Run("ordinary event only associates", func(t *testing.T) {
		f := newFixture(t)
		f.allowNotifications()
		event := f.addEvent(t, withPlaces(0), func(e *domain.Event) { e.GroupToken = "ABC123" })
		f.addUser(t, "alice", domain.RoleStudent)

		f.groups.EXPECT().AddUserViaToken(mock.Anything, "ABC123", userID("alice"), false).Return(nil).Once()

		_, err := f.svc.RequestWaitingListBooking(context.Background(), event.ID, "alice", nil)
		require.NoError(t, err)
	})
}

func TestBookingService_RequestBooking_FromWaitingList(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(2))
	f.addUser(t, "alice", domain.RoleStudent)

	_, err := f.svc.CreateBooking(context.Background(), event.ID, "alice", nil, domain.BookingStatusWaitingList)
	require.NoError(t, err)

	booking, err := f.svc.RequestBooking(context.Background(), event.ID, "alice", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
}

func TestBookingService_RequestBooking_FromWaitingListOnFullEvent(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(1))
	f.addUser(t, "alice", domain.RoleStudent)
	f.addUser(t, "bob", domain.RoleStudent)
	ctx := context.Background()

	first, err := f.svc.RequestBooking(ctx, event.ID, "alice", nil)
	require.NoError(t, err)
	require.Equal(t, domain.BookingStatusConfirmed, first.Status)

	second, err := f.svc.CreateOrAddToWaitingList(ctx, event.ID, "bob", nil)
	require.NoError(t, err)
	require.Equal(t, domain.BookingStatusWaitingList, second.Status)

	_, err = f.svc.RequestBooking(ctx, event.ID, "bob", nil)
	require.ErrorIs(t, err, domain.ErrEventIsFull)
	assert.Equal(t, domain.BookingStatusConfirmed, f.status(t, event.ID, "alice"))
	assert.Equal(t, domain.BookingStatusWaitingList, f.status(t, event.ID, "bob"))
}

func TestBookingService_PromoteToConfirmed(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(1), func(e *domain.Event) { e.GroupToken = "GRP" })
	f.addUser(t, "alice", domain.RoleStudent)
	f.addUser(t, "bob", domain.RoleStudent)
	f.addUser(t, "carol", domain.RoleStudent)
	f.addUser(t, "dave", domain.RoleStudent)

	f.groups.EXPECT().AddUserViaToken(mock.Anything, "GRP", mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().SendWaitlisted(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().SendPromoted(mock.Anything, mock.Anything, userID("bob"), mock.Anything).Return(nil).Once()
	f.notifier.EXPECT().SendReservationRequested(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().SendReservationRecap(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	ctx := context.Background()

	_, err := f.svc.PromoteToConfirmed(ctx, event.ID, "alice")
	require.ErrorIs(t, err, domain.ErrBookingUpdateInvalid, "missing booking")

	_, err = f.svc.CreateBooking(ctx, event.ID, "bob", nil, domain.BookingStatusWaitingList)
	require.NoError(t, err)
	booking, err := f.svc.PromoteToConfirmed(ctx, event.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	_, err = f.svc.PromoteToConfirmed(ctx, event.ID, "bob")
	require.ErrorIs(t, err, domain.ErrBookingUpdateInvalid, "already confirmed")

	_, err = f.svc.CreateBooking(ctx, event.ID, "carol", nil, domain.BookingStatusWaitingList)
	require.NoError(t, err)
	_, err = f.svc.PromoteToConfirmed(ctx, event.ID, "carol")
	require.ErrorIs(t, err, domain.ErrEventIsFull)

	other := f.addEvent(t, withPlaces(3))
	_, err = f.svc.RequestReservations(ctx, other.ID, []string{"dave"}, "alice")
	require.NoError(t, err)
	_, err = f.svc.PromoteToConfirmed(ctx, other.ID, "dave")
	require.ErrorIs(t, err, domain.ErrBookingUpdateInvalid, "reserved booking")
}

// Promotion only counts confirmed bookings, so waiting-list bookings that
// fill an ordinary event do not block it.
func TestBookingService_PromoteToConfirmed_IgnoresWaitingListCounts(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(2))
	f.addUser(t, "alice", domain.RoleStudent)
	f.addUser(t, "bob", domain.RoleStudent)

	ctx := context.Background()
	_, err := f.svc.CreateBooking(ctx, event.ID, "alice", nil, domain.BookingStatusWaitingList)
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(ctx, event.ID, "bob", nil, domain.BookingStatusWaitingList)
	require.NoError(t, err)

	places, err := f.svc.GetPlacesAvailable(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, *places)

	_, err = f.svc.PromoteToConfirmed(ctx, event.ID, "alice")
	require.NoError(t, err)
	_, err = f.svc.PromoteToConfirmed(ctx, event.ID, "bob")
	require.NoError(t, err)
}

func TestBookingService_CancelBooking_PromotesOldestWaiting(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(1))
	for _, id := range []string{"alice", "t1", "t2", "t3"} {
		f.addUser(t, id, domain.RoleStudent)
	}

	f.notifier.EXPECT().SendBookingConfirmed(mock.Anything, mock.Anything, userID("alice"), mock.Anything).Return(nil).Once()
	f.notifier.EXPECT().SendWaitlisted(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(3)
	f.notifier.EXPECT().SendCancelled(mock.Anything, mock.Anything, userID("alice"), (*domain.User)(nil)).Return(nil).Once()
	f.notifier.EXPECT().SendPromoted(mock.Anything, mock.Anything, userID("t1"), mock.Anything).Return(nil).Once()

	ctx := context.Background()
	_, err := f.svc.RequestBooking(ctx, event.ID, "alice", nil)
	require.NoError(t, err)
	for _, id := range []string{"t1", "t2", "t3"} {
		b, err := f.svc.CreateOrAddToWaitingList(ctx, event.ID, id, nil)
		require.NoError(t, err)
		require.Equal(t, domain.BookingStatusWaitingList, b.Status)
	}

	cancelled, err := f.svc.CancelBooking(ctx, event.ID, "alice")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, domain.BookingStatusConfirmed, f.status(t, event.ID, "t1"))
	assert.Equal(t, domain.BookingStatusWaitingList, f.status(t, event.ID, "t2"))
	assert.Equal(t, domain.BookingStatusWaitingList, f.status(t, event.ID, "t3"))
}

func TestBookingService_CancelBooking_FromWaitingListDoesNotPromote(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(1))
	for _, id := range []string{"alice", "bob", "carol"} {
		f.addUser(t, id, domain.RoleStudent)
	}

	ctx := context.Background()
	_, err := f.svc.RequestBooking(ctx, event.ID, "alice", nil)
	require.NoError(t, err)
	_, err = f.svc.CreateOrAddToWaitingList(ctx, event.ID, "bob", nil)
	require.NoError(t, err)
	_, err = f.svc.CreateOrAddToWaitingList(ctx, event.ID, "carol", nil)
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(ctx, event.ID, "bob")
	require.NoError(t, err)

	assert.Equal(t, domain.BookingStatusConfirmed, f.status(t, event.ID, "alice"))
	assert.Equal(t, domain.BookingStatusWaitingList, f.status(t, event.ID, "carol"))
}

func TestBookingService_CancelThenRejoin(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(1))
	f.addUser(t, "alice", domain.RoleStudent)

	ctx := context.Background()
	first, err := f.svc.RequestBooking(ctx, event.ID, "alice", nil)
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(ctx, event.ID, "alice")
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(ctx, event.ID, "alice")
	require.ErrorIs(t, err, domain.ErrBookingUpdateInvalid)

	again, err := f.svc.RequestBooking(ctx, event.ID, "alice", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, again.Status)
	assert.Equal(t, first.ID, again.ID)
}

func TestBookingService_CancelBooking_LeavesGroup(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(3), func(e *domain.Event) { e.GroupToken = "GRP" })
	f.addUser(t, "alice", domain.RoleStudent)
	group := &domain.Group{ID: "g1", OwnerID: "teacher"}

	f.groups.EXPECT().AddUserViaToken(mock.Anything, "GRP", userID("alice"), true).Return(nil).Once()
	f.groups.EXPECT().ResolveGroupForToken(mock.Anything, "GRP", userID("alice")).Return(group, nil).Once()
	f.groups.EXPECT().RemoveUser(mock.Anything, group, userID("alice")).Return(nil).Once()

	ctx := context.Background()
	_, err := f.svc.RequestBooking(ctx, event.ID, "alice", nil)
	require.NoError(t, err)
	f.dispatcher.Wait()

	_, err = f.svc.CancelBooking(ctx, event.ID, "alice")
	require.NoError(t, err)
}

func TestBookingService_RecordAttendance(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(3))
	f.addUser(t, "alice", domain.RoleStudent)

	ctx := context.Background()
	_, err := f.svc.RecordAttendance(ctx, event.ID, "alice", true)
	require.ErrorIs(t, err, domain.ErrBookingUpdateInvalid)

	_, err = f.svc.RequestBooking(ctx, event.ID, "alice", nil)
	require.NoError(t, err)

	booking, err := f.svc.RecordAttendance(ctx, event.ID, "alice", true)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAttended, booking.Status)

	_, err = f.svc.RecordAttendance(ctx, event.ID, "alice", true)
	require.ErrorIs(t, err, domain.ErrBookingUpdateInvalid)

	booking, err = f.svc.RecordAttendance(ctx, event.ID, "alice", false)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAbsent, booking.Status)
}

func TestBookingService_DeleteBooking(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(3), func(e *domain.Event) { e.GroupToken = "GRP" })
	f.addUser(t, "alice", domain.RoleStudent)
	group := &domain.Group{ID: "g1"}

	f.groups.EXPECT().AddUserViaToken(mock.Anything, "GRP", mock.Anything, true).Return(nil)
	f.groups.EXPECT().ResolveGroupForToken(mock.Anything, "GRP", userID("alice")).Return(group, nil).Once()
	f.groups.EXPECT().RemoveUser(mock.Anything, group, userID("alice")).Return(fmt.Errorf("groups unavailable")).Once()

	ctx := context.Background()
	_, err := f.svc.RequestBooking(ctx, event.ID, "alice", nil)
	require.NoError(t, err)

	require.NoError(t, f.store.SetEventCancelled(ctx, event.ID, true))

	require.NoError(t, f.svc.DeleteBooking(ctx, event.ID, "alice"))
	_, err = f.store.GetBooking(ctx, event.ID, "alice")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	err = f.svc.DeleteBooking(ctx, event.ID, "alice")
	assert.ErrorIs(t, err, domain.ErrBookingUpdateInvalid)
}

func TestBookingService_CancelledEventRejectsChanges(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(3))
	f.addUser(t, "alice", domain.RoleStudent)

	ctx := context.Background()
	_, err := f.svc.RequestBooking(ctx, event.ID, "alice", nil)
	require.NoError(t, err)
	require.NoError(t, f.store.SetEventCancelled(ctx, event.ID, true))

	_, err = f.svc.CancelBooking(ctx, event.ID, "alice")
	assert.ErrorIs(t, err, domain.ErrEventIsCancelled)
	_, err = f.svc.RecordAttendance(ctx, event.ID, "alice", true)
	assert.ErrorIs(t, err, domain.ErrEventIsCancelled)
	_, err = f.svc.CreateOrAddToWaitingList(ctx, event.ID, "alice", nil)
	assert.ErrorIs(t, err, domain.ErrEventIsCancelled)
}

func TestBookingService_StudentEventCountsStudentsOnly(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(2), withTags(domain.StudentEventTag, "physics"))
	f.addUser(t, "s1", domain.RoleStudent)
	f.addUser(t, "s2", domain.RoleTutor)
	f.addUser(t, "s3", domain.RoleStudent)
	f.addUser(t, "teacher", domain.RoleTeacher)

	ctx := context.Background()
	for _, id := range []string{"s1", "s2"} {
		_, err := f.svc.RequestBooking(ctx, event.ID, id, nil)
		require.NoError(t, err)
	}

	_, err := f.svc.RequestBooking(ctx, event.ID, "s3", nil)
	require.ErrorIs(t, err, domain.ErrEventIsFull)

	booking, err := f.svc.RequestBooking(ctx, event.ID, "teacher", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
}

func TestBookingService_PlacesAvailableIsClampedAtZero(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(3))
	ctx := context.Background()

	tx, err := f.store.LockEvent(ctx, event.ID)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		u := f.addUser(t, fmt.Sprintf("u%d", i), domain.RoleStudent)
		_, err = tx.CreateBooking(ctx, domain.NewBooking{EventID: event.ID, UserID: u.ID, Status: domain.BookingStatusConfirmed})
		require.NoError(t, err)
	}
	require.NoError(t, tx.Commit())

	places, err := f.svc.GetPlacesAvailable(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, places)
	assert.Equal(t, 0, *places)
}

func TestBookingService_UnlimitedEvent(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t)
	f.addUser(t, "alice", domain.RoleStudent)

	_, err := f.svc.RequestBooking(context.Background(), event.ID, "alice", nil)
	require.NoError(t, err)

	places, err := f.svc.GetPlacesAvailable(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Nil(t, places)
}

func TestBookingService_SideEffectFailuresDoNotFailBooking(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(1), func(e *domain.Event) { e.GroupToken = "GRP" })
	f.addUser(t, "alice", domain.RoleStudent)

	f.groups.EXPECT().AddUserViaToken(mock.Anything, "GRP", userID("alice"), true).Return(fmt.Errorf("invalid token")).Once()
	f.notifier.EXPECT().SendBookingConfirmed(mock.Anything, mock.Anything, userID("alice"), mock.Anything).Return(fmt.Errorf("telegram down")).Once()

	booking, err := f.svc.RequestBooking(context.Background(), event.ID, "alice", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
}

func TestBookingService_NoNotificationAfterEventEnd(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(3), func(e *domain.Event) {
		e.StartDate = f.now.Add(-5 * time.Hour)
		e.EndDate = pointer.ToTime(f.now.Add(-time.Hour))
	})
	f.addUser(t, "alice", domain.RoleStudent)

	booking, err := f.svc.CreateBooking(context.Background(), event.ID, "alice", nil, domain.BookingStatusConfirmed)
	require.NoError(t, err)

	_, err = f.svc.RecordAttendance(context.Background(), event.ID, booking.UserID, true)
	require.NoError(t, err)
}

// One place: A books, B is waitlisted by the fallback, A cancels and B takes
// the place.
func TestBookingService_SinglePlaceScenario(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(1))
	f.addUser(t, "A", domain.RoleStudent)
	f.addUser(t, "B", domain.RoleStudent)

	ctx := context.Background()
	a, err := f.svc.RequestBooking(ctx, event.ID, "A", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, a.Status)

	_, err = f.svc.RequestBooking(ctx, event.ID, "B", nil)
	require.ErrorIs(t, err, domain.ErrEventIsFull)

	b, err := f.svc.CreateOrAddToWaitingList(ctx, event.ID, "B", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaitingList, b.Status)

	_, err = f.svc.CancelBooking(ctx, event.ID, "A")
	require.NoError(t, err)

	assert.Equal(t, domain.BookingStatusConfirmed, f.status(t, event.ID, "B"))
	places, err := f.svc.GetPlacesAvailable(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, *places)
}

func TestBookingService_ConcurrentRequestsNeverOversell(t *testing.T) {
	const (
		places  = 10
		callers = 60
	)

	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(places))
	for i := 0; i < callers; i++ {
		f.addUser(t, fmt.Sprintf("user-%d", i), domain.RoleStudent)
	}

	var g errgroup.Group
	results := make([]error, callers)
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			_, results[i] = f.svc.RequestBooking(context.Background(), event.ID, fmt.Sprintf("user-%d", i), nil)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	confirmed, full := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			confirmed++
		case assert.ErrorIs(t, err, domain.ErrEventIsFull):
			full++
		}
	}
	assert.Equal(t, places, confirmed)
	assert.Equal(t, callers-places, full)

	counts, err := f.svc.GetBookingStatusCounts(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, places, counts[domain.BookingStatusConfirmed])
}

func TestBookingService_ConcurrentCancelAndBook(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(1))
	f.addUser(t, "holder", domain.RoleStudent)
	f.addUser(t, "waiting", domain.RoleStudent)
	f.addUser(t, "late", domain.RoleStudent)

	ctx := context.Background()
	_, err := f.svc.RequestBooking(ctx, event.ID, "holder", nil)
	require.NoError(t, err)
	_, err = f.svc.CreateOrAddToWaitingList(ctx, event.ID, "waiting", nil)
	require.NoError(t, err)

	var g errgroup.Group
	g.Go(func() error {
		_, err := f.svc.CancelBooking(ctx, event.ID, "holder")
		return err
	})
	var lateErr error
	g.Go(func() error {
		_, lateErr = f.svc.RequestBooking(ctx, event.ID, "late", nil)
		return nil
	})
	require.NoError(t, g.Wait())

	// The freed place goes to the waiting list, never to a racing request.
	require.ErrorIs(t, lateErr, domain.ErrEventIsFull)
	assert.Equal(t, domain.BookingStatusConfirmed, f.status(t, event.ID, "waiting"))
}
