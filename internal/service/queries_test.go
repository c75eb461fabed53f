package service

import (
	"context"
	"errors"
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
)

func TestBookingService_Queries(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(5))
	other := f.addEvent(t, withPlaces(5))
	f.addUser(t, "teach", domain.RoleTeacher)
	f.addUser(t, "s1", domain.RoleStudent)
	f.addUser(t, "s2", domain.RoleStudent)

	info := map[string]string{"emergencyName": "Jo"}
	f.insert(t, event.ID, "s1", domain.BookingStatusConfirmed, nil, info)
	f.insert(t, event.ID, "s2", domain.BookingStatusReserved, pointer.ToString("teach"), info)
	f.insert(t, other.ID, "s1", domain.BookingStatusWaitingList, nil, nil)

	ctx := context.Background()

	public, err := f.svc.ListBookingsByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, public, 2)
	for _, b := range public {
		assert.Nil(t, b.AdditionalInfo)
	}

	admin, err := f.svc.AdminListBookingsByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, admin, 2)
	assert.Equal(t, "Jo", admin[0].AdditionalInfo["emergencyName"])

	states, err := f.svc.GetEventStatesForUser(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.BookingStatus{
		event.ID: domain.BookingStatusConfirmed,
		other.ID: domain.BookingStatusWaitingList,
	}, states)

	byUser, err := f.svc.ListByUser(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	counts, err := f.svc.GetBookingStatusCounts(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[domain.BookingStatusConfirmed])
	assert.Equal(t, 1, counts[domain.BookingStatusReserved])

	places, err := f.svc.GetPlacesAvailable(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, *places)

	_, err = f.svc.GetBooking(ctx, event.ID, "teach")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	_, err = f.svc.GetPlacesAvailable(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_DeletedUsersOnFutureEvents(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(2))
	f.addUser(t, "s1", domain.RoleStudent)
	f.addUser(t, "s2", domain.RoleStudent)
	f.insert(t, event.ID, "s1", domain.BookingStatusConfirmed, nil, nil)
	f.insert(t, event.ID, "s2", domain.BookingStatusConfirmed, nil, nil)

	ctx := context.Background()
	require.NoError(t, f.store.MarkUserDeleted(ctx, "s2"))

	places, err := f.svc.GetPlacesAvailable(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, *places)

	counts, err := f.svc.GetBookingStatusCounts(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[domain.BookingStatusConfirmed])
}

func newStoreFailureService(t *testing.T, store *mocks.MockBookingStore) (*BookingService, *domain.Event) {
	t.Helper()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	log := newTestLogger(t)

	mem := memory.New()
	event := &domain.Event{Title: "Talk", StartDate: now.Add(48 * time.Hour), PlaceCount: pointer.ToInt(5)}
	require.NoError(t, mem.CreateEvent(context.Background(), event))
	require.NoError(t, mem.CreateUser(context.Background(), &domain.User{
		ID: "s1", Email: "s1@example.com", Role: domain.RoleStudent, EmailVerified: true,
	}))

	d := dispatch.New(1, time.Second, log)
	t.Cleanup(d.Wait)

	svc := NewBookingService(store, mem.Events(), mem.Users(),
		mocks.NewMockGroupMembership(t), mocks.NewMockNotifier(t), d,
		BookingConfig{}, log, WithClock(func() time.Time { return now }))
	return svc, event
}

func TestBookingService_LockFailureIsInfrastructure(t *testing.T) {
	store := mocks.NewMockBookingStore(t)
	svc, event := newStoreFailureService(t, store)

	store.EXPECT().LockEvent(mock.Anything, event.ID).Return(nil, errors.New("connection refused")).Once()

	_, err := svc.RequestBooking(context.Background(), event.ID, "s1", nil)

	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, domain.KindInfrastructure, domain.KindOf(err))
}

func TestBookingService_CommitFailureReportsNoBooking(t *testing.T) {
	store := mocks.NewMockBookingStore(t)
	tx := mocks.NewMockEventTx(t)
	svc, event := newStoreFailureService(t, store)

	store.EXPECT().LockEvent(mock.Anything, event.ID).Return(tx, nil).Once()
	tx.EXPECT().GetBooking(mock.Anything, event.ID, "s1").Return(nil, domain.ErrBookingNotFound).Once()
	tx.EXPECT().StatusCounts(mock.Anything, event.ID, false).Return(domain.StatusCounts{}, nil).Once()
	tx.EXPECT().CreateBooking(mock.Anything, mock.MatchedBy(func(nb domain.NewBooking) bool {
		return nb.UserID == "s1" && nb.Status == domain.BookingStatusConfirmed
	})).Return(&domain.Booking{ID: "b1", EventID: event.ID, UserID: "s1", Status: domain.BookingStatusConfirmed}, nil).Once()
	tx.EXPECT().Commit().Return(errors.New("serialization failure")).Once()
	tx.EXPECT().Rollback().Return(nil).Once()

	booking, err := svc.RequestBooking(context.Background(), event.ID, "s1", nil)

	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Nil(t, booking)
}

func TestBookingService_BusinessErrorRollsBack(t *testing.T) {
	store := mocks.NewMockBookingStore(t)
	tx := mocks.NewMockEventTx(t)
	svc, event := newStoreFailureService(t, store)

	store.EXPECT().LockEvent(mock.Anything, event.ID).Return(tx, nil).Once()
	tx.EXPECT().GetBooking(mock.Anything, event.ID, "s1").
		Return(&domain.Booking{EventID: event.ID, UserID: "s1", Status: domain.BookingStatusAttended}, nil).Once()
	tx.EXPECT().Rollback().Return(nil).Once()

	_, err := svc.RequestBooking(context.Background(), event.ID, "s1", nil)

	require.ErrorIs(t, err, domain.ErrDuplicateBooking)
}

func TestBookingService_StoreReadFailure(t *testing.T) {
	store := mocks.NewMockBookingStore(t)
	svc, event := newStoreFailureService(t, store)

	store.EXPECT().StatusCounts(mock.Anything, event.ID, false).Return(nil, errors.New("timeout")).Once()
	store.EXPECT().ListExpiredReservations(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

	_, err := svc.GetPlacesAvailable(context.Background(), event.ID)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.CancelExpiredReservations(context.Background())
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestBookingService_RepositoryContractViolationPanics(t *testing.T) {
	log := newTestLogger(t)
	events := mocks.NewMockEventRepo(t)
	d := dispatch.New(1, time.Second, log)
	t.Cleanup(d.Wait)

	svc := NewBookingService(mocks.NewMockBookingStore(t), events, memory.New().Users(),
		mocks.NewMockGroupMembership(t), mocks.NewMockNotifier(t), d, BookingConfig{}, log)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(nil, nil).Once()

	assert.Panics(t, func() {
		_, _ = svc.RequestBooking(context.Background(), "e1", "s1", nil)
	})
}

func TestBookingService_CapacityCandidate_MissingUserCountsAsStudent(t *testing.T) {
	log := newTestLogger(t)
	users := mocks.NewMockUserRepo(t)
	d := dispatch.New(1, time.Second, log)
	t.Cleanup(d.Wait)

	svc := NewBookingService(mocks.NewMockBookingStore(t), memory.New().Events(), users,
		mocks.NewMockGroupMembership(t), mocks.NewMockNotifier(t), d, BookingConfig{}, log)
	event := &domain.Event{ID: "e1", PlaceCount: pointer.ToInt(1)}

	users.EXPECT().GetByID(mock.Anything, "gone").Return(nil, nil).Once()
	users.EXPECT().GetByID(mock.Anything, "down").Return(nil, errors.New("connection refused")).Once()

	for _, id := range []string{"gone", "down"} {
		candidate := svc.capacityCandidate(context.Background(), event, id)
		require.NotNil(t, candidate)
		assert.Equal(t, id, candidate.ID)
		assert.Equal(t, domain.RoleStudent, candidate.Role)
	}
}
