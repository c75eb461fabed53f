package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// insert writes a booking without going through the service, so no side
// effects are triggered.
func (f *fixture) insert(t *testing.T, eventID, userID string, status domain.BookingStatus, reservedBy *string, info map[string]string) {
	t.Helper()
	ctx := context.Background()
	tx, err := f.store.LockEvent(ctx, eventID)
	require.NoError(t, err)
	defer tx.Rollback()

	_, err = tx.CreateBooking(ctx, domain.NewBooking{
		EventID:        eventID,
		UserID:         userID,
		ReservedByID:   reservedBy,
		Status:         status,
		AdditionalInfo: info,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
}

func TestBookingService_CancelExpiredReservations(t *testing.T) {
	f := newFixture(t)
	f.allowNotifications()
	event := f.addEvent(t, withPlaces(2), func(e *domain.Event) {
		e.StartDate = f.now.Add(30 * 24 * time.Hour)
		e.EndDate = nil
	})
	for _, id := range []string{"teach", "s1", "s2", "s3"} {
		f.addUser(t, id, domain.RoleStudent)
	}

	ctx := context.Background()
	_, err := f.svc.RequestReservations(ctx, event.ID, []string{"s1"}, "teach")
	require.NoError(t, err)
	f.dispatcher.Wait()

	f.now = f.now.Add(7 * 24 * time.Hour)
	_, err = f.svc.RequestReservations(ctx, event.ID, []string{"s3"}, "teach")
	require.NoError(t, err)
	waiting, err := f.svc.CreateOrAddToWaitingList(ctx, event.ID, "s2", nil)
	require.NoError(t, err)
	require.Equal(t, domain.BookingStatusWaitingList, waiting.Status)
	f.dispatcher.Wait()

	f.now = f.now.Add(8 * 24 * time.Hour)
	cancelled, err := f.svc.CancelExpiredReservations(ctx)

	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "s1", cancelled[0].UserID)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled[0].Status)
	assert.Equal(t, domain.BookingStatusConfirmed, f.status(t, event.ID, "s2"))
	assert.Equal(t, domain.BookingStatusReserved, f.status(t, event.ID, "s3"))

	cancelled, err = f.svc.CancelExpiredReservations(ctx)
	require.NoError(t, err)
	assert.Empty(t, cancelled)
}

func TestBookingService_CancelExpiredReservations_SkipsCancelledEvents(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(2))
	f.addUser(t, "s1", domain.RoleStudent)

	closed := f.now.Add(-time.Hour).Format(domain.ReservationCloseLayout)
	f.insert(t, event.ID, "s1", domain.BookingStatusReserved, pointer.ToString("teach"),
		map[string]string{domain.InfoReservationCloseDate: closed})
	require.NoError(t, f.store.SetEventCancelled(context.Background(), event.ID, true))

	cancelled, err := f.svc.CancelExpiredReservations(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cancelled)
	assert.Equal(t, domain.BookingStatusReserved, f.status(t, event.ID, "s1"))
}

func TestStillExpired(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	reserved := func(closeAt time.Time) *domain.Booking {
		return &domain.Booking{
			Status:         domain.BookingStatusReserved,
			AdditionalInfo: map[string]string{domain.InfoReservationCloseDate: closeAt.Format(domain.ReservationCloseLayout)},
		}
	}

	tests := []struct {
		name    string
		current *domain.Booking
		wantErr bool
	}{
		{name: "gone", current: nil, wantErr: true},
		{name: "confirmed meanwhile", current: &domain.Booking{Status: domain.BookingStatusConfirmed}, wantErr: true},
		{name: "close date missing", current: &domain.Booking{Status: domain.BookingStatusReserved}, wantErr: true},
		{name: "still open", current: reserved(now.Add(time.Hour)), wantErr: true},
		{name: "expired", current: reserved(now.Add(-time.Hour)), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := stillExpired("e1", "u1", now)(tt.current)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrBookingUpdateInvalid)
				assert.True(t, domain.IsBusiness(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBookingService_ScrubPersonalInformation(t *testing.T) {
	f := newFixture(t)
	old := f.addEvent(t, func(e *domain.Event) {
		e.StartDate = f.now.Add(-45 * 24 * time.Hour)
		e.EndDate = pointer.ToTime(f.now.Add(-44 * 24 * time.Hour))
	})
	recent := f.addEvent(t, func(e *domain.Event) {
		e.StartDate = f.now.Add(-3 * 24 * time.Hour)
		e.EndDate = pointer.ToTime(f.now.Add(-2 * 24 * time.Hour))
	})
	f.addUser(t, "s1", domain.RoleStudent)

	info := func() map[string]string {
		return map[string]string{
			"emergencyName":       "Jo Tester",
			"medicalRequirements": "asthma",
			"dietaryRequirements": "none",
		}
	}
	f.insert(t, old.ID, "s1", domain.BookingStatusAttended, nil, info())
	f.insert(t, recent.ID, "s1", domain.BookingStatusAttended, nil, info())

	ctx := context.Background()
	n, err := f.svc.ScrubPersonalInformation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	scrubbed, err := f.svc.GetBooking(ctx, old.ID, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.RemovedValue, scrubbed.AdditionalInfo["emergencyName"])
	assert.Equal(t, domain.RemovedValue, scrubbed.AdditionalInfo["medicalRequirements"])
	assert.Equal(t, "none", scrubbed.AdditionalInfo["dietaryRequirements"])
	assert.NotContains(t, scrubbed.AdditionalInfo, "emergencyNumber")

	kept, err := f.svc.GetBooking(ctx, recent.ID, "s1")
	require.NoError(t, err)
	assert.Equal(t, info(), kept.AdditionalInfo)

	n, err = f.svc.ScrubPersonalInformation(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBookingService_DeleteUserAdditionalInformation(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(3))
	f.addUser(t, "s1", domain.RoleStudent)
	f.insert(t, event.ID, "s1", domain.BookingStatusConfirmed, nil, map[string]string{"emergencyName": "Jo"})

	ctx := context.Background()
	require.NoError(t, f.svc.DeleteUserAdditionalInformation(ctx, "s1"))

	b, err := f.svc.GetBooking(ctx, event.ID, "s1")
	require.NoError(t, err)
	assert.Empty(t, b.AdditionalInfo)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)

	err = f.svc.DeleteUserAdditionalInformation(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_ResendNotification(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		expect  func(f *fixture)
		wantErr error
	}{
		{
			name:   "confirmed",
			status: domain.BookingStatusConfirmed,
			expect: func(f *fixture) {
				f.notifier.EXPECT().SendBookingConfirmed(mock.Anything, mock.Anything, userID("s1"), mock.Anything).Return(nil).Once()
			},
		},
		{
			name:   "waiting list",
			status: domain.BookingStatusWaitingList,
			expect: func(f *fixture) {
				f.notifier.EXPECT().SendWaitlisted(mock.Anything, mock.Anything, userID("s1")).Return(nil).Once()
			},
		},
		{
			name:   "cancelled",
			status: domain.BookingStatusCancelled,
			expect: func(f *fixture) {
				f.notifier.EXPECT().SendCancelled(mock.Anything, mock.Anything, userID("s1"), (*domain.User)(nil)).Return(nil).Once()
			},
		},
		{
			name:   "reserved",
			status: domain.BookingStatusReserved,
			expect: func(f *fixture) {
				f.notifier.EXPECT().SendReservationRequested(mock.Anything, mock.Anything, userID("s1"), "teach Tester").Return(nil).Once()
			},
		},
		{
			name:    "attended",
			status:  domain.BookingStatusAttended,
			expect:  func(*fixture) {},
			wantErr: domain.ErrBookingUpdateInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			event := f.addEvent(t, withPlaces(3))
			f.addUser(t, "teach", domain.RoleTeacher)
			f.addUser(t, "s1", domain.RoleStudent)

			var reservedBy *string
			if tt.status == domain.BookingStatusReserved {
				reservedBy = pointer.ToString("teach")
			}
			f.insert(t, event.ID, "s1", tt.status, reservedBy, nil)
			tt.expect(f)

			err := f.svc.ResendNotification(context.Background(), event.ID, "s1")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBookingService_ResendNotification_ReportsFailures(t *testing.T) {
	f := newFixture(t)
	event := f.addEvent(t, withPlaces(3))
	f.addUser(t, "s1", domain.RoleStudent)
	f.insert(t, event.ID, "s1", domain.BookingStatusConfirmed, nil, nil)

	sendErr := errors.New("telegram unavailable")
	f.notifier.EXPECT().SendBookingConfirmed(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(sendErr).Once()

	err := f.svc.ResendNotification(context.Background(), event.ID, "s1")
	require.ErrorIs(t, err, sendErr)

	err = f.svc.ResendNotification(context.Background(), event.ID, "s2")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
