package capacity

import (
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counts(entries ...any) domain.StatusCounts {
	c := domain.StatusCounts{}
	for i := 0; i+2 < len(entries); i += 3 {
		c.Add(entries[i].(domain.BookingStatus), entries[i+1].(domain.Role), entries[i+2].(int))
	}
	return c
}

func TestPlacesAvailable_Unlimited(t *testing.T) {
	event := &domain.Event{ID: "e1"}

	assert.Nil(t, PlacesAvailable(event, counts(domain.BookingStatusConfirmed, domain.RoleStudent, 10), false))
	assert.NoError(t, EnsureCapacity(event, nil, []*domain.User{{ID: "u1"}}, false))
}

func TestPlacesAvailable_OrdinaryEventCountsWaitingListAndReserved(t *testing.T) {
	event := &domain.Event{ID: "e1", PlaceCount: pointer.ToInt(10)}
	c := counts(
		domain.BookingStatusConfirmed, domain.RoleStudent, 2,
		domain.BookingStatusWaitingList, domain.RoleTeacher, 1,
		domain.BookingStatusReserved, domain.RoleStudent, 3,
		domain.BookingStatusCancelled, domain.RoleStudent, 4,
		domain.BookingStatusAttended, domain.RoleStudent, 1,
	)

	assert.Equal(t, 4, *PlacesAvailable(event, c, false))
	assert.Equal(t, 8, *PlacesAvailable(event, c, true))
}

func TestPlacesAvailable_StudentEventIgnoresOtherRoles(t *testing.T) {
	event := &domain.Event{ID: "e1", PlaceCount: pointer.ToInt(5), Tags: []string{"physics", domain.StudentEventTag}}
	c := counts(
		domain.BookingStatusConfirmed, domain.RoleStudent, 2,
		domain.BookingStatusConfirmed, domain.RoleTutor, 1,
		domain.BookingStatusConfirmed, domain.RoleTeacher, 7,
	)

	assert.Equal(t, 2, *PlacesAvailable(event, c, false))
}

func TestPlacesAvailable_NeverNegative(t *testing.T) {
	event := &domain.Event{ID: "e1", PlaceCount: pointer.ToInt(3)}
	c := counts(domain.BookingStatusConfirmed, domain.RoleStudent, 5)

	assert.Equal(t, 0, *PlacesAvailable(event, c, false))
}

func TestEnsureCapacity_Batch(t *testing.T) {
	event := &domain.Event{ID: "e1", PlaceCount: pointer.ToInt(2), Tags: []string{domain.StudentEventTag}}
	c := counts(domain.BookingStatusConfirmed, domain.RoleStudent, 1)

	teacher := &domain.User{ID: "t1", Role: domain.RoleTeacher}
	student := &domain.User{ID: "s1", Role: domain.RoleStudent}
	tutor := &domain.User{ID: "s2", Role: domain.RoleTutor}

	require.NoError(t, EnsureCapacity(event, c, []*domain.User{teacher, student}, false))

	err := EnsureCapacity(event, c, []*domain.User{student, tutor, teacher}, false)
	require.ErrorIs(t, err, domain.ErrEventIsFull)

	var be *domain.BookingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "e1", be.EventID)
	assert.Equal(t, []string{"s1", "s2", "t1"}, be.UserIDs)
}

func TestIncludeDeletedUsers(t *testing.T) {
	now := time.Now()

	assert.True(t, IncludeDeletedUsers(&domain.Event{StartDate: now.Add(-time.Hour)}, now))
	assert.False(t, IncludeDeletedUsers(&domain.Event{StartDate: now.Add(time.Hour)}, now))
}
