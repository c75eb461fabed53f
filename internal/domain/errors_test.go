package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingError_WrapsSentinel(t *testing.T) {
	err := NewBookingError(ErrEventIsFull, "e1", "u1", "u2").WithReason("%d places requested", 2)

	assert.ErrorIs(t, err, ErrEventIsFull)
	assert.Equal(t, "event is full: 2 places requested (event e1, users u1,u2)", err.Error())

	wrapped := fmt.Errorf("request reservations: %w", err)
	var be *BookingError
	assert.True(t, errors.As(wrapped, &be))
	assert.Equal(t, []string{"u1", "u2"}, be.UserIDs)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindCapacity, KindOf(NewBookingError(ErrEventIsNotFull, "e1")))
	assert.Equal(t, KindStateConflict, KindOf(fmt.Errorf("x: %w", ErrDuplicateBooking)))
	assert.Equal(t, KindPolicy, KindOf(ErrEventIsCancelled))
	assert.Equal(t, KindNotFound, KindOf(ErrUserNotFound))
	assert.Equal(t, KindInfrastructure, KindOf(fmt.Errorf("lock event: %w", ErrStoreUnavailable)))
	assert.False(t, IsBusiness(errors.New("boom")))
	assert.True(t, IsBusiness(ErrEmailMustBeVerified))
}
