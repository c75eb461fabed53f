package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrGroupNotFound   = errors.New("group not found")
)

// Capacity.
var (
	ErrEventIsFull           = errors.New("event is full")
	ErrEventIsNotFull        = errors.New("event is not full")
	ErrGroupReservationLimit = errors.New("group reservation limit exceeded")
)

// State conflicts.
var (
	ErrDuplicateBooking     = errors.New("duplicate booking")
	ErrBookingUpdateInvalid = errors.New("booking update invalid")
)

// Policy.
var (
	ErrEmailMustBeVerified = errors.New("email must be verified")
	ErrEventDeadlinePassed = errors.New("event deadline passed")
	ErrEventIsCancelled    = errors.New("event is cancelled")
)

var (
	ErrValidation       = errors.New("validation error")
	ErrEmailTaken       = errors.New("email already taken")
	ErrStoreUnavailable = errors.New("booking store unavailable")
	ErrTxDone           = errors.New("transaction already finished")
)

// BookingError reports a business condition together with the event and the
// users it concerns.
type BookingError struct {
	Err     error
	EventID string
	UserIDs []string
	Reason  string
}

func NewBookingError(err error, eventID string, userIDs ...string) *BookingError {
	return &BookingError{Err: err, EventID: eventID, UserIDs: userIDs}
}

func (e *BookingError) WithReason(format string, args ...any) *BookingError {
	e.Reason = fmt.Sprintf(format, args...)
	return e
}

func (e *BookingError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	fmt.Fprintf(&sb, " (event %s", e.EventID)
	switch len(e.UserIDs) {
	case 0:
	case 1:
		fmt.Fprintf(&sb, ", user %s", e.UserIDs[0])
	default:
		fmt.Fprintf(&sb, ", users %s", strings.Join(e.UserIDs, ","))
	}
	sb.WriteString(")")
	return sb.String()
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

type ErrorKind int

const (
	KindInfrastructure ErrorKind = iota
	KindCapacity
	KindStateConflict
	KindPolicy
	KindNotFound
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindCapacity:
		return "capacity"
	case KindStateConflict:
		return "state_conflict"
	case KindPolicy:
		return "policy"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "infrastructure"
	}
}

// KindOf classifies err. Anything not recognised is infrastructure.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrEventIsFull),
		errors.Is(err, ErrEventIsNotFull),
		errors.Is(err, ErrGroupReservationLimit):
		return KindCapacity
	case errors.Is(err, ErrDuplicateBooking),
		errors.Is(err, ErrBookingUpdateInvalid):
		return KindStateConflict
	case errors.Is(err, ErrEmailMustBeVerified),
		errors.Is(err, ErrEventDeadlinePassed),
		errors.Is(err, ErrEventIsCancelled):
		return KindPolicy
	case errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrGroupNotFound):
		return KindNotFound
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrEmailTaken):
		return KindValidation
	default:
		return KindInfrastructure
	}
}

// IsBusiness reports whether err is an expected condition rather than a failure.
func IsBusiness(err error) bool {
	return err != nil && KindOf(err) != KindInfrastructure
}
