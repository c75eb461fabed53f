package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed   BookingStatus = "CONFIRMED"
	BookingStatusWaitingList BookingStatus = "WAITING_LIST"
	BookingStatusReserved    BookingStatus = "RESERVED"
	BookingStatusCancelled   BookingStatus = "CANCELLED"
	BookingStatusAttended    BookingStatus = "ATTENDED"
	BookingStatusAbsent      BookingStatus = "ABSENT"
)

var AllStatuses = []BookingStatus{
	BookingStatusConfirmed,
	BookingStatusWaitingList,
	BookingStatusReserved,
	BookingStatusCancelled,
	BookingStatusAttended,
	BookingStatusAbsent,
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
}

// OccupiesPlace reports whether a booking in this status counts toward an
// event's capacity.
func (s BookingStatus) OccupiesPlace(countOnlyConfirmed bool) bool {
	switch s {
	case BookingStatusConfirmed:
		return true
	case BookingStatusWaitingList, BookingStatusReserved:
		return !countOnlyConfirmed
	default:
		return false
	}
}

// Additional information keys written by the booking core itself.
const (
	InfoReservationCloseDate = "reservationCloseDate"
)

// PersonalInfoKeys are scrubbed from additional information once an event is
// old enough.
var PersonalInfoKeys = []string{
	"emergencyName",
	"emergencyNumber",
	"accessibilityRequirements",
	"medicalRequirements",
}

const RemovedValue = "[REMOVED]"

// ReservationCloseLayout matches the format of reservationCloseDate values.
const ReservationCloseLayout = "2006-01-02T15:04:05.000Z07:00"

type Booking struct {
	ID             string            `json:"id"`
	EventID        string            `json:"event_id"`
	UserID         string            `json:"user_id"`
	ReservedByID   *string           `json:"reserved_by_id,omitempty"`
	Status         BookingStatus     `json:"status"`
	AdditionalInfo map[string]string `json:"additional_information,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ReservationCloseDate returns the parsed reservationCloseDate, if any.
func (b *Booking) ReservationCloseDate() (time.Time, bool) {
	raw, ok := b.AdditionalInfo[InfoReservationCloseDate]
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(ReservationCloseLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NewBooking is the input to a store insert.
type NewBooking struct {
	EventID        string
	UserID         string
	ReservedByID   *string
	Status         BookingStatus
	AdditionalInfo map[string]string
}

// StatusUpdate is the input to a store status change. A nil AdditionalInfo
// keeps the stored value, a nil ReservedByID keeps the stored reserver.
type StatusUpdate struct {
	Status         BookingStatus
	ReservedByID   *string
	AdditionalInfo map[string]string
}

// StatusCounts holds booking counts per status, split by the booked user's role.
type StatusCounts map[BookingStatus]map[Role]int

func (c StatusCounts) Add(status BookingStatus, role Role, n int) {
	byRole, ok := c[status]
	if !ok {
		byRole = make(map[Role]int)
		c[status] = byRole
	}
	byRole[role] += n
}

// Totals collapses the role split.
func (c StatusCounts) Totals() map[BookingStatus]int {
	res := make(map[BookingStatus]int, len(c))
	for status, byRole := range c {
		for _, n := range byRole {
			res[status] += n
		}
	}
	return res
}
