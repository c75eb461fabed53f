package domain

import "fmt"

// Operation is a booking state machine trigger.
type Operation string

const (
	OpCreate             Operation = "create"
	OpRequestBooking     Operation = "request_booking"
	OpRequestWaitingList Operation = "request_waiting_list"
	OpRequestReservation Operation = "request_reservation"
	OpPromote            Operation = "promote"
	OpCancel             Operation = "cancel"
	OpRecordAttendance   Operation = "record_attendance"
)

// Transition is a validated move of one booking. From is empty when the
// user has no booking on the event yet.
type Transition struct {
	Op   Operation
	From BookingStatus
	To   BookingStatus

	// Insert is set when no row exists and one has to be created.
	Insert bool
	// CheckCapacity is set when the move takes a place that is not already held.
	CheckCapacity bool
	// PromoteWaitingList is set when the move frees a place the oldest
	// waiting-list booking should take.
	PromoteWaitingList bool
}

func (t Transition) Rejoin() bool {
	return t.From == BookingStatusCancelled
}

// Plan validates applying op with the given target to the current booking
// (nil when none exists). Errors wrap ErrDuplicateBooking or
// ErrBookingUpdateInvalid.
func Plan(op Operation, current *Booking, target BookingStatus) (Transition, error) {
	t := Transition{Op: op, To: target}
	if current != nil {
		t.From = current.Status
	}

	switch op {
	case OpCreate:
		if target != BookingStatusConfirmed && target != BookingStatusWaitingList {
			return t, updateInvalid("cannot create a booking with status %s", target)
		}
		switch t.From {
		case "":
			t.Insert = true
		case BookingStatusCancelled:
		default:
			return t, duplicate("user already has a %s booking", t.From)
		}
		t.CheckCapacity = target == BookingStatusConfirmed

	case OpRequestBooking:
		if target != BookingStatusConfirmed {
			return t, updateInvalid("request booking must target %s", BookingStatusConfirmed)
		}
		switch t.From {
		case "":
			t.Insert = true
			t.CheckCapacity = true
		case BookingStatusCancelled, BookingStatusWaitingList:
			t.CheckCapacity = true
		case BookingStatusReserved:
			// the reservation already holds the place
		default:
			return t, duplicate("user is already booked (%s)", t.From)
		}

	case OpRequestWaitingList:
		if target != BookingStatusWaitingList {
			return t, updateInvalid("waiting list request must target %s", BookingStatusWaitingList)
		}
		switch t.From {
		case "":
			t.Insert = true
		case BookingStatusCancelled:
		default:
			return t, duplicate("user is already on the waiting list, reserved or booked (%s)", t.From)
		}

	case OpRequestReservation:
		if target != BookingStatusReserved {
			return t, updateInvalid("reservation must target %s", BookingStatusReserved)
		}
		switch t.From {
		case "":
			t.Insert = true
		case BookingStatusCancelled:
		default:
			return t, duplicate("user is already reserved, on the waiting list or booked (%s)", t.From)
		}
		t.CheckCapacity = true

	case OpPromote:
		if target != BookingStatusConfirmed {
			return t, updateInvalid("promotion must target %s", BookingStatusConfirmed)
		}
		switch t.From {
		case "":
			return t, updateInvalid("unable to promote a booking that doesn't exist")
		case BookingStatusWaitingList, BookingStatusCancelled:
			t.CheckCapacity = true
		case BookingStatusConfirmed:
			return t, updateInvalid("unable to promote a booking that is CONFIRMED already")
		case BookingStatusReserved:
			return t, updateInvalid("unable to promote a RESERVED booking, the user must request the booking")
		default:
			return t, updateInvalid("unable to promote a booking in status %s", t.From)
		}

	case OpCancel:
		if target != BookingStatusCancelled {
			return t, updateInvalid("cancel must target %s", BookingStatusCancelled)
		}
		switch t.From {
		case "":
			return t, updateInvalid("unable to cancel a booking that doesn't exist")
		case BookingStatusConfirmed, BookingStatusReserved:
			t.PromoteWaitingList = true
		case BookingStatusWaitingList:
		case BookingStatusCancelled:
			return t, updateInvalid("booking is already CANCELLED")
		default:
			return t, updateInvalid("unable to cancel a booking in status %s", t.From)
		}

	case OpRecordAttendance:
		if target != BookingStatusAttended && target != BookingStatusAbsent {
			return t, updateInvalid("attendance must be %s or %s", BookingStatusAttended, BookingStatusAbsent)
		}
		switch t.From {
		case "":
			return t, updateInvalid("unable to record attendance for a booking that doesn't exist")
		case target:
			return t, updateInvalid("booking attendance is already registered as %s", target)
		}

	default:
		return t, updateInvalid("unknown operation %q", op)
	}

	return t, nil
}

func duplicate(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDuplicateBooking, fmt.Sprintf(format, args...))
}

func updateInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBookingUpdateInvalid, fmt.Sprintf(format, args...))
}
