package domain

import (
	"slices"
	"time"
)

// StudentEventTag marks events whose capacity only counts students and tutors.
const StudentEventTag = "student"

type Event struct {
	ID                    string     `json:"id"`
	Title                 string     `json:"title"`
	PlaceCount            *int       `json:"place_count,omitempty"`
	WaitingListOnly       bool       `json:"waiting_list_only"`
	Cancelled             bool       `json:"cancelled"`
	StartDate             time.Time  `json:"start_date"`
	EndDate               *time.Time `json:"end_date,omitempty"`
	BookingDeadline       *time.Time `json:"booking_deadline,omitempty"`
	GroupReservationLimit *int       `json:"group_reservation_limit,omitempty"`
	Tags                  []string   `json:"tags"`
	GroupToken            string     `json:"group_token,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func (e *Event) IsStudentEvent() bool {
	return slices.Contains(e.Tags, StudentEventTag)
}

// HasEnded reports whether the event is over: the end date when set, the
// start date otherwise.
func (e *Event) HasEnded(now time.Time) bool {
	if e.EndDate != nil {
		return now.After(*e.EndDate)
	}
	return !e.StartDate.IsZero() && now.After(e.StartDate)
}

// HasStarted is used to decide whether bookings of deleted users still count.
func (e *Event) HasStarted(now time.Time) bool {
	return !e.StartDate.IsZero() && e.StartDate.Before(now)
}

func (e *Event) DeadlinePassed(now time.Time) bool {
	return e.BookingDeadline != nil && now.After(*e.BookingDeadline)
}

// NotifiableAt reports whether booking notifications still make sense: nobody
// is emailed about changes recorded after the event ended.
func (e *Event) NotifiableAt(now time.Time) bool {
	return e.EndDate == nil || now.Before(*e.EndDate)
}

type EventDetails struct {
	Event           Event          `json:"event"`
	PlacesAvailable *int           `json:"places_available"`
	StatusCounts    map[string]int `json:"status_counts"`
	Bookings        []Booking      `json:"bookings"`
}

type CreateEventInput struct {
	Title                 string
	PlaceCount            *int
	WaitingListOnly       bool
	StartDate             time.Time
	EndDate               *time.Time
	BookingDeadline       *time.Time
	GroupReservationLimit *int
	Tags                  []string
	GroupToken            string
}
