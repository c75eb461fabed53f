// Package capacity computes how many places an event has left.
//
// Nothing here locks. Callers deciding whether a new booking fits must hold
// the event lock for the whole read-then-write sequence.
package capacity

import (
	"time"

	"github.com/stpnv0/EventBookingCore/internal/domain"
)

// PlacesAvailable returns the number of free places, or nil when the event
// has no place limit. The result is never negative so manual overbooking
// reads as a full event.
func PlacesAvailable(event *domain.Event, counts domain.StatusCounts, countOnlyConfirmed bool) *int {
	if event.PlaceCount == nil {
		return nil
	}

	occupied := 0
	for status, byRole := range counts {
		if !status.OccupiesPlace(countOnlyConfirmed) {
			continue
		}
		for role, n := range byRole {
			if CountsToward(event, role) {
				occupied += n
			}
		}
	}

	available := max(0, *event.PlaceCount-occupied)
	return &available
}

// CountOnlyConfirmed is the default counting rule for an event: waiting-list
// only events ignore waiting-list and reserved bookings.
func CountOnlyConfirmed(event *domain.Event) bool {
	return event.WaitingListOnly
}

// CountsToward reports whether a booking by a user with this role takes one
// of the event's places. Student events only count students and tutors.
func CountsToward(event *domain.Event, role domain.Role) bool {
	if !event.IsStudentEvent() {
		return true
	}
	return role == domain.RoleStudent || role == domain.RoleTutor
}

func RelevantCount(event *domain.Event, users []*domain.User) int {
	n := 0
	for _, u := range users {
		if CountsToward(event, u.Role) {
			n++
		}
	}
	return n
}

// IncludeDeletedUsers decides whether bookings of deleted accounts are
// counted: only once the event has started, so removed accounts never hold
// places on future events.
func IncludeDeletedUsers(event *domain.Event, now time.Time) bool {
	return event.HasStarted(now)
}

// EnsureCapacity fails with ErrEventIsFull when the candidates that count
// toward the event's capacity do not fit into the places left.
func EnsureCapacity(event *domain.Event, counts domain.StatusCounts, candidates []*domain.User, countOnlyConfirmed bool) error {
	available := PlacesAvailable(event, counts, countOnlyConfirmed)
	if available == nil {
		return nil
	}

	requested := RelevantCount(event, candidates)
	if *available-requested < 0 {
		ids := make([]string, 0, len(candidates))
		for _, u := range candidates {
			ids = append(ids, u.ID)
		}
		return domain.NewBookingError(domain.ErrEventIsFull, event.ID, ids...).
			WithReason("%d places requested, %d available", requested, *available)
	}

	return nil
}
