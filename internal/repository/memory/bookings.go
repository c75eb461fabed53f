package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stpnv0/EventBookingCore/internal/service/ports"
)

func bookingKey(eventID, userID string) string {
	return eventID + "/" + userID
}

// LockEvent waits for the event's lock or for ctx to be done.
func (s *Store) LockEvent(ctx context.Context, eventID string) (ports.EventTx, error) {
	sem := s.eventLock(eventID)

	select {
	case sem <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("lock event %s: %w", eventID, ctx.Err())
	}

	return &eventTx{store: s, eventID: eventID, release: func() { <-sem }}, nil
}

func (s *Store) eventLock(eventID string) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	sem, ok := s.locks[eventID]
	if !ok {
		sem = make(chan struct{}, 1)
		s.locks[eventID] = sem
	}
	return sem
}

func (s *Store) GetBooking(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getBooking(eventID, userID)
}

func (s *Store) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(r *bookingRow) bool { return r.booking.EventID == eventID }), nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(r *bookingRow) bool { return r.booking.UserID == userID }), nil
}

func (s *Store) ListReservationsByReserver(ctx context.Context, reserverID string) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(r *bookingRow) bool {
		return r.booking.ReservedByID != nil && *r.booking.ReservedByID == reserverID
	}), nil
}

func (s *Store) StatusCounts(ctx context.Context, eventID string, includeDeletedUsers bool) (domain.StatusCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusCounts(eventID, includeDeletedUsers), nil
}

func (s *Store) ListExpiredReservations(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(r *bookingRow) bool {
		if r.booking.Status != domain.BookingStatusReserved {
			return false
		}
		closeDate, ok := r.booking.ReservationCloseDate()
		return ok && closeDate.Before(now)
	}), nil
}

func (s *Store) DeleteAdditionalInformation(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.bookings {
		if r.booking.UserID == userID {
			r.booking.AdditionalInfo = nil
			r.booking.UpdatedAt = s.now()
		}
	}
	return nil
}

func (s *Store) ScrubPersonalInformation(ctx context.Context, endedBefore time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var scrubbed int64
	for _, r := range s.bookings {
		if r.piiRemoved {
			continue
		}
		e, ok := s.events[r.booking.EventID]
		if !ok {
			continue
		}
		ended := e.StartDate
		if e.EndDate != nil {
			ended = *e.EndDate
		}
		if !ended.Before(endedBefore) {
			continue
		}

		for _, key := range domain.PersonalInfoKeys {
			if _, ok := r.booking.AdditionalInfo[key]; ok {
				r.booking.AdditionalInfo[key] = domain.RemovedValue
			}
		}
		r.piiRemoved = true
		scrubbed++
	}
	return scrubbed, nil
}

// The helpers below expect s.mu to be held.

func (s *Store) getBooking(eventID, userID string) (*domain.Booking, error) {
	r, ok := s.bookings[bookingKey(eventID, userID)]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(&r.booking), nil
}

// filter returns matching bookings oldest first.
func (s *Store) filter(match func(*bookingRow) bool) []*domain.Booking {
	rows := make([]*bookingRow, 0)
	for _, r := range s.bookings {
		if match(r) {
			rows = append(rows, r)
		}
	}
	slices.SortFunc(rows, func(a, b *bookingRow) int {
		if c := a.booking.CreatedAt.Compare(b.booking.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	res := make([]*domain.Booking, 0, len(rows))
	for _, r := range rows {
		res = append(res, cloneBooking(&r.booking))
	}
	return res
}

// statusCounts skips bookings whose user is unknown, like an inner join.
func (s *Store) statusCounts(eventID string, includeDeletedUsers bool) domain.StatusCounts {
	counts := make(domain.StatusCounts)
	for _, r := range s.bookings {
		if r.booking.EventID != eventID {
			continue
		}
		u, ok := s.users[r.booking.UserID]
		if !ok || (u.Deleted && !includeDeletedUsers) {
			continue
		}
		counts.Add(r.booking.Status, u.Role, 1)
	}
	return counts
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	cp := *b
	cp.AdditionalInfo = maps.Clone(b.AdditionalInfo)
	if b.ReservedByID != nil {
		id := *b.ReservedByID
		cp.ReservedByID = &id
	}
	return &cp
}
