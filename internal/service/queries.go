package service

import (
	"context"
	"errors"

	"github.com/stpnv0/EventBookingCore/internal/capacity"
	"github.com/stpnv0/EventBookingCore/internal/domain"
)

// GetPlacesAvailable returns the free places, nil for unlimited events. The
// read takes no lock, so the answer is advisory.
func (s *BookingService) GetPlacesAvailable(ctx context.Context, eventID string) (*int, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.placesAvailable(ctx, event)
}

func (s *BookingService) placesAvailable(ctx context.Context, event *domain.Event) (*int, error) {
	counts, err := s.store.StatusCounts(ctx, event.ID, capacity.IncludeDeletedUsers(event, s.now()))
	if err != nil {
		return nil, storeErr("status counts", err)
	}
	return capacity.PlacesAvailable(event, counts, capacity.CountOnlyConfirmed(event)), nil
}

// GetBookingStatusCounts reports bookings per status of users that still exist.
func (s *BookingService) GetBookingStatusCounts(ctx context.Context, eventID string) (map[domain.BookingStatus]int, error) {
	counts, err := s.store.StatusCounts(ctx, eventID, false)
	if err != nil {
		return nil, storeErr("status counts", err)
	}
	return counts.Totals(), nil
}

func (s *BookingService) GetBooking(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	b, err := s.store.GetBooking(ctx, eventID, userID)
	if err != nil {
		return nil, storeErr("get booking", err)
	}
	return b, nil
}

// ListBookingsByEvent hides additional information, see AdminListBookingsByEvent.
func (s *BookingService) ListBookingsByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	bookings, err := s.AdminListBookingsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		b.AdditionalInfo = nil
	}
	return bookings, nil
}

func (s *BookingService) AdminListBookingsByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	bookings, err := s.store.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, storeErr("list bookings by event", err)
	}
	return bookings, nil
}

// GetEventStatesForUser maps event id to the user's booking status there.
func (s *BookingService) GetEventStatesForUser(ctx context.Context, userID string) (map[string]domain.BookingStatus, error) {
	bookings, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("list bookings by user", err)
	}

	states := make(map[string]domain.BookingStatus, len(bookings))
	for _, b := range bookings {
		states[b.EventID] = b.Status
	}
	return states, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	bookings, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("list bookings by user", err)
	}
	return bookings, nil
}

func (s *BookingService) ListReservationsByReserver(ctx context.Context, reserverID string) ([]*domain.Booking, error) {
	bookings, err := s.store.ListReservationsByReserver(ctx, reserverID)
	if err != nil {
		return nil, storeErr("list reservations", err)
	}
	return bookings, nil
}

// IsReservationMadeBy reports whether reserverID made the reserved user's
// booking on the event.
func (s *BookingService) IsReservationMadeBy(ctx context.Context, reserverID, reservedUserID, eventID string) (bool, error) {
	b, err := s.store.GetBooking(ctx, eventID, reservedUserID)
	if errors.Is(err, domain.ErrBookingNotFound) {
		return false, nil
	}
	if err != nil {
		return false, storeErr("get booking", err)
	}
	return b.ReservedByID != nil && *b.ReservedByID == reserverID, nil
}
