package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventBookingCore/internal/capacity"
	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stpnv0/EventBookingCore/internal/service/ports"
)

type EventService struct {
	repo     ports.EventRepo
	bookings ports.BookingStore
}

func NewEventService(repo ports.EventRepo, bookings ports.BookingStore) *EventService {
	return &EventService{
		repo:     repo,
		bookings: bookings,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}
	if input.StartDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: start_date must be in the future", domain.ErrValidation)
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if input.BookingDeadline != nil && input.BookingDeadline.After(input.StartDate) {
		return nil, fmt.Errorf("%w: booking_deadline must not be after start_date", domain.ErrValidation)
	}
	if input.PlaceCount != nil && *input.PlaceCount < 0 {
		return nil, fmt.Errorf("%w: place_count must not be negative", domain.ErrValidation)
	}
	if input.GroupReservationLimit != nil && *input.GroupReservationLimit < 0 {
		return nil, fmt.Errorf("%w: group_reservation_limit must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:                    uuid.New().String(),
		Title:                 input.Title,
		PlaceCount:            input.PlaceCount,
		WaitingListOnly:       input.WaitingListOnly,
		StartDate:             input.StartDate.UTC(),
		EndDate:               input.EndDate,
		BookingDeadline:       input.BookingDeadline,
		GroupReservationLimit: input.GroupReservationLimit,
		Tags:                  input.Tags,
		GroupToken:            input.GroupToken,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if event.Tags == nil {
		event.Tags = []string{}
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// GetDetails returns the event with its places left, status totals and the
// bookings without additional information.
func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.bookings.StatusCounts(ctx, id, capacity.IncludeDeletedUsers(event, time.Now()))
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}

	bookings, err := s.bookings.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details := &domain.EventDetails{
		Event:           *event,
		PlacesAvailable: capacity.PlacesAvailable(event, counts, capacity.CountOnlyConfirmed(event)),
		StatusCounts:    make(map[string]int),
		Bookings:        make([]domain.Booking, len(bookings)),
	}
	for status, n := range counts.Totals() {
		details.StatusCounts[string(status)] = n
	}
	for i, b := range bookings {
		details.Bookings[i] = *b
		details.Bookings[i].AdditionalInfo = nil
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// SetCancelled flags the event as cancelled or reopens it. Existing bookings
// are kept; a cancelled event rejects every booking change.
func (s *EventService) SetCancelled(ctx context.Context, id string, cancelled bool) (*domain.Event, error) {
	if err := s.repo.SetCancelled(ctx, id, cancelled); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
