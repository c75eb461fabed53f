package dto

import (
	"time"

	"github.com/stpnv0/EventBookingCore/internal/domain"
)

type EventResponse struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title"`
	PlaceCount            *int     `json:"place_count"`
	WaitingListOnly       bool     `json:"waiting_list_only"`
	Cancelled             bool     `json:"cancelled"`
	StartDate             string   `json:"start_date"`
	EndDate               *string  `json:"end_date,omitempty"`
	BookingDeadline       *string  `json:"booking_deadline,omitempty"`
	GroupReservationLimit *int     `json:"group_reservation_limit,omitempty"`
	Tags                  []string `json:"tags"`
	CreatedAt             string   `json:"created_at"`
}

type EventDetailsResponse struct {
	Event           EventResponse     `json:"event"`
	PlacesAvailable *int              `json:"places_available"`
	StatusCounts    map[string]int    `json:"status_counts"`
	Bookings        []BookingResponse `json:"bookings"`
}

// PlacesResponse carries a null count for events without a place limit.
type PlacesResponse struct {
	PlacesAvailable *int `json:"places_available"`
}

type BookingResponse struct {
	ID             string            `json:"id"`
	EventID        string            `json:"event_id"`
	UserID         string            `json:"user_id"`
	ReservedByID   *string           `json:"reserved_by_id,omitempty"`
	Status         string            `json:"status"`
	AdditionalInfo map[string]string `json:"additional_information,omitempty"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	GivenName      string `json:"given_name"`
	FamilyName     string `json:"family_name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	EmailVerified  bool   `json:"email_verified"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Kind    string   `json:"kind,omitempty"`
	UserIDs []string `json:"user_ids,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return EventResponse{
		ID:                    e.ID,
		Title:                 e.Title,
		PlaceCount:            e.PlaceCount,
		WaitingListOnly:       e.WaitingListOnly,
		Cancelled:             e.Cancelled,
		StartDate:             e.StartDate.Format(time.RFC3339),
		EndDate:               formatOptional(e.EndDate),
		BookingDeadline:       formatOptional(e.BookingDeadline),
		GroupReservationLimit: e.GroupReservationLimit,
		Tags:                  tags,
		CreatedAt:             e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return EventDetailsResponse{
		Event:           ToEventResponse(&d.Event),
		PlacesAvailable: d.PlacesAvailable,
		StatusCounts:    d.StatusCounts,
		Bookings:        bookings,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		EventID:        b.EventID,
		UserID:         b.UserID,
		ReservedByID:   b.ReservedByID,
		Status:         string(b.Status),
		AdditionalInfo: b.AdditionalInfo,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		GivenName:      u.GivenName,
		FamilyName:     u.FamilyName,
		Email:          u.Email,
		Role:           string(u.Role),
		EmailVerified:  u.EmailVerified,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
