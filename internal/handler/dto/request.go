package dto

type CreateEventRequest struct {
	Title                 string   `json:"title" binding:"required"`
	PlaceCount            *int     `json:"place_count" binding:"omitempty,gte=0"`
	WaitingListOnly       bool     `json:"waiting_list_only"`
	StartDate             string   `json:"start_date" binding:"required"`
	EndDate               *string  `json:"end_date"`
	BookingDeadline       *string  `json:"booking_deadline"`
	GroupReservationLimit *int     `json:"group_reservation_limit" binding:"omitempty,gte=0"`
	Tags                  []string `json:"tags"`
	GroupToken            string   `json:"group_token"`
}

type SetCancelledRequest struct {
	Cancelled *bool `json:"cancelled" binding:"required"`
}

// BookingRequest is used for both booking and waiting list requests.
type BookingRequest struct {
	UserID         string            `json:"user_id" binding:"required,uuid"`
	AdditionalInfo map[string]string `json:"additional_information"`
}

type ReservationRequest struct {
	ReservingUserID string   `json:"reserving_user_id" binding:"required,uuid"`
	UserIDs         []string `json:"user_ids" binding:"required,min=1,dive,uuid"`
}

// AdminBookingRequest creates a booking bypassing deadline and verification
// checks. Without a status the user is booked or, when the event is full,
// put on the waiting list.
type AdminBookingRequest struct {
	UserID         string            `json:"user_id" binding:"required,uuid"`
	Status         string            `json:"status"`
	AdditionalInfo map[string]string `json:"additional_information"`
}

type AttendanceRequest struct {
	Attended *bool `json:"attended" binding:"required"`
}

type CreateUserRequest struct {
	GivenName      string `json:"given_name" binding:"required"`
	FamilyName     string `json:"family_name"`
	Email          string `json:"email" binding:"required,email"`
	Role           string `json:"role"`
	EmailVerified  bool   `json:"email_verified"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
