package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stpnv0/EventBookingCore/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	SetCancelled(ctx context.Context, id string, cancelled bool) (*domain.Event, error)
}

type BookingSvc interface {
	RequestBooking(ctx context.Context, eventID, userID string, info map[string]string) (*domain.Booking, error)
	RequestWaitingListBooking(ctx context.Context, eventID, userID string, info map[string]string) (*domain.Booking, error)
	RequestReservations(ctx context.Context, eventID string, userIDs []string, reserverID string) ([]*domain.Booking, error)
	CreateOrAddToWaitingList(ctx context.Context, eventID, userID string, info map[string]string) (*domain.Booking, error)
	CreateBooking(ctx context.Context, eventID, userID string, info map[string]string, status domain.BookingStatus) (*domain.Booking, error)
	PromoteToConfirmed(ctx context.Context, eventID, userID string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, eventID, userID string) (*domain.Booking, error)
	RecordAttendance(ctx context.Context, eventID, userID string, attended bool) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, eventID, userID string) error
	ResendNotification(ctx context.Context, eventID, userID string) error

	GetPlacesAvailable(ctx context.Context, eventID string) (*int, error)
	GetBooking(ctx context.Context, eventID, userID string) (*domain.Booking, error)
	AdminListBookingsByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	GetEventStatesForUser(ctx context.Context, userID string) (map[string]domain.BookingStatus, error)
	ListReservationsByReserver(ctx context.Context, reserverID string) ([]*domain.Booking, error)
	DeleteUserAdditionalInformation(ctx context.Context, userID string) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
	userService    UserSvc
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
		userService:    userService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected RFC3339",
		})
		return
	}
	endDate, ok := parseOptionalTime(c, "end_date", req.EndDate)
	if !ok {
		return
	}
	deadline, ok := parseOptionalTime(c, "booking_deadline", req.BookingDeadline)
	if !ok {
		return
	}

	input := domain.CreateEventInput{
		Title:                 req.Title,
		PlaceCount:            req.PlaceCount,
		WaitingListOnly:       req.WaitingListOnly,
		StartDate:             startDate,
		EndDate:               endDate,
		BookingDeadline:       deadline,
		GroupReservationLimit: req.GroupReservationLimit,
		Tags:                  req.Tags,
		GroupToken:            req.GroupToken,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetEventCancelled(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.SetCancelledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.SetCancelled(c.Request.Context(), id, *req.Cancelled)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) GetPlacesAvailable(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	places, err := h.bookingService.GetPlacesAvailable(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PlacesResponse{PlacesAvailable: places})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		GivenName:      req.GivenName,
		FamilyName:     req.FamilyName,
		Email:          req.Email,
		Role:           domain.Role(req.Role),
		EmailVerified:  req.EmailVerified,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid user id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	kind := domain.KindOf(err)
	resp := dto.ErrorResponse{Error: err.Error(), Kind: kind.String()}
	var bookingErr *domain.BookingError
	if errors.As(err, &bookingErr) {
		resp.UserIDs = bookingErr.UserIDs
	}

	switch kind {
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, resp)

	case domain.KindPolicy:
		if errors.Is(err, domain.ErrEmailMustBeVerified) {
			c.JSON(http.StatusForbidden, resp)
			return
		}
		c.JSON(http.StatusConflict, resp)

	case domain.KindCapacity, domain.KindStateConflict:
		c.JSON(http.StatusConflict, resp)

	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, resp)

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func pathID(c *ginext.Context, name, msg string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func parseOptionalTime(c *ginext.Context, field string, raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid " + field + " format, expected RFC3339",
		})
		return nil, false
	}
	return &t, true
}
