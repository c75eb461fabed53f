package handler

import (
	"net/http"

	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stpnv0/EventBookingCore/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) RequestBooking(c *ginext.Context) {
	eventID, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.RequestBooking(c.Request.Context(), eventID, req.UserID, req.AdditionalInfo)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) RequestWaitingList(c *ginext.Context) {
	eventID, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.RequestWaitingListBooking(c.Request.Context(), eventID, req.UserID, req.AdditionalInfo)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) RequestReservations(c *ginext.Context) {
	eventID, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookings, err := h.bookingService.RequestReservations(c.Request.Context(), eventID, req.UserIDs, req.ReservingUserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponses(bookings))
}

func (h *Handler) AdminCreateBooking(c *ginext.Context) {
	eventID, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.AdminBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var (
		booking *domain.Booking
		err     error
	)
	if req.Status == "" {
		booking, err = h.bookingService.CreateOrAddToWaitingList(c.Request.Context(), eventID, req.UserID, req.AdditionalInfo)
	} else {
		var status domain.BookingStatus
		status, err = domain.ParseBookingStatus(req.Status)
		if err == nil {
			booking, err = h.bookingService.CreateBooking(c.Request.Context(), eventID, req.UserID, req.AdditionalInfo, status)
		}
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListEventBookings(c *ginext.Context) {
	eventID, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.AdminListBookingsByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	eventID, userID, ok := bookingPath(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), eventID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) PromoteBooking(c *ginext.Context) {
	eventID, userID, ok := bookingPath(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.PromoteToConfirmed(c.Request.Context(), eventID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	eventID, userID, ok := bookingPath(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), eventID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RecordAttendance(c *ginext.Context) {
	eventID, userID, ok := bookingPath(c)
	if !ok {
		return
	}

	var req dto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.RecordAttendance(c.Request.Context(), eventID, userID, *req.Attended)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	eventID, userID, ok := bookingPath(c)
	if !ok {
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), eventID, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ResendNotification(c *ginext.Context) {
	eventID, userID, ok := bookingPath(c)
	if !ok {
		return
	}

	if err := h.bookingService.ResendNotification(c.Request.Context(), eventID, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, ginext.H{"status": "sent"})
}

// User scoped bookings

func (h *Handler) GetUserEventStates(c *ginext.Context) {
	userID, ok := pathID(c, "id", "invalid user id")
	if !ok {
		return
	}

	states, err := h.bookingService.GetEventStatesForUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, states)
}

func (h *Handler) GetUserReservations(c *ginext.Context) {
	userID, ok := pathID(c, "id", "invalid user id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListReservationsByReserver(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) DeleteUserBookingInformation(c *ginext.Context) {
	userID, ok := pathID(c, "id", "invalid user id")
	if !ok {
		return
	}

	if err := h.bookingService.DeleteUserAdditionalInformation(c.Request.Context(), userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func bookingPath(c *ginext.Context) (eventID, userID string, ok bool) {
	if eventID, ok = pathID(c, "id", "invalid event id"); !ok {
		return "", "", false
	}
	if userID, ok = pathID(c, "user_id", "invalid user id"); !ok {
		return "", "", false
	}
	return eventID, userID, true
}
