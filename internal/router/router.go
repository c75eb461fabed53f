package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	SetEventCancelled(c *ginext.Context)
	GetPlacesAvailable(c *ginext.Context)

	RequestBooking(c *ginext.Context)
	RequestWaitingList(c *ginext.Context)
	RequestReservations(c *ginext.Context)
	AdminCreateBooking(c *ginext.Context)
	ListEventBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	PromoteBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	RecordAttendance(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	ResendNotification(c *ginext.Context)

	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserEventStates(c *ginext.Context)
	GetUserReservations(c *ginext.Context)
	DeleteUserBookingInformation(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id/cancelled", h.SetEventCancelled)
		api.GET("/events/:id/places", h.GetPlacesAvailable)

		// Bookings
		api.POST("/events/:id/bookings", h.RequestBooking)
		api.GET("/events/:id/bookings", h.ListEventBookings)
		api.POST("/events/:id/waiting-list", h.RequestWaitingList)
		api.POST("/events/:id/reservations", h.RequestReservations)
		api.POST("/events/:id/admin/bookings", h.AdminCreateBooking)
		api.GET("/events/:id/bookings/:user_id", h.GetBooking)
		api.DELETE("/events/:id/bookings/:user_id", h.DeleteBooking)
		api.POST("/events/:id/bookings/:user_id/promote", h.PromoteBooking)
		api.POST("/events/:id/bookings/:user_id/cancel", h.CancelBooking)
		api.POST("/events/:id/bookings/:user_id/attendance", h.RecordAttendance)
		api.POST("/events/:id/bookings/:user_id/resend-notification", h.ResendNotification)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/bookings", h.GetUserEventStates)
		api.GET("/users/:id/reservations", h.GetUserReservations)
		api.DELETE("/users/:id/booking-information", h.DeleteUserBookingInformation)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
