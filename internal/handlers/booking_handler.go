package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	getTimeSlots *ucBooking.GetTimeSlots
	create       *ucBooking.CreateBooking
	get          *ucBooking.GetBooking
	list         *ucBooking.ListBookings
	cancel       *ucBooking.CancelBooking
}

func NewBookingHandler(
	getTimeSlots *ucBooking.GetTimeSlots,
	create *ucBooking.CreateBooking,
	get *ucBooking.GetBooking,
	list *ucBooking.ListBookings,
	cancel *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		getTimeSlots: getTimeSlots,
		create:       create,
		get:          get,
		list:         list,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`

	BarberID string `json:"barber_id"`
	Date     string `json:"date"`      // YYYY-MM-DD
	TimeSlot string `json:"time_slot"` // HH:MM

	ServiceID       string  `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	ServiceDuration int     `json:"service_duration"`
}

// ======================================================
// ROOT
// ======================================================

func (h *BookingHandler) Root(c *gin.Context) {
	httpresp.Message(c, "Barber Booking API")
}

// ======================================================
// TIME SLOTS
// ======================================================

func (h *BookingHandler) TimeSlots(c *gin.Context) {
	slots, err := h.getTimeSlots.Execute(
		c.Request.Context(),
		c.Query("barber_id"),
		c.Param("date"),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, codeInvalidRequest, "Invalid request body.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Email:           req.Email,
		BarberID:        req.BarberID,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		ServiceID:       req.ServiceID,
		ServiceName:     req.ServiceName,
		ServicePrice:    req.ServicePrice,
		ServiceDuration: req.ServiceDuration,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.Execute(c.Request.Context(), ucBooking.ListBookingsInput{
		Date:     c.Query("date"),
		BarberID: c.Query("barber_id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	if _, err := h.cancel.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Message(c, "Booking cancelled successfully")
}
