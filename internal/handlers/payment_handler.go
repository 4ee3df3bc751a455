package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucPayment "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
)

type PaymentHandler struct {
	payments *ucPayment.Service
}

func NewPaymentHandler(payments *ucPayment.Service) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type InitiatePaymentRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

type PaymentCallbackRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, codeInvalidRequest, "booking_id is required.")
		return
	}

	res, err := h.payments.Initiate(c.Request.Context(), req.BookingID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *PaymentHandler) Callback(c *gin.Context) {
	var req PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, codeInvalidRequest, "order_id and status are required.")
		return
	}

	res, err := h.payments.Callback(c.Request.Context(), req.OrderID, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *PaymentHandler) Status(c *gin.Context) {
	res, err := h.payments.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, res)
}
