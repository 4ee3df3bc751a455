package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	ucAdmin "github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
	ucPayment "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
)

const codeInvalidRequest = "invalid_request"

type businessStatus struct {
	status  int
	message string
}

var businessErrors = map[string]businessStatus{
	domain.CodeInvalidDate:    {http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD."},
	domain.CodePastDate:       {http.StatusBadRequest, "Cannot book appointments in the past."},
	domain.CodeSlotNotOffered: {http.StatusBadRequest, "This time slot is not offered on that day."},
	domain.CodeMissingName:    {http.StatusBadRequest, "Customer name is required."},
	domain.CodeMissingContact: {http.StatusBadRequest, "Please provide either phone number or email."},
	domain.CodeInvalidEmail:   {http.StatusBadRequest, "Email address is invalid."},
	domain.CodeEmailDomain:    {http.StatusBadRequest, "The email domain does not look valid."},

	domain.CodeSlotTaken:    {http.StatusConflict, "This time slot is already booked."},
	domain.CodeInvalidState: {http.StatusConflict, "The booking cannot change to that state."},
	domain.CodeAlreadyPaid:  {http.StatusConflict, "The booking is already paid."},

	domain.CodeBookingNotFound: {http.StatusNotFound, "Booking not found."},

	ucPayment.CodePaymentNotFound: {http.StatusNotFound, "Payment session not found or expired."},
	ucPayment.CodeInvalidStatus:   {http.StatusBadRequest, "Unknown payment status."},
	ucPayment.CodeGatewayFailed:   {http.StatusBadGateway, "The payment provider is unavailable."},

	ucAdmin.CodeInvalidCredentials: {http.StatusUnauthorized, "Invalid credentials."},
	ucAdmin.CodeLoginDisabled:      {http.StatusServiceUnavailable, "Admin login is not configured."},
	ucAdmin.CodeInvalidRange:       {http.StatusBadRequest, "Invalid date range."},
	ucAdmin.CodeStorageDisabled:    {http.StatusServiceUnavailable, "Object storage is not configured."},
	ucAdmin.CodeBarberNotFound:     {http.StatusNotFound, "Barber not found."},
	ucAdmin.CodeInvalidImage:       {http.StatusBadRequest, "Upload a JPEG, PNG or WebP image up to 8 MB."},
}

// writeError maps business errors onto their HTTP status and hides
// everything else behind a 500.
func writeError(c *gin.Context, err error) {
	if code, ok := httperr.CodeOf(err); ok {
		if bs, known := businessErrors[code]; known {
			httperr.Write(c, bs.status, code, bs.message)
			return
		}
		httperr.BadRequest(c, code, code)
		return
	}

	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Something went wrong.")
}
