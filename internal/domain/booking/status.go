package booking

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// ===============================
// Validations
// ===============================

// CanCancel only lets confirmed bookings be cancelled.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(CodeInvalidState)
	}
	return nil
}

// CanStartPayment rejects cancelled or already-paid bookings.
func CanStartPayment(status Status, payment PaymentStatus) error {
	if status != StatusConfirmed {
		return httperr.ErrBusiness(CodeInvalidState)
	}
	if payment == PaymentPaid {
		return httperr.ErrBusiness(CodeAlreadyPaid)
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}

func InitialPaymentStatus() PaymentStatus {
	return PaymentPending
}
