package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func StartPayment(b *models.Booking, reference string) error {
	if err := CanStartPayment(Status(b.Status), PaymentStatus(b.PaymentStatus)); err != nil {
		return err
	}

	b.PaymentStatus = string(PaymentPending)
	b.PaymentReference = reference
	return nil
}

// SettlePayment records a gateway outcome. A paid booking stays paid: a
// repeated success is a no-op and a later failure is already_paid. The
// booking status is not consulted, so a cancelled booking still records
// what the gateway charged.
func SettlePayment(b *models.Booking, paid bool) error {
	if PaymentStatus(b.PaymentStatus) == PaymentPaid {
		if paid {
			return nil
		}
		return httperr.ErrBusiness(CodeAlreadyPaid)
	}

	if paid {
		b.PaymentStatus = string(PaymentPaid)
		return nil
	}
	b.PaymentStatus = string(PaymentFailed)
	return nil
}
