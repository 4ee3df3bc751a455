package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	now   timezone.Clock
	audit Auditor
}

func NewCancelBooking(
	repo domain.Repository,
	now timezone.Clock,
	auditor Auditor,
) *CancelBooking {
	if auditor == nil {
		auditor = noopAuditor{}
	}
	return &CancelBooking{
		repo:  repo,
		now:   now,
		audit: auditor,
	}
}

// Execute moves a confirmed booking to cancelled, which frees its slot.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(b, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingCancelled()

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorCustomer,
		Action:   audit.ActionBookingCancelled,
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
