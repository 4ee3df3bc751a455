package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute returns the booking regardless of its status.
func (uc *GetBooking) Execute(ctx context.Context, id string) (*models.Booking, error) {
	return uc.repo.GetBookingByID(ctx, id)
}
