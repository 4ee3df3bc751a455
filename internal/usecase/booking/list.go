package booking

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
)

type ListBookingsInput struct {
	Date     string
	BarberID string
}

type ListBookings struct {
	repo   domain.Repository
	engine *domain.Engine
}

func NewListBookings(repo domain.Repository, engine *domain.Engine) *ListBookings {
	return &ListBookings{repo: repo, engine: engine}
}

// Execute lists non-cancelled bookings ordered by date and time.
func (uc *ListBookings) Execute(
	ctx context.Context,
	in ListBookingsInput,
) ([]dto.BookingListDTO, error) {

	filter := domain.ListFilter{}

	if in.Date != "" {
		if _, err := uc.engine.ParseDate(in.Date); err != nil {
			return nil, err
		}
		filter.Date = in.Date
	}
	if strings.TrimSpace(in.BarberID) != "" {
		filter.BarberID = uc.engine.Schedule().Canonical(in.BarberID)
	}

	bookings, err := uc.repo.ListBookings(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:            b.ID,
			BarberID:      b.BarberID,
			Date:          b.Date,
			TimeSlot:      b.TimeSlot,
			EndTime:       endTime(b.TimeSlot, b.Duration),
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
			CustomerName:  b.CustomerName,
			Phone:         b.Phone,
			Email:         b.Email,
			ServiceName:   b.ServiceName,
		})
	}

	return out, nil
}

func endTime(timeSlot string, minutes int) string {
	s, err := domain.ParseSlot(timeSlot)
	if err != nil {
		return ""
	}
	return (s + domain.Slot(minutes)).String()
}
