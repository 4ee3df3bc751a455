package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetTimeSlots struct {
	repo   domain.Repository
	engine *domain.Engine
	now    timezone.Clock
}

func NewGetTimeSlots(
	repo domain.Repository,
	engine *domain.Engine,
	now timezone.Clock,
) *GetTimeSlots {
	return &GetTimeSlots{
		repo:   repo,
		engine: engine,
		now:    now,
	}
}

// Execute lists every generated slot of barberID on date with its
// availability. An empty barberID means the default barber.
func (uc *GetTimeSlots) Execute(
	ctx context.Context,
	barberID string,
	date string,
) ([]domain.SlotAvailability, error) {

	d, err := uc.engine.ParseDate(date)
	if err != nil {
		return nil, err
	}

	barber := uc.engine.Schedule().Canonical(barberID)

	reserved, err := uc.repo.FindReservedTimes(ctx, barber, date)
	if err != nil {
		return nil, err
	}

	return uc.engine.Availability(
		barber,
		d,
		domain.NewReservedSet(reserved),
		uc.now(),
	), nil
}
