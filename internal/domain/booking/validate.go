package booking

import (
	"slices"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Engine binds the slot grid to a schedule, shop location and slot width.
type Engine struct {
	schedule *schedule.Schedule
	loc      *time.Location
	duration time.Duration
}

func NewEngine(s *schedule.Schedule, loc *time.Location, duration time.Duration) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	if duration <= 0 {
		duration = DefaultSlotDuration
	}
	return &Engine{schedule: s, loc: loc, duration: duration}
}

func (e *Engine) Location() *time.Location     { return e.loc }
func (e *Engine) Duration() time.Duration      { return e.duration }
func (e *Engine) Schedule() *schedule.Schedule { return e.schedule }

// ParseDate reads a YYYY-MM-DD date in the shop location.
func (e *Engine) ParseDate(date string) (time.Time, error) {
	d, err := timezone.ParseDate(date, e.loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(CodeInvalidDate)
	}
	return d, nil
}

// Slots is the full grid for barberID on date.
func (e *Engine) Slots(barberID string, date time.Time) []Slot {
	return Generate(e.schedule.Resolve(barberID, date), e.duration)
}

// Availability is the grid for barberID on date, marked against reserved and now.
func (e *Engine) Availability(barberID string, date time.Time, reserved ReservedSet, now time.Time) []SlotAvailability {
	return Availability(e.Slots(barberID, date), reserved, date, now.In(e.loc))
}

// Validate decides whether timeSlot on date may be booked with barberID.
// A nil error accepts; rejections are business errors carrying one of
// CodeInvalidDate, CodePastDate, CodeSlotNotOffered or CodeSlotTaken.
// Persisting the booking is left to the caller.
func (e *Engine) Validate(barberID, date, timeSlot string, reserved ReservedSet, now time.Time) error {
	d, err := e.ParseDate(date)
	if err != nil {
		return err
	}

	if timezone.CompareDays(d, now.In(e.loc)) < 0 {
		return httperr.ErrBusiness(CodePastDate)
	}

	slot, err := ParseSlot(timeSlot)
	if err != nil || !slices.Contains(e.Slots(barberID, d), slot) {
		return httperr.ErrBusiness(CodeSlotNotOffered)
	}

	if reserved.Has(slot) {
		return httperr.ErrBusiness(CodeSlotTaken)
	}

	return nil
}
