package booking

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// DefaultSlotDuration is the width of every appointment on the grid.
const DefaultSlotDuration = 45 * time.Minute

// Slot is an appointment start time, in minutes after shop-local midnight.
type Slot int

func SlotAt(hour, minute int) Slot {
	return Slot(hour*60 + minute)
}

// ParseSlot accepts a 24-hour HH:MM value.
func ParseSlot(s string) (Slot, error) {
	t, err := time.Parse(timezone.TimeLayout, s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid time slot %q", s)
	}
	return SlotAt(t.Hour(), t.Minute()), nil
}

func (s Slot) Hour() int   { return int(s) / 60 }
func (s Slot) Minute() int { return int(s) % 60 }

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour(), s.Minute())
}

// On places the slot on the calendar day of date, in date's location.
func (s Slot) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, s.Hour(), s.Minute(), 0, 0, date.Location())
}

// SlotOf is the time-of-day of t, truncated to the minute.
func SlotOf(t time.Time) Slot {
	return SlotAt(t.Hour(), t.Minute())
}
