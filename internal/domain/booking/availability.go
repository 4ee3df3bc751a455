package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type SlotAvailability struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Generate lays slots of width duration from open:00, keeping only those that
// end by close:00.
func Generate(h schedule.Hours, duration time.Duration) []Slot {
	step := int(duration / time.Minute)
	if step <= 0 {
		return nil
	}

	open := SlotAt(h.Open, 0)
	closing := SlotAt(h.Close, 0)

	var slots []Slot
	for cur := open; cur+Slot(step) <= closing; cur += Slot(step) {
		slots = append(slots, cur)
	}
	return slots
}

// Availability marks each slot for targetDate as seen at now. Past days are
// fully closed; on the current day only slots starting after now's minute
// stay open. Order follows slots.
func Availability(slots []Slot, reserved ReservedSet, targetDate, now time.Time) []SlotAvailability {
	out := make([]SlotAvailability, 0, len(slots))

	cmp := timezone.CompareDays(targetDate, now)
	current := SlotOf(now)

	for _, s := range slots {
		available := false
		switch {
		case cmp < 0:
		case cmp == 0:
			available = !reserved.Has(s) && s > current
		default:
			available = !reserved.Has(s)
		}
		out = append(out, SlotAvailability{Time: s.String(), Available: available})
	}

	return out
}

// ReservedSet holds the occupied start times of one barber on one day.
type ReservedSet map[Slot]struct{}

// NewReservedSet ignores values that are not HH:MM; they can never collide
// with a generated slot.
func NewReservedSet(times []string) ReservedSet {
	set := make(ReservedSet, len(times))
	for _, t := range times {
		if s, err := ParseSlot(t); err == nil {
			set[s] = struct{}{}
		}
	}
	return set
}

func (r ReservedSet) Has(s Slot) bool {
	_, ok := r[s]
	return ok
}
