package schedule

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ===============================
// Day classes
// ===============================

type DayClass string

const (
	DayClassWeekday   DayClass = "weekday"
	DayClassWednesday DayClass = "wednesday"
	DayClassWeekend   DayClass = "weekend"
)

// ClassOf buckets a calendar date into the day-class that selects its hours.
func ClassOf(date time.Time) DayClass {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayClassWeekend
	case time.Wednesday:
		return DayClassWednesday
	default:
		return DayClassWeekday
	}
}

// ===============================
// Hours
// ===============================

// Hours is an opening window in whole hours of the shop-local day.
type Hours struct {
	Open  int `yaml:"open" json:"open"`
	Close int `yaml:"close" json:"close"`
}

func (h Hours) validate() error {
	if h.Open < 0 || h.Close > 24 || h.Open >= h.Close {
		return errors.Newf("invalid hours %d-%d", h.Open, h.Close)
	}
	return nil
}

type WeeklyHours struct {
	Weekday   Hours `yaml:"weekday" json:"weekday"`
	Wednesday Hours `yaml:"wednesday" json:"wednesday"`
	Weekend   Hours `yaml:"weekend" json:"weekend"`
}

func (w WeeklyHours) For(class DayClass) Hours {
	switch class {
	case DayClassWeekend:
		return w.Weekend
	case DayClassWednesday:
		return w.Wednesday
	default:
		return w.Weekday
	}
}

type Barber struct {
	ID    string      `yaml:"id" json:"id"`
	Name  string      `yaml:"name" json:"name"`
	Hours WeeklyHours `yaml:"hours" json:"hours"`
}

// ===============================
// Schedule
// ===============================

// Schedule is the immutable per-barber weekly table.
type Schedule struct {
	barbers   []Barber
	byID      map[string]Barber
	defaultID string
}

func New(barbers []Barber, defaultID string) (*Schedule, error) {
	if len(barbers) == 0 {
		return nil, errors.New("schedule has no barbers")
	}

	s := &Schedule{
		barbers:   make([]Barber, 0, len(barbers)),
		byID:      make(map[string]Barber, len(barbers)),
		defaultID: normalize(defaultID),
	}

	for _, b := range barbers {
		b.ID = normalize(b.ID)
		if b.ID == "" {
			return nil, errors.New("barber with empty id")
		}
		if _, dup := s.byID[b.ID]; dup {
			return nil, errors.Newf("duplicate barber id %q", b.ID)
		}
		for class, h := range map[DayClass]Hours{
			DayClassWeekday:   b.Hours.Weekday,
			DayClassWednesday: b.Hours.Wednesday,
			DayClassWeekend:   b.Hours.Weekend,
		} {
			if err := h.validate(); err != nil {
				return nil, errors.Wrapf(err, "barber %q %s", b.ID, class)
			}
		}
		s.byID[b.ID] = b
		s.barbers = append(s.barbers, b)
	}

	if _, ok := s.byID[s.defaultID]; !ok {
		return nil, errors.Newf("default barber %q is not in the schedule", defaultID)
	}

	return s, nil
}

// Resolve returns the hours for barberID on date. Unknown ids use the default
// barber's table.
func (s *Schedule) Resolve(barberID string, date time.Time) Hours {
	return s.lookup(barberID).Hours.For(ClassOf(date))
}

// Canonical returns the id whose table Resolve uses for barberID.
func (s *Schedule) Canonical(barberID string) string {
	return s.lookup(barberID).ID
}

// Known reports whether barberID names a barber without falling back.
func (s *Schedule) Known(barberID string) bool {
	_, ok := s.byID[normalize(barberID)]
	return ok
}

func (s *Schedule) DefaultID() string {
	return s.defaultID
}

// Barbers returns the roster in configuration order.
func (s *Schedule) Barbers() []Barber {
	out := make([]Barber, len(s.barbers))
	copy(out, s.barbers)
	return out
}

func (s *Schedule) lookup(barberID string) Barber {
	if b, ok := s.byID[normalize(barberID)]; ok {
		return b
	}
	return s.byID[s.defaultID]
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// NameOf returns the display name of the barber Resolve uses for barberID.
func (s *Schedule) NameOf(barberID string) string {
	return s.lookup(barberID).Name
}
