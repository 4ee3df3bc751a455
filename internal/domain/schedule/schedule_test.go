package schedule

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		date time.Time
		want DayClass
	}{
		{day(2025, 6, 9), DayClassWeekday},    // Monday
		{day(2025, 6, 10), DayClassWeekday},   // Tuesday
		{day(2025, 6, 11), DayClassWednesday}, // Wednesday
		{day(2025, 6, 12), DayClassWeekday},   // Thursday
		{day(2025, 6, 13), DayClassWeekday},   // Friday
		{day(2025, 6, 14), DayClassWeekend},   // Saturday
		{day(2025, 6, 15), DayClassWeekend},   // Sunday
	}

	for _, tt := range tests {
		t.Run(tt.date.Weekday().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassOf(tt.date))
		})
	}
}

func TestResolve(t *testing.T) {
	s := Default()

	assert.Equal(t, Hours{Open: 9, Close: 20}, s.Resolve("marius", day(2025, 6, 11)))
	assert.Equal(t, Hours{Open: 16, Close: 21}, s.Resolve("sivert", day(2025, 6, 9)))
	assert.Equal(t, Hours{Open: 12, Close: 20}, s.Resolve("sivert", day(2025, 6, 11)))
	assert.Equal(t, Hours{Open: 10, Close: 16}, s.Resolve("sivert", day(2025, 6, 14)))

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, s.Resolve("sivert", day(2025, 6, 9)), s.Resolve("  SIVERT ", day(2025, 6, 9)))
		assert.Equal(t, "sivert", s.Canonical("Sivert"))
	})

	t.Run("unknown barber falls back to default", func(t *testing.T) {
		assert.Equal(t, s.Resolve("marius", day(2025, 6, 9)), s.Resolve("bob", day(2025, 6, 9)))
		assert.Equal(t, "marius", s.Canonical("bob"))
		assert.Equal(t, "marius", s.Canonical(""))
		assert.False(t, s.Known("bob"))
		assert.True(t, s.Known("MARIUS"))
	})
}

func TestNewRejectsBadTables(t *testing.T) {
	ok := WeeklyHours{Weekday: Hours{9, 17}, Wednesday: Hours{9, 17}, Weekend: Hours{10, 14}}

	tests := []struct {
		name      string
		barbers   []Barber
		defaultID string
	}{
		{name: "empty", barbers: nil, defaultID: "a"},
		{name: "missing default", barbers: []Barber{{ID: "a", Hours: ok}}, defaultID: "b"},
		{name: "duplicate id", barbers: []Barber{{ID: "a", Hours: ok}, {ID: "A", Hours: ok}}, defaultID: "a"},
		{name: "blank id", barbers: []Barber{{ID: " ", Hours: ok}}, defaultID: "a"},
		{
			name: "close before open",
			barbers: []Barber{{ID: "a", Hours: WeeklyHours{
				Weekday: Hours{17, 9}, Wednesday: ok.Wednesday, Weekend: ok.Weekend,
			}}},
			defaultID: "a",
		},
		{
			name: "close after midnight",
			barbers: []Barber{{ID: "a", Hours: WeeklyHours{
				Weekday: ok.Weekday, Wednesday: ok.Wednesday, Weekend: Hours{20, 25},
			}}},
			defaultID: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.barbers, tt.defaultID)
			assert.Error(t, err)
		})
	}
}

func TestBarbersReturnsCopy(t *testing.T) {
	s := Default()
	got := s.Barbers()
	require.Len(t, got, 2)
	got[0].ID = "mutated"
	assert.Equal(t, "marius", s.Barbers()[0].ID)
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses built-in roster", func(t *testing.T) {
		s, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultBarberID, s.DefaultID())
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schedule.yaml")
		content := `
default_barber: Ola
barbers:
  - id: Ola
    name: Ola
    hours:
      weekday: {open: 8, close: 16}
      wednesday: {open: 8, close: 12}
      weekend: {open: 10, close: 14}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "ola", s.DefaultID())
		assert.Equal(t, Hours{Open: 8, Close: 12}, s.Resolve("anyone", day(2025, 6, 11)))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "read schedule file")
	})
}
