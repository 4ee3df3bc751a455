package booking

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

func slotStrings(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestGenerate(t *testing.T) {
	t.Run("marius wednesday 9-20", func(t *testing.T) {
		got := slotStrings(Generate(schedule.Hours{Open: 9, Close: 20}, DefaultSlotDuration))
		// 19:30 would end at 20:15, so 18:45 is the last start.
		want := []string{
			"09:00", "09:45", "10:30", "11:15", "12:00", "12:45", "13:30",
			"14:15", "15:00", "15:45", "16:30", "17:15", "18:00", "18:45",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sivert weekday 16-21", func(t *testing.T) {
		got := slotStrings(Generate(schedule.Hours{Open: 16, Close: 21}, DefaultSlotDuration))
		require.NotEmpty(t, got)
		assert.Equal(t, "16:00", got[0])
		// 20:30 would end at 21:15; the 45-minute grid from 16:00 never lands on 20:15.
		assert.Equal(t, "19:45", got[len(got)-1])
		assert.Len(t, got, 6)
	})

	t.Run("window shorter than one slot", func(t *testing.T) {
		assert.Empty(t, Generate(schedule.Hours{Open: 9, Close: 9}, DefaultSlotDuration))
		assert.Empty(t, Generate(schedule.Hours{Open: 9, Close: 9}, 30*time.Minute))
	})

	t.Run("non-positive duration", func(t *testing.T) {
		assert.Empty(t, Generate(schedule.Hours{Open: 9, Close: 17}, 0))
	})
}

func TestGenerateProperties(t *testing.T) {
	for open := 0; open < 24; open++ {
		for closing := open; closing <= 24; closing++ {
			h := schedule.Hours{Open: open, Close: closing}
			slots := Generate(h, DefaultSlotDuration)

			if (closing-open)*60 < 45 {
				assert.Empty(t, slots, "%d-%d", open, closing)
				continue
			}

			require.NotEmpty(t, slots, "%d-%d", open, closing)
			assert.Equal(t, SlotAt(open, 0), slots[0])
			for i, s := range slots {
				assert.LessOrEqual(t, int(s)+45, closing*60, "slot %s overruns %d:00", s, closing)
				if i > 0 {
					assert.Greater(t, int(s), int(slots[i-1]))
				}
			}
			// No further slot would fit.
			assert.Greater(t, int(slots[len(slots)-1])+90, closing*60)

			assert.Equal(t, slots, Generate(h, DefaultSlotDuration))
		}
	}
}

func TestAvailability(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	slots := []Slot{SlotAt(14, 0), SlotAt(14, 30), SlotAt(15, 0), SlotAt(16, 0)}
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, oslo)
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, oslo)
	reserved := NewReservedSet([]string{"16:00", "garbage"})

	t.Run("past date closes every slot", func(t *testing.T) {
		got := Availability(slots, ReservedSet{}, today.AddDate(0, 0, -1), now)
		require.Len(t, got, len(slots))
		for _, a := range got {
			assert.False(t, a.Available, a.Time)
		}
	})

	t.Run("today hides started slots", func(t *testing.T) {
		got := Availability(slots, reserved, today, now)
		want := []SlotAvailability{
			{Time: "14:00", Available: false},
			{Time: "14:30", Available: false},
			{Time: "15:00", Available: true},
			{Time: "16:00", Available: false},
		}
		assert.Equal(t, want, got)
	})

	t.Run("future date only checks reservations", func(t *testing.T) {
		got := Availability(slots, reserved, today.AddDate(0, 0, 1), now)
		want := []SlotAvailability{
			{Time: "14:00", Available: true},
			{Time: "14:30", Available: true},
			{Time: "15:00", Available: true},
			{Time: "16:00", Available: false},
		}
		assert.Equal(t, want, got)
	})

	t.Run("now in another zone is read as its own wall clock", func(t *testing.T) {
		// 22:30 UTC on June 9 is 00:30 on June 10 in Oslo.
		utcNow := time.Date(2025, 6, 9, 22, 30, 0, 0, time.UTC)
		got := Availability(slots, ReservedSet{}, today, utcNow.In(oslo))
		for _, a := range got {
			assert.True(t, a.Available, a.Time)
		}
	})

	t.Run("empty grid", func(t *testing.T) {
		assert.Empty(t, Availability(nil, reserved, today, now))
	})
}

func TestParseSlot(t *testing.T) {
	s, err := ParseSlot("09:45")
	require.NoError(t, err)
	assert.Equal(t, SlotAt(9, 45), s)
	assert.Equal(t, "09:45", s.String())

	for _, bad := range []string{"", "24:00", "12:60", "noon", "12.30"} {
		_, err := ParseSlot(bad)
		assert.Error(t, err, bad)
	}
}
