package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestParseDateIsStrict(t *testing.T) {
	loc := Location("Europe/Oslo")

	d, err := ParseDate("2025-06-10", loc)
	require.NoError(t, err)
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, loc, d.Location())

	for _, bad := range []string{"2025-6-10", "10-06-2025", "2025/06/10", "2025-02-30", "", "2025-06-10T00:00:00Z"} {
		_, err := ParseDate(bad, loc)
		assert.Error(t, err, bad)
	}
}

func TestCompareDaysUsesEachLocation(t *testing.T) {
	oslo := Location("Europe/Oslo")

	// 23:30 UTC on June 9 is already June 10 in Oslo.
	now := time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC).In(oslo)
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, oslo)

	assert.Equal(t, 0, CompareDays(day, now))
	assert.Equal(t, -1, CompareDays(day.AddDate(0, 0, -1), now))
	assert.Equal(t, 1, CompareDays(day.AddDate(0, 1, 0), now))
	assert.Equal(t, day, DayOf(now))
}
