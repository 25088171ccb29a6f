package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfFormat(t *testing.T) {
	k := Of(time.Date(2026, time.February, 9, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, Key("2026-W07"), k)
}

func TestOfYearBoundary(t *testing.T) {
	// Dec 29 2025 belongs to ISO week 1 of 2026.
	k := Of(time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Key("2026-W01"), k)

	// Jan 1 2021 belongs to ISO week 53 of 2020.
	k = Of(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Key("2020-W53"), k)
}

func TestStartDateIsMonday(t *testing.T) {
	for _, k := range []Key{"2026-W07", "2026-W01", "2020-W53", "2024-W52"} {
		d, err := StartDate(k)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, d.Weekday(), "start of %s", k)
		assert.Equal(t, k, Of(d), "start date must map back to %s", k)
	}
}

func TestNeighborRoundTrip(t *testing.T) {
	for _, k := range []Key{"2026-W07", "2026-W01", "2020-W53", "2025-W52"} {
		next, err := Neighbor(k, Next)
		require.NoError(t, err)
		back, err := Neighbor(next, Previous)
		require.NoError(t, err)
		assert.Equal(t, k, back)
		assert.NotEqual(t, k, next)
	}
}

func TestNeighborYearBoundary(t *testing.T) {
	next, err := Neighbor(Key("2020-W53"), Next)
	require.NoError(t, err)
	assert.Equal(t, Key("2021-W01"), next)

	prev, err := Neighbor(Key("2026-W01"), Previous)
	require.NoError(t, err)
	assert.Equal(t, Key("2025-W52"), prev)
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, bad := range []Key{"", "2026", "2026-07", "2026-Wxx", "x-W07", "2026-W99"} {
		_, _, err := Parse(bad)
		assert.Error(t, err, "key %q", bad)
	}
}
