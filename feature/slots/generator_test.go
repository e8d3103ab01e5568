package slots_test

import (
	"testing"
	"time"

	"booking-sync/feature/slots"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paris(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return loc
}

func TestGenerate_Properties(t *testing.T) {
	loc := paris(t)
	base := time.Date(2024, 8, 26, 9, 0, 0, 0, loc)

	tests := []struct {
		name     string
		span     time.Duration
		interval time.Duration
		want     int
	}{
		{"ExactMultiple", 6 * time.Hour, 90 * time.Minute, 4},
		{"PartialTail", 6*time.Hour + time.Minute, 90 * time.Minute, 5},
		{"SingleSlot", 30 * time.Minute, 90 * time.Minute, 1},
		{"HalfHour", 24 * time.Hour, 30 * time.Minute, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slots.Generate(base, base.Add(tt.span), tt.interval, loc)
			require.Len(t, got, tt.want)

			seen := make(map[int64]bool)
			for i, s := range got {
				assert.False(t, s.Occupied)
				assert.False(t, seen[s.Key()], "duplicate slot %v", s.Start)
				seen[s.Key()] = true
				if i > 0 {
					assert.True(t, got[i-1].Start.Before(s.Start))
				}
			}
			assert.True(t, got[0].Start.Equal(base))
		})
	}
}

func TestGenerate_DefaultWindow(t *testing.T) {
	loc := paris(t)
	start, end, err := slots.Window("2024-08-26", "2024-09-23", loc)
	require.NoError(t, err)

	got := slots.Generate(start, end, 90*time.Minute, loc)
	assert.Len(t, got, 448)
	assert.Equal(t, "2024-08-26T00:00:00+02:00", got[0].Start.Format(time.RFC3339))
	assert.Equal(t, "2024-09-22T22:30:00+02:00", got[len(got)-1].Start.Format(time.RFC3339))
}

func TestGenerate_DegenerateInput(t *testing.T) {
	loc := paris(t)
	base := time.Date(2024, 8, 26, 9, 0, 0, 0, loc)

	assert.Empty(t, slots.Generate(base, base, time.Hour, loc))
	assert.Empty(t, slots.Generate(base.Add(time.Hour), base, time.Hour, loc))
	assert.Empty(t, slots.Generate(base, base.Add(time.Hour), 0, loc))
}

func TestGenerate_DaylightSavingTransition(t *testing.T) {
	loc := paris(t)
	// Clocks go back from 03:00 CEST to 02:00 CET on 2024-10-27.
	start := time.Date(2024, 10, 27, 0, 0, 0, 0, loc)
	got := slots.Generate(start, start.Add(6*time.Hour), 90*time.Minute, loc)

	want := []string{
		"2024-10-27T00:00:00+02:00",
		"2024-10-27T01:30:00+02:00",
		"2024-10-27T02:00:00+01:00",
		"2024-10-27T03:30:00+01:00",
	}
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w, got[i].Start.Format(time.RFC3339))
	}
}

func TestWindow_Errors(t *testing.T) {
	loc := paris(t)

	_, _, err := slots.Window("26/08/2024", "2024-09-23", loc)
	assert.Error(t, err)

	_, _, err = slots.Window("2024-09-23", "2024-08-26", loc)
	assert.Error(t, err)
}

func TestWindow_WallClockBounds(t *testing.T) {
	loc := paris(t)
	start, end, err := slots.Window("2024-08-26T09:00", "2024-08-26 15:00", loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-08-26T09:00:00+02:00", start.Format(time.RFC3339))
	assert.Equal(t, 6*time.Hour, end.Sub(start))
}
