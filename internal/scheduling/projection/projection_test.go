package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
)

// 2025-03-03 is a Monday.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, time.March, 3, hour, minute, 0, 0, time.UTC)
}

func TestCalculateWorkEndTimeZeroDuration(t *testing.T) {
	settings := domain.DefaultBusinessSettings()

	// Zero work must return the start unchanged even on a non-working day.
	sundayNight := time.Date(2025, time.March, 2, 22, 0, 0, 0, time.UTC)
	end, err := CalculateWorkEndTime(sundayNight, 0, settings)
	require.NoError(t, err)
	assert.Equal(t, sundayNight, end)
}

func TestCalculateWorkEndTimeNegativeDuration(t *testing.T) {
	_, err := CalculateWorkEndTime(mondayAt(10, 0), -30, domain.DefaultBusinessSettings())
	assert.ErrorIs(t, err, ErrNegativeDuration)
}

func TestCalculateWorkEndTimeFitsBeforeLunch(t *testing.T) {
	end, err := CalculateWorkEndTime(mondayAt(10, 0), 90, domain.DefaultBusinessSettings())
	require.NoError(t, err)
	assert.Equal(t, mondayAt(11, 30), end)
}

func TestCalculateWorkEndTimeSplitsAcrossLunch(t *testing.T) {
	// 30 min to noon, resume at 13:00, 60 more min.
	end, err := CalculateWorkEndTime(mondayAt(11, 30), 90, domain.DefaultBusinessSettings())
	require.NoError(t, err)
	assert.Equal(t, mondayAt(14, 0), end)
}

func TestCalculateWorkEndTimeRollsToNextDay(t *testing.T) {
	// 60 min to 18:00 Monday, remaining 60 min from Tuesday 08:00.
	end, err := CalculateWorkEndTime(mondayAt(17, 0), 120, domain.DefaultBusinessSettings())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC), end)
}

func TestCalculateWorkEndTimeSkipsSunday(t *testing.T) {
	// Saturday 17:30 + 60 min: 30 min to 18:00, Sunday closed,
	// remaining 30 min from Monday 08:00.
	saturday := time.Date(2025, time.March, 1, 17, 30, 0, 0, time.UTC)
	end, err := CalculateWorkEndTime(saturday, 60, domain.DefaultBusinessSettings())
	require.NoError(t, err)
	assert.Equal(t, mondayAt(8, 30), end)
}

func TestCalculateWorkEndTimeStartOutsideWorkingHours(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  time.Time
	}{
		{
			name:  "start before opening walks to day start",
			start: mondayAt(6, 15),
			want:  mondayAt(9, 0),
		},
		{
			name:  "start during lunch walks to afternoon period",
			start: mondayAt(12, 20),
			want:  mondayAt(14, 0),
		},
		{
			name:  "start after closing walks to next day",
			start: mondayAt(19, 0),
			want:  time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "start on non-working day walks to next working day",
			start: time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC), // Sunday
			want:  mondayAt(9, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := CalculateWorkEndTime(tt.start, 60, domain.DefaultBusinessSettings())
			require.NoError(t, err)
			assert.Equal(t, tt.want, end)
		})
	}
}

func TestCalculateWorkEndTimeMultiDayJob(t *testing.T) {
	// 9h working day (lunch excluded). 20h of work from Monday 08:00:
	// Monday 9h, Tuesday 9h, Wednesday 2h ending at 10:00.
	end, err := CalculateWorkEndTime(mondayAt(8, 0), 20*60, domain.DefaultBusinessSettings())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC), end)
}

func TestCalculateWorkEndTimeMonotonic(t *testing.T) {
	settings := domain.DefaultBusinessSettings()
	start := mondayAt(10, 0)

	previous, err := CalculateWorkEndTime(start, 0, settings)
	require.NoError(t, err)

	for minutes := 15; minutes <= 16*60; minutes += 15 {
		end, err := CalculateWorkEndTime(start, minutes, settings)
		require.NoError(t, err)
		assert.False(t, end.Before(previous), "end time must not decrease as duration grows")
		previous = end
	}
}

func TestCalculateWorkEndTimeTruncatesSeconds(t *testing.T) {
	start := time.Date(2025, time.March, 3, 10, 0, 42, 500, time.UTC)
	end, err := CalculateWorkEndTime(start, 60, domain.DefaultBusinessSettings())
	require.NoError(t, err)
	assert.Equal(t, mondayAt(11, 0), end)
}

func TestCalculateWorkEndTimeEmptyWorkingDays(t *testing.T) {
	settings := domain.DefaultBusinessSettings()
	settings.WorkingDays = map[time.Weekday]bool{}

	_, err := CalculateWorkEndTime(mondayAt(10, 0), 60, settings)
	assert.ErrorIs(t, err, domain.ErrNoWorkingDays)
}
