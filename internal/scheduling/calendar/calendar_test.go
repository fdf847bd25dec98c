package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
)

// 2025-03-03 is a Monday.
func monday() time.Time {
	return time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
}

func sunday() time.Time {
	return time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
}

func TestIsWorkingDay(t *testing.T) {
	settings := domain.DefaultBusinessSettings()

	assert.True(t, IsWorkingDay(monday(), settings))
	assert.True(t, IsWorkingDay(monday().AddDate(0, 0, 5), settings)) // Saturday
	assert.False(t, IsWorkingDay(sunday(), settings))
}

func TestWorkingPeriodsNonWorkingDay(t *testing.T) {
	settings := domain.DefaultBusinessSettings()

	periods := WorkingPeriods(sunday(), settings)
	assert.Empty(t, periods)
}

func TestWorkingPeriodsWithLunchBreak(t *testing.T) {
	settings := domain.DefaultBusinessSettings()

	periods := WorkingPeriods(monday(), settings)
	require.Len(t, periods, 2)

	morning, afternoon := periods[0], periods[1]
	assert.Equal(t, time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC), morning.Start)
	assert.Equal(t, time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC), morning.End)
	assert.Equal(t, time.Date(2025, time.March, 3, 13, 0, 0, 0, time.UTC), afternoon.Start)
	assert.Equal(t, time.Date(2025, time.March, 3, 18, 0, 0, 0, time.UTC), afternoon.End)

	// Union plus the lunch gap covers the whole configured day.
	assert.Equal(t, 10*60, morning.Minutes()+afternoon.Minutes()+60)
}

func TestWorkingPeriodsWithoutLunchBreak(t *testing.T) {
	settings := domain.DefaultBusinessSettings()
	settings.WorkingHours.LunchStart = ""
	settings.WorkingHours.LunchEnd = ""

	periods := WorkingPeriods(monday(), settings)
	require.Len(t, periods, 1)
	assert.Equal(t, time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC), periods[0].Start)
	assert.Equal(t, time.Date(2025, time.March, 3, 18, 0, 0, 0, time.UTC), periods[0].End)
	assert.Equal(t, 10*60, periods[0].Minutes())
}

func TestWorkingPeriodsAnchorsToGivenDate(t *testing.T) {
	settings := domain.DefaultBusinessSettings()

	// A timestamp with hours/seconds set anchors periods to its date only.
	noisy := time.Date(2025, time.March, 3, 16, 45, 33, 912, time.UTC)
	periods := WorkingPeriods(noisy, settings)
	require.Len(t, periods, 2)
	assert.Equal(t, time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC), periods[0].Start)
}

func TestPeriodContains(t *testing.T) {
	p := Period{
		Start: time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC),
	}

	assert.True(t, p.Contains(p.Start))
	assert.True(t, p.Contains(p.Start.Add(90*time.Minute)))
	assert.False(t, p.Contains(p.End), "end is exclusive")
	assert.False(t, p.Contains(p.Start.Add(-time.Minute)))
}
