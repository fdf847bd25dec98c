package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	"github.com/brightshine-detailing/scheduler-service/pkg/types"
)

// 2025-03-03 is a Monday.
var monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, time.March, 3, hour, minute, 0, 0, time.UTC)
}

// pastNow is well before the searched range, so no today-filtering applies.
var pastNow = time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC)

func TestFindAvailableSlotsEmptyCalendar(t *testing.T) {
	found, err := FindAvailableSlots(monday, monday, 60, 0, nil, domain.DefaultBusinessSettings(), pastNow)
	require.NoError(t, err)

	// 08:00..11:30 every 30 min in the morning, 13:00..17:30 afternoon.
	require.Len(t, found, 8+10)
	assert.Equal(t, types.TimeString("08:00"), found[0].StartTime)
	assert.Equal(t, types.TimeString("09:00"), found[0].EndTime)
	assert.Equal(t, monday, found[0].Date)
	assert.Equal(t, monday, found[0].WorkEndDate)
	assert.Equal(t, 240, found[0].AvailableDuration)
	assert.True(t, found[0].CanStartService)

	// Chronological order throughout.
	for i := 1; i < len(found); i++ {
		prev, cur := found[i-1], found[i]
		if prev.Date.Equal(cur.Date) {
			assert.True(t, prev.StartTime.IsBefore(cur.StartTime))
		}
	}
}

func TestFindAvailableSlotsSkipsNonWorkingDays(t *testing.T) {
	sunday := monday.AddDate(0, 0, -1)

	found, err := FindAvailableSlots(sunday, sunday, 60, 0, nil, domain.DefaultBusinessSettings(), pastNow)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindAvailableSlotsFiltersConflicts(t *testing.T) {
	booked := []*domain.Appointment{{
		ID:            1,
		StartDateTime: mondayAt(9, 0),
		EndDateTime:   mondayAt(11, 0),
		Status:        domain.StatusScheduled,
	}}

	found, err := FindAvailableSlots(monday, monday, 60, 0, booked, domain.DefaultBusinessSettings(), pastNow)
	require.NoError(t, err)

	starts := make([]string, 0, len(found))
	for _, slot := range found {
		starts = append(starts, slot.StartTime.String())
	}

	// 08:00 runs to 09:00, exactly adjacent. 08:30 through 10:30 overlap.
	// 11:00 starts exactly at the booked end.
	assert.Contains(t, starts, "08:00")
	assert.NotContains(t, starts, "08:30")
	assert.NotContains(t, starts, "09:00")
	assert.NotContains(t, starts, "10:30")
	assert.Contains(t, starts, "11:00")
}

func TestFindAvailableSlotsCancelledAppointmentsIgnored(t *testing.T) {
	cancelled := []*domain.Appointment{{
		ID:            1,
		StartDateTime: mondayAt(8, 0),
		EndDateTime:   mondayAt(18, 0),
		Status:        domain.StatusCancelled,
	}}

	withCancelled, err := FindAvailableSlots(monday, monday, 60, 0, cancelled, domain.DefaultBusinessSettings(), pastNow)
	require.NoError(t, err)
	empty, err := FindAvailableSlots(monday, monday, 60, 0, nil, domain.DefaultBusinessSettings(), pastNow)
	require.NoError(t, err)

	assert.Equal(t, empty, withCancelled)
}

func TestFindAvailableSlotsTodayRoundsUpToNextBoundary(t *testing.T) {
	now := mondayAt(9, 47)

	found, err := FindAvailableSlots(monday, monday, 60, 0, nil, domain.DefaultBusinessSettings(), now)
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, types.TimeString("10:00"), found[0].StartTime, "past times must never be offered")
}

func TestFindAvailableSlotsSameDayDisabled(t *testing.T) {
	settings := domain.DefaultBusinessSettings()
	settings.SameDayBooking = false
	tuesday := monday.AddDate(0, 0, 1)

	found, err := FindAvailableSlots(monday, tuesday, 60, 0, nil, settings, mondayAt(8, 0))
	require.NoError(t, err)
	require.NotEmpty(t, found)
	for _, slot := range found {
		assert.Equal(t, tuesday, slot.Date, "today must be skipped when same-day booking is off")
	}
}

func TestFindAvailableSlotsMultiDaySpillover(t *testing.T) {
	// A 6-hour job started at 17:30 Monday finishes Tuesday. The slot's
	// end time reads numerically earlier than its start; the dates differ.
	found, err := FindAvailableSlots(monday, monday, 6*60, 0, nil, domain.DefaultBusinessSettings(), pastNow)
	require.NoError(t, err)
	require.NotEmpty(t, found)

	last := found[len(found)-1]
	require.Equal(t, types.TimeString("17:30"), last.StartTime)
	assert.Equal(t, types.TimeString("14:30"), last.EndTime)
	assert.Equal(t, monday.AddDate(0, 0, 1), last.WorkEndDate)
	assert.True(t, last.EndTime.IsBefore(last.StartTime), "spillover reads earlier on the clock")
}

func TestFindAvailableSlotsIdempotent(t *testing.T) {
	booked := []*domain.Appointment{{
		ID:            1,
		StartDateTime: mondayAt(13, 0),
		EndDateTime:   mondayAt(15, 0),
		Status:        domain.StatusScheduled,
	}}
	saturday := monday.AddDate(0, 0, 5)

	first, err := FindAvailableSlots(monday, saturday, 90, 60, booked, domain.DefaultBusinessSettings(), pastNow)
	require.NoError(t, err)
	second, err := FindAvailableSlots(monday, saturday, 90, 60, booked, domain.DefaultBusinessSettings(), pastNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFindAvailableSlotsInvalidSettings(t *testing.T) {
	settings := domain.DefaultBusinessSettings()
	settings.WorkingDays = map[time.Weekday]bool{}

	_, err := FindAvailableSlots(monday, monday, 60, 0, nil, settings, pastNow)
	assert.ErrorIs(t, err, domain.ErrNoWorkingDays)
}
