package conflict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	"github.com/brightshine-detailing/scheduler-service/pkg/ptr"
)

// 2025-03-03 is a Monday.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, time.March, 3, hour, minute, 0, 0, time.UTC)
}

func appointment(id int64, start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:            id,
		StartDateTime: start,
		EndDateTime:   end,
		Status:        domain.StatusScheduled,
	}
}

func TestHasConflict(t *testing.T) {
	tests := []struct {
		name string
		a    *domain.Appointment
		b    *domain.Appointment
		want bool
	}{
		{
			name: "overlapping intervals",
			a:    appointment(1, mondayAt(9, 0), mondayAt(10, 0)),
			b:    appointment(2, mondayAt(9, 30), mondayAt(10, 30)),
			want: true,
		},
		{
			name: "contained interval",
			a:    appointment(1, mondayAt(9, 0), mondayAt(12, 0)),
			b:    appointment(2, mondayAt(10, 0), mondayAt(11, 0)),
			want: true,
		},
		{
			name: "touching endpoints do not conflict",
			a:    appointment(1, mondayAt(9, 0), mondayAt(10, 0)),
			b:    appointment(2, mondayAt(10, 0), mondayAt(11, 0)),
			want: false,
		},
		{
			name: "disjoint intervals",
			a:    appointment(1, mondayAt(9, 0), mondayAt(10, 0)),
			b:    appointment(2, mondayAt(14, 0), mondayAt(15, 0)),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(tt.a, tt.b))
			assert.Equal(t, HasConflict(tt.a, tt.b), HasConflict(tt.b, tt.a), "HasConflict must be symmetric")
		})
	}
}

func TestCanScheduleServiceNoAppointments(t *testing.T) {
	check, err := CanScheduleService(mondayAt(10, 0), 90, 0, nil, domain.DefaultBusinessSettings())
	require.NoError(t, err)

	assert.True(t, check.CanSchedule)
	assert.Empty(t, check.Conflicts)
	assert.Equal(t, mondayAt(11, 30), check.WorkEndTime)
	assert.Equal(t, mondayAt(11, 30), check.ServiceCompleteTime)
}

func TestCanScheduleServiceWorkOverlap(t *testing.T) {
	existing := []*domain.Appointment{
		appointment(1, mondayAt(9, 0), mondayAt(10, 0)),
		appointment(2, mondayAt(10, 0), mondayAt(11, 0)),
	}
	settings := domain.DefaultBusinessSettings()

	// 09:30 overlaps the first appointment.
	check, err := CanScheduleService(mondayAt(9, 30), 30, 0, existing, settings)
	require.NoError(t, err)
	assert.False(t, check.CanSchedule)
	require.Len(t, check.Conflicts, 1)
	assert.Contains(t, check.Conflicts[0], "appointment #1")

	// 11:00 is exactly adjacent to the second appointment.
	check, err = CanScheduleService(mondayAt(11, 0), 30, 0, existing, settings)
	require.NoError(t, err)
	assert.True(t, check.CanSchedule)
	assert.Empty(t, check.Conflicts)
}

func TestCanScheduleServiceReportsAllConflicts(t *testing.T) {
	existing := []*domain.Appointment{
		appointment(1, mondayAt(9, 0), mondayAt(10, 0)),
		appointment(2, mondayAt(10, 0), mondayAt(11, 0)),
	}

	check, err := CanScheduleService(mondayAt(9, 30), 120, 0, existing, domain.DefaultBusinessSettings())
	require.NoError(t, err)
	assert.False(t, check.CanSchedule)
	assert.Len(t, check.Conflicts, 2, "every overlapping appointment must be reported")
}

func TestCanScheduleServiceCancelledNeverConflicts(t *testing.T) {
	cancelled := appointment(1, mondayAt(9, 0), mondayAt(12, 0))
	cancelled.Status = domain.StatusCancelled

	check, err := CanScheduleService(mondayAt(9, 30), 60, 0, []*domain.Appointment{cancelled}, domain.DefaultBusinessSettings())
	require.NoError(t, err)
	assert.True(t, check.CanSchedule)
	assert.Empty(t, check.Conflicts)
}

func TestCanScheduleServiceDryingPhase(t *testing.T) {
	settings := domain.DefaultBusinessSettings()

	// Existing appointment with a passive phase running until 16:00.
	existing := appointment(7, mondayAt(13, 0), mondayAt(14, 0))
	existing.DryingEndDateTime = ptr.Ptr(mondayAt(16, 0))

	// Candidate works 14:00-15:00 then dries 15:00-17:00: the candidate's
	// drying overlaps the existing passive window, its work does not.
	check, err := CanScheduleService(mondayAt(14, 0), 60, 120, []*domain.Appointment{existing}, settings)
	require.NoError(t, err)
	assert.False(t, check.CanSchedule)
	require.Len(t, check.Conflicts, 1)
	assert.Contains(t, check.Conflicts[0], "drying time overlaps appointment #7")
	assert.Equal(t, mondayAt(15, 0), check.WorkEndTime)
	assert.Equal(t, mondayAt(17, 0), check.ServiceCompleteTime)

	// Without a drying phase the same candidate is fine.
	check, err = CanScheduleService(mondayAt(14, 0), 60, 0, []*domain.Appointment{existing}, settings)
	require.NoError(t, err)
	assert.True(t, check.CanSchedule)
}

func TestCanScheduleServiceOutsideWorkingHours(t *testing.T) {
	// 07:00 is before opening: reported as a conflict reason, and the
	// projection still computes the end from the next working period.
	check, err := CanScheduleService(mondayAt(7, 0), 60, 0, nil, domain.DefaultBusinessSettings())
	require.NoError(t, err)
	assert.False(t, check.CanSchedule)
	require.Len(t, check.Conflicts, 1)
	assert.Contains(t, check.Conflicts[0], "outside working hours")
	assert.Equal(t, mondayAt(9, 0), check.WorkEndTime)
}

func TestCanScheduleServiceDryingMaySpanNonWorkingHours(t *testing.T) {
	// Work ends at closing time; drying continues overnight unhindered.
	check, err := CanScheduleService(mondayAt(17, 0), 60, 10*60, nil, domain.DefaultBusinessSettings())
	require.NoError(t, err)
	assert.True(t, check.CanSchedule)
	assert.Equal(t, mondayAt(18, 0), check.WorkEndTime)
	assert.Equal(t, time.Date(2025, time.March, 4, 4, 0, 0, 0, time.UTC), check.ServiceCompleteTime)
}

func TestCanScheduleServicePropagatesConfigError(t *testing.T) {
	settings := domain.DefaultBusinessSettings()
	settings.WorkingDays = nil

	_, err := CanScheduleService(mondayAt(10, 0), 60, 0, nil, settings)
	assert.ErrorIs(t, err, domain.ErrNoWorkingDays)
}
