package find_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	vehicleRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/vehicle"
	"github.com/brightshine-detailing/scheduler-service/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	gotFrom      time.Time
	gotTo        time.Time
}

func (r *fakeAppointmentRepo) GetOverlappingWindow(_ context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	r.gotFrom = from
	r.gotTo = to
	return r.appointments, nil
}

type fakeServiceRepo struct {
	services []*domain.Service
}

func (r *fakeServiceRepo) GetByIDs(_ context.Context, _ []int64) ([]*domain.Service, error) {
	return r.services, nil
}

type fakeVehicleRepo struct {
	vehicle *domain.Vehicle
}

func (r *fakeVehicleRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	if r.vehicle == nil || r.vehicle.ID != id {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return r.vehicle, nil
}

type fixedTime struct {
	now time.Time
}

func (p *fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

func washService() *domain.Service {
	return &domain.Service{
		ID:          1,
		Name:        "Complete Wash",
		VehicleType: domain.TypeCar,
		Configurations: map[domain.VehicleSize]domain.ServiceConfiguration{
			domain.SizeMedium: {Available: true, DurationHours: 1, DurationMinutes: 30, Price: 100},
		},
	}
}

func newTestUseCase(repo *fakeAppointmentRepo, now time.Time) *UseCase {
	uc := NewUseCase(
		repo,
		&fakeServiceRepo{services: []*domain.Service{washService()}},
		&fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 10, ClientID: 1, Type: domain.TypeCar, Size: domain.SizeMedium}},
		domain.DefaultBusinessSettings(),
		&nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_FullOpenDay(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	// Monday morning, searching Tuesday only
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID:  10,
		ServiceIDs: []int64{1},
		RangeStart: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		RangeEnd:   time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 90, resp.Duration.WorkDuration)
	// 8 morning starts plus 10 afternoon starts
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("17:30"), resp.Slots[len(resp.Slots)-1].StartTime)
}

func TestExecute_LimitCapsSlots(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID:  10,
		ServiceIDs: []int64{1},
		RangeStart: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		RangeEnd:   time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Limit:      5,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 5)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
}

func TestExecute_SnapshotWindowCoversSpillover(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	rangeEnd := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		VehicleID:  10,
		ServiceIDs: []int64{1},
		RangeStart: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		RangeEnd:   rangeEnd,
	})

	require.NoError(t, err)
	assert.True(t, repo.gotTo.After(rangeEnd), "snapshot must reach past the range end")
}

func TestExecute_PastRangeStartClampedToToday(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	// Tuesday 09:47, range starting last week
	now := time.Date(2025, 3, 4, 9, 47, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID:  10,
		ServiceIDs: []int64{1},
		RangeStart: time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC),
		RangeEnd:   time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	// today's first candidate rounds 09:47 up to the next half hour
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)
}

func TestExecute_RangeTooFarInFuture(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID:  10,
		ServiceIDs: []int64{1},
		RangeStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrRangeTooFarInFuture)
}

func TestExecute_RangeEndClampedToHorizon(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID:  10,
		ServiceIDs: []int64{1},
		RangeEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	horizon := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Date.After(horizon), "slot %s beyond the booking horizon", slot.Date)
	}
}

func TestExecute_ConflictRemovesSlots(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{{
		ID:            3,
		Status:        domain.StatusScheduled,
		StartDateTime: time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC),
	}}}
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID:  10,
		ServiceIDs: []int64{1},
		RangeStart: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		RangeEnd:   time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	// the whole morning is taken, afternoon remains
	require.Len(t, resp.Slots, 10)
	assert.Equal(t, types.TimeString("13:00"), resp.Slots[0].StartTime)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID:  404,
		ServiceIDs: []int64{1},
	})

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_NoCompatibleServices(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)
	uc.vehicleRepo = &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 10, ClientID: 1, Type: domain.TypeCar, Size: domain.SizeExtraLarge}}

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID:  10,
		ServiceIDs: []int64{1},
	})

	assert.ErrorIs(t, err, ErrNoCompatibleServices)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{VehicleID: 10})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
