package check_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	vehicleRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/vehicle"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (r *fakeAppointmentRepo) GetOverlappingWindow(_ context.Context, _, _ time.Time) ([]*domain.Appointment, error) {
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

func newTestUseCase(repo *fakeAppointmentRepo) *UseCase {
	return NewUseCase(
		repo,
		&fakeServiceRepo{services: []*domain.Service{washService()}},
		&fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 10, ClientID: 1, Type: domain.TypeCar, Size: domain.SizeMedium}},
		domain.DefaultBusinessSettings(),
		&nopLogger{},
	)
}

func TestExecute_FreeSlot(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID:  10,
		ServiceIDs: []int64{1},
		// Monday 10:00
		StartDateTime: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.True(t, resp.CanSchedule)
	assert.Empty(t, resp.Conflicts)
	assert.Equal(t, time.Date(2025, 3, 3, 11, 30, 0, 0, time.UTC), resp.WorkEndTime)
	assert.Equal(t, resp.WorkEndTime, resp.ServiceCompleteTime)
	assert.Equal(t, 90, resp.Duration.WorkDuration)
}

func TestExecute_ConflictReported(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{appointments: []*domain.Appointment{{
		ID:            5,
		Status:        domain.StatusScheduled,
		StartDateTime: time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 3, 3, 13, 30, 0, 0, time.UTC),
	}}})

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID:     10,
		ServiceIDs:    []int64{1},
		StartDateTime: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, resp.CanSchedule)
	require.Len(t, resp.Conflicts, 1)
	assert.Contains(t, resp.Conflicts[0], "appointment #5")
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID:  10,
		ServiceIDs: []int64{1},
		// lunch break
		StartDateTime: time.Date(2025, 3, 3, 12, 15, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, resp.CanSchedule)
	require.Len(t, resp.Conflicts, 1)
	assert.Contains(t, resp.Conflicts[0], "outside working hours")
}

func TestExecute_VehicleNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID:     404,
		ServiceIDs:    []int64{1},
		StartDateTime: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_NoCompatibleServices(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})
	uc.vehicleRepo = &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 10, ClientID: 1, Type: domain.TypeCar, Size: domain.SizeExtraLarge}}

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID:     10,
		ServiceIDs:    []int64{1},
		StartDateTime: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrNoCompatibleServices)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID:  10,
		ServiceIDs: []int64{1},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
