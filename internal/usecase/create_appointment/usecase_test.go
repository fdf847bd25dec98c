package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	clientRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/client"
	vehicleRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/vehicle"
	"github.com/brightshine-detailing/scheduler-service/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.ID = 42
	appt.CreatedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	appt.UpdatedAt = appt.CreatedAt
	r.created = appt
	return appt, nil
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

type fakeClientRepo struct {
	client *domain.Client
}

func (r *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	if r.client == nil || r.client.ID != id {
		return nil, clientRepo.ErrClientNotFound
	}
	return r.client, nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (p *fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

func waxService() *domain.Service {
	return &domain.Service{
		ID:                2,
		Name:              "Wax Protection",
		VehicleType:       domain.TypeCar,
		DryingTimeMinutes: 120,
		Configurations: map[domain.VehicleSize]domain.ServiceConfiguration{
			domain.SizeMedium: {Available: true, DurationHours: 1, DurationMinutes: 30, Price: 150},
		},
	}
}

func newTestUseCase(apptRepo *fakeAppointmentRepo, now time.Time) *UseCase {
	uc := NewUseCase(
		apptRepo,
		&fakeServiceRepo{services: []*domain.Service{waxService()}},
		&fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 10, ClientID: 1, Type: domain.TypeCar, Size: domain.SizeMedium}},
		&fakeClientRepo{client: &domain.Client{ID: 1, Name: "Ana"}},
		&fakeTxManager{},
		domain.DefaultBusinessSettings(),
		&nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	// Tuesday 2025-03-04 at 10:00
	return &Request{
		ClientID:      1,
		VehicleID:     10,
		ServiceIDs:    []int64{2},
		StartDateTime: time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	// 90 minutes of work starting 10:00
	assert.Equal(t, time.Date(2025, 3, 4, 11, 30, 0, 0, time.UTC), resp.EndDateTime)
	// 120 minutes of drying after the work end
	require.NotNil(t, resp.DryingEndDateTime)
	assert.Equal(t, time.Date(2025, 3, 4, 13, 30, 0, 0, time.UTC), *resp.DryingEndDateTime)
	assert.Equal(t, 150.0, resp.TotalPrice)
	require.NotNil(t, repo.created)
}

func TestExecute_NoDryingLeavesDryingEndNil(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)
	uc.serviceRepo = &fakeServiceRepo{services: []*domain.Service{{
		ID:          2,
		VehicleType: domain.TypeCar,
		Configurations: map[domain.VehicleSize]domain.ServiceConfiguration{
			domain.SizeMedium: {Available: true, DurationHours: 1, Price: 80},
		},
	}}}

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Nil(t, resp.DryingEndDateTime)
}

func TestExecute_ScheduleConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{{
		ID:            7,
		Status:        domain.StatusScheduled,
		StartDateTime: time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC),
	}}}
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrScheduleConflict)
	assert.Nil(t, repo.created)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{{
		ID:            7,
		Status:        domain.StatusCancelled,
		StartDateTime: time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC),
	}}}
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_StartInPast(t *testing.T) {
	now := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStartInPast)
}

func TestExecute_SameDayBookingDisabled(t *testing.T) {
	now := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)
	uc.settings.SameDayBooking = false

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSameDayBookingDisabled)
}

func TestExecute_SameDayBookingEnabledAllowsToday(t *testing.T) {
	now := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_TooFarInFuture(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	req := validRequest()
	req.StartDateTime = time.Date(2025, 5, 6, 10, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTooFarInFuture)
}

func TestExecute_VehicleOfAnotherClient(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)
	uc.vehicleRepo = &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 10, ClientID: 99, Type: domain.TypeCar, Size: domain.SizeMedium}}

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	req := validRequest()
	req.VehicleID = 404

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_ClientNotFound(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	req := validRequest()
	req.ClientID = 404

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_NoCompatibleServices(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)
	uc.vehicleRepo = &fakeVehicleRepo{vehicle: &domain.Vehicle{ID: 10, ClientID: 1, Type: domain.TypeTruck, Size: domain.SizeExtraLarge}}

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNoCompatibleServices)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, now)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"zero client", func(req *Request) { req.ClientID = 0 }},
		{"zero vehicle", func(req *Request) { req.VehicleID = 0 }},
		{"no services", func(req *Request) { req.ServiceIDs = nil }},
		{"negative service id", func(req *Request) { req.ServiceIDs = []int64{-1} }},
		{"zero start", func(req *Request) { req.StartDateTime = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ObservationsAndResponsiblePropagate(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	req := validRequest()
	req.Observations = ptr.Ptr("pet hair in the back seats")
	req.Responsible = ptr.Ptr("Carlos")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.Observations)
	assert.Equal(t, "pet hair in the back seats", *resp.Observations)
	require.NotNil(t, resp.Responsible)
	assert.Equal(t, "Carlos", *resp.Responsible)
}
