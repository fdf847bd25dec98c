package check_schedule

import (
	"context"
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
)

// AppointmentRepository loads the appointment snapshot for conflict checks.
type AppointmentRepository interface {
	GetOverlappingWindow(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// ServiceRepository loads the selected catalog services.
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// VehicleRepository loads the vehicle whose size selects service durations.
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled printf logger interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
