package list_appointments

import (
	"context"

	"github.com/brightshine-detailing/scheduler-service/internal/service/appointments/models"
)

type AppointmentService interface {
	List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
	Today(ctx context.Context) (*models.AppointmentListResponse, error)
	Upcoming(ctx context.Context) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
