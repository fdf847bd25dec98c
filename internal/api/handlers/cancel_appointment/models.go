package cancel_appointment

import "github.com/brightshine-detailing/scheduler-service/internal/service/appointments/models"

// CancelAppointmentRequest is the HTTP request model.
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{CancellationReason: r.CancellationReason}
}
