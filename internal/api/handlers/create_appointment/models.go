package create_appointment

import (
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	createAppointment "github.com/brightshine-detailing/scheduler-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest is the HTTP request model.
type CreateAppointmentRequest struct {
	ClientID      int64   `json:"clientId"`
	VehicleID     int64   `json:"vehicleId"`
	ServiceIDs    []int64 `json:"serviceIds"`
	StartDateTime string  `json:"startDateTime"`
	Observations  *string `json:"observations,omitempty"`
	Responsible   *string `json:"responsible,omitempty"`
}

// ToUseCaseRequest parses the start instant and builds the use case request.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.StartDateTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:      r.ClientID,
		VehicleID:     r.VehicleID,
		ServiceIDs:    r.ServiceIDs,
		StartDateTime: start,
		Observations:  r.Observations,
		Responsible:   r.Responsible,
	}, nil
}

// AppointmentResponse is the HTTP response model.
type AppointmentResponse struct {
	ID                int64   `json:"id"`
	ClientID          int64   `json:"clientId"`
	VehicleID         int64   `json:"vehicleId"`
	ServiceIDs        []int64 `json:"serviceIds"`
	StartDateTime     string  `json:"startDateTime"`
	EndDateTime       string  `json:"endDateTime"`
	DryingEndDateTime *string `json:"dryingEndDateTime,omitempty"`
	Status            string  `json:"status"`
	Observations      *string `json:"observations,omitempty"`
	Responsible       *string `json:"responsible,omitempty"`
	TotalPrice        float64 `json:"totalPrice"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	out := &AppointmentResponse{
		ID:            resp.ID,
		ClientID:      resp.ClientID,
		VehicleID:     resp.VehicleID,
		ServiceIDs:    resp.ServiceIDs,
		StartDateTime: resp.StartDateTime.Format(domain.DateTimeFormat),
		EndDateTime:   resp.EndDateTime.Format(domain.DateTimeFormat),
		Status:        resp.Status,
		Observations:  resp.Observations,
		Responsible:   resp.Responsible,
		TotalPrice:    resp.TotalPrice,
		CreatedAt:     resp.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt:     resp.UpdatedAt.Format(domain.DateTimeFormat),
	}

	if resp.DryingEndDateTime != nil {
		formatted := resp.DryingEndDateTime.Format(domain.DateTimeFormat)
		out.DryingEndDateTime = &formatted
	}

	return out
}
