package models

import (
	"errors"
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned when a status string is unknown
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// ListAppointmentsRequest filters the appointment listing.
type ListAppointmentsRequest struct {
	ClientID        *int64     `json:"clientId,omitempty"`
	VehicleID       *int64     `json:"vehicleId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into the storage filter.
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		ClientID:        r.ClientID,
		VehicleID:       r.VehicleID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest changes an appointment's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CancelAppointmentRequest cancels an appointment.
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// AppointmentResponse is the outward representation of an appointment.
type AppointmentResponse struct {
	ID                 int64      `json:"id"`
	ClientID           int64      `json:"clientId"`
	VehicleID          int64      `json:"vehicleId"`
	ServiceIDs         []int64    `json:"serviceIds"`
	StartDateTime      time.Time  `json:"startDateTime"`
	EndDateTime        time.Time  `json:"endDateTime"`
	DryingEndDateTime  *time.Time `json:"dryingEndDateTime,omitempty"`
	Status             string     `json:"status"`
	Observations       *string    `json:"observations,omitempty"`
	Responsible        *string    `json:"responsible,omitempty"`
	TotalPrice         float64    `json:"totalPrice"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// AppointmentListResponse wraps a listing.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment converts a domain appointment into a response.
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 appt.ID,
		ClientID:           appt.ClientID,
		VehicleID:          appt.VehicleID,
		ServiceIDs:         appt.ServiceIDs,
		StartDateTime:      appt.StartDateTime,
		EndDateTime:        appt.EndDateTime,
		DryingEndDateTime:  appt.DryingEndDateTime,
		Status:             string(appt.Status),
		Observations:       appt.Observations,
		Responsible:        appt.Responsible,
		TotalPrice:         appt.TotalPrice,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        appt.CancelledAt,
		CreatedAt:          appt.CreatedAt,
		UpdatedAt:          appt.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a domain listing into a response.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	responses := make([]*AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		responses = append(responses, FromDomainAppointment(appt))
	}
	return &AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}

// ToDomainStatus validates and converts a status string.
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(status) {
	case domain.StatusScheduled, domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled:
		return domain.AppointmentStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
