package check_schedule

import (
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	checkSchedule "github.com/brightshine-detailing/scheduler-service/internal/usecase/check_schedule"
)

// CheckScheduleRequest is the HTTP request model.
type CheckScheduleRequest struct {
	VehicleID     int64   `json:"vehicleId"`
	ServiceIDs    []int64 `json:"serviceIds"`
	StartDateTime string  `json:"startDateTime"`
}

// ToUseCaseRequest parses the start instant and builds the use case request.
func (r *CheckScheduleRequest) ToUseCaseRequest() (*checkSchedule.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.StartDateTime)
	if err != nil {
		return nil, err
	}

	return &checkSchedule.Request{
		VehicleID:     r.VehicleID,
		ServiceIDs:    r.ServiceIDs,
		StartDateTime: start,
	}, nil
}

// CheckScheduleResponse is the HTTP response model.
type CheckScheduleResponse struct {
	CanSchedule         bool     `json:"canSchedule"`
	WorkEndTime         string   `json:"workEndTime"`
	ServiceCompleteTime string   `json:"serviceCompleteTime"`
	Conflicts           []string `json:"conflicts"`
	WorkDurationMinutes int      `json:"workDurationMinutes"`
	DryingTimeMinutes   int      `json:"dryingTimeMinutes"`
	TotalPrice          float64  `json:"totalPrice"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *checkSchedule.Response) *CheckScheduleResponse {
	conflicts := resp.Conflicts
	if conflicts == nil {
		conflicts = []string{}
	}

	return &CheckScheduleResponse{
		CanSchedule:         resp.CanSchedule,
		WorkEndTime:         resp.WorkEndTime.Format(domain.DateTimeFormat),
		ServiceCompleteTime: resp.ServiceCompleteTime.Format(domain.DateTimeFormat),
		Conflicts:           conflicts,
		WorkDurationMinutes: resp.Duration.WorkDuration,
		DryingTimeMinutes:   resp.Duration.DryingDuration,
		TotalPrice:          resp.Duration.TotalPrice,
	}
}
