package find_available_slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	findAvailableSlots "github.com/brightshine-detailing/scheduler-service/internal/usecase/find_available_slots"
)

// AvailableSlotsResponse is the HTTP response model.
type AvailableSlotsResponse struct {
	VehicleID           int64           `json:"vehicleId"`
	WorkDurationMinutes int             `json:"workDurationMinutes"`
	DryingTimeMinutes   int             `json:"dryingTimeMinutes"`
	TotalPrice          float64         `json:"totalPrice"`
	Slots               []AvailableSlot `json:"slots"`
}

// AvailableSlot is one bookable start.
type AvailableSlot struct {
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	WorkEndDate     string `json:"workEndDate"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *findAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Date:            slot.Date.Format(domain.DateFormat),
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			WorkEndDate:     slot.WorkEndDate.Format(domain.DateFormat),
			DurationMinutes: slot.AvailableDuration,
		}
	}

	return &AvailableSlotsResponse{
		VehicleID:           resp.VehicleID,
		WorkDurationMinutes: resp.Duration.WorkDuration,
		DryingTimeMinutes:   resp.Duration.DryingDuration,
		TotalPrice:          resp.Duration.TotalPrice,
		Slots:               slots,
	}
}

// ToUseCaseRequest builds the use case request from query parameters.
func ToUseCaseRequest(vehicleIDStr, serviceIDsStr, fromStr, toStr, limitStr string) (*findAvailableSlots.Request, error) {
	vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicleId: %v", err)
	}

	serviceIDs, err := parseServiceIDs(serviceIDsStr)
	if err != nil {
		return nil, err
	}

	req := &findAvailableSlots.Request{
		VehicleID:  vehicleID,
		ServiceIDs: serviceIDs,
	}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from date: %v", err)
		}
		req.RangeStart = from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to date: %v", err)
		}
		req.RangeEnd = to
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("invalid limit: %v", err)
		}
		req.Limit = limit
	}

	return req, nil
}

func parseServiceIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, fmt.Errorf("serviceIds is required")
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid service id %q: %v", part, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
