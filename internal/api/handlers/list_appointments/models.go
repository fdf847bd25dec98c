package list_appointments

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	"github.com/brightshine-detailing/scheduler-service/internal/service/appointments/models"
)

// ToServiceRequest builds the listing filter from query parameters.
//
// Supported parameters: clientId, vehicleId, startDate, endDate (YYYY-MM-DD),
// status, includeInactive.
func ToServiceRequest(query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if raw := query.Get("clientId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid clientId: %v", err)
		}
		req.ClientID = &id
	}

	if raw := query.Get("vehicleId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid vehicleId: %v", err)
		}
		req.VehicleID = &id
	}

	if raw := query.Get("startDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %v", err)
		}
		req.StartDate = &date
	}

	if raw := query.Get("endDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %v", err)
		}
		// the filter's end bound is exclusive, include the named day
		end := date.AddDate(0, 0, 1)
		req.EndDate = &end
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %v", err)
		}
		req.IncludeInactive = include
	}

	return req, nil
}
