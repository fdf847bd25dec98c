// Package duration aggregates the active-work and passive-drying durations
// of a service selection for a given vehicle size.
package duration

import "github.com/brightshine-detailing/scheduler-service/internal/domain"

// Result is the combined duration of a service selection, in minutes.
type Result struct {
	// WorkDuration is the summed active-work time of all selected services.
	WorkDuration int

	// DryingDuration is the longest drying time among the selected services.
	// Drying phases share the passive bay and overlap, they do not stack.
	DryingDuration int

	// TotalDuration is WorkDuration + DryingDuration.
	TotalDuration int

	// TotalPrice is the summed price of the selected services for the size.
	TotalPrice float64
}

// CalculateServiceDuration combines the selected services' durations for the
// given vehicle size.
//
// A selected service that is missing from the catalog slice, lacks a
// configuration for the size, or whose configuration is marked unavailable
// contributes zero work time and price. Callers are expected to have
// pre-filtered the selection to compatible services; incompatibility here is
// silently tolerated rather than rejected.
func CalculateServiceDuration(serviceIDs []int64, size domain.VehicleSize, services []*domain.Service) Result {
	byID := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	var result Result

	for _, id := range serviceIDs {
		svc, ok := byID[id]
		if !ok {
			continue
		}

		if cfg, ok := svc.ConfigurationFor(size); ok {
			result.WorkDuration += cfg.WorkMinutes()
			result.TotalPrice += cfg.Price
		}

		if svc.DryingTimeMinutes > result.DryingDuration {
			result.DryingDuration = svc.DryingTimeMinutes
		}
	}

	result.TotalDuration = result.WorkDuration + result.DryingDuration
	return result
}
