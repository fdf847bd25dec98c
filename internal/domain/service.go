package domain

import "time"

// ServiceCategory groups services on the catalog screens
type ServiceCategory string

const (
	CategoryCleaning   ServiceCategory = "cleaning"
	CategoryDetailing  ServiceCategory = "detailing"
	CategoryPainting   ServiceCategory = "painting"
	CategoryProtection ServiceCategory = "protection"
	CategoryRepair     ServiceCategory = "repair"
)

// ServiceConfiguration is the per-vehicle-size pricing and duration record.
// Duration covers active work only; drying time lives on the Service.
type ServiceConfiguration struct {
	Available       bool    `json:"available"`
	DurationHours   int     `json:"durationHours"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// WorkMinutes returns the active-work duration in minutes.
func (c ServiceConfiguration) WorkMinutes() int {
	return c.DurationHours*60 + c.DurationMinutes
}

// Service represents a detailing service offered by the shop.
//
// DryingTimeMinutes is a passive phase appended after active work; when
// several services are combined the longest drying time applies, drying
// phases do not stack.
type Service struct {
	ID                int64
	Name              string
	Description       string
	VehicleType       VehicleType
	Category          ServiceCategory
	DryingTimeMinutes int

	RequiresEntryChecklist bool
	RequiresExitChecklist  bool

	Configurations map[VehicleSize]ServiceConfiguration

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConfigurationFor returns the configuration for a vehicle size, with a
// second result reporting whether the service is actually offered for it.
func (s *Service) ConfigurationFor(size VehicleSize) (ServiceConfiguration, bool) {
	cfg, ok := s.Configurations[size]
	if !ok || !cfg.Available {
		return ServiceConfiguration{}, false
	}
	return cfg, true
}

// CompatibleWith returns true if the service can be performed on the vehicle.
func (s *Service) CompatibleWith(v *Vehicle) bool {
	if s.VehicleType != v.Type {
		return false
	}
	_, ok := s.ConfigurationFor(v.Size)
	return ok
}
