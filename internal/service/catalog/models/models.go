package models

import (
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
)

// ServiceConfigurationPayload mirrors domain.ServiceConfiguration on the wire.
type ServiceConfigurationPayload struct {
	Available       bool    `json:"available"`
	DurationHours   int     `json:"durationHours"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// CreateServiceRequest adds a service to the catalog.
type CreateServiceRequest struct {
	Name                   string                                 `json:"name"`
	Description            string                                 `json:"description,omitempty"`
	VehicleType            string                                 `json:"vehicleType"`
	Category               string                                 `json:"category,omitempty"`
	DryingTimeMinutes      int                                    `json:"dryingTimeMinutes,omitempty"`
	RequiresEntryChecklist bool                                   `json:"requiresEntryChecklist,omitempty"`
	RequiresExitChecklist  bool                                   `json:"requiresExitChecklist,omitempty"`
	Configurations         map[string]ServiceConfigurationPayload `json:"configurations"`
}

// UpdateServiceRequest replaces a catalog service.
type UpdateServiceRequest = CreateServiceRequest

// ServiceResponse is the outward representation of a catalog service.
type ServiceResponse struct {
	ID                     int64                                  `json:"id"`
	Name                   string                                 `json:"name"`
	Description            string                                 `json:"description,omitempty"`
	VehicleType            string                                 `json:"vehicleType"`
	Category               string                                 `json:"category,omitempty"`
	DryingTimeMinutes      int                                    `json:"dryingTimeMinutes"`
	RequiresEntryChecklist bool                                   `json:"requiresEntryChecklist"`
	RequiresExitChecklist  bool                                   `json:"requiresExitChecklist"`
	Configurations         map[string]ServiceConfigurationPayload `json:"configurations"`
	CreatedAt              time.Time                              `json:"createdAt"`
	UpdatedAt              time.Time                              `json:"updatedAt"`
}

// ServiceListResponse wraps a catalog listing.
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// ToDomainService converts the request into a domain service.
func (r *CreateServiceRequest) ToDomainService() *domain.Service {
	configurations := make(map[domain.VehicleSize]domain.ServiceConfiguration, len(r.Configurations))
	for size, cfg := range r.Configurations {
		configurations[domain.VehicleSize(size)] = domain.ServiceConfiguration{
			Available:       cfg.Available,
			DurationHours:   cfg.DurationHours,
			DurationMinutes: cfg.DurationMinutes,
			Price:           cfg.Price,
		}
	}

	return &domain.Service{
		Name:                   r.Name,
		Description:            r.Description,
		VehicleType:            domain.VehicleType(r.VehicleType),
		Category:               domain.ServiceCategory(r.Category),
		DryingTimeMinutes:      r.DryingTimeMinutes,
		RequiresEntryChecklist: r.RequiresEntryChecklist,
		RequiresExitChecklist:  r.RequiresExitChecklist,
		Configurations:         configurations,
	}
}

// FromDomainService converts a domain service into a response.
func FromDomainService(svc *domain.Service) *ServiceResponse {
	configurations := make(map[string]ServiceConfigurationPayload, len(svc.Configurations))
	for size, cfg := range svc.Configurations {
		configurations[string(size)] = ServiceConfigurationPayload{
			Available:       cfg.Available,
			DurationHours:   cfg.DurationHours,
			DurationMinutes: cfg.DurationMinutes,
			Price:           cfg.Price,
		}
	}

	return &ServiceResponse{
		ID:                     svc.ID,
		Name:                   svc.Name,
		Description:            svc.Description,
		VehicleType:            string(svc.VehicleType),
		Category:               string(svc.Category),
		DryingTimeMinutes:      svc.DryingTimeMinutes,
		RequiresEntryChecklist: svc.RequiresEntryChecklist,
		RequiresExitChecklist:  svc.RequiresExitChecklist,
		Configurations:         configurations,
		CreatedAt:              svc.CreatedAt,
		UpdatedAt:              svc.UpdatedAt,
	}
}

// FromDomainServiceList converts a domain catalog listing into a response.
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	responses := make([]*ServiceResponse, 0, len(services))
	for _, svc := range services {
		responses = append(responses, FromDomainService(svc))
	}
	return &ServiceListResponse{Services: responses, Total: len(responses)}
}

// CreateVehicleRequest registers a client vehicle.
type CreateVehicleRequest struct {
	ClientID int64  `json:"clientId"`
	Plate    string `json:"plate"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Year     int    `json:"year,omitempty"`
	Color    string `json:"color,omitempty"`
	Type     string `json:"type"`
	Size     string `json:"size"`
}

// ToDomainVehicle converts the request into a domain vehicle.
func (r *CreateVehicleRequest) ToDomainVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ClientID: r.ClientID,
		Plate:    r.Plate,
		Brand:    r.Brand,
		Model:    r.Model,
		Year:     r.Year,
		Color:    r.Color,
		Type:     domain.VehicleType(r.Type),
		Size:     domain.VehicleSize(r.Size),
	}
}

// VehicleResponse is the outward representation of a vehicle.
type VehicleResponse struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"clientId"`
	Plate     string    `json:"plate"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year,omitempty"`
	Color     string    `json:"color,omitempty"`
	Type      string    `json:"type"`
	Size      string    `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VehicleListResponse wraps a vehicle listing.
type VehicleListResponse struct {
	Vehicles []*VehicleResponse `json:"vehicles"`
	Total    int                `json:"total"`
}

// FromDomainVehicle converts a domain vehicle into a response.
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:        v.ID,
		ClientID:  v.ClientID,
		Plate:     v.Plate,
		Brand:     v.Brand,
		Model:     v.Model,
		Year:      v.Year,
		Color:     v.Color,
		Type:      string(v.Type),
		Size:      string(v.Size),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// FromDomainVehicleList converts a domain vehicle listing into a response.
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	responses := make([]*VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, FromDomainVehicle(v))
	}
	return &VehicleListResponse{Vehicles: responses, Total: len(responses)}
}

// CreateClientRequest registers a client.
type CreateClientRequest struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email,omitempty"`
	Address      *string `json:"address,omitempty"`
	Observations *string `json:"observations,omitempty"`
}

// ToDomainClient converts the request into a domain client.
func (r *CreateClientRequest) ToDomainClient() *domain.Client {
	return &domain.Client{
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		Observations: r.Observations,
	}
}

// ClientResponse is the outward representation of a client.
type ClientResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Observations *string   `json:"observations,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ClientListResponse wraps a client listing.
type ClientListResponse struct {
	Clients []*ClientResponse `json:"clients"`
	Total   int               `json:"total"`
}

// FromDomainClient converts a domain client into a response.
func FromDomainClient(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		Observations: c.Observations,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromDomainClientList converts a domain client listing into a response.
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	responses := make([]*ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, FromDomainClient(c))
	}
	return &ClientListResponse{Clients: responses, Total: len(responses)}
}
