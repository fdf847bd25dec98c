package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	clientRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/client"
	serviceRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/service"
	vehicleRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/vehicle"
	"github.com/brightshine-detailing/scheduler-service/internal/service/catalog/models"
)

// Service manages the shop catalog: offered services with per-size pricing,
// registered clients and their vehicles.
type Service struct {
	serviceRepo ServiceRepository
	vehicleRepo VehicleRepository
	clientRepo  ClientRepository
	logger      Logger
}

// NewService creates a catalog service.
func NewService(
	serviceRepo ServiceRepository,
	vehicleRepo VehicleRepository,
	clientRepo ClientRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		vehicleRepo: vehicleRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

// CreateService adds a service to the catalog.
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%s, vehicleType=%s", req.Name, req.VehicleType)

	if err := validateServiceRequest(req); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, req.ToDomainService())
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// GetService fetches one catalog service.
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// ListServices returns the catalog, optionally filtered by vehicle type.
func (s *Service) ListServices(ctx context.Context, vehicleType *string) (*models.ServiceListResponse, error) {
	var domainType *domain.VehicleType
	if vehicleType != nil {
		t := domain.VehicleType(*vehicleType)
		if !domain.ValidVehicleType(t) {
			s.logger.Warn("ListServices: invalid vehicle type=%s", *vehicleType)
			return nil, fmt.Errorf("%w: invalid vehicle type", ErrInvalidInput)
		}
		domainType = &t
	}

	services, err := s.serviceRepo.List(ctx, domainType)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// ListCompatibleServices returns the catalog entries that can actually be
// performed on the given vehicle: matching type and an available
// configuration for its size.
func (s *Service) ListCompatibleServices(ctx context.Context, vehicleID int64) (*models.ServiceListResponse, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("ListCompatibleServices: vehicle id=%d not found", vehicleID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("ListCompatibleServices: failed to get vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: ListCompatibleServices - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.List(ctx, &vehicle.Type)
	if err != nil {
		s.logger.Error("ListCompatibleServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCompatibleServices - repository error: %v", ErrInternal, err)
	}

	compatible := make([]*domain.Service, 0, len(services))
	for _, svc := range services {
		if svc.CompatibleWith(vehicle) {
			compatible = append(compatible, svc)
		}
	}

	s.logger.Info("ListCompatibleServices: %d of %d services fit vehicle id=%d",
		len(compatible), len(services), vehicleID)
	return models.FromDomainServiceList(compatible), nil
}

// UpdateService replaces a catalog service.
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: updating service id=%d", id)

	if err := validateServiceRequest(req); err != nil {
		s.logger.Warn("UpdateService: validation failed: %v", err)
		return nil, err
	}

	svc := req.ToDomainService()
	svc.ID = id

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	return s.GetService(ctx, id)
}

// DeleteService removes a service from the catalog.
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CreateVehicle registers a vehicle for a client.
func (s *Service) CreateVehicle(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("CreateVehicle: client=%d, plate=%s", req.ClientID, req.Plate)

	if err := validateVehicleRequest(req); err != nil {
		s.logger.Warn("CreateVehicle: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("CreateVehicle: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("CreateVehicle: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: CreateVehicle - repository error: %v", ErrInternal, err)
	}

	created, err := s.vehicleRepo.Create(ctx, req.ToDomainVehicle())
	if err != nil {
		s.logger.Error("CreateVehicle: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateVehicle - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateVehicle: created vehicle id=%d", created.ID)
	return models.FromDomainVehicle(created), nil
}

// GetVehicle fetches one vehicle.
func (s *Service) GetVehicle(ctx context.Context, id int64) (*models.VehicleResponse, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("GetVehicle: vehicle id=%d not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetVehicle: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetVehicle - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicle(v), nil
}

// ListVehicles returns vehicles, optionally only one client's.
func (s *Service) ListVehicles(ctx context.Context, clientID *int64) (*models.VehicleListResponse, error) {
	vehicles, err := s.vehicleRepo.List(ctx, clientID)
	if err != nil {
		s.logger.Error("ListVehicles: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListVehicles - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListVehicles: fetched %d vehicles", len(vehicles))
	return models.FromDomainVehicleList(vehicles), nil
}

// DeleteVehicle removes a vehicle.
func (s *Service) DeleteVehicle(ctx context.Context, id int64) error {
	s.logger.Info("DeleteVehicle: deleting vehicle id=%d", id)

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("DeleteVehicle: vehicle id=%d not found", id)
			return ErrVehicleNotFound
		}
		s.logger.Error("DeleteVehicle: repository error for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteVehicle - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CreateClient registers a client.
func (s *Service) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("CreateClient: name=%s", req.Name)

	if req.Name == "" {
		s.logger.Warn("CreateClient: empty name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		s.logger.Warn("CreateClient: empty phone")
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	created, err := s.clientRepo.Create(ctx, req.ToDomainClient())
	if err != nil {
		s.logger.Error("CreateClient: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateClient: created client id=%d", created.ID)
	return models.FromDomainClient(created), nil
}

// GetClient fetches one client.
func (s *Service) GetClient(ctx context.Context, id int64) (*models.ClientResponse, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetClient: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetClient: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetClient - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(c), nil
}

// ListClients returns every registered client.
func (s *Service) ListClients(ctx context.Context) (*models.ClientListResponse, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListClients: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClients - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListClients: fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// DeleteClient removes a client.
func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	s.logger.Info("DeleteClient: deleting client id=%d", id)

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("DeleteClient: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("DeleteClient: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteClient - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateServiceRequest(req *models.CreateServiceRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.ValidVehicleType(domain.VehicleType(req.VehicleType)) {
		return fmt.Errorf("%w: invalid vehicle type", ErrInvalidInput)
	}
	if req.DryingTimeMinutes < 0 {
		return fmt.Errorf("%w: drying time must not be negative", ErrInvalidInput)
	}
	if len(req.Configurations) == 0 {
		return fmt.Errorf("%w: at least one size configuration is required", ErrInvalidInput)
	}
	for size, cfg := range req.Configurations {
		if !domain.ValidVehicleSize(domain.VehicleSize(size)) {
			return fmt.Errorf("%w: invalid vehicle size %q", ErrInvalidInput, size)
		}
		if cfg.DurationHours < 0 || cfg.DurationMinutes < 0 || cfg.DurationMinutes > 59 {
			return fmt.Errorf("%w: invalid duration for size %q", ErrInvalidInput, size)
		}
		if cfg.Price < 0 {
			return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
	}
	return nil
}

func validateVehicleRequest(req *models.CreateVehicleRequest) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.Plate == "" {
		return fmt.Errorf("%w: plate is required", ErrInvalidInput)
	}
	if !domain.ValidVehicleType(domain.VehicleType(req.Type)) {
		return fmt.Errorf("%w: invalid vehicle type", ErrInvalidInput)
	}
	if !domain.ValidVehicleSize(domain.VehicleSize(req.Size)) {
		return fmt.Errorf("%w: invalid vehicle size", ErrInvalidInput)
	}
	return nil
}
