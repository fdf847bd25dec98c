package vehicles

import (
	"context"

	"github.com/brightshine-detailing/scheduler-service/internal/service/catalog/models"
)

type CatalogService interface {
	CreateVehicle(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error)
	GetVehicle(ctx context.Context, id int64) (*models.VehicleResponse, error)
	ListVehicles(ctx context.Context, clientID *int64) (*models.VehicleListResponse, error)
	DeleteVehicle(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
