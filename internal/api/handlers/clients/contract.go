package clients

import (
	"context"

	"github.com/brightshine-detailing/scheduler-service/internal/service/catalog/models"
)

type CatalogService interface {
	CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error)
	GetClient(ctx context.Context, id int64) (*models.ClientResponse, error)
	ListClients(ctx context.Context) (*models.ClientListResponse, error)
	DeleteClient(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
