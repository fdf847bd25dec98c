package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	"github.com/brightshine-detailing/scheduler-service/pkg/dbmetrics"
	"github.com/brightshine-detailing/scheduler-service/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"name",
	"description",
	"vehicle_type",
	"category",
	"drying_time_minutes",
	"requires_entry_checklist",
	"requires_exit_checklist",
	"configurations",
	"created_at",
	"updated_at",
}

// Repository persists the service catalog in PostgreSQL. Per-size
// configurations are stored as a JSONB column keyed by vehicle size.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a service catalog repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a catalog service.
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	configurations, err := json.Marshal(svc.Configurations)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal configurations: %v", ErrEncodeConfigurations, err)
	}

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"name",
			"description",
			"vehicle_type",
			"category",
			"drying_time_minutes",
			"requires_entry_checklist",
			"requires_exit_checklist",
			"configurations",
		).
		Values(
			svc.Name,
			svc.Description,
			svc.VehicleType,
			svc.Category,
			svc.DryingTimeMinutes,
			svc.RequiresEntryChecklist,
			svc.RequiresExitChecklist,
			configurations,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return svc, nil
}

// GetByID fetches a single service.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// GetByIDs fetches the services with the given IDs. Unknown IDs are simply
// absent from the result; the duration calculator tolerates them.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("services").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// List returns the whole catalog, optionally filtered by vehicle type.
func (r *Repository) List(ctx context.Context, vehicleType *domain.VehicleType) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("services").
		OrderBy("name ASC")

	if vehicleType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"vehicle_type": *vehicleType})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// Update replaces a catalog service.
func (r *Repository) Update(ctx context.Context, svc *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	configurations, err := json.Marshal(svc.Configurations)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal configurations: %v", ErrEncodeConfigurations, err)
	}

	query, args, err := psqlbuilder.Update("services").
		Set("name", svc.Name).
		Set("description", svc.Description).
		Set("vehicle_type", svc.VehicleType).
		Set("category", svc.Category).
		Set("drying_time_minutes", svc.DryingTimeMinutes).
		Set("requires_entry_checklist", svc.RequiresEntryChecklist).
		Set("requires_exit_checklist", svc.RequiresExitChecklist).
		Set("configurations", configurations).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": svc.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Delete removes a service from the catalog.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

func scanService(scan func(dest ...interface{}) error) (*domain.Service, error) {
	var svc domain.Service
	var configurations []byte
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.VehicleType,
		&svc.Category,
		&svc.DryingTimeMinutes,
		&svc.RequiresEntryChecklist,
		&svc.RequiresExitChecklist,
		&configurations,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(configurations, &svc.Configurations); err != nil {
		return nil, fmt.Errorf("%w: unmarshal configurations: %v", ErrEncodeConfigurations, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}

func scanServices(rows *sql.Rows) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)

	for rows.Next() {
		svc, err := scanService(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
