package http

import (
	"context"

	api "datamaps/pkg/contracts/api/v1"
	"datamaps/pkg/contracts/domain"
)

// ProjectionServiceInterface is the projection behaviour the handlers need.
type ProjectionServiceInterface interface {
	Project(ctx context.Context, req api.ProjectionRequest) (*domain.Projection, error)
	Batch(ctx context.Context, quarter, year int) (*domain.BatchResult, error)
	ListWorkbooks(ctx context.Context) ([]domain.Workbook, error)
}

// HealthChecker reports service health.
type HealthChecker interface {
	Check(ctx context.Context) domain.Health
}
