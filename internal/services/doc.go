// Package services implements the business logic layer between the HTTP
// handlers, the CLI and the master projector.
//
// # Service Layer Responsibilities
//
//   - Resolving workbook names inside the configured input directory
//   - Running master projections for a quarter or a calendar month
//   - Projecting a whole directory concurrently with bounded workers
//   - Cross-cutting concerns: tracing spans, metrics and structured logs
//   - Converting projector results into API contracts
//
// # Common Service Pattern
//
// Services take their collaborators in the constructor and log through a
// component-scoped *slog.Logger:
//
//	svc, err := services.NewProjectionService(cfg, tracer, metrics, logger)
//	result, err := svc.Project(ctx, api.ProjectionRequest{File: "master.xlsx", Quarter: 1, Year: 2019})
package services
