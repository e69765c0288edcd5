package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"datamaps/internal/cleanser"
	"datamaps/internal/config"
	apperrors "datamaps/internal/errors"
	"datamaps/internal/files"
	"datamaps/internal/infrastructure"
	"datamaps/internal/master"
	"datamaps/internal/temporal"
	"datamaps/internal/workbook"
	api "datamaps/pkg/contracts/api/v1"
	"datamaps/pkg/contracts/domain"
)

// ProjectionService runs master projections against the input directory.
type ProjectionService struct {
	discovery *files.Discovery
	calendar  *temporal.Calendar
	cleanser  cleanser.Cleanser
	workers   int
	tracer    trace.Tracer
	metrics   *infrastructure.BusinessMetrics
	logger    *slog.Logger
}

// NewProjectionService builds the service from configuration. A nil tracer
// disables spans; nil metrics disables recording.
func NewProjectionService(cfg *config.Config, tracer trace.Tracer, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) (*ProjectionService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(infrastructure.InstrumentationName)
	}

	cal, err := temporal.NewCalendar(cfg.Temporal.Bounds())
	if err != nil {
		return nil, fmt.Errorf("invalid temporal bounds: %w", err)
	}

	workers := cfg.Batch.Workers
	if workers < 1 {
		workers = 1
	}

	logger = infrastructure.WithComponent(logger, "projection_service")
	logger.Info("projection service initialized",
		slog.String("input_dir", cfg.Paths.InputDir),
		slog.Int("workers", workers))

	return &ProjectionService{
		discovery: files.NewDiscovery(cfg.Paths.InputDir, workbook.Extensions...),
		calendar:  cal,
		cleanser:  cleanser.New(),
		workers:   workers,
		tracer:    tracer,
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// InputDir returns the directory workbook names are resolved against.
func (s *ProjectionService) InputDir() string { return s.discovery.BasePath() }

// Calendar returns the calendar projections are resolved with.
func (s *ProjectionService) Calendar() *temporal.Calendar { return s.calendar }

// Project projects the named workbook from the input directory.
func (s *ProjectionService) Project(ctx context.Context, req api.ProjectionRequest) (*domain.Projection, error) {
	path, err := s.discovery.Resolve(req.File)
	if err != nil {
		return nil, err
	}
	return s.ProjectPath(ctx, path, req.Quarter, req.Month, req.Year)
}

// ProjectPath projects the workbook at path. A non-zero month selects a
// month period, otherwise quarter is used.
func (s *ProjectionService) ProjectPath(ctx context.Context, path string, quarter, month, year int) (*domain.Projection, error) {
	if quarter != 0 && month != 0 {
		return nil, apperrors.NewAppValidationError("quarter and month are mutually exclusive", nil).
			WithContext("quarter", quarter).
			WithContext("month", month)
	}
	p, err := s.project(ctx, master.Path(path), filepath.Base(path), quarter, month, year)
	if err != nil {
		return nil, err
	}
	out := ToDomain(p)
	return &out, nil
}

func (s *ProjectionService) project(ctx context.Context, src master.Source, name string, quarter, month, year int) (*master.Projection, error) {
	kind := "quarter"
	if month != 0 {
		kind = "month"
	}

	ctx, span := s.tracer.Start(ctx, "projection.project", trace.WithAttributes(
		attribute.String("workbook", name),
		attribute.String("period.kind", kind),
		attribute.Int("period.quarter", quarter),
		attribute.Int("period.month", month),
		attribute.Int("period.year", year),
	))
	defer span.End()

	opts := []master.Option{
		master.WithCalendar(s.calendar),
		master.WithCleanser(s.cleanser),
		master.WithLogger(s.logger),
	}

	start := time.Now()
	var p *master.Projection
	period, err := master.Resolve(s.calendar, quarter, month, year)
	if err == nil {
		p, err = master.Project(ctx, src, period, opts...)
	}

	projects := 0
	if p != nil {
		projects = p.Len()
	}
	s.metrics.RecordProjection(ctx, kind, time.Since(start), projects, err)

	if err != nil {
		infrastructure.RecordError(ctx, err)
		s.logger.WarnContext(ctx, "projection failed",
			slog.String("workbook", name),
			slog.String("error", err.Error()))
		if errors.Is(err, workbook.ErrUnreadable) {
			err = apperrors.NewParsingError(fmt.Sprintf("workbook %s could not be read", name), err).
				WithContext("workbook", name)
		}
		return nil, fmt.Errorf("project %s: %w", name, err)
	}

	span.SetAttributes(attribute.Int("projects", projects))
	return p, nil
}

// Batch projects every workbook in the input directory for a quarter. Each
// workbook is opened by its own worker; per-file failures are reported in the
// result rather than aborting the batch.
func (s *ProjectionService) Batch(ctx context.Context, quarter, year int) (*domain.BatchResult, error) {
	period, err := s.calendar.ResolveQuarter(quarter, year)
	if err != nil {
		return nil, err
	}

	found, err := s.findWorkbooks()
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "projection.batch", trace.WithAttributes(
		attribute.Int("workbooks", len(found)),
		attribute.Int("workers", s.workers),
	))
	defer span.End()

	items := make([]domain.BatchItem, len(found))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, f := range found {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i] = s.batchItem(gctx, f, quarter, year)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &domain.BatchResult{
		Period: PeriodToDomain(period),
		Items:  items,
	}
	for _, item := range items {
		if item.Error != "" {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}

	s.logger.InfoContext(ctx, "batch projected",
		slog.String("period", period.String()),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed))

	return result, nil
}

func (s *ProjectionService) batchItem(ctx context.Context, f files.FileInfo, quarter, year int) domain.BatchItem {
	item := domain.BatchItem{File: f.Name}

	wb, err := workbook.Open(f.Path)
	if err != nil {
		item.Error = err.Error()
		return item
	}
	defer wb.Close()

	p, err := s.project(ctx, master.Opened(wb), f.Name, quarter, 0, year)
	if err != nil {
		item.Error = err.Error()
		return item
	}
	item.Projects = p.Len()
	return item
}

// ListWorkbooks returns the workbooks available in the input directory.
func (s *ProjectionService) ListWorkbooks(ctx context.Context) ([]domain.Workbook, error) {
	found, err := s.findWorkbooks()
	if err != nil {
		return nil, err
	}

	out := make([]domain.Workbook, 0, len(found))
	for _, f := range found {
		out = append(out, domain.Workbook{Name: f.Name, Size: f.Size, Modified: f.ModTime})
	}

	s.logger.DebugContext(ctx, "listed workbooks", slog.Int("count", len(out)))
	return out, nil
}

func (s *ProjectionService) findWorkbooks() ([]files.FileInfo, error) {
	dir := s.discovery.BasePath()
	found, err := s.discovery.FindWorkbooks(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.NewNotFoundError("input directory "+dir, err).WithContext("input_dir", dir)
	}
	if err != nil {
		return nil, apperrors.NewStorageError("failed to list workbooks", err).WithContext("input_dir", dir)
	}
	return found, nil
}
