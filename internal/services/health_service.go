package services

import (
	"context"
	"log/slog"
	"os"
	"time"

	"datamaps/internal/config"
	"datamaps/internal/infrastructure"
	"datamaps/pkg/contracts"
	"datamaps/pkg/contracts/domain"
)

// HealthService reports whether the service can reach its input directory
// and which of the expected input files are present.
type HealthService struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewHealthService creates a health service over paths.
func NewHealthService(paths *config.Paths, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		paths:  paths,
		logger: infrastructure.WithComponent(logger, "health_service"),
	}
}

// Check returns "ok" when the input directory exists and "degraded"
// otherwise.
func (s *HealthService) Check(ctx context.Context) domain.Health {
	status := "ok"
	if info, err := os.Stat(s.paths.InputDir); err != nil || !info.IsDir() {
		status = "degraded"
		s.logger.WarnContext(ctx, "input directory unavailable", slog.String("input_dir", s.paths.InputDir))
	}

	checked := s.paths.CheckInputFiles()
	files := make([]domain.InputFile, 0, len(checked))
	for _, f := range checked {
		files = append(files, domain.InputFile{Role: f.Role, Path: f.Path, Exists: f.Exists})
	}
	if missing := config.MissingInputFiles(checked); len(missing) > 0 {
		s.logger.DebugContext(ctx, "input files missing", slog.Int("missing", len(missing)))
	}

	return domain.Health{
		Status:   status,
		Version:  contracts.Version,
		InputDir: s.paths.InputDir,
		Files:    files,
		Time:     time.Now().UTC(),
	}
}
