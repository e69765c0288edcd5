package infrastructure

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics holds the application's instruments.
type BusinessMetrics struct {
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram

	ProjectionsTotal   metric.Int64Counter
	ProjectionDuration metric.Float64Histogram
	ProjectionProjects metric.Int64Histogram
	ProjectionErrors   metric.Int64Counter
}

// CreateBusinessMetrics creates application-specific metrics
func CreateBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	httpRequestsTotal, err := meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	httpRequestDuration, err := meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	projectionsTotal, err := meter.Int64Counter(
		"master_projections_total",
		metric.WithDescription("Total number of master workbook projections"),
	)
	if err != nil {
		return nil, err
	}

	projectionDuration, err := meter.Float64Histogram(
		"master_projection_duration_seconds",
		metric.WithDescription("Time taken to project a master workbook"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	projectionProjects, err := meter.Int64Histogram(
		"master_projection_projects",
		metric.WithDescription("Number of projects found per projection"),
	)
	if err != nil {
		return nil, err
	}

	projectionErrors, err := meter.Int64Counter(
		"master_projection_errors_total",
		metric.WithDescription("Total number of failed projections"),
	)
	if err != nil {
		return nil, err
	}

	return &BusinessMetrics{
		HTTPRequestsTotal:   httpRequestsTotal,
		HTTPRequestDuration: httpRequestDuration,
		ProjectionsTotal:    projectionsTotal,
		ProjectionDuration:  projectionDuration,
		ProjectionProjects:  projectionProjects,
		ProjectionErrors:    projectionErrors,
	}, nil
}

// RecordProjection records one projection. kind is "quarter" or "month".
func (m *BusinessMetrics) RecordProjection(ctx context.Context, kind string, duration time.Duration, projects int, err error) {
	if m == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "failure"
	}
	attrs := metric.WithAttributes(
		attribute.String("period.kind", kind),
		attribute.String("status", status),
	)

	m.ProjectionsTotal.Add(ctx, 1, attrs)
	m.ProjectionDuration.Record(ctx, duration.Seconds(), attrs)
	if err != nil {
		m.ProjectionErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("period.kind", kind)))
		return
	}
	m.ProjectionProjects.Record(ctx, int64(projects), metric.WithAttributes(attribute.String("period.kind", kind)))
}

// RecordHTTPRequest records a served request against its route pattern.
func (m *BusinessMetrics) RecordHTTPRequest(ctx context.Context, method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.String("http.status_code", strconv.Itoa(status)),
	)
	m.HTTPRequestsTotal.Add(ctx, 1, attrs)
	m.HTTPRequestDuration.Record(ctx, duration.Seconds(), attrs)
}
