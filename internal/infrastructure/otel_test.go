package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitializeOTel_Enabled(t *testing.T) {
	var spans bytes.Buffer
	providers, err := InitializeOTel(&OTelConfig{
		ServiceName:    "datamaps-test",
		ServiceVersion: "test",
		Environment:    "test",
		TraceExporter:  "stdout",
		EnableTracing:  true,
		EnableMetrics:  true,
		SampleRatio:    1.0,
		TraceWriter:    &spans,
	}, discardLogger())
	require.NoError(t, err)

	require.NotNil(t, providers.TracerProvider)
	require.NotNil(t, providers.MeterProvider)
	require.NotNil(t, providers.MetricsHandler)

	ctx, span := providers.Tracer.Start(context.Background(), "project")
	assert.NotEmpty(t, TraceIDFromContext(ctx))
	RecordError(ctx, errors.New("boom"))
	SetSpanAttributes(ctx, map[string]interface{}{"quarter": 1, "file": "master.xlsx"})
	span.End()

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)
	metrics.RecordProjection(ctx, "quarter", 10*time.Millisecond, 3, nil)
	metrics.RecordHTTPRequest(ctx, http.MethodGet, "/api/v1/workbooks", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	providers.MetricsHandler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "master_projections_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, providers.Shutdown(shutdownCtx))
	assert.Contains(t, spans.String(), "project")
}

func TestInitializeOTel_Disabled(t *testing.T) {
	providers, err := InitializeOTel(&OTelConfig{
		ServiceName:   "datamaps-test",
		TraceExporter: "none",
	}, discardLogger())
	require.NoError(t, err)

	assert.Nil(t, providers.TracerProvider)
	assert.Nil(t, providers.MeterProvider)
	assert.Nil(t, providers.MetricsHandler)
	assert.NotNil(t, providers.Tracer)

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)
	metrics.RecordProjection(context.Background(), "month", time.Millisecond, 0, errors.New("x"))

	assert.NoError(t, providers.Shutdown(context.Background()))
}

func TestInitializeOTel_UnsupportedExporter(t *testing.T) {
	_, err := InitializeOTel(&OTelConfig{
		ServiceName:   "datamaps-test",
		TraceExporter: "jaeger",
		EnableTracing: true,
	}, discardLogger())
	assert.Error(t, err)
}

func TestBusinessMetrics_NilSafe(t *testing.T) {
	var m *BusinessMetrics
	assert.NotPanics(t, func() {
		m.RecordProjection(context.Background(), "quarter", time.Second, 1, nil)
		m.RecordHTTPRequest(context.Background(), http.MethodGet, "/", 200, time.Second)
	})
}
