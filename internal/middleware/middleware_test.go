package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	apierrors "datamaps/internal/errors"
	"datamaps/internal/infrastructure"
	api "datamaps/pkg/contracts/api/v1"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestID(t *testing.T) {
	var seenReqID, seenTraceID string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenReqID = chimw.GetReqID(r.Context())
		seenTraceID = infrastructure.GetTraceID(r.Context())
	}))

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, seenReqID, 36)
		assert.Equal(t, seenReqID, seenTraceID)
		assert.Equal(t, seenReqID, rec.Header().Get(RequestIDHeader))
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seenReqID)
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, discardLogger())
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apierrors.TypeRateLimit, body["type"])
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", body["error_code"])
}

func TestStructuredLoggerAndSecurityHeaders(t *testing.T) {
	h := StructuredLogger(discardLogger())(SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestOTelMiddleware_UsesRoutePattern(t *testing.T) {
	m := NewOTelMiddleware(noop.NewTracerProvider().Tracer("test"), nil)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/api/v1/projections/{file}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projections/master.xlsx", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestValidator_ProjectionRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		req        api.ProjectionRequest
		wantFields []string
	}{
		{"quarter request", api.ProjectionRequest{File: "master.xlsx", Quarter: 1, Year: 2019}, nil},
		{"month request", api.ProjectionRequest{File: "master.xlsm", Month: 2, Year: 2020}, nil},
		{"neither period", api.ProjectionRequest{File: "master.xlsx", Year: 2019}, []string{"quarter", "month"}},
		{"both periods", api.ProjectionRequest{File: "master.xlsx", Quarter: 1, Month: 4, Year: 2019}, []string{"quarter", "month"}},
		{"quarter too large", api.ProjectionRequest{File: "master.xlsx", Quarter: 5, Year: 2019}, []string{"quarter"}},
		{"month too large", api.ProjectionRequest{File: "master.xlsx", Month: 13, Year: 2019}, []string{"month"}},
		{"missing year", api.ProjectionRequest{File: "master.xlsx", Quarter: 1}, []string{"year"}},
		{"traversal", api.ProjectionRequest{File: "../secret.xlsx", Quarter: 1, Year: 2019}, []string{"file"}},
		{"not a workbook", api.ProjectionRequest{File: "notes.txt", Quarter: 1, Year: 2019}, []string{"file"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var apiErr *apierrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

			details, ok := apiErr.Details.(apierrors.ValidationErrors)
			require.True(t, ok)
			var fields []string
			for _, e := range details.Errors {
				fields = append(fields, e.Field)
				assert.NotEmpty(t, e.Message)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}
