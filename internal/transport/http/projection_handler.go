package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "datamaps/internal/errors"
	"datamaps/internal/middleware"
	api "datamaps/pkg/contracts/api/v1"
)

// ProjectionHandler serves master projections.
type ProjectionHandler struct {
	service      ProjectionServiceInterface
	validator    *middleware.Validator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewProjectionHandler creates a new projection handler
func NewProjectionHandler(service ProjectionServiceInterface, validator *middleware.Validator, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ProjectionHandler {
	return &ProjectionHandler{
		service:      service,
		validator:    validator,
		logger:       logger.With(slog.String("component", "projection_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the projection routes
func (h *ProjectionHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.Batch)
	r.Get("/{file}", h.Project)

	return r
}

// Project handles GET /api/v1/projections/{file}
func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	req := api.ProjectionRequest{File: chi.URLParam(r, "file")}

	var ok bool
	if req.Quarter, ok = h.intParam(w, r, "quarter"); !ok {
		return
	}
	if req.Month, ok = h.intParam(w, r, "month"); !ok {
		return
	}
	if req.Year, ok = h.intParam(w, r, "year"); !ok {
		return
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	projection, err := h.service.Project(r.Context(), req)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "projection served",
		slog.String("file", req.File),
		slog.Int("projects", len(projection.Projects)))

	render.JSON(w, r, projection)
}

// Batch handles GET /api/v1/projections
func (h *ProjectionHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req api.BatchRequest

	var ok bool
	if req.Quarter, ok = h.intParam(w, r, "quarter"); !ok {
		return
	}
	if req.Year, ok = h.intParam(w, r, "year"); !ok {
		return
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	result, err := h.service.Batch(r.Context(), req.Quarter, req.Year)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}

// Workbooks handles GET /api/v1/workbooks
func (h *ProjectionHandler) Workbooks(w http.ResponseWriter, r *http.Request) {
	workbooks, err := h.service.ListWorkbooks(r.Context())
	if err != nil {
		var appErr *apierrors.AppError
		if !errors.As(err, &appErr) {
			err = apierrors.FileSystemError("list workbooks", err)
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"workbooks": workbooks,
		"count":     len(workbooks),
	})
}

// intParam reads an optional integer query parameter. Absent parameters
// read as zero.
func (h *ProjectionHandler) intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation(name, name+" must be a valid integer"))
		return 0, false
	}
	return v, true
}
