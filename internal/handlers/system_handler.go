package handlers

import (
	"context"
	"net/http"

	"github.com/benventuring/backend/internal/models"
	"github.com/benventuring/backend/internal/validation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DiagnosticsService is the interface that wraps the storage diagnostics probe.
type DiagnosticsService interface {
	// Method Report probes the document store. It never fails: problems are described in the report.
	Report(ctx context.Context) models.DiagnosticReport
}

// SchemaService is the interface that wraps the entity introspection.
type SchemaService interface {
	// Method GetAll returns the structural descriptor of every entity kind keyed by collection name.
	GetAll() map[string]validation.Descriptor
}

// SystemHandler serves liveness, diagnostics and schema endpoints
type SystemHandler struct {
	BaseHandler
	diagnostics DiagnosticsService
	schema      SchemaService
	message     string
}

// NewSystemHandler creates a new system handler.
// "message" is returned by GET /.
func NewSystemHandler(diagnostics DiagnosticsService, schema SchemaService, message string, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		BaseHandler: BaseHandler{Logger: logger},
		diagnostics: diagnostics,
		schema:      schema,
		message:     message,
	}
}

// RegisterRoutes registers all system handler routes
func (h *SystemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/api/health", h.Health)
	r.Get("/test", h.Diagnostics)
	r.Get("/api/schema", h.Schema)
}

// Root handles GET /
// @Summary Liveness message
// @Tags system
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router / [get]
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, models.MessageResponse{Message: h.message})
}

// Health handles GET /api/health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /api/health [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Diagnostics handles GET /test
// @Summary Storage diagnostics
// @Description Report whether the document store is configured, connected and answering. Always 200.
// @Tags system
// @Produce json
// @Success 200 {object} models.DiagnosticReport
// @Router /test [get]
func (h *SystemHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.diagnostics.Report(r.Context()))
}

// Schema handles GET /api/schema
// @Summary Entity schemas
// @Description Field names, types, required flags and enumerations of every entity kind
// @Tags system
// @Produce json
// @Success 200 {object} map[string]validation.Descriptor
// @Router /api/schema [get]
func (h *SystemHandler) Schema(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.schema.GetAll())
}
