package handlers

import (
	"context"
	"net/http"

	"github.com/benventuring/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LeadsService is the interface that wraps methods for Leads business logic.
type LeadsService interface {
	// Method Create stores a validated lead and returns the generated identifier.
	//
	// If the store rejects the write, the error will be returned together with an empty identifier.
	Create(ctx context.Context, lead models.Lead) (string, error)
}

// LeadsHandler handles HTTP requests for leads
type LeadsHandler struct {
	BaseHandler
	service LeadsService
}

// NewLeadsHandler creates a new lead handler
func NewLeadsHandler(svc LeadsService, logger *zap.Logger) *LeadsHandler {
	return &LeadsHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all lead handler routes
func (h *LeadsHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/leads", h.Create)
}

// Create handles POST /api/leads
// @Summary Capture a lead
// @Description Validate and store an email lead. Source defaults to "chatbot".
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body models.Lead true "Lead"
// @Success 200 {object} models.CreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/leads [post]
func (h *LeadsHandler) Create(w http.ResponseWriter, r *http.Request) {
	lead := models.NewLead()
	if !h.DecodeAndValidate(w, r, &lead) {
		return
	}

	id, err := h.service.Create(r.Context(), lead)
	if err != nil {
		h.Logger.Error("failed to create lead", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, models.CreatedResponse{Status: "ok", ID: id})
}
