package handlers

import (
	"context"
	"net/http"

	"github.com/benventuring/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// InquiriesService is the interface that wraps methods for Inquiries business logic.
type InquiriesService interface {
	// Method Create stores a validated inquiry and returns the generated identifier.
	//
	// If the store rejects the write, the error will be returned together with an empty identifier.
	Create(ctx context.Context, inquiry models.Inquiry) (string, error)
}

// InquiriesHandler handles HTTP requests for inquiries
type InquiriesHandler struct {
	BaseHandler
	service InquiriesService
}

// NewInquiriesHandler creates a new inquiry handler
func NewInquiriesHandler(svc InquiriesService, logger *zap.Logger) *InquiriesHandler {
	return &InquiriesHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all inquiry handler routes
func (h *InquiriesHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/inquiries", h.Create)
}

// Create handles POST /api/inquiries
// @Summary Submit an inquiry
// @Description Validate and store a project inquiry. Status defaults to "new".
// @Tags inquiries
// @Accept json
// @Produce json
// @Param inquiry body models.Inquiry true "Inquiry"
// @Success 200 {object} models.CreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/inquiries [post]
func (h *InquiriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	inquiry := models.NewInquiry()
	if !h.DecodeAndValidate(w, r, &inquiry) {
		return
	}

	id, err := h.service.Create(r.Context(), inquiry)
	if err != nil {
		h.Logger.Error("failed to create inquiry", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, models.CreatedResponse{Status: "ok", ID: id})
}
