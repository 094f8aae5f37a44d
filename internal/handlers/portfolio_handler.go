package handlers

import (
	"context"
	"net/http"

	"github.com/benventuring/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PortfolioService is the interface that wraps methods for Portfolio business logic.
type PortfolioService interface {
	// Method GetAll seeds the portfolio collection on first use and retrieves every item.
	//
	// If some error will occur during seeding or data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.PortfolioItem, error)
}

// PortfolioHandler handles HTTP requests for portfolio items
type PortfolioHandler struct {
	BaseHandler
	service PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(svc PortfolioService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all portfolio handler routes
func (h *PortfolioHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/portfolio", h.GetAll)
}

// GetAll handles GET /api/portfolio
// @Summary List portfolio items
// @Description Seed the sample portfolio on first use and list every item
// @Tags portfolio
// @Produce json
// @Success 200 {object} models.ListResponse[models.PortfolioItem]
// @Failure 500 {object} ErrorResponse
// @Router /api/portfolio [get]
func (h *PortfolioHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to get portfolio", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, models.ListResponse[models.PortfolioItem]{Items: items})
}
