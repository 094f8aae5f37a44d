package handlers

import (
	"context"
	"net/http"

	"github.com/benventuring/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CoursesService is the interface that wraps methods for Courses business logic.
type CoursesService interface {
	// Method GetAll seeds the course collection on first use and retrieves every course.
	//
	// If some error will occur during seeding or data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Course, error)
}

// CoursesHandler handles HTTP requests for courses
type CoursesHandler struct {
	BaseHandler
	service CoursesService
}

// NewCoursesHandler creates a new course handler
func NewCoursesHandler(svc CoursesService, logger *zap.Logger) *CoursesHandler {
	return &CoursesHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all course handler routes
func (h *CoursesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/courses", h.GetAll)
}

// GetAll handles GET /api/courses
// @Summary List courses
// @Description Seed the sample course on first use and list every course
// @Tags courses
// @Produce json
// @Success 200 {object} models.ListResponse[models.Course]
// @Failure 500 {object} ErrorResponse
// @Router /api/courses [get]
func (h *CoursesHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to get courses", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, models.ListResponse[models.Course]{Items: courses})
}
