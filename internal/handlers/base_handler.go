package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/benventuring/backend/internal/validation"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, ErrorResponse{Error: message})
}

// DecodeAndValidate reads the JSON body into dst and validates it.
// On failure the response has already been written and false is returned.
func (h *BaseHandler) DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := validation.DecodeJSON(r.Body, dst)
	if err == nil {
		err = validation.Validate(dst)
	}
	if err == nil {
		return true
	}

	var (
		fieldErr *validation.Error
		sizeErr  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &fieldErr):
		h.RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "validation failed",
			Fields: fieldErr.Fields,
		})
	case errors.As(err, &sizeErr):
		h.RespondError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, validation.ErrMalformedBody):
		h.RespondError(w, http.StatusBadRequest, "malformed request body")
	default:
		h.Logger.Error("failed to validate request body", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
	}
	return false
}
