package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/courseatlas/backend/internal/services"
	"go.uber.org/zap"
)

// envelope is the JSON shape of every API response.
type envelope struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	Data         any    `json:"data,omitempty"`
	Count        *int   `json:"count,omitempty"`
	TotalResults *int   `json:"totalResults,omitempty"`
	Error        string `json:"error,omitempty"`
}

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondData sends a successful response carrying data
func (h *BaseHandler) respondData(w http.ResponseWriter, status int, data any) {
	h.respondJSON(w, status, envelope{Success: true, Data: data})
}

// respondList sends a successful response carrying a collection and its size
func (h *BaseHandler) respondList(w http.ResponseWriter, data any, count int) {
	h.respondJSON(w, http.StatusOK, envelope{Success: true, Data: data, Count: &count})
}

// respondMessage sends a successful response carrying a message and optional data
func (h *BaseHandler) respondMessage(w http.ResponseWriter, status int, message string, data any) {
	h.respondJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, envelope{Success: false, Message: message})
}

// respondServiceError maps a service error onto an HTTP status: validation
// failures become 400, unresolved identifiers become 404, anything else is
// logged and returned as 500 with the original error message attached.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, message string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		h.respondError(w, http.StatusBadRequest, ve.Message)
	case services.IsNotFound(err):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error(message, zap.Error(err))
		h.respondJSON(w, http.StatusInternalServerError, envelope{
			Success: false,
			Message: message,
			Error:   err.Error(),
		})
	}
}

// decodeJSON decodes a request body into dst, returning false after writing
// a 400 response when the body is not valid JSON.
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
