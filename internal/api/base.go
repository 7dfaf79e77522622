package api

import (
	"encoding/json"
	"net/http"

	"github.com/cubahno/apipatterns/internal/schema"
)

// BaseHandler is a base handler type to be embedded in other handlers.
type BaseHandler struct {
}

// JSONResponse is a response type for JSON responses.
func (h *BaseHandler) JSONResponse(w http.ResponseWriter) *JSONResponse {
	return NewJSONResponse(w)
}

// Success sends a Success response.
func (h *BaseHandler) Success(message string, w http.ResponseWriter) {
	h.JSONResponse(w).Send(&SimpleResponse{
		Message: message,
		Success: true,
	})
}

// Error sends a plain error response.
func (h *BaseHandler) Error(code int, message string, w http.ResponseWriter) {
	h.JSONResponse(w).WithStatusCode(code).Send(&ErrorResponse{
		Error: message,
	})
}

// ValidationError sends the collected issue list with a client error status.
func (h *BaseHandler) ValidationError(issues schema.Issues, w http.ResponseWriter) {
	h.JSONResponse(w).WithStatusCode(http.StatusBadRequest).Send(&ErrorResponse{
		Error:   "validation failed",
		Details: issues,
	})
}

// GetPayload decodes a JSON request body.
func GetPayload[T any](req *http.Request) (*T, error) {
	var payload T
	err := json.NewDecoder(req.Body).Decode(&payload)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}
