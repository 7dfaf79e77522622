package api

import (
	"encoding/json"
	"net/http"

	"github.com/cubahno/apipatterns/internal/schema"
)

// BaseResponse is a base response type.
type BaseResponse struct {
	statusCode int
	headers    map[string]string
	w          http.ResponseWriter
}

// JSONResponse is a response type for JSON responses.
type JSONResponse struct {
	*BaseResponse
}

// NewJSONResponse creates a new JSONResponse instance.
func NewJSONResponse(w http.ResponseWriter) *JSONResponse {
	return &JSONResponse{
		&BaseResponse{
			w: w,
		},
	}
}

// WithHeader adds a header to the response.
func (r *JSONResponse) WithHeader(key string, value string) *JSONResponse {
	if len(r.headers) == 0 {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
	return r
}

// WithStatusCode sets the status code of the response.
func (r *JSONResponse) WithStatusCode(code int) *JSONResponse {
	r.statusCode = code
	return r
}

// Send sends the data as JSON to the client.
// WriteHeader must be called before any writing happens and just once.
func (r *JSONResponse) Send(data any) {
	statusCode := r.statusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	r.w.Header().Set("content-type", "application/json")
	for k, v := range r.headers {
		r.w.Header().Set(k, v)
	}

	if data == nil {
		r.w.WriteHeader(statusCode)
		_, _ = r.w.Write(nil)
		return
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		r.w.WriteHeader(http.StatusInternalServerError)
		_, _ = r.w.Write([]byte(err.Error()))
		return
	}

	r.w.WriteHeader(statusCode)
	_, _ = r.w.Write(jsonBytes)
}

// SimpleResponse is a simple response type to indicate the success of an operation.
type SimpleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope: a summary plus the collected,
// field-addressable issue list.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Details schema.Issues `json:"details,omitempty"`
}
