// Package response writes JSON success and error bodies for the HTTP API.
package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rezkam/rentdesk/internal/domain"
)

// encodeFailureJSON is written when a success body cannot be encoded.
const encodeFailureJSON = `{"error":{"code":"INTERNAL_ERROR","message":"failed to encode response"}}`

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []ErrorField `json:"details,omitempty"`
}

// ErrorField describes a field-specific error.
type ErrorField struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// OK sends a 200 OK response with JSON data.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, data)
}

// Created sends a 201 Created response with JSON data.
func Created(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, data)
}

// NoContent sends a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// write marshals before touching the status so an encoding failure can
// still become a 500.
func write(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		slog.Error("failed to encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(encodeFailureJSON))
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// Error sends a generic error response.
func Error(w http.ResponseWriter, code, message string, statusCode int) {
	write(w, statusCode, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message},
	})
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, "INVALID_REQUEST", message, http.StatusBadRequest)
}

// ValidationError sends a 400 validation error with field details.
func ValidationError(w http.ResponseWriter, field, issue string) {
	write(w, http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed",
			Details: []ErrorField{{Field: field, Issue: issue}},
		},
	})
}

// NotFound sends a 404 Not Found error.
func NotFound(w http.ResponseWriter, resource string) {
	Error(w, "NOT_FOUND", resource+" not found", http.StatusNotFound)
}

// InternalError sends a 500 Internal Server Error.
// The error is logged server-side; the client gets a generic message.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		slog.ErrorContext(r.Context(), "Internal server error", "error", err)
	}
	Error(w, "INTERNAL_ERROR", "an internal error occurred", http.StatusInternalServerError)
}

// FromDomainError maps domain errors to HTTP responses.
func FromDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	// Validation errors (400)
	case errors.Is(err, domain.ErrInvalidPayload):
		BadRequest(w, "request body is not a valid entity")
	case errors.Is(err, domain.ErrInvalidStatus):
		ValidationError(w, "status", "not allowed for this entity")
	case errors.Is(err, domain.ErrInvalidID):
		ValidationError(w, "id", "invalid or duplicate ID")

	// Not found errors (404)
	case errors.Is(err, domain.ErrUnknownKind):
		NotFound(w, "entity kind")
	case errors.Is(err, domain.ErrNotFound):
		NotFound(w, "entity")

	// Remote source failures (502)
	case errors.Is(err, domain.ErrUpstream):
		slog.ErrorContext(r.Context(), "upstream failure", "error", err)
		Error(w, "UPSTREAM_ERROR", "the data source is unavailable", http.StatusBadGateway)

	default:
		InternalError(w, r, err)
	}
}
