package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/rentdesk/internal/domain"
	"github.com/rezkam/rentdesk/internal/infrastructure/http/response"
)

// unencodableType fails during JSON encoding.
type unencodableType struct{}

func (unencodableType) MarshalJSON() ([]byte, error) {
	return nil, errors.New("cannot encode")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body), "body must be JSON")
	return body
}

// TestOK_EncodingFailure_Returns500WithErrorJSON verifies that a body that
// cannot be marshaled never goes out with a success status.
func TestOK_EncodingFailure_Returns500WithErrorJSON(t *testing.T) {
	for name, send := range map[string]func(http.ResponseWriter, any){
		"ok":      response.OK,
		"created": response.Created,
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()

			send(w, unencodableType{})

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			body := decodeError(t, w)
			assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
			assert.Equal(t, "failed to encode response", body.Error.Message)
		})
	}
}

func TestCreated_Success_ReturnsValidJSON(t *testing.T) {
	w := httptest.NewRecorder()

	response.Created(w, map[string]string{"id": "new-resource-123"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var decoded map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&decoded))
	assert.Equal(t, "new-resource-123", decoded["id"])
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()

	response.NoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestValidationError_IncludesDetails(t *testing.T) {
	w := httptest.NewRecorder()

	response.ValidationError(w, "status", "not allowed")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, []response.ErrorField{{Field: "status", Issue: "not allowed"}}, body.Error.Details)
}

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{err: domain.ErrInvalidPayload, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{err: domain.ErrInvalidStatus, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
		{err: domain.ErrInvalidID, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
		{err: domain.ErrUnknownKind, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{err: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{err: domain.ErrUpstream, wantStatus: http.StatusBadGateway, wantCode: "UPSTREAM_ERROR"},
		{err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/cars", nil)

			response.FromDomainError(w, r, fmt.Errorf("failed to load cars: %w", tt.err))

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, body.Error.Message, "disk on fire", "internal details stay server-side")
		})
	}
}
