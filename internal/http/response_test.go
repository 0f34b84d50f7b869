package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(w *httptest.ResponseRecorder, v interface{}) error {
	return json.NewDecoder(w.Body).Decode(v)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, decodeJSON(w, &resp))
	return resp
}

func TestJSONSuccessEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	JSONSuccess(w, map[string]string{"hello": "world"}, map[string]int{"total": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp SuccessResponse
	require.NoError(t, decodeJSON(w, &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.NotNil(t, resp.Meta)
}

func TestJSONErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	details := []ErrorDetail{{Field: "name", Message: "name is required"}}
	JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Len(t, resp.Error.Details, 1)
}

func TestJSONDomainError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"not found", usecase.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"insufficient copies", usecase.ErrInsufficientCopies, http.StatusConflict, "INSUFFICIENT_COPIES"},
		{"invalid due date", usecase.ErrInvalidDueDate, http.StatusBadRequest, "INVALID_DUE_DATE"},
		{"already returned", usecase.ErrAlreadyReturned, http.StatusConflict, "ALREADY_RETURNED"},
		{"already exists", usecase.ErrAlreadyExists, http.StatusConflict, "ALREADY_EXISTS"},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"wrapped sentinel", errors.Join(errors.New("query failed"), usecase.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSONDomainError(w, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
		})
	}
}
