package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"libraryapi/internal/usecase"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
}

type ErrorResponseBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func JSONSuccess(w http.ResponseWriter, data interface{}, meta interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func JSONSuccessCreated(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Data:    data,
	})
}

func JSONSuccessNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSONError(w http.ResponseWriter, statusCode int, code string, message string, details []ErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// JSONDomainError translates a usecase error into the envelope and the right
// status code. Anything unrecognized is a storage failure and maps to 500.
func JSONDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	case errors.Is(err, usecase.ErrInsufficientCopies):
		JSONError(w, http.StatusConflict, "INSUFFICIENT_COPIES", "No copies available to borrow", nil)
	case errors.Is(err, usecase.ErrInvalidDueDate):
		JSONError(w, http.StatusBadRequest, "INVALID_DUE_DATE", "Due date cannot be before the borrowed date", nil)
	case errors.Is(err, usecase.ErrAlreadyReturned):
		JSONError(w, http.StatusConflict, "ALREADY_RETURNED", "Borrowing is already returned", nil)
	case errors.Is(err, usecase.ErrAlreadyExists):
		JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Resource already exists", nil)
	case errors.Is(err, usecase.ErrForbidden):
		JSONError(w, http.StatusForbidden, "FORBIDDEN", "You do not have permissions", nil)
	default:
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
