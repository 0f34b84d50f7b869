package httpx

import (
	"encoding/json"
	"net/http"
)

// Minimal error envelope for middleware-level failures (panics, rate limits).
// Handler responses use the richer envelope in internal/http.
type errorResponse struct {
	Success bool              `json:"success"`
	Error   errorResponseBody `json:"error"`
	Meta    interface{}       `json:"meta,omitempty"`
}

type errorResponseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string, meta map[string]interface{}) {
	if requestID := RequestIDFrom(r); requestID != "" {
		if meta == nil {
			meta = map[string]interface{}{}
		}
		meta["request_id"] = requestID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{
		Success: false,
		Error: errorResponseBody{
			Code:    code,
			Message: message,
		},
		Meta: meta,
	})
}
