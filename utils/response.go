package utils

import (
	"encoding/json"
	"net/http"
)

const (
	ErrCodeInvalidPayload = "invalid_payload"
	ErrCodeValidation     = "validation_error"
	ErrCodeInvalidID      = "invalid_id"
	ErrCodeNotFound       = "not_found"
	ErrCodeInternal       = "internal_server_error"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondErrorWithCode writes a JSON error body and logs the underlying
// error, if any, tagged with the request id. 5xx responses log at error
// level, the rest at warn.
func RespondErrorWithCode(w http.ResponseWriter, r *http.Request, status int, code, message string, devErr error) {
	RespondWithJSON(w, status, ErrorResponse{Code: code, Message: message})

	entry := LoggerFromContext(r.Context()).WithField("status", status)
	if devErr != nil {
		entry = entry.WithError(devErr)
	}
	if status >= http.StatusInternalServerError {
		entry.Error(message)
	} else {
		entry.Warn(message)
	}
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
