package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	derrors "github.com/priit2000/out-of-android/internal/domain/errors"
)

// ResponseEnvelope wraps all API responses
type ResponseEnvelope struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
	Meta    ResponseMeta   `json:"meta"`
}

// ResponseMeta contains response metadata
type ResponseMeta struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse provides detailed error information
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	envelope := ResponseEnvelope{
		Success: status < 400,
		Data:    data,
		Meta: ResponseMeta{
			RequestID: requestIDFrom(r.Context()),
			Timestamp: time.Now().UTC(),
		},
	}

	_ = json.NewEncoder(w).Encode(envelope)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := derrors.GetStatusCode(err)

	resp := &ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "internal error",
	}

	var appErr *derrors.AppError
	if errors.As(err, &appErr) {
		resp.Code = appErr.Code
		resp.Message = appErr.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	envelope := ResponseEnvelope{
		Success: false,
		Error:   resp,
		Meta: ResponseMeta{
			RequestID: requestIDFrom(r.Context()),
			Timestamp: time.Now().UTC(),
		},
	}

	_ = json.NewEncoder(w).Encode(envelope)
}

func writeValidationError(w http.ResponseWriter, r *http.Request, fields map[string][]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	envelope := ResponseEnvelope{
		Success: false,
		Error: &ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "request validation failed",
			Fields:  fields,
		},
		Meta: ResponseMeta{
			RequestID: requestIDFrom(r.Context()),
			Timestamp: time.Now().UTC(),
		},
	}

	_ = json.NewEncoder(w).Encode(envelope)
}
