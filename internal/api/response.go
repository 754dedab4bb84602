package api

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in the envelope. The kiosk frontend keys its
// retry and banner behavior off these rather than the HTTP status.
const (
	CodeNotFound      = "NOT_FOUND"
	CodeBadRequest    = "BAD_REQUEST"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeInternalError = "INTERNAL_ERROR"
	CodeUnhealthy     = "HEALTH_CHECK_FAILED"
)

// Response is the envelope every endpoint returns. Success responses
// carry their payload in Data; failures carry an ErrorInfo instead.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo pairs a human-readable message with a stable code.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// WriteSuccess writes data in a success envelope with status 200.
func WriteSuccess(w http.ResponseWriter, data interface{}) error {
	return writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes a failure envelope with the given status and code.
func WriteError(w http.ResponseWriter, status int, message, code string) error {
	return writeJSON(w, status, Response{
		Success: false,
		Error:   &ErrorInfo{Message: message, Code: code},
	})
}

// WriteNotFound reports an unknown holiday id or route as a 404.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, CodeNotFound)
}

// WriteBadRequest reports a malformed parameter or body as a 400.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, CodeBadRequest)
}

// WriteUnauthorized reports a missing or wrong API key as a 401.
func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusUnauthorized, message, CodeUnauthorized)
}

// WriteInternalError reports a storage or resolver failure as a 500.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, CodeInternalError)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
