package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Response is the envelope every endpoint renders:
// {success, data?, error?, count?, message?}.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Count   *int       `json:"count,omitempty"`
	Message string     `json:"message,omitempty"`
}

// ErrorBody carries the user-facing error message inside the envelope.
type ErrorBody struct {
	Message string `json:"message"`
}

// RespondWithData writes a success envelope with the given payload.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

// RespondWithCount writes a success envelope with a payload and a count,
// used by list endpoints.
func RespondWithCount(w http.ResponseWriter, r *http.Request, status int, data any, count int) {
	writeJSON(w, status, Response{Success: true, Data: data, Count: &count})
}

// RespondWithMessage writes a success envelope carrying only a message.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, Response{Success: true, Message: message})
}

// RespondWithError writes a failure envelope with the given status code and
// message, tagging the log line with the request's trace ID.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	writeJSON(w, status, Response{Success: false, Error: &ErrorBody{Message: message}})
}

// RespondWithErrorAndLog writes a failure envelope and logs the underlying
// error. Only the sanitized userMessage reaches the client; the raw error
// stays in the logs. 5xx responses log at ERROR, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", attrs...)

	writeJSON(w, status, Response{Success: false, Error: &ErrorBody{Message: userMessage}})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
