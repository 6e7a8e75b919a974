package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ValidationError reports a missing or empty query parameter.
type ValidationError struct {
	Parameter string
}

func (e *ValidationError) Error() string {
	return "Missing '" + e.Parameter + "' query parameter"
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func requiredParameter(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return "", &ValidationError{Parameter: name}
	}
	return value, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// handleError writes the error envelope. Validation errors are the caller's fault (400). Anything else,
// including TMDB failures and a missing API key, is reported as 500.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.As(err, new(*ValidationError)) {
		status = http.StatusBadRequest
	} else {
		s.logger.Warn("request failed",
			"path", r.URL.Path,
			"requestID", w.Header().Get(requestIDHeader),
			"err", err,
		)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
