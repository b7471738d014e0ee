package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ayanroy004/Leet-lab/internal/static/errs"
)

type ErrorMessage struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"status_code"`
	Details    interface{} `json:"details,omitempty"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// StatusForError maps the pipeline error taxonomy to HTTP status codes so
// upstream automation can distinguish retriable from non-retriable failures.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrServiceUnavailable), errors.Is(err, errs.ErrServiceError):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrPollTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
