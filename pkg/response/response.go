package response

import (
	"encoding/json"
	"net/http"

	"github.com/tair/bikeshop/pkg/apperrors"
	"github.com/tair/bikeshop/pkg/logger"
)

// Envelope is the body of every error response
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// JSON sends payload with the given status
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to encode response")
	}
}

// NoContent sends 204
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error maps err onto its HTTP status and writes the error envelope.
// Internal errors are reported with a generic message.
func Error(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	JSON(w, apperrors.HTTPStatus(code), Envelope{
		Success: false,
		Error:   apperrors.MessageOf(err),
	})
}

// ErrorMessage writes the error envelope for code with a fixed message
func ErrorMessage(w http.ResponseWriter, code apperrors.ErrorCode, message string) {
	JSON(w, apperrors.HTTPStatus(code), Envelope{
		Success: false,
		Error:   message,
	})
}
