package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"gads-manager/internal/core/port"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg}, h.logger)
}

// writeUseCaseError maps port sentinels to status codes. Unexpected errors
// are logged and reported without detail.
func (h *Handler) writeUseCaseError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidRequest), errors.Is(err, port.ErrTemplateInvalid):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrUnauthenticated), errors.Is(err, port.ErrSessionNotFound):
		h.writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, port.ErrTemplateNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
