package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"recruitads/internal/core/domain"
)

type errorBody struct {
	Error      string `json:"error"`
	Field      string `json:"field,omitempty"`
	Constraint string `json:"constraint,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors to status codes. Validation failures name
// the offending field; anything unexpected is a 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Field: verr.Field, Constraint: verr.Constraint})
	case errors.Is(err, domain.ErrDataUnavailable):
		h.logger.Warn(op+" without data", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: domain.ErrDataUnavailable.Error()})
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
