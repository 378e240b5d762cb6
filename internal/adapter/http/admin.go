package httpadapter

import (
	"net/http"
)

// handleReindex reloads the role catalog and rebuilds the matcher index.
func (h *Handler) handleReindex(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reindex(r.Context()); err != nil {
		h.writeError(w, "reindex", err)
		return
	}
	h.logger.Info("role index rebuilt")
	w.WriteHeader(http.StatusNoContent)
}
