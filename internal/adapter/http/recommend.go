package httpadapter

import (
	"encoding/json"
	"net/http"

	"recruitads/internal/core/domain"
)

// handleRecommend decodes a recommendation request and returns the ranked
// recommendation. Malformed JSON and validation failures produce HTTP 400,
// a data source without data HTTP 503.
func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req domain.RecommendationRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	resp, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		h.writeError(w, "recommend", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
