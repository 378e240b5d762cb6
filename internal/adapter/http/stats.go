package httpadapter

import (
	"net/http"

	"recruitads/internal/core/domain"
	"recruitads/internal/core/port"
)

// handleStats returns per-platform statistics. The optional `role`,
// `industry` and `platform` query parameters narrow the history; an unknown
// platform results in HTTP 400.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := port.StatsReq{Role: q.Get("role"), Industry: q.Get("industry")}

	if ps := q.Get("platform"); ps != "" {
		p, ok := domain.ParsePlatform(ps)
		if !ok {
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Field: "platform", Constraint: "unknown platform"})
			return
		}
		req.Platform = p
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.svc.Roles(r.Context())
	if err != nil {
		h.writeError(w, "roles", err)
		return
	}
	if roles == nil {
		roles = []domain.RoleSummary{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"roles": roles})
}

func (h *Handler) handleIndustries(w http.ResponseWriter, r *http.Request) {
	inds, err := h.svc.Industries(r.Context())
	if err != nil {
		h.writeError(w, "industries", err)
		return
	}
	if inds == nil {
		inds = []string{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"industries": inds})
}
