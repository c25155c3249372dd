package httpadapter

import (
	"net/http"

	"log/slog"
)

// handlePlatforms lists the distinct platforms present in the filtered
// dataset. The presentation layer uses this to populate its platform
// selector, which in turn guarantees estimate queries only carry values
// that occur in the data.
func (h *Handler) handlePlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := h.svc.Platforms(r.Context())
	if err != nil {
		h.logger.Error("list platforms error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"platforms": platforms})
}

// handleCampaignTypes lists the distinct campaign types co-occurring with
// the platform given in the `platform` query parameter. A missing platform
// results in HTTP 400.
func (h *Handler) handleCampaignTypes(w http.ResponseWriter, r *http.Request) {
	platform := r.URL.Query().Get("platform")
	if platform == "" {
		h.writeError(w, http.StatusBadRequest, "missing 'platform' query parameter")
		return
	}
	types, err := h.svc.CampaignTypes(r.Context(), platform)
	if err != nil {
		h.logger.Error("list campaign types error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"campaign_types": types})
}
