package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"adbudget/internal/core/port"
)

// handleEstimate computes a budget estimate for a segment. The request body
// is decoded into a port.EstimateReq. Invalid JSON and invalid target
// impressions produce HTTP 400; a segment without usable data produces
// HTTP 422 so the caller can surface "no data for this segment". Internal
// errors result in HTTP 500. On success it writes the estimate as JSON.
func (h *Handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req port.EstimateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	resp, err := h.svc.Estimate(r.Context(), req)
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, port.ErrNoData):
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		h.logger.Error("estimate error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}
