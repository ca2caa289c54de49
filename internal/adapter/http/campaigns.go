package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleListCampaigns lists campaigns awaiting payment or approval, newest
// first. The optional limit query parameter caps the page size.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.writeMessage(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	list, err := h.svc.Campaigns.ListPending(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err, "Failed to load campaigns")
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Campaigns.Get(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.writeError(w, r, err, "Failed to load campaign")
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
