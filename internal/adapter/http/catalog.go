package httpadapter

import (
	"net/http"

	"dha-marketplace/internal/core/domain"
)

type pricingResponse struct {
	Formats   []domain.AdFormat       `json:"formats"`
	Durations []domain.DurationOption `json:"durations"`
	Prices    []domain.Quote          `json:"prices"`
}

// handlePricing returns the ad format catalogue, the duration options and
// the price of every combination.
func (h *Handler) handlePricing(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, pricingResponse{
		Formats:   domain.AdFormats(),
		Durations: domain.DurationOptions(),
		Prices:    domain.PriceGrid(),
	})
}

// handleLaunch reports the countdown to the marketplace launch.
func (h *Handler) handleLaunch(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Launch.Status())
}
