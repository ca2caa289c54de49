package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"dha-marketplace/internal/core/port"
)

const msgBidSuccess = "Bid updated successfully!"

type bidRequest struct {
	BidAmount json.RawMessage `json:"bid_amount"`
}

type bidResponse struct {
	Message string            `json:"message"`
	Profile *port.ProfileView `json:"profile"`
}

// handleProfileBookings returns the customer's bookings with rank tiers and
// challan countdowns.
func (h *Handler) handleProfileBookings(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Bookings.Profile(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		h.writeError(w, r, err, "Failed to load profile")
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// handleUpdateBid raises the bid on one booking. The amount may be sent as
// a number or as formatted text; non-digits are ignored.
func (h *Handler) handleUpdateBid(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeMessage(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	var req bidRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	amount, err := parseAmount(req.BidAmount)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid bid amount")
		return
	}

	p, err := h.svc.Bookings.UpdateBid(r.Context(), r.Header.Get("Authorization"), id, amount)
	if err != nil {
		h.writeError(w, r, err, "Failed to update bid. Please try again.")
		return
	}
	h.writeJSON(w, http.StatusOK, bidResponse{Message: msgBidSuccess, Profile: p})
}

// errInvalidAmount rejects negative or exponent-form bid amounts.
var errInvalidAmount = errors.New("invalid bid amount")

// parseAmount reads a bid amount sent as a JSON number or as formatted
// text. Text keeps only its digits and a number drops its fraction; a
// missing value reads as zero.
func parseAmount(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	var str string
	if json.Unmarshal(raw, &str) == nil {
		if strings.HasPrefix(strings.TrimSpace(str), "-") {
			return 0, errInvalidAmount
		}
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, str)
		if digits == "" {
			return 0, nil
		}
		return strconv.ParseInt(digits, 10, 64)
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, errInvalidAmount
	}
	s := n.String()
	if s == "" {
		return 0, nil
	}
	if strings.ContainsAny(s, "-eE") {
		return 0, errInvalidAmount
	}
	whole, _, _ := strings.Cut(s, ".")
	return strconv.ParseInt(whole, 10, 64)
}
