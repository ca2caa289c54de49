package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"dha-marketplace/internal/core/port"
)

// proxyMessages are the texts a pass-through route answers with when the
// backend rejects the call or cannot be reached.
type proxyMessages struct {
	upstream string
	internal string
}

var (
	bookingInfoMessages = proxyMessages{
		upstream: "Failed to fetch booking info",
		internal: "An error occurred while fetching booking info",
	}
	verifyLetterMessages = proxyMessages{
		upstream: "QR code verification failed",
		internal: "An error occurred while verifying QR code",
	}
)

// handleCustomerBookingInfo relays a reserve booking lookup with the
// caller's Authorization header. The booking id is checked before the
// header, and neither failure reaches the backend.
func (h *Handler) handleCustomerBookingInfo(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("reserve_booking_id")
	if id == "" {
		h.writeMessage(w, http.StatusBadRequest, "Reserve booking ID is required")
		return
	}
	auth := r.Header.Get("Authorization")
	if auth == "" {
		h.writeMessage(w, http.StatusUnauthorized, msgAuthRequired)
		return
	}
	body, err := h.svc.Backend.CustomerBookingInfo(r.Context(), auth, id)
	if err != nil {
		h.writeProxyError(w, r, err, bookingInfoMessages)
		return
	}
	h.writeRaw(w, http.StatusOK, body)
}

// handleVerifyPlotLetter relays a plot confirmation letter check. No
// authorization is required.
func (h *Handler) handleVerifyPlotLetter(w http.ResponseWriter, r *http.Request) {
	qr := r.URL.Query().Get("qr")
	if qr == "" {
		h.writeMessage(w, http.StatusBadRequest, "QR code parameter is required")
		return
	}
	body, err := h.svc.Backend.VerifyPlotLetter(r.Context(), qr)
	if err != nil {
		h.writeProxyError(w, r, err, verifyLetterMessages)
		return
	}
	h.writeRaw(w, http.StatusOK, body)
}

// writeProxyError keeps the backend's status and message on a non-2xx
// answer; anything else is a 500.
func (h *Handler) writeProxyError(w http.ResponseWriter, r *http.Request, err error, msgs proxyMessages) {
	var upErr *port.UpstreamError
	switch {
	case errors.As(err, &upErr):
		msg := upErr.Message
		if msg == "" {
			msg = msgs.upstream
		}
		h.writeMessage(w, upErr.Status, msg)
	case errors.Is(err, context.Canceled):
		h.logger.Debug("proxy request canceled", slog.String("path", r.URL.Path))
	default:
		h.logger.Error("proxy request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, msgs.internal)
	}
}
