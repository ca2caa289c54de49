package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

const (
	msgAuthRequired     = "Authorization header is required"
	msgValidationFailed = "Validation failed"
	msgInvalidJSON      = "Invalid JSON body"
)

// messageBody is the error shape every route answers with.
type messageBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func encodeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	_ = encodeJSON(w, status, messageBody{Message: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := encodeJSON(w, status, v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, messageBody{Message: msg})
}

// writeRaw relays a JSON document verbatim.
func (h *Handler) writeRaw(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("write response error", slog.Any("error", err))
	}
}

// writeError maps a use case error to a status code. fallback is shown for
// backend errors without a message of their own and for internal errors,
// which are logged.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		fieldErrs domain.FieldErrors
		upErr     *port.UpstreamError
		importErr *port.ImportFailedError
		sizeErr   *http.MaxBytesError
	)
	switch {
	case errors.Is(err, context.Canceled):
		// the client is gone; nothing useful can be sent
		h.logger.Debug("request canceled", slog.String("path", r.URL.Path))
	case errors.As(err, &fieldErrs):
		h.writeJSON(w, http.StatusUnprocessableEntity, messageBody{Message: msgValidationFailed, Errors: fieldErrs})
	case errors.As(err, &upErr):
		msg := upErr.Summary()
		if msg == "" {
			msg = fallback
		}
		h.logger.Warn("upstream error", slog.String("path", r.URL.Path), slog.Int("status", upErr.Status), slog.String("message", msg))
		h.writeMessage(w, upErr.Status, msg)
	case errors.As(err, &importErr):
		h.writeMessage(w, http.StatusBadGateway, importErr.Error())
	case errors.As(err, &sizeErr), errors.Is(err, port.ErrFileTooLarge):
		h.writeMessage(w, http.StatusRequestEntityTooLarge, "File is too large")
	case errors.Is(err, port.ErrSessionNotFound):
		h.writeMessage(w, http.StatusNotFound, "Wizard session not found")
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeMessage(w, http.StatusNotFound, "Campaign not found")
	case errors.Is(err, port.ErrBookingNotFound):
		h.writeMessage(w, http.StatusNotFound, "Booking not found")
	case errors.Is(err, port.ErrDuplicateCampaign):
		h.writeMessage(w, http.StatusConflict, "Campaign already exists")
	case errors.Is(err, domain.ErrInvalidStep),
		errors.Is(err, domain.ErrUnknownAdType),
		errors.Is(err, domain.ErrUnknownDuration),
		errors.Is(err, domain.ErrUnknownPayment):
		h.writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNonPositivePrice):
		h.writeMessage(w, http.StatusUnprocessableEntity, "Campaign price must be greater than zero")
	case errors.Is(err, port.ErrNotCSV):
		h.writeMessage(w, http.StatusBadRequest, "Please upload a CSV file only")
	case errors.Is(err, port.ErrNoPlotRows), errors.Is(err, domain.ErrEmptySheet):
		h.writeMessage(w, http.StatusUnprocessableEntity, "The CSV file contains no plot rows")
	default:
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, fallback)
	}
}

// decodeJSON reads a JSON request body into dst, answering 400 on failure.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return false
	}
	return true
}
