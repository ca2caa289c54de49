package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

const (
	plotFileField    = "file"
	plotEventField   = "event_id"
	plotTemplateName = "plot_template.csv"

	// inventoryEventID selects marketplace inventory instead of an event.
	inventoryEventID = "inventory"
)

// headerGateBody is the answer when an upload fails the CSV header check.
type headerGateBody struct {
	Message          string   `json:"message"`
	ValidationErrors []string `json:"validation_errors"`
}

type plotValidation struct {
	Valid        bool     `json:"valid"`
	Rows         int      `json:"rows"`
	Skipped      int      `json:"skipped"`
	ExtraHeaders []string `json:"extra_headers"`
}

// handlePlotTemplate serves the import template with the required headers
// and one example row.
func (h *Handler) handlePlotTemplate(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+plotTemplateName+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(domain.PlotTemplate()); err != nil {
		h.logger.Debug("write template error", slog.Any("error", err))
	}
}

// handlePlotValidate runs the header gate without importing anything.
func (h *Handler) handlePlotValidate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	file, fh, err := r.FormFile(plotFileField)
	if err != nil {
		h.writeUploadError(w, r, err)
		return
	}
	defer file.Close()

	sheet, err := h.svc.Plots.Validate(r.Context(), fh.Filename, file)
	if err != nil {
		h.writePlotError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plotValidation{
		Valid:        true,
		Rows:         len(sheet.Rows),
		Skipped:      sheet.Skipped,
		ExtraHeaders: domain.ExtraHeaders(sheet.Headers),
	})
}

// handlePlotImport validates an upload and forwards it to the backend. An
// event or marketplace inventory must be chosen explicitly.
func (h *Handler) handlePlotImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	file, fh, err := r.FormFile(plotFileField)
	if err != nil {
		h.writeUploadError(w, r, err)
		return
	}
	defer file.Close()

	eventID, err := parseEventID(r.FormValue(plotEventField))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, headerGateBody{
			Message:          "Please select an event or DHA MarketPlace inventory before uploading plots",
			ValidationErrors: []string{"You must select either an event or DHA MarketPlace inventory to associate with these plots"},
		})
		return
	}

	sum, err := h.svc.Plots.Import(r.Context(), r.Header.Get("Authorization"), port.PlotFile{
		Name:    fh.Filename,
		Content: file,
		EventID: eventID,
	})
	if err != nil {
		h.writePlotError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sum)
}

// handleEvents lists the sale events an import can target.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.Plots.Events(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch events")
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}

func (h *Handler) writeUploadError(w http.ResponseWriter, r *http.Request, err error) {
	var sizeErr *http.MaxBytesError
	if errors.As(err, &sizeErr) {
		h.writeError(w, r, err, "")
		return
	}
	h.writeMessage(w, http.StatusBadRequest, "Please choose a CSV file to upload")
}

func (h *Handler) writePlotError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *domain.MissingColumnsError
	if errors.As(err, &missing) {
		h.writeJSON(w, http.StatusUnprocessableEntity, headerGateBody{
			Message:          "CSV format validation failed",
			ValidationErrors: []string{missing.Error()},
		})
		return
	}
	h.writeError(w, r, err, "Failed to upload plots. Please try again.")
}

// parseEventID reads the event selection. A missing value is an error;
// the inventory keyword yields nil.
func parseEventID(v string) (*int64, error) {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "":
		return nil, errors.New("event not selected")
	case inventoryEventID, "null":
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.New("invalid event id")
	}
	return &id, nil
}
