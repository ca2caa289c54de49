package port

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"dha-marketplace/internal/core/domain"
)

// UpstreamError is a non-2xx answer from the external backend. Message is
// the backend's own message when it sent one; Messages collects validation
// messages from whichever error shape the backend used.
type UpstreamError struct {
	Status   int
	Message  string
	Messages []string
	Fields   map[string][]string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream status %d", e.Status)
}

// Summary joins the upstream messages for display.
func (e *UpstreamError) Summary() string {
	if e.Message != "" {
		return e.Message
	}
	return strings.Join(e.Messages, ", ")
}

// FieldMessage returns the first validation message for field.
func (e *UpstreamError) FieldMessage(field string) string {
	if msgs := e.Fields[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// PlotFile is a plot import file forwarded to the backend.
type PlotFile struct {
	Name    string
	Content io.Reader
	// EventID associates the plots with an event; nil means marketplace
	// inventory.
	EventID *int64
}

// ImportResult is the backend's answer to a plot import.
type ImportResult struct {
	Success Flag   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Imported   int               `json:"imported"`
		Failed     int               `json:"failed"`
		FailedRows []json.RawMessage `json:"failed_rows"`
		ImportID   json.RawMessage   `json:"import_id"`
	} `json:"data"`
}

// Flag decodes a boolean sent either as true or as the string "true".
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	*f = Flag(s == "true" || s == "1")
	return nil
}

// Event is a sale event plots can be imported into.
type Event struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status,omitempty"`
}

// Backend is the external marketplace API. Every call honours ctx so an
// abandoned request never delivers a stale response.
type Backend interface {
	// CustomerBookingInfo fetches a reserve booking with the caller's
	// Authorization header value.
	CustomerBookingInfo(ctx context.Context, authorization, reserveBookingID string) (json.RawMessage, error)
	// VerifyPlotLetter checks a plot confirmation letter QR payload.
	VerifyPlotLetter(ctx context.Context, qr string) (json.RawMessage, error)
	// Profile returns the authenticated customer's profile and bookings.
	Profile(ctx context.Context, authorization string) (*domain.Profile, error)
	// UpdateBid raises the bid on a reserve booking.
	UpdateBid(ctx context.Context, authorization string, bookingID int64, amount int64) (json.RawMessage, error)
	// ImportPlots uploads a plot CSV.
	ImportPlots(ctx context.Context, authorization string, file PlotFile) (*ImportResult, error)
	// Events lists sale events.
	Events(ctx context.Context, authorization string) ([]Event, error)
}
