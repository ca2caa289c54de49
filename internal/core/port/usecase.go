package port

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"time"

	"dha-marketplace/internal/core/domain"
)

// WizardView is the wizard state returned after every operation. Query is
// the URL mirror of the view state.
type WizardView struct {
	SessionID string            `json:"sessionId"`
	Wizard    domain.Wizard     `json:"wizard"`
	Steps     []domain.StepInfo `json:"steps"`
	Quote     domain.Quote      `json:"quote"`
	Query     string            `json:"query"`
}

// ImageUpload describes uploaded ad artwork.
type ImageUpload struct {
	Name   string
	Size   int64
	Width  int
	Height int
}

// WizardUseCase drives the ad campaign wizard. Every state change is
// persisted before it returns. Mock implementations can be generated from
// this interface for testing.
type WizardUseCase interface {
	// Open starts a session, applying any mirrored view state from query.
	Open(ctx context.Context, query url.Values) (*WizardView, error)
	Get(ctx context.Context, sessionID string) (*WizardView, error)
	Next(ctx context.Context, sessionID string) (*WizardView, error)
	Prev(ctx context.Context, sessionID string) (*WizardView, error)
	GoTo(ctx context.Context, sessionID string, step domain.Step) (*WizardView, error)
	SelectAdType(ctx context.Context, sessionID string, t domain.AdType) (*WizardView, error)
	SelectDuration(ctx context.Context, sessionID string, d domain.Duration) (*WizardView, error)
	UpdateContent(ctx context.Context, sessionID string, f domain.FormData) (*WizardView, error)
	AttachImage(ctx context.Context, sessionID string, img ImageUpload) (*WizardView, error)
	SetPayment(ctx context.Context, sessionID string, m domain.PaymentMethod, p domain.PaymentDetails) (*WizardView, error)
	// Submit validates the content and stores the submission record.
	Submit(ctx context.Context, sessionID string) (*domain.Submission, error)
	// CompletePayment creates the pending campaign from the current draft.
	CompletePayment(ctx context.Context, sessionID string) (*domain.PendingCampaign, error)
	// Close discards everything stored for the session.
	Close(ctx context.Context, sessionID string) error
}

// CampaignUseCase exposes created campaigns to the admin dashboard.
type CampaignUseCase interface {
	ListPending(ctx context.Context, limit int) ([]domain.PendingCampaign, error)
	Get(ctx context.Context, campaignID string) (*domain.PendingCampaign, error)
}

// BookingView decorates a booking with display fields derived locally.
type BookingView struct {
	domain.ReserveBooking
	RankTier       domain.RankTier `json:"rank_tier"`
	TimeLeft       string          `json:"time_left,omitempty"`
	PaymentExpired bool            `json:"payment_expired"`
}

// ProfileView is the profile page payload.
type ProfileView struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	CNIC     string        `json:"cnic"`
	Bookings []BookingView `json:"bookings"`
}

// BookingUseCase serves the customer's bookings and bid updates.
type BookingUseCase interface {
	Profile(ctx context.Context, authorization string) (*ProfileView, error)
	// UpdateBid validates the increase locally before forwarding it.
	UpdateBid(ctx context.Context, authorization string, bookingID int64, amount int64) (*ProfileView, error)
}

// PlotUseCase validates and forwards bulk plot imports.
type PlotUseCase interface {
	// Validate parses the file and checks the header gate.
	Validate(ctx context.Context, name string, r io.Reader) (*domain.PlotSheet, error)
	// Import runs the header gate and only then uploads the file.
	Import(ctx context.Context, authorization string, file PlotFile) (*ImportSummary, error)
	Events(ctx context.Context, authorization string) ([]Event, error)
}

// ImportSummary combines local parse counts with the backend's result.
type ImportSummary struct {
	Total      int               `json:"total"`
	Imported   int               `json:"imported"`
	Failed     int               `json:"failed"`
	FailedRows []json.RawMessage `json:"failed_rows"`
	ImportID   string            `json:"import_id,omitempty"`
	Message    string            `json:"message"`
}

// LaunchStatus is the public launch countdown.
type LaunchStatus struct {
	LaunchAt time.Time `json:"launchAt"`
	domain.CountdownState
	Live bool `json:"live"`
}

// LaunchUseCase reports the countdown to the marketplace launch.
type LaunchUseCase interface {
	Status() LaunchStatus
}
