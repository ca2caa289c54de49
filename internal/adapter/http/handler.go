package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dha-marketplace/internal/core/port"
)

// defaultMaxUploadBytes bounds multipart bodies when Options leaves it unset.
const defaultMaxUploadBytes = 20 << 20

// Services bundles the use cases the HTTP adapter exposes.
type Services struct {
	Wizard    port.WizardUseCase
	Campaigns port.CampaignUseCase
	Bookings  port.BookingUseCase
	Plots     port.PlotUseCase
	Launch    port.LaunchUseCase
	// Backend serves the pass-through routes directly; they carry no
	// business logic of their own.
	Backend port.Backend
}

// Options tunes the router.
type Options struct {
	MaxUploadBytes int64
	// RateLimit throttles the pass-through routes when set.
	RateLimit *ClientLimiter
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    Services
	opts   Options
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, logger *slog.Logger, opts Options) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}
	h := &Handler{svc: svc, opts: opts, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, h.logRequests)

	r.Group(func(r chi.Router) {
		if opts.RateLimit != nil {
			r.Use(h.throttle)
		}
		r.Get("/api/customer-booking-info", h.handleCustomerBookingInfo)
		r.Get("/api/verify-plot-confirmation-letter", h.handleVerifyPlotLetter)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/pricing", h.handlePricing)
		r.Get("/launch", h.handleLaunch)

		r.Route("/wizard", func(r chi.Router) {
			r.Post("/", h.handleWizardOpen)
			r.Route("/{session}", func(r chi.Router) {
				r.Get("/", h.handleWizardGet)
				r.Delete("/", h.handleWizardClose)
				r.Post("/next", h.handleWizardNext)
				r.Post("/prev", h.handleWizardPrev)
				r.Put("/step/{step}", h.handleWizardGoTo)
				r.Put("/format", h.handleWizardFormat)
				r.Put("/duration", h.handleWizardDuration)
				r.Put("/content", h.handleWizardContent)
				r.Post("/image", h.handleWizardImage)
				r.Put("/payment", h.handleWizardPayment)
				r.Post("/submit", h.handleWizardSubmit)
				r.Post("/complete", h.handleWizardComplete)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuthorization)
			r.Get("/profile/bookings", h.handleProfileBookings)
			r.Post("/bookings/{id}/bid", h.handleUpdateBid)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuthorization, h.requireAdmin)
			r.Get("/ads", h.handleListCampaigns)
			r.Get("/ads/{campaignID}", h.handleGetCampaign)
			r.Get("/events", h.handleEvents)
			r.Get("/plots/template", h.handlePlotTemplate)
			r.Post("/plots/validate", h.handlePlotValidate)
			r.Post("/plots/import", h.handlePlotImport)
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
