package configs

import (
	"net/url"
	"time"
)

// Upstream configures the external marketplace backend that booking, plot
// and verification requests are forwarded to.
type Upstream struct {
	// BaseURL is the scheme and host of the backend API.
	BaseURL url.URL       `env:"BASE_URL" envDefault:"https://backend-apis.dhamarketplace.com"`
	// Timeout bounds a single upstream request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	BookingInfoPath  string `env:"BOOKING_INFO_PATH" envDefault:"/api/customer-booking-info"`
	VerifyLetterPath string `env:"VERIFY_LETTER_PATH" envDefault:"/api/verify-plot-confirmation-letter"`
	ProfilePath      string `env:"PROFILE_PATH" envDefault:"/api/user-profile"`
	UpdateBidPath    string `env:"UPDATE_BID_PATH" envDefault:"/api/update-bid-amount"`
	ImportPlotsPath  string `env:"IMPORT_PLOTS_PATH" envDefault:"/api/import-plots"`
	EventsPath       string `env:"EVENTS_PATH" envDefault:"/api/events"`
}
