package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrUnknownAdType    = errors.New("unknown ad type")
	ErrUnknownDuration  = errors.New("unknown duration")
	ErrUnknownPayment   = errors.New("unknown payment method")
	ErrNonPositivePrice = errors.New("price must be positive")
)

// AdType identifies an advertising format sold on the marketplace.
type AdType string

const (
	AdTypeVertical   AdType = "vertical"
	AdTypeHorizontal AdType = "horizontal"
	AdTypeSplash     AdType = "splash"
	AdTypeEvent      AdType = "event"
	AdTypeSquare     AdType = "square"
)

// DefaultAdType is preselected when the wizard opens.
const DefaultAdType = AdTypeVertical

// AdFormat describes an ad type's placement, artwork constraints and base
// price for a one week run. Prices are whole PKR.
type AdFormat struct {
	Type         AdType   `json:"id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	BasePrice    int64    `json:"basePrice"`
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	MaxFileBytes int64    `json:"maxFileSize"`
	Pages        []AdPage `json:"pages"`
}

// AdPage is a page an ad format can be placed on.
type AdPage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Dimensions renders the artwork size as shown to advertisers.
func (f AdFormat) Dimensions() string {
	return fmt.Sprintf("%dx%dpx", f.Width, f.Height)
}

const megabyte = 1 << 20

var adFormats = []AdFormat{
	{
		Type: AdTypeVertical, Title: "Vertical Banner", Subtitle: "Sidebar Placement",
		BasePrice: 2000, Width: 300, Height: 600, MaxFileBytes: 2 * megabyte,
		Pages: []AdPage{{ID: "faqs", Name: "FAQs Page"}},
	},
	{
		Type: AdTypeHorizontal, Title: "Horizontal Banner", Subtitle: "Top/Bottom Placement",
		BasePrice: 3000, Width: 728, Height: 90, MaxFileBytes: 2 * megabyte,
		Pages: []AdPage{
			{ID: "landing", Name: "Landing Page"},
			{ID: "gallery", Name: "Gallery Page"},
			{ID: "faqs", Name: "FAQs Page"},
		},
	},
	{
		Type: AdTypeSplash, Title: "Splash/Overlay Ad", Subtitle: "Interstitial Placement",
		BasePrice: 5000, Width: 400, Height: 300, MaxFileBytes: 3 * megabyte,
		Pages: []AdPage{
			{ID: "landing", Name: "Landing Page Only"},
			{ID: "all", Name: "All Pages"},
		},
	},
	{
		Type: AdTypeEvent, Title: "Sponsored Event", Subtitle: "Events Section",
		BasePrice: 4000, Width: 320, Height: 200, MaxFileBytes: 2 * megabyte,
		Pages: []AdPage{
			{ID: "landing-events", Name: "Landing Page Events Section"},
			{ID: "contact-events", Name: "Contact Page Events Section"},
		},
	},
	{
		Type: AdTypeSquare, Title: "Square Banner", Subtitle: "Compact Placement",
		BasePrice: 2500, Width: 300, Height: 300, MaxFileBytes: 2 * megabyte,
		Pages: []AdPage{
			{ID: "faqs", Name: "FAQs Page"},
			{ID: "gallery", Name: "Gallery Page"},
			{ID: "how-to-use", Name: "How to Use Page"},
			{ID: "contact", Name: "Contact Page"},
		},
	},
}

// AdFormats returns the catalogue in display order.
func AdFormats() []AdFormat {
	out := make([]AdFormat, len(adFormats))
	copy(out, adFormats)
	return out
}

// Format looks up the catalogue entry for t.
func (t AdType) Format() (AdFormat, error) {
	for _, f := range adFormats {
		if f.Type == t {
			return f, nil
		}
	}
	return AdFormat{}, fmt.Errorf("%w: %q", ErrUnknownAdType, string(t))
}

// Valid reports whether t is in the catalogue.
func (t AdType) Valid() bool {
	_, err := t.Format()
	return err == nil
}

// Duration is a campaign run length in days.
type Duration int

const (
	Duration3Days  Duration = 3
	Duration7Days  Duration = 7
	Duration14Days Duration = 14
	Duration30Days Duration = 30
)

// DefaultDuration is preselected when the wizard opens.
const DefaultDuration = Duration7Days

// DurationOption pairs a run length with its price multiplier.
type DurationOption struct {
	Days       Duration `json:"days"`
	Multiplier float64  `json:"multiplier"`
	Label      string   `json:"label"`
}

// Multipliers are strictly increasing with the number of days.
var durationOptions = []DurationOption{
	{Days: Duration3Days, Multiplier: 0.6, Label: "3 Days"},
	{Days: Duration7Days, Multiplier: 1, Label: "1 Week"},
	{Days: Duration14Days, Multiplier: 1.8, Label: "2 Weeks"},
	{Days: Duration30Days, Multiplier: 3, Label: "1 Month"},
}

// DurationOptions returns the selectable run lengths, shortest first.
func DurationOptions() []DurationOption {
	out := make([]DurationOption, len(durationOptions))
	copy(out, durationOptions)
	return out
}

// Option looks up the multiplier row for d.
func (d Duration) Option() (DurationOption, error) {
	for _, o := range durationOptions {
		if o.Days == d {
			return o, nil
		}
	}
	return DurationOption{}, fmt.Errorf("%w: %d days", ErrUnknownDuration, int(d))
}

// Valid reports whether d is a selectable run length.
func (d Duration) Valid() bool {
	_, err := d.Option()
	return err == nil
}

// Quote is the price breakdown for an ad type and duration.
type Quote struct {
	AdType             AdType   `json:"adType"`
	Duration           Duration `json:"duration"`
	BasePrice          int64    `json:"basePrice"`
	DurationMultiplier float64  `json:"durationMultiplier"`
	Price              int64    `json:"price"`
}

// Price computes round(basePrice × multiplier). Halves round away from zero.
func Price(t AdType, d Duration) (Quote, error) {
	f, err := t.Format()
	if err != nil {
		return Quote{}, err
	}
	o, err := d.Option()
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		AdType:             t,
		Duration:           d,
		BasePrice:          f.BasePrice,
		DurationMultiplier: o.Multiplier,
		Price:              int64(math.Round(float64(f.BasePrice) * o.Multiplier)),
	}, nil
}

// PriceGrid returns a quote for every format and duration combination.
func PriceGrid() []Quote {
	grid := make([]Quote, 0, len(adFormats)*len(durationOptions))
	for _, f := range adFormats {
		for _, o := range durationOptions {
			q, _ := Price(f.Type, o.Days)
			grid = append(grid, q)
		}
	}
	return grid
}

// PaymentMethod selects how an advertiser settles a campaign.
type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentKuickpay PaymentMethod = "kuickpay"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentKuickpay
}

// PaymentDetails holds the payment step fields. PSID is only set for
// Kuickpay once payment is completed.
type PaymentDetails struct {
	CardNumber  string `json:"cardNumber"`
	ExpiryDate  string `json:"expiryDate"`
	CVV         string `json:"cvv"`
	CardName    string `json:"cardName"`
	PhoneNumber string `json:"phoneNumber"`
	PSID        string `json:"psid"`
}

// FormData is the free-text part of a campaign draft.
type FormData struct {
	AdTitle       string `json:"adTitle"`
	CompanyName   string `json:"companyName"`
	Description   string `json:"description"`
	LinkRedirect  string `json:"linkRedirect"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	UploadedImage string `json:"uploadedImage,omitempty"`
}

// Snapshot is the draft blob written to durable storage on every wizard
// change.
type Snapshot struct {
	FormData         FormData `json:"formData"`
	SelectedAdType   AdType   `json:"selectedAdType"`
	SelectedDuration Duration `json:"selectedDuration"`
}

// Submission is written when the content step is submitted for payment.
type Submission struct {
	FormData
	AdType             AdType   `json:"adType"`
	Duration           Duration `json:"duration"`
	Price              int64    `json:"price"`
	BasePrice          int64    `json:"basePrice"`
	DurationMultiplier float64  `json:"durationMultiplier"`
}

// CampaignStatus is the lifecycle state of a paid-for campaign.
type CampaignStatus string

const (
	CampaignPendingPayment  CampaignStatus = "pending_payment"
	CampaignPendingApproval CampaignStatus = "pending_approval"
)

// PendingCampaign is the record created when payment is completed. It is a
// copy of the draft; the draft itself lives on until the wizard is closed.
type PendingCampaign struct {
	Submission
	CampaignID    string         `json:"campaignId"`
	PaymentMethod PaymentMethod  `json:"paymentMethod"`
	PaymentData   PaymentDetails `json:"paymentData"`
	Status        CampaignStatus `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
}
