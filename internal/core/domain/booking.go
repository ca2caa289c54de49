package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BookingStatus is owned by the backend; it is only displayed here.
type BookingStatus string

const (
	BookingPending    BookingStatus = "Pending"
	BookingInprogress BookingStatus = "Inprogress"
	BookingCompleted  BookingStatus = "Completed"
	BookingCancelled  BookingStatus = "Cancelled"
	BookingExpired    BookingStatus = "Expired"
)

// Amount decodes bid amounts sent by the backend either as JSON numbers or
// as numeric strings.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("amount %s: %w", string(b), err)
	}
	*a = Amount(f)
	return nil
}

// Timestamp decodes the time layouts the backend emits.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// Plot is the subset of plot fields shown next to a booking.
type Plot struct {
	ID        int64  `json:"id"`
	PlotNo    string `json:"plot_no"`
	Phase     string `json:"phase"`
	Sector    string `json:"sector"`
	Category  string `json:"category"`
	Size      string `json:"size"`
	IsBidding bool   `json:"is_bidding"`
}

// ReserveBooking is a customer's booking or bid on a plot. RankNo and Status
// are computed by the backend.
type ReserveBooking struct {
	ID                int64         `json:"id"`
	BidAmount         Amount        `json:"bid_amount"`
	RankNo            int           `json:"rank_no"`
	Status            BookingStatus `json:"status"`
	ChallanNo         string        `json:"challan_no"`
	ChallanType       string        `json:"challan_type"`
	ChallanExpiryTime *Timestamp    `json:"challan_expiry_time"`
	Plot              *Plot         `json:"plot,omitempty"`
}

// Profile is the customer profile returned by the backend.
type Profile struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	CNIC            string           `json:"cnic"`
	Role            int              `json:"role"`
	ReserveBookings []ReserveBooking `json:"reserve_bookings"`
}

// IsAdmin reports whether the profile belongs to back-office staff.
func (p Profile) IsAdmin() bool { return p.Role > 0 }

// FindBooking returns the booking with the given id.
func (p Profile) FindBooking(id int64) (ReserveBooking, bool) {
	for _, b := range p.ReserveBookings {
		if b.ID == id {
			return b, true
		}
	}
	return ReserveBooking{}, false
}

// FormatCNIC renders a 13 digit CNIC as 12345-1234567-1. Other inputs are
// returned unchanged.
func FormatCNIC(cnic string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cnic)
	if len(digits) != 13 {
		return cnic
	}
	return digits[:5] + "-" + digits[5:12] + "-" + digits[12:]
}

// RankTier is the visual class for a bid rank.
type RankTier string

const (
	RankUnranked RankTier = "unranked"
	RankFirst    RankTier = "first"
	RankSecond   RankTier = "second"
	RankThird    RankTier = "third"
	RankOther    RankTier = "other"
)

// TierForRank maps a backend rank to its display tier. Non-positive ranks
// are unranked.
func TierForRank(rank int) RankTier {
	switch {
	case rank <= 0:
		return RankUnranked
	case rank == 1:
		return RankFirst
	case rank == 2:
		return RankSecond
	case rank == 3:
		return RankThird
	default:
		return RankOther
	}
}

// BidStep is the increment every bid must be a multiple of (1 lac).
const BidStep = 100000

// ValidateBidIncrease checks a proposed bid against the current one.
func ValidateBidIncrease(current, proposed float64) FieldErrors {
	if proposed <= 0 || proposed <= current {
		return FieldErrors{"bid_amount": "New bid amount must be higher than the current bid amount"}
	}
	if int64(proposed)%BidStep != 0 || proposed != float64(int64(proposed)) {
		return FieldErrors{"bid_amount": "Bid amount must be in multiples of 1 lac (100,000)"}
	}
	return nil
}
