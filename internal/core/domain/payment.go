package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Submit validates the content and prices the selection, producing the
// record handed to the payment step.
func (w *Wizard) Submit() (Submission, error) {
	c, errs := ParseContent(w.Form)
	if errs != nil {
		return Submission{}, errs
	}
	q, err := w.Quote()
	if err != nil {
		return Submission{}, err
	}
	if q.Price <= 0 {
		return Submission{}, ErrNonPositivePrice
	}
	return Submission{
		FormData:           c.FormData(),
		AdType:             q.AdType,
		Duration:           q.Duration,
		Price:              q.Price,
		BasePrice:          q.BasePrice,
		DurationMultiplier: q.DurationMultiplier,
	}, nil
}

// Lengths of the random parts of generated identifiers.
const (
	CampaignSuffixLen = 5
	PSIDSuffixLen     = 9
)

// CompletePayment turns the current draft into a pending campaign. Kuickpay
// campaigns get a PSID and wait for payment; card campaigns wait for
// approval. The identifiers are timestamp plus random suffix placeholders,
// not issued by a payment provider. suffix returns n random characters.
func (w *Wizard) CompletePayment(now time.Time, suffix func(n int) string) (PendingCampaign, error) {
	sub, err := w.Submit()
	if err != nil {
		return PendingCampaign{}, err
	}
	pc := PendingCampaign{
		Submission:    sub,
		CampaignID:    CampaignID(now, suffix(CampaignSuffixLen)),
		PaymentMethod: w.PaymentMethod,
		PaymentData:   w.Payment.Redacted(),
		CreatedAt:     now.UTC(),
	}
	switch w.PaymentMethod {
	case PaymentKuickpay:
		pc.PaymentData.PSID = PSID(now, suffix(PSIDSuffixLen))
		pc.Status = CampaignPendingPayment
	case PaymentCard:
		pc.Status = CampaignPendingApproval
	default:
		return PendingCampaign{}, fmt.Errorf("%w: %q", ErrUnknownPayment, string(w.PaymentMethod))
	}
	return pc, nil
}

// CampaignID formats a campaign identifier for the given instant.
func CampaignID(now time.Time, suffix string) string {
	return fmt.Sprintf("AD-%d-%s", now.UnixMilli(), suffix)
}

// PSID formats a Kuickpay payment slip identifier.
func PSID(now time.Time, suffix string) string {
	return fmt.Sprintf("PSID-%d-%s", now.UnixMilli(), suffix)
}

// Redacted drops the CVV and keeps only the last four card digits.
func (p PaymentDetails) Redacted() PaymentDetails {
	p.CVV = ""
	digits := strings.ReplaceAll(p.CardNumber, " ", "")
	if len(digits) > 4 {
		p.CardNumber = strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
	}
	return p
}

// RandomSuffix returns n random upper-case base36 characters.
func RandomSuffix(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(suffixAlphabet[rand.IntN(len(suffixAlphabet))])
	}
	return b.String()
}
