package db

import (
	"context"
	"fmt"
	"time"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

// Seed inserts demo pending campaigns, one per ad format, alternating
// between card and Kuickpay payment. Each campaign is built through the
// wizard so seeded rows obey the same rules as real ones.
func Seed(ctx context.Context, repo port.CampaignRepository) error {
	durations := domain.DurationOptions()
	now := time.Now()
	for i, f := range domain.AdFormats() {
		w := domain.NewWizard()
		w.Start()
		if err := w.SelectAdType(f.Type); err != nil {
			return err
		}
		if err := w.SelectDuration(durations[i%len(durations)].Days); err != nil {
			return err
		}
		w.Form = domain.FormData{
			AdTitle:       fmt.Sprintf("Demo %s campaign", f.Title),
			CompanyName:   fmt.Sprintf("Demo Realty %d", i+1),
			Description:   "Seeded campaign for the admin ads dashboard.",
			LinkRedirect:  "https://example.com/listing",
			Email:         fmt.Sprintf("demo%d@example.com", i+1),
			ContactNumber: "+923001234567",
			UploadedImage: fmt.Sprintf("demo-%s.png", f.Type),
		}

		method, details := domain.PaymentCard, domain.PaymentDetails{
			CardNumber: "4242 4242 4242 4242",
			ExpiryDate: "12/30",
			CardName:   "Demo Advertiser",
		}
		if i%2 == 1 {
			method, details = domain.PaymentKuickpay, domain.PaymentDetails{PhoneNumber: "03001234567"}
		}
		if err := w.SetPayment(method, details); err != nil {
			return err
		}

		pc, err := w.CompletePayment(now.Add(-time.Duration(i)*time.Hour), domain.RandomSuffix)
		if err != nil {
			return fmt.Errorf("build demo campaign %d: %w", i+1, err)
		}
		if err = repo.CreatePending(ctx, pc); err != nil {
			return fmt.Errorf("insert demo campaign %d: %w", i+1, err)
		}
	}
	return nil
}
