package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSuffix(n int) string { return strings.Repeat("Z", n) }

func readyWizard(t *testing.T, m PaymentMethod, p PaymentDetails) *Wizard {
	t.Helper()
	w := NewWizard()
	w.Start()
	require.NoError(t, w.SelectAdType(AdTypeHorizontal))
	require.NoError(t, w.SelectDuration(Duration30Days))
	w.Form = validForm()
	require.NoError(t, w.GoTo(StepPayment))
	require.NoError(t, w.SetPayment(m, p))
	return w
}

func TestSubmit(t *testing.T) {
	w := readyWizard(t, PaymentCard, PaymentDetails{})
	sub, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, int64(9000), sub.Price)
	assert.Equal(t, int64(3000), sub.BasePrice)
	assert.Equal(t, 3.0, sub.DurationMultiplier)
	assert.Equal(t, "+923001234567", sub.ContactNumber)

	w.Form.Email = ""
	_, err = w.Submit()
	var fe FieldErrors
	assert.ErrorAs(t, err, &fe)
}

func TestCompletePaymentKuickpay(t *testing.T) {
	now := time.UnixMilli(1751990400000)
	w := readyWizard(t, PaymentKuickpay, PaymentDetails{PhoneNumber: "03001234567"})

	pc, err := w.CompletePayment(now, fixedSuffix)
	require.NoError(t, err)
	assert.Equal(t, CampaignPendingPayment, pc.Status)
	assert.Equal(t, "PSID-1751990400000-ZZZZZZZZZ", pc.PaymentData.PSID)
	assert.Equal(t, "AD-1751990400000-ZZZZZ", pc.CampaignID)
	assert.Equal(t, int64(9000), pc.Price)
	assert.Equal(t, now.UTC(), pc.CreatedAt)
}

func TestCompletePaymentCard(t *testing.T) {
	w := readyWizard(t, PaymentCard, PaymentDetails{
		CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/30",
		CVV:        "123",
		CardName:   "A Buyer",
	})

	pc, err := w.CompletePayment(time.Now(), fixedSuffix)
	require.NoError(t, err)
	assert.Equal(t, CampaignPendingApproval, pc.Status)
	assert.Empty(t, pc.PaymentData.PSID)
	assert.Empty(t, pc.PaymentData.CVV)
	assert.Equal(t, "************4242", pc.PaymentData.CardNumber)
	// the draft keeps what was typed
	assert.Equal(t, "123", w.Payment.CVV)
}

func TestRandomSuffix(t *testing.T) {
	s := RandomSuffix(PSIDSuffixLen)
	require.Len(t, s, PSIDSuffixLen)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(suffixAlphabet, r), string(r))
	}
}
