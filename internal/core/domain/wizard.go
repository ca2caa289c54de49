package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

var ErrInvalidStep = errors.New("invalid wizard step")

// Step is a position in the campaign wizard.
type Step int

const (
	StepFormat Step = iota + 1
	StepConfigure
	StepContent
	StepReview
	StepPayment
)

const (
	FirstStep = StepFormat
	LastStep  = StepPayment
)

var stepTitles = map[Step]string{
	StepFormat:    "Choose Format",
	StepConfigure: "Configure",
	StepContent:   "Content",
	StepReview:    "Review",
	StepPayment:   "Payment",
}

func (s Step) Valid() bool { return s >= FirstStep && s <= LastStep }

func (s Step) String() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// StepInfo is what the step indicator shows for one step.
type StepInfo struct {
	ID        Step   `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// URL query keys mirroring the wizard view state.
const (
	QueryWizard        = "wizard"
	QueryStep          = "step"
	QueryAdType        = "adType"
	QueryDuration      = "duration"
	QueryPaymentMethod = "paymentMethod"
)

// Wizard is the ad campaign creation state machine. Next and Prev move one
// step at a time; GoTo jumps anywhere without a validation gate. Leaving the
// content step through Next parses and validates the content fields.
type Wizard struct {
	Open          bool           `json:"open"`
	Step          Step           `json:"step"`
	AdType        AdType         `json:"adType"`
	Duration      Duration       `json:"duration"`
	Form          FormData       `json:"formData"`
	PaymentMethod PaymentMethod  `json:"paymentMethod"`
	Payment       PaymentDetails `json:"paymentData"`
}

// NewWizard returns a closed wizard holding the default selections.
func NewWizard() *Wizard {
	return &Wizard{
		Step:          FirstStep,
		AdType:        DefaultAdType,
		Duration:      DefaultDuration,
		PaymentMethod: PaymentCard,
	}
}

// Start opens the wizard on the first step.
func (w *Wizard) Start() {
	w.Open = true
	w.Step = FirstStep
}

// Close discards the draft and returns the wizard to its initial state.
func (w *Wizard) Close() {
	*w = *NewWizard()
}

// Next advances one step. On the last step it is a no-op. Leaving the
// content step requires valid fields; the form itself is left as typed.
func (w *Wizard) Next() error {
	if w.Step >= LastStep {
		return nil
	}
	if w.Step == StepContent {
		if _, errs := ParseContent(w.Form); errs != nil {
			return errs
		}
	}
	w.Step++
	return nil
}

// Prev goes back one step. On the first step it is a no-op.
func (w *Wizard) Prev() {
	if w.Step > FirstStep {
		w.Step--
	}
}

// GoTo jumps directly to s, as the step indicator does.
func (w *Wizard) GoTo(s Step) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStep, int(s))
	}
	w.Step = s
	return nil
}

// SelectAdType changes the format.
func (w *Wizard) SelectAdType(t AdType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAdType, string(t))
	}
	w.AdType = t
	return nil
}

// SelectDuration changes the run length.
func (w *Wizard) SelectDuration(d Duration) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d days", ErrUnknownDuration, int(d))
	}
	w.Duration = d
	return nil
}

// SetPayment changes the payment method and fields. The PSID is never
// taken from the caller.
func (w *Wizard) SetPayment(m PaymentMethod, p PaymentDetails) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPayment, string(m))
	}
	p.PSID = ""
	w.PaymentMethod = m
	w.Payment = p
	return nil
}

// Quote prices the current selection.
func (w *Wizard) Quote() (Quote, error) {
	return Price(w.AdType, w.Duration)
}

// Steps reports the indicator state of every step.
func (w *Wizard) Steps() []StepInfo {
	completed := map[Step]bool{
		StepFormat:    w.AdType != DefaultAdType,
		StepConfigure: w.Duration != DefaultDuration,
		StepContent:   w.Form.AdTitle != "" && w.Form.CompanyName != "" && w.Form.Email != "",
	}
	out := make([]StepInfo, 0, int(LastStep))
	for s := FirstStep; s <= LastStep; s++ {
		out = append(out, StepInfo{ID: s, Title: s.String(), Completed: completed[s], Current: s == w.Step})
	}
	return out
}

// Snapshot returns the blob persisted on every change.
func (w *Wizard) Snapshot() Snapshot {
	return Snapshot{FormData: w.Form, SelectedAdType: w.AdType, SelectedDuration: w.Duration}
}

// ApplySnapshot restores a persisted draft. Unknown selections fall back to
// the defaults.
func (w *Wizard) ApplySnapshot(s Snapshot) {
	w.Form = s.FormData
	w.AdType = DefaultAdType
	if s.SelectedAdType.Valid() {
		w.AdType = s.SelectedAdType
	}
	w.Duration = DefaultDuration
	if s.SelectedDuration.Valid() {
		w.Duration = s.SelectedDuration
	}
}

// Mirror returns the query parameters that make the view state navigable.
// A closed wizard mirrors to no parameters at all.
func (w *Wizard) Mirror() url.Values {
	v := url.Values{}
	if !w.Open {
		return v
	}
	v.Set(QueryWizard, "true")
	v.Set(QueryStep, strconv.Itoa(int(w.Step)))
	v.Set(QueryAdType, string(w.AdType))
	v.Set(QueryDuration, strconv.Itoa(int(w.Duration)))
	v.Set(QueryPaymentMethod, string(w.PaymentMethod))
	return v
}

// RestoreFromQuery applies mirrored view state. Values that do not parse
// are ignored.
func (w *Wizard) RestoreFromQuery(q url.Values) {
	if q.Get(QueryWizard) == "true" {
		w.Open = true
	}
	if n, err := strconv.Atoi(q.Get(QueryStep)); err == nil && Step(n).Valid() {
		w.Step = Step(n)
	}
	if t := AdType(q.Get(QueryAdType)); t.Valid() {
		w.AdType = t
	}
	if n, err := strconv.Atoi(q.Get(QueryDuration)); err == nil && Duration(n).Valid() {
		w.Duration = Duration(n)
	}
	if m := PaymentMethod(q.Get(QueryPaymentMethod)); m.Valid() {
		w.PaymentMethod = m
	}
}
