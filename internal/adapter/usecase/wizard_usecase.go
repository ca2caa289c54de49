package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

// QuerySession carries the session id when a mirrored wizard URL is
// reopened.
const QuerySession = "session"

// storedView is the navigable view state of a session. Card secrets are
// never written to the store.
type storedView struct {
	Query   string                `json:"query"`
	Payment domain.PaymentDetails `json:"paymentData"`
}

// WizardUseCase implements port.WizardUseCase on top of a draft store. The
// session's draft and view state are reloaded for every call and written
// back after every change, so any replica can serve the next step.
type WizardUseCase struct {
	store     port.DraftStore
	campaigns port.CampaignRepository
	events    port.CampaignEvents
	clock     domain.Clock
	logger    *slog.Logger
	locks     sessionLocks

	newSessionID func() string
	suffix       func(n int) string
}

// NewWizardUseCase wires the wizard to its store and campaign sinks. events
// may be nil when no broker is configured.
func NewWizardUseCase(store port.DraftStore, campaigns port.CampaignRepository, events port.CampaignEvents, clock domain.Clock, logger *slog.Logger) *WizardUseCase {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WizardUseCase{
		store:        store,
		campaigns:    campaigns,
		events:       events,
		clock:        clock,
		logger:       logger,
		newSessionID: uuid.NewString,
		suffix:       domain.RandomSuffix,
	}
}

// Open starts a wizard session. When query names an existing session it is
// resumed with the mirrored view state applied on top of its stored draft;
// otherwise a fresh session is created.
func (u *WizardUseCase) Open(ctx context.Context, query url.Values) (*port.WizardView, error) {
	if sid := query.Get(QuerySession); sid != "" {
		unlock := u.locks.lock(sid)
		defer unlock()
		w, err := u.load(ctx, sid)
		switch {
		case err == nil:
			w.RestoreFromQuery(query)
			w.Open = true
			if err = u.save(ctx, sid, w); err != nil {
				return nil, err
			}
			return u.view(sid, w), nil
		case !errors.Is(err, port.ErrSessionNotFound):
			return nil, err
		}
	}

	sid := u.newSessionID()
	w := domain.NewWizard()
	w.Start()
	w.RestoreFromQuery(query)
	if err := u.save(ctx, sid, w); err != nil {
		return nil, err
	}
	return u.view(sid, w), nil
}

// Get returns the current state of a session.
func (u *WizardUseCase) Get(ctx context.Context, sessionID string) (*port.WizardView, error) {
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.view(sessionID, w), nil
}

// Next advances one step. Leaving the content step requires valid content.
func (u *WizardUseCase) Next(ctx context.Context, sessionID string) (*port.WizardView, error) {
	return u.mutate(ctx, sessionID, func(w *domain.Wizard) error { return w.Next() })
}

// Prev goes back one step.
func (u *WizardUseCase) Prev(ctx context.Context, sessionID string) (*port.WizardView, error) {
	return u.mutate(ctx, sessionID, func(w *domain.Wizard) error {
		w.Prev()
		return nil
	})
}

// GoTo jumps to any step.
func (u *WizardUseCase) GoTo(ctx context.Context, sessionID string, step domain.Step) (*port.WizardView, error) {
	return u.mutate(ctx, sessionID, func(w *domain.Wizard) error { return w.GoTo(step) })
}

// SelectAdType changes the ad format. Artwork validated for the previous
// format is dropped when its dimensions no longer fit.
func (u *WizardUseCase) SelectAdType(ctx context.Context, sessionID string, t domain.AdType) (*port.WizardView, error) {
	return u.mutate(ctx, sessionID, func(w *domain.Wizard) error {
		prev := w.AdType
		if err := w.SelectAdType(t); err != nil {
			return err
		}
		if prev != t {
			w.Form.UploadedImage = ""
		}
		return nil
	})
}

// SelectDuration changes the run length.
func (u *WizardUseCase) SelectDuration(ctx context.Context, sessionID string, d domain.Duration) (*port.WizardView, error) {
	return u.mutate(ctx, sessionID, func(w *domain.Wizard) error { return w.SelectDuration(d) })
}

// UpdateContent replaces the content fields. The uploaded image reference
// is only changed through AttachImage.
func (u *WizardUseCase) UpdateContent(ctx context.Context, sessionID string, f domain.FormData) (*port.WizardView, error) {
	return u.mutate(ctx, sessionID, func(w *domain.Wizard) error {
		f.UploadedImage = w.Form.UploadedImage
		w.Form = f
		return nil
	})
}

// AttachImage validates artwork against the selected format and records it.
func (u *WizardUseCase) AttachImage(ctx context.Context, sessionID string, img port.ImageUpload) (*port.WizardView, error) {
	return u.mutate(ctx, sessionID, func(w *domain.Wizard) error {
		if errs := domain.ValidateAdImage(w.AdType, img.Size, img.Width, img.Height); errs != nil {
			return errs
		}
		w.Form.UploadedImage = img.Name
		return nil
	})
}

// SetPayment records the payment method and its fields.
func (u *WizardUseCase) SetPayment(ctx context.Context, sessionID string, m domain.PaymentMethod, p domain.PaymentDetails) (*port.WizardView, error) {
	return u.mutate(ctx, sessionID, func(w *domain.Wizard) error { return w.SetPayment(m, p) })
}

// Submit validates the content and stores the submission for the payment
// step.
func (u *WizardUseCase) Submit(ctx context.Context, sessionID string) (*domain.Submission, error) {
	unlock := u.locks.lock(sessionID)
	defer unlock()
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sub, err := w.Submit()
	if err != nil {
		return nil, err
	}
	if err = u.store.Save(ctx, port.DraftKey(port.KeyFormData, sessionID), sub); err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}
	return &sub, nil
}

// CompletePayment copies the draft into a pending campaign, stores it and
// announces it. The draft stays in place until the wizard is closed.
func (u *WizardUseCase) CompletePayment(ctx context.Context, sessionID string) (*domain.PendingCampaign, error) {
	unlock := u.locks.lock(sessionID)
	defer unlock()
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	pc, err := w.CompletePayment(u.clock.Now(), u.suffix)
	if err != nil {
		return nil, err
	}
	if err = u.store.Save(ctx, port.DraftKey(port.KeyCampaignData, sessionID), pc); err != nil {
		return nil, fmt.Errorf("save campaign data: %w", err)
	}
	if err = u.campaigns.CreatePending(ctx, pc); err != nil {
		return nil, fmt.Errorf("create pending campaign: %w", err)
	}
	if u.events != nil {
		if err = u.events.PublishPending(ctx, pc); err != nil {
			u.logger.Warn("publish pending campaign",
				slog.String("campaign_id", pc.CampaignID), slog.Any("error", err))
		}
	}
	return &pc, nil
}

// Close resets the session's wizard and deletes every blob stored for it.
func (u *WizardUseCase) Close(ctx context.Context, sessionID string) error {
	unlock := u.locks.lock(sessionID)
	defer unlock()
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return err
	}
	step := w.Step
	w.Close()
	u.logger.Debug("wizard closed",
		slog.String("session_id", sessionID), slog.Int("last_step", int(step)), slog.Bool("open", w.Open))
	return u.store.Delete(ctx,
		port.DraftKey(port.KeyWizardView, sessionID),
		port.DraftKey(port.KeyCampaignDraft, sessionID),
		port.DraftKey(port.KeyFormData, sessionID),
		port.DraftKey(port.KeyCampaignData, sessionID),
	)
}

// mutate loads a session, applies fn and persists the result. The session
// is left untouched when fn fails. Calls on one session are serialised so
// concurrent edits do not overwrite each other.
func (u *WizardUseCase) mutate(ctx context.Context, sessionID string, fn func(*domain.Wizard) error) (*port.WizardView, error) {
	unlock := u.locks.lock(sessionID)
	defer unlock()
	w, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err = fn(w); err != nil {
		return nil, err
	}
	if err = u.save(ctx, sessionID, w); err != nil {
		return nil, err
	}
	return u.view(sessionID, w), nil
}

func (u *WizardUseCase) load(ctx context.Context, sessionID string) (*domain.Wizard, error) {
	var sv storedView
	ok, err := u.store.Load(ctx, port.DraftKey(port.KeyWizardView, sessionID), &sv)
	if err != nil {
		return nil, fmt.Errorf("load wizard view: %w", err)
	}
	if !ok {
		return nil, port.ErrSessionNotFound
	}

	w := domain.NewWizard()
	var snap domain.Snapshot
	ok, err = u.store.Load(ctx, port.DraftKey(port.KeyCampaignDraft, sessionID), &snap)
	if err != nil {
		return nil, fmt.Errorf("load campaign draft: %w", err)
	}
	if ok {
		w.ApplySnapshot(snap)
	}

	q, err := url.ParseQuery(sv.Query)
	if err != nil {
		return nil, fmt.Errorf("parse wizard view: %w", err)
	}
	w.RestoreFromQuery(q)
	w.Payment = sv.Payment
	return w, nil
}

func (u *WizardUseCase) save(ctx context.Context, sessionID string, w *domain.Wizard) error {
	if err := u.store.Save(ctx, port.DraftKey(port.KeyCampaignDraft, sessionID), w.Snapshot()); err != nil {
		return fmt.Errorf("save campaign draft: %w", err)
	}
	payment := w.Payment
	payment.CVV = ""
	sv := storedView{Query: w.Mirror().Encode(), Payment: payment}
	if err := u.store.Save(ctx, port.DraftKey(port.KeyWizardView, sessionID), sv); err != nil {
		return fmt.Errorf("save wizard view: %w", err)
	}
	return nil
}

func (u *WizardUseCase) view(sessionID string, w *domain.Wizard) *port.WizardView {
	q, _ := w.Quote()
	mirror := w.Mirror()
	mirror.Set(QuerySession, sessionID)
	return &port.WizardView{
		SessionID: sessionID,
		Wizard:    *w,
		Steps:     w.Steps(),
		Quote:     q,
		Query:     mirror.Encode(),
	}
}

// sessionLocks hands out one mutex per session id. Entries are dropped when
// no caller holds or waits on them.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sessionLock)
	}
	sl, ok := l.locks[id]
	if !ok {
		sl = &sessionLock{}
		l.locks[id] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()
		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// held reports how many session locks are in use.
func (l *sessionLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
