package port

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("wizard session not found")

// Storage keys for wizard drafts. Each is suffixed with ":<session id>".
const (
	KeyCampaignDraft = "adCampaignData"
	KeyFormData      = "adFormData"
	KeyCampaignData  = "campaignData"
	KeyWizardView    = "wizardView"
)

// DraftKey builds the storage key for a session blob.
func DraftKey(prefix, sessionID string) string {
	return prefix + ":" + sessionID
}

// DraftStore persists wizard blobs as JSON documents. It stands in for the
// browser's local storage, so implementations are simple key/value stores.
type DraftStore interface {
	// Load decodes the blob at key into dst. It reports false when the key
	// does not exist.
	Load(ctx context.Context, key string, dst any) (bool, error)
	// Save encodes v and stores it at key, replacing any previous value.
	Save(ctx context.Context, key string, v any) error
	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
