package port

import (
	"context"
	"errors"

	"dha-marketplace/internal/core/domain"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// ErrDuplicateCampaign is returned when a campaign id is already stored.
var ErrDuplicateCampaign = errors.New("duplicate campaign id")

// CampaignRepository stores campaigns created by the wizard once payment is
// completed. It is an outbound port in hexagonal architecture.
type CampaignRepository interface {
	// CreatePending stores a new pending campaign.
	CreatePending(ctx context.Context, c domain.PendingCampaign) error
	// GetByCampaignID returns ErrCampaignNotFound when no campaign has the id.
	GetByCampaignID(ctx context.Context, campaignID string) (*domain.PendingCampaign, error)
	// ListPending returns the newest pending campaigns first.
	ListPending(ctx context.Context, limit int) ([]domain.PendingCampaign, error)
}

// CampaignEvents announces new campaigns to the admin side.
type CampaignEvents interface {
	PublishPending(ctx context.Context, c domain.PendingCampaign) error
}
