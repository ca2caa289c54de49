package usecase

import (
	"context"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// CampaignUseCase serves campaigns created through the wizard to the admin
// ads dashboard.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// ListPending returns the newest pending campaigns. Non-positive limits use
// the default page size.
func (u *CampaignUseCase) ListPending(ctx context.Context, limit int) ([]domain.PendingCampaign, error) {
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}
	return u.repo.ListPending(ctx, limit)
}

// Get returns a campaign by its public id.
func (u *CampaignUseCase) Get(ctx context.Context, campaignID string) (*domain.PendingCampaign, error) {
	return u.repo.GetByCampaignID(ctx, campaignID)
}
