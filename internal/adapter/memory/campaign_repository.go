package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

// CampaignRepository keeps pending campaigns in process memory. It backs
// local runs without PostgreSQL.
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns map[string]domain.PendingCampaign
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{campaigns: make(map[string]domain.PendingCampaign)}
}

func (r *CampaignRepository) CreatePending(_ context.Context, c domain.PendingCampaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[c.CampaignID]; ok {
		return fmt.Errorf("%w: %s", port.ErrDuplicateCampaign, c.CampaignID)
	}
	r.campaigns[c.CampaignID] = c
	return nil
}

func (r *CampaignRepository) GetByCampaignID(_ context.Context, campaignID string) (*domain.PendingCampaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[campaignID]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	return &c, nil
}

func (r *CampaignRepository) ListPending(_ context.Context, limit int) ([]domain.PendingCampaign, error) {
	r.mu.RLock()
	out := make([]domain.PendingCampaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		out = append(out, c)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
