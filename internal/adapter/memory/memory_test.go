package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

func TestDraftStoreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewDraftStore()

	snap := domain.Snapshot{SelectedAdType: domain.AdTypeEvent}
	require.NoError(t, s.Save(ctx, "a", snap))
	snap.SelectedAdType = domain.AdTypeSquare

	var got domain.Snapshot
	ok, err := s.Load(ctx, "a", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.AdTypeEvent, got.SelectedAdType)

	ok, err = s.Load(ctx, "b", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, "b", 1))
	require.NoError(t, s.Delete(ctx, "a", "b", "c"))
	assert.Zero(t, s.Len())
}

func TestCampaignRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	r := NewCampaignRepository()
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"AD-1", "AD-2", "AD-3"} {
		require.NoError(t, r.CreatePending(ctx, domain.PendingCampaign{
			CampaignID: id,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}
	assert.ErrorIs(t, r.CreatePending(ctx, domain.PendingCampaign{CampaignID: "AD-1"}), port.ErrDuplicateCampaign)

	list, err := r.ListPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "AD-3", list[0].CampaignID)
	assert.Equal(t, "AD-2", list[1].CampaignID)

	_, err = r.GetByCampaignID(ctx, "AD-9")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}
