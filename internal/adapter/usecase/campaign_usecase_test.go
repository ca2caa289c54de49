package usecase

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
	"dha-marketplace/internal/core/port/mocks"
)

func TestListPendingClampsLimit(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := NewCampaignUseCase(repo)

	repo.EXPECT().ListPending(mock.Anything, defaultListLimit).Return(nil, nil).Once()
	repo.EXPECT().ListPending(mock.Anything, maxListLimit).Return(nil, nil).Once()
	repo.EXPECT().ListPending(mock.Anything, 10).Return([]domain.PendingCampaign{{CampaignID: "AD-1"}}, nil).Once()

	_, err := u.ListPending(context.Background(), 0)
	require.NoError(t, err)
	_, err = u.ListPending(context.Background(), 10_000)
	require.NoError(t, err)
	list, err := u.ListPending(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetCampaignNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := NewCampaignUseCase(repo)
	repo.EXPECT().GetByCampaignID(mock.Anything, "AD-404").Return(nil, port.ErrCampaignNotFound)

	_, err := u.Get(context.Background(), "AD-404")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestLaunchStatus(t *testing.T) {
	launchAt := time.Date(2025, 7, 8, 19, 0, 0, 0, time.UTC)
	clock := &stepClock{now: launchAt.Add(-26 * time.Hour)}
	live := 0
	u := NewLaunchUseCase(launchAt, clock, slog.New(slog.DiscardHandler), func() { live++ })

	st := u.Status()
	assert.False(t, st.Live)
	assert.Equal(t, domain.Remaining{Days: 1, Hours: 2}, st.Remaining)
	assert.Equal(t, launchAt, st.LaunchAt)

	clock.now = launchAt.Add(time.Second)
	assert.True(t, u.Status().Live)
	assert.True(t, u.Status().Live)
	assert.Equal(t, 1, live)
}

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }
