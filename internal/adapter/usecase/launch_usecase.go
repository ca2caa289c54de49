package usecase

import (
	"context"
	"log/slog"
	"time"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

// LaunchUseCase counts down to the marketplace launch.
type LaunchUseCase struct {
	countdown *domain.Countdown
	logger    *slog.Logger
}

// NewLaunchUseCase creates a countdown to launchAt. onLive runs once when
// the launch instant is reached, whichever of Status or Watch observes it
// first.
func NewLaunchUseCase(launchAt time.Time, clock domain.Clock, logger *slog.Logger, onLive func()) *LaunchUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	u := &LaunchUseCase{logger: logger}
	u.countdown = domain.NewCountdown(launchAt, clock, func() {
		logger.Info("marketplace is live", slog.Time("launch_at", launchAt))
		if onLive != nil {
			onLive()
		}
	})
	return u
}

// Status recomputes the countdown from the clock.
func (u *LaunchUseCase) Status() port.LaunchStatus {
	st := u.countdown.Tick()
	return port.LaunchStatus{LaunchAt: u.countdown.Target(), CountdownState: st, Live: st.Expired}
}

// Watch ticks the countdown every interval until launch or until ctx is
// cancelled.
func (u *LaunchUseCase) Watch(ctx context.Context, interval time.Duration) error {
	return u.countdown.Run(ctx, interval, nil)
}
