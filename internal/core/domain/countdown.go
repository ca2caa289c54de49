package domain

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Clock abstracts wall-clock reads so countdowns can be driven in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Remaining is a duration split into display fields. It is never negative.
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// SplitRemaining breaks d into days, hours, minutes and seconds. Negative
// durations yield all zeroes.
func SplitRemaining(d time.Duration) Remaining {
	if d <= 0 {
		return Remaining{}
	}
	secs := int64(d / time.Second)
	return Remaining{
		Days:    int(secs / 86400),
		Hours:   int(secs / 3600 % 24),
		Minutes: int(secs / 60 % 60),
		Seconds: int(secs % 60),
	}
}

// CountdownState is the outcome of a single tick.
type CountdownState struct {
	Remaining Remaining `json:"remaining"`
	Expired   bool      `json:"expired"`
}

// Countdown tracks the time left until a fixed target. Every tick subtracts
// two clock reads, so suspended processes catch up on the next tick instead
// of drifting. The completion callback fires exactly once, on the first tick
// at or after the target.
type Countdown struct {
	target time.Time
	clock  Clock
	onDone func()

	mu   sync.Mutex
	done bool
}

// NewCountdown creates a countdown to target. onDone may be nil.
func NewCountdown(target time.Time, clock Clock, onDone func()) *Countdown {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Countdown{target: target, clock: clock, onDone: onDone}
}

// Target returns the instant being counted down to.
func (c *Countdown) Target() time.Time { return c.target }

// Tick recomputes the remaining time from the clock.
func (c *Countdown) Tick() CountdownState {
	left := c.target.Sub(c.clock.Now())
	if left > 0 {
		return CountdownState{Remaining: SplitRemaining(left)}
	}

	c.mu.Lock()
	fire := !c.done
	c.done = true
	c.mu.Unlock()

	if fire && c.onDone != nil {
		c.onDone()
	}
	return CountdownState{Expired: true}
}

// Expired reports whether the terminal state has been entered.
func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Run ticks immediately and then every interval until the countdown expires
// or ctx is cancelled. observe may be nil.
func (c *Countdown) Run(ctx context.Context, interval time.Duration, observe func(CountdownState)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		st := c.Tick()
		if observe != nil {
			observe(st)
		}
		if st.Expired {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// FormatChallanRemaining renders a payment slip's time left as m:ss, or
// "Expired" once the expiry has passed.
func FormatChallanRemaining(expiry, now time.Time) string {
	left := expiry.Sub(now)
	if left <= 0 {
		return "Expired"
	}
	secs := int64(left / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
