package usecase

import (
	"context"
	"errors"
	"fmt"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

// BookingUseCase reads the customer's bookings from the backend and adds
// the display fields the profile page needs. Rank and status always come
// from the backend.
type BookingUseCase struct {
	backend port.Backend
	clock   domain.Clock
}

// NewBookingUseCase creates a booking usecase backed by the external API.
func NewBookingUseCase(backend port.Backend, clock domain.Clock) *BookingUseCase {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &BookingUseCase{backend: backend, clock: clock}
}

// Profile returns the customer's profile with decorated bookings.
func (u *BookingUseCase) Profile(ctx context.Context, authorization string) (*port.ProfileView, error) {
	p, err := u.backend.Profile(ctx, authorization)
	if err != nil {
		return nil, err
	}
	return u.decorate(p), nil
}

// UpdateBid checks the increase against the booking's current bid, forwards
// it and returns the refreshed profile so the new rank is visible.
func (u *BookingUseCase) UpdateBid(ctx context.Context, authorization string, bookingID int64, amount int64) (*port.ProfileView, error) {
	p, err := u.backend.Profile(ctx, authorization)
	if err != nil {
		return nil, err
	}
	b, ok := p.FindBooking(bookingID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", port.ErrBookingNotFound, bookingID)
	}
	if errs := domain.ValidateBidIncrease(float64(b.BidAmount), float64(amount)); errs != nil {
		return nil, errs
	}

	if _, err = u.backend.UpdateBid(ctx, authorization, bookingID, amount); err != nil {
		var upErr *port.UpstreamError
		if errors.As(err, &upErr) {
			if msg := upErr.FieldMessage("bid_amount"); msg != "" {
				return nil, domain.FieldErrors{"bid_amount": msg}
			}
		}
		return nil, err
	}

	p, err = u.backend.Profile(ctx, authorization)
	if err != nil {
		return nil, err
	}
	return u.decorate(p), nil
}

func (u *BookingUseCase) decorate(p *domain.Profile) *port.ProfileView {
	now := u.clock.Now()
	v := &port.ProfileView{
		Name:     p.Name,
		Email:    p.Email,
		CNIC:     domain.FormatCNIC(p.CNIC),
		Bookings: make([]port.BookingView, 0, len(p.ReserveBookings)),
	}
	for _, b := range p.ReserveBookings {
		bv := port.BookingView{ReserveBooking: b, RankTier: domain.TierForRank(b.RankNo)}
		if b.Status == domain.BookingPending && b.ChallanExpiryTime != nil && !b.ChallanExpiryTime.IsZero() {
			bv.TimeLeft = domain.FormatChallanRemaining(b.ChallanExpiryTime.Time, now)
			bv.PaymentExpired = !now.Before(b.ChallanExpiryTime.Time)
		}
		v.Bookings = append(v.Bookings, bv)
	}
	return v
}
