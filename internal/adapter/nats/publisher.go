package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"dha-marketplace/internal/core/domain"
)

// campaignEvent is the message announcing a new pending campaign.
type campaignEvent struct {
	Type       string                `json:"type"`
	CampaignID string                `json:"campaign_id"`
	AdType     domain.AdType         `json:"ad_type"`
	Duration   domain.Duration       `json:"duration"`
	Price      int64                 `json:"price"`
	Method     domain.PaymentMethod  `json:"payment_method"`
	Status     domain.CampaignStatus `json:"status"`
	Company    string                `json:"company_name"`
	Email      string                `json:"email"`
}

// Publisher implements port.CampaignEvents on a NATS subject.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// Connect dials the NATS server at url.
func Connect(url, subject string) (*Publisher, error) {
	conn, err := nats.Connect(url, nats.Name("dha-marketplace"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &Publisher{conn: conn, subject: subject}, nil
}

// PublishPending announces c to the admin side.
func (p *Publisher) PublishPending(ctx context.Context, c domain.PendingCampaign) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(campaignEvent{
		Type:       "campaign.pending",
		CampaignID: c.CampaignID,
		AdType:     c.AdType,
		Duration:   c.Duration,
		Price:      c.Price,
		Method:     c.PaymentMethod,
		Status:     c.Status,
		Company:    c.CompanyName,
		Email:      c.Email,
	})
	if err != nil {
		return err
	}
	msg := nats.NewMsg(p.subject)
	msg.Header.Set(nats.MsgIdHdr, c.CampaignID)
	msg.Data = data
	return p.conn.PublishMsg(msg)
}

// Close drains pending messages and closes the connection.
func (p *Publisher) Close() error {
	return p.conn.Drain()
}
