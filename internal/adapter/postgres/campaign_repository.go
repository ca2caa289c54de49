package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

const uniqueViolation = "23505"

const campaignColumns = `
            campaign_id,
            ad_type,
            duration_days,
            base_price,
            duration_multiplier,
            price,
            ad_title,
            company_name,
            description,
            link_redirect,
            email,
            contact_number,
            uploaded_image,
            payment_method,
            card_name,
            card_number,
            payment_phone,
            psid,
            status,
            created_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// CreatePending inserts a pending campaign. Card numbers arrive redacted.
func (r *CampaignRepository) CreatePending(ctx context.Context, c domain.PendingCampaign) error {
	query := fmt.Sprintf(`INSERT INTO ad_campaigns (%s)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`, campaignColumns)
	_, err := r.pool.Exec(ctx, query,
		c.CampaignID,
		string(c.AdType),
		int(c.Duration),
		c.BasePrice,
		c.DurationMultiplier,
		c.Price,
		c.AdTitle,
		c.CompanyName,
		c.Description,
		c.LinkRedirect,
		c.Email,
		c.ContactNumber,
		c.UploadedImage,
		string(c.PaymentMethod),
		c.PaymentData.CardName,
		c.PaymentData.CardNumber,
		c.PaymentData.PhoneNumber,
		nullIfEmpty(c.PaymentData.PSID),
		string(c.Status),
		c.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", port.ErrDuplicateCampaign, c.CampaignID)
	}
	return err
}

// GetByCampaignID returns a campaign by its public id.
func (r *CampaignRepository) GetByCampaignID(ctx context.Context, campaignID string) (*domain.PendingCampaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM ad_campaigns WHERE campaign_id = $1`, campaignColumns)
	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListPending returns pending campaigns, newest first.
func (r *CampaignRepository) ListPending(ctx context.Context, limit int) ([]domain.PendingCampaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM ad_campaigns
        WHERE status IN ('pending_payment', 'pending_approval')
        ORDER BY created_at DESC
        LIMIT $1`, campaignColumns)
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

func scanCampaign(row pgx.CollectableRow) (domain.PendingCampaign, error) {
	var (
		c         domain.PendingCampaign
		adType    string
		duration  int
		method    string
		psid      *string
		status    string
		createdAt time.Time
	)
	err := row.Scan(
		&c.CampaignID,
		&adType,
		&duration,
		&c.BasePrice,
		&c.DurationMultiplier,
		&c.Price,
		&c.AdTitle,
		&c.CompanyName,
		&c.Description,
		&c.LinkRedirect,
		&c.Email,
		&c.ContactNumber,
		&c.UploadedImage,
		&method,
		&c.PaymentData.CardName,
		&c.PaymentData.CardNumber,
		&c.PaymentData.PhoneNumber,
		&psid,
		&status,
		&createdAt,
	)
	if err != nil {
		return c, err
	}
	c.AdType = domain.AdType(adType)
	c.Duration = domain.Duration(duration)
	c.PaymentMethod = domain.PaymentMethod(method)
	if psid != nil {
		c.PaymentData.PSID = *psid
	}
	c.Status = domain.CampaignStatus(status)
	c.CreatedAt = createdAt.UTC()
	return c, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
