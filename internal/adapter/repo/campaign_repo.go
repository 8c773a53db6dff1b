package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// CampaignRepositoryPG implements domain.CampaignRepository.
type CampaignRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository creates a campaign repository backed by PostgreSQL.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{pool: pool}
}

// GetByID resolves a campaign, mapping missing rows to ErrCampaignNotFound.
func (r *CampaignRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	query := `
SELECT id, name, status, created_at
FROM campaigns
WHERE id = $1;
`
	var c domain.Campaign
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Status,
		&c.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	return &c, nil
}

// AttachArtifact inserts a single artifact row for a campaign.
func (r *CampaignRepositoryPG) AttachArtifact(ctx context.Context, artifact *domain.CampaignArtifact) error {
	query := `
INSERT INTO campaign_artifacts (id, campaign_id, channel, variant, payload)
VALUES ($1, $2, $3, $4, $5);
`
	_, err := r.pool.Exec(ctx, query,
		artifact.ID,
		artifact.CampaignID,
		artifact.Channel,
		artifact.Variant,
		artifact.PayloadJSON,
	)
	return err
}

// ListArtifacts returns a campaign's attached artifacts, newest first.
func (r *CampaignRepositoryPG) ListArtifacts(ctx context.Context, campaignID string) ([]domain.CampaignArtifact, error) {
	query := `
SELECT id, campaign_id, channel, variant, payload, created_at
FROM campaign_artifacts
WHERE campaign_id = $1
ORDER BY created_at DESC;
`
	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artifacts []domain.CampaignArtifact
	for rows.Next() {
		var a domain.CampaignArtifact
		if err := rows.Scan(
			&a.ID,
			&a.CampaignID,
			&a.Channel,
			&a.Variant,
			&a.PayloadJSON,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, rows.Err()
}

var _ domain.CampaignRepository = (*CampaignRepositoryPG)(nil)
