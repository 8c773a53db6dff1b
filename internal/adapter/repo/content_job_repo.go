package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// ContentJobRepositoryPG implements domain.ContentJobRepository.
type ContentJobRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewContentJobRepository creates a content job repository backed by PostgreSQL.
func NewContentJobRepository(pool *pgxpool.Pool) *ContentJobRepositoryPG {
	return &ContentJobRepositoryPG{pool: pool}
}

const insertJobQuery = `
INSERT INTO content_jobs (id, recipe_id, source_type, blueprint_id, status, inputs, outputs, errors)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

// Create inserts a single job record.
func (r *ContentJobRepositoryPG) Create(ctx context.Context, job *domain.ContentJob) error {
	_, err := r.pool.Exec(ctx, insertJobQuery,
		job.ID,
		job.RecipeID,
		string(job.SourceType),
		job.BlueprintID,
		string(job.Status),
		job.InputsJSON,
		nullableBytes(job.OutputsJSON),
		nullableBytes(job.ErrorsJSON),
	)
	return err
}

// CreateWithArtifact writes the job row and the campaign artifact row inside
// one transaction. A failure on either insert rolls back both, so no job is
// left pointing at a campaign it never reached.
func (r *ContentJobRepositoryPG) CreateWithArtifact(ctx context.Context, job *domain.ContentJob, artifact *domain.CampaignArtifact) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, insertJobQuery,
		job.ID,
		job.RecipeID,
		string(job.SourceType),
		job.BlueprintID,
		string(job.Status),
		job.InputsJSON,
		nullableBytes(job.OutputsJSON),
		nullableBytes(job.ErrorsJSON),
	); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}

	artifactQuery := `
INSERT INTO campaign_artifacts (id, campaign_id, channel, variant, payload)
VALUES ($1, $2, $3, $4, $5);
`
	if _, err := tx.Exec(ctx, artifactQuery,
		artifact.ID,
		artifact.CampaignID,
		artifact.Channel,
		artifact.Variant,
		artifact.PayloadJSON,
	); err != nil {
		return fmt.Errorf("insert artifact: %w", err)
	}

	return tx.Commit(ctx)
}

// List returns jobs newest first, joined with blueprint name/kind.
func (r *ContentJobRepositoryPG) List(ctx context.Context, filter domain.ContentJobFilter) ([]domain.ContentJobListItem, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}
	query := `
SELECT j.id, j.recipe_id, j.source_type, j.blueprint_id, j.status,
       j.inputs, j.outputs, j.errors, j.created_at, j.updated_at,
       b.name, b.kind
FROM content_jobs j
JOIN blueprints b ON b.id = j.blueprint_id
WHERE ($1::text IS NULL OR j.status = $1)
  AND ($2::uuid IS NULL OR j.recipe_id = $2)
ORDER BY j.created_at DESC
LIMIT $3;
`
	rows, err := r.pool.Query(ctx, query, status, filter.RecipeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ContentJobListItem
	for rows.Next() {
		var item domain.ContentJobListItem
		var sourceType, jobStatus, kind string
		if err := rows.Scan(
			&item.ID,
			&item.RecipeID,
			&sourceType,
			&item.BlueprintID,
			&jobStatus,
			&item.InputsJSON,
			&item.OutputsJSON,
			&item.ErrorsJSON,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.BlueprintName,
			&kind,
		); err != nil {
			return nil, err
		}
		item.SourceType = domain.SourceType(sourceType)
		item.Status = domain.JobStatus(jobStatus)
		item.BlueprintKind = domain.BlueprintKind(kind)
		items = append(items, item)
	}
	return items, rows.Err()
}

func nullableBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}

var _ domain.ContentJobRepository = (*ContentJobRepositoryPG)(nil)
