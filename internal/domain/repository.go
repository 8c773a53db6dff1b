package domain

import "context"

// BlueprintRepository provides read access to the seeded blueprint catalog.
type BlueprintRepository interface {
	GetByID(ctx context.Context, id string) (*Blueprint, error)
	GetByKind(ctx context.Context, kind BlueprintKind) (*Blueprint, error)
	List(ctx context.Context) ([]Blueprint, error)
	// SeedDefaults inserts the given definitions for kinds not yet present
	// and returns how many rows were added. Re-running is a no-op for
	// already-present kinds.
	SeedDefaults(ctx context.Context, defs []Blueprint) (int, error)
}

// RecipeRepository resolves stored recipe sources.
type RecipeRepository interface {
	GetByID(ctx context.Context, id string) (*Recipe, error)
	Create(ctx context.Context, recipe *Recipe) error
}

// ContentJobRepository persists generation request/response pairs.
type ContentJobRepository interface {
	Create(ctx context.Context, job *ContentJob) error
	// CreateWithArtifact writes the job row and the campaign artifact row in
	// one transaction so a failure leaves neither behind.
	CreateWithArtifact(ctx context.Context, job *ContentJob, artifact *CampaignArtifact) error
	List(ctx context.Context, filter ContentJobFilter) ([]ContentJobListItem, error)
}

// CampaignRepository resolves campaigns and manages attached artifacts.
type CampaignRepository interface {
	GetByID(ctx context.Context, id string) (*Campaign, error)
	// AttachArtifact writes an artifact row on its own, for generations that
	// link a campaign without entering the job ledger.
	AttachArtifact(ctx context.Context, artifact *CampaignArtifact) error
	ListArtifacts(ctx context.Context, campaignID string) ([]CampaignArtifact, error)
}
