package domain

import "time"

// SourceType enumerates where generation source data comes from.
type SourceType string

const (
	SourceRecipe   SourceType = "recipe"
	SourceFreeform SourceType = "freeform"
)

// JobStatus enumerates content job lifecycle states. Jobs are written once
// with their final status; there is no queued/running phase in this flow.
type JobStatus string

const (
	JobStatusGenerated JobStatus = "generated"
	JobStatusFailed    JobStatus = "failed"
)

// ContentJob records one generation request/response pair.
type ContentJob struct {
	ID          string
	RecipeID    *string
	SourceType  SourceType
	BlueprintID string
	Status      JobStatus
	InputsJSON  []byte
	OutputsJSON []byte
	ErrorsJSON  []byte
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContentJobListItem is a job row joined with its blueprint name/kind for
// listings.
type ContentJobListItem struct {
	ContentJob
	BlueprintName string
	BlueprintKind BlueprintKind
}

// ContentJobFilter narrows job listings.
type ContentJobFilter struct {
	Status   *JobStatus
	RecipeID *string
	Limit    int
}
