package domain

import "time"

// Campaign is the external marketing campaign content attaches to. Only the
// fields this pipeline reads are modeled.
type Campaign struct {
	ID        string
	Name      string
	Status    string
	CreatedAt time.Time
}

// CampaignArtifact is one persisted content payload attached to a campaign
// under a named channel.
type CampaignArtifact struct {
	ID          string
	CampaignID  string
	Channel     string
	Variant     string
	PayloadJSON []byte
	CreatedAt   time.Time
}
