package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrUnsupportedBlueprint = errors.New("unsupported blueprint kind")
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrInvalidOptions       = errors.New("invalid generation options")
	ErrProviderFailure      = errors.New("provider failure")
)
