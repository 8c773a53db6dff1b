package domain

import "time"

// Recipe is a stored recipe source. The data payload is loosely typed on
// purpose: imports arrive in arbitrary shapes and are normalized by
// gencfg.NormalizeRecipe right before rendering.
type Recipe struct {
	ID        string
	Title     string
	DataJSON  []byte
	CreatedAt time.Time
}
