package domain

import (
	"time"

	"github.com/google/uuid"
)

// GenerationRun is one deterministic batch of designed items, identified
// by the seed that reproduces it byte for byte.
type GenerationRun struct {
	ID        uuid.UUID   `json:"id"`
	Seed      int64       `json:"seed"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []*Artifact `json:"items"`
}

// RunSummary is a listing row for a stored run.
type RunSummary struct {
	ID        uuid.UUID `json:"id"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
	ItemCount int       `json:"item_count"`
}

// NewGenerationRun returns an empty run for the given seed.
func NewGenerationRun(seed int64) *GenerationRun {
	return &GenerationRun{
		ID:        uuid.New(),
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
	}
}
