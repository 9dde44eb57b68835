package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
)

// Run defines the interface for generation run persistence
type Run interface {
	// SaveRun stores a finished run with all of its items.
	SaveRun(ctx context.Context, run *domain.GenerationRun) error

	// GetRun retrieves a run by ID, items included.
	GetRun(ctx context.Context, id uuid.UUID) (*domain.GenerationRun, error)

	// ListRuns returns summaries of the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error)
}
