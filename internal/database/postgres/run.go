package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/metrics"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
	"github.com/NickMcConnell/FAangband-sub006/internal/repository"
)

// RunRepository implements repository.Run for PostgreSQL
type RunRepository struct {
	pool  *pgxpool.Pool
	kinds *registry.KindTable
}

// NewRunRepository creates a new RunRepository
func NewRunRepository(pool *pgxpool.Pool, kinds *registry.KindTable) repository.Run {
	return &RunRepository{pool: pool, kinds: kinds}
}

// SaveRun stores the run and its items in one transaction.
func (r *RunRepository) SaveRun(ctx context.Context, run *domain.GenerationRun) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO generation_runs (run_id, seed, created_at) VALUES ($1, $2, $3)`,
		run.ID, run.Seed, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRun, err)
	}

	batch := &pgx.Batch{}
	for i, art := range run.Items {
		rec := repository.NewArtifactRecord(art)
		batch.Queue(
			`INSERT INTO designed_items (run_id, position, kind_name, item_name, cursed, record)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			run.ID, i, rec.KindName, rec.Name, art.Cursed(), rec)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}

	metrics.ItemsStored.WithLabelValues(SinkName).Add(float64(len(run.Items)))
	return nil
}

// GetRun retrieves a run with its items ordered by design position.
func (r *RunRepository) GetRun(ctx context.Context, id uuid.UUID) (*domain.GenerationRun, error) {
	run := &domain.GenerationRun{}
	err := r.pool.QueryRow(ctx,
		`SELECT run_id, seed, created_at FROM generation_runs WHERE run_id = $1`, id).
		Scan(&run.ID, &run.Seed, &run.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT record FROM designed_items WHERE run_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get run items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec repository.ArtifactRecord
		if err := rows.Scan(&rec); err != nil {
			return nil, fmt.Errorf("failed to scan item record: %w", err)
		}
		art, err := rec.ToArtifact(r.kinds)
		if err != nil {
			return nil, fmt.Errorf("failed to rebuild item: %w", err)
		}
		run.Items = append(run.Items, art)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read run items: %w", err)
	}

	return run, nil
}

// ListRuns returns summaries of the most recent runs, newest first.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx,
		`SELECT g.run_id, g.seed, g.created_at, COUNT(d.item_id)
		 FROM generation_runs g
		 LEFT JOIN designed_items d ON d.run_id = g.run_id
		 GROUP BY g.run_id, g.seed, g.created_at
		 ORDER BY g.created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var summaries []domain.RunSummary
	for rows.Next() {
		var s domain.RunSummary
		var count int64
		if err := rows.Scan(&s.ID, &s.Seed, &s.CreatedAt, &count); err != nil {
			return nil, fmt.Errorf("failed to scan run summary: %w", err)
		}
		s.ItemCount = int(count)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read run summaries: %w", err)
	}

	return summaries, nil
}
