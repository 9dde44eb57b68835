package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/metrics"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
	"github.com/NickMcConnell/FAangband-sub006/internal/repository"
)

const (
	// SinkName labels metrics emitted by this store.
	SinkName = "jsonfile"

	docVersion = 1
	filePrefix = "run-"
	fileSuffix = ".json"
)

// runDoc is the on-disk layout of one stored run.
type runDoc struct {
	Version   int                         `json:"version"`
	ID        uuid.UUID                   `json:"id"`
	Seed      int64                       `json:"seed"`
	CreatedAt time.Time                   `json:"created_at"`
	Items     []repository.ArtifactRecord `json:"items"`
}

// Store persists generation runs as one JSON document per run. It is the
// default sink when no database is configured.
type Store struct {
	dir   string
	kinds *registry.KindTable
	mu    sync.Mutex
}

// NewStore creates the output directory if needed and returns a store
// rooted there.
func NewStore(dir string, kinds *registry.KindTable) (repository.Run, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Store{dir: dir, kinds: kinds}, nil
}

// SaveRun writes the run atomically via a temp file rename.
func (s *Store) SaveRun(ctx context.Context, run *domain.GenerationRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := runDoc{
		Version:   docVersion,
		ID:        run.ID,
		Seed:      run.Seed,
		CreatedAt: run.CreatedAt,
		Items:     make([]repository.ArtifactRecord, len(run.Items)),
	}
	for i, art := range run.Items {
		doc.Items[i] = repository.NewArtifactRecord(art)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode run %s: %w", run.ID, err)
	}

	final := s.path(run.ID)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write run file: %w", err)
	}
	if err := os.Rename(tmp, final); err != nil {
		return fmt.Errorf("failed to finalize run file: %w", err)
	}

	metrics.ItemsStored.WithLabelValues(SinkName).Add(float64(len(run.Items)))
	return nil
}

// GetRun loads a stored run by ID.
func (s *Store) GetRun(ctx context.Context, id uuid.UUID) (*domain.GenerationRun, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}

	var doc runDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode run %s: %w", id, err)
	}

	run := &domain.GenerationRun{
		ID:        doc.ID,
		Seed:      doc.Seed,
		CreatedAt: doc.CreatedAt,
		Items:     make([]*domain.Artifact, len(doc.Items)),
	}
	for i, rec := range doc.Items {
		art, err := rec.ToArtifact(s.kinds)
		if err != nil {
			return nil, fmt.Errorf("failed to rebuild item %d of run %s: %w", i, id, err)
		}
		run.Items[i] = art
	}
	return run, nil
}

// ListRuns scans the directory and returns summaries, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	var summaries []domain.RunSummary
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != fileSuffix {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read run file %s: %w", name, err)
		}
		var doc runDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode run file %s: %w", name, err)
		}

		summaries = append(summaries, domain.RunSummary{
			ID:        doc.ID,
			Seed:      doc.Seed,
			CreatedAt: doc.CreatedAt,
			ItemCount: len(doc.Items),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

func (s *Store) path(id uuid.UUID) string {
	return filepath.Join(s.dir, filePrefix+id.String()+fileSuffix)
}
