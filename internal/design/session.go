package design

import (
	"context"
	"fmt"
	"time"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/logger"
	"github.com/NickMcConnell/FAangband-sub006/internal/metrics"
	"github.com/NickMcConnell/FAangband-sub006/internal/naming"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
	"github.com/NickMcConnell/FAangband-sub006/internal/rng"
)

// CorruptionMode controls the corruption roll at the end of a design
// session. Tests force it one way or the other; production uses Random.
type CorruptionMode int

const (
	CorruptRandom CorruptionMode = iota
	CorruptNever
	CorruptAlways
)

// Request describes one item to design. Either Kind or Category must be
// set; with only Category a base kind is rolled from the kind table.
type Request struct {
	Kind     *domain.ObjectKind
	Category domain.EquipCategory

	// Depth scales the potential allocation and bounds the kind roll.
	Depth int

	// Potential overrides the allocation when positive.
	Potential int

	Corruption CorruptionMode
}

// Service designs finished items.
type Service interface {
	// DesignItem runs the full pipeline for one item using the given
	// random source.
	DesignItem(ctx context.Context, src rng.Source, req Request) (*domain.Artifact, error)

	// DesignBatch designs a deterministic seeded batch across all
	// equipment categories. The same seed reproduces the same run.
	DesignBatch(ctx context.Context, seed int64, count, maxDepth int) (*domain.GenerationRun, error)
}

type service struct {
	kinds *registry.KindTable
	namer naming.Namer
}

// NewService creates the design service.
func NewService(kinds *registry.KindTable, namer naming.Namer) Service {
	return &service{kinds: kinds, namer: namer}
}

// allocatePotential sizes the budget for a base kind found at a depth,
// bounded by the kind's ceiling.
func allocatePotential(kind *domain.ObjectKind, depth int) int {
	potential := BasePotential + PotentialPerDepth*depth + PotentialPerLevel*kind.Level
	if potential > kind.MaxPotential {
		potential = kind.MaxPotential
	}
	return potential
}

func (s *service) DesignItem(ctx context.Context, src rng.Source, req Request) (*domain.Artifact, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	kind := req.Kind
	if kind == nil {
		var err error
		kind, err = s.kinds.RandomKind(req.Category, req.Depth, src)
		if err != nil {
			return nil, fmt.Errorf("failed to pick base kind: %w", err)
		}
	}

	potential := req.Potential
	if potential <= 0 {
		potential = allocatePotential(kind, req.Depth)
	}
	if potential > kind.MaxPotential {
		potential = kind.MaxPotential
	}

	art := domain.NewArtifact(kind, !kind.Category.IsJewellery())
	art.MinDepth = kind.AllocMin
	art.MaxDepth = kind.AllocMax
	art.Rarity = kind.AllocProb

	ledger := NewLedger(potential, kind.MaxPotential)
	d := newDesigner(art, ledger, src, log)

	if kind.Category.IsJewellery() {
		d.chooseEgo()
	} else {
		d.chooseTheme()
	}
	d.haggle()

	spent := ledger.Spent()
	if spent < 0 {
		spent = 0
	}
	if art.Cost > 0 {
		art.Cost = kind.Cost + spent
	}

	outcome := metrics.OutcomeNormal
	terrible := req.Corruption == CorruptAlways ||
		(req.Corruption == CorruptRandom && d.oneIn(TerribleOneIn))
	if terrible {
		d.makeTerrible()
		outcome = metrics.OutcomeTerrible
	}

	FinalCheck(art)

	art.Name = s.namer.ItemName(art, src, ledger.Potential(), ledger.MaxPotential())
	art.Description = s.namer.Describe(art, spent)

	metrics.ItemsDesigned.WithLabelValues(kind.Category.String(), outcome).Inc()
	if d.theme != "" {
		metrics.ThemesChosen.WithLabelValues(kind.Category.String(), d.theme).Inc()
	}
	if n := len(art.Curses); n > 0 {
		metrics.CursesAttached.WithLabelValues(kind.Category.String()).Add(float64(n))
	}
	metrics.InitialPotential.Observe(float64(ledger.Initial()))
	metrics.PotentialSpent.Observe(float64(spent))
	metrics.DesignDuration.Observe(time.Since(start).Seconds())

	log.Debug("designed item",
		"kind", kind.Name,
		"category", kind.Category.String(),
		"theme", d.theme,
		"outcome", outcome,
		"initial_potential", ledger.Initial(),
		"spent", spent,
		"leftover", ledger.Potential(),
		"haggle_rounds", d.haggleRounds,
		"wheel", d.wheel,
	)

	return art, nil
}

func (s *service) DesignBatch(ctx context.Context, seed int64, count, maxDepth int) (*domain.GenerationRun, error) {
	log := logger.FromContext(ctx)
	src := rng.NewQuick(seed)
	run := domain.NewGenerationRun(seed)

	// Every category has an allocatable kind from depth 2 on.
	if maxDepth < 2 {
		maxDepth = 2
	}

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cat := domain.EquipCategory(rng.RandInt0(src, int(domain.CategoryMax)))
		depth := 2 + rng.RandInt0(src, maxDepth-1)

		art, err := s.DesignItem(ctx, src, Request{Category: cat, Depth: depth})
		if err != nil {
			return nil, fmt.Errorf("failed to design item %d of %d: %w", i+1, count, err)
		}
		run.Items = append(run.Items, art)
	}

	log.Info("designed batch",
		"run_id", run.ID,
		"seed", seed,
		"count", len(run.Items),
	)
	return run, nil
}
