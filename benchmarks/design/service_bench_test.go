package design_bench

import (
	"context"
	"testing"

	"github.com/NickMcConnell/FAangband-sub006/internal/design"
	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/naming"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
	"github.com/NickMcConnell/FAangband-sub006/internal/rng"
)

func newBenchService(b *testing.B) design.Service {
	b.Helper()
	namer, err := naming.NewNamer("")
	if err != nil {
		b.Fatalf("failed to build namer: %v", err)
	}
	return design.NewService(registry.Kinds(), namer)
}

// BenchmarkDesignItem_MeleeWeapon measures a single full design pipeline
// run on a weapon with a large budget, the most property-heavy path.
func BenchmarkDesignItem_MeleeWeapon(b *testing.B) {
	svc := newBenchService(b)
	kind, err := registry.Kinds().KindByName("Long Sword")
	if err != nil {
		b.Fatalf("missing kind: %v", err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := rng.NewQuick(int64(i + 1))
		_, err := svc.DesignItem(ctx, src, design.Request{
			Kind:       kind,
			Potential:  5000,
			Corruption: design.CorruptNever,
		})
		if err != nil {
			b.Fatalf("DesignItem failed: %v", err)
		}
	}
}

// BenchmarkDesignItem_Jewellery exercises the themed ring path, which
// spends its whole budget through the ego catalogue.
func BenchmarkDesignItem_Jewellery(b *testing.B) {
	svc := newBenchService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := rng.NewQuick(int64(i + 1))
		_, err := svc.DesignItem(ctx, src, design.Request{
			Category: domain.CategoryRing,
			Depth:    40,
		})
		if err != nil {
			b.Fatalf("DesignItem failed: %v", err)
		}
	}
}

// BenchmarkDesignBatch measures a seeded batch of the default size
// written to no sink, isolating the generator from storage cost.
func BenchmarkDesignBatch(b *testing.B) {
	svc := newBenchService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := svc.DesignBatch(ctx, int64(i+1), 64, 60)
		if err != nil {
			b.Fatalf("DesignBatch failed: %v", err)
		}
	}
}
