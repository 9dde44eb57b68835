package design

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
)

func TestChooseEgoTerminatesBelowEveryThreshold(t *testing.T) {
	// With potential below every priced ego only the zero-threshold one
	// is eligible; selection must still terminate for any seed.
	for seed := int64(0); seed < 25; seed++ {
		d := testDesigner(t, "Plain Gold Ring", false, 100, seed)
		d.chooseEgo()

		assert.Equal(t, "of Hindrance", d.art.EgoName, "seed %d", seed)
		assert.NotEmpty(t, d.art.Curses, "seed %d", seed)
		assert.Zero(t, d.potential(), "seed %d", seed)
		assert.True(t, d.art.Cursed(), "seed %d", seed)
	}
}

func TestChooseEgoAmuletFallback(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		d := testDesigner(t, "Driftwood Amulet", false, 50, seed)
		d.chooseEgo()

		assert.Equal(t, "of Doom", d.art.EgoName, "seed %d", seed)
		assert.NotEmpty(t, d.art.Curses, "seed %d", seed)
	}
}

func TestChooseEgoRichRingAlwaysLands(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		d := testDesigner(t, "Sapphire Ring", false, 4500, seed)
		d.chooseEgo()

		assert.NotEmpty(t, d.art.EgoName, "seed %d", seed)
	}
}

func TestEgoCompatibilityRestrictsKinds(t *testing.T) {
	var speed *egoType
	for _, ego := range ringEgos {
		if ego.name == "of Speed" {
			speed = ego
		}
	}
	if assert.NotNil(t, speed) {
		plain := &domain.ObjectKind{Name: "Plain Gold Ring"}
		band := &domain.ObjectKind{Name: "Engraved Band"}
		assert.False(t, speed.compatible(plain))
		assert.True(t, speed.compatible(band))
	}
}

func TestTryEgoDeclinesIncompatiblePick(t *testing.T) {
	// A rich Plain Gold Ring can still roll "of Speed" and must be told
	// to retry rather than receive it.
	for seed := int64(0); seed < 25; seed++ {
		d := testDesigner(t, "Plain Gold Ring", false, 4000, seed)
		d.chooseEgo()

		assert.NotEqual(t, "of Speed", d.art.EgoName, "seed %d", seed)
		assert.NotEqual(t, "of Power", d.art.EgoName, "seed %d", seed)
	}
}
