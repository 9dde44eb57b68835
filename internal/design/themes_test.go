package design

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
)

func TestChooseThemeNeverOverdraws(t *testing.T) {
	kinds := []string{
		"Long Sword", "Long Bow", "Chain Mail", "Small Metal Shield",
		"Leather Boots", "Fur Cloak", "Iron Helm", "Gauntlets",
	}
	for _, kindName := range kinds {
		for seed := int64(0); seed < 20; seed++ {
			d := testDesigner(t, kindName, true, 4000, seed)
			d.chooseTheme()

			assert.GreaterOrEqual(t, d.potential(), 0, "%s seed %d", kindName, seed)
			assert.NotEmpty(t, d.theme, "%s seed %d", kindName, seed)
		}
	}
}

func TestChooseThemeWeaponsAlwaysGetAnAffinity(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		d := testDesigner(t, "Long Sword", true, 5000, seed)
		d.chooseTheme()

		total := len(d.art.Brands) + len(d.art.Slays)
		assert.GreaterOrEqual(t, total, 1, "seed %d", seed)
	}
}

func TestChooseThemeWeaponBaselineBonuses(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		d := testDesigner(t, "Battle Axe", true, 5000, seed)
		d.chooseTheme()

		assert.GreaterOrEqual(t, d.art.ToHit, 3, "seed %d", seed)
		assert.GreaterOrEqual(t, d.art.ToDam, 3, "seed %d", seed)
	}
}

func TestChooseThemeArmorBaselineBonus(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		d := testDesigner(t, "Full Plate Armour", true, 4500, seed)
		d.chooseTheme()

		assert.GreaterOrEqual(t, d.art.ToAC, 2, "seed %d", seed)
	}
}

func TestChooseThemeResistancesNeverExceedImmunity(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		d := testDesigner(t, "Long Sword", true, 5500, seed)
		d.chooseTheme()
		d.haggle()

		for e := domain.Element(0); e < domain.ElemMax; e++ {
			assert.GreaterOrEqual(t, d.art.ResLevel[e], domain.ResMin, "seed %d elem %s", seed, e)
			assert.LessOrEqual(t, d.art.ResLevel[e], domain.ResMax, "seed %d elem %s", seed, e)
		}
	}
}

func TestChooseThemePanicsOnJewellery(t *testing.T) {
	d := testDesigner(t, "Plain Gold Ring", false, 1000, 1)
	assert.Panics(t, func() { d.chooseTheme() })
}
