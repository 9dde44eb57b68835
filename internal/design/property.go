package design

import (
	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
)

// hasProperty reports whether the item already carries the named
// property, dispatching on its registered type.
func (d *designer) hasProperty(name string) bool {
	p := registry.PropertyByName(name)
	art := d.art

	switch p.Kind {
	case registry.KindStat, registry.KindModifier:
		return art.Modifiers[p.Index] != 0
	case registry.KindFlag:
		return art.Flags.Has(domain.Flag(p.Index))
	case registry.KindElement:
		return art.ResLevel[p.Index] != domain.ResBaseline
	case registry.KindIgnore:
		return art.IgnoreElem[p.Index]
	case registry.KindBrand:
		return art.HasBrand(domain.Brand(p.Index))
	case registry.KindSlay:
		return art.HasSlay(domain.Slay(p.Index))
	case registry.KindCombat:
		switch p.Index {
		case registry.CombatToAC:
			return art.ToAC != art.Kind.ToAC
		case registry.CombatToHit:
			return art.ToHit != art.Kind.ToHit
		case registry.CombatToDam:
			return art.ToDam != art.Kind.ToDam
		case registry.CombatDice:
			return art.DiceCount != art.Kind.DiceCount || art.DiceSides != art.Kind.DiceSides
		}
	}
	return false
}

// getProperty grants the named property at the given value, paying its
// cost through the ledger. It returns whether the grant happened; on
// failure nothing is mutated and the budget is unchanged, except for the
// enhanced-dice path, which consumes its allotment once entered.
func (d *designer) getProperty(name string, value int, policy DebitPolicy) bool {
	p := registry.PropertyByName(name)
	art := d.art

	if p.Kind == registry.KindCombat && p.Index == registry.CombatDice {
		return d.enhanceDice(value, policy)
	}

	cost := registry.Price(p, value)

	// Ego items may upgrade a property already partially granted; charge
	// only the difference against what was paid for the current value.
	// Unique artifacts are always granted fresh.
	if !art.Unique {
		switch p.Kind {
		case registry.KindStat, registry.KindModifier:
			old := art.Modifiers[p.Index]
			cost = registry.IncrementalCost(p, old, old+value)
		case registry.KindElement:
			old := domain.ResBaseline - art.ResLevel[p.Index]
			cost = registry.IncrementalCost(p, old, old+value)
		}
	}

	if !d.ledger.Debit(cost, policy) {
		return false
	}

	switch p.Kind {
	case registry.KindStat, registry.KindModifier:
		art.Modifiers[p.Index] += value
	case registry.KindFlag:
		art.Flags.Set(domain.Flag(p.Index))
	case registry.KindElement:
		// Lower level means stronger resistance, so a grant subtracts.
		art.ResLevel[p.Index] = domain.ClampRes(art.ResLevel[p.Index] - value)
	case registry.KindIgnore:
		art.IgnoreElem[p.Index] = true
	case registry.KindBrand:
		b := domain.Brand(p.Index)
		if value > art.Brands[b] {
			art.SetBrand(b, value)
		}
	case registry.KindSlay:
		s := domain.Slay(p.Index)
		if value > art.Slays[s] {
			art.SetSlay(s, value)
		}
	case registry.KindCombat:
		switch p.Index {
		case registry.CombatToAC:
			art.ToAC += value
		case registry.CombatToHit:
			art.ToHit += value
		case registry.CombatToDam:
			art.ToDam += value
		}
	}

	return true
}

// enhanceDice spends a share of the remaining potential growing the
// weapon's damage dice. The share is the remaining potential divided by
// the value argument, capped at DiceShareCap when value exceeds one; on
// credit a minimum of DiceCreditMinimum is guaranteed. Once the debit
// goes through the allotment is consumed whether or not every growth
// step lands, so callers treat this as fire and forget.
func (d *designer) enhanceDice(value int, policy DebitPolicy) bool {
	art := d.art

	share := d.potential()
	if value > 1 {
		share = d.potential() / value
		if share > DiceShareCap {
			share = DiceShareCap
		}
	}
	if policy == Credit && share < DiceCreditMinimum {
		share = DiceCreditMinimum
	}
	if share <= 0 {
		return false
	}

	if !d.ledger.Debit(share, policy) {
		return false
	}

	// Dice sides may at most double over the kind's base, however many
	// enhancement calls the item sees.
	maxSides := 2 * art.Kind.DiceSides

	budget := share
	for i := 0; i < DiceGrowthIterations; i++ {
		sideCost := 120 * art.DiceCount
		dieCost := 110 * art.DiceSides

		if budget >= dieCost && d.oneIn(2) {
			art.DiceCount++
			budget -= dieCost
			continue
		}
		if budget >= sideCost && art.DiceSides < maxSides {
			art.DiceSides++
			budget -= sideCost
			continue
		}
		break
	}

	return true
}
