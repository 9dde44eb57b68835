// Package registry holds the read-only lookup services the design engine
// consumes: the property registry (name, type, cost), the activation and
// curse registries, and the base-kind table.
package registry

import (
	"fmt"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
)

// PropKind is the dispatch tag of a registered property.
type PropKind int

const (
	KindStat PropKind = iota
	KindModifier
	KindFlag
	KindElement
	KindIgnore
	KindBrand
	KindSlay
	KindCombat
)

// Combat property indexes.
const (
	CombatToAC = iota
	CombatToHit
	CombatToDam
	CombatDice
)

// CostFunc prices a property at a given value. Negative values may price
// negative: a drawback refunds potential instead of spending it.
type CostFunc func(value int) int

// Property is one entry in the property registry.
type Property struct {
	Name  string
	Kind  PropKind
	Index int
	Cost  CostFunc
}

// Price returns the cost of the property at the given value.
func Price(p *Property, value int) int {
	return p.Cost(value)
}

// IncrementalCost prices an upgrade from oldValue to newValue. It holds
// IncrementalCost(p, 0, v) == Price(p, v) and
// IncrementalCost(p, a, b) == Price(p, b) - Price(p, a).
func IncrementalCost(p *Property, oldValue, newValue int) int {
	return Price(p, newValue) - Price(p, oldValue)
}

func triangular(v int) int {
	return v * (v + 1) / 2
}

// scaled prices each further point progressively: +1 costs perStep,
// +2 costs 3*perStep, and so on. Negative values refund at half rate.
func scaled(perStep int) CostFunc {
	return func(v int) int {
		if v >= 0 {
			return perStep * triangular(v)
		}
		return -perStep * triangular(-v) / 2
	}
}

func fixed(cost int) CostFunc {
	return func(int) int { return cost }
}

// elemental prices resistance points linearly with a quadratic surcharge
// past the 45-point mark, so immunities cost far more than plain resists.
// Vulnerabilities (negative values) refund at half rate.
func elemental(perPoint int) CostFunc {
	return func(v int) int {
		if v < 0 {
			return v * perPoint / 2
		}
		cost := v * perPoint
		if v > 45 {
			cost += (v - 45) * (v - 45) * perPoint / 25
		}
		return cost
	}
}

// multiplier prices a brand or slay by its full multiplier in tenths
// above the neutral x1.0.
func multiplier(perTenth int) CostFunc {
	return func(v int) int {
		if v <= domain.MultBase {
			return 0
		}
		return (v - domain.MultBase) * perTenth
	}
}

func perPoint(cost int) CostFunc {
	return func(v int) int { return v * cost }
}

var properties = map[string]*Property{}

func register(p *Property) {
	if _, dup := properties[p.Name]; dup {
		panic(fmt.Sprintf("registry: duplicate property %q", p.Name))
	}
	properties[p.Name] = p
}

var modifierCosts = [domain.ModMax]int{
	domain.ModStrength:     250,
	domain.ModIntelligence: 250,
	domain.ModWisdom:       250,
	domain.ModDexterity:    250,
	domain.ModConstitution: 250,
	domain.ModCharisma:     150,
	domain.ModStealth:      180,
	domain.ModSearching:    40,
	domain.ModInfravision:  40,
	domain.ModTunneling:    60,
	domain.ModSpeed:        1200,
	domain.ModBlows:        1600,
	domain.ModShots:        1400,
	domain.ModMight:        1400,
	domain.ModMagicMastery: 120,
	domain.ModLight:        160,
}

var elementCosts = [domain.ElemMax]int{
	domain.ElemAcid:        12,
	domain.ElemElectricity: 12,
	domain.ElemFire:        14,
	domain.ElemCold:        14,
	domain.ElemPoison:      25,
	domain.ElemLight:       18,
	domain.ElemDark:        18,
	domain.ElemSound:       16,
	domain.ElemShards:      16,
	domain.ElemNexus:       14,
	domain.ElemNether:      30,
	domain.ElemChaos:       30,
	domain.ElemDisenchant:  25,
}

var brandCosts = [domain.BrandMax]int{
	domain.BrandAcid:        90,
	domain.BrandElectricity: 80,
	domain.BrandFire:        85,
	domain.BrandCold:        85,
	domain.BrandPoison:      95,
}

var slayCosts = [domain.SlayMax]int{
	domain.SlayAnimal: 45,
	domain.SlayEvil:   80,
	domain.SlayUndead: 55,
	domain.SlayDemon:  55,
	domain.SlayOrc:    35,
	domain.SlayTroll:  40,
	domain.SlayGiant:  40,
	domain.SlayDragon: 55,
}

var flagCosts = map[domain.Flag]int{
	domain.FlagFreeAction:        800,
	domain.FlagHoldLife:          1500,
	domain.FlagRegeneration:      450,
	domain.FlagSeeInvisible:      700,
	domain.FlagTelepathy:         2500,
	domain.FlagSlowDigestion:     100,
	domain.FlagFeatherFall:       100,
	domain.FlagProtectBlindness:  650,
	domain.FlagProtectConfusion:  700,
	domain.FlagProtectFear:       500,
	domain.FlagProtectStunning:   800,
	domain.FlagPerfectBalance:    300,
	domain.FlagBlessed:           400,
	domain.FlagAggravation:       -600,
	domain.FlagDarkness:          -300,
	domain.FlagDrainExperience:   -800,
	domain.FlagTeleportation:     -500,
}

func init() {
	for m := domain.Modifier(0); m < domain.ModMax; m++ {
		kind := KindModifier
		if m.IsStat() {
			kind = KindStat
		}
		register(&Property{
			Name:  m.String(),
			Kind:  kind,
			Index: int(m),
			Cost:  scaled(modifierCosts[m]),
		})
	}

	for stat := domain.ModStrength; stat < domain.Modifier(domain.StatCount); stat++ {
		register(&Property{
			Name:  SustainName(stat),
			Kind:  KindFlag,
			Index: int(domain.SustainFor(stat)),
			Cost:  fixed(150),
		})
	}

	for f, cost := range flagCosts {
		register(&Property{
			Name:  FlagName(f),
			Kind:  KindFlag,
			Index: int(f),
			Cost:  fixed(cost),
		})
	}

	for e := domain.Element(0); e < domain.ElemMax; e++ {
		register(&Property{
			Name:  ResistName(e),
			Kind:  KindElement,
			Index: int(e),
			Cost:  elemental(elementCosts[e]),
		})
	}

	for e := domain.Element(0); e < domain.Element(domain.BasicElemCount); e++ {
		register(&Property{
			Name:  IgnoreName(e),
			Kind:  KindIgnore,
			Index: int(e),
			Cost:  fixed(100),
		})
	}

	for b := domain.Brand(0); b < domain.BrandMax; b++ {
		register(&Property{
			Name:  b.String(),
			Kind:  KindBrand,
			Index: int(b),
			Cost:  multiplier(brandCosts[b]),
		})
	}

	for s := domain.Slay(0); s < domain.SlayMax; s++ {
		register(&Property{
			Name:  s.String(),
			Kind:  KindSlay,
			Index: int(s),
			Cost:  multiplier(slayCosts[s]),
		})
	}

	register(&Property{Name: "armor bonus", Kind: KindCombat, Index: CombatToAC, Cost: perPoint(28)})
	register(&Property{Name: "skill bonus", Kind: KindCombat, Index: CombatToHit, Cost: perPoint(36)})
	register(&Property{Name: "deadliness bonus", Kind: KindCombat, Index: CombatToDam, Cost: perPoint(36)})
	register(&Property{Name: "enhanced dice", Kind: KindCombat, Index: CombatDice, Cost: func(int) int {
		panic("registry: enhanced dice has no static price")
	}})
}

// PropertyByName returns the registered property. An unknown name is a
// data-integrity error and panics: silently skipping a charge would
// corrupt the budget invariant.
func PropertyByName(name string) *Property {
	p, ok := properties[name]
	if !ok {
		panic(fmt.Sprintf("registry: unknown property %q", name))
	}
	return p
}

// SustainName returns the property name of a stat sustain.
func SustainName(stat domain.Modifier) string {
	return "sustain " + stat.String()
}

// ResistName returns the property name of an elemental resistance.
func ResistName(e domain.Element) string {
	return "resist " + e.String()
}

// IgnoreName returns the property name of an element-ignore flag.
func IgnoreName(e domain.Element) string {
	return "ignore " + e.String()
}

// FlagName returns the property name of a boolean flag.
func FlagName(f domain.Flag) string {
	switch f {
	case domain.FlagFreeAction:
		return "free action"
	case domain.FlagHoldLife:
		return "hold life"
	case domain.FlagRegeneration:
		return "regeneration"
	case domain.FlagSeeInvisible:
		return "see invisible"
	case domain.FlagTelepathy:
		return "telepathy"
	case domain.FlagSlowDigestion:
		return "slow digestion"
	case domain.FlagFeatherFall:
		return "feather fall"
	case domain.FlagProtectBlindness:
		return "protection from blindness"
	case domain.FlagProtectConfusion:
		return "protection from confusion"
	case domain.FlagProtectFear:
		return "protection from fear"
	case domain.FlagProtectStunning:
		return "protection from stunning"
	case domain.FlagPerfectBalance:
		return "perfect balance"
	case domain.FlagBlessed:
		return "blessed"
	case domain.FlagAggravation:
		return "aggravation"
	case domain.FlagDarkness:
		return "darkness"
	case domain.FlagDrainExperience:
		return "drain experience"
	case domain.FlagTeleportation:
		return "teleportation"
	default:
		if f.IsSustain() {
			return SustainName(domain.Modifier(f - domain.FlagSustainStrength))
		}
		panic(fmt.Sprintf("registry: no name for flag %d", f))
	}
}
