package registry

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
)

// Effect is an opaque handle into the effect table.
type Effect int

// SummaryKind classifies one property-equivalent entry of an effect.
type SummaryKind int

const (
	SummaryBrand SummaryKind = iota
	SummarySlay
	SummaryResist
	SummaryFlag
	SummaryCure
	SummaryConflict
)

// PropertySummary is one property-equivalent behavior of an effect:
// "this effect acts like a fire brand of multiplier 17", and so on.
// For SummaryCure and SummaryConflict, Index names the domain.Flag whose
// presence on the item already covers the behavior.
type PropertySummary struct {
	Kind      SummaryKind
	Index     int
	Magnitude int
}

// EffectSummary is the decomposition of an effect into property
// equivalents plus a count of behaviors the classifier cannot express.
// Any unsummarizable behavior makes the effect conservatively
// non-redundant.
type EffectSummary struct {
	Entries        []PropertySummary
	Unsummarizable int
}

// ActivationDef is one entry in the activation registry.
type ActivationDef struct {
	ID     domain.Activation
	Name   string
	Effect Effect
	Power  int

	RechargeBase  int
	RechargeDice  int
	RechargeSides int
}

type effectDef struct {
	entries        []PropertySummary
	unsummarizable int
}

var effects []effectDef

func defineEffect(unsummarizable int, entries ...PropertySummary) Effect {
	effects = append(effects, effectDef{entries: entries, unsummarizable: unsummarizable})
	return Effect(len(effects) - 1)
}

var (
	activations       []*ActivationDef
	activationsByName = map[string]*ActivationDef{}
)

func defineActivation(name string, effect Effect, power, base, dice, sides int) {
	def := &ActivationDef{
		ID:            domain.Activation(len(activations) + 1),
		Name:          name,
		Effect:        effect,
		Power:         power,
		RechargeBase:  base,
		RechargeDice:  dice,
		RechargeSides: sides,
	}
	activations = append(activations, def)
	activationsByName[name] = def
}

func init() {
	// Attack and utility effects carry behavior no static property can
	// subsume, so they summarize as unsummarizable.
	fireBolt := defineEffect(1)
	frostBall := defineEffect(1)
	lightningStrike := defineEffect(1)
	acidSpray := defineEffect(1)
	stinkingCloud := defineEffect(1)
	dispelEvil := defineEffect(1)
	hasteSelf := defineEffect(1)
	clairvoyance := defineEffect(1)
	illumination := defineEffect(1)
	protectionFromEvil := defineEffect(1)

	resistElements := defineEffect(0,
		PropertySummary{Kind: SummaryResist, Index: int(domain.ElemAcid), Magnitude: 35},
		PropertySummary{Kind: SummaryResist, Index: int(domain.ElemElectricity), Magnitude: 35},
		PropertySummary{Kind: SummaryResist, Index: int(domain.ElemFire), Magnitude: 35},
		PropertySummary{Kind: SummaryResist, Index: int(domain.ElemCold), Magnitude: 35},
	)
	flameTongue := defineEffect(0,
		PropertySummary{Kind: SummaryBrand, Index: int(domain.BrandFire), Magnitude: 17},
	)
	searingLight := defineEffect(1,
		PropertySummary{Kind: SummaryBrand, Index: int(domain.BrandFire), Magnitude: 17},
	)
	heroism := defineEffect(0,
		PropertySummary{Kind: SummaryCure, Index: int(domain.FlagProtectFear)},
	)
	clearMind := defineEffect(0,
		PropertySummary{Kind: SummaryCure, Index: int(domain.FlagProtectConfusion)},
		PropertySummary{Kind: SummaryCure, Index: int(domain.FlagProtectBlindness)},
	)

	defineActivation("fire bolt", fireBolt, 50, 9, 1, 9)
	defineActivation("frost ball", frostBall, 70, 20, 1, 20)
	defineActivation("lightning strike", lightningStrike, 55, 10, 1, 10)
	defineActivation("acid spray", acidSpray, 50, 10, 1, 10)
	defineActivation("stinking cloud", stinkingCloud, 45, 8, 1, 8)
	defineActivation("dispel evil", dispelEvil, 80, 60, 1, 60)
	defineActivation("haste self", hasteSelf, 100, 75, 1, 75)
	defineActivation("clairvoyance", clairvoyance, 90, 50, 1, 50)
	defineActivation("illumination", illumination, 30, 10, 1, 10)
	defineActivation("protection from evil", protectionFromEvil, 80, 100, 1, 100)
	defineActivation("resist elements", resistElements, 60, 40, 1, 40)
	defineActivation("flame tongue", flameTongue, 40, 15, 1, 15)
	defineActivation("searing light", searingLight, 55, 25, 1, 25)
	defineActivation("heroism", heroism, 40, 30, 1, 30)
	defineActivation("clear mind", clearMind, 35, 30, 1, 30)
}

// ActivationByName returns the named activation. An unknown name is a
// data-integrity error and panics, as with properties.
func ActivationByName(name string) *ActivationDef {
	def, ok := activationsByName[name]
	if !ok {
		panic(fmt.Sprintf("registry: unknown activation %q", name))
	}
	return def
}

// ActivationByID returns the activation for a reference, or nil for
// ActivationNone.
func ActivationByID(id domain.Activation) *ActivationDef {
	if id == domain.ActivationNone {
		return nil
	}
	i := int(id) - 1
	if i < 0 || i >= len(activations) {
		return nil
	}
	return activations[i]
}

// ActivationMatchingEffect returns the first activation using the given
// effect, or nil.
func ActivationMatchingEffect(effect Effect) *ActivationDef {
	for _, def := range activations {
		if def.Effect == effect {
			return def
		}
	}
	return nil
}

var summaryCache, _ = lru.New[Effect, EffectSummary](64)

// SummarizeEffect decomposes an effect into property equivalents.
// Results are cached; the same handle always summarizes identically.
func SummarizeEffect(effect Effect) EffectSummary {
	if cached, ok := summaryCache.Get(effect); ok {
		return cached
	}
	if int(effect) < 0 || int(effect) >= len(effects) {
		// An unknown handle has unknown behavior; report it as
		// unsummarizable so callers keep the activation.
		return EffectSummary{Unsummarizable: 1}
	}
	def := effects[effect]
	sum := EffectSummary{
		Entries:        append([]PropertySummary(nil), def.entries...),
		Unsummarizable: def.unsummarizable,
	}
	summaryCache.Add(effect, sum)
	return sum
}
