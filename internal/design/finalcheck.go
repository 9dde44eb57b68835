package design

import (
	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
)

// ModifierCap bounds every non-speed modifier after generation. Speed is
// bounded at its grant sites instead.
const ModifierCap = 6

// FinalCheck removes contradictions left behind by the generation
// passes. It is a pure cleanup with a fixed point: running it twice
// changes nothing the second time.
func FinalCheck(art *domain.Artifact) {
	for m := range art.Modifiers {
		if domain.Modifier(m) != domain.ModSpeed && art.Modifiers[m] > ModifierCap {
			art.Modifiers[m] = ModifierCap
		}
	}

	// Sustaining a stat the item itself reduces is incoherent.
	for stat := domain.ModStrength; stat < domain.Modifier(domain.StatCount); stat++ {
		if art.Modifiers[stat] < 0 {
			art.Flags.Clear(domain.SustainFor(stat))
		}
	}

	// A strong basic resistance implies the material shrugs off that
	// element's side effects too.
	for e := domain.Element(0); e < domain.Element(domain.BasicElemCount); e++ {
		if art.ResLevel[e] < domain.ResBaseline {
			art.IgnoreElem[e] = true
		}
	}

	if art.Modifiers[domain.ModStealth] > 0 && art.Flags.Has(domain.FlagAggravation) {
		art.Modifiers[domain.ModStealth] = 0
	}

	if art.Modifiers[domain.ModLight] > 0 && art.Flags.Has(domain.FlagDarkness) {
		art.Modifiers[domain.ModLight] = 0
	}

	removeRedundantActivation(art)
}

// removeRedundantActivation drops an activation whose whole effect is
// already implied by the item's static properties. Any behavior the
// summarizer cannot express keeps the activation.
func removeRedundantActivation(art *domain.Artifact) {
	def := registry.ActivationByID(art.Activation)
	if def == nil {
		return
	}

	sum := registry.SummarizeEffect(def.Effect)
	if sum.Unsummarizable > 0 {
		return
	}
	for _, entry := range sum.Entries {
		if !covers(art, entry) {
			return
		}
	}

	art.Activation = domain.ActivationNone
	art.RechargeBase = 0
	art.RechargeDice = 0
	art.RechargeSides = 0
}

// covers reports whether the item's static properties already provide
// one summarized behavior at equal or greater strength.
func covers(art *domain.Artifact, entry registry.PropertySummary) bool {
	switch entry.Kind {
	case registry.SummaryBrand:
		return art.Brands[domain.Brand(entry.Index)] >= entry.Magnitude
	case registry.SummarySlay:
		return art.Slays[domain.Slay(entry.Index)] >= entry.Magnitude
	case registry.SummaryResist:
		return domain.ResBaseline-art.ResLevel[entry.Index] >= entry.Magnitude
	case registry.SummaryFlag, registry.SummaryCure, registry.SummaryConflict:
		return art.Flags.Has(domain.Flag(entry.Index))
	default:
		return false
	}
}
