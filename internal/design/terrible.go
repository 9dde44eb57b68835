package design

import (
	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
)

// Wheel outcome labels, kept in logs so a ruined item can be explained.
const (
	wheelArmorInversion  = "armor inversion"
	wheelCombatInversion = "combat inversion"
	wheelStatPurge       = "stat purge"
	wheelStripping       = "wholesale stripping"
)

// makeTerrible ruins a finished item. It runs one to three rounds of the
// wheel of doom, strips the activation most of the time, and forces on a
// batch of curses sized to how promising the item was.
func (d *designer) makeTerrible() {
	art := d.art

	rounds := d.randInt1(3)
	for i := 0; i < rounds; i++ {
		switch d.spinWheel() {
		case wheelArmorInversion:
			d.invertArmor()
		case wheelCombatInversion:
			d.invertCombat()
		case wheelStatPurge:
			d.purgeStats()
		case wheelStripping:
			d.stripWholesale()
		}
	}

	if d.percent(TerribleActivationStripPercent) {
		art.Activation = domain.ActivationNone
		art.RechargeBase = 0
		art.RechargeDice = 0
		art.RechargeSides = 0
	}

	count := 1
	if d.ledger.Initial() > 2500 {
		count += d.roll(2)
	}
	if d.ledger.Initial() > 4500 {
		count++
	}
	if count > 3 {
		count = 3
	}
	for i := 0; i < count; i++ {
		if c, power := registry.RandomCurseFor(art.Kind.Category, d.src); c != nil {
			art.SetCurse(c.ID, power)
		}
	}

	if art.Cost > 0 {
		art.Cost = 0
	}
}

// spinWheel picks one of the four doom outcomes, weighted toward the
// bonuses the item actually carries.
func (d *designer) spinWheel() string {
	art := d.art

	weighted := make([]string, 0, 8)
	weighted = append(weighted,
		wheelArmorInversion, wheelCombatInversion, wheelStatPurge, wheelStripping)
	if art.ToAC > 0 || art.BaseAC > 0 {
		weighted = append(weighted, wheelArmorInversion)
	}
	if art.ToHit > 0 || art.ToDam > 0 {
		weighted = append(weighted, wheelCombatInversion)
	}
	for _, m := range art.Modifiers {
		if m > 0 {
			weighted = append(weighted, wheelStatPurge)
			break
		}
	}
	if art.Brands != nil || art.Slays != nil || art.Flags.Count() > 0 {
		weighted = append(weighted, wheelStripping)
	}

	outcome := weighted[d.roll(len(weighted))]
	d.wheel = append(d.wheel, outcome)
	return outcome
}

func (d *designer) invertArmor() {
	art := d.art
	if d.oneIn(2) && art.BaseAC > 0 {
		art.BaseAC = 0
		return
	}
	if art.ToAC > 0 {
		art.ToAC = -art.ToAC
	}
	if d.oneIn(3) {
		art.ToAC -= 2 + d.roll(9)
	}
}

func (d *designer) invertCombat() {
	art := d.art
	if art.ToHit > 0 {
		art.ToHit = -art.ToHit
	}
	if art.ToDam > 0 {
		art.ToDam = -art.ToDam
	}
	if art.ToHit == 0 && art.ToDam == 0 && d.oneIn(4) {
		penalty := 2 + d.roll(9)
		art.ToHit = -penalty
		art.ToDam = -penalty
	}
}

func (d *designer) purgeStats() {
	art := d.art

	if !d.oneIn(4) {
		for stat := domain.ModStrength; stat < domain.Modifier(domain.StatCount); stat++ {
			if art.Modifiers[stat] > 0 {
				art.Modifiers[stat] = -art.Modifiers[stat]
			}
		}
		return
	}

	// The crueler variant wipes every bonus and picks a victim group for
	// a deep penalty, piling on a curse as well.
	for m := range art.Modifiers {
		art.Modifiers[m] = 0
	}
	penalty := -(3 + d.roll(5))
	switch d.roll(4) {
	case 0:
		art.Modifiers[domain.ModStrength] = penalty
		art.Modifiers[domain.ModDexterity] = penalty
		art.Modifiers[domain.ModConstitution] = penalty
	case 1:
		art.Modifiers[domain.ModWisdom] = penalty
		art.Modifiers[domain.ModIntelligence] = penalty
	case 2:
		art.Modifiers[domain.ModSpeed] = penalty
	default:
		for stat := domain.ModStrength; stat < domain.Modifier(domain.StatCount); stat++ {
			if d.oneIn(2) {
				art.Modifiers[stat] = penalty
			}
		}
	}
	if c, power := registry.RandomCurseFor(art.Kind.Category, d.src); c != nil {
		art.SetCurse(c.ID, power)
	}
}

func (d *designer) stripWholesale() {
	art := d.art

	art.Modifiers[domain.ModBlows] = 0
	if d.oneIn(2) {
		art.Modifiers[domain.ModShots] = 0
	}
	if d.oneIn(2) {
		art.Modifiers[domain.ModMight] = 0
	}

	for b := range art.Brands {
		if d.oneIn(2) {
			art.SetBrand(b, 0)
		}
	}
	for s := range art.Slays {
		if d.oneIn(2) {
			art.SetSlay(s, 0)
		}
	}

	for e := domain.Element(0); e < domain.ElemMax; e++ {
		if art.ResLevel[e] < domain.ResBaseline && d.oneIn(2) {
			// Pull a strong resistance halfway back toward baseline.
			art.ResLevel[e] += (domain.ResBaseline - art.ResLevel[e]) / 2
		}
	}

	for f := domain.Flag(0); f < domain.FlagMax; f++ {
		if art.Flags.Has(f) && (f.IsProtective() || f.IsSustain()) && d.oneIn(2) {
			art.Flags.Clear(f)
		}
	}
}
