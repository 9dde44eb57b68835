package design

import (
	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
)

// bonusPicks are the generic numeric bonuses the haggling passes draw
// from when the theme has left budget over.
var bonusPicks = []string{
	"strength", "intelligence", "wisdom", "dexterity", "constitution",
	"charisma", "stealth", "searching", "infravision", "tunneling",
	"magic mastery", "light",
}

// affixPicks is the slay-or-brand table melee weapons draw from.
var affixPicks = []string{
	"slay animal", "slay evil", "slay undead", "slay demon",
	"slay orc", "slay troll", "slay giant", "slay dragon",
	"acid brand", "lightning brand", "flame brand", "frost brand",
	"poison brand",
}

// miscFlagPicks is the generic flag table.
var miscFlagPicks = []string{
	"free action", "see invisible", "feather fall", "slow digestion",
	"regeneration", "protection from fear", "protection from blindness",
	"protection from confusion",
}

// resistPicks leaves out chaos and disenchantment; those stay thematic.
var resistPicks = []string{
	"resist acid", "resist electricity", "resist fire", "resist cold",
	"resist poison", "resist light", "resist dark", "resist sound",
	"resist shards", "resist nexus", "resist nether",
}

// haggle spends whatever the theme left over on a long tail of generic
// properties, then tidies the numeric fields.
func (d *designer) haggle() {
	d.initialBonusPass()
	d.vulnerabilityPass()
	d.bigTicketPass()

	if d.oneIn(2) || d.potential() >= SecondaryBonusFloor {
		d.grantRandomBonus()
	}

	cat := d.art.Kind.Category
	for i := 0; i < HaggleMaxIterations && d.potential() >= HaggleFloor; i++ {
		d.haggleRounds++
		switch {
		case cat == domain.CategoryMeleeWeapon:
			d.haggleMeleeRound()
		case cat == domain.CategoryLauncher:
			d.haggleLauncherRound()
		default:
			d.haggleGenericRound()
		}
	}

	d.postLoopTouchUps()
}

func (d *designer) initialBonusPass() {
	if d.oneIn(10) && d.potential() >= 4500 {
		for stat := domain.ModStrength; stat < domain.Modifier(domain.StatCount); stat++ {
			d.getProperty(stat.String(), 1+d.roll(2), Strict)
		}
		return
	}
	if !d.oneIn(4) {
		count := 1 + d.roll(2)
		for i := 0; i < count; i++ {
			d.grantRandomBonus()
		}
	}
}

// grantRandomBonus buys one generic numeric bonus sized to the budget.
func (d *designer) grantRandomBonus() {
	bonus := 1 + d.roll(d.potential()/2000+2)
	d.getProperty(bonusPicks[d.roll(len(bonusPicks))], bonus, Strict)
}

// vulnerabilityPass occasionally takes on an elemental weakness in
// exchange for budget.
func (d *designer) vulnerabilityPass() {
	if !d.oneIn(8) {
		return
	}
	name := resistPicks[d.roll(len(resistPicks))]
	if !d.hasProperty(name) {
		d.getProperty(name, -(10 + d.roll(16)), Strict)
	}
}

// bigTicketPass spends a still-rich budget on one powerful binary
// property.
func (d *designer) bigTicketPass() {
	if d.potential() <= BigTicketThreshold || !d.oneIn(3) {
		return
	}
	switch d.roll(6) {
	case 0:
		d.getProperty("telepathy", 1, Strict)
	case 1:
		d.getProperty("hold life", 1, Strict)
	case 2:
		d.getProperty("protection from blindness", 1, Strict)
		d.getProperty("protection from confusion", 1, Strict)
	case 3:
		rare := []string{"resist poison", "resist nether", "resist sound", "resist shards"}
		d.getProperty(rare[d.roll(len(rare))], 35+d.roll(11), Strict)
	case 4:
		if d.potential() >= 4500 {
			d.getProperty("speed", 1+d.roll(2), Strict)
		} else {
			d.getProperty("hold life", 1, Strict)
		}
	case 5:
		if d.potential() >= 4000 {
			for stat := domain.ModStrength; stat < domain.Modifier(domain.StatCount); stat++ {
				d.getProperty(registry.SustainName(stat), 1, Strict)
			}
		} else {
			d.getProperty("telepathy", 1, Strict)
		}
	}
}

func (d *designer) haggleMeleeRound() {
	art := d.art

	if art.Kind.Throwing && d.oneIn(4) && !d.hasProperty("perfect balance") {
		d.getProperty("perfect balance", 1, Strict)
	}

	if d.oneIn(6) {
		share := 2
		if d.oneIn(3) {
			d.sacrificeSkillBonus()
			share = 1
		}
		d.getProperty("enhanced dice", share, Strict)
		if d.oneIn(3) {
			d.adjustWeight()
		}
	}

	pick := affixPicks[d.roll(len(affixPicks))]
	if !d.hasProperty(pick) {
		d.getProperty(pick, domain.MultBase+3+d.roll(5), Strict)
	}

	if d.oneIn(2) {
		d.grantMiscFlag()
	}
	if d.oneIn(3) {
		d.grantRandomResist()
	}

	d.maybeLiquidate()
}

func (d *designer) haggleLauncherRound() {
	if d.oneIn(2) {
		d.grantMiscFlag()
	}
	if d.oneIn(3) {
		d.grantRandomResist()
	}
	d.maybeLiquidate()
}

func (d *designer) haggleGenericRound() {
	d.grantRandomResist()
	if d.oneIn(3) {
		d.grantMiscFlag()
	}
	d.maybeLiquidate()
}

func (d *designer) grantMiscFlag() {
	pick := miscFlagPicks[d.roll(len(miscFlagPicks))]
	if !d.hasProperty(pick) {
		d.getProperty(pick, 1, Strict)
	}
}

func (d *designer) grantRandomResist() {
	pick := resistPicks[d.roll(len(resistPicks))]
	d.getProperty(pick, 20+d.roll(21), Strict)
}

// sacrificeSkillBonus trades the weapon's combat bonuses away and
// refunds their price, funding a bigger dice jump.
func (d *designer) sacrificeSkillBonus() {
	art := d.art
	if art.ToHit <= 0 {
		return
	}
	d.ledger.Refund(registry.Price(registry.PropertyByName("skill bonus"), art.ToHit))
	art.ToHit = 0
	if art.ToDam > 0 {
		d.ledger.Refund(registry.Price(registry.PropertyByName("deadliness bonus"), art.ToDam))
		art.ToHit = 0
	}
}

// adjustWeight nudges the weapon's heft to match its grown dice.
func (d *designer) adjustWeight() {
	art := d.art
	delta := art.Weight / 10
	if delta == 0 {
		delta = 1
	}
	if d.oneIn(2) {
		art.Weight += delta
	} else if art.Weight > delta {
		art.Weight -= delta
	}
}

// maybeLiquidate cleans out a nearly empty wallet into whichever bonus
// field the item carries, ending the loop.
func (d *designer) maybeLiquidate() {
	if d.potential() >= LiquidationThreshold || !d.oneIn(2) {
		return
	}
	left := d.ledger.Drain()
	art := d.art
	if art.Kind.Category.IsWeapon() {
		points := left / 72
		art.ToHit += points
		art.ToDam += points
		return
	}
	art.ToAC += left / 28
}

func (d *designer) postLoopTouchUps() {
	art := d.art
	cat := art.Kind.Category

	for stat := domain.ModStrength; stat < domain.Modifier(domain.StatCount); stat++ {
		if art.Modifiers[stat] > 0 && d.oneIn(3) {
			d.getProperty(registry.SustainName(stat), 1, Strict)
		}
	}

	chance := 4
	if cat.IsArmor() {
		chance = 2
	}
	if d.oneIn(chance) {
		if d.oneIn(2) {
			d.improveExistingResist()
		} else if d.oneIn(2) {
			d.getProperty("slow digestion", 1, Strict)
		} else {
			d.getProperty("feather fall", 1, Strict)
		}
	}

	art.ToAC = d.neaten(art.ToAC)
	art.ToHit = d.neaten(art.ToHit)
	art.ToDam = d.neaten(art.ToDam)

	// Magical weapons keep their guaranteed minimum striking bonuses.
	if cat.IsWeapon() {
		if art.ToHit < 3 {
			art.ToHit = 3
		}
		if art.ToDam < 3 {
			art.ToDam = 3
		}
	}
}

// improveExistingResist deepens one resistance the item already has by a
// quarter of its remaining distance to immunity.
func (d *designer) improveExistingResist() {
	art := d.art
	var owned []domain.Element
	for e := domain.Element(0); e < domain.ElemMax; e++ {
		if art.ResLevel[e] < domain.ResBaseline && art.ResLevel[e] > domain.ResMin {
			owned = append(owned, e)
		}
	}
	if len(owned) == 0 {
		return
	}
	e := owned[d.roll(len(owned))]
	d.getProperty(registry.ResistName(e), art.ResLevel[e]/4, Strict)
}

// neaten pulls a positive bonus toward a multiple of 5, rounding up more
// often than down.
func (d *designer) neaten(v int) int {
	if v <= 0 || v%5 == 0 {
		return v
	}
	if d.oneIn(3) {
		return v - v%5
	}
	return v + 5 - v%5
}
