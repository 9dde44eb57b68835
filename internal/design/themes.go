package design

import (
	"fmt"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
)

// chooseTheme rolls a weighted theme for the item's equipment category
// and applies its bundle of property grants. Jewellery does not come
// through here; rings and amulets select an ego type instead.
func (d *designer) chooseTheme() {
	switch d.art.Kind.Category {
	case domain.CategoryMeleeWeapon:
		d.themeMeleeWeapon()
	case domain.CategoryLauncher:
		d.themeLauncher()
	case domain.CategoryBodyArmor:
		d.themeBodyArmor()
	case domain.CategoryShield:
		d.themeShield()
	case domain.CategoryBoots:
		d.themeBoots()
	case domain.CategoryCloak:
		d.themeCloak()
	case domain.CategoryHeadgear:
		d.themeHeadgear()
	case domain.CategoryGloves:
		d.themeGloves()
	default:
		panic(fmt.Sprintf("design: no theme table for category %s", d.art.Kind.Category))
	}
}

// meleeBaseline grants the to-hit and to-damage bonuses every magical
// weapon carries. Bought on credit so even a nearly broke session gets
// the minimum.
func (d *designer) meleeBaseline() {
	bonus := 3 + d.roll(d.potential()/1200+1)
	d.getProperty("skill bonus", bonus, Credit)
	bonus = 3 + d.roll(d.potential()/1200+1)
	d.getProperty("deadliness bonus", bonus, Credit)
}

// armorBaseline grants the armor-class bonus every magical armor piece
// carries.
func (d *designer) armorBaseline() {
	bonus := 2 + d.roll(d.potential()/900+1)
	d.getProperty("armor bonus", bonus, Credit)
}

// elementalAffinity is the shared shape of the five brand themes: brand
// the weapon, grant the matching resistance, sometimes upgrade toward
// immunity, sometimes take a vulnerability to the opposing element, and
// sometimes take a summoning curse for extra budget.
func (d *designer) elementalAffinity(brand, resist, opposite, activation string) {
	strength := 7
	if d.potential() >= 3000 && d.oneIn(3) {
		strength = 10
	}
	d.getProperty(brand, domain.MultBase+strength, Strict)

	d.getProperty(resist, 35+d.roll(11), Strict)
	if d.potential() >= 4000 && d.oneIn(5) {
		// Push the resistance the rest of the way to immunity.
		d.getProperty(resist, 60, Strict)
	}

	if opposite != "" && d.oneIn(5) {
		d.getProperty(opposite, -(15 + d.roll(11)), Strict)
	}
	if d.oneIn(8) {
		d.addCurse("attract demons", 25, 300)
	}
	if activation != "" && d.potential() >= 1500 && d.oneIn(4) {
		d.grantActivation(activation)
	}
}

func (d *designer) themeMeleeWeapon() {
	d.meleeBaseline()

	switch roll := d.roll(100); {
	case roll < 10:
		d.theme = "caustic"
		d.elementalAffinity("acid brand", "resist acid", "resist electricity", "acid spray")

	case roll < 20:
		d.theme = "storm"
		d.elementalAffinity("lightning brand", "resist electricity", "resist acid", "lightning strike")

	case roll < 33:
		d.theme = "flame"
		act := "flame tongue"
		if d.potential() >= 3500 {
			act = "searing light"
		}
		d.elementalAffinity("flame brand", "resist fire", "resist cold", act)

	case roll < 46:
		d.theme = "frost"
		d.elementalAffinity("frost brand", "resist cold", "resist fire", "frost ball")

	case roll < 56:
		d.theme = "venom"
		d.elementalAffinity("poison brand", "resist poison", "", "stinking cloud")
		if d.oneIn(6) {
			d.addCurse("poison victim", 30, 350)
		}

	case roll < 70:
		d.theme = "holy warrior"
		d.getProperty("slay evil", domain.MultBase+5, Strict)
		d.getProperty("blessed", 1, Strict)
		if d.potential() >= 2000 {
			d.getProperty("see invisible", 1, Strict)
		}
		if d.potential() >= 3500 && d.oneIn(3) {
			d.getProperty("hold life", 1, Strict)
		}
		if d.oneIn(3) {
			if d.potential() >= 3000 {
				d.grantActivation("protection from evil")
			} else {
				d.grantActivation("dispel evil")
			}
		}

	case roll < 80:
		d.theme = "bane of the dead"
		d.getProperty("slay undead", domain.MultBase+7, Strict)
		d.getProperty("slay demon", domain.MultBase+7, Strict)
		if d.potential() >= 2500 {
			d.getProperty("hold life", 1, Strict)
		}
		if d.oneIn(4) {
			d.getProperty("see invisible", 1, Strict)
		}
		if d.oneIn(6) {
			d.addCurse("attract undead", 25, 300)
		}

	case roll < 90:
		d.theme = "westernesse"
		bonus := 1 + d.roll(d.potential()/1800+1)
		d.getProperty("strength", bonus, Strict)
		d.getProperty("dexterity", bonus, Strict)
		d.getProperty("constitution", bonus, Strict)
		d.getProperty("slay orc", domain.MultBase+5, Strict)
		d.getProperty("slay troll", domain.MultBase+5, Strict)
		d.getProperty("slay giant", domain.MultBase+5, Strict)
		if d.potential() >= 2000 {
			d.getProperty("free action", 1, Strict)
			d.getProperty("see invisible", 1, Strict)
		}

	default:
		d.theme = "berserker"
		d.getProperty("enhanced dice", 2, Strict)
		if d.potential() >= 4500 && d.oneIn(2) {
			d.getProperty("extra blows", 1, Strict)
		}
		if d.oneIn(4) {
			d.grantActivation("heroism")
		}
		if d.oneIn(5) {
			// A loud weapon, but the budget likes it.
			d.getProperty("aggravation", 1, Strict)
		}
	}

	// Every finished magical weapon bears some affinity. A session whose
	// bundles all failed their gates still gets a modest one.
	if d.art.Brands == nil && d.art.Slays == nil {
		d.getProperty("slay evil", domain.MultBase+3, Credit)
	}
}

func (d *designer) themeLauncher() {
	d.meleeBaseline()

	switch roll := d.roll(100); {
	case roll < 25:
		d.theme = "marksman"
		d.getProperty("skill bonus", 2+d.roll(4), Strict)
		if d.oneIn(4) {
			d.getProperty("see invisible", 1, Strict)
		}

	case roll < 50:
		d.theme = "heavy draw"
		if d.potential() >= 2500 {
			d.getProperty("extra might", 1, Strict)
		}
		d.getProperty("deadliness bonus", 2+d.roll(4), Strict)

	case roll < 75:
		d.theme = "rapid fire"
		if d.potential() >= 3000 {
			d.getProperty("extra shots", 1, Strict)
		} else {
			d.getProperty("skill bonus", 3+d.roll(3), Strict)
		}

	default:
		d.theme = "ranger"
		d.getProperty("stealth", 1+d.roll(3), Strict)
		d.getProperty("searching", 2+d.roll(4), Strict)
		if d.potential() >= 2000 && d.oneIn(3) {
			d.grantActivation("clairvoyance")
		}
	}
}

func (d *designer) themeBodyArmor() {
	d.armorBaseline()

	switch roll := d.roll(100); {
	case roll < 30:
		d.theme = "elemental ward"
		count := 2 + d.roll(3)
		for i := 0; i < count; i++ {
			e := domain.Element(d.roll(domain.BasicElemCount))
			d.getProperty(registry.ResistName(e), 25+d.roll(16), Strict)
		}

	case roll < 50:
		d.theme = "rare ward"
		rare := []string{
			"resist poison", "resist nether", "resist sound",
			"resist shards", "resist nexus", "resist dark",
		}
		d.getProperty(rare[d.roll(len(rare))], 30+d.roll(16), Strict)
		if d.potential() >= 2500 && d.oneIn(3) {
			d.getProperty(rare[d.roll(len(rare))], 30+d.roll(11), Strict)
		}

	case roll < 65:
		d.theme = "vitality"
		bonus := 1 + d.roll(d.potential()/1800+1)
		d.getProperty("constitution", bonus, Strict)
		d.getProperty("strength", bonus, Strict)
		if d.oneIn(3) {
			d.getProperty(registry.SustainName(domain.ModConstitution), 1, Strict)
		}
		if d.oneIn(8) {
			d.addCurse("hunger", 15, 200)
		}

	case roll < 80:
		d.theme = "dwarven"
		d.getProperty("constitution", 1+d.roll(2), Strict)
		d.getProperty("resist acid", 30+d.roll(11), Strict)
		d.getProperty("ignore acid", 1, Strict)
		d.getProperty("ignore fire", 1, Strict)
		if d.potential() >= 2500 {
			d.getProperty("free action", 1, Strict)
		}

	default:
		d.theme = "bastion"
		d.getProperty("armor bonus", 5+d.roll(d.potential()/600+1), Strict)
		if d.oneIn(3) {
			d.grantActivation("resist elements")
		}
	}
}

func (d *designer) themeShield() {
	d.armorBaseline()

	switch roll := d.roll(100); {
	case roll < 40:
		d.theme = "deflection"
		e := domain.Element(d.roll(domain.BasicElemCount))
		d.getProperty(registry.ResistName(e), 30+d.roll(16), Strict)
		d.getProperty(registry.IgnoreName(e), 1, Strict)
		if d.oneIn(2) {
			e = domain.Element(d.roll(domain.BasicElemCount))
			d.getProperty(registry.ResistName(e), 25+d.roll(11), Strict)
		}

	case roll < 70:
		d.theme = "bulwark"
		d.getProperty("armor bonus", 4+d.roll(d.potential()/800+1), Strict)
		if d.oneIn(3) {
			d.getProperty("constitution", 1+d.roll(2), Strict)
		}

	case roll < 90:
		d.theme = "preservation"
		for stat := domain.ModStrength; stat < domain.Modifier(domain.StatCount); stat++ {
			if d.oneIn(2) {
				d.getProperty(registry.SustainName(stat), 1, Strict)
			}
		}
		if d.potential() >= 3500 {
			d.getProperty("hold life", 1, Strict)
		}

	default:
		d.theme = "elements"
		d.grantActivation("resist elements")
		for e := domain.Element(0); e < domain.Element(domain.BasicElemCount); e++ {
			d.getProperty(registry.ResistName(e), 20+d.roll(11), Strict)
		}
	}
}

func (d *designer) themeBoots() {
	d.armorBaseline()

	switch roll := d.roll(100); {
	case roll < 35:
		d.theme = "quiet step"
		d.getProperty("stealth", 1+d.roll(3), Strict)
		d.getProperty("feather fall", 1, Strict)

	case roll < 60:
		d.theme = "nimbleness"
		d.getProperty("free action", 1, Strict)
		d.getProperty("dexterity", 1+d.roll(3), Strict)

	case roll < 85:
		d.theme = "stability"
		d.getProperty("resist nexus", 30+d.roll(16), Strict)
		d.getProperty("feather fall", 1, Strict)
		if d.oneIn(3) {
			d.getProperty(registry.SustainName(domain.ModDexterity), 1, Strict)
		}

	default:
		d.theme = "speed"
		if d.potential() >= 4000 {
			d.getProperty("speed", 1+d.roll(3), Strict)
			if d.oneIn(5) {
				d.grantActivation("haste self")
			}
		} else if d.potential() >= 1500 {
			d.getProperty("speed", 1, Strict)
		}
	}
}

func (d *designer) themeCloak() {
	d.armorBaseline()

	switch roll := d.roll(100); {
	case roll < 40:
		d.theme = "shadows"
		d.getProperty("stealth", 2+d.roll(3), Strict)
		d.getProperty("resist dark", 25+d.roll(16), Strict)

	case roll < 65:
		d.theme = "protection"
		d.getProperty("armor bonus", 3+d.roll(d.potential()/900+1), Strict)
		if d.oneIn(2) {
			e := domain.Element(d.roll(domain.BasicElemCount))
			d.getProperty(registry.ResistName(e), 20+d.roll(11), Strict)
		}

	case roll < 85:
		d.theme = "aman"
		d.getProperty("stealth", 1+d.roll(3), Strict)
		rare := []string{"resist nether", "resist chaos", "resist disenchantment"}
		d.getProperty(rare[d.roll(len(rare))], 30+d.roll(11), Strict)
		if d.oneIn(8) {
			d.addCurse("chilled to the bone", 25, 250)
		}

	default:
		d.theme = "ethereal"
		d.getProperty("see invisible", 1, Strict)
		d.getProperty("feather fall", 1, Strict)
		if d.oneIn(4) {
			d.grantActivation("illumination")
		}
	}
}

func (d *designer) themeHeadgear() {
	d.armorBaseline()

	switch roll := d.roll(100); {
	case roll < 25:
		d.theme = "wisdom"
		d.getProperty("wisdom", 1+d.roll(d.potential()/1500+1), Strict)
		if d.oneIn(3) {
			d.getProperty("protection from fear", 1, Strict)
		}
		if d.oneIn(8) {
			d.addCurse("drain mana", 25, 300)
		}

	case roll < 50:
		d.theme = "intellect"
		d.getProperty("intelligence", 1+d.roll(d.potential()/1500+1), Strict)
		d.getProperty("magic mastery", 1+d.roll(3), Strict)

	case roll < 70:
		d.theme = "dome of thought"
		if d.potential() >= 3500 {
			d.getProperty("telepathy", 1, Strict)
		} else {
			d.getProperty("see invisible", 1, Strict)
		}

	case roll < 85:
		d.theme = "brilliance"
		d.getProperty("light", 1+d.roll(2), Strict)
		d.getProperty("resist light", 25+d.roll(16), Strict)
		if d.oneIn(3) {
			d.grantActivation("illumination")
		}

	default:
		d.theme = "serenity"
		d.getProperty("protection from confusion", 1, Strict)
		d.getProperty("protection from blindness", 1, Strict)
		if d.potential() >= 2000 {
			d.getProperty("protection from fear", 1, Strict)
		}
		if d.oneIn(4) {
			d.grantActivation("clear mind")
		}
	}
}

func (d *designer) themeGloves() {
	d.armorBaseline()

	switch roll := d.roll(100); {
	case roll < 30:
		d.theme = "free hands"
		d.getProperty("free action", 1, Strict)
		d.getProperty("dexterity", 1+d.roll(3), Strict)

	case roll < 55:
		d.theme = "combat"
		d.getProperty("skill bonus", 2+d.roll(4), Strict)
		d.getProperty("deadliness bonus", 2+d.roll(4), Strict)

	case roll < 75:
		d.theme = "spellcraft"
		d.getProperty("magic mastery", 1+d.roll(4), Strict)

	default:
		d.theme = "might"
		d.getProperty("strength", 1+d.roll(3), Strict)
		d.getProperty("armor bonus", 3+d.roll(5), Strict)
		if d.oneIn(8) {
			d.addCurse("teleportation", 25, 250)
		}
	}
}
