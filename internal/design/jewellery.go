package design

import (
	"fmt"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/metrics"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
)

// egoType is one named jewellery template. Unlike the armor and weapon
// themes it is keyed by name, gates on its own minimum potential, and
// may be restricted to particular base kinds.
type egoType struct {
	name      string
	threshold int

	// possible lists the base kind names the ego may land on; empty
	// means any kind of the category.
	possible []string

	apply func(d *designer)
}

func (e *egoType) compatible(kind *domain.ObjectKind) bool {
	if len(e.possible) == 0 {
		return true
	}
	for _, name := range e.possible {
		if name == kind.Name {
			return true
		}
	}
	return false
}

var ringEgos = []*egoType{
	{
		name:      "of Speed",
		threshold: 2500,
		possible:  []string{"Engraved Band", "Sapphire Ring"},
		apply: func(d *designer) {
			d.getProperty("speed", 2+d.roll(d.potential()/1500+1), Credit)
			if d.oneIn(6) {
				d.grantActivation("haste self")
			}
		},
	},
	{
		name:      "of Power",
		threshold: 3500,
		possible:  []string{"Sapphire Ring"},
		apply: func(d *designer) {
			stat := domain.Modifier(d.roll(domain.StatCount))
			d.getProperty(stat.String(), 2+d.roll(3), Strict)
			d.getProperty("armor bonus", 5+d.roll(6), Strict)
			d.getProperty("see invisible", 1, Strict)
			if d.potential() >= 2500 {
				d.getProperty("telepathy", 1, Strict)
			}
			if d.oneIn(4) {
				d.getProperty("aggravation", 1, Strict)
			}
		},
	},
	{
		name:      "of Protection",
		threshold: 800,
		apply: func(d *designer) {
			d.getProperty("armor bonus", 4+d.roll(d.potential()/700+1), Credit)
			if d.oneIn(2) {
				e := domain.Element(d.roll(domain.BasicElemCount))
				d.getProperty(registry.ResistName(e), 25+d.roll(11), Strict)
			}
		},
	},
	{
		name:      "of the Elements",
		threshold: 1200,
		apply: func(d *designer) {
			if d.potential() >= 4000 && d.oneIn(4) {
				e := domain.Element(d.roll(domain.BasicElemCount))
				d.getProperty(registry.ResistName(e), 100, Credit)
				return
			}
			for e := domain.Element(0); e < domain.Element(domain.BasicElemCount); e++ {
				if d.oneIn(2) {
					d.getProperty(registry.ResistName(e), 25+d.roll(16), Strict)
				}
			}
		},
	},
	{
		name:      "of Physical Prowess",
		threshold: 1000,
		apply: func(d *designer) {
			stats := []domain.Modifier{domain.ModStrength, domain.ModDexterity, domain.ModConstitution}
			stat := stats[d.roll(len(stats))]
			d.getProperty(stat.String(), 1+d.roll(d.potential()/1200+1), Credit)
			if d.oneIn(2) {
				d.getProperty(registry.SustainName(stat), 1, Strict)
			}
		},
	},
	{
		name:      "of Mental Strength",
		threshold: 1000,
		apply: func(d *designer) {
			stats := []domain.Modifier{domain.ModIntelligence, domain.ModWisdom}
			stat := stats[d.roll(len(stats))]
			d.getProperty(stat.String(), 1+d.roll(d.potential()/1200+1), Credit)
			d.getProperty("magic mastery", 1+d.roll(3), Strict)
			if d.oneIn(2) {
				d.getProperty(registry.SustainName(stat), 1, Strict)
			}
		},
	},
	{
		name:      "of Dodging",
		threshold: 600,
		apply: func(d *designer) {
			d.getProperty("dexterity", 1+d.roll(3), Credit)
			d.getProperty("feather fall", 1, Strict)
			if d.oneIn(3) {
				d.getProperty("armor bonus", 2+d.roll(4), Strict)
			}
		},
	},
	{
		name:      "of Hindrance",
		threshold: 0,
		apply:     applyHindrance,
	},
}

var amuletEgos = []*egoType{
	{
		name:      "of Wisdom",
		threshold: 1000,
		apply: func(d *designer) {
			d.getProperty("wisdom", 1+d.roll(d.potential()/1200+1), Credit)
			if d.oneIn(2) {
				d.getProperty(registry.SustainName(domain.ModWisdom), 1, Strict)
			}
			if d.oneIn(3) {
				d.getProperty("protection from fear", 1, Strict)
			}
		},
	},
	{
		name:      "of Charisma",
		threshold: 500,
		apply: func(d *designer) {
			d.getProperty("charisma", 1+d.roll(3), Credit)
			if d.oneIn(2) {
				d.getProperty(registry.SustainName(domain.ModCharisma), 1, Strict)
			}
		},
	},
	{
		name:      "of the Magi",
		threshold: 3000,
		possible:  []string{"Golden Amulet"},
		apply: func(d *designer) {
			d.getProperty("magic mastery", 2+d.roll(4), Credit)
			d.getProperty("armor bonus", 4+d.roll(6), Strict)
			d.getProperty("free action", 1, Strict)
			if d.potential() >= 2500 {
				d.getProperty("telepathy", 1, Strict)
			}
		},
	},
	{
		name:      "of Sustenance",
		threshold: 800,
		apply: func(d *designer) {
			for stat := domain.ModStrength; stat < domain.Modifier(domain.StatCount); stat++ {
				if d.oneIn(2) {
					d.getProperty(registry.SustainName(stat), 1, Strict)
				}
			}
			d.getProperty("slow digestion", 1, Strict)
			if d.potential() >= 2500 && d.oneIn(3) {
				d.getProperty("hold life", 1, Strict)
			}
		},
	},
	{
		name:      "of Trickery",
		threshold: 1500,
		apply: func(d *designer) {
			d.getProperty("stealth", 1+d.roll(3), Credit)
			d.getProperty("dexterity", 1+d.roll(3), Strict)
			d.getProperty("searching", 2+d.roll(5), Strict)
		},
	},
	{
		name:      "of Resistance",
		threshold: 1200,
		apply: func(d *designer) {
			for e := domain.Element(0); e < domain.Element(domain.BasicElemCount); e++ {
				d.getProperty(registry.ResistName(e), 20+d.roll(16), Strict)
			}
		},
	},
	{
		name:      "of Doom",
		threshold: 0,
		apply:     applyHindrance,
	},
}

// applyHindrance is the cursed ego both tables fall back on. It never
// declines, so ego selection always terminates.
func applyHindrance(d *designer) {
	stat := domain.Modifier(d.roll(domain.StatCount))
	d.art.Modifiers[stat] = -(1 + d.roll(4))

	count := 1 + d.roll(2)
	for i := 0; i < count; i++ {
		if c, power := registry.RandomCurseFor(d.art.Kind.Category, d.src); c != nil {
			d.art.SetCurse(c.ID, power)
		}
	}

	d.ledger.Drain()
	d.art.Cost = 0
}

// tryEgo rolls one ego from the table and applies it when the base kind
// is compatible and the budget clears its gate. A false return means
// "not done": the caller retries with a fresh roll.
func (d *designer) tryEgo(table []*egoType) bool {
	ego := table[d.roll(len(table))]
	if !ego.compatible(d.art.Kind) || d.potential() < ego.threshold {
		return false
	}
	d.theme = ego.name
	d.art.EgoName = ego.name
	ego.apply(d)
	return true
}

// chooseEgo picks and applies an ego type for a ring or amulet. The
// random retry loop is bounded; if every roll declines it falls back to
// the first compatible zero-threshold ego, which cannot decline.
func (d *designer) chooseEgo() {
	var table []*egoType
	switch d.art.Kind.Category {
	case domain.CategoryRing:
		table = ringEgos
	case domain.CategoryAmulet:
		table = amuletEgos
	default:
		panic(fmt.Sprintf("design: no ego table for category %s", d.art.Kind.Category))
	}

	for i := 0; i < EgoMaxAttempts; i++ {
		if d.tryEgo(table) {
			return
		}
		metrics.EgoRetries.Inc()
	}

	for _, ego := range table {
		if ego.threshold == 0 && ego.compatible(d.art.Kind) {
			d.theme = ego.name
			d.art.EgoName = ego.name
			ego.apply(d)
			return
		}
	}
}
