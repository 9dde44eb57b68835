package domain

// Brand identifies an elemental damage multiplier on a weapon.
type Brand int

const (
	BrandAcid Brand = iota
	BrandElectricity
	BrandFire
	BrandCold
	BrandPoison

	BrandMax
)

// String returns a human-readable brand name.
func (b Brand) String() string {
	switch b {
	case BrandAcid:
		return "acid brand"
	case BrandElectricity:
		return "lightning brand"
	case BrandFire:
		return "flame brand"
	case BrandCold:
		return "frost brand"
	case BrandPoison:
		return "poison brand"
	default:
		return "unknown brand"
	}
}

// Slay identifies a monster-category damage multiplier on a weapon.
type Slay int

const (
	SlayAnimal Slay = iota
	SlayEvil
	SlayUndead
	SlayDemon
	SlayOrc
	SlayTroll
	SlayGiant
	SlayDragon

	SlayMax
)

// String returns a human-readable slay name.
func (s Slay) String() string {
	switch s {
	case SlayAnimal:
		return "slay animal"
	case SlayEvil:
		return "slay evil"
	case SlayUndead:
		return "slay undead"
	case SlayDemon:
		return "slay demon"
	case SlayOrc:
		return "slay orc"
	case SlayTroll:
		return "slay troll"
	case SlayGiant:
		return "slay giant"
	case SlayDragon:
		return "slay dragon"
	default:
		return "unknown slay"
	}
}

// MultBase is the neutral damage multiplier (x1.0) in tenths. A brand or
// slay entry stores the full multiplier, e.g. 20 for double damage.
// Absence of an entry means "no preference", not multiplier zero.
const MultBase = 10

// Curse identifies an entry in the curse registry. A cursed item maps
// curse ids to a rolled power.
type Curse int

const (
	CurseTeleport Curse = iota
	CurseParalysis
	CurseDrainLife
	CurseDrainMana
	CurseAttractDemons
	CurseAttractUndead
	CursePoisonVictim
	CurseCuts
	CurseHallucination
	CurseHunger
	CurseBurning
	CurseChilling

	CurseMax
)
