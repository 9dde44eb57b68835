package domain

// Modifier indexes the numeric bonus array on a designed item. The first
// six entries are the ability stats; the rest are derived bonuses.
type Modifier int

const (
	ModStrength Modifier = iota
	ModIntelligence
	ModWisdom
	ModDexterity
	ModConstitution
	ModCharisma
	ModStealth
	ModSearching
	ModInfravision
	ModTunneling
	ModSpeed
	ModBlows
	ModShots
	ModMight
	ModMagicMastery
	ModLight

	ModMax
)

// StatCount is the number of ability stats at the front of the modifier array.
const StatCount = 6

// IsStat reports whether the modifier is one of the six ability stats.
func (m Modifier) IsStat() bool {
	return m >= ModStrength && m < Modifier(StatCount)
}

// String returns a human-readable modifier name.
func (m Modifier) String() string {
	switch m {
	case ModStrength:
		return "strength"
	case ModIntelligence:
		return "intelligence"
	case ModWisdom:
		return "wisdom"
	case ModDexterity:
		return "dexterity"
	case ModConstitution:
		return "constitution"
	case ModCharisma:
		return "charisma"
	case ModStealth:
		return "stealth"
	case ModSearching:
		return "searching"
	case ModInfravision:
		return "infravision"
	case ModTunneling:
		return "tunneling"
	case ModSpeed:
		return "speed"
	case ModBlows:
		return "extra blows"
	case ModShots:
		return "extra shots"
	case ModMight:
		return "extra might"
	case ModMagicMastery:
		return "magic mastery"
	case ModLight:
		return "light"
	default:
		return "unknown"
	}
}
