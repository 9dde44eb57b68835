package domain

// Flag is a boolean property on a designed item: sustains, protections,
// sensory abilities, and drawbacks carried as flags.
type Flag int

const (
	FlagSustainStrength Flag = iota
	FlagSustainIntelligence
	FlagSustainWisdom
	FlagSustainDexterity
	FlagSustainConstitution
	FlagSustainCharisma
	FlagFreeAction
	FlagHoldLife
	FlagRegeneration
	FlagSeeInvisible
	FlagTelepathy
	FlagSlowDigestion
	FlagFeatherFall
	FlagProtectBlindness
	FlagProtectConfusion
	FlagProtectFear
	FlagProtectStunning
	FlagPerfectBalance
	FlagBlessed
	FlagAggravation
	FlagDarkness
	FlagDrainExperience
	FlagTeleportation

	FlagMax
)

// SustainFor returns the sustain flag matching an ability stat.
// Calling it with a non-stat modifier is a programming error.
func SustainFor(stat Modifier) Flag {
	if !stat.IsStat() {
		panic("domain: SustainFor called with non-stat modifier " + stat.String())
	}
	return FlagSustainStrength + Flag(stat)
}

// IsSustain reports whether the flag is a stat sustain.
func (f Flag) IsSustain() bool {
	return f >= FlagSustainStrength && f <= FlagSustainCharisma
}

// IsProtective reports whether the flag is one the corruption pass may strip.
func (f Flag) IsProtective() bool {
	switch f {
	case FlagFreeAction, FlagHoldLife, FlagRegeneration, FlagSeeInvisible,
		FlagTelepathy, FlagProtectBlindness, FlagProtectConfusion,
		FlagProtectFear, FlagProtectStunning:
		return true
	}
	return f.IsSustain()
}

// FlagSet is a bit-set over Flag values. The zero value is empty.
type FlagSet struct {
	bits uint64
}

// Has reports whether the flag is set.
func (s FlagSet) Has(f Flag) bool {
	return s.bits&(1<<uint(f)) != 0
}

// Set turns the flag on.
func (s *FlagSet) Set(f Flag) {
	s.bits |= 1 << uint(f)
}

// Clear turns the flag off.
func (s *FlagSet) Clear(f Flag) {
	s.bits &^= 1 << uint(f)
}

// Bits returns the raw bit representation, used by persistence codecs.
func (s FlagSet) Bits() uint64 {
	return s.bits
}

// FlagSetFromBits rebuilds a set from its raw bit representation.
func FlagSetFromBits(bits uint64) FlagSet {
	return FlagSet{bits: bits}
}

// Count returns the number of set flags.
func (s FlagSet) Count() int {
	n := 0
	for f := Flag(0); f < FlagMax; f++ {
		if s.Has(f) {
			n++
		}
	}
	return n
}

// Equal reports whether two sets hold the same flags.
func (s FlagSet) Equal(other FlagSet) bool {
	return s.bits == other.bits
}
