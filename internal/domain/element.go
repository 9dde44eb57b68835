package domain

// Element enumerates the damage elements an item can resist or be proofed
// against. The first four are the "basic" elements that also have
// per-element ignore flags and brands.
type Element int

const (
	ElemAcid Element = iota
	ElemElectricity
	ElemFire
	ElemCold
	ElemPoison
	ElemLight
	ElemDark
	ElemSound
	ElemShards
	ElemNexus
	ElemNether
	ElemChaos
	ElemDisenchant

	ElemMax
)

// BasicElemCount is the number of basic elements (acid, electricity,
// fire, cold) at the front of the element enum.
const BasicElemCount = 4

// Resistance levels. Lower is stronger: ResBaseline means no resistance,
// 0 means immunity, above baseline is a vulnerability.
const (
	ResBaseline = 100
	ResMin      = 0
	ResMax      = 200
)

// IsBasic reports whether the element is one of the basic four.
func (e Element) IsBasic() bool {
	return e >= ElemAcid && e < Element(BasicElemCount)
}

// String returns a human-readable element name.
func (e Element) String() string {
	switch e {
	case ElemAcid:
		return "acid"
	case ElemElectricity:
		return "electricity"
	case ElemFire:
		return "fire"
	case ElemCold:
		return "cold"
	case ElemPoison:
		return "poison"
	case ElemLight:
		return "light"
	case ElemDark:
		return "dark"
	case ElemSound:
		return "sound"
	case ElemShards:
		return "shards"
	case ElemNexus:
		return "nexus"
	case ElemNether:
		return "nether"
	case ElemChaos:
		return "chaos"
	case ElemDisenchant:
		return "disenchantment"
	default:
		return "unknown"
	}
}

// ClampRes bounds a resistance level to the legal range.
func ClampRes(level int) int {
	if level < ResMin {
		return ResMin
	}
	if level > ResMax {
		return ResMax
	}
	return level
}
