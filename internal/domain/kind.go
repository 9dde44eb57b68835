package domain

// EquipCategory is the equipment slot category a base kind belongs to.
// Theme selection dispatches on it.
type EquipCategory int

const (
	CategoryMeleeWeapon EquipCategory = iota
	CategoryLauncher
	CategoryBodyArmor
	CategoryShield
	CategoryBoots
	CategoryCloak
	CategoryHeadgear
	CategoryGloves
	CategoryRing
	CategoryAmulet

	CategoryMax
)

// String returns a human-readable category name.
func (c EquipCategory) String() string {
	switch c {
	case CategoryMeleeWeapon:
		return "melee weapon"
	case CategoryLauncher:
		return "launcher"
	case CategoryBodyArmor:
		return "body armor"
	case CategoryShield:
		return "shield"
	case CategoryBoots:
		return "boots"
	case CategoryCloak:
		return "cloak"
	case CategoryHeadgear:
		return "headgear"
	case CategoryGloves:
		return "gloves"
	case CategoryRing:
		return "ring"
	case CategoryAmulet:
		return "amulet"
	default:
		return "unknown"
	}
}

// ParseEquipCategory resolves a category from its String form.
func ParseEquipCategory(s string) (EquipCategory, bool) {
	for c := EquipCategory(0); c < CategoryMax; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// IsWeapon reports whether items of this category carry slays, brands and
// damage dice.
func (c EquipCategory) IsWeapon() bool {
	return c == CategoryMeleeWeapon
}

// IsArmor reports whether items of this category are armor pieces.
func (c EquipCategory) IsArmor() bool {
	switch c {
	case CategoryBodyArmor, CategoryShield, CategoryBoots,
		CategoryCloak, CategoryHeadgear, CategoryGloves:
		return true
	}
	return false
}

// IsJewellery reports whether this category uses ego-type theming.
func (c EquipCategory) IsJewellery() bool {
	return c == CategoryRing || c == CategoryAmulet
}

// ObjectKind is a read-only base item template. The design engine consumes
// these; it never defines or mutates them.
type ObjectKind struct {
	TVal     int           `json:"tval"`
	SVal     int           `json:"sval"`
	Name     string        `json:"name"`
	Category EquipCategory `json:"category"`

	Level     int `json:"level"`
	AllocProb int `json:"alloc_prob"`
	AllocMin  int `json:"alloc_min"`
	AllocMax  int `json:"alloc_max"`

	BaseAC    int `json:"base_ac"`
	DiceCount int `json:"dice_count"`
	DiceSides int `json:"dice_sides"`
	ToHit     int `json:"to_hit"`
	ToDam     int `json:"to_dam"`
	ToAC      int `json:"to_ac"`

	Weight int `json:"weight"`
	Cost   int `json:"cost"`

	// Throwing marks melee weapons balanced for throwing; only these may
	// receive perfect balance during haggling.
	Throwing bool `json:"throwing,omitempty"`

	// MaxPotential is the design cap for this kind. An item's recorded
	// maximum potential never exceeds it.
	MaxPotential int `json:"max_potential"`
}
