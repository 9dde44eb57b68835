package domain

// Activation references an entry in the activation registry.
// ActivationNone means the item has no activation.
type Activation int

// ActivationNone is the zero activation reference.
const ActivationNone Activation = 0

// Artifact is an item-in-progress: either a unique artifact record or an
// ordinary object record with ego-level overrides (rings and amulets).
// It references exactly one read-only base kind and owns its sparse
// brand/slay/curse tables.
type Artifact struct {
	Kind *ObjectKind

	Name        string
	EgoName     string
	Description string

	// Combat numbers. BaseAC and the dice start from the kind and may be
	// modified during design.
	ToHit     int
	ToDam     int
	ToAC      int
	BaseAC    int
	DiceCount int
	DiceSides int
	Weight    int
	Cost      int

	Modifiers [ModMax]int
	Flags     FlagSet

	// ResLevel holds per-element resistance levels (lower is stronger,
	// ResBaseline is neutral). IgnoreElem marks proofing against an
	// element's side effects.
	ResLevel   [ElemMax]int
	IgnoreElem [ElemMax]bool

	Brands map[Brand]int
	Slays  map[Slay]int
	Curses map[Curse]int

	Activation     Activation
	RechargeBase   int
	RechargeDice   int
	RechargeSides  int

	MinDepth int
	MaxDepth int
	Rarity   int

	// Unique is true for artifact records; false for ego jewellery, which
	// uses incremental property pricing.
	Unique bool
}

// NewArtifact returns a freshly zeroed item-in-progress for the given
// base kind.
func NewArtifact(kind *ObjectKind, unique bool) *Artifact {
	a := &Artifact{
		Kind:      kind,
		ToHit:     kind.ToHit,
		ToDam:     kind.ToDam,
		ToAC:      kind.ToAC,
		BaseAC:    kind.BaseAC,
		DiceCount: kind.DiceCount,
		DiceSides: kind.DiceSides,
		Weight:    kind.Weight,
		Cost:      kind.Cost,
		Unique:    unique,
	}
	for e := Element(0); e < ElemMax; e++ {
		a.ResLevel[e] = ResBaseline
	}
	return a
}

// SetBrand records a brand multiplier; a zero or baseline multiplier
// removes the entry, freeing the table when it empties.
func (a *Artifact) SetBrand(b Brand, mult int) {
	if mult <= MultBase {
		if a.Brands != nil {
			delete(a.Brands, b)
			if len(a.Brands) == 0 {
				a.Brands = nil
			}
		}
		return
	}
	if a.Brands == nil {
		a.Brands = make(map[Brand]int)
	}
	a.Brands[b] = mult
}

// SetSlay records a slay multiplier with the same removal rule as SetBrand.
func (a *Artifact) SetSlay(s Slay, mult int) {
	if mult <= MultBase {
		if a.Slays != nil {
			delete(a.Slays, s)
			if len(a.Slays) == 0 {
				a.Slays = nil
			}
		}
		return
	}
	if a.Slays == nil {
		a.Slays = make(map[Slay]int)
	}
	a.Slays[s] = mult
}

// SetCurse records a curse power; zero power removes the entry.
func (a *Artifact) SetCurse(c Curse, power int) {
	if power <= 0 {
		if a.Curses != nil {
			delete(a.Curses, c)
			if len(a.Curses) == 0 {
				a.Curses = nil
			}
		}
		return
	}
	if a.Curses == nil {
		a.Curses = make(map[Curse]int)
	}
	a.Curses[c] = power
}

// HasBrand reports whether a brand entry with a real multiplier exists.
func (a *Artifact) HasBrand(b Brand) bool {
	return a.Brands[b] > 0
}

// HasSlay reports whether a slay entry with a real multiplier exists.
func (a *Artifact) HasSlay(s Slay) bool {
	return a.Slays[s] > 0
}

// Cursed reports whether the item carries any curse or a zeroed cost,
// which downstream naming treats as cursed.
func (a *Artifact) Cursed() bool {
	return len(a.Curses) > 0 || a.Cost == 0
}

// Clone returns a deep copy of the record. Used by tests and by the
// corruption pass when weighing outcomes.
func (a *Artifact) Clone() *Artifact {
	c := *a
	if a.Brands != nil {
		c.Brands = make(map[Brand]int, len(a.Brands))
		for k, v := range a.Brands {
			c.Brands[k] = v
		}
	}
	if a.Slays != nil {
		c.Slays = make(map[Slay]int, len(a.Slays))
		for k, v := range a.Slays {
			c.Slays[k] = v
		}
	}
	if a.Curses != nil {
		c.Curses = make(map[Curse]int, len(a.Curses))
		for k, v := range a.Curses {
			c.Curses[k] = v
		}
	}
	return &c
}
