package repository

import (
	"fmt"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
)

// ArtifactRecord is the stored form of a designed item. It references the
// base kind by name instead of embedding it, so records stay valid across
// kind table edits that do not rename kinds.
type ArtifactRecord struct {
	KindName    string `json:"kind_name"`
	Name        string `json:"name"`
	EgoName     string `json:"ego_name,omitempty"`
	Description string `json:"description,omitempty"`

	ToHit     int `json:"to_hit"`
	ToDam     int `json:"to_dam"`
	ToAC      int `json:"to_ac"`
	BaseAC    int `json:"base_ac"`
	DiceCount int `json:"dice_count"`
	DiceSides int `json:"dice_sides"`
	Weight    int `json:"weight"`
	Cost      int `json:"cost"`

	Modifiers [domain.ModMax]int  `json:"modifiers"`
	Flags     uint64              `json:"flags"`
	ResLevel  [domain.ElemMax]int `json:"res_level"`
	Ignore    []domain.Element    `json:"ignore,omitempty"`

	Brands map[domain.Brand]int `json:"brands,omitempty"`
	Slays  map[domain.Slay]int  `json:"slays,omitempty"`
	Curses map[domain.Curse]int `json:"curses,omitempty"`

	Activation    domain.Activation `json:"activation,omitempty"`
	RechargeBase  int               `json:"recharge_base,omitempty"`
	RechargeDice  int               `json:"recharge_dice,omitempty"`
	RechargeSides int               `json:"recharge_sides,omitempty"`

	MinDepth int `json:"min_depth"`
	MaxDepth int `json:"max_depth"`
	Rarity   int `json:"rarity"`

	Unique bool `json:"unique"`
}

// NewArtifactRecord flattens a designed item for storage.
func NewArtifactRecord(art *domain.Artifact) ArtifactRecord {
	rec := ArtifactRecord{
		KindName:      art.Kind.Name,
		Name:          art.Name,
		EgoName:       art.EgoName,
		Description:   art.Description,
		ToHit:         art.ToHit,
		ToDam:         art.ToDam,
		ToAC:          art.ToAC,
		BaseAC:        art.BaseAC,
		DiceCount:     art.DiceCount,
		DiceSides:     art.DiceSides,
		Weight:        art.Weight,
		Cost:          art.Cost,
		Modifiers:     art.Modifiers,
		Flags:         art.Flags.Bits(),
		ResLevel:      art.ResLevel,
		Activation:    art.Activation,
		RechargeBase:  art.RechargeBase,
		RechargeDice:  art.RechargeDice,
		RechargeSides: art.RechargeSides,
		MinDepth:      art.MinDepth,
		MaxDepth:      art.MaxDepth,
		Rarity:        art.Rarity,
		Unique:        art.Unique,
	}
	for e := domain.Element(0); e < domain.ElemMax; e++ {
		if art.IgnoreElem[e] {
			rec.Ignore = append(rec.Ignore, e)
		}
	}
	if len(art.Brands) > 0 {
		rec.Brands = make(map[domain.Brand]int, len(art.Brands))
		for b, mult := range art.Brands {
			rec.Brands[b] = mult
		}
	}
	if len(art.Slays) > 0 {
		rec.Slays = make(map[domain.Slay]int, len(art.Slays))
		for s, mult := range art.Slays {
			rec.Slays[s] = mult
		}
	}
	if len(art.Curses) > 0 {
		rec.Curses = make(map[domain.Curse]int, len(art.Curses))
		for c, power := range art.Curses {
			rec.Curses[c] = power
		}
	}
	return rec
}

// ToArtifact rebuilds the domain record, resolving the base kind against
// the given table.
func (r ArtifactRecord) ToArtifact(kinds *registry.KindTable) (*domain.Artifact, error) {
	kind, err := kinds.KindByName(r.KindName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrKindNotFound, r.KindName)
	}

	art := &domain.Artifact{
		Kind:          kind,
		Name:          r.Name,
		EgoName:       r.EgoName,
		Description:   r.Description,
		ToHit:         r.ToHit,
		ToDam:         r.ToDam,
		ToAC:          r.ToAC,
		BaseAC:        r.BaseAC,
		DiceCount:     r.DiceCount,
		DiceSides:     r.DiceSides,
		Weight:        r.Weight,
		Cost:          r.Cost,
		Modifiers:     r.Modifiers,
		Flags:         domain.FlagSetFromBits(r.Flags),
		ResLevel:      r.ResLevel,
		Activation:    r.Activation,
		RechargeBase:  r.RechargeBase,
		RechargeDice:  r.RechargeDice,
		RechargeSides: r.RechargeSides,
		MinDepth:      r.MinDepth,
		MaxDepth:      r.MaxDepth,
		Rarity:        r.Rarity,
		Unique:        r.Unique,
	}
	for _, e := range r.Ignore {
		if e >= 0 && e < domain.ElemMax {
			art.IgnoreElem[e] = true
		}
	}
	for b, mult := range r.Brands {
		art.SetBrand(b, mult)
	}
	for s, mult := range r.Slays {
		art.SetSlay(s, mult)
	}
	for c, power := range r.Curses {
		art.SetCurse(c, power)
	}
	return art, nil
}
