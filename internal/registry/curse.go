package registry

import (
	"fmt"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/rng"
)

// CurseDef is one entry in the curse registry.
type CurseDef struct {
	ID   domain.Curse
	Name string

	// Allowed lists the equipment categories the curse may appear on.
	Allowed []domain.EquipCategory

	// MinPower and MaxPower bound the rolled curse power.
	MinPower int
	MaxPower int
}

// AllowedOn reports whether the curse may appear on the given category.
func (c *CurseDef) AllowedOn(cat domain.EquipCategory) bool {
	for _, a := range c.Allowed {
		if a == cat {
			return true
		}
	}
	return false
}

func allCategories() []domain.EquipCategory {
	cats := make([]domain.EquipCategory, 0, domain.CategoryMax)
	for c := domain.EquipCategory(0); c < domain.CategoryMax; c++ {
		cats = append(cats, c)
	}
	return cats
}

func weaponCategories() []domain.EquipCategory {
	return []domain.EquipCategory{domain.CategoryMeleeWeapon, domain.CategoryLauncher}
}

var curses = []*CurseDef{
	{ID: domain.CurseTeleport, Name: "teleportation", Allowed: allCategories(), MinPower: 10, MaxPower: 40},
	{ID: domain.CurseParalysis, Name: "paralysis", Allowed: allCategories(), MinPower: 20, MaxPower: 60},
	{ID: domain.CurseDrainLife, Name: "drain life", Allowed: allCategories(), MinPower: 15, MaxPower: 50},
	{ID: domain.CurseDrainMana, Name: "drain mana", Allowed: []domain.EquipCategory{domain.CategoryHeadgear, domain.CategoryRing, domain.CategoryAmulet}, MinPower: 15, MaxPower: 50},
	{ID: domain.CurseAttractDemons, Name: "attract demons", Allowed: allCategories(), MinPower: 10, MaxPower: 35},
	{ID: domain.CurseAttractUndead, Name: "attract undead", Allowed: allCategories(), MinPower: 10, MaxPower: 35},
	{ID: domain.CursePoisonVictim, Name: "poison victim", Allowed: weaponCategories(), MinPower: 10, MaxPower: 45},
	{ID: domain.CurseCuts, Name: "cuts", Allowed: weaponCategories(), MinPower: 10, MaxPower: 40},
	{ID: domain.CurseHallucination, Name: "hallucination", Allowed: []domain.EquipCategory{domain.CategoryHeadgear, domain.CategoryAmulet, domain.CategoryRing}, MinPower: 15, MaxPower: 45},
	{ID: domain.CurseHunger, Name: "hunger", Allowed: allCategories(), MinPower: 5, MaxPower: 25},
	{ID: domain.CurseBurning, Name: "burning up", Allowed: []domain.EquipCategory{domain.CategoryBodyArmor, domain.CategoryCloak, domain.CategoryShield}, MinPower: 10, MaxPower: 40},
	{ID: domain.CurseChilling, Name: "chilled to the bone", Allowed: []domain.EquipCategory{domain.CategoryBodyArmor, domain.CategoryCloak, domain.CategoryShield}, MinPower: 10, MaxPower: 40},
}

var cursesByName = func() map[string]*CurseDef {
	m := make(map[string]*CurseDef, len(curses))
	for _, c := range curses {
		m[c.Name] = c
	}
	return m
}()

// CurseByName returns the named curse. Unknown names panic; theme tables
// referring to a missing curse are corrupt data.
func CurseByName(name string) *CurseDef {
	c, ok := cursesByName[name]
	if !ok {
		panic(fmt.Sprintf("registry: unknown curse %q", name))
	}
	return c
}

// CurseByID returns the curse for an id, or nil.
func CurseByID(id domain.Curse) *CurseDef {
	for _, c := range curses {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// RandomCurseFor picks a curse legal for the category and rolls its
// power. Returns nil only if no curse fits, which cannot happen with the
// default table.
func RandomCurseFor(cat domain.EquipCategory, src rng.Source) (*CurseDef, int) {
	var legal []*CurseDef
	for _, c := range curses {
		if c.AllowedOn(cat) {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		return nil, 0
	}
	c := legal[rng.RandInt0(src, len(legal))]
	return c, rng.RandRange(src, c.MinPower, c.MaxPower)
}
