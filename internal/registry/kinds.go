package registry

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/rng"
	"github.com/NickMcConnell/FAangband-sub006/internal/validation"
)

//go:embed data/kinds.json
var kindsData []byte

//go:embed data/kinds.schema.json
var kindsSchema []byte

// Sentinel errors for the kind table.
var (
	ErrDuplicateKind  = errors.New("duplicate tval/sval pair")
	ErrUnknownKind    = errors.New("unknown object kind")
	ErrEmptyCategory  = errors.New("no kinds in category")
	ErrInvalidKindSet = errors.New("invalid kind configuration")
)

type kindDef struct {
	TVal      int    `json:"tval"`
	SVal      int    `json:"sval"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Level     int    `json:"level"`
	AllocProb int    `json:"alloc_prob"`
	AllocMin  int    `json:"alloc_min"`
	AllocMax  int    `json:"alloc_max"`
	BaseAC    int    `json:"base_ac"`
	DiceCount int    `json:"dice_count"`
	DiceSides int    `json:"dice_sides"`
	ToHit     int    `json:"to_hit"`
	ToDam     int    `json:"to_dam"`
	ToAC      int    `json:"to_ac"`
	Weight    int    `json:"weight"`
	Cost      int    `json:"cost"`
	Throwing  bool   `json:"throwing"`
	MaxPot    int    `json:"max_potential"`
}

type kindsConfig struct {
	Version     string    `json:"version"`
	Description string    `json:"description"`
	Kinds       []kindDef `json:"kinds"`
}

var categoriesByName = map[string]domain.EquipCategory{}

func init() {
	for c := domain.EquipCategory(0); c < domain.CategoryMax; c++ {
		categoriesByName[c.String()] = c
	}
}

// KindTable is the read-only base item template database.
type KindTable struct {
	kinds      []*domain.ObjectKind
	byID       map[[2]int]*domain.ObjectKind
	byCategory map[domain.EquipCategory][]*domain.ObjectKind
}

// LoadKindTable parses and validates a kind data file.
func LoadKindTable(data, schema []byte) (*KindTable, error) {
	if err := validation.NewSchemaValidator().ValidateBytes(data, "kinds.schema.json", schema); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var cfg kindsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse kind configuration: %w", err)
	}
	if len(cfg.Kinds) == 0 {
		return nil, fmt.Errorf("%w: no kinds defined", ErrInvalidKindSet)
	}

	t := &KindTable{
		byID:       make(map[[2]int]*domain.ObjectKind, len(cfg.Kinds)),
		byCategory: make(map[domain.EquipCategory][]*domain.ObjectKind),
	}

	for _, def := range cfg.Kinds {
		cat, ok := categoriesByName[def.Category]
		if !ok {
			return nil, fmt.Errorf("%w: kind %q has unknown category %q", ErrInvalidKindSet, def.Name, def.Category)
		}
		id := [2]int{def.TVal, def.SVal}
		if _, dup := t.byID[id]; dup {
			return nil, fmt.Errorf("%w: %d/%d", ErrDuplicateKind, def.TVal, def.SVal)
		}
		k := &domain.ObjectKind{
			TVal:         def.TVal,
			SVal:         def.SVal,
			Name:         def.Name,
			Category:     cat,
			Level:        def.Level,
			AllocProb:    def.AllocProb,
			AllocMin:     def.AllocMin,
			AllocMax:     def.AllocMax,
			BaseAC:       def.BaseAC,
			DiceCount:    def.DiceCount,
			DiceSides:    def.DiceSides,
			ToHit:        def.ToHit,
			ToDam:        def.ToDam,
			ToAC:         def.ToAC,
			Weight:       def.Weight,
			Cost:         def.Cost,
			Throwing:     def.Throwing,
			MaxPotential: def.MaxPot,
		}
		t.kinds = append(t.kinds, k)
		t.byID[id] = k
		t.byCategory[cat] = append(t.byCategory[cat], k)
	}

	return t, nil
}

var (
	defaultKinds     *KindTable
	defaultKindsOnce sync.Once
)

// Kinds returns the embedded default kind table. The embedded data is
// part of the build; failing to load it is a programming error.
func Kinds() *KindTable {
	defaultKindsOnce.Do(func() {
		t, err := LoadKindTable(kindsData, kindsSchema)
		if err != nil {
			panic(fmt.Sprintf("registry: embedded kind data is invalid: %v", err))
		}
		defaultKinds = t
	})
	return defaultKinds
}

// KindFor returns the template for a tval/sval pair.
func (t *KindTable) KindFor(tval, sval int) (*domain.ObjectKind, error) {
	k, ok := t.byID[[2]int{tval, sval}]
	if !ok {
		return nil, fmt.Errorf("%w: %d/%d", ErrUnknownKind, tval, sval)
	}
	return k, nil
}

// KindByName returns the template with the given display name.
func (t *KindTable) KindByName(name string) (*domain.ObjectKind, error) {
	for _, k := range t.kinds {
		if k.Name == name {
			return k, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Categories returns the kinds in one equipment category.
func (t *KindTable) Categories(cat domain.EquipCategory) []*domain.ObjectKind {
	return t.byCategory[cat]
}

// RandomKind picks a random kind from the category, weighted by
// allocation probability and bounded by a maximum depth (0 = unbounded).
func (t *KindTable) RandomKind(cat domain.EquipCategory, maxDepth int, src rng.Source) (*domain.ObjectKind, error) {
	var pool []*domain.ObjectKind
	total := 0
	for _, k := range t.byCategory[cat] {
		if maxDepth > 0 && k.AllocMin > maxDepth {
			continue
		}
		pool = append(pool, k)
		total += k.AllocProb
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCategory, cat)
	}

	roll := rng.RandInt0(src, total)
	for _, k := range pool {
		roll -= k.AllocProb
		if roll < 0 {
			return k, nil
		}
	}
	return pool[len(pool)-1], nil
}
