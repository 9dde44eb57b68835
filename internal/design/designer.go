package design

import (
	"log/slog"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
	"github.com/NickMcConnell/FAangband-sub006/internal/rng"
)

// designer carries the state of one item design session: the
// item-in-progress, its ledger, and the random source. All pipeline
// stages are methods on it.
type designer struct {
	art    *domain.Artifact
	ledger *Ledger
	src    rng.Source
	log    *slog.Logger

	// theme records which bundle ran, for logging and metrics.
	theme string

	// wheel records the corruption outcomes that ran, if any.
	wheel []string

	// haggleRounds counts main-loop iterations, for logging.
	haggleRounds int
}

func newDesigner(art *domain.Artifact, ledger *Ledger, src rng.Source, log *slog.Logger) *designer {
	if log == nil {
		log = slog.Default()
	}
	return &designer{art: art, ledger: ledger, src: src, log: log}
}

func (d *designer) potential() int {
	return d.ledger.Potential()
}

func (d *designer) roll(n int) int {
	return rng.RandInt0(d.src, n)
}

func (d *designer) randInt1(n int) int {
	return rng.RandInt1(d.src, n)
}

func (d *designer) oneIn(n int) bool {
	return rng.OneIn(d.src, n)
}

func (d *designer) percent(p int) bool {
	return rng.PercentChance(d.src, p)
}

// grantActivation attaches a named activation and its recharge timing
// without touching the ledger. Thematic activations are a freebie
// layered on top of the budget system.
func (d *designer) grantActivation(name string) {
	def := registry.ActivationByName(name)
	d.art.Activation = def.ID
	d.art.RechargeBase = def.RechargeBase
	d.art.RechargeDice = def.RechargeDice
	d.art.RechargeSides = def.RechargeSides
}

// addCurse appends a named curse with a rolled power and credits the
// budget with the compensation amount.
func (d *designer) addCurse(name string, maxPower, refund int) {
	def := registry.CurseByName(name)
	power := d.randInt1(maxPower)
	if power < def.MinPower {
		power = def.MinPower
	}
	d.art.SetCurse(def.ID, power)
	d.ledger.Refund(refund)
}
