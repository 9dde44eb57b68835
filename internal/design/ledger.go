// Package design implements the random equipment design engine: a
// budget-constrained generator that themes, haggles, occasionally
// corrupts and finally sanity-checks a magic item built on a base kind.
package design

// DebitPolicy selects how the ledger treats a purchase that exceeds the
// remaining budget.
type DebitPolicy int

const (
	// Strict rejects any purchase the budget cannot cover.
	Strict DebitPolicy = iota

	// Credit lets a purchase through by draining the budget to zero,
	// so cheap final buys still succeed when funds are nearly exhausted.
	Credit
)

// Ledger tracks the remaining design potential of one item. Its scope is
// exactly one design session; it must be recreated (or Reset) before the
// next item. Not safe for concurrent use, by construction: the pipeline
// is single threaded.
type Ledger struct {
	potential    int
	maxPotential int
	initial      int
}

// NewLedger returns a ledger holding the initial potential.
// maxPotential records the design ceiling and is never drawn from.
func NewLedger(initial, maxPotential int) *Ledger {
	return &Ledger{potential: initial, maxPotential: maxPotential, initial: initial}
}

// Debit attempts to spend cost from the remaining potential.
//
// A purchase succeeds outright only while potential strictly exceeds the
// cost; a property costing exactly the remaining potential is rejected
// unless bought on credit. Negative costs always succeed and enrich the
// budget. On credit, a too-expensive purchase drains potential to zero
// and succeeds anyway, unless the budget is already empty.
func (l *Ledger) Debit(cost int, policy DebitPolicy) bool {
	if l.potential > cost {
		l.potential -= cost
		return true
	}
	if policy == Credit && l.potential != 0 {
		l.potential = 0
		return true
	}
	return false
}

// Refund adds potential back, as when a curse or drawback is accepted in
// exchange for extra budget.
func (l *Ledger) Refund(amount int) {
	l.potential += amount
}

// Drain zeroes the budget and returns what was left.
func (l *Ledger) Drain() int {
	left := l.potential
	l.potential = 0
	return left
}

// Potential returns the remaining budget.
func (l *Ledger) Potential() int {
	return l.potential
}

// MaxPotential returns the recorded design ceiling.
func (l *Ledger) MaxPotential() int {
	return l.maxPotential
}

// Initial returns the potential the session started with.
func (l *Ledger) Initial() int {
	return l.initial
}

// Spent returns how much of the initial potential has been consumed.
// It can be negative when refunds outweigh spending.
func (l *Ledger) Spent() int {
	return l.initial - l.potential
}
