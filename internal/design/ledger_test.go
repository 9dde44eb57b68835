package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebitStrictSuccess(t *testing.T) {
	l := NewLedger(1000, 5000)

	assert.True(t, l.Debit(400, Strict))
	assert.Equal(t, 600, l.Potential())

	assert.True(t, l.Debit(599, Strict))
	assert.Equal(t, 1, l.Potential())
}

func TestDebitStrictNeverIncreasesOnPositiveCost(t *testing.T) {
	l := NewLedger(2500, 5000)

	costs := []int{100, 700, 1, 2500, 0, 300, 9999, 150}
	for _, cost := range costs {
		before := l.Potential()
		ok := l.Debit(cost, Strict)
		if ok {
			assert.Equal(t, before-cost, l.Potential(), "cost %d", cost)
		} else {
			assert.Equal(t, before, l.Potential(), "failed debit of %d must not mutate", cost)
		}
		assert.LessOrEqual(t, l.Potential(), before)
	}
}

func TestDebitExactCostRejectedWithoutCredit(t *testing.T) {
	// The comparison is deliberately strict: a property costing exactly
	// the remaining potential fails.
	l := NewLedger(500, 5000)

	assert.False(t, l.Debit(500, Strict))
	assert.Equal(t, 500, l.Potential())

	assert.True(t, l.Debit(500, Credit))
	assert.Equal(t, 0, l.Potential())
}

func TestDebitNegativeCostRefunds(t *testing.T) {
	l := NewLedger(100, 5000)

	assert.True(t, l.Debit(-250, Strict))
	assert.Equal(t, 350, l.Potential())
}

func TestCreditDrainsToExactlyZero(t *testing.T) {
	for _, cost := range []int{350, 351, 1000, 100000} {
		l := NewLedger(350, 5000)
		assert.True(t, l.Debit(cost, Credit), "cost %d", cost)
		assert.Equal(t, 0, l.Potential(), "cost %d", cost)
	}
}

func TestCreditNoOpAtZero(t *testing.T) {
	l := NewLedger(0, 5000)

	assert.False(t, l.Debit(100, Credit))
	assert.Equal(t, 0, l.Potential())
}

func TestRefundDrainSpent(t *testing.T) {
	l := NewLedger(1000, 5000)

	l.Refund(200)
	assert.Equal(t, 1200, l.Potential())
	assert.Equal(t, -200, l.Spent())

	assert.Equal(t, 1200, l.Drain())
	assert.Equal(t, 0, l.Potential())
	assert.Equal(t, 1000, l.Spent())

	assert.Equal(t, 1000, l.Initial())
	assert.Equal(t, 5000, l.MaxPotential())
}
