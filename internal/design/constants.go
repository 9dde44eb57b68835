package design

// Budget allocation.
const (
	// BasePotential is the floor every designed item starts from before
	// depth and kind level scale it up.
	BasePotential = 800

	// PotentialPerDepth and PotentialPerLevel scale initial potential.
	PotentialPerDepth = 45
	PotentialPerLevel = 20
)

// Haggling loop tuning.
const (
	// HaggleFloor ends the main haggling loop once potential drops below it.
	HaggleFloor = 300

	// HaggleMaxIterations caps the main haggling loop.
	HaggleMaxIterations = 20

	// BigTicketThreshold gates the powerful binary-property pass.
	BigTicketThreshold = 2000

	// SecondaryBonusFloor forces the secondary numeric bonus pass even
	// without the coin flip.
	SecondaryBonusFloor = 2750

	// LiquidationThreshold triggers the clean-out-the-wallet spend.
	LiquidationThreshold = 500
)

// Enhanced dice tuning.
const (
	// DiceShareCap bounds the per-call share when the divisor exceeds one.
	DiceShareCap = 1000

	// DiceCreditMinimum is guaranteed when buying dice on credit.
	DiceCreditMinimum = 500

	// DiceGrowthIterations bounds one enhanced-dice growth loop.
	DiceGrowthIterations = 5
)

// Corruption pass tuning.
const (
	// TerribleOneIn is the chance a finished item is made terrible.
	TerribleOneIn = 12

	// TerribleActivationStripPercent strips the activation after the
	// wheel rounds.
	TerribleActivationStripPercent = 80
)

// Jewellery ego selection.
const (
	// EgoMaxAttempts bounds the random retry loop before falling back to
	// the first ego the item can actually afford.
	EgoMaxAttempts = 50
)
