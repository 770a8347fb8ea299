package rarity

// ============================================================================
// Base Tier Weights
// ============================================================================

// Base rarity weights in percentage points. They sum to 100.
const (
	BaseWeightCommon    = 60.0 // tier 1
	BaseWeightRare      = 28.0 // tier 2
	BaseWeightEpic      = 9.0  // tier 3
	BaseWeightLegendary = 2.5  // tier 4
	BaseWeightMythic    = 0.5  // tier 5
)

// ============================================================================
// Bonus Distribution
// ============================================================================

// Shares of the bonus magnitude added to the rare tiers.
const (
	BonusShareMythic    = 0.3
	BonusShareLegendary = 0.7
)

// Shares of the bonus magnitude subtracted from the common tiers.
const (
	BonusShareCommon = 0.6
	BonusShareRare   = 0.3
	BonusShareEpic   = 0.1
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgNegativeBonus    = "bonus magnitude must be non-negative"
	ErrMsgDegenerateWeight = "all tier weights clamped to zero"
)
