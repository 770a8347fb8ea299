package domain

// RewardKind identifies one of the two mutually exclusive daily
// rewards. The set is closed; handle it exhaustively.
type RewardKind string

const (
	// RewardRarityBoost skews the next draw's rarity weights by
	// DailyRarityBonusAmount percentage points.
	RewardRarityBoost RewardKind = "rarity_boost"

	// RewardExtraDraw grants DailyExtraDrawCredits cooldown-bypass
	// credits.
	RewardExtraDraw RewardKind = "extra_draw"
)

// Valid reports whether k is a known reward kind.
func (k RewardKind) Valid() bool {
	switch k {
	case RewardRarityBoost, RewardExtraDraw:
		return true
	}
	return false
}

// DailyBonusOption is one entry of the static daily-reward menu.
type DailyBonusOption struct {
	Kind        RewardKind `json:"kind"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Emoji       string     `json:"emoji"`
}

// BonusStatus summarizes a user's active bonuses and today's claim
// availability.
type BonusStatus struct {
	RarityBonus  float64 `json:"rarity_bonus"`
	ExtraDraws   int     `json:"extra_draws"`
	ClaimedToday bool    `json:"claimed_today"`
	ClaimableNow bool    `json:"claimable_now"`
}
