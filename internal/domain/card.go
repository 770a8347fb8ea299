package domain

// Rarity tiers, 1 (most common) through 5 (rarest)
const (
	RarityCommon    = 1
	RarityRare      = 2
	RarityEpic      = 3
	RarityLegendary = 4
	RarityMythic    = 5
)

const (
	RarityMin = RarityCommon
	RarityMax = RarityMythic
)

// RareTierThreshold is the lowest rarity counted as "rare" for
// leaderboard ranking (4-star and up).
const RareTierThreshold = RarityLegendary

// Card is an immutable catalog entry. Cards are created once at seed
// time and never mutated or deleted at runtime.
type Card struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Rarity      int    `json:"rarity"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
	Health      int    `json:"health"`
	Melee       int    `json:"melee"`
	Ranged      int    `json:"ranged"`
	Special     int    `json:"special"`
}

// TotalPower returns the sum of the card's four stat fields.
func (c Card) TotalPower() int {
	return c.Health + c.Melee + c.Ranged + c.Special
}

// ValidRarity reports whether tier is one of the five catalog tiers.
func ValidRarity(tier int) bool {
	return tier >= RarityMin && tier <= RarityMax
}
