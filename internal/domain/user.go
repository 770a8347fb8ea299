package domain

import "time"

// User is the per-user mutable ledger row. The ID is an opaque
// identifier supplied by the caller and already trusted.
type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	RegisteredAt   time.Time  `json:"registered_at"`
	LastDraw       *time.Time `json:"last_draw,omitempty"`
	DailyClaimedOn string     `json:"daily_claimed_on,omitempty"` // calendar date, empty when never claimed
	RarityBonus    float64    `json:"rarity_bonus"`
	ExtraDraws     int        `json:"extra_draws"`
}

// Acquisition links a user to a card they obtained. Records are
// append-only; collections and stats are aggregations over them.
type Acquisition struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	CardID     int       `json:"card_id"`
	ObtainedAt time.Time `json:"obtained_at"`
}

// OwnedCard is a card joined with its acquisition record, as returned
// by collection listings.
type OwnedCard struct {
	Card
	ObtainedAt time.Time `json:"obtained_at"`
}

// DrawResult describes one successful draw.
type DrawResult struct {
	Card          Card    `json:"card"`
	FirstDraw     bool    `json:"first_draw"`
	UsedExtraDraw bool    `json:"used_extra_draw"`
	BonusApplied  float64 `json:"bonus_applied"`
}
