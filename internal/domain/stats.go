package domain

import "time"

// AggregateStats is the storage-level aggregation over one user's
// acquisitions.
type AggregateStats struct {
	TotalCards     int `json:"total_cards"`
	TotalPower     int `json:"total_power"`
	LegendaryCards int `json:"legendary_cards"` // tier 4
	MythicCards    int `json:"mythic_cards"`    // tier 5
}

// CollectionSummary describes a user's collection for display.
type CollectionSummary struct {
	TotalCards     int         `json:"total_cards"`
	TotalPower     int         `json:"total_power"`
	CountsByRarity map[int]int `json:"counts_by_rarity"`
	DistinctCards  int         `json:"distinct_cards"`
}

// ProfileStats is the per-user profile view.
type ProfileStats struct {
	UserID         string     `json:"user_id"`
	Username       string     `json:"username"`
	DaysPlaying    int        `json:"days_playing"`
	TotalCards     int        `json:"total_cards"`
	TotalPower     int        `json:"total_power"`
	LegendaryCards int        `json:"legendary_cards"`
	MythicCards    int        `json:"mythic_cards"`
	LastDraw       *time.Time `json:"last_draw,omitempty"`
}

// LeaderboardEntry is one row of the top-players ranking, ordered by
// (rare card count desc, total power desc).
type LeaderboardEntry struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	TotalCards int    `json:"total_cards"`
	TotalPower int    `json:"total_power"`
	RareCards  int    `json:"rare_cards"`
}
