package catalog

import "time"

// Cache sizing for the by-rarity card cache. The catalog is
// near-static, so entries can live a while.
const (
	CacheSize = 16
	CacheTTL  = 10 * time.Minute
)

// Error context messages
const (
	ErrContextCountCards  = "failed to count cards"
	ErrContextInsertCards = "failed to insert seed cards"
	ErrContextGetByRarity = "failed to get cards by rarity"
	ErrContextGetByID     = "failed to get card by id"
)

// Log messages
const (
	LogMsgSeedSkipped   = "Card catalog already seeded, skipping"
	LogMsgSeedCompleted = "Card catalog seeded"
	LogMsgEmptyTierHit  = "Rarity tier has no cards"
)
