package ledger

import "time"

// User cache sizing: short-lived read cache in front of the
// repository, invalidated on every mutation.
const (
	UserCacheSize = 1024
	UserCacheTTL  = 30 * time.Second
)

// Error context messages for wrapped errors
const (
	ErrContextGetUser       = "failed to get user"
	ErrContextUpsertUser    = "failed to upsert user"
	ErrContextRecordDraw    = "failed to record draw"
	ErrContextConsumeBonus  = "failed to consume rarity bonus"
	ErrContextConsumeCredit = "failed to consume extra draw"
	ErrContextClaimDaily    = "failed to claim daily bonus"
	ErrContextResetBonuses  = "failed to reset expired bonuses"
)

// Log messages
const (
	LogMsgUserRegistered = "User registered"
	LogMsgDailyClaimed   = "Daily bonus claimed"
	LogMsgBonusesSwept   = "Expired daily bonuses reset"
	LogMsgBonusConsumed  = "Rarity bonus consumed"
	LogMsgCreditConsumed = "Extra draw credit consumed"
)
