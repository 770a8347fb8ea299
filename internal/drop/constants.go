package drop

// Error context messages
const (
	ErrContextRegister      = "failed to register user"
	ErrContextCountOwned    = "failed to count acquisitions"
	ErrContextCheckCooldown = "failed to check cooldown"
	ErrContextResolveTier   = "failed to resolve rarity tier"
	ErrContextSampleCard    = "failed to sample card"
	ErrContextRecordCard    = "failed to record acquisition"
	ErrContextRecordDraw    = "failed to record draw time"
	ErrContextConsumeCredit = "failed to consume extra draw credit"
	ErrContextConsumeBonus  = "failed to consume rarity bonus"
)

// Log messages
const (
	LogMsgDrawSucceeded = "Card drawn"
	LogMsgDrawDenied    = "Draw denied by cooldown"
	LogMsgEmptyTier     = "Draw failed on empty rarity tier"
)
