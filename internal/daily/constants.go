package daily

// Static menu copy for the two daily rewards.
const (
	RarityBoostName        = "Card luck"
	RarityBoostDescription = "Raises the chance of rare card drops by 10% for the rest of the day"
	RarityBoostEmoji       = "🍀"

	ExtraDrawName        = "Extra card"
	ExtraDrawDescription = "Grants one extra card draw today"
	ExtraDrawEmoji       = "⚡"
)

// Error context messages
const (
	ErrContextClaim       = "failed to claim daily bonus"
	ErrContextBonusStatus = "failed to read bonus status"
	ErrContextSweep       = "failed to run nightly sweep"
)

// Log messages
const (
	LogMsgSweepStarted  = "Nightly sweep started"
	LogMsgSweepFinished = "Nightly sweep finished"
)
