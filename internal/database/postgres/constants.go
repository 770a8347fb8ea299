package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToGetUser        = "failed to get user"
	ErrMsgFailedToUpsertUser     = "failed to upsert user"
	ErrMsgFailedToUpdateLastDraw = "failed to update last draw"
	ErrMsgFailedToConsumeBonus   = "failed to consume rarity bonus"
	ErrMsgFailedToConsumeCredit  = "failed to consume extra draw"
	ErrMsgFailedToSetDailyClaim  = "failed to set daily claim"
	ErrMsgFailedToResetBonuses   = "failed to reset expired bonuses"
	ErrMsgUserNotFound           = "user not found"
)

// Error Messages - Card Operations
const (
	ErrMsgFailedToGetCardsByRarity = "failed to get cards by rarity"
	ErrMsgFailedToGetCardByID      = "failed to get card by id"
	ErrMsgFailedToCountCards       = "failed to count cards"
	ErrMsgFailedToInsertCards      = "failed to insert cards"
	ErrMsgFailedToScanCard         = "failed to scan card"
)

// Error Messages - Acquisition Operations
const (
	ErrMsgFailedToInsertAcquisition = "failed to insert acquisition"
	ErrMsgFailedToListAcquisitions  = "failed to list acquisitions"
	ErrMsgFailedToCountAcquisitions = "failed to count acquisitions"
	ErrMsgFailedToAggregateStats    = "failed to aggregate stats"
	ErrMsgFailedToGetLeaderboard    = "failed to get leaderboard"
	ErrMsgFailedToScanRow           = "failed to scan row"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)
