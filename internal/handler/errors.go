package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Draw error messages
	ErrMsgDrawFailed = "Failed to draw a card"

	// Daily bonus error messages
	ErrMsgClaimFailed     = "Failed to claim daily bonus"
	ErrMsgGetStatusFailed = "Failed to retrieve bonus status"

	// Collection error messages
	ErrMsgGetCollectionFailed  = "Failed to retrieve collection"
	ErrMsgGetProfileFailed     = "Failed to retrieve profile"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"

	// Admin error messages
	ErrMsgSweepFailed = "Failed to run bonus sweep"
)

// Success messages for API responses
const (
	MsgBonusClaimedSuccess = "Daily bonus claimed successfully"
	MsgSweepCompleted      = "Bonus sweep completed"
)
