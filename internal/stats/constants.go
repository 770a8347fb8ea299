package stats

// Error context messages
const (
	ErrContextGetUser     = "failed to get user"
	ErrContextAggregate   = "failed to aggregate user stats"
	ErrContextListCards   = "failed to list acquisitions"
	ErrContextLeaderboard = "failed to load leaderboard"
)

// Error messages
const (
	ErrMsgUserIDRequired = "user id is required"
)
