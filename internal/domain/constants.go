package domain

import "time"

// DrawCooldownDuration is the minimum time between two ordinary draws
// for one user. The first-ever draw bypasses it.
const DrawCooldownDuration = 2 * time.Hour

// DateLayout is the calendar-date format used for daily-claim
// bookkeeping. Daily comparisons are date-only, derived from the
// caller's clock.
const DateLayout = "2006-01-02"

// DailyRarityBonusAmount is the rarity-weight bonus (in percentage
// points) granted by the daily rarity-boost reward. Consumed by the
// next successful draw.
const DailyRarityBonusAmount = 10.0

// DailyExtraDrawCredits is the number of cooldown-bypass credits
// granted by the daily extra-draw reward.
const DailyExtraDrawCredits = 1

// LeaderboardDefaultLimit caps leaderboard queries when the caller
// does not ask for a specific size.
const LeaderboardDefaultLimit = 10

// LeaderboardMaxLimit is the hard cap on leaderboard size.
const LeaderboardMaxLimit = 100

// DateOf formats an instant as a calendar date using DateLayout.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}
