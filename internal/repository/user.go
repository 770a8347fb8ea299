package repository

import (
	"context"
	"time"

	"github.com/pehenyshka/piratecards/internal/domain"
)

// User defines the interface for user ledger persistence.
//
// The consume operations must be implemented as single atomic steps
// (conditional row updates) so that concurrent draws for the same user
// cannot double-apply a bonus or drive credits negative.
type User interface {
	// GetUser returns nil, nil when the user does not exist.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// UpsertUser registers a user. Re-registering an existing ID is a
	// no-op apart from refreshing the username.
	UpsertUser(ctx context.Context, user *domain.User) error

	UpdateLastDraw(ctx context.Context, userID string, timestamp time.Time) error

	// ConsumeRarityBonus atomically reads the active bonus, resets it to
	// zero and returns the pre-reset value.
	ConsumeRarityBonus(ctx context.Context, userID string) (float64, error)

	// ConsumeExtraDraw decrements the credit count by one if positive.
	// Returns false with no mutation when no credits remain.
	ConsumeExtraDraw(ctx context.Context, userID string) (bool, error)

	// SetDailyClaim records the claim date and applies the reward.
	SetDailyClaim(ctx context.Context, userID, claimDate string, kind domain.RewardKind) error

	// ResetExpiredBonuses zeroes bonus and credits for every user whose
	// claim date differs from keepDate. Returns the number of users
	// affected. Safe to run repeatedly.
	ResetExpiredBonuses(ctx context.Context, keepDate string) (int64, error)
}
