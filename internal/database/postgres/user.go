package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pehenyshka/piratecards/internal/domain"
)

// UserRepository implements the user ledger repository for PostgreSQL.
//
// The consume operations are single conditional statements so concurrent
// draws for the same user cannot double-apply a bonus or drive the
// credit count negative, even without an application-level lock.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetUser returns nil, nil when the user does not exist
func (r *UserRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, registered_at, last_draw, daily_claimed_on, rarity_bonus, extra_draws
		FROM users
		WHERE user_id = $1
	`

	var user domain.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.RegisteredAt, &user.LastDraw,
		&user.DailyClaimedOn, &user.RarityBonus, &user.ExtraDraws,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &user, nil
}

// UpsertUser registers a user. Re-registering an existing ID only
// refreshes the username; the ledger fields are never touched.
func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (user_id, username, registered_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET username = COALESCE(NULLIF(EXCLUDED.username, ''), users.username)
	`

	registeredAt := user.RegisteredAt
	if registeredAt.IsZero() {
		registeredAt = time.Now()
	}

	if _, err := r.db.Exec(ctx, query, user.ID, user.Username, registeredAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertUser, err)
	}
	return nil
}

// UpdateLastDraw stamps the cooldown anchor
func (r *UserRepository) UpdateLastDraw(ctx context.Context, userID string, timestamp time.Time) error {
	query := `UPDATE users SET last_draw = $1 WHERE user_id = $2`

	tag, err := r.db.Exec(ctx, query, timestamp, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateLastDraw, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateLastDraw, domain.ErrUserNotFound)
	}
	return nil
}

// ConsumeRarityBonus atomically reads the active bonus, resets it to
// zero and returns the pre-reset value.
func (r *UserRepository) ConsumeRarityBonus(ctx context.Context, userID string) (float64, error) {
	query := `
		WITH prev AS (
			SELECT rarity_bonus FROM users WHERE user_id = $1 FOR UPDATE
		)
		UPDATE users SET rarity_bonus = 0
		FROM prev
		WHERE users.user_id = $1
		RETURNING prev.rarity_bonus
	`

	var bonus float64
	err := r.db.QueryRow(ctx, query, userID).Scan(&bonus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToConsumeBonus, err)
	}
	return bonus, nil
}

// ConsumeExtraDraw decrements the credit count by one if positive.
// Returns false with no mutation when no credits remain.
func (r *UserRepository) ConsumeExtraDraw(ctx context.Context, userID string) (bool, error) {
	query := `
		UPDATE users SET extra_draws = extra_draws - 1
		WHERE user_id = $1 AND extra_draws > 0
	`

	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToConsumeCredit, err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetDailyClaim records the claim date and applies the reward in one
// conditional statement. Zero rows affected means the user already
// claimed today (or on a later date).
func (r *UserRepository) SetDailyClaim(ctx context.Context, userID, claimDate string, kind domain.RewardKind) error {
	var query string
	switch kind {
	case domain.RewardRarityBoost:
		query = `
			UPDATE users SET daily_claimed_on = $2, rarity_bonus = $3
			WHERE user_id = $1 AND (daily_claimed_on = '' OR daily_claimed_on < $2)
		`
	case domain.RewardExtraDraw:
		query = `
			UPDATE users SET daily_claimed_on = $2, extra_draws = $3
			WHERE user_id = $1 AND (daily_claimed_on = '' OR daily_claimed_on < $2)
		`
	default:
		return domain.ErrInvalidRewardKind
	}

	var reward any
	if kind == domain.RewardRarityBoost {
		reward = domain.DailyRarityBonusAmount
	} else {
		reward = domain.DailyExtraDrawCredits
	}

	tag, err := r.db.Exec(ctx, query, userID, claimDate, reward)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDailyClaim, err)
	}
	if tag.RowsAffected() == 0 {
		exists, err := r.userExists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrUserNotFound
		}
		return domain.ErrAlreadyClaimed
	}
	return nil
}

// ResetExpiredBonuses zeroes bonus and credits for every user whose
// claim date differs from keepDate. Safe to run repeatedly.
func (r *UserRepository) ResetExpiredBonuses(ctx context.Context, keepDate string) (int64, error) {
	query := `
		UPDATE users SET rarity_bonus = 0, extra_draws = 0
		WHERE daily_claimed_on <> $1 AND (rarity_bonus <> 0 OR extra_draws <> 0)
	`

	tag, err := r.db.Exec(ctx, query, keepDate)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToResetBonuses, err)
	}
	return tag.RowsAffected(), nil
}

func (r *UserRepository) userExists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return exists, nil
}
