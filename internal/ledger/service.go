package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/pehenyshka/piratecards/internal/concurrency"
	"github.com/pehenyshka/piratecards/internal/domain"
	"github.com/pehenyshka/piratecards/internal/logger"
	"github.com/pehenyshka/piratecards/internal/repository"
)

// Service is the per-user mutable ledger: cooldown timestamp, active
// bonuses and daily-claim bookkeeping. All mutations for one user are
// serialized; different users proceed in parallel.
type Service interface {
	// GetOrCreate registers the user on first contact. Registration is
	// idempotent; an existing ID only refreshes the username.
	GetOrCreate(ctx context.Context, userID, username string, now time.Time) (*domain.User, error)

	// CanDraw reports whether the cooldown has elapsed. When it has
	// not, remaining carries the wait until the next ordinary draw.
	CanDraw(ctx context.Context, userID string, now time.Time) (bool, time.Duration, error)

	RecordDraw(ctx context.Context, userID string, now time.Time) error

	// ConsumeRarityBonus atomically reads and clears the active bonus,
	// returning the pre-reset value.
	ConsumeRarityBonus(ctx context.Context, userID string) (float64, error)

	// ConsumeExtraDraw spends one cooldown-bypass credit. Returns false
	// with no mutation when none remain.
	ConsumeExtraDraw(ctx context.Context, userID string) (bool, error)

	CanClaimDaily(ctx context.Context, userID, today string) (bool, error)

	// ClaimDaily records today's claim and applies exactly one reward.
	// A repeat claim the same day returns domain.ErrAlreadyClaimed.
	ClaimDaily(ctx context.Context, userID, today string, kind domain.RewardKind) error

	// ResetExpiredBonuses zeroes bonuses and credits for users whose
	// claim date is not today. Idempotent.
	ResetExpiredBonuses(ctx context.Context, today string) (int64, error)

	// WithUserLock runs fn inside the user's critical section. The drop
	// engine wraps a whole draw in it.
	WithUserLock(userID string, fn func() error) error
}

type service struct {
	repo  repository.User
	locks *concurrency.LockManager
	cache *expirable.LRU[string, *domain.User]
}

// NewService creates a ledger service over the given repository.
func NewService(repo repository.User) Service {
	return &service{
		repo:  repo,
		locks: concurrency.NewLockManager(),
		cache: expirable.NewLRU[string, *domain.User](UserCacheSize, nil, UserCacheTTL),
	}
}

func (s *service) WithUserLock(userID string, fn func() error) error {
	return s.locks.WithLock(userID, fn)
}

func (s *service) GetOrCreate(ctx context.Context, userID, username string, now time.Time) (*domain.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", domain.ErrInvalidInput)
	}

	if user, ok := s.cache.Get(userID); ok {
		return user, nil
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetUser, err)
	}
	if user == nil {
		user = &domain.User{
			ID:           userID,
			Username:     username,
			RegisteredAt: now,
		}
		if err := s.repo.UpsertUser(ctx, user); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextUpsertUser, err)
		}
		log.Info(LogMsgUserRegistered, "user_id", userID, "username", username)
	}

	s.cache.Add(userID, user)
	return user, nil
}

func (s *service) CanDraw(ctx context.Context, userID string, now time.Time) (bool, time.Duration, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return false, 0, err
	}

	if user.LastDraw == nil {
		return true, 0, nil
	}

	elapsed := now.Sub(*user.LastDraw)
	if elapsed >= domain.DrawCooldownDuration {
		return true, 0, nil
	}
	return false, domain.DrawCooldownDuration - elapsed, nil
}

func (s *service) RecordDraw(ctx context.Context, userID string, now time.Time) error {
	if err := s.repo.UpdateLastDraw(ctx, userID, now); err != nil {
		return fmt.Errorf("%s: %w", ErrContextRecordDraw, err)
	}
	s.cache.Remove(userID)
	return nil
}

func (s *service) ConsumeRarityBonus(ctx context.Context, userID string) (float64, error) {
	bonus, err := s.repo.ConsumeRarityBonus(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextConsumeBonus, err)
	}
	s.cache.Remove(userID)
	if bonus > 0 {
		logger.FromContext(ctx).Debug(LogMsgBonusConsumed, "user_id", userID, "bonus", bonus)
	}
	return bonus, nil
}

func (s *service) ConsumeExtraDraw(ctx context.Context, userID string) (bool, error) {
	ok, err := s.repo.ConsumeExtraDraw(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextConsumeCredit, err)
	}
	if ok {
		s.cache.Remove(userID)
		logger.FromContext(ctx).Debug(LogMsgCreditConsumed, "user_id", userID)
	}
	return ok, nil
}

func (s *service) CanClaimDaily(ctx context.Context, userID, today string) (bool, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.DailyClaimedOn == "" || user.DailyClaimedOn < today, nil
}

func (s *service) ClaimDaily(ctx context.Context, userID, today string, kind domain.RewardKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRewardKind, kind)
	}

	// Check-then-set runs under the user lock so two concurrent claims
	// cannot both pass the date check.
	return s.WithUserLock(userID, func() error {
		ok, err := s.CanClaimDaily(ctx, userID, today)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyClaimed
		}

		if err := s.repo.SetDailyClaim(ctx, userID, today, kind); err != nil {
			return fmt.Errorf("%s: %w", ErrContextClaimDaily, err)
		}
		s.cache.Remove(userID)
		logger.FromContext(ctx).Info(LogMsgDailyClaimed, "user_id", userID, "kind", kind, "date", today)
		return nil
	})
}

func (s *service) ResetExpiredBonuses(ctx context.Context, today string) (int64, error) {
	affected, err := s.repo.ResetExpiredBonuses(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextResetBonuses, err)
	}

	// The sweep touches an unknown set of users; drop the whole cache.
	s.cache.Purge()

	if affected > 0 {
		logger.FromContext(ctx).Info(LogMsgBonusesSwept, "users", affected, "date", today)
	}
	return affected, nil
}

// getUser is a cache-backed read that fails on unknown users. Entry
// points register implicitly via GetOrCreate before reaching here.
func (s *service) getUser(ctx context.Context, userID string) (*domain.User, error) {
	if user, ok := s.cache.Get(userID); ok {
		return user, nil
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetUser, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}

	s.cache.Add(userID, user)
	return user, nil
}
