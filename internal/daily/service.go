package daily

import (
	"context"
	"fmt"
	"time"

	"github.com/pehenyshka/piratecards/internal/domain"
	"github.com/pehenyshka/piratecards/internal/ledger"
	"github.com/pehenyshka/piratecards/internal/logger"
	"github.com/pehenyshka/piratecards/internal/metrics"
)

// Service manages the once-per-day bonus claim and the nightly reset
// of expired bonuses.
type Service interface {
	// Options returns the static reward menu.
	Options() []domain.DailyBonusOption

	// Claim applies one reward for today. Returns
	// domain.ErrAlreadyClaimed when today's bonus has been taken.
	Claim(ctx context.Context, userID, username string, kind domain.RewardKind, now time.Time) error

	// BonusStatus reports the user's active bonuses and whether a
	// claim is still available today.
	BonusStatus(ctx context.Context, userID, username string, now time.Time) (*domain.BonusStatus, error)

	// NightlySweep clears bonuses of every user who did not claim
	// today. Invoked by an external scheduler; idempotent, and safe
	// under missed or repeated invocations.
	NightlySweep(ctx context.Context, now time.Time) (int64, error)
}

type service struct {
	ledger ledger.Service
}

// NewService creates a daily bonus service over the ledger.
func NewService(ledgerSvc ledger.Service) Service {
	return &service{ledger: ledgerSvc}
}

func (s *service) Options() []domain.DailyBonusOption {
	return []domain.DailyBonusOption{
		{
			Kind:        domain.RewardRarityBoost,
			Name:        RarityBoostName,
			Description: RarityBoostDescription,
			Emoji:       RarityBoostEmoji,
		},
		{
			Kind:        domain.RewardExtraDraw,
			Name:        ExtraDrawName,
			Description: ExtraDrawDescription,
			Emoji:       ExtraDrawEmoji,
		},
	}
}

func (s *service) Claim(ctx context.Context, userID, username string, kind domain.RewardKind, now time.Time) error {
	if _, err := s.ledger.GetOrCreate(ctx, userID, username, now); err != nil {
		return fmt.Errorf("%s: %w", ErrContextClaim, err)
	}

	if err := s.ledger.ClaimDaily(ctx, userID, domain.DateOf(now), kind); err != nil {
		return err
	}

	metrics.DailyClaims.WithLabelValues(string(kind)).Inc()
	return nil
}

func (s *service) BonusStatus(ctx context.Context, userID, username string, now time.Time) (*domain.BonusStatus, error) {
	user, err := s.ledger.GetOrCreate(ctx, userID, username, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBonusStatus, err)
	}

	today := domain.DateOf(now)
	claimable, err := s.ledger.CanClaimDaily(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBonusStatus, err)
	}

	return &domain.BonusStatus{
		RarityBonus:  user.RarityBonus,
		ExtraDraws:   user.ExtraDraws,
		ClaimedToday: user.DailyClaimedOn == today,
		ClaimableNow: claimable,
	}, nil
}

func (s *service) NightlySweep(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)
	today := domain.DateOf(now)

	log.Info(LogMsgSweepStarted, "date", today)
	affected, err := s.ledger.ResetExpiredBonuses(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextSweep, err)
	}

	metrics.SweepRuns.Inc()
	metrics.SweepUsersAffected.Add(float64(affected))
	log.Info(LogMsgSweepFinished, "date", today, "users_reset", affected)
	return affected, nil
}
