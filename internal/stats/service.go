package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pehenyshka/piratecards/internal/domain"
	"github.com/pehenyshka/piratecards/internal/ledger"
	"github.com/pehenyshka/piratecards/internal/repository"
)

// Service derives collection views and rankings from the append-only
// acquisition log.
type Service interface {
	// CollectionSummary aggregates a user's cards: totals and per-tier
	// counts.
	CollectionSummary(ctx context.Context, userID string) (*domain.CollectionSummary, error)

	// Collection lists the user's cards, rarest first.
	Collection(ctx context.Context, userID string) ([]domain.OwnedCard, error)

	// Profile is the per-user stats view shown on request.
	Profile(ctx context.Context, userID, username string, now time.Time) (*domain.ProfileStats, error)

	// Leaderboard ranks users by (rare cards desc, total power desc).
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type service struct {
	acqRepo repository.Acquisition
	ledger  ledger.Service
	titler  cases.Caser
}

// NewService creates a stats service.
func NewService(acqRepo repository.Acquisition, ledgerSvc ledger.Service) Service {
	return &service{
		acqRepo: acqRepo,
		ledger:  ledgerSvc,
		titler:  cases.Title(language.English),
	}
}

func (s *service) CollectionSummary(ctx context.Context, userID string) (*domain.CollectionSummary, error) {
	if userID == "" {
		return nil, errors.New(ErrMsgUserIDRequired)
	}

	cards, err := s.acqRepo.ListAcquisitions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListCards, err)
	}

	summary := &domain.CollectionSummary{
		CountsByRarity: make(map[int]int, domain.RarityMax),
	}
	distinct := make(map[int]struct{})
	for _, c := range cards {
		summary.TotalCards++
		summary.TotalPower += c.TotalPower()
		summary.CountsByRarity[c.Rarity]++
		distinct[c.ID] = struct{}{}
	}
	summary.DistinctCards = len(distinct)
	return summary, nil
}

func (s *service) Collection(ctx context.Context, userID string) ([]domain.OwnedCard, error) {
	if userID == "" {
		return nil, errors.New(ErrMsgUserIDRequired)
	}

	cards, err := s.acqRepo.ListAcquisitions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListCards, err)
	}
	return cards, nil
}

func (s *service) Profile(ctx context.Context, userID, username string, now time.Time) (*domain.ProfileStats, error) {
	user, err := s.ledger.GetOrCreate(ctx, userID, username, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetUser, err)
	}

	agg, err := s.acqRepo.AggregateStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAggregate, err)
	}

	days := int(now.Sub(user.RegisteredAt).Hours() / 24)
	if days < 0 {
		days = 0
	}

	return &domain.ProfileStats{
		UserID:         user.ID,
		Username:       user.Username,
		DaysPlaying:    days,
		TotalCards:     agg.TotalCards,
		TotalPower:     agg.TotalPower,
		LegendaryCards: agg.LegendaryCards,
		MythicCards:    agg.MythicCards,
		LastDraw:       user.LastDraw,
	}, nil
}

func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = domain.LeaderboardDefaultLimit
	}
	if limit > domain.LeaderboardMaxLimit {
		limit = domain.LeaderboardMaxLimit
	}

	entries, err := s.acqRepo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLeaderboard, err)
	}

	for i := range entries {
		entries[i].Username = s.titler.String(entries[i].Username)
	}
	return entries, nil
}
