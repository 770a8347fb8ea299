package catalog

import (
	"context"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/pehenyshka/piratecards/internal/domain"
	"github.com/pehenyshka/piratecards/internal/logger"
	"github.com/pehenyshka/piratecards/internal/repository"
	"github.com/pehenyshka/piratecards/internal/utils"
)

// Service exposes read access to the card catalog.
type Service interface {
	// CardsByRarity returns every card of the given tier.
	CardsByRarity(ctx context.Context, rarity int) ([]domain.Card, error)

	// CardByID returns domain.ErrCardNotFound for unknown ids.
	CardByID(ctx context.Context, id int) (*domain.Card, error)

	// RandomCard picks a uniformly random card of the given tier.
	// Returns domain.ErrEmptyTier when the tier has no cards.
	RandomCard(ctx context.Context, rarity int) (*domain.Card, error)

	// Seed loads the fixed card set into an empty backing store. A
	// non-empty store makes it a no-op, so repeated startups are safe.
	Seed(ctx context.Context, cards []domain.Card) error
}

type service struct {
	repo  repository.Card
	cache *expirable.LRU[int, []domain.Card]
}

// NewService creates a catalog service with an expiring by-rarity cache
// in front of the repository. The drop path reads a tier on every draw.
func NewService(repo repository.Card) Service {
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[int, []domain.Card](CacheSize, nil, CacheTTL),
	}
}

func (s *service) Seed(ctx context.Context, cards []domain.Card) error {
	log := logger.FromContext(ctx)

	count, err := s.repo.CountCards(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextCountCards, err)
	}
	if count > 0 {
		log.Debug(LogMsgSeedSkipped, "existing", count)
		return nil
	}

	if err := s.repo.InsertCards(ctx, cards); err != nil {
		return fmt.Errorf("%s: %w", ErrContextInsertCards, err)
	}

	log.Info(LogMsgSeedCompleted, "cards", len(cards))
	return nil
}

func (s *service) CardsByRarity(ctx context.Context, rarity int) ([]domain.Card, error) {
	if !domain.ValidRarity(rarity) {
		return nil, fmt.Errorf("%w: rarity %d", domain.ErrInvalidInput, rarity)
	}

	if cards, ok := s.cache.Get(rarity); ok {
		return cards, nil
	}

	cards, err := s.repo.GetCardsByRarity(ctx, rarity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetByRarity, err)
	}

	s.cache.Add(rarity, cards)
	return cards, nil
}

func (s *service) CardByID(ctx context.Context, id int) (*domain.Card, error) {
	card, err := s.repo.GetCardByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetByID, err)
	}
	if card == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrCardNotFound, id)
	}
	return card, nil
}

func (s *service) RandomCard(ctx context.Context, rarity int) (*domain.Card, error) {
	cards, err := s.CardsByRarity(ctx, rarity)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		logger.FromContext(ctx).Error(LogMsgEmptyTierHit, "rarity", rarity)
		return nil, fmt.Errorf("%w: rarity %d", domain.ErrEmptyTier, rarity)
	}

	card := cards[utils.RandomInt(0, len(cards)-1)]
	return &card, nil
}
