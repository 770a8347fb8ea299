package repository

import (
	"context"

	"github.com/pehenyshka/piratecards/internal/domain"
)

// Card defines the interface for card catalog persistence. The catalog
// is read-only at runtime; InsertCards exists only for the idempotent
// startup seed.
type Card interface {
	GetCardsByRarity(ctx context.Context, rarity int) ([]domain.Card, error)
	GetCardByID(ctx context.Context, id int) (*domain.Card, error)
	CountCards(ctx context.Context) (int, error)
	InsertCards(ctx context.Context, cards []domain.Card) error
}
