package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pehenyshka/piratecards/internal/domain"
)

// CardRepository implements the card catalog repository for PostgreSQL
type CardRepository struct {
	db *pgxpool.Pool
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *pgxpool.Pool) *CardRepository {
	return &CardRepository{db: db}
}

const cardColumns = `card_id, name, rarity, description, image_path, health, melee, ranged, special`

func scanCard(row pgx.Row) (*domain.Card, error) {
	var c domain.Card
	err := row.Scan(&c.ID, &c.Name, &c.Rarity, &c.Description, &c.ImagePath,
		&c.Health, &c.Melee, &c.Ranged, &c.Special)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCardsByRarity returns every card of the given tier, ordered by id
func (r *CardRepository) GetCardsByRarity(ctx context.Context, rarity int) ([]domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE rarity = $1 ORDER BY card_id`

	rows, err := r.db.Query(ctx, query, rarity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCardsByRarity, err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanCard, err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCardsByRarity, err)
	}
	return cards, nil
}

// GetCardByID returns nil, nil when the card does not exist
func (r *CardRepository) GetCardByID(ctx context.Context, id int) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE card_id = $1`

	card, err := scanCard(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCardByID, err)
	}
	return card, nil
}

// CountCards returns the catalog size
func (r *CardRepository) CountCards(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cards`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountCards, err)
	}
	return count, nil
}

// InsertCards loads the seed catalog in a single transaction
func (r *CardRepository) InsertCards(ctx context.Context, cards []domain.Card) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO cards (name, rarity, description, image_path, health, melee, ranged, special)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, c := range cards {
		if _, err := tx.Exec(ctx, query, c.Name, c.Rarity, c.Description, c.ImagePath,
			c.Health, c.Melee, c.Ranged, c.Special); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCards, err)
		}
	}

	return tx.Commit(ctx)
}
