package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pehenyshka/piratecards/internal/domain"
)

// AcquisitionRepository implements the append-only acquisition log for
// PostgreSQL. There is no update or delete path.
type AcquisitionRepository struct {
	db *pgxpool.Pool
}

// NewAcquisitionRepository creates a new AcquisitionRepository
func NewAcquisitionRepository(db *pgxpool.Pool) *AcquisitionRepository {
	return &AcquisitionRepository{db: db}
}

// InsertAcquisition appends one card copy to the user's collection
func (r *AcquisitionRepository) InsertAcquisition(ctx context.Context, userID string, cardID int, obtainedAt time.Time) error {
	query := `INSERT INTO user_cards (user_id, card_id, obtained_at) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, userID, cardID, obtainedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAcquisition, err)
	}
	return nil
}

// ListAcquisitions returns the user's cards, rarest first, newest first
// within a tier
func (r *AcquisitionRepository) ListAcquisitions(ctx context.Context, userID string) ([]domain.OwnedCard, error) {
	query := `
		SELECT c.card_id, c.name, c.rarity, c.description, c.image_path,
		       c.health, c.melee, c.ranged, c.special, uc.obtained_at
		FROM user_cards uc
		JOIN cards c ON c.card_id = uc.card_id
		WHERE uc.user_id = $1
		ORDER BY c.rarity DESC, uc.obtained_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAcquisitions, err)
	}
	defer rows.Close()

	var cards []domain.OwnedCard
	for rows.Next() {
		var oc domain.OwnedCard
		err := rows.Scan(&oc.ID, &oc.Name, &oc.Rarity, &oc.Description, &oc.ImagePath,
			&oc.Health, &oc.Melee, &oc.Ranged, &oc.Special, &oc.ObtainedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		cards = append(cards, oc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAcquisitions, err)
	}
	return cards, nil
}

// CountAcquisitions returns how many cards the user has ever drawn
func (r *AcquisitionRepository) CountAcquisitions(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_cards WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountAcquisitions, err)
	}
	return count, nil
}

// AggregateStats computes collection totals for one user
func (r *AcquisitionRepository) AggregateStats(ctx context.Context, userID string) (*domain.AggregateStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_cards,
			COALESCE(SUM(c.health + c.melee + c.ranged + c.special), 0) AS total_power,
			COUNT(*) FILTER (WHERE c.rarity = 4) AS legendary_cards,
			COUNT(*) FILTER (WHERE c.rarity = 5) AS mythic_cards
		FROM user_cards uc
		JOIN cards c ON c.card_id = uc.card_id
		WHERE uc.user_id = $1
	`

	var agg domain.AggregateStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&agg.TotalCards, &agg.TotalPower, &agg.LegendaryCards, &agg.MythicCards,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAggregateStats, err)
	}
	return &agg, nil
}

// Leaderboard ranks users by (rare cards desc, total power desc). Users
// with no cards still appear, matching the registration-centric view.
func (r *AcquisitionRepository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT
			u.user_id,
			u.username,
			COUNT(uc.card_id) AS total_cards,
			COALESCE(SUM(c.health + c.melee + c.ranged + c.special), 0) AS total_power,
			COUNT(*) FILTER (WHERE c.rarity >= $2) AS rare_cards
		FROM users u
		LEFT JOIN user_cards uc ON uc.user_id = u.user_id
		LEFT JOIN cards c ON c.card_id = uc.card_id
		GROUP BY u.user_id, u.username
		ORDER BY rare_cards DESC, total_power DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit, domain.RareTierThreshold)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeaderboard, err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.TotalCards, &e.TotalPower, &e.RareCards); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeaderboard, err)
	}
	return entries, nil
}
