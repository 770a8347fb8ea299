package repository

import (
	"context"
	"time"

	"github.com/pehenyshka/piratecards/internal/domain"
)

// Acquisition defines the interface for acquisition persistence.
// Acquisitions are append-only; there is no update or delete.
type Acquisition interface {
	InsertAcquisition(ctx context.Context, userID string, cardID int, obtainedAt time.Time) error
	ListAcquisitions(ctx context.Context, userID string) ([]domain.OwnedCard, error)
	CountAcquisitions(ctx context.Context, userID string) (int, error)
	AggregateStats(ctx context.Context, userID string) (*domain.AggregateStats, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}
