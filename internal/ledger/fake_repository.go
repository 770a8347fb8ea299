package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/pehenyshka/piratecards/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.User for integration-style unit tests. It mirrors the
// atomicity guarantees of the postgres implementation with a mutex.
type FakeRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{users: make(map[string]*domain.User)}
}

func (f *FakeRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *FakeRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[user.ID]; ok {
		existing.Username = user.Username
		return nil
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *FakeRepository) UpdateLastDraw(ctx context.Context, userID string, timestamp time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[userID]; ok {
		ts := timestamp
		u.LastDraw = &ts
	}
	return nil
}

func (f *FakeRepository) ConsumeRarityBonus(ctx context.Context, userID string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return 0, nil
	}
	bonus := u.RarityBonus
	u.RarityBonus = 0
	return bonus, nil
}

func (f *FakeRepository) ConsumeExtraDraw(ctx context.Context, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok || u.ExtraDraws <= 0 {
		return false, nil
	}
	u.ExtraDraws--
	return true, nil
}

func (f *FakeRepository) SetDailyClaim(ctx context.Context, userID, claimDate string, kind domain.RewardKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if u.DailyClaimedOn != "" && u.DailyClaimedOn >= claimDate {
		return domain.ErrAlreadyClaimed
	}
	u.DailyClaimedOn = claimDate
	switch kind {
	case domain.RewardRarityBoost:
		u.RarityBonus = domain.DailyRarityBonusAmount
	case domain.RewardExtraDraw:
		u.ExtraDraws = domain.DailyExtraDrawCredits
	default:
		return domain.ErrInvalidRewardKind
	}
	return nil
}

func (f *FakeRepository) ResetExpiredBonuses(ctx context.Context, keepDate string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var affected int64
	for _, u := range f.users {
		if u.DailyClaimedOn == keepDate {
			continue
		}
		if u.RarityBonus != 0 || u.ExtraDraws != 0 {
			u.RarityBonus = 0
			u.ExtraDraws = 0
			affected++
		}
	}
	return affected, nil
}
