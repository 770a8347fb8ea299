package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pehenyshka/piratecards/internal/domain"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (Service, *FakeRepository) {
	t.Helper()
	repo := NewFakeRepository()
	return NewService(repo), repo
}

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("registers on first call", func(t *testing.T) {
		svc, _ := newTestService(t)

		user, err := svc.GetOrCreate(ctx, "u1", "luffy", testNow)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "luffy", user.Username)
		assert.Nil(t, user.LastDraw)
		assert.Zero(t, user.RarityBonus)
		assert.Zero(t, user.ExtraDraws)
	})

	t.Run("re-registering is a no-op", func(t *testing.T) {
		svc, repo := newTestService(t)

		_, err := svc.GetOrCreate(ctx, "u1", "luffy", testNow)
		require.NoError(t, err)
		require.NoError(t, repo.UpdateLastDraw(ctx, "u1", testNow))

		user, err := svc.GetOrCreate(ctx, "u1", "luffy", testNow.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, testNow, user.RegisteredAt, "registration timestamp must not change")
	})

	t.Run("empty id rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.GetOrCreate(ctx, "", "x", testNow)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCanDraw(t *testing.T) {
	ctx := context.Background()

	t.Run("no prior draw", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.GetOrCreate(ctx, "u1", "luffy", testNow)
		require.NoError(t, err)

		ok, remaining, err := svc.CanDraw(ctx, "u1", testNow)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Zero(t, remaining)
	})

	t.Run("cooldown boundary", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.GetOrCreate(ctx, "u1", "luffy", testNow)
		require.NoError(t, err)
		require.NoError(t, svc.RecordDraw(ctx, "u1", testNow))

		ok, remaining, err := svc.CanDraw(ctx, "u1", testNow.Add(domain.DrawCooldownDuration-time.Second))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, time.Second, remaining)

		ok, remaining, err = svc.CanDraw(ctx, "u1", testNow.Add(domain.DrawCooldownDuration))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Zero(t, remaining)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, _, err := svc.CanDraw(ctx, "ghost", testNow)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestConsumeRarityBonus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	_, err := svc.GetOrCreate(ctx, "u1", "luffy", testNow)
	require.NoError(t, err)
	require.NoError(t, svc.ClaimDaily(ctx, "u1", domain.DateOf(testNow), domain.RewardRarityBoost))

	bonus, err := svc.ConsumeRarityBonus(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.DailyRarityBonusAmount, bonus)

	// Read-and-clear: second consume sees zero.
	bonus, err = svc.ConsumeRarityBonus(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, bonus)
}

func TestConsumeExtraDraw(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	_, err := svc.GetOrCreate(ctx, "u1", "luffy", testNow)
	require.NoError(t, err)
	require.NoError(t, svc.ClaimDaily(ctx, "u1", domain.DateOf(testNow), domain.RewardExtraDraw))

	ok, err := svc.ConsumeExtraDraw(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ConsumeExtraDraw(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok, "credits cannot go negative")
}

func TestClaimDaily(t *testing.T) {
	ctx := context.Background()
	today := domain.DateOf(testNow)

	t.Run("second claim same day fails without mutating rewards", func(t *testing.T) {
		svc, repo := newTestService(t)
		_, err := svc.GetOrCreate(ctx, "u1", "luffy", testNow)
		require.NoError(t, err)

		require.NoError(t, svc.ClaimDaily(ctx, "u1", today, domain.RewardRarityBoost))

		err = svc.ClaimDaily(ctx, "u1", today, domain.RewardExtraDraw)
		assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)

		user, err := repo.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.DailyRarityBonusAmount, user.RarityBonus)
		assert.Zero(t, user.ExtraDraws, "rejected claim must not apply its reward")
	})

	t.Run("claim allowed on a later day", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.GetOrCreate(ctx, "u1", "luffy", testNow)
		require.NoError(t, err)

		require.NoError(t, svc.ClaimDaily(ctx, "u1", today, domain.RewardExtraDraw))

		tomorrow := domain.DateOf(testNow.AddDate(0, 0, 1))
		ok, err := svc.CanClaimDaily(ctx, "u1", tomorrow)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, svc.ClaimDaily(ctx, "u1", tomorrow, domain.RewardRarityBoost))
	})

	t.Run("invalid kind rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.GetOrCreate(ctx, "u1", "luffy", testNow)
		require.NoError(t, err)

		err = svc.ClaimDaily(ctx, "u1", today, domain.RewardKind("legendary_chance"))
		assert.ErrorIs(t, err, domain.ErrInvalidRewardKind)
	})

	t.Run("concurrent claims apply exactly one", func(t *testing.T) {
		svc, repo := newTestService(t)
		_, err := svc.GetOrCreate(ctx, "u1", "luffy", testNow)
		require.NoError(t, err)

		var wg sync.WaitGroup
		successes := make(chan struct{}, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := svc.ClaimDaily(ctx, "u1", today, domain.RewardExtraDraw); err == nil {
					successes <- struct{}{}
				}
			}()
		}
		wg.Wait()
		close(successes)

		assert.Len(t, successes, 1, "exactly one concurrent claim may win")
		user, err := repo.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.DailyExtraDrawCredits, user.ExtraDraws)
	})
}

func TestResetExpiredBonuses(t *testing.T) {
	ctx := context.Background()
	today := domain.DateOf(testNow)
	yesterday := domain.DateOf(testNow.AddDate(0, 0, -1))

	svc, repo := newTestService(t)
	_, err := svc.GetOrCreate(ctx, "fresh", "nami", testNow)
	require.NoError(t, err)
	_, err = svc.GetOrCreate(ctx, "stale", "zoro", testNow)
	require.NoError(t, err)

	require.NoError(t, svc.ClaimDaily(ctx, "stale", yesterday, domain.RewardRarityBoost))
	require.NoError(t, svc.ClaimDaily(ctx, "fresh", today, domain.RewardExtraDraw))

	affected, err := svc.ResetExpiredBonuses(ctx, today)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	stale, err := repo.GetUser(ctx, "stale")
	require.NoError(t, err)
	assert.Zero(t, stale.RarityBonus, "stale bonus must be cleared")
	assert.Zero(t, stale.ExtraDraws)

	fresh, err := repo.GetUser(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, domain.DailyExtraDrawCredits, fresh.ExtraDraws, "same-day claim must survive the sweep")

	// Running the sweep again is a no-op.
	affected, err = svc.ResetExpiredBonuses(ctx, today)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
