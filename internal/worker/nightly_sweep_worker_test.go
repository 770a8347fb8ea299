package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pehenyshka/piratecards/internal/domain"
)

// MockDailyService for testing
type MockDailyService struct {
	mock.Mock
}

func (m *MockDailyService) Options() []domain.DailyBonusOption {
	args := m.Called()
	return args.Get(0).([]domain.DailyBonusOption)
}

func (m *MockDailyService) Claim(ctx context.Context, userID, username string, kind domain.RewardKind, now time.Time) error {
	args := m.Called(ctx, userID, username, kind, now)
	return args.Error(0)
}

func (m *MockDailyService) BonusStatus(ctx context.Context, userID, username string, now time.Time) (*domain.BonusStatus, error) {
	args := m.Called(ctx, userID, username, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BonusStatus), args.Error(1)
}

func (m *MockDailyService) NightlySweep(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return int64(args.Int(0)), args.Error(1)
}

// TestTimeUntilNextSweep tests sweep time calculation
func TestTimeUntilNextSweep(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want func(d time.Duration) bool
	}{
		{
			name: "01:00 UTC should be ~23 hours until next sweep",
			now:  time.Date(2026, 2, 2, 1, 0, 0, 0, time.UTC),
			want: func(d time.Duration) bool {
				return d == 23*time.Hour
			},
		},
		{
			name: "23:59 UTC should be 1 minute until next sweep",
			now:  time.Date(2026, 2, 2, 23, 59, 0, 0, time.UTC),
			want: func(d time.Duration) bool {
				return d == time.Minute
			},
		},
		{
			name: "exactly midnight rolls to the next day",
			now:  time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
			want: func(d time.Duration) bool {
				return d == 24*time.Hour
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := timeUntilNextSweep(tt.now)

			assert.Greater(t, d, time.Duration(0))
			assert.LessOrEqual(t, d, 24*time.Hour)
			assert.True(t, tt.want(d))
		})
	}
}

// TestNightlySweepWorkerStart tests that the worker schedules a sweep
func TestNightlySweepWorkerStart(t *testing.T) {
	dailySvc := new(MockDailyService)

	worker := NewNightlySweepWorker(dailySvc)

	// Start should not panic
	worker.Start()

	// Shutdown should complete without error
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := worker.Shutdown(ctx)
	assert.NoError(t, err)
}

// TestNightlySweepWorkerShutdown tests graceful shutdown
func TestNightlySweepWorkerShutdown(t *testing.T) {
	dailySvc := new(MockDailyService)

	worker := NewNightlySweepWorker(dailySvc)
	worker.Start()

	// Allow time for any scheduled timers
	time.Sleep(100 * time.Millisecond)

	// Shutdown should complete without hanging
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := worker.Shutdown(ctx)
	assert.NoError(t, err)
}

// TestNightlySweepWorkerShutdownIdempotent tests repeated shutdowns
func TestNightlySweepWorkerShutdownIdempotent(t *testing.T) {
	dailySvc := new(MockDailyService)

	worker := NewNightlySweepWorker(dailySvc)
	worker.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, worker.Shutdown(ctx))
	assert.NoError(t, worker.Shutdown(ctx))
}

// TestNightlySweepExecute tests that a sweep invokes the daily service
func TestNightlySweepExecute(t *testing.T) {
	dailySvc := new(MockDailyService)
	dailySvc.On("NightlySweep", mock.Anything, mock.AnythingOfType("time.Time")).Return(3, nil)

	worker := NewNightlySweepWorker(dailySvc)
	worker.executeSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, worker.Shutdown(ctx))

	dailySvc.AssertCalled(t, "NightlySweep", mock.Anything, mock.AnythingOfType("time.Time"))
}
