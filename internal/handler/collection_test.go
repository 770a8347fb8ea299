package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pehenyshka/piratecards/internal/domain"
)

// MockStatsService mocks the stats.Service interface
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) CollectionSummary(ctx context.Context, userID string) (*domain.CollectionSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectionSummary), args.Error(1)
}

func (m *MockStatsService) Collection(ctx context.Context, userID string) ([]domain.OwnedCard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedCard), args.Error(1)
}

func (m *MockStatsService) Profile(ctx context.Context, userID, username string, now time.Time) (*domain.ProfileStats, error) {
	args := m.Called(ctx, userID, username, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileStats), args.Error(1)
}

func (m *MockStatsService) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func TestHandleGetCollection(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockStatsService{}
		mockSvc.On("Collection", mock.Anything, "u1").Return([]domain.OwnedCard{
			{Card: domain.Card{ID: 1, Name: "Nami", Rarity: domain.RarityRare}},
		}, nil)
		mockSvc.On("CollectionSummary", mock.Anything, "u1").Return(&domain.CollectionSummary{
			TotalCards:     1,
			CountsByRarity: map[int]int{domain.RarityRare: 1},
		}, nil)

		req := httptest.NewRequest("GET", "/collection?user_id=u1", nil)
		w := httptest.NewRecorder()

		HandleGetCollection(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Nami")
		assert.Contains(t, w.Body.String(), `"total_cards":1`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing UserID", func(t *testing.T) {
		mockSvc := &MockStatsService{}

		req := httptest.NewRequest("GET", "/collection", nil)
		w := httptest.NewRecorder()

		HandleGetCollection(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Service Error", func(t *testing.T) {
		mockSvc := &MockStatsService{}
		mockSvc.On("Collection", mock.Anything, "u1").Return(nil, errors.New("db down"))

		req := httptest.NewRequest("GET", "/collection?user_id=u1", nil)
		w := httptest.NewRecorder()

		HandleGetCollection(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleGetProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockStatsService{}
		mockSvc.On("Profile", mock.Anything, "u1", "luffy", mock.Anything).
			Return(&domain.ProfileStats{UserID: "u1", Username: "luffy", DaysPlaying: 42}, nil)

		req := httptest.NewRequest("GET", "/profile?user_id=u1&username=luffy", nil)
		w := httptest.NewRecorder()

		HandleGetProfile(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"days_playing":42`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing UserID", func(t *testing.T) {
		mockSvc := &MockStatsService{}

		req := httptest.NewRequest("GET", "/profile", nil)
		w := httptest.NewRecorder()

		HandleGetProfile(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleGetLeaderboard(t *testing.T) {
	t.Run("Default Limit", func(t *testing.T) {
		mockSvc := &MockStatsService{}
		mockSvc.On("Leaderboard", mock.Anything, domain.LeaderboardDefaultLimit).
			Return([]domain.LeaderboardEntry{{UserID: "u1", Username: "Luffy", RareCards: 2}}, nil)

		req := httptest.NewRequest("GET", "/leaderboard", nil)
		w := httptest.NewRecorder()

		HandleGetLeaderboard(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Luffy")
		mockSvc.AssertExpectations(t)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		mockSvc := &MockStatsService{}
		mockSvc.On("Leaderboard", mock.Anything, 25).
			Return([]domain.LeaderboardEntry{}, nil)

		req := httptest.NewRequest("GET", "/leaderboard?limit=25", nil)
		w := httptest.NewRecorder()

		HandleGetLeaderboard(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		mockSvc := &MockStatsService{}

		req := httptest.NewRequest("GET", "/leaderboard?limit=banana", nil)
		w := httptest.NewRecorder()

		HandleGetLeaderboard(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
		mockSvc.AssertExpectations(t)
	})
}
