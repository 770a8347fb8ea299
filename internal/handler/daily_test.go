package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pehenyshka/piratecards/internal/domain"
)

// MockDailyService mocks the daily.Service interface
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
	return args.Get(0).(int64), args.Error(1)
}

func TestHandleDailyOptions(t *testing.T) {
	mockSvc := &MockDailyService{}
	mockSvc.On("Options").Return([]domain.DailyBonusOption{
		{Kind: domain.RewardRarityBoost, Name: "Card luck"},
		{Kind: domain.RewardExtraDraw, Name: "Extra card"},
	})

	req := httptest.NewRequest("GET", "/daily/options", nil)
	w := httptest.NewRecorder()

	HandleDailyOptions(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rarity_boost")
	assert.Contains(t, w.Body.String(), "extra_draw")
	mockSvc.AssertExpectations(t)
}

func TestHandleClaimBonus(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockDailyService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: ClaimBonusRequest{UserID: "u1", Username: "zoro", Reward: "rarity_boost"},
			setupMock: func(m *MockDailyService) {
				m.On("Claim", mock.Anything, "u1", "zoro", domain.RewardRarityBoost, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgBonusClaimedSuccess,
		},
		{
			name:           "Invalid Reward Kind",
			requestBody:    ClaimBonusRequest{UserID: "u1", Reward: "double_xp"},
			setupMock:      func(m *MockDailyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid reward kind",
		},
		{
			name:        "Already Claimed",
			requestBody: ClaimBonusRequest{UserID: "u1", Reward: "extra_draw"},
			setupMock: func(m *MockDailyService) {
				m.On("Claim", mock.Anything, "u1", "", domain.RewardExtraDraw, mock.Anything).
					Return(domain.ErrAlreadyClaimed)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAlreadyClaimedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockDailyService{}
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/daily/claim", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleClaimBonus(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleBonusStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockDailyService{}
		mockSvc.On("BonusStatus", mock.Anything, "u1", "", mock.Anything).
			Return(&domain.BonusStatus{RarityBonus: 10, ClaimedToday: true}, nil)

		req := httptest.NewRequest("GET", "/daily/status?user_id=u1", nil)
		w := httptest.NewRecorder()

		HandleBonusStatus(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"claimed_today":true`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing UserID", func(t *testing.T) {
		mockSvc := &MockDailyService{}

		req := httptest.NewRequest("GET", "/daily/status", nil)
		w := httptest.NewRecorder()

		HandleBonusStatus(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleAdminSweep(t *testing.T) {
	mockSvc := &MockDailyService{}
	mockSvc.On("NightlySweep", mock.Anything, mock.Anything).Return(int64(3), nil)

	req := httptest.NewRequest("POST", "/admin/sweep", nil)
	w := httptest.NewRecorder()

	HandleAdminSweep(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"users_affected":3`)
	mockSvc.AssertExpectations(t)
}
