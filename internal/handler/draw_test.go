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

// MockDropService mocks the drop.Service interface
type MockDropService struct {
	mock.Mock
}

func (m *MockDropService) Draw(ctx context.Context, userID, username string, now time.Time) (*domain.DrawResult, error) {
	args := m.Called(ctx, userID, username, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawResult), args.Error(1)
}

func TestHandleDraw(t *testing.T) {
	InitValidator()

	drawnCard := domain.Card{ID: 7, Name: "Shanks", Rarity: domain.RarityMythic}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockDropService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: DrawRequest{UserID: "u1", Username: "luffy"},
			setupMock: func(m *MockDropService) {
				m.On("Draw", mock.Anything, "u1", "luffy", mock.Anything).
					Return(&domain.DrawResult{Card: drawnCard, FirstDraw: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Shanks",
		},
		{
			name:           "Invalid Request - Missing UserID",
			requestBody:    DrawRequest{Username: "luffy"},
			setupMock:      func(m *MockDropService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:        "On Cooldown",
			requestBody: DrawRequest{UserID: "u1"},
			setupMock: func(m *MockDropService) {
				m.On("Draw", mock.Anything, "u1", "", mock.Anything).
					Return(nil, domain.ErrOnCooldown{Remaining: 90 * time.Minute})
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   "1h 30m remaining",
		},
		{
			name:        "Empty Tier",
			requestBody: DrawRequest{UserID: "u1"},
			setupMock: func(m *MockDropService) {
				m.On("Draw", mock.Anything, "u1", "", mock.Anything).
					Return(nil, domain.ErrEmptyTier)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockDropService{}
			tt.setupMock(mockSvc)

			handler := HandleDraw(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/draw", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
