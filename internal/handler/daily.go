package handler

import (
	"net/http"
	"time"

	"github.com/pehenyshka/piratecards/internal/daily"
	"github.com/pehenyshka/piratecards/internal/domain"
	"github.com/pehenyshka/piratecards/internal/logger"
)

// ClaimBonusRequest represents a request to claim the daily bonus
type ClaimBonusRequest struct {
	UserID   string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Username string `json:"username" validate:"max=100,excludesall=\x00\n\r\t"`
	Reward   string `json:"reward" validate:"required,reward"`
}

// HandleDailyOptions handles GET requests for the daily reward menu
// @Summary Daily reward menu
// @Description List the mutually exclusive daily rewards
// @Tags daily
// @Produce json
// @Success 200 {array} domain.DailyBonusOption
// @Router /daily/options [get]
func HandleDailyOptions(svc daily.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Options())
	}
}

// HandleClaimBonus handles POST requests to claim a daily bonus
// @Summary Claim daily bonus
// @Description Claim one daily reward; once per calendar day
// @Tags daily
// @Accept json
// @Produce json
// @Param request body ClaimBonusRequest true "Claim details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /daily/claim [post]
func HandleClaimBonus(svc daily.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ClaimBonusRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim bonus"); err != nil {
			return
		}

		if err := svc.Claim(r.Context(), req.UserID, req.Username, domain.RewardKind(req.Reward), time.Now()); err != nil {
			respondServiceError(w, r, "Claim bonus", err)
			return
		}

		log.Info("Daily bonus claimed", "user_id", req.UserID, "reward", req.Reward)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBonusClaimedSuccess})
	}
}

// HandleBonusStatus handles GET requests for a user's bonus status
// @Summary Bonus status
// @Description Active bonuses and today's claim availability
// @Tags daily
// @Produce json
// @Param user_id query string true "User ID"
// @Param username query string false "Username"
// @Success 200 {object} domain.BonusStatus
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /daily/status [get]
func HandleBonusStatus(svc daily.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		username := GetOptionalQueryParam(r, "username", "")

		status, err := svc.BonusStatus(r.Context(), userID, username, time.Now())
		if err != nil {
			respondServiceError(w, r, "Bonus status", err)
			return
		}

		respondJSON(w, http.StatusOK, status)
	}
}
