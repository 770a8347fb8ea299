package handler

import (
	"net/http"
	"time"

	"github.com/pehenyshka/piratecards/internal/drop"
	"github.com/pehenyshka/piratecards/internal/logger"
)

// DrawRequest represents a request to draw a card
type DrawRequest struct {
	UserID   string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Username string `json:"username" validate:"max=100,excludesall=\x00\n\r\t"`
}

// HandleDraw handles POST requests to draw a card
// @Summary Draw a card
// @Description Draw a random card, gated on the 2h cooldown or an extra-draw credit
// @Tags draw
// @Accept json
// @Produce json
// @Param request body DrawRequest true "Draw details"
// @Success 200 {object} domain.DrawResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /draw [post]
func HandleDraw(svc drop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req DrawRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Draw"); err != nil {
			return
		}

		result, err := svc.Draw(r.Context(), req.UserID, req.Username, time.Now())
		if err != nil {
			respondServiceError(w, r, "Draw", err)
			return
		}

		log.Info("Card drawn",
			"user_id", req.UserID,
			"card_id", result.Card.ID,
			"rarity", result.Card.Rarity,
			"first_draw", result.FirstDraw,
			"used_extra_draw", result.UsedExtraDraw)

		respondJSON(w, http.StatusOK, result)
	}
}
