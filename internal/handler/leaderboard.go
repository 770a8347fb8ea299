package handler

import (
	"net/http"
	"strconv"

	"github.com/pehenyshka/piratecards/internal/domain"
	"github.com/pehenyshka/piratecards/internal/logger"
	"github.com/pehenyshka/piratecards/internal/stats"
)

// HandleGetLeaderboard handles GET requests for the top-players ranking
// @Summary Get leaderboard
// @Description Rank users by rare cards, then total power
// @Tags collection
// @Produce json
// @Param limit query int false "Limit (default 10, max 100)"
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /leaderboard [get]
func HandleGetLeaderboard(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		limit := domain.LeaderboardDefaultLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			var err error
			limit, err = strconv.Atoi(limitStr)
			if err != nil || limit <= 0 {
				log.Warn("Invalid limit parameter", "limit", limitStr)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
		}

		entries, err := svc.Leaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}

		log.Debug("Leaderboard retrieved", "entries", len(entries))

		respondJSON(w, http.StatusOK, entries)
	}
}
