package handler

import (
	"net/http"
	"time"

	"github.com/pehenyshka/piratecards/internal/daily"
	"github.com/pehenyshka/piratecards/internal/logger"
)

// SweepResponse reports the outcome of a manual bonus sweep
type SweepResponse struct {
	Message       string `json:"message"`
	UsersAffected int64  `json:"users_affected"`
}

// HandleAdminSweep handles POST requests to run the bonus sweep on demand.
// The nightly worker runs the same operation; this endpoint exists for
// operational recovery and testing.
// @Summary Run bonus sweep
// @Description Zero expired bonuses and credits for all users
// @Tags admin
// @Produce json
// @Success 200 {object} SweepResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/sweep [post]
func HandleAdminSweep(svc daily.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		affected, err := svc.NightlySweep(r.Context(), time.Now())
		if err != nil {
			respondServiceError(w, r, "Bonus sweep", err)
			return
		}

		log.Info("Manual bonus sweep completed", "users_affected", affected)

		respondJSON(w, http.StatusOK, SweepResponse{
			Message:       MsgSweepCompleted,
			UsersAffected: affected,
		})
	}
}
