package handler

import (
	"net/http"
	"time"

	"github.com/pehenyshka/piratecards/internal/domain"
	"github.com/pehenyshka/piratecards/internal/logger"
	"github.com/pehenyshka/piratecards/internal/stats"
)

// CollectionResponse bundles a user's cards with their summary
type CollectionResponse struct {
	Summary *domain.CollectionSummary `json:"summary"`
	Cards   []domain.OwnedCard        `json:"cards"`
}

// HandleGetCollection handles GET requests for a user's card collection
// @Summary Get collection
// @Description List a user's cards, rarest first, with summary totals
// @Tags collection
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} CollectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /collection [get]
func HandleGetCollection(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		cards, err := svc.Collection(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get collection", err)
			return
		}

		summary, err := svc.CollectionSummary(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get collection", err)
			return
		}

		log.Debug("Collection retrieved", "user_id", userID, "cards", len(cards))

		respondJSON(w, http.StatusOK, CollectionResponse{Summary: summary, Cards: cards})
	}
}

// HandleGetProfile handles GET requests for a user's profile stats
// @Summary Get profile
// @Description Per-user profile: days playing, collection totals, last draw
// @Tags collection
// @Produce json
// @Param user_id query string true "User ID"
// @Param username query string false "Username"
// @Success 200 {object} domain.ProfileStats
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile [get]
func HandleGetProfile(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		username := GetOptionalQueryParam(r, "username", "")

		profile, err := svc.Profile(r.Context(), userID, username, time.Now())
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}
