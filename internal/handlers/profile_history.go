package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/middlewares"
	"github.com/avkorablev/skills-tracker/internal/models"
)

// ProfileHistoryLister defines the interface that the service must implement.
type ProfileHistoryLister interface {
	GetProfileHistory(ctx context.Context, userID uuid.UUID) ([]models.ProfileHistoryDB, error)
}

// ProfileHistoryErrorResponse represents an error response for profile history
// swagger:model ProfileHistoryErrorResponse
type ProfileHistoryErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewProfileHistoryHandler returns an HTTP handler listing the requester's
// own profile changes, most recent first.
// @Summary Get own profile history
// @Tags profile
// @Produce json
// @Success 200 {array} handlers.ProfileHistoryResponse "Profile changes, most recent first"
// @Failure 401 {object} handlers.ProfileHistoryErrorResponse "Unauthorized"
// @Router /profile/history [get]
// @Security BearerAuth
func NewProfileHistoryHandler(svc ProfileHistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileHistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		history, err := svc.GetProfileHistory(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileHistoryErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]ProfileHistoryResponse, 0, len(history))
		for _, row := range history {
			resp = append(resp, newProfileHistoryResponse(row))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
