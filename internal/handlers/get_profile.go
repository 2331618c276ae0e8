package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/middlewares"
	"github.com/avkorablev/skills-tracker/internal/models"
	"github.com/avkorablev/skills-tracker/internal/services"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// GetProfileErrorResponse represents an error response for profile retrieval
// swagger:model GetProfileErrorResponse
type GetProfileErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetProfileHandler returns an HTTP handler serving the requester's own profile.
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.UserResponse "Profile"
// @Failure 401 {object} handlers.GetProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.GetProfileErrorResponse "User not found"
// @Router /profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GetProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetProfileErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(*user))
	}
}
