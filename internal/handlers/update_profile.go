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

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID, requesterID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, error)
}

// UpdateProfileRequest represents the JSON body for a profile update.
// Absent fields are left untouched.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// First name
	FirstName *string `json:"firstName"`

	// Last name
	LastName *string `json:"lastName"`

	// Project name
	// default: Atlas
	ProjectName *string `json:"projectName"`

	// Client name
	// default: Acme
	ClientName *string `json:"clientName"`

	// Role
	// default: Engineer
	Role *string `json:"role"`

	// Location
	// default: Berlin
	Location *string `json:"location"`
}

// UpdateProfileErrorResponse represents an error response for profile updates
// swagger:model UpdateProfileErrorResponse
type UpdateProfileErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewUpdateProfileHandler returns an HTTP handler for updating the
// requester's own profile. Each changed tracked field is recorded in the
// profile history before the profile itself is rewritten.
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} handlers.UserResponse "Updated profile"
// @Failure 400 {object} handlers.UpdateProfileErrorResponse "Invalid request"
// @Failure 401 {object} handlers.UpdateProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UpdateProfileErrorResponse "User not found"
// @Router /profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateProfileErrorResponse{Error: "Invalid request body"})
			return
		}

		upd := models.ProfileUpdate{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			ProjectName: req.ProjectName,
			ClientName:  req.ClientName,
			Role:        req.Role,
			Location:    req.Location,
		}

		updated, err := svc.UpdateProfile(r.Context(), claims.UserID, claims.UserID, upd)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{Error: "User not found"})
			case services.ErrForbidden:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{Error: "Forbidden"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(*updated))
	}
}
