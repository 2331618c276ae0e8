package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// AdminUsersErrorResponse represents an error response for the user listing
// swagger:model AdminUsersErrorResponse
type AdminUsersErrorResponse struct {
	// Error message
	// default: Forbidden
	Error string `json:"error"`
}

// NewAdminUsersHandler returns an HTTP handler listing every user. Routed
// behind the admin middleware.
// @Summary List all users
// @Tags admin
// @Produce json
// @Success 200 {array} handlers.UserResponse "Users"
// @Failure 401 {object} handlers.AdminUsersErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminUsersErrorResponse "Forbidden"
// @Router /admin/users [get]
// @Security BearerAuth
func NewAdminUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminUsersErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for _, user := range users {
			resp = append(resp, newUserResponse(user))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
