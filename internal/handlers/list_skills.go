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

// SkillLister defines the interface that the service must implement.
type SkillLister interface {
	ListSkills(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error)
}

// ListSkillsErrorResponse represents an error response for skill listing
// swagger:model ListSkillsErrorResponse
type ListSkillsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewListSkillsHandler returns an HTTP handler listing the requester's own
// skills, sorted by name.
// @Summary List own skills
// @Tags skills
// @Produce json
// @Success 200 {array} handlers.SkillResponse "Skills"
// @Failure 401 {object} handlers.ListSkillsErrorResponse "Unauthorized"
// @Router /skills [get]
// @Security BearerAuth
func NewListSkillsHandler(svc SkillLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListSkillsErrorResponse{Error: "Unauthorized"})
			return
		}

		skills, err := svc.ListSkills(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListSkillsErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]SkillResponse, 0, len(skills))
		for _, skill := range skills {
			resp = append(resp, newSkillResponse(skill))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
