package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

// AdminSkillLister defines the interface that the service must implement.
type AdminSkillLister interface {
	ListSkills(ctx context.Context) ([]models.SkillDB, error)
}

// AdminSkillsErrorResponse represents an error response for the skill listing
// swagger:model AdminSkillsErrorResponse
type AdminSkillsErrorResponse struct {
	// Error message
	// default: Forbidden
	Error string `json:"error"`
}

// NewAdminSkillsHandler returns an HTTP handler listing every skill. Routed
// behind the admin middleware.
// @Summary List all skills
// @Tags admin
// @Produce json
// @Success 200 {array} handlers.SkillResponse "Skills"
// @Failure 401 {object} handlers.AdminSkillsErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminSkillsErrorResponse "Forbidden"
// @Router /admin/skills [get]
// @Security BearerAuth
func NewAdminSkillsHandler(svc AdminSkillLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		skills, err := svc.ListSkills(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminSkillsErrorResponse{Error: "Internal server error"})
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
