package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

// AnalyticsProvider defines the interface that the service must implement.
type AnalyticsProvider interface {
	Analytics(ctx context.Context) (*models.Analytics, error)
}

// SkillNameCountResponse represents one entry of the top-skill list
// swagger:model SkillNameCountResponse
type SkillNameCountResponse struct {
	// Skill name
	// default: Go
	Name string `json:"name"`

	// Number of users recording the skill
	// default: 12
	Count int `json:"count"`
}

// AnalyticsResponse represents aggregated user and skill figures
// swagger:model AnalyticsResponse
type AnalyticsResponse struct {
	TotalUsers    int                      `json:"totalUsers"`
	TotalSkills   int                      `json:"totalSkills"`
	SkillsByLevel map[string]int           `json:"skillsByLevel"`
	TopSkills     []SkillNameCountResponse `json:"topSkills"`
}

// AnalyticsErrorResponse represents an error response for analytics
// swagger:model AnalyticsErrorResponse
type AnalyticsErrorResponse struct {
	// Error message
	// default: Forbidden
	Error string `json:"error"`
}

// NewAnalyticsHandler returns an HTTP handler serving the admin dashboard
// aggregates. Routed behind the admin middleware.
// @Summary Get analytics
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AnalyticsResponse "Aggregates"
// @Failure 401 {object} handlers.AnalyticsErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AnalyticsErrorResponse "Forbidden"
// @Router /admin/analytics [get]
// @Security BearerAuth
func NewAnalyticsHandler(svc AnalyticsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		analytics, err := svc.Analytics(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Internal server error"})
			return
		}

		top := make([]SkillNameCountResponse, 0, len(analytics.TopSkills))
		for _, entry := range analytics.TopSkills {
			top = append(top, SkillNameCountResponse{Name: entry.Name, Count: entry.Count})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AnalyticsResponse{
			TotalUsers:    analytics.TotalUsers,
			TotalSkills:   analytics.TotalSkills,
			SkillsByLevel: analytics.SkillsByLevel,
			TopSkills:     top,
		})
	}
}
