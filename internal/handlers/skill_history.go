package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/middlewares"
	"github.com/avkorablev/skills-tracker/internal/models"
	"github.com/avkorablev/skills-tracker/internal/services"
)

// SkillHistoryLister defines the interface that the service must implement.
type SkillHistoryLister interface {
	GetSkillHistory(ctx context.Context, skillID, requesterID uuid.UUID, admin bool) ([]models.SkillHistoryDB, error)
}

// SkillHistoryErrorResponse represents an error response for skill history
// swagger:model SkillHistoryErrorResponse
type SkillHistoryErrorResponse struct {
	// Error message
	// default: Skill not found
	Error string `json:"error"`
}

// NewSkillHistoryHandler returns an HTTP handler listing a skill's history,
// most recent first. Only the owner or an admin may read it.
// @Summary Get a skill's history
// @Tags skills
// @Produce json
// @Param skillID path string true "Skill ID"
// @Success 200 {array} handlers.SkillHistoryResponse "Snapshots, most recent first"
// @Failure 400 {object} handlers.SkillHistoryErrorResponse "Invalid skill id"
// @Failure 401 {object} handlers.SkillHistoryErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.SkillHistoryErrorResponse "Not the owner"
// @Failure 404 {object} handlers.SkillHistoryErrorResponse "Skill not found"
// @Router /skills/{skillID}/history [get]
// @Security BearerAuth
func NewSkillHistoryHandler(svc SkillHistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SkillHistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SkillHistoryErrorResponse{Error: "Invalid skill id"})
			return
		}

		history, err := svc.GetSkillHistory(r.Context(), skillID, claims.UserID, claims.IsAdmin())
		if err != nil {
			switch err {
			case services.ErrSkillNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SkillHistoryErrorResponse{Error: "Skill not found"})
			case services.ErrForbidden:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(SkillHistoryErrorResponse{Error: "Forbidden"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SkillHistoryErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := make([]SkillHistoryResponse, 0, len(history))
		for _, row := range history {
			resp = append(resp, newSkillHistoryResponse(row))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
