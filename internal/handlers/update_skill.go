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

// SkillUpdater defines the interface that the service must implement.
type SkillUpdater interface {
	UpdateSkill(ctx context.Context, skillID, requesterID uuid.UUID, upd models.SkillUpdate) (*models.SkillDB, error)
}

// UpdateSkillRequest represents the JSON body for updating a skill.
// Absent fields keep their current values.
// swagger:model UpdateSkillRequest
type UpdateSkillRequest struct {
	// Skill name
	// default: Go
	Name *string `json:"name"`

	// Proficiency level
	// default: Expert
	Level *string `json:"level"`

	// Certification URL
	CertificationURL *string `json:"certificationUrl"`
}

// UpdateSkillErrorResponse represents an error response for skill updates
// swagger:model UpdateSkillErrorResponse
type UpdateSkillErrorResponse struct {
	// Error message
	// default: Skill not found
	Error string `json:"error"`
}

// NewUpdateSkillHandler returns an HTTP handler for updating a skill. A
// level or certification change records one history snapshot carrying the
// post-update values; a name-only change records none.
// @Summary Update a skill
// @Tags skills
// @Accept json
// @Produce json
// @Param skillID path string true "Skill ID"
// @Param updateSkillRequest body handlers.UpdateSkillRequest true "Skill update request"
// @Success 200 {object} handlers.SkillResponse "Updated skill"
// @Failure 400 {object} handlers.UpdateSkillErrorResponse "Invalid request"
// @Failure 401 {object} handlers.UpdateSkillErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UpdateSkillErrorResponse "Owner mismatch"
// @Failure 404 {object} handlers.UpdateSkillErrorResponse "Skill not found"
// @Router /skills/{skillID} [put]
// @Security BearerAuth
func NewUpdateSkillHandler(svc SkillUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateSkillErrorResponse{Error: "Unauthorized"})
			return
		}

		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateSkillErrorResponse{Error: "Invalid skill id"})
			return
		}

		var req UpdateSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateSkillErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Level != nil {
			if _, ok := validLevels[*req.Level]; !ok {
				logger.Log.Warnw("invalid skill level", "level", *req.Level)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateSkillErrorResponse{Error: "Invalid level"})
				return
			}
		}

		upd := models.SkillUpdate{
			Name:             req.Name,
			Level:            req.Level,
			CertificationURL: req.CertificationURL,
		}

		updated, err := svc.UpdateSkill(r.Context(), skillID, claims.UserID, upd)
		if err != nil {
			switch err {
			case services.ErrSkillNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateSkillErrorResponse{Error: "Skill not found"})
			case services.ErrForbidden:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(UpdateSkillErrorResponse{Error: "Forbidden"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateSkillErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newSkillResponse(*updated))
	}
}
