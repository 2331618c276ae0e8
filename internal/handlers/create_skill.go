package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/middlewares"
	"github.com/avkorablev/skills-tracker/internal/models"
	"github.com/avkorablev/skills-tracker/internal/services"
)

// SkillCreator defines the interface that the service must implement.
type SkillCreator interface {
	CreateSkill(ctx context.Context, requesterID uuid.UUID, skill models.SkillDB) (*models.SkillDB, error)
}

// CreateSkillRequest represents the JSON body for creating a skill
// swagger:model CreateSkillRequest
type CreateSkillRequest struct {
	// Owner user id
	// required: true
	UserID uuid.UUID `json:"userId"`

	// Skill name
	// required: true
	// default: Go
	Name string `json:"name"`

	// Proficiency level
	// required: true
	// default: Beginner
	Level string `json:"level"`

	// Certification URL
	CertificationURL *string `json:"certificationUrl"`
}

// CreateSkillErrorResponse represents an error response for skill creation
// swagger:model CreateSkillErrorResponse
type CreateSkillErrorResponse struct {
	// Error message
	// default: Invalid name or level
	Error string `json:"error"`
}

// NewCreateSkillHandler returns an HTTP handler for creating a skill.
// Creation always records one history snapshot of the new skill.
// @Summary Create a skill
// @Tags skills
// @Accept json
// @Produce json
// @Param createSkillRequest body handlers.CreateSkillRequest true "Skill creation request"
// @Success 201 {object} handlers.SkillResponse "Created skill"
// @Failure 400 {object} handlers.CreateSkillErrorResponse "Invalid name or level"
// @Failure 401 {object} handlers.CreateSkillErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.CreateSkillErrorResponse "Owner mismatch"
// @Router /skills [post]
// @Security BearerAuth
func NewCreateSkillHandler(svc SkillCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateSkillErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateSkillErrorResponse{Error: "Invalid request body"})
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateSkillErrorResponse{Error: "Invalid name or level"})
			return
		}
		if _, ok := validLevels[req.Level]; !ok {
			logger.Log.Warnw("invalid skill level", "level", req.Level)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateSkillErrorResponse{Error: "Invalid name or level"})
			return
		}

		skill := models.SkillDB{
			UserID:           req.UserID,
			Name:             req.Name,
			Level:            req.Level,
			CertificationURL: req.CertificationURL,
		}

		created, err := svc.CreateSkill(r.Context(), claims.UserID, skill)
		if err != nil {
			switch err {
			case services.ErrForbidden:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(CreateSkillErrorResponse{Error: "Forbidden"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateSkillErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newSkillResponse(*created))
	}
}
