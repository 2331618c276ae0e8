package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

// SuggestionGetter defines the interface that the service must implement.
type SuggestionGetter interface {
	GetSuggestions(ctx context.Context) (models.Suggestions, error)
}

// SuggestionsResponse represents autocomplete value lists
// swagger:model SuggestionsResponse
type SuggestionsResponse struct {
	Roles        []string `json:"roles"`
	ProjectNames []string `json:"projectNames"`
	ClientNames  []string `json:"clientNames"`
	Locations    []string `json:"locations"`
	SkillNames   []string `json:"skillNames"`
}

// SuggestionsErrorResponse represents an error response for suggestions
// swagger:model SuggestionsErrorResponse
type SuggestionsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewSuggestionsHandler returns an HTTP handler serving deduplicated field
// values for profile and skill autocomplete.
// @Summary Get autocomplete suggestions
// @Tags suggestions
// @Produce json
// @Success 200 {object} handlers.SuggestionsResponse "Suggestion lists"
// @Failure 401 {object} handlers.SuggestionsErrorResponse "Unauthorized"
// @Router /suggestions [get]
// @Security BearerAuth
func NewSuggestionsHandler(svc SuggestionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		suggestions, err := svc.GetSuggestions(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SuggestionsErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SuggestionsResponse{
			Roles:        suggestions.Roles,
			ProjectNames: suggestions.ProjectNames,
			ClientNames:  suggestions.ClientNames,
			Locations:    suggestions.Locations,
			SkillNames:   suggestions.SkillNames,
		})
	}
}
