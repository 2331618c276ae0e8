package services

import (
	"context"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

// SuggestionReader assembles deduplicated field values from the store.
type SuggestionReader interface {
	DistinctProfileValues(ctx context.Context, column string) ([]string, error)
	DistinctSkillNames(ctx context.Context) ([]string, error)
}

// SuggestionCache caches assembled suggestion lists.
type SuggestionCache interface {
	GetSuggestions(ctx context.Context) (*models.Suggestions, error)
	SetSuggestions(ctx context.Context, s models.Suggestions) error
}

// SuggestionService assembles autocomplete lists with a cache-aside Redis
// layer. Suggestion reads are non-critical: a failed list degrades to empty
// rather than failing the request.
type SuggestionService struct {
	reader SuggestionReader
	cache  SuggestionCache
}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService(reader SuggestionReader, cache SuggestionCache) *SuggestionService {
	return &SuggestionService{
		reader: reader,
		cache:  cache,
	}
}

// GetSuggestions returns the deduplicated field-value lists for profile and
// skill autocomplete.
func (s *SuggestionService) GetSuggestions(ctx context.Context) (models.Suggestions, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSuggestions(ctx); err == nil && cached != nil {
			return *cached, nil
		}
	}

	suggestions := models.Suggestions{
		Roles:        s.profileValues(ctx, "role"),
		ProjectNames: s.profileValues(ctx, "project_name"),
		ClientNames:  s.profileValues(ctx, "client_name"),
		Locations:    s.profileValues(ctx, "location"),
		SkillNames:   s.skillNames(ctx),
	}

	if s.cache != nil {
		if err := s.cache.SetSuggestions(ctx, suggestions); err != nil {
			logger.Log.Errorw("failed to cache suggestions", "error", err)
		}
	}

	return suggestions, nil
}

func (s *SuggestionService) profileValues(ctx context.Context, column string) []string {
	values, err := s.reader.DistinctProfileValues(ctx, column)
	if err != nil {
		logger.Log.Errorw("failed to read suggestion values", "column", column, "error", err)
		return []string{}
	}
	return values
}

func (s *SuggestionService) skillNames(ctx context.Context) []string {
	names, err := s.reader.DistinctSkillNames(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read skill name suggestions", "error", err)
		return []string{}
	}
	return names
}
