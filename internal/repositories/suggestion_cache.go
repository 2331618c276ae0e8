package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

const suggestionCacheKey = "suggestions"

// SuggestionCacheRepository caches assembled suggestion lists in Redis.
type SuggestionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached suggestions
}

// NewSuggestionCacheRepository creates a new repository instance with the given TTL.
func NewSuggestionCacheRepository(client *redis.Client, expiration time.Duration) *SuggestionCacheRepository {
	return &SuggestionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetSuggestions fetches the cached suggestion lists. Returns redis.Nil
// wrapped errors on cache miss.
func (r *SuggestionCacheRepository) GetSuggestions(ctx context.Context) (*models.Suggestions, error) {
	val, err := r.client.Get(ctx, suggestionCacheKey).Result()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", suggestionCacheKey,
			"error", err,
		)
		return nil, err
	}

	var s models.Suggestions
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		logger.Log.Errorw("cache decode",
			"key", suggestionCacheKey,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache get",
		"key", suggestionCacheKey,
		"error", nil,
	)

	return &s, nil
}

// SetSuggestions caches the suggestion lists with expiration.
func (r *SuggestionCacheRepository) SetSuggestions(ctx context.Context, s models.Suggestions) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, suggestionCacheKey, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", suggestionCacheKey,
		"error", err,
	)

	return err
}
