package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/avkorablev/skills-tracker/internal/logger"
)

// profileSuggestionColumns whitelists the user columns suggestions may be
// built from.
var profileSuggestionColumns = map[string]struct{}{
	"role":         {},
	"project_name": {},
	"client_name":  {},
	"location":     {},
}

// SuggestionReadRepository assembles deduplicated field values for
// autocomplete.
type SuggestionReadRepository struct {
	db *sqlx.DB
}

func NewSuggestionReadRepository(db *sqlx.DB) *SuggestionReadRepository {
	return &SuggestionReadRepository{db: db}
}

// DistinctProfileValues returns the distinct non-empty values of one
// whitelisted user column, sorted ascending.
func (r *SuggestionReadRepository) DistinctProfileValues(ctx context.Context, column string) ([]string, error) {
	if _, ok := profileSuggestionColumns[column]; !ok {
		return nil, fmt.Errorf("column %q is not a suggestion source", column)
	}

	query := fmt.Sprintf(
		`SELECT DISTINCT %s FROM users WHERE %s IS NOT NULL AND %s <> '' ORDER BY %s ASC`,
		column, column, column, column,
	)

	values := make([]string, 0)
	err := r.db.SelectContext(ctx, &values, query)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(values),
		"error", err,
	)

	return values, err
}

// DistinctSkillNames returns the distinct skill names, sorted ascending.
func (r *SuggestionReadRepository) DistinctSkillNames(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT name FROM skills ORDER BY name ASC`

	names := make([]string, 0)
	err := r.db.SelectContext(ctx, &names, query)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(names),
		"error", err,
	)

	return names, err
}
