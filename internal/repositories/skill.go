package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

const skillColumns = `skill_id, user_id, name, level, certification_url, created_at, updated_at`

// SkillReadRepository handles skill read operations. Reads issued inside a
// request transaction go through that transaction, so the snapshot a
// mutation diffs against is the one it updates.
type SkillReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSkillReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SkillReadRepository {
	return &SkillReadRepository{db: db, txGetter: txGetter}
}

func (r *SkillReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns a skill by primary key. Returns nil when no row exists.
func (r *SkillReadRepository) GetByID(ctx context.Context, skillID uuid.UUID) (*models.SkillDB, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE skill_id = $1`

	var skill models.SkillDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &skill, query, skillID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skillID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

// ListByUserID returns all skills owned by a user, name ascending.
func (r *SkillReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE user_id = $1 ORDER BY name ASC`

	skills := make([]models.SkillDB, 0)
	err := sqlx.SelectContext(ctx, r.executor(ctx), &skills, query, userID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(skills),
		"error", err,
	)

	return skills, err
}

// ListAll returns every skill, newest first.
func (r *SkillReadRepository) ListAll(ctx context.Context) ([]models.SkillDB, error) {
	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY updated_at DESC`

	skills := make([]models.SkillDB, 0)
	err := sqlx.SelectContext(ctx, r.executor(ctx), &skills, query)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(skills),
		"error", err,
	)

	return skills, err
}

// LevelCounts returns the number of skills per proficiency level.
func (r *SkillReadRepository) LevelCounts(ctx context.Context) (map[string]int, error) {
	query := `SELECT level, COUNT(*) AS count FROM skills GROUP BY level`

	var rows []struct {
		Level string `db:"level"`
		Count int    `db:"count"`
	}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &rows, query)

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Level] = row.Count
	}

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", counts,
		"error", err,
	)

	return counts, err
}

// TopNames returns the most recorded skill names, descending by count.
func (r *SkillReadRepository) TopNames(ctx context.Context, limit int) ([]models.SkillNameCount, error) {
	query := `
		SELECT name, COUNT(*) AS count
		FROM skills
		GROUP BY name
		ORDER BY count DESC, name ASC
		LIMIT $1
	`

	names := make([]models.SkillNameCount, 0)
	err := sqlx.SelectContext(ctx, r.executor(ctx), &names, query, limit)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(names),
		"error", err,
	)

	return names, err
}

// SkillWriteRepository handles skill write operations
type SkillWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSkillWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SkillWriteRepository {
	return &SkillWriteRepository{db: db, txGetter: txGetter}
}

func (r *SkillWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert creates a new skill row and stamps both timestamps with NOW().
func (r *SkillWriteRepository) Insert(ctx context.Context, skill models.SkillDB) (*models.SkillDB, error) {
	query := `
		INSERT INTO skills (skill_id, user_id, name, level, certification_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + skillColumns

	args := []any{uuid.New(), skill.UserID, skill.Name, skill.Level, skill.CertificationURL}

	var created models.SkillDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &created, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skill.UserID, skill.Name, skill.Level},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update overwrites the mutable skill columns with the merged snapshot and
// refreshes updated_at. Returns sql.ErrNoRows when the skill is absent.
func (r *SkillWriteRepository) Update(ctx context.Context, skill models.SkillDB) (*models.SkillDB, error) {
	query := `
		UPDATE skills
		SET name = $2,
		    level = $3,
		    certification_url = $4,
		    updated_at = NOW()
		WHERE skill_id = $1
		RETURNING ` + skillColumns

	args := []any{skill.SkillID, skill.Name, skill.Level, skill.CertificationURL}

	var updated models.SkillDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skill.SkillID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &updated, nil
}
