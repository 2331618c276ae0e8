package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

const skillHistoryColumns = `history_id, skill_id, user_id, name, level, certification_url, updated_at`

// SkillHistoryReadRepository handles skill history read operations
type SkillHistoryReadRepository struct {
	db *sqlx.DB
}

func NewSkillHistoryReadRepository(db *sqlx.DB) *SkillHistoryReadRepository {
	return &SkillHistoryReadRepository{db: db}
}

// ListBySkillID returns the history of a skill, most recent first.
func (r *SkillHistoryReadRepository) ListBySkillID(ctx context.Context, skillID uuid.UUID) ([]models.SkillHistoryDB, error) {
	query := `
		SELECT ` + skillHistoryColumns + `
		FROM skill_history
		WHERE skill_id = $1
		ORDER BY updated_at DESC
	`

	history := make([]models.SkillHistoryDB, 0)
	err := r.db.SelectContext(ctx, &history, query, skillID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skillID},
		"result", len(history),
		"error", err,
	)

	return history, err
}

// SkillHistoryWriteRepository appends skill history rows. Rows are never
// updated or deleted: this table is the durable audit log.
type SkillHistoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSkillHistoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SkillHistoryWriteRepository {
	return &SkillHistoryWriteRepository{db: db, txGetter: txGetter}
}

func (r *SkillHistoryWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert appends one snapshot row. NOW() resolves to the transaction start
// time, so within one mutation the history row and the skill row carry the
// same updated_at.
func (r *SkillHistoryWriteRepository) Insert(ctx context.Context, snapshot models.SkillHistoryDB) (*models.SkillHistoryDB, error) {
	query := `
		INSERT INTO skill_history (history_id, skill_id, user_id, name, level, certification_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + skillHistoryColumns

	args := []any{uuid.New(), snapshot.SkillID, snapshot.UserID, snapshot.Name, snapshot.Level, snapshot.CertificationURL}

	var inserted models.SkillHistoryDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &inserted, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{snapshot.SkillID, snapshot.Level},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &inserted, nil
}
