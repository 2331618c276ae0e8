package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

const profileHistoryColumns = `history_id, user_id, field, previous_value, new_value, updated_at`

// ProfileHistoryReadRepository handles profile history read operations
type ProfileHistoryReadRepository struct {
	db *sqlx.DB
}

func NewProfileHistoryReadRepository(db *sqlx.DB) *ProfileHistoryReadRepository {
	return &ProfileHistoryReadRepository{db: db}
}

// ListByUserID returns a user's profile changes, most recent first.
func (r *ProfileHistoryReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ProfileHistoryDB, error) {
	query := `
		SELECT ` + profileHistoryColumns + `
		FROM profile_history
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	history := make([]models.ProfileHistoryDB, 0)
	err := r.db.SelectContext(ctx, &history, query, userID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(history),
		"error", err,
	)

	return history, err
}

// ProfileHistoryWriteRepository appends profile history rows, one per
// changed tracked field. Rows are never updated or deleted.
type ProfileHistoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileHistoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileHistoryWriteRepository {
	return &ProfileHistoryWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProfileHistoryWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert appends one field-change row.
func (r *ProfileHistoryWriteRepository) Insert(ctx context.Context, row models.ProfileHistoryDB) (*models.ProfileHistoryDB, error) {
	query := `
		INSERT INTO profile_history (history_id, user_id, field, previous_value, new_value, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + profileHistoryColumns

	args := []any{uuid.New(), row.UserID, row.Field, row.PreviousValue, row.NewValue}

	var inserted models.ProfileHistoryDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &inserted, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{row.UserID, row.Field},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &inserted, nil
}
