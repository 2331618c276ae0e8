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

const userColumns = `user_id, email, password_hash, first_name, last_name, project_name, client_name, role, location, access_role, created_at, updated_at`

// UserReadRepository handles user read operations. Reads issued inside a
// request transaction go through that transaction, so the snapshot a
// mutation diffs against is the one it updates.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

func (r *UserReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns a user by primary key. Returns nil when no row exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, userID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns a user by email. Returns nil when no row exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, email)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ListAll returns every user, newest first.
func (r *UserReadRepository) ListAll(ctx context.Context) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	users := make([]models.UserDB, 0)
	err := sqlx.SelectContext(ctx, r.executor(ctx), &users, query)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	return users, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user with only email and password hash set.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (user_id, email, password_hash, access_role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + userColumns

	args := []any{uuid.New(), email, passwordHash, models.AccessRoleUser}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update overwrites the mutable profile columns with the merged snapshot
// and refreshes updated_at. Returns sql.ErrNoRows when the user is absent.
func (r *UserWriteRepository) Update(ctx context.Context, user models.UserDB) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET first_name = $2,
		    last_name = $3,
		    project_name = $4,
		    client_name = $5,
		    role = $6,
		    location = $7,
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns

	args := []any{user.UserID, user.FirstName, user.LastName, user.ProjectName, user.ClientName, user.Role, user.Location}

	var updated models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &updated, nil
}
