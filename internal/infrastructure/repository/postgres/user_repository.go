package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/zdenekh/club-fines/internal/domain/user"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	const query = `
		SELECT id, username, password_hash, role, category_id, active,
		       failed_attempts, blocked_until, last_login_at, created_at, updated_at
		FROM users
		WHERE username = $1`

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, username); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, crerr.Wrap(err, "get user by username")
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	const query = `
		SELECT id, username, password_hash, role, category_id, active,
		       failed_attempts, blocked_until, last_login_at, created_at, updated_at
		FROM users
		WHERE id = $1`

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, crerr.Wrap(err, "get user by id")
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) RecordLoginFailure(ctx context.Context, userID string, failedAttempts int, blockedUntil *time.Time) error {
	const query = `
		UPDATE users
		SET failed_attempts = $2, blocked_until = $3, updated_at = now()
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID, failedAttempts, blockedUntil); err != nil {
		return crerr.Wrap(err, "record login failure")
	}

	return nil
}

func (r *UserRepository) RecordLoginSuccess(ctx context.Context, userID string, at time.Time) error {
	const query = `
		UPDATE users
		SET failed_attempts = 0, blocked_until = NULL, last_login_at = $2, updated_at = now()
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID, at); err != nil {
		return crerr.Wrap(err, "record login success")
	}

	return nil
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:             row.ID,
		Username:       row.Username,
		PasswordHash:   row.PasswordHash,
		Role:           user.Role(row.Role),
		CategoryID:     row.CategoryID,
		Active:         row.Active,
		FailedAttempts: row.FailedAttempts,
		BlockedUntil:   row.BlockedUntil,
		LastLoginAt:    row.LastLoginAt,
	}
}
