package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/zdenekh/club-fines/internal/domain/session"
)

type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (session.Session, bool, error) {
	const query = `
		SELECT token, user_id, created_at, expires_at
		FROM sessions
		WHERE token = $1`

	var row sessionTableModel
	if err := r.db.GetContext(ctx, &row, query, token); err != nil {
		if isNotFound(err) {
			return session.Session{}, false, nil
		}
		return session.Session{}, false, crerr.Wrap(err, "get session by token")
	}

	return session.Session{
		Token:     row.Token,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}, true, nil
}

func (r *SessionRepository) Create(ctx context.Context, item session.Session) error {
	const query = `
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query,
		item.Token, item.UserID, item.CreatedAt, item.ExpiresAt,
	); err != nil {
		return crerr.Wrap(err, "insert session")
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	const query = `DELETE FROM sessions WHERE token = $1`

	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return crerr.Wrap(err, "delete session")
	}

	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int, error) {
	const query = `DELETE FROM sessions WHERE expires_at <= now()`

	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, crerr.Wrap(err, "delete expired sessions")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, crerr.Wrap(err, "count deleted sessions")
	}

	return int(affected), nil
}
