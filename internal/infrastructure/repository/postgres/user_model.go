package postgres

import "time"

type userTableModel struct {
	ID             string     `db:"id"`
	Username       string     `db:"username"`
	PasswordHash   string     `db:"password_hash"`
	Role           string     `db:"role"`
	CategoryID     string     `db:"category_id"`
	Active         bool       `db:"active"`
	FailedAttempts int        `db:"failed_attempts"`
	BlockedUntil   *time.Time `db:"blocked_until"`
	LastLoginAt    *time.Time `db:"last_login_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}
