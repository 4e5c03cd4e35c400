package postgres

import "time"

type playerTableModel struct {
	ID         string     `db:"id"`
	CategoryID string     `db:"category_id"`
	Name       string     `db:"name"`
	Role       string     `db:"role"`
	Email      string     `db:"email"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}
