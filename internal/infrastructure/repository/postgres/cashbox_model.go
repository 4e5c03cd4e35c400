package postgres

import "time"

type cashBoxTableModel struct {
	ID           string    `db:"id"`
	CategoryID   string    `db:"category_id"`
	ManualAmount int64     `db:"manual_amount"`
	Description  string    `db:"description"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
