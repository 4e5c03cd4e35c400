package postgres

import "time"

type fineTableModel struct {
	ID         string     `db:"id"`
	PlayerID   string     `db:"player_id"`
	CategoryID string     `db:"category_id"`
	FineName   string     `db:"fine_name"`
	Amount     int64      `db:"amount"`
	FineDate   time.Time  `db:"fine_date"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}
