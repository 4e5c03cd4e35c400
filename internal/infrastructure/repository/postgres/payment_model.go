package postgres

import "time"

type paymentTableModel struct {
	ID          string    `db:"id"`
	PlayerID    string    `db:"player_id"`
	CategoryID  string    `db:"category_id"`
	Amount      int64     `db:"amount"`
	PaymentDate time.Time `db:"payment_date"`
	CreatedAt   time.Time `db:"created_at"`
}
