package postgres

import "time"

type expenseTableModel struct {
	ID          string     `db:"id"`
	CategoryID  string     `db:"category_id"`
	Amount      int64      `db:"amount"`
	Description string     `db:"description"`
	ExpenseDate time.Time  `db:"expense_date"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}
