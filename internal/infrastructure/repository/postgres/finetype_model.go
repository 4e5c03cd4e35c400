package postgres

import "time"

type fineTypeTableModel struct {
	ID          string     `db:"id"`
	CategoryID  string     `db:"category_id"`
	Name        string     `db:"name"`
	UnitPrice   int64      `db:"unit_price"`
	Description string     `db:"description"`
	Active      bool       `db:"active"`
	HasQuantity bool       `db:"has_quantity"`
	Unit        string     `db:"unit"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}
