package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/zdenekh/club-fines/internal/domain/cashbox"
)

type CashBoxRepository struct {
	db *sqlx.DB
}

func NewCashBoxRepository(db *sqlx.DB) *CashBoxRepository {
	return &CashBoxRepository{db: db}
}

func (r *CashBoxRepository) GetByCategory(ctx context.Context, categoryID string) (cashbox.CashBox, bool, error) {
	const query = `
		SELECT id, category_id, manual_amount, description, created_at, updated_at
		FROM cash_boxes
		WHERE category_id = $1`

	var row cashBoxTableModel
	if err := r.db.GetContext(ctx, &row, query, categoryID); err != nil {
		if isNotFound(err) {
			return cashbox.CashBox{}, false, nil
		}
		return cashbox.CashBox{}, false, crerr.Wrap(err, "get cash box by category")
	}

	return cashBoxFromRow(row), true, nil
}

// Upsert relies on the unique index on category_id; a conflicting insert
// turns into an update that keeps the original row id.
func (r *CashBoxRepository) Upsert(ctx context.Context, item cashbox.CashBox) (cashbox.CashBox, error) {
	const query = `
		INSERT INTO cash_boxes (id, category_id, manual_amount, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (category_id) DO UPDATE
		SET manual_amount = EXCLUDED.manual_amount,
		    description = EXCLUDED.description,
		    updated_at = now()
		RETURNING id, category_id, manual_amount, description, created_at, updated_at`

	var row cashBoxTableModel
	if err := r.db.GetContext(ctx, &row, query,
		item.ID, item.CategoryID, item.ManualAmount, item.Description,
	); err != nil {
		return cashbox.CashBox{}, crerr.Wrap(err, "upsert cash box")
	}

	return cashBoxFromRow(row), nil
}

func cashBoxFromRow(row cashBoxTableModel) cashbox.CashBox {
	return cashbox.CashBox{
		ID:           row.ID,
		CategoryID:   row.CategoryID,
		ManualAmount: row.ManualAmount,
		Description:  row.Description,
	}
}
