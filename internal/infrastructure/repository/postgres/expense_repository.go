package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/zdenekh/club-fines/internal/domain/expense"
)

type ExpenseRepository struct {
	db *sqlx.DB
}

func NewExpenseRepository(db *sqlx.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) ListByCategory(ctx context.Context, categoryID string) ([]expense.Expense, error) {
	const query = `
		SELECT id, category_id, amount, description, expense_date, created_at, updated_at, deleted_at
		FROM expenses
		WHERE category_id = $1 AND deleted_at IS NULL
		ORDER BY expense_date DESC, id`

	var rows []expenseTableModel
	if err := r.db.SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, crerr.Wrap(err, "select expenses by category")
	}

	out := make([]expense.Expense, 0, len(rows))
	for _, row := range rows {
		out = append(out, expenseFromRow(row))
	}

	return out, nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, expenseID string) (expense.Expense, bool, error) {
	const query = `
		SELECT id, category_id, amount, description, expense_date, created_at, updated_at, deleted_at
		FROM expenses
		WHERE id = $1 AND deleted_at IS NULL`

	var row expenseTableModel
	if err := r.db.GetContext(ctx, &row, query, expenseID); err != nil {
		if isNotFound(err) {
			return expense.Expense{}, false, nil
		}
		return expense.Expense{}, false, crerr.Wrap(err, "get expense by id")
	}

	return expenseFromRow(row), true, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, item expense.Expense) error {
	const query = `
		INSERT INTO expenses (id, category_id, amount, description, expense_date)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.CategoryID, item.Amount, item.Description, item.Date,
	); err != nil {
		return crerr.Wrap(err, "insert expense")
	}

	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, expenseID string) error {
	const query = `
		UPDATE expenses
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, expenseID); err != nil {
		return crerr.Wrap(err, "delete expense")
	}

	return nil
}

func expenseFromRow(row expenseTableModel) expense.Expense {
	return expense.Expense{
		ID:          row.ID,
		CategoryID:  row.CategoryID,
		Amount:      row.Amount,
		Description: row.Description,
		Date:        row.ExpenseDate,
	}
}
