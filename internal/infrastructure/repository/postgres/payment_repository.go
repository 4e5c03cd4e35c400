package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/zdenekh/club-fines/internal/domain/payment"
)

// PaymentRepository is append-only; rows are never updated or deleted.
type PaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) ListByCategory(ctx context.Context, categoryID string) ([]payment.Payment, error) {
	const query = `
		SELECT id, player_id, category_id, amount, payment_date, created_at
		FROM payments
		WHERE category_id = $1
		ORDER BY payment_date DESC, id`

	var rows []paymentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, crerr.Wrap(err, "select payments by category")
	}

	out := make([]payment.Payment, 0, len(rows))
	for _, row := range rows {
		out = append(out, paymentFromRow(row))
	}

	return out, nil
}

func (r *PaymentRepository) ListByPlayer(ctx context.Context, playerID string) ([]payment.Payment, error) {
	const query = `
		SELECT id, player_id, category_id, amount, payment_date, created_at
		FROM payments
		WHERE player_id = $1
		ORDER BY payment_date DESC, id`

	var rows []paymentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, playerID); err != nil {
		return nil, crerr.Wrap(err, "select payments by player")
	}

	out := make([]payment.Payment, 0, len(rows))
	for _, row := range rows {
		out = append(out, paymentFromRow(row))
	}

	return out, nil
}

func (r *PaymentRepository) Create(ctx context.Context, item payment.Payment) error {
	const query = `
		INSERT INTO payments (id, player_id, category_id, amount, payment_date)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.PlayerID, item.CategoryID, item.Amount, item.Date,
	); err != nil {
		return crerr.Wrap(err, "insert payment")
	}

	return nil
}

func paymentFromRow(row paymentTableModel) payment.Payment {
	return payment.Payment{
		ID:         row.ID,
		PlayerID:   row.PlayerID,
		CategoryID: row.CategoryID,
		Amount:     row.Amount,
		Date:       row.PaymentDate,
	}
}
