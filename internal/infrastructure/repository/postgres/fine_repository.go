package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/zdenekh/club-fines/internal/domain/fine"
)

type FineRepository struct {
	db *sqlx.DB
}

func NewFineRepository(db *sqlx.DB) *FineRepository {
	return &FineRepository{db: db}
}

func (r *FineRepository) ListByCategory(ctx context.Context, categoryID string) ([]fine.Fine, error) {
	const query = `
		SELECT id, player_id, category_id, fine_name, amount, fine_date, created_at, updated_at, deleted_at
		FROM fines
		WHERE category_id = $1 AND deleted_at IS NULL
		ORDER BY fine_date DESC, id`

	var rows []fineTableModel
	if err := r.db.SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, crerr.Wrap(err, "select fines by category")
	}

	out := make([]fine.Fine, 0, len(rows))
	for _, row := range rows {
		out = append(out, fineFromRow(row))
	}

	return out, nil
}

func (r *FineRepository) GetByID(ctx context.Context, fineID string) (fine.Fine, bool, error) {
	const query = `
		SELECT id, player_id, category_id, fine_name, amount, fine_date, created_at, updated_at, deleted_at
		FROM fines
		WHERE id = $1 AND deleted_at IS NULL`

	var row fineTableModel
	if err := r.db.GetContext(ctx, &row, query, fineID); err != nil {
		if isNotFound(err) {
			return fine.Fine{}, false, nil
		}
		return fine.Fine{}, false, crerr.Wrap(err, "get fine by id")
	}

	return fineFromRow(row), true, nil
}

// CreateBatch inserts every fine inside one transaction, so a submission that
// charges several players either lands completely or not at all.
func (r *FineRepository) CreateBatch(ctx context.Context, items []fine.Fine) error {
	if len(items) == 0 {
		return nil
	}

	const query = `
		INSERT INTO fines (id, player_id, category_id, fine_name, amount, fine_date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin fine batch")
	}
	defer func() { _ = tx.Rollback() }()

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, query,
			item.ID, item.PlayerID, item.CategoryID, item.Type, item.Amount, item.Date,
		); err != nil {
			return crerr.Wrap(err, "insert fine")
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit fine batch")
	}

	return nil
}

func (r *FineRepository) Delete(ctx context.Context, fineID string) error {
	const query = `
		UPDATE fines
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, fineID); err != nil {
		return crerr.Wrap(err, "delete fine")
	}

	return nil
}

func fineFromRow(row fineTableModel) fine.Fine {
	return fine.Fine{
		ID:         row.ID,
		PlayerID:   row.PlayerID,
		CategoryID: row.CategoryID,
		Type:       row.FineName,
		Amount:     row.Amount,
		Date:       row.FineDate,
	}
}
