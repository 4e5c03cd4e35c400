package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/zdenekh/club-fines/internal/domain/finetype"
)

type FineTypeRepository struct {
	db *sqlx.DB
}

func NewFineTypeRepository(db *sqlx.DB) *FineTypeRepository {
	return &FineTypeRepository{db: db}
}

func (r *FineTypeRepository) ListByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]finetype.FineType, error) {
	query := `
		SELECT id, category_id, name, unit_price, description, active, has_quantity, unit,
		       created_at, updated_at, deleted_at
		FROM fine_types
		WHERE category_id = $1 AND deleted_at IS NULL`
	if activeOnly {
		query += ` AND active`
	}
	query += ` ORDER BY name`

	var rows []fineTypeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, crerr.Wrap(err, "select fine types by category")
	}

	out := make([]finetype.FineType, 0, len(rows))
	for _, row := range rows {
		out = append(out, fineTypeFromRow(row))
	}

	return out, nil
}

func (r *FineTypeRepository) GetByID(ctx context.Context, fineTypeID string) (finetype.FineType, bool, error) {
	const query = `
		SELECT id, category_id, name, unit_price, description, active, has_quantity, unit,
		       created_at, updated_at, deleted_at
		FROM fine_types
		WHERE id = $1 AND deleted_at IS NULL`

	var row fineTypeTableModel
	if err := r.db.GetContext(ctx, &row, query, fineTypeID); err != nil {
		if isNotFound(err) {
			return finetype.FineType{}, false, nil
		}
		return finetype.FineType{}, false, crerr.Wrap(err, "get fine type by id")
	}

	return fineTypeFromRow(row), true, nil
}

func (r *FineTypeRepository) Create(ctx context.Context, item finetype.FineType) error {
	const query = `
		INSERT INTO fine_types (id, category_id, name, unit_price, description, active, has_quantity, unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.CategoryID, item.Name, item.UnitPrice,
		item.Description, item.Active, item.HasQuantity, item.Unit,
	); err != nil {
		return crerr.Wrap(err, "insert fine type")
	}

	return nil
}

func (r *FineTypeRepository) Update(ctx context.Context, item finetype.FineType) error {
	const query = `
		UPDATE fine_types
		SET name = $2, unit_price = $3, description = $4, has_quantity = $5, unit = $6, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.UnitPrice, item.Description, item.HasQuantity, item.Unit,
	); err != nil {
		return crerr.Wrap(err, "update fine type")
	}

	return nil
}

func (r *FineTypeRepository) Deactivate(ctx context.Context, fineTypeID string) error {
	const query = `
		UPDATE fine_types
		SET active = FALSE, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, fineTypeID); err != nil {
		return crerr.Wrap(err, "deactivate fine type")
	}

	return nil
}

func fineTypeFromRow(row fineTypeTableModel) finetype.FineType {
	return finetype.FineType{
		ID:          row.ID,
		CategoryID:  row.CategoryID,
		Name:        row.Name,
		UnitPrice:   row.UnitPrice,
		Description: row.Description,
		Active:      row.Active,
		HasQuantity: row.HasQuantity,
		Unit:        row.Unit,
	}
}
