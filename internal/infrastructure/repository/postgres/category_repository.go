package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/zdenekh/club-fines/internal/domain/category"
)

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	const query = `
		SELECT id, name, slug, description, active, sort_order, created_at, updated_at, deleted_at
		FROM categories
		WHERE deleted_at IS NULL
		ORDER BY sort_order, name`

	var rows []categoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "select categories")
	}

	out := make([]category.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, categoryFromRow(row))
	}

	return out, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID string) (category.Category, bool, error) {
	const query = `
		SELECT id, name, slug, description, active, sort_order, created_at, updated_at, deleted_at
		FROM categories
		WHERE id = $1 AND deleted_at IS NULL`

	var row categoryTableModel
	if err := r.db.GetContext(ctx, &row, query, categoryID); err != nil {
		if isNotFound(err) {
			return category.Category{}, false, nil
		}
		return category.Category{}, false, crerr.Wrap(err, "get category by id")
	}

	return categoryFromRow(row), true, nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (category.Category, bool, error) {
	const query = `
		SELECT id, name, slug, description, active, sort_order, created_at, updated_at, deleted_at
		FROM categories
		WHERE slug = $1 AND deleted_at IS NULL`

	var row categoryTableModel
	if err := r.db.GetContext(ctx, &row, query, slug); err != nil {
		if isNotFound(err) {
			return category.Category{}, false, nil
		}
		return category.Category{}, false, crerr.Wrap(err, "get category by slug")
	}

	return categoryFromRow(row), true, nil
}

func (r *CategoryRepository) Create(ctx context.Context, item category.Category) error {
	const query = `
		INSERT INTO categories (id, name, slug, description, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Slug, item.Description, item.Active, item.Order,
	); err != nil {
		return crerr.Wrap(err, "insert category")
	}

	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, item category.Category) error {
	const query = `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, active = $5, sort_order = $6, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Slug, item.Description, item.Active, item.Order,
	); err != nil {
		return crerr.Wrap(err, "update category")
	}

	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID string) error {
	const query = `
		UPDATE categories
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, categoryID); err != nil {
		return crerr.Wrap(err, "delete category")
	}

	return nil
}

func categoryFromRow(row categoryTableModel) category.Category {
	return category.Category{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		Active:      row.Active,
		Order:       row.SortOrder,
	}
}
