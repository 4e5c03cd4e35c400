package category

import "context"

// Repository describes category persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, categoryID string) (Category, bool, error)
	GetBySlug(ctx context.Context, slug string) (Category, bool, error)
	Create(ctx context.Context, item Category) error
	Update(ctx context.Context, item Category) error
	Delete(ctx context.Context, categoryID string) error
}
