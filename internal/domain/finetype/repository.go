package finetype

import "context"

// Repository describes price-list persistence needs from use cases.
type Repository interface {
	ListByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]FineType, error)
	GetByID(ctx context.Context, fineTypeID string) (FineType, bool, error)
	Create(ctx context.Context, item FineType) error
	Update(ctx context.Context, item FineType) error
	Deactivate(ctx context.Context, fineTypeID string) error
}
