package payment

import "context"

// Repository describes payment persistence needs from use cases. There is no
// delete: recorded payments stay on the books.
type Repository interface {
	ListByCategory(ctx context.Context, categoryID string) ([]Payment, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Payment, error)
	Create(ctx context.Context, item Payment) error
}
