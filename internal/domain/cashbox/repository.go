package cashbox

import "context"

// Repository describes cash box persistence needs from use cases. Upsert is
// keyed by category; the storage layer enforces the one-row-per-category
// invariant.
type Repository interface {
	GetByCategory(ctx context.Context, categoryID string) (CashBox, bool, error)
	Upsert(ctx context.Context, item CashBox) (CashBox, error)
}
