package fine

import "context"

// Repository describes fine persistence needs from use cases. CreateBatch is
// atomic: either every fine in the batch is stored or none of them are.
type Repository interface {
	ListByCategory(ctx context.Context, categoryID string) ([]Fine, error)
	GetByID(ctx context.Context, fineID string) (Fine, bool, error)
	CreateBatch(ctx context.Context, items []Fine) error
	Delete(ctx context.Context, fineID string) error
}
