package expense

import "context"

// Repository describes expense persistence needs from use cases.
type Repository interface {
	ListByCategory(ctx context.Context, categoryID string) ([]Expense, error)
	GetByID(ctx context.Context, expenseID string) (Expense, bool, error)
	Create(ctx context.Context, item Expense) error
	Delete(ctx context.Context, expenseID string) error
}
