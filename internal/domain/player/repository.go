package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByCategory(ctx context.Context, categoryID string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	GetByIDs(ctx context.Context, categoryID string, playerIDs []string) ([]Player, error)
	Create(ctx context.Context, item Player) error
	Update(ctx context.Context, item Player) error
	Delete(ctx context.Context, playerID string) error
}
