package session

import "context"

// Repository describes session persistence needs from use cases.
type Repository interface {
	GetByToken(ctx context.Context, token string) (Session, bool, error)
	Create(ctx context.Context, item Session) error
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int, error)
}
