package user

import (
	"context"
	"time"
)

// Repository describes administrator account persistence needs.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	GetByID(ctx context.Context, userID string) (User, bool, error)
	RecordLoginFailure(ctx context.Context, userID string, failedAttempts int, blockedUntil *time.Time) error
	RecordLoginSuccess(ctx context.Context, userID string, at time.Time) error
}
