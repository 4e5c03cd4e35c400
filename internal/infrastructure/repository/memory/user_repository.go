package memory

import (
	"context"
	"sync"
	"time"

	"github.com/zdenekh/club-fines/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	items map[string]user.User
}

func NewUserRepository(users []user.User) *UserRepository {
	items := make(map[string]user.User, len(users))
	for _, u := range users {
		items[u.ID] = u
	}

	return &UserRepository{items: items}
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Username == username {
			return u, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[userID]
	if !ok {
		return user.User{}, false, nil
	}

	return u, true, nil
}

func (r *UserRepository) RecordLoginFailure(_ context.Context, userID string, failedAttempts int, blockedUntil *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[userID]
	if !ok {
		return nil
	}
	u.FailedAttempts = failedAttempts
	u.BlockedUntil = blockedUntil
	r.items[userID] = u

	return nil
}

func (r *UserRepository) RecordLoginSuccess(_ context.Context, userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[userID]
	if !ok {
		return nil
	}
	u.FailedAttempts = 0
	u.BlockedUntil = nil
	u.LastLoginAt = &at
	r.items[userID] = u

	return nil
}
