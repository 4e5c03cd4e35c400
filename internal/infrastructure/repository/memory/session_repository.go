package memory

import (
	"context"
	"sync"
	"time"

	"github.com/zdenekh/club-fines/internal/domain/session"
)

type SessionRepository struct {
	mu    sync.RWMutex
	items map[string]session.Session
	now   func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		items: make(map[string]session.Session),
		now:   time.Now,
	}
}

func (r *SessionRepository) GetByToken(_ context.Context, token string) (session.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[token]
	if !ok {
		return session.Session{}, false, nil
	}

	return s, true, nil
}

func (r *SessionRepository) Create(_ context.Context, item session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.Token] = item
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, token)
	return nil
}

func (r *SessionRepository) DeleteExpired(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	removed := 0
	for token, s := range r.items {
		if s.Expired(now) {
			delete(r.items, token)
			removed++
		}
	}

	return removed, nil
}
