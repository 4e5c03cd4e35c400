package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/zdenekh/club-fines/internal/domain/fine"
)

type FineRepository struct {
	mu    sync.RWMutex
	items map[string]fine.Fine
}

func NewFineRepository(fines []fine.Fine) *FineRepository {
	items := make(map[string]fine.Fine, len(fines))
	for _, f := range fines {
		items[f.ID] = f
	}

	return &FineRepository{items: items}
}

func (r *FineRepository) ListByCategory(_ context.Context, categoryID string) ([]fine.Fine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fine.Fine, 0)
	for _, f := range r.items {
		if f.CategoryID == categoryID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *FineRepository) GetByID(_ context.Context, fineID string) (fine.Fine, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[fineID]
	if !ok {
		return fine.Fine{}, false, nil
	}

	return f, true, nil
}

// CreateBatch stores every fine under one lock hold, so a reader never
// observes a half-written batch.
func (r *FineRepository) CreateBatch(_ context.Context, items []fine.Fine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range items {
		r.items[f.ID] = f
	}

	return nil
}

func (r *FineRepository) Delete(_ context.Context, fineID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, fineID)
	return nil
}
