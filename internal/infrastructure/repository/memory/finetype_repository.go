package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/zdenekh/club-fines/internal/domain/finetype"
)

type FineTypeRepository struct {
	mu    sync.RWMutex
	items map[string]finetype.FineType
}

func NewFineTypeRepository(fineTypes []finetype.FineType) *FineTypeRepository {
	items := make(map[string]finetype.FineType, len(fineTypes))
	for _, ft := range fineTypes {
		items[ft.ID] = ft
	}

	return &FineTypeRepository{items: items}
}

func (r *FineTypeRepository) ListByCategory(_ context.Context, categoryID string, activeOnly bool) ([]finetype.FineType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]finetype.FineType, 0)
	for _, ft := range r.items {
		if ft.CategoryID != categoryID {
			continue
		}
		if activeOnly && !ft.Active {
			continue
		}
		out = append(out, ft)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *FineTypeRepository) GetByID(_ context.Context, fineTypeID string) (finetype.FineType, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ft, ok := r.items[fineTypeID]
	if !ok {
		return finetype.FineType{}, false, nil
	}

	return ft, true, nil
}

func (r *FineTypeRepository) Create(_ context.Context, item finetype.FineType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *FineTypeRepository) Update(_ context.Context, item finetype.FineType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *FineTypeRepository) Deactivate(_ context.Context, fineTypeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ft, ok := r.items[fineTypeID]
	if !ok {
		return nil
	}
	ft.Active = false
	r.items[fineTypeID] = ft

	return nil
}
