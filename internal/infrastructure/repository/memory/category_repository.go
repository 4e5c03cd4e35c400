package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/zdenekh/club-fines/internal/domain/category"
)

type CategoryRepository struct {
	mu    sync.RWMutex
	items map[string]category.Category
}

func NewCategoryRepository(categories []category.Category) *CategoryRepository {
	items := make(map[string]category.Category, len(categories))
	for _, c := range categories {
		items[c.ID] = c
	}

	return &CategoryRepository{items: items}
}

func (r *CategoryRepository) List(_ context.Context) ([]category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]category.Category, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *CategoryRepository) GetByID(_ context.Context, categoryID string) (category.Category, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[categoryID]
	if !ok {
		return category.Category{}, false, nil
	}

	return c, true, nil
}

func (r *CategoryRepository) GetBySlug(_ context.Context, slug string) (category.Category, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if c.Slug == slug {
			return c, true, nil
		}
	}

	return category.Category{}, false, nil
}

func (r *CategoryRepository) Create(_ context.Context, item category.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *CategoryRepository) Update(_ context.Context, item category.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, categoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, categoryID)
	return nil
}
