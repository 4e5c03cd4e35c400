package memory

import (
	"context"
	"sync"

	"github.com/zdenekh/club-fines/internal/domain/cashbox"
)

type CashBoxRepository struct {
	mu sync.RWMutex
	// keyed by category; one cash box per category
	items map[string]cashbox.CashBox
}

func NewCashBoxRepository(boxes []cashbox.CashBox) *CashBoxRepository {
	items := make(map[string]cashbox.CashBox, len(boxes))
	for _, b := range boxes {
		items[b.CategoryID] = b
	}

	return &CashBoxRepository{items: items}
}

func (r *CashBoxRepository) GetByCategory(_ context.Context, categoryID string) (cashbox.CashBox, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[categoryID]
	if !ok {
		return cashbox.CashBox{}, false, nil
	}

	return b, true, nil
}

// Upsert replaces the category's cash box, keeping the existing row ID when
// one is already stored.
func (r *CashBoxRepository) Upsert(_ context.Context, item cashbox.CashBox) (cashbox.CashBox, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.CategoryID]; ok {
		item.ID = existing.ID
	}
	r.items[item.CategoryID] = item

	return item, nil
}
