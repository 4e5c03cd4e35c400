package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/zdenekh/club-fines/internal/domain/payment"
)

type PaymentRepository struct {
	mu    sync.RWMutex
	items map[string]payment.Payment
}

func NewPaymentRepository(payments []payment.Payment) *PaymentRepository {
	items := make(map[string]payment.Payment, len(payments))
	for _, p := range payments {
		items[p.ID] = p
	}

	return &PaymentRepository{items: items}
}

func (r *PaymentRepository) ListByCategory(_ context.Context, categoryID string) ([]payment.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]payment.Payment, 0)
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	sortPayments(out)

	return out, nil
}

func (r *PaymentRepository) ListByPlayer(_ context.Context, playerID string) ([]payment.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]payment.Payment, 0)
	for _, p := range r.items {
		if p.PlayerID == playerID {
			out = append(out, p)
		}
	}
	sortPayments(out)

	return out, nil
}

func (r *PaymentRepository) Create(_ context.Context, item payment.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func sortPayments(items []payment.Payment) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.After(items[j].Date)
		}
		return items[i].ID < items[j].ID
	})
}
