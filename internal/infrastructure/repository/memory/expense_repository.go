package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/zdenekh/club-fines/internal/domain/expense"
)

type ExpenseRepository struct {
	mu    sync.RWMutex
	items map[string]expense.Expense
}

func NewExpenseRepository(expenses []expense.Expense) *ExpenseRepository {
	items := make(map[string]expense.Expense, len(expenses))
	for _, e := range expenses {
		items[e.ID] = e
	}

	return &ExpenseRepository{items: items}
}

func (r *ExpenseRepository) ListByCategory(_ context.Context, categoryID string) ([]expense.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]expense.Expense, 0)
	for _, e := range r.items {
		if e.CategoryID == categoryID {
			out = append(out, e)
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

func (r *ExpenseRepository) GetByID(_ context.Context, expenseID string) (expense.Expense, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[expenseID]
	if !ok {
		return expense.Expense{}, false, nil
	}

	return e, true, nil
}

func (r *ExpenseRepository) Create(_ context.Context, item expense.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *ExpenseRepository) Delete(_ context.Context, expenseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, expenseID)
	return nil
}
