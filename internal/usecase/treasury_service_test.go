package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/zdenekh/club-fines/internal/infrastructure/repository/memory"
)

func newTreasuryService() (*TreasuryService, *memory.CashBoxRepository, *memory.ExpenseRepository) {
	cashBoxRepo := memory.NewCashBoxRepository(nil)
	expenseRepo := memory.NewExpenseRepository(nil)
	svc := NewTreasuryService(
		memory.NewCategoryRepository(memory.SeedCategories()),
		cashBoxRepo,
		expenseRepo,
		&seqIDGenerator{prefix: "tr"},
		nil,
	)
	svc.now = func() time.Time { return time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC) }

	return svc, cashBoxRepo, expenseRepo
}

func TestTreasuryService_UpsertCashBox_KeepsRowIdentity(t *testing.T) {
	svc, _, _ := newTreasuryService()

	first, err := svc.UpsertCashBox(t.Context(), UpsertCashBoxInput{
		CategoryID:   memory.CategoryIDMen,
		ManualAmount: 500,
		Description:  "Opening float",
	})
	if err != nil {
		t.Fatalf("upsert cash box: %v", err)
	}

	second, err := svc.UpsertCashBox(t.Context(), UpsertCashBoxInput{
		CategoryID:   memory.CategoryIDMen,
		ManualAmount: 800,
	})
	if err != nil {
		t.Fatalf("upsert cash box again: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("upsert replaced the row identity: first=%s second=%s", first.ID, second.ID)
	}
	if second.ManualAmount != 800 {
		t.Fatalf("unexpected amount after upsert: got=%d want=800", second.ManualAmount)
	}

	got, exists, err := svc.GetCashBox(t.Context(), memory.CategoryIDMen)
	if err != nil {
		t.Fatalf("get cash box: %v", err)
	}
	if !exists || got.ManualAmount != 800 {
		t.Fatalf("unexpected stored cash box: exists=%v amount=%d", exists, got.ManualAmount)
	}
}

func TestTreasuryService_UpsertCashBox_UnknownCategory(t *testing.T) {
	svc, _, _ := newTreasuryService()

	_, err := svc.UpsertCashBox(t.Context(), UpsertCashBoxInput{
		CategoryID:   "cat-ghost",
		ManualAmount: 100,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTreasuryService_AddExpense_Validation(t *testing.T) {
	svc, _, _ := newTreasuryService()

	_, err := svc.AddExpense(t.Context(), AddExpenseInput{
		CategoryID:  memory.CategoryIDMen,
		Amount:      0,
		Description: "Nothing",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero amount, got %v", err)
	}

	_, err = svc.AddExpense(t.Context(), AddExpenseInput{
		CategoryID:  memory.CategoryIDMen,
		Amount:      100,
		Description: "   ",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank description, got %v", err)
	}
}

func TestTreasuryService_AddExpense_DefaultsDateToToday(t *testing.T) {
	svc, _, _ := newTreasuryService()

	got, err := svc.AddExpense(t.Context(), AddExpenseInput{
		CategoryID:  memory.CategoryIDMen,
		Amount:      300,
		Description: "New balls",
	})
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}

	wantDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	if !got.Date.Equal(wantDate) {
		t.Fatalf("unexpected expense date: got=%s want=%s", got.Date, wantDate)
	}
}

func TestTreasuryService_DeleteExpense_CategoryScope(t *testing.T) {
	svc, _, expenseRepo := newTreasuryService()

	got, err := svc.AddExpense(t.Context(), AddExpenseInput{
		CategoryID:  memory.CategoryIDMen,
		Amount:      120,
		Description: "Referee fee",
	})
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}

	if err := svc.DeleteExpense(t.Context(), memory.CategoryIDWomen, got.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-category delete, got %v", err)
	}
	if err := svc.DeleteExpense(t.Context(), memory.CategoryIDMen, got.ID); err != nil {
		t.Fatalf("delete expense: %v", err)
	}

	items, err := expenseRepo.ListByCategory(t.Context(), memory.CategoryIDMen)
	if err != nil {
		t.Fatalf("list expenses: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected expense to be deleted, got %d rows", len(items))
	}
}
