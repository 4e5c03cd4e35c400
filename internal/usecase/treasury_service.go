package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zdenekh/club-fines/internal/domain/cashbox"
	"github.com/zdenekh/club-fines/internal/domain/category"
	"github.com/zdenekh/club-fines/internal/domain/expense"
	idgen "github.com/zdenekh/club-fines/internal/platform/id"
	"github.com/zdenekh/club-fines/internal/platform/logging"
)

type UpsertCashBoxInput struct {
	CategoryID   string
	ManualAmount int64
	Description  string
}

type AddExpenseInput struct {
	CategoryID  string
	Amount      int64
	Description string
	// Date is optional; it defaults to today.
	Date *time.Time
}

// TreasuryService maintains the manual cash float and the expense ledger
// feeding the availability figures of the reconciliation summary.
type TreasuryService struct {
	categoryRepo category.Repository
	cashBoxRepo  cashbox.Repository
	expenseRepo  expense.Repository
	idGen        idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewTreasuryService(
	categoryRepo category.Repository,
	cashBoxRepo cashbox.Repository,
	expenseRepo expense.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TreasuryService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &TreasuryService{
		categoryRepo: categoryRepo,
		cashBoxRepo:  cashBoxRepo,
		expenseRepo:  expenseRepo,
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *TreasuryService) GetCashBox(ctx context.Context, categoryID string) (cashbox.CashBox, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TreasuryService.GetCashBox")
	defer span.End()

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return cashbox.CashBox{}, false, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	item, exists, err := s.cashBoxRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		return cashbox.CashBox{}, false, fmt.Errorf("get cash box: %w", err)
	}

	return item, exists, nil
}

// UpsertCashBox creates or replaces the single cash box row of a category.
func (s *TreasuryService) UpsertCashBox(ctx context.Context, input UpsertCashBoxInput) (cashbox.CashBox, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TreasuryService.UpsertCashBox")
	defer span.End()

	input.CategoryID = strings.TrimSpace(input.CategoryID)
	if input.CategoryID == "" {
		return cashbox.CashBox{}, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	if err := s.requireCategory(ctx, input.CategoryID); err != nil {
		return cashbox.CashBox{}, err
	}

	boxID, err := s.idGen.NewID()
	if err != nil {
		return cashbox.CashBox{}, fmt.Errorf("generate cash box id: %w", err)
	}

	item, err := s.cashBoxRepo.Upsert(ctx, cashbox.CashBox{
		ID:           boxID,
		CategoryID:   input.CategoryID,
		ManualAmount: input.ManualAmount,
		Description:  strings.TrimSpace(input.Description),
	})
	if err != nil {
		return cashbox.CashBox{}, fmt.Errorf("upsert cash box: %w", err)
	}

	s.logger.InfoContext(ctx, "cash box upserted",
		"category_id", input.CategoryID,
		"manual_amount", input.ManualAmount,
	)

	return item, nil
}

func (s *TreasuryService) ListExpenses(ctx context.Context, categoryID string) ([]expense.Expense, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TreasuryService.ListExpenses")
	defer span.End()

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return nil, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	items, err := s.expenseRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	return items, nil
}

func (s *TreasuryService) AddExpense(ctx context.Context, input AddExpenseInput) (expense.Expense, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TreasuryService.AddExpense")
	defer span.End()

	input.CategoryID = strings.TrimSpace(input.CategoryID)
	input.Description = strings.TrimSpace(input.Description)

	if input.CategoryID == "" {
		return expense.Expense{}, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return expense.Expense{}, fmt.Errorf("%w: expense amount must be greater than zero", ErrInvalidInput)
	}
	if input.Description == "" {
		return expense.Expense{}, fmt.Errorf("%w: expense description is required", ErrInvalidInput)
	}

	if err := s.requireCategory(ctx, input.CategoryID); err != nil {
		return expense.Expense{}, err
	}

	expenseID, err := s.idGen.NewID()
	if err != nil {
		return expense.Expense{}, fmt.Errorf("generate expense id: %w", err)
	}

	date := s.now().UTC().Truncate(24 * time.Hour)
	if input.Date != nil {
		date = input.Date.UTC().Truncate(24 * time.Hour)
	}

	item := expense.Expense{
		ID:          expenseID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        date,
	}
	if err := s.expenseRepo.Create(ctx, item); err != nil {
		return expense.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	s.logger.InfoContext(ctx, "expense added",
		"category_id", input.CategoryID,
		"amount", input.Amount,
	)

	return item, nil
}

func (s *TreasuryService) DeleteExpense(ctx context.Context, categoryID, expenseID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TreasuryService.DeleteExpense")
	defer span.End()

	expenseID = strings.TrimSpace(expenseID)
	if expenseID == "" {
		return fmt.Errorf("%w: expense id is required", ErrInvalidInput)
	}

	item, exists, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return fmt.Errorf("get expense: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: expense=%s", ErrNotFound, expenseID)
	}
	if categoryID != "" && item.CategoryID != categoryID {
		return fmt.Errorf("%w: expense=%s", ErrNotFound, expenseID)
	}

	if err := s.expenseRepo.Delete(ctx, expenseID); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	s.logger.InfoContext(ctx, "expense deleted", "expense_id", expenseID, "category_id", item.CategoryID)

	return nil
}

// GetExpense loads one expense for category-scope checks in handlers.
func (s *TreasuryService) GetExpense(ctx context.Context, expenseID string) (expense.Expense, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TreasuryService.GetExpense")
	defer span.End()

	item, exists, err := s.expenseRepo.GetByID(ctx, strings.TrimSpace(expenseID))
	if err != nil {
		return expense.Expense{}, fmt.Errorf("get expense: %w", err)
	}
	if !exists {
		return expense.Expense{}, fmt.Errorf("%w: expense=%s", ErrNotFound, expenseID)
	}

	return item, nil
}

func (s *TreasuryService) requireCategory(ctx context.Context, categoryID string) error {
	_, exists, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: category=%s", ErrNotFound, categoryID)
	}

	return nil
}
