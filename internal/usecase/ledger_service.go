package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/zdenekh/club-fines/internal/domain/cashbox"
	"github.com/zdenekh/club-fines/internal/domain/category"
	"github.com/zdenekh/club-fines/internal/domain/expense"
	"github.com/zdenekh/club-fines/internal/domain/fine"
	"github.com/zdenekh/club-fines/internal/domain/ledger"
	"github.com/zdenekh/club-fines/internal/domain/payment"
	"github.com/zdenekh/club-fines/internal/domain/player"
)

// CategoryLedger is the full reconciled view of one category: every player
// with their fines and payments, the raw rows, and the financial summary.
type CategoryLedger struct {
	Category category.Category
	Accounts []ledger.PlayerAccount
	Fines    []fine.Fine
	Payments []payment.Payment
	CashBox  *cashbox.CashBox
	Expenses []expense.Expense
	Summary  ledger.Summary
}

type LedgerService struct {
	categoryRepo category.Repository
	playerRepo   player.Repository
	fineRepo     fine.Repository
	paymentRepo  payment.Repository
	cashBoxRepo  cashbox.Repository
	expenseRepo  expense.Repository
}

func NewLedgerService(
	categoryRepo category.Repository,
	playerRepo player.Repository,
	fineRepo fine.Repository,
	paymentRepo payment.Repository,
	cashBoxRepo cashbox.Repository,
	expenseRepo expense.Repository,
) *LedgerService {
	return &LedgerService{
		categoryRepo: categoryRepo,
		playerRepo:   playerRepo,
		fineRepo:     fineRepo,
		paymentRepo:  paymentRepo,
		cashBoxRepo:  cashBoxRepo,
		expenseRepo:  expenseRepo,
	}
}

// GetBySlug loads a category snapshot and reconciles it. The five row sets
// are independent reads, so they are fetched concurrently; the reconciliation
// itself is pure and runs on whatever snapshot the reads produced.
func (s *LedgerService) GetBySlug(ctx context.Context, slug string) (CategoryLedger, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.GetBySlug")
	defer span.End()

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return CategoryLedger{}, fmt.Errorf("%w: category slug is required", ErrInvalidInput)
	}

	cat, exists, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return CategoryLedger{}, fmt.Errorf("get category by slug: %w", err)
	}
	if !exists {
		return CategoryLedger{}, fmt.Errorf("%w: category=%s", ErrNotFound, slug)
	}

	return s.reconcileCategory(ctx, cat)
}

// GetByCategoryID is GetBySlug for callers that already hold the id.
func (s *LedgerService) GetByCategoryID(ctx context.Context, categoryID string) (CategoryLedger, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.GetByCategoryID")
	defer span.End()

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return CategoryLedger{}, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	cat, exists, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return CategoryLedger{}, fmt.Errorf("get category by id: %w", err)
	}
	if !exists {
		return CategoryLedger{}, fmt.Errorf("%w: category=%s", ErrNotFound, categoryID)
	}

	return s.reconcileCategory(ctx, cat)
}

func (s *LedgerService) reconcileCategory(ctx context.Context, cat category.Category) (CategoryLedger, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.reconcileCategory")
	defer span.End()

	var (
		players  []player.Player
		fines    []fine.Fine
		payments []payment.Payment
		box      *cashbox.CashBox
		expenses []expense.Expense
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		players, err = s.playerRepo.ListByCategory(ctx, cat.ID)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		fines, err = s.fineRepo.ListByCategory(ctx, cat.ID)
		if err != nil {
			return fmt.Errorf("list fines: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		payments, err = s.paymentRepo.ListByCategory(ctx, cat.ID)
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		item, exists, err := s.cashBoxRepo.GetByCategory(ctx, cat.ID)
		if err != nil {
			return fmt.Errorf("get cash box: %w", err)
		}
		if exists {
			box = &item
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		expenses, err = s.expenseRepo.ListByCategory(ctx, cat.ID)
		if err != nil {
			return fmt.Errorf("list expenses: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return CategoryLedger{}, fmt.Errorf("load category snapshot: %w", err)
	}

	accounts, summary := ledger.Reconcile(ledger.Input{
		Players:  players,
		Fines:    fines,
		Payments: payments,
		CashBox:  box,
		Expenses: expenses,
	})
	ledger.SortByRemainingDesc(accounts)

	return CategoryLedger{
		Category: cat,
		Accounts: accounts,
		Fines:    fines,
		Payments: payments,
		CashBox:  box,
		Expenses: expenses,
		Summary:  summary,
	}, nil
}

// PlayerRemaining reconciles one category and returns the clamped balance of
// one player. Payment recording validates against this value.
func (s *LedgerService) PlayerRemaining(ctx context.Context, categoryID, playerID string) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.PlayerRemaining")
	defer span.End()

	snapshot, err := s.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return 0, err
	}

	for _, acc := range snapshot.Accounts {
		if acc.Player.ID == playerID {
			return acc.Remaining, nil
		}
	}

	return 0, fmt.Errorf("%w: player=%s in category=%s", ErrNotFound, playerID, categoryID)
}
