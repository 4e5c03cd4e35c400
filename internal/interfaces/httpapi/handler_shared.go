package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/zdenekh/club-fines/internal/domain/cashbox"
	"github.com/zdenekh/club-fines/internal/domain/category"
	"github.com/zdenekh/club-fines/internal/domain/expense"
	"github.com/zdenekh/club-fines/internal/domain/fine"
	"github.com/zdenekh/club-fines/internal/domain/finetype"
	"github.com/zdenekh/club-fines/internal/domain/ledger"
	"github.com/zdenekh/club-fines/internal/domain/payment"
	"github.com/zdenekh/club-fines/internal/domain/player"
	"github.com/zdenekh/club-fines/internal/domain/user"
	"github.com/zdenekh/club-fines/internal/usecase"
)

const dateLayout = "2006-01-02"

func decodeJSON(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// requirePrincipal pulls the authenticated identity set by RequireAuth.
func requirePrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}

	return principal, nil
}

// requireCategoryAccess enforces the single capability gate: main admins
// manage everything, category admins only their own category.
func requireCategoryAccess(ctx context.Context, categoryID string) (user.Principal, error) {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return user.Principal{}, err
	}
	if !principal.CanManage(categoryID) {
		return user.Principal{}, fmt.Errorf("%w: no access to category=%s", usecase.ErrForbidden, categoryID)
	}

	return principal, nil
}

func requireMainAdmin(ctx context.Context) (user.Principal, error) {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return user.Principal{}, err
	}
	if principal.Role != user.RoleMainAdmin {
		return user.Principal{}, fmt.Errorf("%w: main administrator role required", usecase.ErrForbidden)
	}

	return principal, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", usecase.ErrInvalidInput, value)
	}

	return &t, nil
}

type categoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
	Order       int    `json:"order"`
}

func categoryToDTO(c category.Category) categoryDTO {
	return categoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Active:      c.Active,
		Order:       c.Order,
	}
}

type playerDTO struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Email      string `json:"email,omitempty"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		Role:       string(p.Role),
		Email:      p.Email,
	}
}

type fineTypeDTO struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	UnitPrice   int64  `json:"unitPrice"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
	HasQuantity bool   `json:"hasQuantity"`
	Unit        string `json:"unit,omitempty"`
}

func fineTypeToDTO(ft finetype.FineType) fineTypeDTO {
	return fineTypeDTO{
		ID:          ft.ID,
		CategoryID:  ft.CategoryID,
		Name:        ft.Name,
		UnitPrice:   ft.UnitPrice,
		Description: ft.Description,
		Active:      ft.Active,
		HasQuantity: ft.HasQuantity,
		Unit:        ft.Unit,
	}
}

type fineDTO struct {
	ID         string `json:"id"`
	PlayerID   string `json:"playerId"`
	CategoryID string `json:"categoryId"`
	Type       string `json:"type"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date"`
}

func fineToDTO(f fine.Fine) fineDTO {
	return fineDTO{
		ID:         f.ID,
		PlayerID:   f.PlayerID,
		CategoryID: f.CategoryID,
		Type:       f.Type,
		Amount:     f.Amount,
		Date:       f.Date.Format(dateLayout),
	}
}

type paymentDTO struct {
	ID         string `json:"id"`
	PlayerID   string `json:"playerId"`
	CategoryID string `json:"categoryId"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date"`
}

func paymentToDTO(p payment.Payment) paymentDTO {
	return paymentDTO{
		ID:         p.ID,
		PlayerID:   p.PlayerID,
		CategoryID: p.CategoryID,
		Amount:     p.Amount,
		Date:       p.Date.Format(dateLayout),
	}
}

type cashBoxDTO struct {
	ID           string `json:"id"`
	CategoryID   string `json:"categoryId"`
	ManualAmount int64  `json:"manualAmount"`
	Description  string `json:"description,omitempty"`
}

func cashBoxToDTO(b cashbox.CashBox) cashBoxDTO {
	return cashBoxDTO{
		ID:           b.ID,
		CategoryID:   b.CategoryID,
		ManualAmount: b.ManualAmount,
		Description:  b.Description,
	}
}

type expenseDTO struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func expenseToDTO(e expense.Expense) expenseDTO {
	return expenseDTO{
		ID:          e.ID,
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date.Format(dateLayout),
	}
}

type playerAccountDTO struct {
	Player    playerDTO    `json:"player"`
	Fines     []fineDTO    `json:"fines"`
	Payments  []paymentDTO `json:"payments"`
	TotalOwed int64        `json:"totalOwed"`
	PaidSoFar int64        `json:"paidSoFar"`
	Remaining int64        `json:"remaining"`
	Status    string       `json:"status"`
}

func playerAccountToDTO(acc ledger.PlayerAccount) playerAccountDTO {
	fines := make([]fineDTO, 0, len(acc.Fines))
	for _, f := range acc.Fines {
		fines = append(fines, fineToDTO(f))
	}
	payments := make([]paymentDTO, 0, len(acc.Payments))
	for _, p := range acc.Payments {
		payments = append(payments, paymentToDTO(p))
	}

	return playerAccountDTO{
		Player:    playerToDTO(acc.Player),
		Fines:     fines,
		Payments:  payments,
		TotalOwed: acc.TotalOwed,
		PaidSoFar: acc.PaidSoFar,
		Remaining: acc.Remaining,
		Status:    string(acc.Status),
	}
}

type summaryDTO struct {
	TotalFines         int64 `json:"totalFines"`
	TotalPaid          int64 `json:"totalPaid"`
	TotalRemaining     int64 `json:"totalRemaining"`
	TotalExpenses      int64 `json:"totalExpenses"`
	CashBoxAmount      int64 `json:"cashBoxAmount"`
	AvailableNow       int64 `json:"availableNow"`
	AvailableIfAllPaid int64 `json:"availableIfAllPaid"`
}

func summaryToDTO(s ledger.Summary) summaryDTO {
	return summaryDTO{
		TotalFines:         s.TotalFines,
		TotalPaid:          s.TotalPaid,
		TotalRemaining:     s.TotalRemaining,
		TotalExpenses:      s.TotalExpenses,
		CashBoxAmount:      s.CashBoxAmount,
		AvailableNow:       s.AvailableNow,
		AvailableIfAllPaid: s.AvailableIfAllPaid,
	}
}

type categoryLedgerDTO struct {
	Category categoryDTO        `json:"category"`
	Accounts []playerAccountDTO `json:"accounts"`
	CashBox  *cashBoxDTO        `json:"cashBox,omitempty"`
	Expenses []expenseDTO       `json:"expenses"`
	Summary  summaryDTO         `json:"summary"`
}

func categoryLedgerToDTO(l usecase.CategoryLedger) categoryLedgerDTO {
	accounts := make([]playerAccountDTO, 0, len(l.Accounts))
	for _, acc := range l.Accounts {
		accounts = append(accounts, playerAccountToDTO(acc))
	}
	expenses := make([]expenseDTO, 0, len(l.Expenses))
	for _, e := range l.Expenses {
		expenses = append(expenses, expenseToDTO(e))
	}

	var box *cashBoxDTO
	if l.CashBox != nil {
		v := cashBoxToDTO(*l.CashBox)
		box = &v
	}

	return categoryLedgerDTO{
		Category: categoryToDTO(l.Category),
		Accounts: accounts,
		CashBox:  box,
		Expenses: expenses,
		Summary:  summaryToDTO(l.Summary),
	}
}
