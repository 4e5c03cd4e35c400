package httpapi

import (
	"net/http"
	"strings"

	"github.com/zdenekh/club-fines/internal/usecase"
)

type cashBoxUpsertRequest struct {
	ManualAmount int64  `json:"manualAmount" validate:"gte=0"`
	Description  string `json:"description" validate:"max=500"`
}

type addExpenseRequest struct {
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"required,max=500"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) GetCashBox(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCashBox")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if _, err := requireCategoryAccess(ctx, categoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, exists, err := h.treasuryService.GetCashBox(ctx, categoryID)
	if err != nil {
		h.logger.WarnContext(ctx, "get cash box failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cashBoxToDTO(item))
}

func (h *Handler) UpsertCashBox(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertCashBox")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if _, err := requireCategoryAccess(ctx, categoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	var req cashBoxUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.treasuryService.UpsertCashBox(ctx, usecase.UpsertCashBoxInput{
		CategoryID:   categoryID,
		ManualAmount: req.ManualAmount,
		Description:  req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert cash box failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cashBoxToDTO(item))
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListExpenses")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if _, err := requireCategoryAccess(ctx, categoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	expenses, err := h.treasuryService.ListExpenses(ctx, categoryID)
	if err != nil {
		h.logger.WarnContext(ctx, "list expenses failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]expenseDTO, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, expenseToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddExpense")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if _, err := requireCategoryAccess(ctx, categoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.treasuryService.AddExpense(ctx, usecase.AddExpenseInput{
		CategoryID:  categoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add expense failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, expenseToDTO(item))
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteExpense")
	defer span.End()

	expenseID := strings.TrimSpace(r.PathValue("expenseID"))
	existing, err := h.treasuryService.GetExpense(ctx, expenseID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := requireCategoryAccess(ctx, existing.CategoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.treasuryService.DeleteExpense(ctx, existing.CategoryID, expenseID); err != nil {
		h.logger.WarnContext(ctx, "delete expense failed", "expense_id", expenseID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
