package httpapi

import (
	"net/http"
	"strings"

	"github.com/zdenekh/club-fines/internal/usecase"
)

type fineTypeUpsertRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	UnitPrice   int64  `json:"unitPrice" validate:"required,gt=0"`
	Description string `json:"description" validate:"max=500"`
	HasQuantity bool   `json:"hasQuantity"`
	Unit        string `json:"unit" validate:"max=50"`
}

type fineSelectionRequest struct {
	FineTypeID     string `json:"fineTypeId" validate:"required"`
	Quantity       *int64 `json:"quantity" validate:"omitempty,gt=0"`
	OverrideAmount *int64 `json:"overrideAmount" validate:"omitempty,gt=0"`
}

type recordFinesRequest struct {
	PlayerIDs  []string               `json:"playerIds" validate:"required,min=1,dive,required"`
	Selections []fineSelectionRequest `json:"selections" validate:"required,min=1,dive"`
}

type recordPaymentRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
}

func (h *Handler) ListFineTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFineTypes")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if _, err := requireCategoryAccess(ctx, categoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	activeOnly := r.URL.Query().Get("include_inactive") != "true"
	fineTypes, err := h.fineTypeService.ListByCategory(ctx, categoryID, activeOnly)
	if err != nil {
		h.logger.WarnContext(ctx, "list fine types failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fineTypeDTO, 0, len(fineTypes))
	for _, ft := range fineTypes {
		items = append(items, fineTypeToDTO(ft))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateFineType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFineType")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if _, err := requireCategoryAccess(ctx, categoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	var req fineTypeUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fineTypeService.Create(ctx, usecase.CreateFineTypeInput{
		CategoryID:  categoryID,
		Name:        req.Name,
		UnitPrice:   req.UnitPrice,
		Description: req.Description,
		HasQuantity: req.HasQuantity,
		Unit:        req.Unit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create fine type failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, fineTypeToDTO(item))
}

func (h *Handler) UpdateFineType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFineType")
	defer span.End()

	fineTypeID := strings.TrimSpace(r.PathValue("fineTypeID"))
	existing, err := h.fineTypeService.GetFineType(ctx, fineTypeID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := requireCategoryAccess(ctx, existing.CategoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	var req fineTypeUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fineTypeService.Update(ctx, usecase.UpdateFineTypeInput{
		FineTypeID:  fineTypeID,
		Name:        req.Name,
		UnitPrice:   req.UnitPrice,
		Description: req.Description,
		HasQuantity: req.HasQuantity,
		Unit:        req.Unit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update fine type failed", "fine_type_id", fineTypeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fineTypeToDTO(item))
}

func (h *Handler) DeactivateFineType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeactivateFineType")
	defer span.End()

	fineTypeID := strings.TrimSpace(r.PathValue("fineTypeID"))
	existing, err := h.fineTypeService.GetFineType(ctx, fineTypeID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := requireCategoryAccess(ctx, existing.CategoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.fineTypeService.Deactivate(ctx, fineTypeID); err != nil {
		h.logger.WarnContext(ctx, "deactivate fine type failed", "fine_type_id", fineTypeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deactivated"})
}

func (h *Handler) RecordFines(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordFines")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if _, err := requireCategoryAccess(ctx, categoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recordFinesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	selections := make([]usecase.FineSelection, 0, len(req.Selections))
	for _, sel := range req.Selections {
		selections = append(selections, usecase.FineSelection{
			FineTypeID:     sel.FineTypeID,
			Quantity:       sel.Quantity,
			OverrideAmount: sel.OverrideAmount,
		})
	}

	fines, err := h.fineService.RecordFines(ctx, usecase.RecordFinesInput{
		CategoryID: categoryID,
		PlayerIDs:  req.PlayerIDs,
		Selections: selections,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record fines failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fineDTO, 0, len(fines))
	for _, f := range fines {
		items = append(items, fineToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusCreated, items)
}

func (h *Handler) DeleteFine(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFine")
	defer span.End()

	fineID := strings.TrimSpace(r.PathValue("fineID"))
	existing, err := h.fineService.GetFine(ctx, fineID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := requireCategoryAccess(ctx, existing.CategoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.fineService.DeleteFine(ctx, existing.CategoryID, fineID); err != nil {
		h.logger.WarnContext(ctx, "delete fine failed", "fine_id", fineID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordPayment")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if _, err := requireCategoryAccess(ctx, categoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recordPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.paymentService.RecordPayment(ctx, usecase.RecordPaymentInput{
		CategoryID: categoryID,
		PlayerID:   req.PlayerID,
		Amount:     req.Amount,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record payment failed",
			"category_id", categoryID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, paymentToDTO(item))
}
