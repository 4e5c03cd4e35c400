package httpapi

import (
	"net/http"
	"strings"

	"github.com/zdenekh/club-fines/internal/usecase"
)

type categoryUpsertRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Active      *bool  `json:"active"`
	Order       int    `json:"order" validate:"gte=0"`
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCategories")
	defer span.End()

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list categories failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]categoryDTO, 0, len(categories))
	for _, c := range categories {
		items = append(items, categoryToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// ListAllCategories includes inactive categories; main administrator only.
func (h *Handler) ListAllCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllCategories")
	defer span.End()

	if _, err := requireMainAdmin(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	categories, err := h.categoryService.ListAll(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list all categories failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]categoryDTO, 0, len(categories))
	for _, c := range categories {
		items = append(items, categoryToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCategory")
	defer span.End()

	if _, err := requireMainAdmin(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	var req categoryUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.categoryService.Create(ctx, usecase.CreateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create category failed", "slug", req.Slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, categoryToDTO(item))
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCategory")
	defer span.End()

	if _, err := requireMainAdmin(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	var req categoryUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	item, err := h.categoryService.Update(ctx, usecase.UpdateCategoryInput{
		CategoryID:  categoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Active:      active,
		Order:       req.Order,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update category failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, categoryToDTO(item))
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCategory")
	defer span.End()

	if _, err := requireMainAdmin(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if err := h.categoryService.Delete(ctx, categoryID); err != nil {
		h.logger.WarnContext(ctx, "delete category failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
