package httpapi

import (
	"net/http"
	"strings"

	"github.com/zdenekh/club-fines/internal/usecase"
)

type playerUpsertRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Role  string `json:"role" validate:"required,oneof=player goalkeeper coach"`
	Email string `json:"email" validate:"omitempty,email,max=200"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if _, err := requireCategoryAccess(ctx, categoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.ListByCategory(ctx, categoryID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if _, err := requireCategoryAccess(ctx, categoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{
		CategoryID: categoryID,
		Name:       req.Name,
		Role:       req.Role,
		Email:      req.Email,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	existing, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := requireCategoryAccess(ctx, existing.CategoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Update(ctx, usecase.UpdatePlayerInput{
		PlayerID: playerID,
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	existing, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := requireCategoryAccess(ctx, existing.CategoryID); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
