package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetCategoryLedger(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCategoryLedger")
	defer span.End()

	slug := strings.TrimSpace(r.PathValue("slug"))
	snapshot, err := h.ledgerService.GetBySlug(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "get category ledger failed", "slug", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, categoryLedgerToDTO(snapshot))
}
