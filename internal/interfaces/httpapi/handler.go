package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/zdenekh/club-fines/internal/platform/logging"
	"github.com/zdenekh/club-fines/internal/usecase"
)

type Handler struct {
	categoryService *usecase.CategoryService
	playerService   *usecase.PlayerService
	fineTypeService *usecase.FineTypeService
	fineService     *usecase.FineService
	paymentService  *usecase.PaymentService
	treasuryService *usecase.TreasuryService
	ledgerService   *usecase.LedgerService
	authService     *usecase.AuthService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	categoryService *usecase.CategoryService,
	playerService *usecase.PlayerService,
	fineTypeService *usecase.FineTypeService,
	fineService *usecase.FineService,
	paymentService *usecase.PaymentService,
	treasuryService *usecase.TreasuryService,
	ledgerService *usecase.LedgerService,
	authService *usecase.AuthService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		categoryService: categoryService,
		playerService:   playerService,
		fineTypeService: fineTypeService,
		fineService:     fineService,
		paymentService:  paymentService,
		treasuryService: treasuryService,
		ledgerService:   ledgerService,
		authService:     authService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
