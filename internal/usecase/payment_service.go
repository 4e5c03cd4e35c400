package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zdenekh/club-fines/internal/domain/payment"
	"github.com/zdenekh/club-fines/internal/domain/player"
	idgen "github.com/zdenekh/club-fines/internal/platform/id"
	"github.com/zdenekh/club-fines/internal/platform/logging"
)

type RecordPaymentInput struct {
	CategoryID string
	PlayerID   string
	Amount     int64
}

type PaymentService struct {
	playerRepo  player.Repository
	paymentRepo payment.Repository
	ledgerSvc   *LedgerService
	idGen       idgen.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewPaymentService(
	playerRepo player.Repository,
	paymentRepo payment.Repository,
	ledgerSvc *LedgerService,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PaymentService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &PaymentService{
		playerRepo:  playerRepo,
		paymentRepo: paymentRepo,
		ledgerSvc:   ledgerSvc,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

// RecordPayment stores one payment after checking it against the player's
// outstanding balance as reconciled at submission time. Two concurrent
// submissions can both observe the same balance; the last read wins, which is
// accepted behavior for this workload.
func (s *PaymentService) RecordPayment(ctx context.Context, input RecordPaymentInput) (payment.Payment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PaymentService.RecordPayment")
	defer span.End()

	input.CategoryID = strings.TrimSpace(input.CategoryID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)

	if input.CategoryID == "" {
		return payment.Payment{}, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}
	if input.PlayerID == "" {
		return payment.Payment{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return payment.Payment{}, fmt.Errorf("%w: payment amount must be greater than zero", ErrInvalidInput)
	}

	pl, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("get player: %w", err)
	}
	if !exists || pl.CategoryID != input.CategoryID {
		return payment.Payment{}, fmt.Errorf("%w: player=%s in category=%s", ErrNotFound, input.PlayerID, input.CategoryID)
	}

	remaining, err := s.ledgerSvc.PlayerRemaining(ctx, input.CategoryID, input.PlayerID)
	if err != nil {
		return payment.Payment{}, err
	}
	if input.Amount > remaining {
		return payment.Payment{}, fmt.Errorf("%w: payment of %d exceeds remaining balance of %d",
			ErrInvalidInput, input.Amount, remaining)
	}

	paymentID, err := s.idGen.NewID()
	if err != nil {
		return payment.Payment{}, fmt.Errorf("generate payment id: %w", err)
	}

	item := payment.Payment{
		ID:         paymentID,
		PlayerID:   input.PlayerID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		Date:       s.now().UTC().Truncate(24 * time.Hour),
	}
	if err := s.paymentRepo.Create(ctx, item); err != nil {
		return payment.Payment{}, fmt.Errorf("create payment: %w", err)
	}

	s.logger.InfoContext(ctx, "payment recorded",
		"category_id", input.CategoryID,
		"player_id", input.PlayerID,
		"amount", input.Amount,
	)

	return item, nil
}
