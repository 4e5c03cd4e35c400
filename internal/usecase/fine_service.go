package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zdenekh/club-fines/internal/domain/fine"
	"github.com/zdenekh/club-fines/internal/domain/finetype"
	"github.com/zdenekh/club-fines/internal/domain/player"
	idgen "github.com/zdenekh/club-fines/internal/platform/id"
	"github.com/zdenekh/club-fines/internal/platform/logging"
)

// FineSelection is one price-list entry picked in a fine submission.
// OverrideAmount replaces the catalog unit price; Quantity multiplies it.
type FineSelection struct {
	FineTypeID     string
	Quantity       *int64
	OverrideAmount *int64
}

// RecordFinesInput charges every selection to every listed player, producing
// len(PlayerIDs) x len(Selections) fine records in one atomic batch.
type RecordFinesInput struct {
	CategoryID string
	PlayerIDs  []string
	Selections []FineSelection
}

type FineService struct {
	playerRepo   player.Repository
	fineTypeRepo finetype.Repository
	fineRepo     fine.Repository
	idGen        idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewFineService(
	playerRepo player.Repository,
	fineTypeRepo finetype.Repository,
	fineRepo fine.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *FineService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &FineService{
		playerRepo:   playerRepo,
		fineTypeRepo: fineTypeRepo,
		fineRepo:     fineRepo,
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

// RecordFines validates the whole batch before any write, then stores all
// records in one transaction. A failed validation names the player/fine-type
// pair so the administrator knows exactly what was rejected.
func (s *FineService) RecordFines(ctx context.Context, input RecordFinesInput) ([]fine.Fine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FineService.RecordFines")
	defer span.End()

	input.CategoryID = strings.TrimSpace(input.CategoryID)
	if input.CategoryID == "" {
		return nil, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}
	if len(input.PlayerIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one player is required", ErrInvalidInput)
	}
	if len(input.Selections) == 0 {
		return nil, fmt.Errorf("%w: at least one fine type is required", ErrInvalidInput)
	}

	playerIDs, err := cleanIDs(input.PlayerIDs)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.GetByIDs(ctx, input.CategoryID, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}
	playerByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		playerByID[p.ID] = p
	}
	for _, playerID := range playerIDs {
		if _, ok := playerByID[playerID]; !ok {
			return nil, fmt.Errorf("%w: player=%s not found in category=%s", ErrNotFound, playerID, input.CategoryID)
		}
	}

	typeByID := make(map[string]finetype.FineType, len(input.Selections))
	for _, sel := range input.Selections {
		fineTypeID := strings.TrimSpace(sel.FineTypeID)
		if fineTypeID == "" {
			return nil, fmt.Errorf("%w: fine type id is required", ErrInvalidInput)
		}
		if _, ok := typeByID[fineTypeID]; ok {
			continue
		}
		ft, exists, err := s.fineTypeRepo.GetByID(ctx, fineTypeID)
		if err != nil {
			return nil, fmt.Errorf("get fine type: %w", err)
		}
		if !exists || ft.CategoryID != input.CategoryID {
			return nil, fmt.Errorf("%w: fine type=%s in category=%s", ErrNotFound, fineTypeID, input.CategoryID)
		}
		if !ft.Active {
			return nil, fmt.Errorf("%w: fine type=%s is deactivated", ErrInvalidInput, fineTypeID)
		}
		typeByID[fineTypeID] = ft
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	batch := make([]fine.Fine, 0, len(playerIDs)*len(input.Selections))
	for _, playerID := range playerIDs {
		for _, sel := range input.Selections {
			ft := typeByID[strings.TrimSpace(sel.FineTypeID)]
			amount := fine.ChargeAmount(ft.UnitPrice, sel.OverrideAmount, sel.Quantity)
			if amount <= 0 {
				return nil, fmt.Errorf("%w: charge for player=%s fine type=%s must be greater than zero",
					ErrInvalidInput, playerID, ft.ID)
			}

			fineID, err := s.idGen.NewID()
			if err != nil {
				return nil, fmt.Errorf("generate fine id: %w", err)
			}
			batch = append(batch, fine.Fine{
				ID:         fineID,
				PlayerID:   playerID,
				CategoryID: input.CategoryID,
				Type:       ft.Name,
				Amount:     amount,
				Date:       today,
			})
		}
	}

	if err := s.fineRepo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("create fine batch: %w", err)
	}

	s.logger.InfoContext(ctx, "fines recorded",
		"category_id", input.CategoryID,
		"player_count", len(playerIDs),
		"fine_count", len(batch),
	)

	return batch, nil
}

// DeleteFine removes one fine. Category scope is checked so a category admin
// cannot delete across divisions.
func (s *FineService) DeleteFine(ctx context.Context, categoryID, fineID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FineService.DeleteFine")
	defer span.End()

	fineID = strings.TrimSpace(fineID)
	if fineID == "" {
		return fmt.Errorf("%w: fine id is required", ErrInvalidInput)
	}

	item, exists, err := s.fineRepo.GetByID(ctx, fineID)
	if err != nil {
		return fmt.Errorf("get fine: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: fine=%s", ErrNotFound, fineID)
	}
	if categoryID != "" && item.CategoryID != categoryID {
		return fmt.Errorf("%w: fine=%s", ErrNotFound, fineID)
	}

	if err := s.fineRepo.Delete(ctx, fineID); err != nil {
		return fmt.Errorf("delete fine: %w", err)
	}

	s.logger.InfoContext(ctx, "fine deleted", "fine_id", fineID, "category_id", item.CategoryID)

	return nil
}

// GetFine loads one fine for category-scope checks in handlers.
func (s *FineService) GetFine(ctx context.Context, fineID string) (fine.Fine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FineService.GetFine")
	defer span.End()

	item, exists, err := s.fineRepo.GetByID(ctx, strings.TrimSpace(fineID))
	if err != nil {
		return fine.Fine{}, fmt.Errorf("get fine: %w", err)
	}
	if !exists {
		return fine.Fine{}, fmt.Errorf("%w: fine=%s", ErrNotFound, fineID)
	}

	return item, nil
}

func cleanIDs(ids []string) ([]string, error) {
	cleaned := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("%w: id cannot be empty", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
		cleaned = append(cleaned, id)
	}

	return cleaned, nil
}
