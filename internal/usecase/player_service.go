package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/zdenekh/club-fines/internal/domain/category"
	"github.com/zdenekh/club-fines/internal/domain/player"
	idgen "github.com/zdenekh/club-fines/internal/platform/id"
	"github.com/zdenekh/club-fines/internal/platform/logging"
)

type CreatePlayerInput struct {
	CategoryID string
	Name       string
	Role       string
	Email      string
}

type UpdatePlayerInput struct {
	PlayerID string
	Name     string
	Role     string
	Email    string
}

type PlayerService struct {
	categoryRepo category.Repository
	playerRepo   player.Repository
	idGen        idgen.Generator
	logger       *logging.Logger
}

func NewPlayerService(
	categoryRepo category.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &PlayerService{
		categoryRepo: categoryRepo,
		playerRepo:   playerRepo,
		idGen:        idGen,
		logger:       logger,
	}
}

func (s *PlayerService) ListByCategory(ctx context.Context, categoryID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByCategory")
	defer span.End()

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return nil, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	items, err := s.playerRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	input.CategoryID = strings.TrimSpace(input.CategoryID)
	input.Name = strings.TrimSpace(input.Name)

	if input.CategoryID == "" {
		return player.Player{}, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	_, exists, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get category: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: category=%s", ErrNotFound, input.CategoryID)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	item := player.Player{
		ID:         playerID,
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Role:       player.Role(strings.TrimSpace(input.Role)),
		Email:      strings.TrimSpace(input.Email),
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", item.ID, "category_id", item.CategoryID)

	return item, nil
}

func (s *PlayerService) Update(ctx context.Context, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.PlayerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	existing, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	item := player.Player{
		ID:         existing.ID,
		CategoryID: existing.CategoryID,
		Name:       strings.TrimSpace(input.Name),
		Role:       player.Role(strings.TrimSpace(input.Role)),
		Email:      strings.TrimSpace(input.Email),
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return item, nil
}

// Delete removes a player. Their historical fines and payments stay in
// storage but drop out of every reconciliation, which excludes rows without
// a matching player.
func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID)

	return nil
}

// GetPlayer loads one player for category-scope checks in handlers.
func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	item, exists, err := s.playerRepo.GetByID(ctx, strings.TrimSpace(playerID))
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}
