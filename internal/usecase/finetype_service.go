package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/zdenekh/club-fines/internal/domain/category"
	"github.com/zdenekh/club-fines/internal/domain/finetype"
	idgen "github.com/zdenekh/club-fines/internal/platform/id"
	"github.com/zdenekh/club-fines/internal/platform/logging"
)

type CreateFineTypeInput struct {
	CategoryID  string
	Name        string
	UnitPrice   int64
	Description string
	HasQuantity bool
	Unit        string
}

type UpdateFineTypeInput struct {
	FineTypeID  string
	Name        string
	UnitPrice   int64
	Description string
	HasQuantity bool
	Unit        string
}

type FineTypeService struct {
	categoryRepo category.Repository
	fineTypeRepo finetype.Repository
	idGen        idgen.Generator
	logger       *logging.Logger
}

func NewFineTypeService(
	categoryRepo category.Repository,
	fineTypeRepo finetype.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *FineTypeService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &FineTypeService{
		categoryRepo: categoryRepo,
		fineTypeRepo: fineTypeRepo,
		idGen:        idGen,
		logger:       logger,
	}
}

func (s *FineTypeService) ListByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]finetype.FineType, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FineTypeService.ListByCategory")
	defer span.End()

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return nil, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	items, err := s.fineTypeRepo.ListByCategory(ctx, categoryID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list fine types: %w", err)
	}

	return items, nil
}

func (s *FineTypeService) Create(ctx context.Context, input CreateFineTypeInput) (finetype.FineType, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FineTypeService.Create")
	defer span.End()

	input.CategoryID = strings.TrimSpace(input.CategoryID)
	if input.CategoryID == "" {
		return finetype.FineType{}, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	_, exists, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return finetype.FineType{}, fmt.Errorf("get category: %w", err)
	}
	if !exists {
		return finetype.FineType{}, fmt.Errorf("%w: category=%s", ErrNotFound, input.CategoryID)
	}

	fineTypeID, err := s.idGen.NewID()
	if err != nil {
		return finetype.FineType{}, fmt.Errorf("generate fine type id: %w", err)
	}

	item := finetype.FineType{
		ID:          fineTypeID,
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		UnitPrice:   input.UnitPrice,
		Description: strings.TrimSpace(input.Description),
		Active:      true,
		HasQuantity: input.HasQuantity,
		Unit:        strings.TrimSpace(input.Unit),
	}
	if err := item.Validate(); err != nil {
		return finetype.FineType{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.fineTypeRepo.Create(ctx, item); err != nil {
		return finetype.FineType{}, fmt.Errorf("create fine type: %w", err)
	}

	s.logger.InfoContext(ctx, "fine type created", "fine_type_id", item.ID, "category_id", item.CategoryID)

	return item, nil
}

// Update edits a price-list entry. Fines already recorded keep their
// snapshot of the old name and amount.
func (s *FineTypeService) Update(ctx context.Context, input UpdateFineTypeInput) (finetype.FineType, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FineTypeService.Update")
	defer span.End()

	input.FineTypeID = strings.TrimSpace(input.FineTypeID)
	if input.FineTypeID == "" {
		return finetype.FineType{}, fmt.Errorf("%w: fine type id is required", ErrInvalidInput)
	}

	existing, exists, err := s.fineTypeRepo.GetByID(ctx, input.FineTypeID)
	if err != nil {
		return finetype.FineType{}, fmt.Errorf("get fine type: %w", err)
	}
	if !exists {
		return finetype.FineType{}, fmt.Errorf("%w: fine type=%s", ErrNotFound, input.FineTypeID)
	}

	item := finetype.FineType{
		ID:          existing.ID,
		CategoryID:  existing.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		UnitPrice:   input.UnitPrice,
		Description: strings.TrimSpace(input.Description),
		Active:      existing.Active,
		HasQuantity: input.HasQuantity,
		Unit:        strings.TrimSpace(input.Unit),
	}
	if err := item.Validate(); err != nil {
		return finetype.FineType{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.fineTypeRepo.Update(ctx, item); err != nil {
		return finetype.FineType{}, fmt.Errorf("update fine type: %w", err)
	}

	return item, nil
}

// Deactivate soft-deletes a price-list entry so it disappears from new fine
// submissions without touching fines already charged from it.
func (s *FineTypeService) Deactivate(ctx context.Context, fineTypeID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FineTypeService.Deactivate")
	defer span.End()

	fineTypeID = strings.TrimSpace(fineTypeID)
	if fineTypeID == "" {
		return fmt.Errorf("%w: fine type id is required", ErrInvalidInput)
	}

	_, exists, err := s.fineTypeRepo.GetByID(ctx, fineTypeID)
	if err != nil {
		return fmt.Errorf("get fine type: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: fine type=%s", ErrNotFound, fineTypeID)
	}

	if err := s.fineTypeRepo.Deactivate(ctx, fineTypeID); err != nil {
		return fmt.Errorf("deactivate fine type: %w", err)
	}

	s.logger.InfoContext(ctx, "fine type deactivated", "fine_type_id", fineTypeID)

	return nil
}

// GetFineType loads one price-list entry for category-scope checks in
// handlers.
func (s *FineTypeService) GetFineType(ctx context.Context, fineTypeID string) (finetype.FineType, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FineTypeService.GetFineType")
	defer span.End()

	item, exists, err := s.fineTypeRepo.GetByID(ctx, strings.TrimSpace(fineTypeID))
	if err != nil {
		return finetype.FineType{}, fmt.Errorf("get fine type: %w", err)
	}
	if !exists {
		return finetype.FineType{}, fmt.Errorf("%w: fine type=%s", ErrNotFound, fineTypeID)
	}

	return item, nil
}
