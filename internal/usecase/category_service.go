package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/zdenekh/club-fines/internal/domain/category"
	idgen "github.com/zdenekh/club-fines/internal/platform/id"
	"github.com/zdenekh/club-fines/internal/platform/logging"
)

type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description string
	Order       int
}

type UpdateCategoryInput struct {
	CategoryID  string
	Name        string
	Slug        string
	Description string
	Active      bool
	Order       int
}

type CategoryService struct {
	categoryRepo category.Repository
	idGen        idgen.Generator
	logger       *logging.Logger
}

func NewCategoryService(categoryRepo category.Repository, idGen idgen.Generator, logger *logging.Logger) *CategoryService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &CategoryService{
		categoryRepo: categoryRepo,
		idGen:        idGen,
		logger:       logger,
	}
}

// List returns active categories in display order.
func (s *CategoryService) List(ctx context.Context) ([]category.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.List")
	defer span.End()

	items, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := make([]category.Category, 0, len(items))
	for _, c := range items {
		if c.Active {
			out = append(out, c)
		}
	}

	return out, nil
}

// ListAll returns every category, including inactive ones, for the main
// administrator.
func (s *CategoryService) ListAll(ctx context.Context) ([]category.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.ListAll")
	defer span.End()

	items, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return items, nil
}

func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (category.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.Create")
	defer span.End()

	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	_, exists, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return category.Category{}, fmt.Errorf("get category by slug: %w", err)
	}
	if exists {
		return category.Category{}, fmt.Errorf("%w: slug=%s is already taken", ErrInvalidInput, slug)
	}

	categoryID, err := s.idGen.NewID()
	if err != nil {
		return category.Category{}, fmt.Errorf("generate category id: %w", err)
	}

	item := category.Category{
		ID:          categoryID,
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		Active:      true,
		Order:       input.Order,
	}
	if err := item.Validate(); err != nil {
		return category.Category{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.categoryRepo.Create(ctx, item); err != nil {
		return category.Category{}, fmt.Errorf("create category: %w", err)
	}

	s.logger.InfoContext(ctx, "category created", "category_id", item.ID, "slug", item.Slug)

	return item, nil
}

func (s *CategoryService) Update(ctx context.Context, input UpdateCategoryInput) (category.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.Update")
	defer span.End()

	input.CategoryID = strings.TrimSpace(input.CategoryID)
	if input.CategoryID == "" {
		return category.Category{}, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	existing, exists, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return category.Category{}, fmt.Errorf("get category: %w", err)
	}
	if !exists {
		return category.Category{}, fmt.Errorf("%w: category=%s", ErrNotFound, input.CategoryID)
	}

	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if slug != existing.Slug {
		_, taken, err := s.categoryRepo.GetBySlug(ctx, slug)
		if err != nil {
			return category.Category{}, fmt.Errorf("get category by slug: %w", err)
		}
		if taken {
			return category.Category{}, fmt.Errorf("%w: slug=%s is already taken", ErrInvalidInput, slug)
		}
	}

	item := category.Category{
		ID:          existing.ID,
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		Active:      input.Active,
		Order:       input.Order,
	}
	if err := item.Validate(); err != nil {
		return category.Category{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.categoryRepo.Update(ctx, item); err != nil {
		return category.Category{}, fmt.Errorf("update category: %w", err)
	}

	return item, nil
}

func (s *CategoryService) Delete(ctx context.Context, categoryID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.Delete")
	defer span.End()

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	_, exists, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: category=%s", ErrNotFound, categoryID)
	}

	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.logger.InfoContext(ctx, "category deleted", "category_id", categoryID)

	return nil
}
