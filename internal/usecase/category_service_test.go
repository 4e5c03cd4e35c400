package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/zdenekh/club-fines/internal/domain/category"
)

type categoryRepoMock struct {
	mock.Mock
}

func (m *categoryRepoMock) List(ctx context.Context) ([]category.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]category.Category)
	return items, args.Error(1)
}

func (m *categoryRepoMock) GetByID(ctx context.Context, categoryID string) (category.Category, bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(category.Category), args.Bool(1), args.Error(2)
}

func (m *categoryRepoMock) GetBySlug(ctx context.Context, slug string) (category.Category, bool, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(category.Category), args.Bool(1), args.Error(2)
}

func (m *categoryRepoMock) Create(ctx context.Context, item category.Category) error {
	return m.Called(ctx, item).Error(0)
}

func (m *categoryRepoMock) Update(ctx context.Context, item category.Category) error {
	return m.Called(ctx, item).Error(0)
}

func (m *categoryRepoMock) Delete(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}

func TestCategoryService_List_FiltersInactive(t *testing.T) {
	repo := &categoryRepoMock{}
	repo.On("List", mock.Anything).Return([]category.Category{
		{ID: "cat-1", Name: "Men A", Slug: "men-a", Active: true, Order: 1},
		{ID: "cat-2", Name: "Old Boys", Slug: "old-boys", Active: false, Order: 2},
		{ID: "cat-3", Name: "Juniors", Slug: "juniors", Active: true, Order: 3},
	}, nil).Once()

	svc := NewCategoryService(repo, &seqIDGenerator{prefix: "cat"}, nil)

	got, err := svc.List(t.Context())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected category count: got=%d want=2", len(got))
	}
	for _, c := range got {
		if !c.Active {
			t.Fatalf("inactive category %s leaked into public list", c.ID)
		}
	}
	repo.AssertExpectations(t)
}

func TestCategoryService_ListAll_IncludesInactive(t *testing.T) {
	repo := &categoryRepoMock{}
	repo.On("List", mock.Anything).Return([]category.Category{
		{ID: "cat-1", Name: "Men A", Slug: "men-a", Active: true, Order: 1},
		{ID: "cat-2", Name: "Old Boys", Slug: "old-boys", Active: false, Order: 2},
	}, nil).Once()

	svc := NewCategoryService(repo, &seqIDGenerator{prefix: "cat"}, nil)

	got, err := svc.ListAll(t.Context())
	if err != nil {
		t.Fatalf("list all categories: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected category count: got=%d want=2", len(got))
	}
	repo.AssertExpectations(t)
}

func TestCategoryService_Create_NormalizesSlugAndActivates(t *testing.T) {
	repo := &categoryRepoMock{}
	repo.On("GetBySlug", mock.Anything, "veterans").
		Return(category.Category{}, false, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c category.Category) bool {
		return c.Slug == "veterans" && c.Active && c.Name == "Veterans"
	})).Return(nil).Once()

	svc := NewCategoryService(repo, &seqIDGenerator{prefix: "cat"}, nil)

	got, err := svc.Create(t.Context(), CreateCategoryInput{
		Name:  "  Veterans ",
		Slug:  " VETERANS ",
		Order: 4,
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if got.Slug != "veterans" {
		t.Fatalf("unexpected slug: %q", got.Slug)
	}
	if !got.Active {
		t.Fatal("new categories start active")
	}
	repo.AssertExpectations(t)
}

func TestCategoryService_Create_RejectsTakenSlug(t *testing.T) {
	repo := &categoryRepoMock{}
	repo.On("GetBySlug", mock.Anything, "men-a").
		Return(category.Category{ID: "cat-1", Slug: "men-a"}, true, nil).Once()

	svc := NewCategoryService(repo, &seqIDGenerator{prefix: "cat"}, nil)

	_, err := svc.Create(t.Context(), CreateCategoryInput{Name: "Men A", Slug: "men-a"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_Create_RejectsMalformedSlug(t *testing.T) {
	repo := &categoryRepoMock{}
	repo.On("GetBySlug", mock.Anything, "men a!").
		Return(category.Category{}, false, nil).Once()

	svc := NewCategoryService(repo, &seqIDGenerator{prefix: "cat"}, nil)

	_, err := svc.Create(t.Context(), CreateCategoryInput{Name: "Men A", Slug: "Men A!"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_Create_PropagatesRepoError(t *testing.T) {
	repoErr := fmt.Errorf("connection reset")

	repo := &categoryRepoMock{}
	repo.On("GetBySlug", mock.Anything, "veterans").
		Return(category.Category{}, false, repoErr).Once()

	svc := NewCategoryService(repo, &seqIDGenerator{prefix: "cat"}, nil)

	_, err := svc.Create(t.Context(), CreateCategoryInput{Name: "Veterans", Slug: "veterans"})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Fatalf("storage failure must not read as a validation error: %v", err)
	}
}

func TestCategoryService_Update_UnknownCategory(t *testing.T) {
	repo := &categoryRepoMock{}
	repo.On("GetByID", mock.Anything, "cat-missing").
		Return(category.Category{}, false, nil).Once()

	svc := NewCategoryService(repo, &seqIDGenerator{prefix: "cat"}, nil)

	_, err := svc.Update(t.Context(), UpdateCategoryInput{
		CategoryID: "cat-missing",
		Name:       "Men A",
		Slug:       "men-a",
		Active:     true,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryService_Update_SlugConflict(t *testing.T) {
	repo := &categoryRepoMock{}
	repo.On("GetByID", mock.Anything, "cat-1").
		Return(category.Category{ID: "cat-1", Name: "Men A", Slug: "men-a", Active: true}, true, nil).Once()
	repo.On("GetBySlug", mock.Anything, "juniors").
		Return(category.Category{ID: "cat-3", Slug: "juniors"}, true, nil).Once()

	svc := NewCategoryService(repo, &seqIDGenerator{prefix: "cat"}, nil)

	_, err := svc.Update(t.Context(), UpdateCategoryInput{
		CategoryID: "cat-1",
		Name:       "Men A",
		Slug:       "juniors",
		Active:     true,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_KeepsSlugWithoutConflictCheck(t *testing.T) {
	repo := &categoryRepoMock{}
	repo.On("GetByID", mock.Anything, "cat-1").
		Return(category.Category{ID: "cat-1", Name: "Men A", Slug: "men-a", Active: true, Order: 1}, true, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c category.Category) bool {
		return c.ID == "cat-1" && c.Slug == "men-a" && c.Name == "Men A Team"
	})).Return(nil).Once()

	svc := NewCategoryService(repo, &seqIDGenerator{prefix: "cat"}, nil)

	got, err := svc.Update(t.Context(), UpdateCategoryInput{
		CategoryID: "cat-1",
		Name:       "Men A Team",
		Slug:       "men-a",
		Active:     true,
		Order:      1,
	})
	if err != nil {
		t.Fatalf("update category: %v", err)
	}
	if got.Name != "Men A Team" {
		t.Fatalf("unexpected name: %q", got.Name)
	}
	repo.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCategoryService_Delete_UnknownCategory(t *testing.T) {
	repo := &categoryRepoMock{}
	repo.On("GetByID", mock.Anything, "cat-missing").
		Return(category.Category{}, false, nil).Once()

	svc := NewCategoryService(repo, &seqIDGenerator{prefix: "cat"}, nil)

	err := svc.Delete(t.Context(), "cat-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
