package usecase

import (
	"errors"
	"testing"

	"github.com/zdenekh/club-fines/internal/infrastructure/repository/memory"
)

func newFineTypeService() (*FineTypeService, *memory.FineTypeRepository) {
	fineTypeRepo := memory.NewFineTypeRepository(memory.SeedFineTypes())
	svc := NewFineTypeService(
		memory.NewCategoryRepository(memory.SeedCategories()),
		fineTypeRepo,
		&seqIDGenerator{prefix: "ft"},
		nil,
	)

	return svc, fineTypeRepo
}

func TestFineTypeService_Create(t *testing.T) {
	svc, _ := newFineTypeService()

	got, err := svc.Create(t.Context(), CreateFineTypeInput{
		CategoryID:  memory.CategoryIDMen,
		Name:        "  Missed training ",
		UnitPrice:   40,
		HasQuantity: true,
		Unit:        "session",
	})
	if err != nil {
		t.Fatalf("create fine type: %v", err)
	}
	if got.Name != "Missed training" {
		t.Fatalf("unexpected name: %q", got.Name)
	}
	if !got.Active {
		t.Fatal("new fine types start active")
	}

	listed, err := svc.ListByCategory(t.Context(), memory.CategoryIDMen, true)
	if err != nil {
		t.Fatalf("list fine types: %v", err)
	}
	found := false
	for _, ft := range listed {
		if ft.ID == got.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("created fine type missing from active list")
	}
}

func TestFineTypeService_Create_UnknownCategory(t *testing.T) {
	svc, _ := newFineTypeService()

	_, err := svc.Create(t.Context(), CreateFineTypeInput{
		CategoryID: "cat-missing",
		Name:       "Late arrival",
		UnitPrice:  50,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFineTypeService_Create_NonPositivePrice(t *testing.T) {
	svc, _ := newFineTypeService()

	_, err := svc.Create(t.Context(), CreateFineTypeInput{
		CategoryID: memory.CategoryIDMen,
		Name:       "Late arrival",
		UnitPrice:  0,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFineTypeService_Update_PreservesCategoryAndActive(t *testing.T) {
	svc, _ := newFineTypeService()

	got, err := svc.Update(t.Context(), UpdateFineTypeInput{
		FineTypeID: "ft-men-late",
		Name:       "Late arrival to training",
		UnitPrice:  80,
	})
	if err != nil {
		t.Fatalf("update fine type: %v", err)
	}
	if got.CategoryID != memory.CategoryIDMen {
		t.Fatalf("update must not move the entry across categories, got %s", got.CategoryID)
	}
	if !got.Active {
		t.Fatal("update must not flip the active flag")
	}
	if got.UnitPrice != 80 {
		t.Fatalf("unexpected unit price: %d", got.UnitPrice)
	}
}

func TestFineTypeService_Update_Unknown(t *testing.T) {
	svc, _ := newFineTypeService()

	_, err := svc.Update(t.Context(), UpdateFineTypeInput{
		FineTypeID: "ft-missing",
		Name:       "Whatever",
		UnitPrice:  10,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFineTypeService_Deactivate_HidesFromActiveList(t *testing.T) {
	svc, _ := newFineTypeService()

	if err := svc.Deactivate(t.Context(), "ft-men-late"); err != nil {
		t.Fatalf("deactivate fine type: %v", err)
	}

	active, err := svc.ListByCategory(t.Context(), memory.CategoryIDMen, true)
	if err != nil {
		t.Fatalf("list active fine types: %v", err)
	}
	for _, ft := range active {
		if ft.ID == "ft-men-late" {
			t.Fatal("deactivated fine type still listed as active")
		}
	}

	all, err := svc.ListByCategory(t.Context(), memory.CategoryIDMen, false)
	if err != nil {
		t.Fatalf("list all fine types: %v", err)
	}
	found := false
	for _, ft := range all {
		if ft.ID == "ft-men-late" && !ft.Active {
			found = true
		}
	}
	if !found {
		t.Fatal("deactivated fine type should stay visible in the full list")
	}
}

func TestFineTypeService_Deactivate_Unknown(t *testing.T) {
	svc, _ := newFineTypeService()

	err := svc.Deactivate(t.Context(), "ft-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
