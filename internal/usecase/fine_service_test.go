package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/zdenekh/club-fines/internal/infrastructure/repository/memory"
)

type seqIDGenerator struct {
	prefix string
	n      int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("%s-%03d", g.prefix, g.n), nil
}

func newFineService() (*FineService, *memory.FineRepository) {
	fineRepo := memory.NewFineRepository(nil)
	svc := NewFineService(
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewFineTypeRepository(memory.SeedFineTypes()),
		fineRepo,
		&seqIDGenerator{prefix: "fine"},
		nil,
	)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC) }

	return svc, fineRepo
}

func TestFineService_RecordFines_BatchAcrossPlayersAndTypes(t *testing.T) {
	svc, fineRepo := newFineService()

	got, err := svc.RecordFines(t.Context(), RecordFinesInput{
		CategoryID: memory.CategoryIDMen,
		PlayerIDs:  []string{"pl-men-01", "pl-men-02"},
		Selections: []FineSelection{
			{FineTypeID: "ft-men-late"},
			{FineTypeID: "ft-men-yellow"},
		},
	})
	if err != nil {
		t.Fatalf("record fines: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("unexpected fine count: got=%d want=4", len(got))
	}

	stored, err := fineRepo.ListByCategory(t.Context(), memory.CategoryIDMen)
	if err != nil {
		t.Fatalf("list fines: %v", err)
	}
	if len(stored) != 4 {
		t.Fatalf("unexpected stored count: got=%d want=4", len(stored))
	}
	for _, f := range stored {
		if f.Type != "Late to training" && f.Type != "Yellow card" {
			t.Fatalf("unexpected fine type snapshot: %s", f.Type)
		}
		wantDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		if !f.Date.Equal(wantDate) {
			t.Fatalf("unexpected fine date: got=%s want=%s", f.Date, wantDate)
		}
	}
}

func TestFineService_RecordFines_QuantityMultipliesUnitPrice(t *testing.T) {
	svc, _ := newFineService()

	qty := int64(5)
	got, err := svc.RecordFines(t.Context(), RecordFinesInput{
		CategoryID: memory.CategoryIDMen,
		PlayerIDs:  []string{"pl-men-01"},
		Selections: []FineSelection{{FineTypeID: "ft-men-beer", Quantity: &qty}},
	})
	if err != nil {
		t.Fatalf("record fines: %v", err)
	}
	if got[0].Amount != 60 {
		t.Fatalf("unexpected amount: got=%d want=60", got[0].Amount)
	}
}

func TestFineService_RecordFines_OverrideReplacesUnitPrice(t *testing.T) {
	svc, _ := newFineService()

	override := int64(75)
	got, err := svc.RecordFines(t.Context(), RecordFinesInput{
		CategoryID: memory.CategoryIDMen,
		PlayerIDs:  []string{"pl-men-01"},
		Selections: []FineSelection{{FineTypeID: "ft-men-late", OverrideAmount: &override}},
	})
	if err != nil {
		t.Fatalf("record fines: %v", err)
	}
	if got[0].Amount != 75 {
		t.Fatalf("unexpected amount: got=%d want=75", got[0].Amount)
	}
}

func TestFineService_RecordFines_UnknownPlayerRejectsWholeBatch(t *testing.T) {
	svc, fineRepo := newFineService()

	_, err := svc.RecordFines(t.Context(), RecordFinesInput{
		CategoryID: memory.CategoryIDMen,
		PlayerIDs:  []string{"pl-men-01", "pl-ghost"},
		Selections: []FineSelection{{FineTypeID: "ft-men-late"}},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	stored, err := fineRepo.ListByCategory(t.Context(), memory.CategoryIDMen)
	if err != nil {
		t.Fatalf("list fines: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no fines stored after rejected batch, got %d", len(stored))
	}
}

func TestFineService_RecordFines_CrossCategoryFineTypeRejected(t *testing.T) {
	svc, _ := newFineService()

	_, err := svc.RecordFines(t.Context(), RecordFinesInput{
		CategoryID: memory.CategoryIDMen,
		PlayerIDs:  []string{"pl-men-01"},
		Selections: []FineSelection{{FineTypeID: "ft-wom-late"}},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFineService_RecordFines_DeactivatedFineTypeRejected(t *testing.T) {
	fineTypeRepo := memory.NewFineTypeRepository(memory.SeedFineTypes())
	if err := fineTypeRepo.Deactivate(t.Context(), "ft-men-late"); err != nil {
		t.Fatalf("deactivate fine type: %v", err)
	}

	svc := NewFineService(
		memory.NewPlayerRepository(memory.SeedPlayers()),
		fineTypeRepo,
		memory.NewFineRepository(nil),
		&seqIDGenerator{prefix: "fine"},
		nil,
	)

	_, err := svc.RecordFines(t.Context(), RecordFinesInput{
		CategoryID: memory.CategoryIDMen,
		PlayerIDs:  []string{"pl-men-01"},
		Selections: []FineSelection{{FineTypeID: "ft-men-late"}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFineService_RecordFines_DuplicatePlayerRejected(t *testing.T) {
	svc, _ := newFineService()

	_, err := svc.RecordFines(t.Context(), RecordFinesInput{
		CategoryID: memory.CategoryIDMen,
		PlayerIDs:  []string{"pl-men-01", "pl-men-01"},
		Selections: []FineSelection{{FineTypeID: "ft-men-late"}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFineService_DeleteFine_CategoryScope(t *testing.T) {
	svc, fineRepo := newFineService()

	got, err := svc.RecordFines(t.Context(), RecordFinesInput{
		CategoryID: memory.CategoryIDMen,
		PlayerIDs:  []string{"pl-men-01"},
		Selections: []FineSelection{{FineTypeID: "ft-men-late"}},
	})
	if err != nil {
		t.Fatalf("record fines: %v", err)
	}
	fineID := got[0].ID

	if err := svc.DeleteFine(t.Context(), memory.CategoryIDWomen, fineID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-category delete, got %v", err)
	}
	if err := svc.DeleteFine(t.Context(), memory.CategoryIDMen, fineID); err != nil {
		t.Fatalf("delete fine: %v", err)
	}

	stored, err := fineRepo.ListByCategory(t.Context(), memory.CategoryIDMen)
	if err != nil {
		t.Fatalf("list fines: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected fine to be deleted, got %d rows", len(stored))
	}
}
