package usecase

import (
	"errors"
	"testing"

	"github.com/zdenekh/club-fines/internal/domain/player"
	"github.com/zdenekh/club-fines/internal/infrastructure/repository/memory"
)

func newPlayerService() *PlayerService {
	return NewPlayerService(
		memory.NewCategoryRepository(memory.SeedCategories()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		&seqIDGenerator{prefix: "pl"},
		nil,
	)
}

func TestPlayerService_Create(t *testing.T) {
	svc := newPlayerService()

	got, err := svc.Create(t.Context(), CreatePlayerInput{
		CategoryID: memory.CategoryIDMen,
		Name:       " Ondřej Král ",
		Role:       "goalkeeper",
		Email:      "ondrej@example.com",
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if got.Name != "Ondřej Král" {
		t.Fatalf("unexpected name: %q", got.Name)
	}
	if got.Role != player.RoleGoalkeeper {
		t.Fatalf("unexpected role: %q", got.Role)
	}

	listed, err := svc.ListByCategory(t.Context(), memory.CategoryIDMen)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	found := false
	for _, p := range listed {
		if p.ID == got.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("created player missing from category list")
	}
}

func TestPlayerService_Create_UnknownCategory(t *testing.T) {
	svc := newPlayerService()

	_, err := svc.Create(t.Context(), CreatePlayerInput{
		CategoryID: "cat-missing",
		Name:       "Ondřej Král",
		Role:       "player",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Create_InvalidRole(t *testing.T) {
	svc := newPlayerService()

	_, err := svc.Create(t.Context(), CreatePlayerInput{
		CategoryID: memory.CategoryIDMen,
		Name:       "Ondřej Král",
		Role:       "mascot",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_Update_KeepsCategory(t *testing.T) {
	svc := newPlayerService()

	got, err := svc.Update(t.Context(), UpdatePlayerInput{
		PlayerID: "pl-men-01",
		Name:     "Jan Novák ml.",
		Role:     "coach",
	})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}
	if got.CategoryID != memory.CategoryIDMen {
		t.Fatalf("update must not move the player across categories, got %s", got.CategoryID)
	}
	if got.Role != player.RoleCoach {
		t.Fatalf("unexpected role: %q", got.Role)
	}
}

func TestPlayerService_Update_Unknown(t *testing.T) {
	svc := newPlayerService()

	_, err := svc.Update(t.Context(), UpdatePlayerInput{
		PlayerID: "pl-missing",
		Name:     "Nobody",
		Role:     "player",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Delete_RemovesFromList(t *testing.T) {
	svc := newPlayerService()

	if err := svc.Delete(t.Context(), "pl-men-01"); err != nil {
		t.Fatalf("delete player: %v", err)
	}

	listed, err := svc.ListByCategory(t.Context(), memory.CategoryIDMen)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	for _, p := range listed {
		if p.ID == "pl-men-01" {
			t.Fatal("deleted player still listed")
		}
	}

	if err := svc.Delete(t.Context(), "pl-men-01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
