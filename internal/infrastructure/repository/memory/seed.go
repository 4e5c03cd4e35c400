package memory

import (
	"github.com/zdenekh/club-fines/internal/domain/category"
	"github.com/zdenekh/club-fines/internal/domain/finetype"
	"github.com/zdenekh/club-fines/internal/domain/player"
	"github.com/zdenekh/club-fines/internal/domain/user"
)

const (
	CategoryIDMen   = "cat-men-a"
	CategoryIDWomen = "cat-women-a"
	CategoryIDJun   = "cat-juniors"
)

func SeedCategories() []category.Category {
	return []category.Category{
		{ID: CategoryIDMen, Name: "Men A", Slug: "men-a", Description: "First men's team", Active: true, Order: 1},
		{ID: CategoryIDWomen, Name: "Women A", Slug: "women-a", Description: "First women's team", Active: true, Order: 2},
		{ID: CategoryIDJun, Name: "Juniors", Slug: "juniors", Description: "Junior squad", Active: true, Order: 3},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-men-01", CategoryID: CategoryIDMen, Name: "Petr Novak", Role: player.RolePlayer},
		{ID: "pl-men-02", CategoryID: CategoryIDMen, Name: "Jan Svoboda", Role: player.RolePlayer},
		{ID: "pl-men-03", CategoryID: CategoryIDMen, Name: "Tomas Dvorak", Role: player.RoleGoalkeeper},
		{ID: "pl-men-04", CategoryID: CategoryIDMen, Name: "Karel Cerny", Role: player.RoleCoach},
		{ID: "pl-wom-01", CategoryID: CategoryIDWomen, Name: "Eva Prochazkova", Role: player.RolePlayer},
		{ID: "pl-wom-02", CategoryID: CategoryIDWomen, Name: "Lucie Vesela", Role: player.RoleGoalkeeper},
		{ID: "pl-jun-01", CategoryID: CategoryIDJun, Name: "Adam Marek", Role: player.RolePlayer},
	}
}

func SeedFineTypes() []finetype.FineType {
	return []finetype.FineType{
		{ID: "ft-men-late", CategoryID: CategoryIDMen, Name: "Late to training", UnitPrice: 50, Active: true},
		{ID: "ft-men-yellow", CategoryID: CategoryIDMen, Name: "Yellow card", UnitPrice: 100, Active: true},
		{ID: "ft-men-beer", CategoryID: CategoryIDMen, Name: "Round of beers", UnitPrice: 12, Active: true, HasQuantity: true, Unit: "beer"},
		{ID: "ft-wom-late", CategoryID: CategoryIDWomen, Name: "Late to training", UnitPrice: 30, Active: true},
		{ID: "ft-jun-forgot", CategoryID: CategoryIDJun, Name: "Forgotten kit", UnitPrice: 20, Active: true},
	}
}

// SeedUsers returns a main administrator and one category administrator for
// memory mode. The hashes are development placeholders; real deployments load
// accounts from the database.
func SeedUsers() []user.User {
	const devHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	return []user.User{
		{
			ID:           "usr-main",
			Username:     "admin",
			PasswordHash: devHash,
			Role:         user.RoleMainAdmin,
			Active:       true,
		},
		{
			ID:           "usr-men",
			Username:     "men-admin",
			PasswordHash: devHash,
			Role:         user.RoleCategoryAdmin,
			CategoryID:   CategoryIDMen,
			Active:       true,
		},
	}
}
