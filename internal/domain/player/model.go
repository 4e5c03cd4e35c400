package player

import "fmt"

// Role distinguishes how a club member appears on the fine board. It carries
// no pricing logic; fine amounts are the same regardless of role.
type Role string

const (
	RolePlayer     Role = "player"
	RoleGoalkeeper Role = "goalkeeper"
	RoleCoach      Role = "coach"
)

var AllRoles = map[Role]struct{}{
	RolePlayer:     {},
	RoleGoalkeeper: {},
	RoleCoach:      {},
}

// Player is a club member who can be fined within one category.
type Player struct {
	ID         string
	CategoryID string
	Name       string
	Role       Role
	Email      string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.CategoryID == "" {
		return fmt.Errorf("player category id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}

	return nil
}
