package user

import (
	"fmt"
	"time"
)

// Role decides which categories an administrator may manage.
type Role string

const (
	// RoleMainAdmin manages every category and the category list itself.
	RoleMainAdmin Role = "main_admin"
	// RoleCategoryAdmin manages exactly one category.
	RoleCategoryAdmin Role = "category_admin"
)

// User is an administrator account. Password hashes are bcrypt.
type User struct {
	ID             string
	Username       string
	PasswordHash   string
	Role           Role
	CategoryID     string
	Active         bool
	FailedAttempts int
	BlockedUntil   *time.Time
	LastLoginAt    *time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.Username == "" {
		return fmt.Errorf("username is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	switch u.Role {
	case RoleMainAdmin:
	case RoleCategoryAdmin:
		if u.CategoryID == "" {
			return fmt.Errorf("category admin requires a category id")
		}
	default:
		return fmt.Errorf("invalid user role: %s", u.Role)
	}

	return nil
}

// Principal is the authenticated identity attached to a request. It is
// re-derived from server-side session state on every call; nothing in it
// comes from client-supplied claims.
type Principal struct {
	UserID     string
	Role       Role
	CategoryID string
}

// CanManage is the single capability gate for category-scoped mutations.
// Every handler goes through it instead of carrying its own role checks.
func (p Principal) CanManage(categoryID string) bool {
	switch p.Role {
	case RoleMainAdmin:
		return true
	case RoleCategoryAdmin:
		return categoryID != "" && p.CategoryID == categoryID
	default:
		return false
	}
}
