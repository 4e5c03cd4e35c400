package session

import (
	"fmt"
	"time"
)

// Session is a server-issued login. The token is opaque; everything the
// request is allowed to do is looked up server-side from the user it maps to.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Validate() error {
	if s.Token == "" {
		return fmt.Errorf("session token is required")
	}
	if s.UserID == "" {
		return fmt.Errorf("session user id is required")
	}
	if !s.ExpiresAt.After(s.CreatedAt) {
		return fmt.Errorf("session expiry must be after creation")
	}

	return nil
}

// Expired reports whether the session is past its server-enforced expiry.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
