package category

import (
	"fmt"
	"regexp"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Category is a team division that scopes players, fines and finances.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Active      bool
	Order       int
}

func (c Category) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("category id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if c.Slug == "" {
		return fmt.Errorf("category slug is required")
	}
	if !slugPattern.MatchString(c.Slug) {
		return fmt.Errorf("invalid category slug: %s", c.Slug)
	}

	return nil
}
