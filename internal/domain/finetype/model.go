package finetype

import "fmt"

// FineType is a reusable price-list entry from which fines are charged.
// Deactivation hides it from new fines; historical fines keep the name and
// amount they were created with.
type FineType struct {
	ID          string
	CategoryID  string
	Name        string
	UnitPrice   int64
	Description string
	Active      bool
	HasQuantity bool
	// Unit labels the quantity when HasQuantity is set, e.g. "minute" or "goal".
	Unit string
}

func (t FineType) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("fine type id is required")
	}
	if t.CategoryID == "" {
		return fmt.Errorf("fine type category id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("fine type name is required")
	}
	if t.UnitPrice <= 0 {
		return fmt.Errorf("fine type unit price must be greater than zero")
	}

	return nil
}
