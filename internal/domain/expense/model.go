package expense

import (
	"fmt"
	"strings"
	"time"
)

// Expense is money spent by the club, reducing available funds. Expenses are
// created and deleted, never edited in place.
type Expense struct {
	ID          string
	CategoryID  string
	Amount      int64
	Description string
	Date        time.Time
}

func (e Expense) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("expense id is required")
	}
	if e.CategoryID == "" {
		return fmt.Errorf("expense category id is required")
	}
	if e.Amount <= 0 {
		return fmt.Errorf("expense amount must be greater than zero")
	}
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("expense description is required")
	}

	return nil
}
