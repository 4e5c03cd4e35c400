package cashbox

import "fmt"

// CashBox is the manually maintained float of one category: funds carried
// over from previous seasons or added outside the fine ledger. At most one
// row exists per category.
type CashBox struct {
	ID           string
	CategoryID   string
	ManualAmount int64
	Description  string
}

func (c CashBox) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("cash box id is required")
	}
	if c.CategoryID == "" {
		return fmt.Errorf("cash box category id is required")
	}

	return nil
}
