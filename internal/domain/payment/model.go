package payment

import (
	"fmt"
	"time"
)

// Payment is money received from a player, reducing their outstanding
// balance. Payments are immutable: the ledger treats them as an audit trail
// of cash actually collected.
type Payment struct {
	ID         string
	PlayerID   string
	CategoryID string
	Amount     int64
	Date       time.Time
}

func (p Payment) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("payment id is required")
	}
	if p.PlayerID == "" {
		return fmt.Errorf("payment player id is required")
	}
	if p.CategoryID == "" {
		return fmt.Errorf("payment category id is required")
	}
	if p.Amount <= 0 {
		return fmt.Errorf("payment amount must be greater than zero")
	}

	return nil
}
