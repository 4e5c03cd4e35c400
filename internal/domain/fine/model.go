package fine

import (
	"fmt"
	"time"
)

// Fine is one monetary penalty charged to one player on one date. The Type
// field is a snapshot of the price-list name at creation time, so later edits
// to the price list never rewrite history. Whether a fine is paid is derived
// from the payment ledger, not stored here.
type Fine struct {
	ID         string
	PlayerID   string
	CategoryID string
	Type       string
	Amount     int64
	Date       time.Time
}

func (f Fine) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("fine id is required")
	}
	if f.PlayerID == "" {
		return fmt.Errorf("fine player id is required")
	}
	if f.CategoryID == "" {
		return fmt.Errorf("fine category id is required")
	}
	if f.Type == "" {
		return fmt.Errorf("fine type label is required")
	}
	if f.Amount <= 0 {
		return fmt.Errorf("fine amount must be greater than zero")
	}

	return nil
}

// ChargeAmount resolves the amount charged for one price-list selection.
// An administrator override replaces the unit price; quantity multiplies it.
func ChargeAmount(unitPrice int64, override *int64, quantity *int64) int64 {
	price := unitPrice
	if override != nil {
		price = *override
	}

	qty := int64(1)
	if quantity != nil {
		qty = *quantity
	}

	return price * qty
}
