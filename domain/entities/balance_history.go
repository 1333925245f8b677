package entities

import (
	"errors"
	"time"
)

// BalanceHistory represents a historical balance change
type BalanceHistory struct {
	ID                  int64           `db:"id"`
	DiscordID           int64           `db:"discord_id"`
	BalanceBefore       int64           `db:"balance_before"`
	BalanceAfter        int64           `db:"balance_after"`
	ChangeAmount        int64           `db:"change_amount"`
	TransactionType     TransactionType `db:"transaction_type"`
	TransactionMetadata map[string]any  `db:"transaction_metadata"`
	CreatedAt           time.Time       `db:"created_at"`
}

// IsPositiveChange returns true if the change amount is positive
func (bh *BalanceHistory) IsPositiveChange() bool {
	return bh.ChangeAmount > 0
}

// Validate performs basic consistency checks on the record
func (bh *BalanceHistory) Validate() error {
	if bh.ChangeAmount == 0 {
		return errors.New("change amount cannot be zero")
	}
	if bh.BalanceAfter != bh.BalanceBefore+bh.ChangeAmount {
		return errors.New("balance calculation is inconsistent")
	}
	return nil
}
