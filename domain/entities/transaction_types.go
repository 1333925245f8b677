package entities

// TransactionType represents the type of a balance transaction
type TransactionType string

const (
	TransactionTypeBetPlaced   TransactionType = "bet_placed"
	TransactionTypeBetWin      TransactionType = "bet_win"
	TransactionTypeBetRefund   TransactionType = "bet_refund"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeTransferOut TransactionType = "transfer_out"
	TransactionTypeAdminGrant  TransactionType = "admin_grant"
	TransactionTypeInitial     TransactionType = "initial"
)

// IsCredit returns true for transaction types that add to the balance
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionTypeBetWin, TransactionTypeBetRefund, TransactionTypeTransferIn, TransactionTypeAdminGrant, TransactionTypeInitial:
		return true
	}
	return false
}

// IsDebit returns true for transaction types that take from the balance
func (t TransactionType) IsDebit() bool {
	switch t {
	case TransactionTypeBetPlaced, TransactionTypeTransferOut:
		return true
	}
	return false
}

// IsBettingRelated returns true for transactions caused by bets
func (t TransactionType) IsBettingRelated() bool {
	switch t {
	case TransactionTypeBetPlaced, TransactionTypeBetWin, TransactionTypeBetRefund:
		return true
	}
	return false
}

// IsTransferType returns true for user-to-user transfers
func (t TransactionType) IsTransferType() bool {
	return t == TransactionTypeTransferIn || t == TransactionTypeTransferOut
}
