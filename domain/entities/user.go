package entities

import (
	"errors"
	"time"
)

// User represents a Discord user with a betting balance
type User struct {
	DiscordID     int64     `db:"discord_id"`
	Username      string    `db:"username"`
	Balance       int64     `db:"balance"`
	TotalBets     int       `db:"total_bets"`
	BetsWon       int       `db:"bets_won"`
	BetsLost      int       `db:"bets_lost"`
	TotalWinnings int64     `db:"total_winnings"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// CanAfford checks if the user has sufficient balance for an amount
func (u *User) CanAfford(amount int64) bool {
	return u.Balance >= amount
}

// ValidateAmount checks if an amount is valid (positive and affordable)
func (u *User) ValidateAmount(amount int64) error {
	if amount <= 0 {
		return errors.New("amount must be positive")
	}
	if !u.CanAfford(amount) {
		return ErrInsufficientBalance
	}
	return nil
}

// WinRate returns the percentage of settled bets the user has won
func (u *User) WinRate() float64 {
	settled := u.BetsWon + u.BetsLost
	if settled == 0 {
		return 0
	}
	return float64(u.BetsWon) / float64(settled) * 100
}

// ErrInsufficientBalance is returned when a debit exceeds the user's balance.
var ErrInsufficientBalance = errors.New("insufficient balance")
