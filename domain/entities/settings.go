package entities

import "time"

// BotSettings holds the global toggles of the bot. There is exactly one
// row of these.
type BotSettings struct {
	BettingPaused bool      `db:"betting_paused"`
	UpdatedAt     time.Time `db:"updated_at"`
}
