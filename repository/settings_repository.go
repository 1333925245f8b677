package repository

import (
	"context"
	"fmt"

	"ligabet/database"
	"ligabet/domain/entities"
	"ligabet/domain/interfaces"
)

type settingsRepository struct {
	q Queryable
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *database.DB) interfaces.SettingsRepository {
	return &settingsRepository{q: db.Pool}
}

func newSettingsRepository(tx Queryable) interfaces.SettingsRepository {
	return &settingsRepository{q: tx}
}

func (r *settingsRepository) Get(ctx context.Context) (*entities.BotSettings, error) {
	query := `SELECT betting_paused, updated_at FROM bot_settings WHERE id = 1`

	var settings entities.BotSettings
	err := r.q.QueryRow(ctx, query).Scan(&settings.BettingPaused, &settings.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepository) SetBettingPaused(ctx context.Context, paused bool) error {
	query := `UPDATE bot_settings SET betting_paused = $1, updated_at = NOW() WHERE id = 1`

	_, err := r.q.Exec(ctx, query, paused)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
