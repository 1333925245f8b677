package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"ligabet/database"
	"ligabet/domain/entities"
	"ligabet/domain/interfaces"
)

type balanceHistoryRepository struct {
	q Queryable
}

// NewBalanceHistoryRepository creates a new balance history repository
func NewBalanceHistoryRepository(db *database.DB) interfaces.BalanceHistoryRepository {
	return &balanceHistoryRepository{q: db.Pool}
}

func newBalanceHistoryRepository(tx Queryable) interfaces.BalanceHistoryRepository {
	return &balanceHistoryRepository{q: tx}
}

func (r *balanceHistoryRepository) Record(ctx context.Context, history *entities.BalanceHistory) error {
	var metadata []byte
	if history.TransactionMetadata != nil {
		var err error
		metadata, err = json.Marshal(history.TransactionMetadata)
		if err != nil {
			return fmt.Errorf("failed to marshal transaction metadata: %w", err)
		}
	}

	query := `
		INSERT INTO balance_history (discord_id, balance_before, balance_after, change_amount, transaction_type, transaction_metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		history.DiscordID,
		history.BalanceBefore,
		history.BalanceAfter,
		history.ChangeAmount,
		history.TransactionType,
		metadata,
	).Scan(&history.ID, &history.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record balance history: %w", err)
	}
	return nil
}

func (r *balanceHistoryRepository) GetByUser(ctx context.Context, discordID int64, limit int) ([]*entities.BalanceHistory, error) {
	query := `
		SELECT id, discord_id, balance_before, balance_after, change_amount, transaction_type, transaction_metadata, created_at
		FROM balance_history
		WHERE discord_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.q.Query(ctx, query, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance history: %w", err)
	}
	defer rows.Close()

	var entries []*entities.BalanceHistory
	for rows.Next() {
		var entry entities.BalanceHistory
		var metadata []byte
		err := rows.Scan(
			&entry.ID,
			&entry.DiscordID,
			&entry.BalanceBefore,
			&entry.BalanceAfter,
			&entry.ChangeAmount,
			&entry.TransactionType,
			&metadata,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance history: %w", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &entry.TransactionMetadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal transaction metadata: %w", err)
			}
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balance history: %w", err)
	}
	return entries, nil
}
