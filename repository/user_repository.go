package repository

import (
	"context"
	"fmt"

	"ligabet/database"
	"ligabet/domain/entities"
	"ligabet/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	q Queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) interfaces.UserRepository {
	return &userRepository{q: db.Pool}
}

func newUserRepository(tx Queryable) interfaces.UserRepository {
	return &userRepository{q: tx}
}

const userColumns = `discord_id, username, balance, total_bets, bets_won, bets_lost, total_winnings, created_at, updated_at`

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.DiscordID,
		&user.Username,
		&user.Balance,
		&user.TotalBets,
		&user.BetsWon,
		&user.BetsLost,
		&user.TotalWinnings,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByDiscordID(ctx context.Context, discordID int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE discord_id = $1`

	user, err := scanUser(r.q.QueryRow(ctx, query, discordID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", discordID, err)
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, discordID int64, username string, initialBalance int64) (*entities.User, error) {
	query := `
		INSERT INTO users (discord_id, username, balance)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	user, err := scanUser(r.q.QueryRow(ctx, query, discordID, username, initialBalance))
	if err != nil {
		return nil, fmt.Errorf("failed to create user %d: %w", discordID, err)
	}
	return user, nil
}

func (r *userRepository) UpdateBalance(ctx context.Context, discordID int64, newBalance int64) error {
	query := `
		UPDATE users
		SET balance = $1, updated_at = NOW()
		WHERE discord_id = $2`

	result, err := r.q.Exec(ctx, query, newBalance, discordID)
	if err != nil {
		return fmt.Errorf("failed to update balance for user %d: %w", discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user with discord ID %d not found", discordID)
	}
	return nil
}

func (r *userRepository) IncrementBetCounters(ctx context.Context, discordID int64, delta int) error {
	query := `
		UPDATE users
		SET total_bets = total_bets + $1, updated_at = NOW()
		WHERE discord_id = $2`

	result, err := r.q.Exec(ctx, query, delta, discordID)
	if err != nil {
		return fmt.Errorf("failed to update bet counter for user %d: %w", discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user with discord ID %d not found", discordID)
	}
	return nil
}

func (r *userRepository) RecordBetResult(ctx context.Context, discordID int64, won bool, payout int64) error {
	var query string
	var args []any
	if won {
		query = `
			UPDATE users
			SET bets_won = bets_won + 1, total_winnings = total_winnings + $1, updated_at = NOW()
			WHERE discord_id = $2`
		args = []any{payout, discordID}
	} else {
		query = `
			UPDATE users
			SET bets_lost = bets_lost + 1, updated_at = NOW()
			WHERE discord_id = $1`
		args = []any{discordID}
	}

	result, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to record bet result for user %d: %w", discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user with discord ID %d not found", discordID)
	}
	return nil
}

func (r *userRepository) GetTopByBalance(ctx context.Context, limit int) ([]*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY balance DESC, discord_id LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *userRepository) GetAll(ctx context.Context) ([]*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]*entities.User, error) {
	var users []*entities.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}
