package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"ligabet/database"
	"ligabet/domain/entities"
	"ligabet/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

type betRepository struct {
	q Queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) interfaces.BetRepository {
	return &betRepository{q: db.Pool}
}

func newBetRepository(tx Queryable) interfaces.BetRepository {
	return &betRepository{q: tx}
}

const betColumns = `id, discord_id, match_id, bet_type, pick, exact_home, exact_away, market, legs, amount, odds, status, description, placed_at, settled_at`

func scanBet(row pgx.Row) (*entities.Bet, error) {
	var bet entities.Bet
	var pick, market *string
	var legs []byte

	err := row.Scan(
		&bet.ID,
		&bet.DiscordID,
		&bet.MatchID,
		&bet.Type,
		&pick,
		&bet.ExactHome,
		&bet.ExactAway,
		&market,
		&legs,
		&bet.Amount,
		&bet.Odds,
		&bet.Status,
		&bet.Description,
		&bet.PlacedAt,
		&bet.SettledAt,
	)
	if err != nil {
		return nil, err
	}

	if pick != nil {
		p := entities.ResultTag(*pick)
		bet.Pick = &p
	}
	if market != nil {
		m := entities.MarketType(*market)
		bet.Market = &m
	}
	if len(legs) > 0 {
		if err := json.Unmarshal(legs, &bet.Legs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bet legs: %w", err)
		}
	}
	return &bet, nil
}

func (r *betRepository) Create(ctx context.Context, bet *entities.Bet) error {
	var legs []byte
	if len(bet.Legs) > 0 {
		var err error
		legs, err = json.Marshal(bet.Legs)
		if err != nil {
			return fmt.Errorf("failed to marshal bet legs: %w", err)
		}
	}

	query := `
		INSERT INTO bets (id, discord_id, match_id, bet_type, pick, exact_home, exact_away, market, legs, amount, odds, status, description, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.q.Exec(ctx, query,
		bet.ID,
		bet.DiscordID,
		bet.MatchID,
		bet.Type,
		bet.Pick,
		bet.ExactHome,
		bet.ExactAway,
		bet.Market,
		legs,
		bet.Amount,
		bet.Odds,
		bet.Status,
		bet.Description,
		bet.PlacedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create bet: %w", err)
	}
	return nil
}

func (r *betRepository) GetByID(ctx context.Context, id string) (*entities.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE id = $1`

	bet, err := scanBet(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bet %s: %w", id, err)
	}
	return bet, nil
}

func (r *betRepository) GetByMatch(ctx context.Context, matchID string) ([]*entities.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE match_id = $1 ORDER BY placed_at`

	rows, err := r.q.Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	return collectBets(rows)
}

func (r *betRepository) GetPendingByMatch(ctx context.Context, matchID string) ([]*entities.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE match_id = $1 AND status = $2 ORDER BY placed_at`

	rows, err := r.q.Query(ctx, query, matchID, entities.BetStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending bets: %w", err)
	}
	defer rows.Close()

	return collectBets(rows)
}

func (r *betRepository) GetByUser(ctx context.Context, discordID int64, limit int) ([]*entities.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE discord_id = $1 ORDER BY placed_at DESC LIMIT $2`

	rows, err := r.q.Query(ctx, query, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query user bets: %w", err)
	}
	defer rows.Close()

	return collectBets(rows)
}

func (r *betRepository) Update(ctx context.Context, bet *entities.Bet) error {
	query := `
		UPDATE bets
		SET status = $1, settled_at = $2
		WHERE id = $3`

	result, err := r.q.Exec(ctx, query, bet.Status, bet.SettledAt, bet.ID)
	if err != nil {
		return fmt.Errorf("failed to update bet %s: %w", bet.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("bet %s not found", bet.ID)
	}
	return nil
}

func (r *betRepository) DeleteByMatch(ctx context.Context, matchID string) (int, error) {
	result, err := r.q.Exec(ctx, `DELETE FROM bets WHERE match_id = $1`, matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bets for match %s: %w", matchID, err)
	}
	return int(result.RowsAffected()), nil
}

func collectBets(rows pgx.Rows) ([]*entities.Bet, error) {
	var bets []*entities.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bets: %w", err)
	}
	return bets, nil
}
