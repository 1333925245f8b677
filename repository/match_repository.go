package repository

import (
	"context"
	"fmt"

	"ligabet/database"
	"ligabet/domain/entities"
	"ligabet/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

type matchRepository struct {
	q Queryable
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *database.DB) interfaces.MatchRepository {
	return &matchRepository{q: db.Pool}
}

func newMatchRepository(tx Queryable) interfaces.MatchRepository {
	return &matchRepository{q: tx}
}

const matchColumns = `id, home_team, away_team, tournament, home_odds, draw_odds, away_odds, status, scheduled_at, created_at`

func scanMatch(row pgx.Row) (*entities.Match, error) {
	var match entities.Match
	err := row.Scan(
		&match.ID,
		&match.HomeTeam,
		&match.AwayTeam,
		&match.Tournament,
		&match.Odds.Home,
		&match.Odds.Draw,
		&match.Odds.Away,
		&match.Status,
		&match.ScheduledAt,
		&match.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) Create(ctx context.Context, match *entities.Match) error {
	query := `
		INSERT INTO matches (id, home_team, away_team, tournament, home_odds, draw_odds, away_odds, status, scheduled_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.q.Exec(ctx, query,
		match.ID,
		match.HomeTeam,
		match.AwayTeam,
		match.Tournament,
		match.Odds.Home,
		match.Odds.Draw,
		match.Odds.Away,
		match.Status,
		match.ScheduledAt,
		match.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*entities.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	match, err := scanMatch(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match %s: %w", id, err)
	}
	return match, nil
}

func (r *matchRepository) Update(ctx context.Context, match *entities.Match) error {
	query := `
		UPDATE matches
		SET home_odds = $1, draw_odds = $2, away_odds = $3, status = $4, scheduled_at = $5
		WHERE id = $6`

	result, err := r.q.Exec(ctx, query,
		match.Odds.Home,
		match.Odds.Draw,
		match.Odds.Away,
		match.Status,
		match.ScheduledAt,
		match.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update match %s: %w", match.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match %s not found", match.ID)
	}
	return nil
}

func (r *matchRepository) ListByStatus(ctx context.Context, status entities.MatchStatus) ([]*entities.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE status = $1 ORDER BY created_at`

	rows, err := r.q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []*entities.Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}
	return matches, nil
}

func (r *matchRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.Exec(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match %s not found", id)
	}
	return nil
}
