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

type outcomeRepository struct {
	q Queryable
}

// NewOutcomeRepository creates a new match outcome repository
func NewOutcomeRepository(db *database.DB) interfaces.OutcomeRepository {
	return &outcomeRepository{q: db.Pool}
}

func newOutcomeRepository(tx Queryable) interfaces.OutcomeRepository {
	return &outcomeRepository{q: tx}
}

func (r *outcomeRepository) Record(ctx context.Context, outcome *entities.MatchOutcome) error {
	stats, err := json.Marshal(outcome.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal match stats: %w", err)
	}

	query := `
		INSERT INTO match_results (match_id, result, home_goals, away_goals, stats, manual, set_by, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.q.Exec(ctx, query,
		outcome.MatchID,
		outcome.Result,
		outcome.HomeGoals,
		outcome.AwayGoals,
		stats,
		outcome.Manual,
		outcome.SetBy,
		outcome.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record outcome for match %s: %w", outcome.MatchID, err)
	}
	return nil
}

func (r *outcomeRepository) GetByMatchID(ctx context.Context, matchID string) (*entities.MatchOutcome, error) {
	query := `
		SELECT match_id, result, home_goals, away_goals, stats, manual, set_by, recorded_at
		FROM match_results
		WHERE match_id = $1`

	var outcome entities.MatchOutcome
	var stats []byte
	err := r.q.QueryRow(ctx, query, matchID).Scan(
		&outcome.MatchID,
		&outcome.Result,
		&outcome.HomeGoals,
		&outcome.AwayGoals,
		&stats,
		&outcome.Manual,
		&outcome.SetBy,
		&outcome.RecordedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get outcome for match %s: %w", matchID, err)
	}

	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &outcome.Stats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match stats: %w", err)
		}
	}
	return &outcome, nil
}
