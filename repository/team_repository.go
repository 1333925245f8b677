package repository

import (
	"context"
	"fmt"

	"ligabet/database"
	"ligabet/domain/entities"
	"ligabet/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

type teamRepository struct {
	q Queryable
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *database.DB) interfaces.TeamRepository {
	return &teamRepository{q: db.Pool}
}

func newTeamRepository(tx Queryable) interfaces.TeamRepository {
	return &teamRepository{q: tx}
}

const teamColumns = `name, league, tournament, position, form, wins, draws, losses, goals_for, goals_against, updated_at`

func scanTeam(row pgx.Row) (*entities.Team, error) {
	var team entities.Team
	err := row.Scan(
		&team.Name,
		&team.League,
		&team.Tournament,
		&team.Position,
		&team.Form,
		&team.Wins,
		&team.Draws,
		&team.Losses,
		&team.GoalsFor,
		&team.GoalsAgainst,
		&team.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) Upsert(ctx context.Context, team *entities.Team) error {
	query := `
		INSERT INTO teams (name, league, tournament, position, form, wins, draws, losses, goals_for, goals_against)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (name, league) DO UPDATE SET
			tournament = EXCLUDED.tournament,
			position = EXCLUDED.position,
			form = EXCLUDED.form,
			wins = EXCLUDED.wins,
			draws = EXCLUDED.draws,
			losses = EXCLUDED.losses,
			goals_for = EXCLUDED.goals_for,
			goals_against = EXCLUDED.goals_against,
			updated_at = NOW()
		RETURNING updated_at`

	err := r.q.QueryRow(ctx, query,
		team.Name,
		team.League,
		team.Tournament,
		team.Position,
		team.Form,
		team.Wins,
		team.Draws,
		team.Losses,
		team.GoalsFor,
		team.GoalsAgainst,
	).Scan(&team.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert team %s: %w", team.FullName(), err)
	}
	return nil
}

func (r *teamRepository) GetByName(ctx context.Context, name string, league entities.League) (*entities.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE name = $1 AND league = $2`

	team, err := scanTeam(r.q.QueryRow(ctx, query, name, league))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team %s (%s): %w", name, league, err)
	}
	return team, nil
}

func (r *teamRepository) GetAll(ctx context.Context) ([]*entities.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY league, position, name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	defer rows.Close()

	return collectTeams(rows)
}

func (r *teamRepository) GetByLeague(ctx context.Context, league entities.League) ([]*entities.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE league = $1 ORDER BY position, name`

	rows, err := r.q.Query(ctx, query, league)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s teams: %w", league, err)
	}
	defer rows.Close()

	return collectTeams(rows)
}

func collectTeams(rows pgx.Rows) ([]*entities.Team, error) {
	var teams []*entities.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}
	return teams, nil
}
