package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ligabet/domain/entities"
	"ligabet/domain/events"
	"ligabet/domain/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type matchService struct {
	userRepo           interfaces.UserRepository
	teamRepo           interfaces.TeamRepository
	matchRepo          interfaces.MatchRepository
	outcomeRepo        interfaces.OutcomeRepository
	betRepo            interfaces.BetRepository
	balanceHistoryRepo interfaces.BalanceHistoryRepository
	eventPublisher     interfaces.EventPublisher

	odds       *OddsService
	settlement *SettlementService
	simulation *SimulationService
	lookup     *TeamLookupService
}

// NewMatchService creates a new match service
func NewMatchService(
	userRepo interfaces.UserRepository,
	teamRepo interfaces.TeamRepository,
	matchRepo interfaces.MatchRepository,
	outcomeRepo interfaces.OutcomeRepository,
	betRepo interfaces.BetRepository,
	balanceHistoryRepo interfaces.BalanceHistoryRepository,
	eventPublisher interfaces.EventPublisher,
	odds *OddsService,
	simulation *SimulationService,
) interfaces.MatchService {
	return &matchService{
		userRepo:           userRepo,
		teamRepo:           teamRepo,
		matchRepo:          matchRepo,
		outcomeRepo:        outcomeRepo,
		betRepo:            betRepo,
		balanceHistoryRepo: balanceHistoryRepo,
		eventPublisher:     eventPublisher,
		odds:               odds,
		settlement:         NewSettlementService(),
		simulation:         simulation,
		lookup:             NewTeamLookupService(),
	}
}

func (s *matchService) CreateMatch(ctx context.Context, homeQuery, awayQuery string, tournament entities.Tournament, scheduledAt *time.Time) (*entities.Match, error) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	home := s.lookup.FindTeam(teams, homeQuery, "")
	if home == nil {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, homeQuery)
	}
	away := s.lookup.FindTeam(teams, awayQuery, "")
	if away == nil {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, awayQuery)
	}
	if home.FullName() == away.FullName() {
		return nil, errors.New("a team cannot play itself")
	}

	if tournament == "" {
		tournament = home.Tournament
	}

	match := &entities.Match{
		ID:          uuid.New().String(),
		HomeTeam:    home.FullName(),
		AwayTeam:    away.FullName(),
		Tournament:  tournament,
		Odds:        s.odds.MatchOdds(home, away, tournament),
		Status:      entities.MatchStatusUpcoming,
		ScheduledAt: scheduledAt,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	if err := s.eventPublisher.Publish(events.MatchCreatedEvent{
		MatchID:  match.ID,
		HomeTeam: match.HomeTeam,
		AwayTeam: match.AwayTeam,
		HomeOdds: match.Odds.Home,
		DrawOdds: match.Odds.Draw,
		AwayOdds: match.Odds.Away,
	}); err != nil {
		log.WithError(err).Warn("failed to publish match created event")
	}

	return match, nil
}

func (s *matchService) CreateRandomMatch(ctx context.Context) (*entities.Match, error) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	if len(teams) < 2 {
		return nil, errors.New("need at least two teams to generate a match")
	}

	rng := s.simulation.rng
	home := teams[rng.Intn(len(teams))]
	away := teams[rng.Intn(len(teams))]
	for home.FullName() == away.FullName() {
		away = teams[rng.Intn(len(teams))]
	}

	scheduledAt := time.Now().UTC().Add(time.Duration(rng.Float64() * 24 * float64(time.Hour)))

	match := &entities.Match{
		ID:          uuid.New().String(),
		HomeTeam:    home.FullName(),
		AwayTeam:    away.FullName(),
		Tournament:  home.Tournament,
		Odds:        s.odds.MatchOdds(home, away, home.Tournament),
		Status:      entities.MatchStatusUpcoming,
		ScheduledAt: &scheduledAt,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	if err := s.eventPublisher.Publish(events.MatchCreatedEvent{
		MatchID:  match.ID,
		HomeTeam: match.HomeTeam,
		AwayTeam: match.AwayTeam,
		HomeOdds: match.Odds.Home,
		DrawOdds: match.Odds.Draw,
		AwayOdds: match.Odds.Away,
	}); err != nil {
		log.WithError(err).Warn("failed to publish match created event")
	}

	return match, nil
}

func (s *matchService) GetMatch(ctx context.Context, matchID string) (*entities.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if match == nil {
		return nil, entities.ErrMatchNotFound
	}
	return match, nil
}

func (s *matchService) ListUpcoming(ctx context.Context) ([]*entities.Match, error) {
	return s.matchRepo.ListByStatus(ctx, entities.MatchStatusUpcoming)
}

func (s *matchService) ListFinished(ctx context.Context) ([]*entities.Match, error) {
	return s.matchRepo.ListByStatus(ctx, entities.MatchStatusFinished)
}

func (s *matchService) SetOdds(ctx context.Context, matchID string, odds entities.ThreeWayOdds) (*entities.Match, error) {
	if odds.Home < 1.01 || odds.Away < 1.01 || odds.Draw < 1.01 {
		return nil, errors.New("odds must be at least 1.01")
	}

	match, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.IsOpenForBetting() {
		return nil, entities.ErrMatchFinished
	}

	match.Odds = odds
	if err := s.matchRepo.Update(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update odds: %w", err)
	}
	return match, nil
}

func (s *matchService) SimulateMatch(ctx context.Context, matchID string) (*entities.MatchOutcome, error) {
	match, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.IsOpenForBetting() {
		return nil, entities.ErrMatchFinished
	}

	home, away, err := s.matchTeams(ctx, match)
	if err != nil {
		return nil, err
	}

	outcome := s.simulation.Simulate(home, away)
	outcome.MatchID = match.ID
	outcome.RecordedAt = time.Now().UTC()

	if err := s.finalize(ctx, match, outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (s *matchService) FinalizeMatch(ctx context.Context, matchID string, outcome *entities.MatchOutcome) error {
	match, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}

	if err := s.settlement.ValidateFinalization(match, outcome); err != nil {
		return err
	}

	outcome.MatchID = match.ID
	outcome.Manual = true
	if outcome.RecordedAt.IsZero() {
		outcome.RecordedAt = time.Now().UTC()
	}

	return s.finalize(ctx, match, outcome)
}

func (s *matchService) GetOutcome(ctx context.Context, matchID string) (*entities.MatchOutcome, error) {
	outcome, err := s.outcomeRepo.GetByMatchID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get outcome: %w", err)
	}
	return outcome, nil
}

// finalize is the single path from an open match to a finished one:
// it records the outcome, flips the status and settles every pending
// bet.
func (s *matchService) finalize(ctx context.Context, match *entities.Match, outcome *entities.MatchOutcome) error {
	if err := match.Finish(); err != nil {
		return err
	}
	if err := s.matchRepo.Update(ctx, match); err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}
	if err := s.outcomeRepo.Record(ctx, outcome); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	bets, err := s.betRepo.GetPendingByMatch(ctx, match.ID)
	if err != nil {
		return fmt.Errorf("failed to load pending bets: %w", err)
	}

	batch := s.settlement.SettleAll(outcome, bets, time.Now().UTC())
	for _, settlement := range batch.Settlements {
		if err := s.applySettlement(ctx, settlement); err != nil {
			return err
		}
	}

	if err := s.eventPublisher.Publish(events.MatchFinalizedEvent{
		MatchID:     match.ID,
		HomeTeam:    match.HomeTeam,
		AwayTeam:    match.AwayTeam,
		Result:      outcome.Result,
		Score:       outcome.Score(),
		Manual:      outcome.Manual,
		BetsSettled: len(batch.Settlements),
		BetsWon:     batch.BetsWon,
		TotalPaid:   batch.TotalPaid,
	}); err != nil {
		log.WithError(err).Warn("failed to publish match finalized event")
	}

	return nil
}

// applySettlement persists one settlement decision: bet status, user
// counters and, for winners, the payout credit.
func (s *matchService) applySettlement(ctx context.Context, settlement BetSettlement) error {
	bet := settlement.Bet

	if err := s.betRepo.Update(ctx, bet); err != nil {
		return fmt.Errorf("failed to update bet %s: %w", bet.ID, err)
	}
	if err := s.userRepo.RecordBetResult(ctx, bet.DiscordID, settlement.Won, settlement.Payout); err != nil {
		return fmt.Errorf("failed to record bet result: %w", err)
	}

	if !settlement.Won {
		return nil
	}

	user, err := s.userRepo.GetByDiscordID(ctx, bet.DiscordID)
	if err != nil {
		return fmt.Errorf("failed to get user %d: %w", bet.DiscordID, err)
	}
	if user == nil {
		return fmt.Errorf("bet %s references missing user %d", bet.ID, bet.DiscordID)
	}

	newBalance := user.Balance + settlement.Payout
	if err := s.userRepo.UpdateBalance(ctx, user.DiscordID, newBalance); err != nil {
		return fmt.Errorf("failed to credit payout: %w", err)
	}

	history := &entities.BalanceHistory{
		DiscordID:       user.DiscordID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    newBalance,
		ChangeAmount:    settlement.Payout,
		TransactionType: entities.TransactionTypeBetWin,
		TransactionMetadata: map[string]any{
			"bet_id":   bet.ID,
			"match_id": bet.MatchID,
		},
	}
	if err := s.balanceHistoryRepo.Record(ctx, history); err != nil {
		return fmt.Errorf("failed to record payout history: %w", err)
	}

	if err := s.eventPublisher.Publish(events.BalanceChangeEvent{
		UserID:          user.DiscordID,
		OldBalance:      user.Balance,
		NewBalance:      newBalance,
		TransactionType: entities.TransactionTypeBetWin,
		ChangeAmount:    settlement.Payout,
	}); err != nil {
		log.WithError(err).Warn("failed to publish balance change event")
	}

	return nil
}

func (s *matchService) DeleteMatch(ctx context.Context, matchID string) (int, error) {
	match, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return 0, err
	}
	if !match.IsOpenForBetting() {
		return 0, entities.ErrMatchFinished
	}

	bets, err := s.betRepo.GetPendingByMatch(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending bets: %w", err)
	}

	for _, bet := range bets {
		if err := s.refundBet(ctx, bet); err != nil {
			return 0, err
		}
	}

	if _, err := s.betRepo.DeleteByMatch(ctx, matchID); err != nil {
		return 0, fmt.Errorf("failed to delete bets: %w", err)
	}
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return 0, fmt.Errorf("failed to delete match: %w", err)
	}

	return len(bets), nil
}

func (s *matchService) ClearUpcoming(ctx context.Context) (int, int, error) {
	matches, err := s.ListUpcoming(ctx)
	if err != nil {
		return 0, 0, err
	}

	refunded := 0
	for _, match := range matches {
		n, err := s.DeleteMatch(ctx, match.ID)
		if err != nil {
			return 0, 0, err
		}
		refunded += n
	}
	return len(matches), refunded, nil
}

func (s *matchService) SimulateDue(ctx context.Context, now time.Time) (int, error) {
	matches, err := s.ListUpcoming(ctx)
	if err != nil {
		return 0, err
	}

	finished := 0
	for _, match := range matches {
		if match.ScheduledAt == nil || match.ScheduledAt.After(now) {
			continue
		}
		if _, err := s.SimulateMatch(ctx, match.ID); err != nil {
			log.WithError(err).WithField("match_id", match.ID).Error("failed to simulate due match")
			continue
		}
		finished++
	}
	return finished, nil
}

// refundBet returns the stake of a pending bet and rolls back the
// placed-bet counter.
func (s *matchService) refundBet(ctx context.Context, bet *entities.Bet) error {
	user, err := s.userRepo.GetByDiscordID(ctx, bet.DiscordID)
	if err != nil {
		return fmt.Errorf("failed to get user %d: %w", bet.DiscordID, err)
	}
	if user == nil {
		return fmt.Errorf("bet %s references missing user %d", bet.ID, bet.DiscordID)
	}

	newBalance := user.Balance + bet.Amount
	if err := s.userRepo.UpdateBalance(ctx, user.DiscordID, newBalance); err != nil {
		return fmt.Errorf("failed to refund stake: %w", err)
	}

	history := &entities.BalanceHistory{
		DiscordID:       user.DiscordID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    newBalance,
		ChangeAmount:    bet.Amount,
		TransactionType: entities.TransactionTypeBetRefund,
		TransactionMetadata: map[string]any{
			"bet_id":   bet.ID,
			"match_id": bet.MatchID,
		},
	}
	if err := s.balanceHistoryRepo.Record(ctx, history); err != nil {
		return fmt.Errorf("failed to record refund history: %w", err)
	}

	if err := s.userRepo.IncrementBetCounters(ctx, user.DiscordID, -1); err != nil {
		return fmt.Errorf("failed to roll back bet counter: %w", err)
	}

	return nil
}

// matchTeams loads both teams of a match, failing when either is
// missing since simulation needs real standings.
func (s *matchService) matchTeams(ctx context.Context, match *entities.Match) (*entities.Team, *entities.Team, error) {
	homeName, homeLeague := entities.ParseFullName(match.HomeTeam)
	awayName, awayLeague := entities.ParseFullName(match.AwayTeam)

	home, err := s.teamRepo.GetByName(ctx, homeName, homeLeague)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load home team: %w", err)
	}
	away, err := s.teamRepo.GetByName(ctx, awayName, awayLeague)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load away team: %w", err)
	}
	if home == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrTeamNotFound, match.HomeTeam)
	}
	if away == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrTeamNotFound, match.AwayTeam)
	}
	return home, away, nil
}
