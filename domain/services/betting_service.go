package services

import (
	"context"
	"fmt"
	"time"

	"ligabet/domain/entities"
	"ligabet/domain/events"
	"ligabet/domain/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type bettingService struct {
	userRepo           interfaces.UserRepository
	teamRepo           interfaces.TeamRepository
	matchRepo          interfaces.MatchRepository
	betRepo            interfaces.BetRepository
	balanceHistoryRepo interfaces.BalanceHistoryRepository
	settingsRepo       interfaces.SettingsRepository
	eventPublisher     interfaces.EventPublisher

	users   interfaces.UserService
	pricing *PricingService
}

// NewBettingService creates a new betting service
func NewBettingService(
	userRepo interfaces.UserRepository,
	teamRepo interfaces.TeamRepository,
	matchRepo interfaces.MatchRepository,
	betRepo interfaces.BetRepository,
	balanceHistoryRepo interfaces.BalanceHistoryRepository,
	settingsRepo interfaces.SettingsRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.BettingService {
	return &bettingService{
		userRepo:           userRepo,
		teamRepo:           teamRepo,
		matchRepo:          matchRepo,
		betRepo:            betRepo,
		balanceHistoryRepo: balanceHistoryRepo,
		settingsRepo:       settingsRepo,
		eventPublisher:     eventPublisher,
		users:              NewUserService(userRepo, balanceHistoryRepo, eventPublisher),
		pricing:            NewPricingService(),
	}
}

func (s *bettingService) PlaceSimpleBet(ctx context.Context, discordID int64, username string, matchID string, pick entities.ResultTag, amount int64) (*entities.Bet, error) {
	if !pick.Valid() {
		return nil, fmt.Errorf("invalid pick, must be home, draw or away")
	}

	user, match, err := s.prepare(ctx, discordID, username, matchID, amount)
	if err != nil {
		return nil, err
	}

	home, _ := entities.ParseFullName(match.HomeTeam)
	away, _ := entities.ParseFullName(match.AwayTeam)
	var description string
	switch pick {
	case entities.ResultHome:
		description = fmt.Sprintf("%s wins", home)
	case entities.ResultAway:
		description = fmt.Sprintf("%s wins", away)
	default:
		description = "Draw"
	}

	bet := &entities.Bet{
		Type:        entities.BetTypeSimple,
		Pick:        &pick,
		Odds:        match.Odds.ForResult(pick),
		Description: description,
	}
	return s.place(ctx, user, match, bet, amount)
}

func (s *bettingService) PlaceExactScoreBet(ctx context.Context, discordID int64, username string, matchID string, home, away int, amount int64) (*entities.Bet, error) {
	if home < 0 || away < 0 {
		return nil, fmt.Errorf("scores must be zero or greater")
	}

	user, match, err := s.prepare(ctx, discordID, username, matchID, amount)
	if err != nil {
		return nil, err
	}

	homeTeam, awayTeam := s.matchTeams(ctx, match)
	bet := &entities.Bet{
		Type:        entities.BetTypeExactScore,
		ExactHome:   &home,
		ExactAway:   &away,
		Odds:        s.pricing.ExactScoreOdds(homeTeam, awayTeam, home, away),
		Description: fmt.Sprintf("Exact score %d-%d", home, away),
	}
	return s.place(ctx, user, match, bet, amount)
}

func (s *bettingService) PlaceSpecialBet(ctx context.Context, discordID int64, username string, matchID string, market entities.MarketType, amount int64) (*entities.Bet, error) {
	if !market.Valid() {
		return nil, ErrUnknownMarket
	}

	user, match, err := s.prepare(ctx, discordID, username, matchID, amount)
	if err != nil {
		return nil, err
	}

	homeTeam, awayTeam := s.matchTeams(ctx, match)
	homeName, _ := entities.ParseFullName(match.HomeTeam)
	awayName, _ := entities.ParseFullName(match.AwayTeam)

	bet := &entities.Bet{
		Type:        entities.BetTypeSpecial,
		Market:      &market,
		Odds:        s.pricing.SpecialOdds(homeTeam, awayTeam, market),
		Description: market.Label(homeName, awayName),
	}
	return s.place(ctx, user, match, bet, amount)
}

func (s *bettingService) PlaceComboBet(ctx context.Context, discordID int64, username string, matchID string, markets []entities.MarketType, amount int64) (*entities.Bet, error) {
	user, match, err := s.prepare(ctx, discordID, username, matchID, amount)
	if err != nil {
		return nil, err
	}

	homeTeam, awayTeam := s.matchTeams(ctx, match)
	homeName, _ := entities.ParseFullName(match.HomeTeam)
	awayName, _ := entities.ParseFullName(match.AwayTeam)

	quote, err := s.pricing.ComposeCombo(homeTeam, awayTeam, homeName, awayName, markets)
	if err != nil {
		return nil, err
	}

	bet := &entities.Bet{
		Type:        entities.BetTypeCombo,
		Legs:        quote.Legs,
		Odds:        quote.Odds,
		Description: quote.Description,
	}
	return s.place(ctx, user, match, bet, amount)
}

func (s *bettingService) GetUserBets(ctx context.Context, discordID int64, limit int) ([]*entities.Bet, error) {
	bets, err := s.betRepo.GetByUser(ctx, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bets: %w", err)
	}
	return bets, nil
}

// prepare runs the checks shared by all bet placements: betting not
// paused, match open, user exists and can afford the stake.
func (s *bettingService) prepare(ctx context.Context, discordID int64, username string, matchID string, amount int64) (*entities.User, *entities.Match, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.BettingPaused {
		return nil, nil, ErrBettingPaused
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get match: %w", err)
	}
	if match == nil {
		return nil, nil, entities.ErrMatchNotFound
	}
	if !match.IsOpenForBetting() {
		return nil, nil, entities.ErrMatchFinished
	}

	user, err := s.users.GetOrCreateUser(ctx, discordID, username)
	if err != nil {
		return nil, nil, err
	}
	if err := user.ValidateAmount(amount); err != nil {
		return nil, nil, err
	}

	return user, match, nil
}

// matchTeams loads both team records for pricing. Unknown teams come
// back nil, which the pricing services tolerate.
func (s *bettingService) matchTeams(ctx context.Context, match *entities.Match) (*entities.Team, *entities.Team) {
	homeName, homeLeague := entities.ParseFullName(match.HomeTeam)
	awayName, awayLeague := entities.ParseFullName(match.AwayTeam)

	home, err := s.teamRepo.GetByName(ctx, homeName, homeLeague)
	if err != nil {
		log.WithError(err).WithField("team", match.HomeTeam).Warn("failed to load home team for pricing")
	}
	away, err := s.teamRepo.GetByName(ctx, awayName, awayLeague)
	if err != nil {
		log.WithError(err).WithField("team", match.AwayTeam).Warn("failed to load away team for pricing")
	}
	return home, away
}

// place debits the stake and persists the bet
func (s *bettingService) place(ctx context.Context, user *entities.User, match *entities.Match, bet *entities.Bet, amount int64) (*entities.Bet, error) {
	bet.ID = uuid.New().String()
	bet.DiscordID = user.DiscordID
	bet.MatchID = match.ID
	bet.Amount = amount
	bet.Status = entities.BetStatusPending
	bet.PlacedAt = time.Now().UTC()

	if err := bet.Validate(); err != nil {
		return nil, err
	}

	newBalance := user.Balance - amount
	if err := s.userRepo.UpdateBalance(ctx, user.DiscordID, newBalance); err != nil {
		return nil, fmt.Errorf("failed to debit stake: %w", err)
	}

	history := &entities.BalanceHistory{
		DiscordID:       user.DiscordID,
		BalanceBefore:   user.Balance,
		BalanceAfter:    newBalance,
		ChangeAmount:    -amount,
		TransactionType: entities.TransactionTypeBetPlaced,
		TransactionMetadata: map[string]any{
			"bet_id":   bet.ID,
			"match_id": match.ID,
		},
	}
	if err := s.balanceHistoryRepo.Record(ctx, history); err != nil {
		return nil, fmt.Errorf("failed to record balance history: %w", err)
	}

	if err := s.userRepo.IncrementBetCounters(ctx, user.DiscordID, 1); err != nil {
		return nil, fmt.Errorf("failed to update bet counters: %w", err)
	}

	if err := s.betRepo.Create(ctx, bet); err != nil {
		return nil, fmt.Errorf("failed to create bet: %w", err)
	}

	user.Balance = newBalance
	user.TotalBets++

	if err := s.eventPublisher.Publish(events.BetPlacedEvent{
		UserID:  user.DiscordID,
		BetID:   bet.ID,
		MatchID: match.ID,
		Amount:  amount,
		Odds:    bet.Odds,
	}); err != nil {
		log.WithError(err).Warn("failed to publish bet placed event")
	}

	return bet, nil
}
