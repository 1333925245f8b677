package betting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ligabet/bot/common"
	"ligabet/domain/entities"
	"ligabet/domain/interfaces"
	"ligabet/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// commandOptions indexes interaction options by name
func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range i.ApplicationCommandData().Options {
		out[opt.Name] = opt
	}
	return out
}

func newBettingService(uow interfaces.UnitOfWork) interfaces.BettingService {
	return services.NewBettingService(
		uow.UserRepository(),
		uow.TeamRepository(),
		uow.MatchRepository(),
		uow.BetRepository(),
		uow.BalanceHistoryRepository(),
		uow.SettingsRepository(),
		uow.EventBus(),
	)
}

// placeBet runs one bet placement inside a unit of work and responds
// with the receipt embed
func (f *Feature) placeBet(s *discordgo.Session, i *discordgo.InteractionCreate,
	place func(ctx context.Context, svc interfaces.BettingService, discordID int64, username string) (*entities.Bet, error)) {
	ctx := context.Background()

	user := common.InteractionUser(i)
	discordID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	bet, err := place(ctx, newBettingService(uow), discordID, user.Username)
	if err != nil {
		respondBetError(s, i, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing bet for %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondWithEmbed(s, i, betPlacedEmbed(user.Username, bet))
}

// respondBetError translates service errors into user messages
func respondBetError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	var constraint *services.ComboConstraintError
	switch {
	case errors.Is(err, entities.ErrInsufficientBalance):
		common.RespondWithError(s, i, "You don't have enough coins for that bet.")
	case errors.Is(err, services.ErrBettingPaused):
		common.RespondWithError(s, i, "Betting is currently paused.")
	case errors.Is(err, entities.ErrMatchNotFound):
		common.RespondWithError(s, i, "No open match with that ID. Use /matches to list them.")
	case errors.Is(err, entities.ErrMatchFinished):
		common.RespondWithError(s, i, "That match has already finished.")
	case errors.Is(err, services.ErrUnknownMarket):
		common.RespondWithError(s, i, "Unknown market. Use /markets to list the valid keys.")
	case errors.Is(err, services.ErrEmptyCombo):
		common.RespondWithError(s, i, "A combo bet needs at least one market.")
	case errors.Is(err, services.ErrDuplicateLeg):
		common.RespondWithError(s, i, "A combo bet can't list the same market twice.")
	case errors.As(err, &constraint):
		common.RespondWithError(s, i, constraint.Error())
	default:
		log.Errorf("Error placing bet: %v", err)
		common.RespondWithError(s, i, fmt.Sprintf("Bet failed: %v", err))
	}
}

func (f *Feature) handleSimpleBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := commandOptions(i)
	matchID := opts["match"].StringValue()
	pick := entities.ResultTag(opts["pick"].StringValue())
	amount := opts["amount"].IntValue()

	f.placeBet(s, i, func(ctx context.Context, svc interfaces.BettingService, discordID int64, username string) (*entities.Bet, error) {
		return svc.PlaceSimpleBet(ctx, discordID, username, matchID, pick, amount)
	})
}

func (f *Feature) handleExactScoreBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := commandOptions(i)
	matchID := opts["match"].StringValue()
	home := int(opts["home"].IntValue())
	away := int(opts["away"].IntValue())
	amount := opts["amount"].IntValue()

	f.placeBet(s, i, func(ctx context.Context, svc interfaces.BettingService, discordID int64, username string) (*entities.Bet, error) {
		return svc.PlaceExactScoreBet(ctx, discordID, username, matchID, home, away, amount)
	})
}

func (f *Feature) handleSpecialBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := commandOptions(i)
	matchID := opts["match"].StringValue()
	market := entities.MarketType(strings.TrimSpace(opts["market"].StringValue()))
	amount := opts["amount"].IntValue()

	f.placeBet(s, i, func(ctx context.Context, svc interfaces.BettingService, discordID int64, username string) (*entities.Bet, error) {
		return svc.PlaceSpecialBet(ctx, discordID, username, matchID, market, amount)
	})
}

func (f *Feature) handleComboBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := commandOptions(i)
	matchID := opts["match"].StringValue()
	amount := opts["amount"].IntValue()

	var markets []entities.MarketType
	for _, part := range strings.Split(opts["markets"].StringValue(), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			markets = append(markets, entities.MarketType(part))
		}
	}

	f.placeBet(s, i, func(ctx context.Context, svc interfaces.BettingService, discordID int64, username string) (*entities.Bet, error) {
		return svc.PlaceComboBet(ctx, discordID, username, matchID, markets, amount)
	})
}

func (f *Feature) handleMyBets(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	bets, err := newBettingService(uow).GetUserBets(ctx, discordID, 10)
	if err != nil {
		log.Errorf("Error loading bets for %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to load your bets. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if len(bets) == 0 {
		common.RespondWithContent(s, i, "You have no bets yet. Use /bet to place one.")
		return
	}

	common.RespondWithEmbed(s, i, myBetsEmbed(common.InteractionUser(i).Username, bets))
}

func (f *Feature) handleMarkets(s *discordgo.Session, i *discordgo.InteractionCreate) {
	common.RespondWithEmbed(s, i, marketsEmbed())
}
