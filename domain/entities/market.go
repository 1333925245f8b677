package entities

import (
	"fmt"
	"strings"
)

// MarketType identifies a special (prop) betting market
type MarketType string

const (
	MarketBothTeamsScore MarketType = "both_teams_score"

	MarketTotalGoalsOver25  MarketType = "total_goals_over_2_5"
	MarketTotalGoalsUnder25 MarketType = "total_goals_under_2_5"
	MarketHomeGoalsOver15   MarketType = "home_goals_over_1_5"
	MarketAwayGoalsOver15   MarketType = "away_goals_over_1_5"

	MarketTotalCornersOver15  MarketType = "total_corners_over_1_5"
	MarketTotalCornersOver25  MarketType = "total_corners_over_2_5"
	MarketTotalCornersOver35  MarketType = "total_corners_over_3_5"
	MarketTotalCornersOver45  MarketType = "total_corners_over_4_5"
	MarketTotalCornersOver55  MarketType = "total_corners_over_5_5"
	MarketTotalCornersOver65  MarketType = "total_corners_over_6_5"
	MarketTotalCornersOver75  MarketType = "total_corners_over_7_5"
	MarketTotalCornersOver85  MarketType = "total_corners_over_8_5"
	MarketTotalCornersUnder15 MarketType = "total_corners_under_1_5"
	MarketTotalCornersUnder25 MarketType = "total_corners_under_2_5"
	MarketTotalCornersUnder35 MarketType = "total_corners_under_3_5"

	MarketCornerGoal      MarketType = "corner_goal"
	MarketFreeKickGoal    MarketType = "free_kick_goal"
	MarketBicycleKickGoal MarketType = "bicycle_kick_goal"
	MarketHeaderGoal      MarketType = "header_goal"
	MarketStrikerGoal     MarketType = "striker_goal"
	MarketMidfielderGoal  MarketType = "midfielder_goal"
	MarketDefenderGoal    MarketType = "defender_goal"
	MarketGoalkeeperGoal  MarketType = "goalkeeper_goal"

	MarketTotalYellowCardsOver25 MarketType = "total_yellow_cards_over_2_5"
	MarketTotalYellowCardsOver35 MarketType = "total_yellow_cards_over_3_5"
	MarketTotalYellowCardsOver45 MarketType = "total_yellow_cards_over_4_5"
	MarketTotalRedCardsYes       MarketType = "total_red_cards_yes"
	MarketTotalRedCardsNo        MarketType = "total_red_cards_no"
	MarketHomeYellowCardsOver15  MarketType = "home_yellow_cards_over_1_5"
	MarketAwayYellowCardsOver15  MarketType = "away_yellow_cards_over_1_5"
	MarketHomeRedCardYes         MarketType = "home_red_card_yes"
	MarketAwayRedCardYes         MarketType = "away_red_card_yes"
)

// MarketGroup is a mutual-exclusion group for combo bets. At most one
// market per group may appear in a combination.
type MarketGroup string

const (
	MarketGroupNone        MarketGroup = ""
	MarketGroupGoals       MarketGroup = "goals"
	MarketGroupCorners     MarketGroup = "corners"
	MarketGroupYellowCards MarketGroup = "yellow cards"
	MarketGroupRedCards    MarketGroup = "red cards"
)

// MarketSpec describes everything the engine needs to know about a
// market: its base price, display label, combo group, pricing flags and
// settlement predicate. %s in the label is replaced with a team name.
type MarketSpec struct {
	BaseOdds float64
	Label    string
	Group    MarketGroup

	// cardPriced markets get the card-frequency position adjustment,
	// methodPriced markets the scoring-method one.
	cardPriced   bool
	methodPriced bool

	Settle func(o *MatchOutcome) bool
}

var marketSpecs = map[MarketType]MarketSpec{
	MarketBothTeamsScore: {
		BaseOdds: 1.10, Label: "Both teams score",
		Settle: func(o *MatchOutcome) bool { return o.HomeGoals > 0 && o.AwayGoals > 0 },
	},

	MarketTotalGoalsOver25: {
		BaseOdds: 1.35, Label: "Over 2.5 goals", Group: MarketGroupGoals,
		Settle: func(o *MatchOutcome) bool { return o.TotalGoals() > 2 },
	},
	MarketTotalGoalsUnder25: {
		BaseOdds: 2.25, Label: "Under 2.5 goals", Group: MarketGroupGoals,
		Settle: func(o *MatchOutcome) bool { return o.TotalGoals() < 3 },
	},
	MarketHomeGoalsOver15: {
		BaseOdds: 1.25, Label: "Over 1.5 goals %s", Group: MarketGroupGoals,
		Settle: func(o *MatchOutcome) bool { return o.HomeGoals > 1 },
	},
	MarketAwayGoalsOver15: {
		BaseOdds: 1.25, Label: "Over 1.5 goals %s", Group: MarketGroupGoals,
		Settle: func(o *MatchOutcome) bool { return o.AwayGoals > 1 },
	},

	MarketTotalCornersOver15: {
		BaseOdds: 1.05, Label: "Over 1.5 corners", Group: MarketGroupCorners,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalCorners > 1 },
	},
	MarketTotalCornersOver25: {
		BaseOdds: 1.15, Label: "Over 2.5 corners", Group: MarketGroupCorners,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalCorners > 2 },
	},
	MarketTotalCornersOver35: {
		BaseOdds: 1.25, Label: "Over 3.5 corners", Group: MarketGroupCorners,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalCorners > 3 },
	},
	MarketTotalCornersOver45: {
		BaseOdds: 1.40, Label: "Over 4.5 corners", Group: MarketGroupCorners,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalCorners > 4 },
	},
	MarketTotalCornersOver55: {
		BaseOdds: 1.60, Label: "Over 5.5 corners", Group: MarketGroupCorners,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalCorners > 5 },
	},
	MarketTotalCornersOver65: {
		BaseOdds: 1.90, Label: "Over 6.5 corners", Group: MarketGroupCorners,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalCorners > 6 },
	},
	MarketTotalCornersOver75: {
		BaseOdds: 2.30, Label: "Over 7.5 corners", Group: MarketGroupCorners,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalCorners > 7 },
	},
	MarketTotalCornersOver85: {
		BaseOdds: 2.80, Label: "Over 8.5 corners", Group: MarketGroupCorners,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalCorners > 8 },
	},
	MarketTotalCornersUnder15: {
		BaseOdds: 8.00, Label: "Under 1.5 corners", Group: MarketGroupCorners,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalCorners < 2 },
	},
	MarketTotalCornersUnder25: {
		BaseOdds: 4.50, Label: "Under 2.5 corners", Group: MarketGroupCorners,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalCorners < 3 },
	},
	MarketTotalCornersUnder35: {
		BaseOdds: 3.00, Label: "Under 3.5 corners", Group: MarketGroupCorners,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalCorners < 4 },
	},

	MarketCornerGoal: {
		BaseOdds: 8.5, Label: "Corner kick goal", methodPriced: true,
		Settle: func(o *MatchOutcome) bool { return o.Stats.CornerGoal },
	},
	MarketFreeKickGoal: {
		BaseOdds: 6.0, Label: "Free kick goal", methodPriced: true,
		Settle: func(o *MatchOutcome) bool { return o.Stats.FreeKickGoal },
	},
	MarketBicycleKickGoal: {
		BaseOdds: 35.0, Label: "Bicycle kick goal",
		Settle: func(o *MatchOutcome) bool { return o.Stats.BicycleKickGoal },
	},
	MarketHeaderGoal: {
		BaseOdds: 1.8, Label: "Header goal", methodPriced: true,
		Settle: func(o *MatchOutcome) bool { return o.Stats.HeaderGoal },
	},
	MarketStrikerGoal: {
		BaseOdds: 1.5, Label: "Striker scores",
		Settle: func(o *MatchOutcome) bool { return o.Stats.StrikerGoal },
	},
	MarketMidfielderGoal: {
		BaseOdds: 2.2, Label: "Midfielder scores",
		Settle: func(o *MatchOutcome) bool { return o.Stats.MidfielderGoal },
	},
	MarketDefenderGoal: {
		BaseOdds: 4.5, Label: "Defender scores",
		Settle: func(o *MatchOutcome) bool { return o.Stats.DefenderGoal },
	},
	MarketGoalkeeperGoal: {
		BaseOdds: 30.0, Label: "Goalkeeper scores",
		Settle: func(o *MatchOutcome) bool { return o.Stats.GoalkeeperGoal },
	},

	MarketTotalYellowCardsOver25: {
		BaseOdds: 1.50, Label: "Over 2.5 total yellow cards", Group: MarketGroupYellowCards, cardPriced: true,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalYellowCards > 2 },
	},
	MarketTotalYellowCardsOver35: {
		BaseOdds: 2.00, Label: "Over 3.5 total yellow cards", Group: MarketGroupYellowCards, cardPriced: true,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalYellowCards > 3 },
	},
	MarketTotalYellowCardsOver45: {
		BaseOdds: 2.70, Label: "Over 4.5 total yellow cards", Group: MarketGroupYellowCards, cardPriced: true,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalYellowCards > 4 },
	},
	MarketTotalRedCardsYes: {
		BaseOdds: 3.50, Label: "A red card is shown", Group: MarketGroupRedCards, cardPriced: true,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalRedCards > 0 },
	},
	MarketTotalRedCardsNo: {
		BaseOdds: 1.20, Label: "No red card is shown", Group: MarketGroupRedCards, cardPriced: true,
		Settle: func(o *MatchOutcome) bool { return o.Stats.TotalRedCards == 0 },
	},
	MarketHomeYellowCardsOver15: {
		BaseOdds: 1.80, Label: "Over 1.5 yellow cards %s", Group: MarketGroupYellowCards, cardPriced: true,
		Settle: func(o *MatchOutcome) bool { return o.Stats.HomeYellowCards > 1 },
	},
	MarketAwayYellowCardsOver15: {
		BaseOdds: 1.80, Label: "Over 1.5 yellow cards %s", Group: MarketGroupYellowCards, cardPriced: true,
		Settle: func(o *MatchOutcome) bool { return o.Stats.AwayYellowCards > 1 },
	},
	MarketHomeRedCardYes: {
		BaseOdds: 5.00, Label: "Red card for %s", Group: MarketGroupRedCards,
		Settle: func(o *MatchOutcome) bool { return o.Stats.HomeRedCard },
	},
	MarketAwayRedCardYes: {
		BaseOdds: 5.00, Label: "Red card for %s", Group: MarketGroupRedCards,
		Settle: func(o *MatchOutcome) bool { return o.Stats.AwayRedCard },
	},
}

// marketOrder fixes the listing order for menus and embeds
var marketOrder = []MarketType{
	MarketBothTeamsScore,
	MarketTotalGoalsOver25, MarketTotalGoalsUnder25,
	MarketHomeGoalsOver15, MarketAwayGoalsOver15,
	MarketTotalCornersOver15, MarketTotalCornersOver25, MarketTotalCornersOver35,
	MarketTotalCornersOver45, MarketTotalCornersOver55, MarketTotalCornersOver65,
	MarketTotalCornersOver75, MarketTotalCornersOver85,
	MarketTotalCornersUnder15, MarketTotalCornersUnder25, MarketTotalCornersUnder35,
	MarketCornerGoal, MarketFreeKickGoal, MarketBicycleKickGoal, MarketHeaderGoal,
	MarketStrikerGoal, MarketMidfielderGoal, MarketDefenderGoal, MarketGoalkeeperGoal,
	MarketTotalYellowCardsOver25, MarketTotalYellowCardsOver35, MarketTotalYellowCardsOver45,
	MarketTotalRedCardsYes, MarketTotalRedCardsNo,
	MarketHomeYellowCardsOver15, MarketAwayYellowCardsOver15,
	MarketHomeRedCardYes, MarketAwayRedCardYes,
}

// AllMarkets returns every known market type in display order
func AllMarkets() []MarketType {
	out := make([]MarketType, len(marketOrder))
	copy(out, marketOrder)
	return out
}

// Spec returns the market definition, or false for an unknown market
func (mt MarketType) Spec() (MarketSpec, bool) {
	spec, ok := marketSpecs[mt]
	return spec, ok
}

// Valid returns true for a recognized market type
func (mt MarketType) Valid() bool {
	_, ok := marketSpecs[mt]
	return ok
}

// Group returns the mutual-exclusion group, MarketGroupNone for
// freely combinable markets.
func (mt MarketType) Group() MarketGroup {
	return marketSpecs[mt].Group
}

// IsCardPriced reports whether the card-frequency pricing adjustment
// applies to this market.
func (mt MarketType) IsCardPriced() bool {
	return marketSpecs[mt].cardPriced
}

// IsMethodPriced reports whether the scoring-method pricing adjustment
// applies to this market.
func (mt MarketType) IsMethodPriced() bool {
	return marketSpecs[mt].methodPriced
}

// IsHomeSide reports whether the market refers to the home team
func (mt MarketType) IsHomeSide() bool {
	return strings.HasPrefix(string(mt), "home_")
}

// IsAwaySide reports whether the market refers to the away team
func (mt MarketType) IsAwaySide() bool {
	return strings.HasPrefix(string(mt), "away_")
}

// Label renders the display label, substituting the relevant team name
// for per-side markets.
func (mt MarketType) Label(homeName, awayName string) string {
	spec, ok := marketSpecs[mt]
	if !ok {
		return string(mt)
	}
	if !strings.Contains(spec.Label, "%s") {
		return spec.Label
	}
	name := homeName
	if mt.IsAwaySide() {
		name = awayName
	}
	return fmt.Sprintf(spec.Label, name)
}

// Evaluate settles the market against a recorded outcome. Unknown
// markets never win.
func (mt MarketType) Evaluate(o *MatchOutcome) bool {
	spec, ok := marketSpecs[mt]
	if !ok {
		return false
	}
	return spec.Settle(o)
}
