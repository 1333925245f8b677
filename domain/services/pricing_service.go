package services

import (
	"strings"

	"ligabet/domain/entities"
)

// Exact score odds stay within [4, 80], special market odds within
// [1.1, 100].
const (
	minExactScoreOdds = 4.0
	maxExactScoreOdds = 80.0
	minSpecialOdds    = 1.1
	maxSpecialOdds    = 100.0
)

// unknownMarketBaseOdds prices a market missing from the table
const unknownMarketBaseOdds = 5.0

// PricingService prices exact-score bets, special markets and combo
// bets. Like OddsService it is pure.
type PricingService struct{}

// NewPricingService creates a new pricing service
func NewPricingService() *PricingService {
	return &PricingService{}
}

// ExactScoreOdds prices an exact final score. The base depends only on
// the score shape; team strength nudges it when both teams are known.
func (s *PricingService) ExactScoreOdds(home, away *entities.Team, scoreHome, scoreAway int) float64 {
	diff := scoreHome - scoreAway
	if diff < 0 {
		diff = -diff
	}
	high := scoreHome
	if scoreAway > high {
		high = scoreAway
	}

	var base float64
	switch {
	case diff == 0:
		switch scoreHome {
		case 0:
			base = 8.5
		case 1:
			base = 6.5
		case 2:
			base = 12.0
		default:
			base = 25.0
		}
	case diff == 1:
		if high <= 2 {
			base = 5.5
		} else {
			base = 9.0
		}
	case diff == 2:
		if high <= 3 {
			base = 7.5
		} else {
			base = 15.0
		}
	default:
		base = 20.0 + float64(diff)*8
	}

	if home != nil && away != nil {
		posGap := home.EffectivePosition() - away.EffectivePosition()
		if posGap < 0 {
			posGap = -posGap
		}
		// A big quality gap makes surprise scorelines less likely;
		// evenly matched teams produce common scores more often.
		if posGap > 10 {
			base *= 0.8
		} else if posGap < 3 {
			base *= 1.3
		}
	}

	return clamp(round2(base), minExactScoreOdds, maxExactScoreOdds)
}

// SpecialOdds prices a single special market for a match between the
// given teams. Either team may be nil, in which case only the base
// price applies.
func (s *PricingService) SpecialOdds(home, away *entities.Team, market entities.MarketType) float64 {
	base := unknownMarketBaseOdds
	if spec, ok := market.Spec(); ok {
		base = spec.BaseOdds
	}
	odds := base

	if home != nil && away != nil {
		avgPosition := float64(home.EffectivePosition()+away.EffectivePosition()) / 2
		if avgPosition <= 5 {
			// Top sides score from set pieces more and collect fewer cards
			if market.IsMethodPriced() {
				odds *= 0.85
			}
			if market.IsCardPriced() {
				odds *= 1.1
			}
		} else if avgPosition >= 15 {
			if market.IsCardPriced() {
				odds *= 0.9
			}
			odds *= 1.15
		}

		avgFormWins := float64(home.FormWins()+away.FormWins()) / 2
		if avgFormWins >= 4 {
			odds *= 0.9
		} else if avgFormWins <= 1 {
			odds *= 1.1
		}
	}

	return clamp(round2(odds), minSpecialOdds, maxSpecialOdds)
}

// ComboQuote is the priced result of composing several special markets
type ComboQuote struct {
	Legs        []entities.BetLeg
	Odds        float64
	Description string
}

// ComposeCombo prices a combination of special markets, enforcing the
// mutual-exclusion rules: at most one market per group, and both-teams-
// score may only accompany a single grouped market.
func (s *PricingService) ComposeCombo(home, away *entities.Team, homeName, awayName string, markets []entities.MarketType) (*ComboQuote, error) {
	if len(markets) == 0 {
		return nil, ErrEmptyCombo
	}

	seen := make(map[entities.MarketType]bool, len(markets))
	groupCounts := make(map[entities.MarketGroup]int)
	hasBothTeamsScore := false

	for _, mt := range markets {
		if !mt.Valid() {
			return nil, ErrUnknownMarket
		}
		if seen[mt] {
			return nil, ErrDuplicateLeg
		}
		seen[mt] = true

		if g := mt.Group(); g != entities.MarketGroupNone {
			groupCounts[g]++
		}
		if mt == entities.MarketBothTeamsScore {
			hasBothTeamsScore = true
		}
	}

	for _, group := range []entities.MarketGroup{
		entities.MarketGroupGoals,
		entities.MarketGroupCorners,
		entities.MarketGroupYellowCards,
		entities.MarketGroupRedCards,
	} {
		if groupCounts[group] > 1 {
			return nil, &ComboConstraintError{Group: group}
		}
	}

	if hasBothTeamsScore && len(groupCounts) > 1 {
		return nil, &ComboConstraintError{Group: entities.MarketGroupNone}
	}

	combined := 1.0
	legs := make([]entities.BetLeg, 0, len(markets))
	labels := make([]string, 0, len(markets))
	for _, mt := range markets {
		legOdds := s.SpecialOdds(home, away, mt)
		combined *= legOdds
		label := mt.Label(homeName, awayName)
		legs = append(legs, entities.BetLeg{Market: mt, Label: label, Odds: legOdds})
		labels = append(labels, label)
	}

	return &ComboQuote{
		Legs:        legs,
		Odds:        round2(combined),
		Description: strings.Join(labels, " + "),
	}, nil
}
