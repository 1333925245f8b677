package services

import (
	"math/rand"
	"strings"
	"time"

	"ligabet/domain/entities"
)

// SimulationService plays out a match outcome at random, weighted by
// team strength. All randomness flows through the injected source so
// tests can pin the sequence.
type SimulationService struct {
	rng *rand.Rand
}

// NewSimulationService creates a simulation service. A nil source gets
// seeded from the clock.
func NewSimulationService(rng *rand.Rand) *SimulationService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulationService{rng: rng}
}

// Simulate produces a random outcome for a match between the two
// teams. The result carries no prop stats; simulated matches settle
// prop markets as uneventful.
func (s *SimulationService) Simulate(home, away *entities.Team) *entities.MatchOutcome {
	homeStrength := simulationStrength(home)
	awayStrength := simulationStrength(away)

	crossDivision := home.League != away.League
	if home.League == entities.LeagueD1 && away.League == entities.LeagueD2 {
		homeMult, awayMult := simulationInterLeagueFactor(home.EffectivePosition(), away.EffectivePosition())
		homeStrength *= homeMult
		awayStrength *= awayMult
	} else if home.League == entities.LeagueD2 && away.League == entities.LeagueD1 {
		awayMult, homeMult := simulationInterLeagueFactor(away.EffectivePosition(), home.EffectivePosition())
		homeStrength *= homeMult
		awayStrength *= awayMult
	}

	total := homeStrength + awayStrength
	homeProb := homeStrength / total

	drawProb := 0.22
	if crossDivision {
		avgPosition := float64(home.EffectivePosition()+away.EffectivePosition()) / 2
		switch {
		case avgPosition <= 5:
			drawProb = 0.15
		case avgPosition <= 15:
			drawProb = 0.12
		default:
			drawProb = 0.08
		}
	}

	roll := s.rng.Float64()
	var result entities.ResultTag
	switch {
	case roll < homeProb*(1-drawProb):
		result = entities.ResultHome
	case roll < 1-drawProb:
		result = entities.ResultAway
	default:
		result = entities.ResultDraw
	}

	var homeGoals, awayGoals int
	switch result {
	case entities.ResultHome:
		if home.League == entities.LeagueD1 && away.League == entities.LeagueD2 {
			// Mismatch wins are emphatic
			homeGoals = s.rng.Intn(4) + 2
			awayGoals = s.rng.Intn(2)
		} else {
			homeGoals = s.rng.Intn(3) + 1
			awayGoals = s.rng.Intn(homeGoals)
		}
	case entities.ResultAway:
		if away.League == entities.LeagueD1 && home.League == entities.LeagueD2 {
			awayGoals = s.rng.Intn(4) + 2
			homeGoals = s.rng.Intn(2)
		} else {
			awayGoals = s.rng.Intn(3) + 1
			homeGoals = s.rng.Intn(awayGoals)
		}
	default:
		homeGoals = s.rng.Intn(3)
		awayGoals = homeGoals
	}

	return &entities.MatchOutcome{
		Result:    result,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
	}
}

// simulationStrength scores a team for match simulation. Unlike the
// pricing strength it rewards streaks and unbeaten runs, and is bounded
// to [15, 150].
func simulationStrength(team *entities.Team) float64 {
	strength := 50.0

	switch team.League {
	case entities.LeagueD1:
		strength += 25
	case entities.LeagueD2:
		strength += 5
	}

	position := team.EffectivePosition()
	switch {
	case position == 1:
		strength += 35
	case position <= 3:
		strength += 25
	case position <= 6:
		strength += 15
	case position <= 10:
		strength += 5
	case position <= 15:
		strength -= 10
	default:
		strength -= 20
	}

	form := team.EffectiveForm()
	formPoints := 0
	consecutiveWins, consecutiveLosses := 0, 0
	for i := 0; i < len(form); i++ {
		switch form[i] {
		case 'W':
			formPoints += 3
			consecutiveWins++
			consecutiveLosses = 0
		case 'D':
			formPoints++
			consecutiveWins = 0
			consecutiveLosses = 0
		case 'L':
			consecutiveWins = 0
			consecutiveLosses++
		}
	}

	switch {
	case formPoints >= 13:
		strength += 20
	case formPoints >= 10:
		strength += 15
	case formPoints >= 7:
		strength += 5
	case formPoints >= 4:
		strength -= 10
	default:
		strength -= 20
	}

	if consecutiveWins >= 3 {
		strength += 15
	} else if consecutiveWins >= 2 {
		strength += 8
	}
	if consecutiveLosses >= 3 {
		strength -= 15
	} else if consecutiveLosses >= 2 {
		strength -= 8
	}

	if !strings.Contains(form, "L") {
		strength += 12
	}
	if !strings.Contains(form, "W") {
		strength -= 15
	}

	return clamp(strength, 15, 150)
}

// simulationInterLeagueFactor returns (d1Multiplier, d2Multiplier) for
// a cross-division simulation, scaled by the quality gap between the
// two table positions.
func simulationInterLeagueFactor(d1Position, d2Position int) (float64, float64) {
	normalize := func(p int) float64 {
		if p < 1 {
			p = 1
		}
		if p > 20 {
			p = 20
		}
		return (21 - float64(p)) / 20
	}

	qualityGap := normalize(d1Position) - normalize(d2Position) + 0.3
	d1Mult := 1.0 + maxf(0.2, qualityGap*2)
	d2Mult := maxf(0.3, 1.0-qualityGap*1.5)
	return d1Mult, d2Mult
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
