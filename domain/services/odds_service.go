package services

import (
	"math"

	"ligabet/domain/entities"
)

// Odds clamp bounds. League matches price wins between 1.01 and 50 and
// draws between 2.5 and 20; knockout cups use slightly tighter floors
// and a wider draw ceiling.
const (
	leagueMinWinOdds  = 1.01
	leagueMaxWinOdds  = 50.0
	leagueMinDrawOdds = 2.5
	leagueMaxDrawOdds = 20.0

	cupMinWinOdds  = 1.05
	cupMaxWinOdds  = 50.0
	cupMinDrawOdds = 3.0
	cupMaxDrawOdds = 25.0
)

// neutralOdds is the fallback price when either team is unknown
var neutralOdds = entities.ThreeWayOdds{Home: 2.0, Draw: 3.0, Away: 2.0}

// OddsService prices the three-way market for a match. It is pure: all
// inputs arrive as arguments and repeated calls give identical output.
type OddsService struct {
	leagueMargin float64
	cupMargin    float64
}

// NewOddsService creates an odds service with the given bookmaker margins
func NewOddsService(leagueMargin, cupMargin float64) *OddsService {
	return &OddsService{leagueMargin: leagueMargin, cupMargin: cupMargin}
}

// MatchOdds prices a match between two teams. Knockout tournaments use
// the cup model, everything else the league model. Either team being
// nil yields the neutral fallback price.
func (s *OddsService) MatchOdds(home, away *entities.Team, tournament entities.Tournament) entities.ThreeWayOdds {
	if home == nil || away == nil {
		return neutralOdds
	}

	if tournament.IsKnockout() {
		return s.cupOdds(home, away, tournament)
	}
	return s.leagueOdds(home, away)
}

func (s *OddsService) leagueOdds(home, away *entities.Team) entities.ThreeWayOdds {
	homeStrength := leagueTeamStrength(home)
	awayStrength := leagueTeamStrength(away)

	if home.League != away.League {
		homeMult, awayMult := interLeagueMultipliers(home.League, home.EffectivePosition(), away.League, away.EffectivePosition())
		homeStrength *= homeMult
		awayStrength *= awayMult
	}

	homeStrength *= leagueFormBonus(home.EffectiveForm())
	awayStrength *= leagueFormBonus(away.EffectiveForm())

	total := homeStrength + awayStrength
	homeProb := homeStrength / total
	awayProb := awayStrength / total

	drawProb := drawProbability(home, away, homeStrength, awayStrength)

	adjHomeProb := homeProb * (1 - drawProb)
	adjAwayProb := awayProb * (1 - drawProb)

	homeOdds := clamp(1/adjHomeProb*(1-s.leagueMargin), leagueMinWinOdds, leagueMaxWinOdds)
	awayOdds := clamp(1/adjAwayProb*(1-s.leagueMargin), leagueMinWinOdds, leagueMaxWinOdds)
	drawOdds := clamp(1/drawProb*(1-s.leagueMargin), leagueMinDrawOdds, leagueMaxDrawOdds)

	return applyMismatchLimits(homeOdds, drawOdds, awayOdds, home, away)
}

// leagueTeamStrength scores a team for league pricing. Division sets
// the base, table position scales it, with a hard floor of 10.
func leagueTeamStrength(team *entities.Team) float64 {
	strength := 100.0

	switch team.League {
	case entities.LeagueD1:
		strength += 150
	case entities.LeagueD2:
		strength += 50
	case entities.LeagueD3:
		strength -= 50
	}

	strength *= positionMultiplier(team.EffectivePosition(), team.League)

	return math.Max(10, strength)
}

func positionMultiplier(position int, league entities.League) float64 {
	type tier struct{ d1, d2, other float64 }
	var t tier
	switch {
	case position == 1:
		t = tier{2.8, 2.2, 1.8}
	case position == 2:
		t = tier{2.4, 1.9, 1.6}
	case position == 3:
		t = tier{2.1, 1.7, 1.4}
	case position <= 5:
		t = tier{1.8, 1.4, 1.2}
	case position <= 8:
		t = tier{1.5, 1.1, 1.0}
	case position <= 12:
		t = tier{1.2, 0.9, 0.8}
	case position <= 16:
		t = tier{1.0, 0.7, 0.6}
	default:
		t = tier{0.8, 0.5, 0.4}
	}
	switch league {
	case entities.LeagueD1:
		return t.d1
	case entities.LeagueD2:
		return t.d2
	default:
		return t.other
	}
}

// interLeagueMultipliers widens the strength gap for cross-division
// matches. Only the D1 vs D2 pairing carries explicit tiers; the
// reversed fixture mirrors them.
func interLeagueMultipliers(homeLeague entities.League, homePos int, awayLeague entities.League, awayPos int) (float64, float64) {
	if homeLeague == entities.LeagueD2 && awayLeague == entities.LeagueD1 {
		awayMult, homeMult := interLeagueMultipliers(awayLeague, awayPos, homeLeague, homePos)
		return homeMult, awayMult
	}
	if homeLeague != entities.LeagueD1 || awayLeague != entities.LeagueD2 {
		return 1.0, 1.0
	}

	switch {
	case homePos == 1:
		switch {
		case awayPos >= 18:
			return 8.0, 0.15
		case awayPos >= 15:
			return 6.0, 0.2
		case awayPos >= 10:
			return 4.5, 0.25
		case awayPos >= 5:
			return 3.5, 0.35
		default:
			return 2.8, 0.45
		}
	case homePos <= 3:
		switch {
		case awayPos >= 15:
			return 4.5, 0.25
		case awayPos >= 8:
			return 3.2, 0.35
		default:
			return 2.5, 0.5
		}
	case homePos <= 8:
		switch {
		case awayPos >= 15:
			return 3.0, 0.4
		case awayPos >= 8:
			return 2.2, 0.55
		default:
			return 1.8, 0.65
		}
	default:
		if awayPos >= 15 {
			return 2.0, 0.6
		}
		return 1.5, 0.75
	}
}

// leagueFormBonus converts a form string into a strength multiplier
// bounded to [0.7, 1.3].
func leagueFormBonus(form string) float64 {
	wins := countRune(form, 'W')
	losses := countRune(form, 'L')

	bonus := 1.0
	switch {
	case wins >= 4:
		bonus = 1.25
	case wins >= 3:
		bonus = 1.15
	case wins >= 2:
		bonus = 1.08
	case wins == 1:
		bonus = 1.02
	}

	switch {
	case losses >= 4:
		bonus *= 0.75
	case losses >= 3:
		bonus *= 0.85
	case losses >= 2:
		bonus *= 0.92
	}

	return clamp(bonus, 0.7, 1.3)
}

// drawProbability estimates the draw share of the outcome space.
// Cross-division matches draw less often the larger the strength gap;
// same-division matches draw more often further down the table.
func drawProbability(home, away *entities.Team, homeStrength, awayStrength float64) float64 {
	var prob float64
	if home.League != away.League {
		prob = 0.12
		ratio := math.Max(homeStrength, awayStrength) / math.Min(homeStrength, awayStrength)
		switch {
		case ratio > 8:
			prob = 0.08
		case ratio > 5:
			prob = 0.10
		case ratio > 3:
			prob = 0.12
		}
	} else {
		avgPosition := float64(home.EffectivePosition()+away.EffectivePosition()) / 2
		switch {
		case avgPosition <= 5:
			prob = 0.18
		case avgPosition <= 10:
			prob = 0.22
		default:
			prob = 0.25
		}
	}
	return clamp(prob, 0.08, 0.25)
}

// applyMismatchLimits pins the odds of extreme cross-division
// mismatches to hard bounds, so a champion against a relegation side
// never drifts above 1.05.
func applyMismatchLimits(homeOdds, drawOdds, awayOdds float64, home, away *entities.Team) entities.ThreeWayOdds {
	homePos := home.EffectivePosition()
	awayPos := away.EffectivePosition()
	homeD1 := home.League == entities.LeagueD1
	awayD1 := away.League == entities.LeagueD1
	homeD2 := home.League == entities.LeagueD2
	awayD2 := away.League == entities.LeagueD2

	switch {
	case homeD1 && homePos == 1 && awayD2 && awayPos >= 18:
		homeOdds = math.Min(homeOdds, 1.05)
		awayOdds = math.Max(awayOdds, 25.0)
		drawOdds = math.Max(drawOdds, 15.0)
	case homeD1 && homePos == 1 && awayD2 && awayPos >= 10:
		homeOdds = math.Min(homeOdds, 1.10)
		awayOdds = math.Max(awayOdds, 15.0)
		drawOdds = math.Max(drawOdds, 12.0)
	case homeD1 && homePos <= 3 && awayD2 && awayPos >= 15:
		homeOdds = math.Min(homeOdds, 1.20)
		awayOdds = math.Max(awayOdds, 12.0)
		drawOdds = math.Max(drawOdds, 10.0)
	case awayD1 && awayPos == 1 && homeD2 && homePos >= 18:
		awayOdds = math.Min(awayOdds, 1.05)
		homeOdds = math.Max(homeOdds, 25.0)
		drawOdds = math.Max(drawOdds, 15.0)
	case awayD1 && awayPos == 1 && homeD2 && homePos >= 10:
		awayOdds = math.Min(awayOdds, 1.10)
		homeOdds = math.Max(homeOdds, 15.0)
		drawOdds = math.Max(drawOdds, 12.0)
	case awayD1 && awayPos <= 3 && homeD2 && homePos >= 15:
		awayOdds = math.Min(awayOdds, 1.20)
		homeOdds = math.Max(homeOdds, 12.0)
		drawOdds = math.Max(drawOdds, 10.0)
	}

	return entities.ThreeWayOdds{
		Home: round2(homeOdds),
		Draw: round2(drawOdds),
		Away: round2(awayOdds),
	}
}

func (s *OddsService) cupOdds(home, away *entities.Team, tournament entities.Tournament) entities.ThreeWayOdds {
	homeStrength := cupBaseStrength(home.League)
	awayStrength := cupBaseStrength(away.League)

	homeStrength *= cupPositionModifier(home.EffectivePosition(), home.League)
	awayStrength *= cupPositionModifier(away.EffectivePosition(), away.League)

	homeStrength *= cupFormBonus(home.EffectiveForm())
	awayStrength *= cupFormBonus(away.EffectiveForm())

	homeFactor, awayFactor := cupTournamentFactor(tournament, home.League, away.League)
	homeStrength *= homeFactor
	awayStrength *= awayFactor

	homeStrength, awayStrength = applyCupMismatchBoosts(homeStrength, awayStrength, home, away)

	total := homeStrength + awayStrength
	homeProb := homeStrength / total
	awayProb := awayStrength / total

	drawProb := 0.16
	ratio := math.Max(homeStrength, awayStrength) / math.Min(homeStrength, awayStrength)
	switch {
	case ratio > 8:
		drawProb = 0.05
	case ratio > 5:
		drawProb = 0.08
	case ratio > 3:
		drawProb = 0.10
	case ratio > 2:
		drawProb = 0.12
	}

	adjHomeProb := homeProb * (1 - drawProb)
	adjAwayProb := awayProb * (1 - drawProb)

	return entities.ThreeWayOdds{
		Home: round2(clamp(1/adjHomeProb*(1-s.cupMargin), cupMinWinOdds, cupMaxWinOdds)),
		Draw: round2(clamp(1/drawProb*(1-s.cupMargin), cupMinDrawOdds, cupMaxDrawOdds)),
		Away: round2(clamp(1/adjAwayProb*(1-s.cupMargin), cupMinWinOdds, cupMaxWinOdds)),
	}
}

func cupBaseStrength(league entities.League) float64 {
	strength := 100.0
	switch league {
	case entities.LeagueD1:
		strength += 80
	case entities.LeagueD2:
		strength += 30
	case entities.LeagueD3:
		strength -= 40
	}
	return strength
}

func cupPositionModifier(position int, league entities.League) float64 {
	switch league {
	case entities.LeagueD1:
		switch {
		case position == 1:
			return 3.5
		case position == 2:
			return 2.8
		case position == 3:
			return 2.4
		case position <= 5:
			return 2.0
		case position <= 8:
			return 1.6
		case position <= 12:
			return 1.3
		case position <= 16:
			return 1.0
		default:
			return 0.8
		}
	case entities.LeagueD2:
		switch {
		case position == 1:
			return 2.2
		case position == 2:
			return 1.8
		case position == 3:
			return 1.6
		case position <= 5:
			return 1.4
		case position <= 8:
			return 1.1
		case position <= 12:
			return 0.9
		case position <= 16:
			return 0.7
		default:
			return 0.5
		}
	case entities.LeagueD3:
		switch {
		case position == 1:
			return 1.5
		case position <= 3:
			return 1.2
		case position <= 8:
			return 0.9
		default:
			return 0.7
		}
	}
	return 1.0
}

// cupFormBonus is more aggressive than the league variant, bounded to
// [0.5, 1.8].
func cupFormBonus(form string) float64 {
	wins := countRune(form, 'W')
	losses := countRune(form, 'L')

	bonus := 0.85
	switch {
	case wins >= 4:
		bonus = 1.35
	case wins >= 3:
		bonus = 1.25
	case wins >= 2:
		bonus = 1.15
	case wins == 1:
		bonus = 1.05
	}

	switch {
	case losses >= 4:
		bonus *= 0.65
	case losses >= 3:
		bonus *= 0.75
	case losses >= 2:
		bonus *= 0.85
	}

	if losses == 0 && wins >= 2 {
		bonus *= 1.1
	}

	return clamp(bonus, 0.5, 1.8)
}

func cupTournamentFactor(tournament entities.Tournament, homeLeague, awayLeague entities.League) (float64, float64) {
	homeFactor, awayFactor := 1.0, 1.0

	leagueFactor := func(league entities.League, d1, d2, d3 float64) float64 {
		switch league {
		case entities.LeagueD1:
			return d1
		case entities.LeagueD2:
			return d2
		case entities.LeagueD3:
			return d3
		}
		return 1.0
	}

	switch tournament {
	case entities.TournamentMaradei:
		homeFactor *= leagueFactor(homeLeague, 1.3, 0.8, 0.6)
		awayFactor *= leagueFactor(awayLeague, 1.3, 0.8, 0.6)
	case entities.TournamentIzoro:
		homeFactor *= leagueFactor(homeLeague, 1.2, 0.9, 1.0)
		awayFactor *= leagueFactor(awayLeague, 1.2, 0.9, 1.0)
	case entities.TournamentIzplata:
		homeFactor *= leagueFactor(homeLeague, 0.9, 1.15, 1.0)
		awayFactor *= leagueFactor(awayLeague, 0.9, 1.15, 1.0)
	}

	return homeFactor, awayFactor
}

// applyCupMismatchBoosts amplifies extreme quality gaps in cup ties the
// same way the league mismatch limits do, but on the strength side.
func applyCupMismatchBoosts(homeStrength, awayStrength float64, home, away *entities.Team) (float64, float64) {
	homePos := home.EffectivePosition()
	awayPos := away.EffectivePosition()

	boost := func(topStrength, otherStrength float64, otherLeague entities.League, otherPos int) (float64, float64) {
		switch {
		case otherLeague == entities.LeagueD2 && otherPos >= 7:
			return topStrength * 5.0, otherStrength * 0.2
		case otherLeague == entities.LeagueD3:
			return topStrength * 8.0, otherStrength * 0.1
		case otherLeague == entities.LeagueD2 && otherPos >= 4:
			return topStrength * 3.5, otherStrength * 0.3
		}
		return topStrength, otherStrength
	}

	if home.League == entities.LeagueD1 && homePos == 1 {
		homeStrength, awayStrength = boost(homeStrength, awayStrength, away.League, awayPos)
	}
	if away.League == entities.LeagueD1 && awayPos == 1 {
		awayStrength, homeStrength = boost(awayStrength, homeStrength, home.League, homePos)
	}

	if home.League == entities.LeagueD1 && homePos <= 3 && away.League == entities.LeagueD2 && awayPos >= 8 {
		homeStrength *= 3.5
		awayStrength *= 0.4
	}
	if away.League == entities.LeagueD1 && awayPos <= 3 && home.League == entities.LeagueD2 && homePos >= 8 {
		awayStrength *= 3.5
		homeStrength *= 0.4
	}

	return homeStrength, awayStrength
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func countRune(s string, r byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == r {
			n++
		}
	}
	return n
}
