package entities

import (
	"errors"
	"fmt"
	"time"
)

// MatchStats holds the prop-market facts of a finished match. Everything
// defaults to zero or false, so a plain simulated result settles prop
// bets against an uneventful match.
type MatchStats struct {
	TotalCorners     int  `json:"total_corners"`
	TotalYellowCards int  `json:"total_yellow_cards"`
	TotalRedCards    int  `json:"total_red_cards"`
	HomeYellowCards  int  `json:"home_yellow_cards"`
	AwayYellowCards  int  `json:"away_yellow_cards"`
	HomeRedCard      bool `json:"home_red_card"`
	AwayRedCard      bool `json:"away_red_card"`

	CornerGoal      bool `json:"corner_goal"`
	FreeKickGoal    bool `json:"free_kick_goal"`
	BicycleKickGoal bool `json:"bicycle_kick_goal"`
	HeaderGoal      bool `json:"header_goal"`
	StrikerGoal     bool `json:"striker_goal"`
	MidfielderGoal  bool `json:"midfielder_goal"`
	DefenderGoal    bool `json:"defender_goal"`
	GoalkeeperGoal  bool `json:"goalkeeper_goal"`
}

// MatchOutcome is the recorded final result of a match
type MatchOutcome struct {
	MatchID    string     `db:"match_id"`
	Result     ResultTag  `db:"result"`
	HomeGoals  int        `db:"home_goals"`
	AwayGoals  int        `db:"away_goals"`
	Stats      MatchStats `db:"stats"`
	Manual     bool       `db:"manual"`
	SetBy      *int64     `db:"set_by"`
	RecordedAt time.Time  `db:"recorded_at"`
}

// TotalGoals returns the combined score
func (o *MatchOutcome) TotalGoals() int {
	return o.HomeGoals + o.AwayGoals
}

// Score formats the final score as "2-1"
func (o *MatchOutcome) Score() string {
	return fmt.Sprintf("%d-%d", o.HomeGoals, o.AwayGoals)
}

// Validate checks internal consistency between result tag and score
func (o *MatchOutcome) Validate() error {
	if !o.Result.Valid() {
		return errors.New("invalid result, must be home, draw or away")
	}
	if o.HomeGoals < 0 || o.AwayGoals < 0 {
		return errors.New("goals must be zero or greater")
	}
	switch o.Result {
	case ResultHome:
		if o.HomeGoals <= o.AwayGoals {
			return errors.New("score does not match a home win")
		}
	case ResultAway:
		if o.AwayGoals <= o.HomeGoals {
			return errors.New("score does not match an away win")
		}
	case ResultDraw:
		if o.HomeGoals != o.AwayGoals {
			return errors.New("a draw requires an equal score")
		}
	}
	return nil
}
