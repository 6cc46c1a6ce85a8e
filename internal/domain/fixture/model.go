package fixture

import (
	"fmt"
	"time"
)

// Stat identifiers carried in the per-fixture stat breakdown.
const (
	IdentifierGoalsScored           = "goals_scored"
	IdentifierAssists               = "assists"
	IdentifierBonus                 = "bonus"
	IdentifierBPS                   = "bps"
	IdentifierDefensiveContribution = "defensive_contribution"
)

// Minutes played after which provisional bonus is worth estimating.
const bonusWindowMinutes = 60

// StatValue is one (element, value) pair inside a fixture stat breakdown.
type StatValue struct {
	Element int
	Value   int
}

// Stat groups the home and away values for one stat identifier.
type Stat struct {
	Identifier string
	Home       []StatValue
	Away       []StatValue
}

// Fixture represents one scheduled match of a gameweek.
type Fixture struct {
	ID                  int
	Event               int
	HomeTeamID          int
	AwayTeamID          int
	Started             bool
	Finished            bool
	FinishedProvisional bool
	Minutes             int
	KickoffAt           time.Time
	HomeScore           *int
	AwayScore           *int
	Stats               []Stat
}

func (f Fixture) Validate() error {
	if f.ID <= 0 {
		return fmt.Errorf("fixture id must be greater than zero")
	}
	if f.Event <= 0 {
		return fmt.Errorf("fixture event must be greater than zero")
	}
	if f.HomeTeamID <= 0 || f.AwayTeamID <= 0 {
		return fmt.Errorf("fixture team ids must be greater than zero")
	}

	return nil
}

// Complete reports whether the match is over for scoring-eligibility purposes.
// finished_provisional flips at the full-time whistle; finished flips later,
// once bonus points are confirmed upstream.
func (f Fixture) Complete() bool {
	return f.FinishedProvisional || f.Finished
}

// InBonusWindow reports whether live BPS rankings are stable enough to
// estimate provisional bonus for this fixture.
func (f Fixture) InBonusWindow() bool {
	return f.Minutes >= bonusWindowMinutes || f.Finished
}

// MapByTeam builds a team id lookup over both sides of every fixture.
// On a double gameweek the first fixture listed for a team wins.
func MapByTeam(fixtures []Fixture) map[int]Fixture {
	byTeam := make(map[int]Fixture, len(fixtures)*2)
	for _, item := range fixtures {
		if _, exists := byTeam[item.HomeTeamID]; !exists {
			byTeam[item.HomeTeamID] = item
		}
		if _, exists := byTeam[item.AwayTeamID]; !exists {
			byTeam[item.AwayTeamID] = item
		}
	}

	return byTeam
}
