package live

import "fmt"

// IdentifierMinutes is the explain identifier the upstream feed emits for
// every squad member, including unused substitutes with zero minutes.
const IdentifierMinutes = "minutes"

// Stats is the official per-gameweek stat record for one element.
type Stats struct {
	Minutes               int
	GoalsScored           int
	Assists               int
	CleanSheets           int
	GoalsConceded         int
	OwnGoals              int
	PenaltiesSaved        int
	PenaltiesMissed       int
	YellowCards           int
	RedCards              int
	Saves                 int
	Bonus                 int
	BPS                   int
	DefensiveContribution int
	TotalPoints           int
}

// ExplainStat is one scoring line inside an explain block.
type ExplainStat struct {
	Identifier string
	Points     int
	Value      int
}

// Explain describes how an element earned points in one fixture.
type Explain struct {
	Fixture int
	Stats   []ExplainStat
}

// Element is the live per-gameweek stat block for one player.
type Element struct {
	ID      int
	Stats   Stats
	Explain []Explain
}

func (e Element) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("live element id must be greater than zero")
	}

	return nil
}

// HasContribution reports whether the element registered any scoring
// contribution this gameweek: a nonzero point delta on any explain stat, or
// minutes played. The zero-minutes explain entry the feed emits for unused
// substitutes does not count.
func (e Element) HasContribution() bool {
	for _, block := range e.Explain {
		for _, stat := range block.Stats {
			if stat.Points != 0 {
				return true
			}
			if stat.Identifier == IdentifierMinutes && stat.Value > 0 {
				return true
			}
		}
	}

	return false
}
