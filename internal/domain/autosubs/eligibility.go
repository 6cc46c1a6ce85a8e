package autosubs

import (
	"github.com/fplhub/fpl-live/internal/domain/entry"
	"github.com/fplhub/fpl-live/internal/domain/fixture"
	"github.com/fplhub/fpl-live/internal/domain/live"
	"github.com/fplhub/fpl-live/internal/domain/player"
)

// Eligibility is the per-pick substitution view computed fresh for every
// engine run: whether the player's match is over and whether they registered
// any scoring contribution in it.
type Eligibility struct {
	Element         int
	Position        player.Position
	Name            string
	FixtureComplete bool
	Played          bool
}

// ResolveEligibility derives the Eligibility record for one pick. It returns
// ok=false when the pick cannot be evaluated: unknown player reference,
// missing live element, or no fixture found for the player's team. Such
// picks are never substituted out and never brought on.
func ResolveEligibility(
	pick entry.Pick,
	players map[int]player.Player,
	elements map[int]live.Element,
	fixtureByTeam map[int]fixture.Fixture,
) (Eligibility, bool) {
	item, ok := players[pick.Element]
	if !ok {
		return Eligibility{}, false
	}
	element, ok := elements[pick.Element]
	if !ok {
		return Eligibility{}, false
	}
	match, ok := fixtureByTeam[item.TeamID]
	if !ok {
		return Eligibility{}, false
	}

	return Eligibility{
		Element:         pick.Element,
		Position:        item.Position,
		Name:            item.Name,
		FixtureComplete: match.Complete(),
		Played:          element.HasContribution(),
	}, true
}
