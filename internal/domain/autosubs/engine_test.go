package autosubs

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/fplhub/fpl-live/internal/domain/entry"
	"github.com/fplhub/fpl-live/internal/domain/fixture"
	"github.com/fplhub/fpl-live/internal/domain/live"
	"github.com/fplhub/fpl-live/internal/domain/player"
)

// squadPicks builds a 4-4-2 squad: element N occupies squad position N.
// Element 6 is captain (multiplier 2), element 7 vice-captain. Bench order is
// 12 GK, 13 DEF, 14 MID, 15 FWD.
func squadPicks() []entry.Pick {
	picks := make([]entry.Pick, 0, entry.SquadSize)
	for i := 1; i <= entry.SquadSize; i++ {
		pick := entry.Pick{Element: i, Position: i, Multiplier: 1}
		if i > entry.StartingSize {
			pick.Multiplier = 0
		}
		picks = append(picks, pick)
	}
	picks[5].IsCaptain = true
	picks[5].Multiplier = 2
	picks[6].IsViceCaptain = true

	return picks
}

func squadPlayers() map[int]player.Player {
	positions := map[int]player.Position{
		1: player.PositionGoalkeeper,
		2: player.PositionDefender, 3: player.PositionDefender,
		4: player.PositionDefender, 5: player.PositionDefender,
		6: player.PositionMidfielder, 7: player.PositionMidfielder,
		8: player.PositionMidfielder, 9: player.PositionMidfielder,
		10: player.PositionForward, 11: player.PositionForward,
		12: player.PositionGoalkeeper,
		13: player.PositionDefender,
		14: player.PositionMidfielder,
		15: player.PositionForward,
	}

	players := make(map[int]player.Player, len(positions))
	for id, position := range positions {
		players[id] = player.Player{
			ID:       id,
			TeamID:   1,
			Name:     fmt.Sprintf("Player %d", id),
			Position: position,
		}
	}
	return players
}

// liveWorld marks every squad element as having played except the listed
// blanks, which carry a zero-minute explain block.
func liveWorld(blanks ...int) map[int]live.Element {
	blankSet := make(map[int]struct{}, len(blanks))
	for _, id := range blanks {
		blankSet[id] = struct{}{}
	}

	elements := make(map[int]live.Element, entry.SquadSize)
	for id := 1; id <= entry.SquadSize; id++ {
		stat := live.ExplainStat{Identifier: live.IdentifierMinutes, Points: 2, Value: 90}
		if _, blank := blankSet[id]; blank {
			stat = live.ExplainStat{Identifier: live.IdentifierMinutes, Points: 0, Value: 0}
		}
		elements[id] = live.Element{
			ID:      id,
			Explain: []live.Explain{{Fixture: 101, Stats: []live.ExplainStat{stat}}},
		}
	}
	return elements
}

func finishedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{ID: 101, HomeTeamID: 1, AwayTeamID: 2, Started: true, Finished: true, Minutes: 90},
	}
}

func pickByElement(t *testing.T, picks []entry.Pick, element int) entry.Pick {
	t.Helper()
	for _, pick := range picks {
		if pick.Element == element {
			return pick
		}
	}
	t.Fatalf("element %d not found in picks", element)
	return entry.Pick{}
}

func TestApplySwapsBlankStarter(t *testing.T) {
	t.Parallel()

	result := Apply(squadPicks(), squadPlayers(), liveWorld(2), finishedFixtures())

	if len(result.Substitutions) != 1 {
		t.Fatalf("substitutions = %d, want 1", len(result.Substitutions))
	}
	sub := result.Substitutions[0]
	if sub.Out.Element != 2 || sub.In.Element != 13 {
		t.Fatalf("swap = out %d in %d, want out 2 in 13", sub.Out.Element, sub.In.Element)
	}
	if sub.Out.Name != "Player 2" || sub.In.Name != "Player 13" {
		t.Fatalf("swap names = %q/%q", sub.Out.Name, sub.In.Name)
	}
	if got := pickByElement(t, result.Picks, 2).Multiplier; got != 0 {
		t.Fatalf("subbed-out starter multiplier = %d, want 0", got)
	}
	if got := pickByElement(t, result.Picks, 13).Multiplier; got != 1 {
		t.Fatalf("subbed-in bench multiplier = %d, want 1", got)
	}
}

func TestApplyFollowsBenchPriorityOverLikeForLike(t *testing.T) {
	t.Parallel()

	// Blank midfielder: bench GK is vetoed by formation, so the first legal
	// candidate is the bench defender even though a bench midfielder exists.
	result := Apply(squadPicks(), squadPlayers(), liveWorld(8), finishedFixtures())

	if len(result.Substitutions) != 1 {
		t.Fatalf("substitutions = %d, want 1", len(result.Substitutions))
	}
	if got := result.Substitutions[0].In.Element; got != 13 {
		t.Fatalf("subbed-in element = %d, want bench defender 13", got)
	}
}

func TestApplyGoalkeeperOnlyReplacedByGoalkeeper(t *testing.T) {
	t.Parallel()

	t.Run("bench goalkeeper also blank", func(t *testing.T) {
		t.Parallel()

		result := Apply(squadPicks(), squadPlayers(), liveWorld(1, 12), finishedFixtures())

		if len(result.Substitutions) != 0 {
			t.Fatalf("substitutions = %d, want 0", len(result.Substitutions))
		}
		if got := pickByElement(t, result.Picks, 1).Multiplier; got != 1 {
			t.Fatalf("starting goalkeeper multiplier = %d, want unchanged 1", got)
		}
	})

	t.Run("bench goalkeeper played", func(t *testing.T) {
		t.Parallel()

		result := Apply(squadPicks(), squadPlayers(), liveWorld(1), finishedFixtures())

		if len(result.Substitutions) != 1 {
			t.Fatalf("substitutions = %d, want 1", len(result.Substitutions))
		}
		sub := result.Substitutions[0]
		if sub.Out.Element != 1 || sub.In.Element != 12 {
			t.Fatalf("swap = out %d in %d, want out 1 in 12", sub.Out.Element, sub.In.Element)
		}
	})
}

func TestApplyBlockedStarterNeverBlocksLaterSwaps(t *testing.T) {
	t.Parallel()

	// The goalkeeper has no eligible cover, the defender still gets one.
	result := Apply(squadPicks(), squadPlayers(), liveWorld(1, 4, 12), finishedFixtures())

	if len(result.Substitutions) != 1 {
		t.Fatalf("substitutions = %d, want 1", len(result.Substitutions))
	}
	sub := result.Substitutions[0]
	if sub.Out.Element != 4 || sub.In.Element != 13 {
		t.Fatalf("swap = out %d in %d, want out 4 in 13", sub.Out.Element, sub.In.Element)
	}
}

func TestApplyPromotesViceCaptain(t *testing.T) {
	t.Parallel()

	t.Run("captain clamped when no cover exists", func(t *testing.T) {
		t.Parallel()

		result := Apply(squadPicks(), squadPlayers(), liveWorld(6, 12, 13, 14, 15), finishedFixtures())

		if !result.CaptainPromoted {
			t.Fatal("expected captain promotion")
		}
		if result.OriginalCaptainID != 6 {
			t.Fatalf("original captain = %d, want 6", result.OriginalCaptainID)
		}
		if got := pickByElement(t, result.Picks, 7).Multiplier; got != 2 {
			t.Fatalf("vice-captain multiplier = %d, want 2", got)
		}
		if got := pickByElement(t, result.Picks, 6).Multiplier; got != 1 {
			t.Fatalf("captain multiplier = %d, want clamped to 1", got)
		}
	})

	t.Run("triple captain multiplier survives the swap", func(t *testing.T) {
		t.Parallel()

		picks := squadPicks()
		picks[5].Multiplier = 3

		result := Apply(picks, squadPlayers(), liveWorld(6), finishedFixtures())

		if !result.CaptainPromoted {
			t.Fatal("expected captain promotion")
		}
		if got := pickByElement(t, result.Picks, 7).Multiplier; got != 3 {
			t.Fatalf("vice-captain multiplier = %d, want 3", got)
		}
		if got := pickByElement(t, result.Picks, 6).Multiplier; got != 0 {
			t.Fatalf("subbed-out captain multiplier = %d, want 0", got)
		}
	})

	t.Run("no promotion when vice also blank", func(t *testing.T) {
		t.Parallel()

		result := Apply(squadPicks(), squadPlayers(), liveWorld(6, 7, 12, 13, 14, 15), finishedFixtures())

		if result.CaptainPromoted {
			t.Fatal("unexpected captain promotion")
		}
		if got := pickByElement(t, result.Picks, 6).Multiplier; got != 2 {
			t.Fatalf("captain multiplier = %d, want unchanged 2", got)
		}
	})
}

func TestApplyWaitsForFixtureCompletion(t *testing.T) {
	t.Parallel()

	inPlay := []fixture.Fixture{
		{ID: 101, HomeTeamID: 1, AwayTeamID: 2, Started: true, Minutes: 70},
	}

	result := Apply(squadPicks(), squadPlayers(), liveWorld(2), inPlay)

	if len(result.Substitutions) != 0 {
		t.Fatalf("substitutions = %d, want 0 while the match is in play", len(result.Substitutions))
	}
	if got := pickByElement(t, result.Picks, 2).Multiplier; got != 1 {
		t.Fatalf("starter multiplier = %d, want unchanged 1", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	picks := squadPicks()
	original := append([]entry.Pick(nil), picks...)

	Apply(picks, squadPlayers(), liveWorld(2), finishedFixtures())

	if !reflect.DeepEqual(picks, original) {
		t.Fatalf("input picks mutated: %v", picks)
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	t.Parallel()

	first := Apply(squadPicks(), squadPlayers(), liveWorld(2, 8), finishedFixtures())
	second := Apply(squadPicks(), squadPlayers(), liveWorld(2, 8), finishedFixtures())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated runs disagree: %v vs %v", first, second)
	}
}

func TestResolveEligibilitySkipsUnknownReferences(t *testing.T) {
	t.Parallel()

	players := squadPlayers()
	elements := liveWorld()
	byTeam := fixture.MapByTeam(finishedFixtures())

	if _, ok := ResolveEligibility(entry.Pick{Element: 99}, players, elements, byTeam); ok {
		t.Fatal("unknown player must not resolve")
	}

	delete(elements, 3)
	if _, ok := ResolveEligibility(entry.Pick{Element: 3}, players, elements, byTeam); ok {
		t.Fatal("missing live element must not resolve")
	}

	if _, ok := ResolveEligibility(entry.Pick{Element: 1}, players, elements, map[int]fixture.Fixture{}); ok {
		t.Fatal("missing fixture must not resolve")
	}
}
