package autosubs

import (
	"sort"

	"github.com/fplhub/fpl-live/internal/domain/entry"
	"github.com/fplhub/fpl-live/internal/domain/fixture"
	"github.com/fplhub/fpl-live/internal/domain/formation"
	"github.com/fplhub/fpl-live/internal/domain/live"
	"github.com/fplhub/fpl-live/internal/domain/player"
)

// SubstitutionSide identifies one half of an executed swap.
type SubstitutionSide struct {
	Element      int
	PickPosition int
	Position     player.Position
	Name         string
}

// Substitution is one executed swap, recorded in execution order.
type Substitution struct {
	Out SubstitutionSide
	In  SubstitutionSide
}

// Result is the sole output of the engine: the adjusted pick collection, the
// ordered substitution log, and the captain promotion decision.
type Result struct {
	Picks             []entry.Pick
	Substitutions     []Substitution
	CaptainPromoted   bool
	OriginalCaptainID int
}

// Apply simulates the official end-of-gameweek auto-substitution algorithm
// over a manager's 15 picks. Starters whose match has finished without any
// scoring contribution are replaced by the first bench player, in bench
// order, whose own match has finished with a contribution and whose position
// keeps the formation legal. The vice-captain inherits the captain's original
// multiplier when the captain finished without contributing.
//
// The input collection is never mutated; degenerate input (no picks, no live
// data) is returned unchanged with an empty log.
func Apply(
	picks []entry.Pick,
	players map[int]player.Player,
	elements map[int]live.Element,
	fixtures []fixture.Fixture,
) Result {
	adjusted := append([]entry.Pick(nil), picks...)
	result := Result{
		Picks:         adjusted,
		Substitutions: []Substitution{},
	}
	if len(picks) == 0 || len(elements) == 0 {
		return result
	}

	// Captured before any multiplier mutation so promotion propagates the
	// triple-captain multiplier even when the captain is subbed out first.
	originalCaptainMultiplier := 0
	captainIdx := -1
	viceIdx := -1
	for idx, pick := range adjusted {
		if pick.IsCaptain {
			captainIdx = idx
			originalCaptainMultiplier = pick.Multiplier
		}
		if pick.IsViceCaptain {
			viceIdx = idx
		}
	}

	fixtureByTeam := fixture.MapByTeam(fixtures)
	eligibilityByElement := make(map[int]Eligibility, len(adjusted))
	for _, pick := range adjusted {
		if state, ok := ResolveEligibility(pick, players, elements, fixtureByTeam); ok {
			eligibilityByElement[pick.Element] = state
		}
	}

	starterIdxs := make([]int, 0, entry.StartingSize)
	benchIdxs := make([]int, 0, entry.SquadSize-entry.StartingSize)
	for idx, pick := range adjusted {
		if pick.IsStarter() {
			starterIdxs = append(starterIdxs, idx)
		} else {
			benchIdxs = append(benchIdxs, idx)
		}
	}
	sort.Slice(starterIdxs, func(i, j int) bool {
		return adjusted[starterIdxs[i]].Position < adjusted[starterIdxs[j]].Position
	})
	// Bench order 12..15 is the canonical substitution priority.
	sort.Slice(benchIdxs, func(i, j int) bool {
		return adjusted[benchIdxs[i]].Position < adjusted[benchIdxs[j]].Position
	})

	usedBench := make(map[int]struct{}, len(benchIdxs))
	for _, starterIdx := range starterIdxs {
		starter := adjusted[starterIdx]
		state, ok := eligibilityByElement[starter.Element]
		if !ok || !state.FixtureComplete || state.Played {
			continue
		}

		counts := formation.CountActive(adjusted, players)
		for _, benchIdx := range benchIdxs {
			candidate := adjusted[benchIdx]
			if _, used := usedBench[candidate.Element]; used {
				continue
			}
			candidateState, ok := eligibilityByElement[candidate.Element]
			if !ok || !candidateState.FixtureComplete || !candidateState.Played {
				continue
			}
			if !formation.CanReplace(state.Position, candidateState.Position, counts) {
				continue
			}

			adjusted[starterIdx].Multiplier = 0
			adjusted[benchIdx].Multiplier = 1
			usedBench[candidate.Element] = struct{}{}
			result.Substitutions = append(result.Substitutions, Substitution{
				Out: SubstitutionSide{
					Element:      starter.Element,
					PickPosition: starter.Position,
					Position:     state.Position,
					Name:         state.Name,
				},
				In: SubstitutionSide{
					Element:      candidate.Element,
					PickPosition: candidate.Position,
					Position:     candidateState.Position,
					Name:         candidateState.Name,
				},
			})
			break
		}
		// No eligible bench player leaves this starter untouched and never
		// blocks later swaps.
	}

	if captainIdx >= 0 && viceIdx >= 0 {
		captainState, capOK := eligibilityByElement[adjusted[captainIdx].Element]
		viceState, viceOK := eligibilityByElement[adjusted[viceIdx].Element]
		if capOK && viceOK &&
			captainState.FixtureComplete && !captainState.Played &&
			viceState.FixtureComplete && viceState.Played {
			adjusted[viceIdx].Multiplier = originalCaptainMultiplier
			if adjusted[captainIdx].Multiplier > 1 {
				adjusted[captainIdx].Multiplier = 1
			}
			result.CaptainPromoted = true
			result.OriginalCaptainID = adjusted[captainIdx].Element
		}
	}

	return result
}
