package formation

import (
	"github.com/fplhub/fpl-live/internal/domain/entry"
	"github.com/fplhub/fpl-live/internal/domain/player"
)

// Legal on-pitch formation bounds. A valid starting XI always fields exactly
// one goalkeeper; outfield counts may flex within these limits.
const (
	GoalkeeperCount = 1
	DefenderMin     = 3
	DefenderMax     = 5
	MidfielderMin   = 2
	MidfielderMax   = 5
	ForwardMin      = 1
	ForwardMax      = 3
)

// Counts holds the number of active players per position.
type Counts map[player.Position]int

// CountActive tallies the active formation from the current pick state.
// Active means a nonzero multiplier; picks whose player is unknown are
// skipped rather than guessed.
func CountActive(picks []entry.Pick, players map[int]player.Player) Counts {
	counts := Counts{
		player.PositionGoalkeeper: 0,
		player.PositionDefender:   0,
		player.PositionMidfielder: 0,
		player.PositionForward:    0,
	}
	for _, pick := range picks {
		if pick.Multiplier == 0 {
			continue
		}
		item, ok := players[pick.Element]
		if !ok {
			continue
		}
		counts[item.Position]++
	}

	return counts
}

// CanReplace reports whether substituting an outgoing player of position out
// with an incoming player of position in keeps the formation legal.
// Goalkeepers may only ever swap with goalkeepers, regardless of counts.
func CanReplace(out, in player.Position, counts Counts) bool {
	if out == player.PositionGoalkeeper || in == player.PositionGoalkeeper {
		return out == in
	}

	simulated := Counts{}
	for position, count := range counts {
		simulated[position] = count
	}
	simulated[out]--
	simulated[in]++

	return legal(simulated)
}

func legal(counts Counts) bool {
	if counts[player.PositionGoalkeeper] != GoalkeeperCount {
		return false
	}
	if counts[player.PositionDefender] < DefenderMin || counts[player.PositionDefender] > DefenderMax {
		return false
	}
	if counts[player.PositionMidfielder] < MidfielderMin || counts[player.PositionMidfielder] > MidfielderMax {
		return false
	}
	if counts[player.PositionForward] < ForwardMin || counts[player.PositionForward] > ForwardMax {
		return false
	}

	return true
}
