package entry

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSquadSize     = errors.New("invalid squad size")
	ErrInvalidSquadPosition = errors.New("invalid squad position")
	ErrDuplicatePlayer      = errors.New("duplicate player in squad")
	ErrCaptainCount         = errors.New("squad must have exactly one captain")
	ErrViceCaptainCount     = errors.New("squad must have exactly one vice-captain")
	ErrInvalidMultiplier    = errors.New("invalid pick multiplier")
)

const (
	// SquadSize is the full selection: 11 starters plus 4 bench players.
	SquadSize = 15
	// StartingSize is the number of squad positions that score by default.
	StartingSize = 11
)

// Chip names carried on a gameweek selection.
const (
	ChipTripleCaptain = "3xc"
	ChipBenchBoost    = "bboost"
)

// Pick is one of the 15 entries in a manager's gameweek selection.
// Position 1-11 is the starting XI, 12-15 the bench in substitution
// priority order. Multiplier 0 means benched, 1 normal, 2 captain,
// 3 triple-captain.
type Pick struct {
	Element       int
	Position      int
	Multiplier    int
	IsCaptain     bool
	IsViceCaptain bool
}

// IsStarter reports whether the pick occupies a starting XI slot.
func (p Pick) IsStarter() bool {
	return p.Position <= StartingSize
}

// Picks is a manager entry's selection for one gameweek, as supplied by the
// upstream snapshot. TransfersCost is the points hit already committed for
// this gameweek's transfers.
type Picks struct {
	EntryID       int
	Event         int
	ActiveChip    string
	TransfersCost int
	Picks         []Pick
}

func (p Picks) Validate() error {
	if p.EntryID <= 0 {
		return fmt.Errorf("entry id must be greater than zero")
	}
	if p.Event <= 0 {
		return fmt.Errorf("event must be greater than zero")
	}
	if len(p.Picks) != SquadSize {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidSquadSize, SquadSize, len(p.Picks))
	}

	elementSet := make(map[int]struct{}, len(p.Picks))
	positionSet := make(map[int]struct{}, len(p.Picks))
	captains := 0
	viceCaptains := 0

	for _, pick := range p.Picks {
		if pick.Element <= 0 {
			return fmt.Errorf("pick element id must be greater than zero")
		}
		if pick.Position < 1 || pick.Position > SquadSize {
			return fmt.Errorf("%w: %d", ErrInvalidSquadPosition, pick.Position)
		}
		if pick.Multiplier < 0 || pick.Multiplier > 3 {
			return fmt.Errorf("%w: %d", ErrInvalidMultiplier, pick.Multiplier)
		}
		if _, exists := elementSet[pick.Element]; exists {
			return fmt.Errorf("%w: element=%d", ErrDuplicatePlayer, pick.Element)
		}
		elementSet[pick.Element] = struct{}{}
		if _, exists := positionSet[pick.Position]; exists {
			return fmt.Errorf("%w: position %d used twice", ErrInvalidSquadPosition, pick.Position)
		}
		positionSet[pick.Position] = struct{}{}

		if pick.IsCaptain {
			captains++
		}
		if pick.IsViceCaptain {
			viceCaptains++
		}
	}

	if captains != 1 {
		return fmt.Errorf("%w: got %d", ErrCaptainCount, captains)
	}
	if viceCaptains != 1 {
		return fmt.Errorf("%w: got %d", ErrViceCaptainCount, viceCaptains)
	}

	return nil
}
