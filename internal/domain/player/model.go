package player

import "fmt"

// Position represents football position categories used in fantasy scoring.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

var positionByElementType = map[int]Position{
	1: PositionGoalkeeper,
	2: PositionDefender,
	3: PositionMidfielder,
	4: PositionForward,
}

// PositionFromElementType maps the bootstrap element_type code (1-4) to a Position.
func PositionFromElementType(elementType int) (Position, bool) {
	position, ok := positionByElementType[elementType]
	return position, ok
}

// Player is one bootstrap element: a selectable Premier League footballer.
type Player struct {
	ID       int
	TeamID   int
	Name     string
	Position Position
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id must be greater than zero")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}
