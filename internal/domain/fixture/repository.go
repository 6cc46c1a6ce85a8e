package fixture

import "context"

// Repository reads per-gameweek fixture snapshots.
type Repository interface {
	ListByEvent(ctx context.Context, event int) ([]Fixture, error)
}

// Writer replaces the fixture snapshot for one gameweek.
type Writer interface {
	ReplaceByEvent(ctx context.Context, event int, fixtures []Fixture) error
}
