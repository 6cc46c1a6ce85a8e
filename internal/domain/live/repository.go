package live

import "context"

// Repository reads per-gameweek live element snapshots.
type Repository interface {
	ListByEvent(ctx context.Context, event int) ([]Element, error)
	MapByEvent(ctx context.Context, event int) (map[int]Element, error)
}

// Writer replaces the live snapshot for one gameweek.
type Writer interface {
	ReplaceByEvent(ctx context.Context, event int, elements []Element) error
}
