package entry

import "context"

// Repository reads manager pick snapshots.
type Repository interface {
	GetByEntryAndEvent(ctx context.Context, entryID, event int) (Picks, bool, error)
}

// Writer stores one manager's picks for a gameweek.
type Writer interface {
	Upsert(ctx context.Context, picks Picks) error
}
