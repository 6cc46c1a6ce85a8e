package league

import "context"

// Repository reads mini-league snapshots.
type Repository interface {
	GetByID(ctx context.Context, leagueID int) (League, bool, error)
	ListMembers(ctx context.Context, leagueID int) ([]Member, error)
}

// Writer replaces one league and its membership.
type Writer interface {
	Upsert(ctx context.Context, item League, members []Member) error
}
