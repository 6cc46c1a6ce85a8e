package team

import "context"

// Repository reads the bootstrap team snapshot.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID int) (Team, bool, error)
}

// Writer replaces the bootstrap team snapshot.
type Writer interface {
	Replace(ctx context.Context, teams []Team) error
}
