package player

import "context"

// Repository reads the bootstrap player snapshot.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID int) (Player, bool, error)
	MapByID(ctx context.Context) (map[int]Player, error)
}

// Writer replaces the bootstrap player snapshot.
type Writer interface {
	Replace(ctx context.Context, players []Player) error
}
