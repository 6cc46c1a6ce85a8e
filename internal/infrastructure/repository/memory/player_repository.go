package memory

import (
	"context"
	"sync"

	"github.com/fplhub/fpl-live/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	byID    map[int]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	repo := &PlayerRepository{}
	repo.store(players)
	return repo
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, len(r.players))
	copy(out, r.players)
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) MapByID(_ context.Context) (map[int]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int]player.Player, len(r.byID))
	for id, item := range r.byID {
		out[id] = item
	}
	return out, nil
}

func (r *PlayerRepository) Replace(_ context.Context, players []player.Player) error {
	r.store(players)
	return nil
}

func (r *PlayerRepository) store(players []player.Player) {
	next := make([]player.Player, len(players))
	copy(next, players)
	byID := make(map[int]player.Player, len(next))
	for _, item := range next {
		byID[item.ID] = item
	}

	r.mu.Lock()
	r.players = next
	r.byID = byID
	r.mu.Unlock()
}
