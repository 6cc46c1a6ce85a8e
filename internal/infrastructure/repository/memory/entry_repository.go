package memory

import (
	"context"
	"sync"

	"github.com/fplhub/fpl-live/internal/domain/entry"
)

type pickKey struct {
	entryID int
	event   int
}

type EntryRepository struct {
	mu    sync.RWMutex
	picks map[pickKey]entry.Picks
}

func NewEntryRepository(picks []entry.Picks) *EntryRepository {
	byKey := make(map[pickKey]entry.Picks, len(picks))
	for _, item := range picks {
		byKey[pickKey{entryID: item.EntryID, event: item.Event}] = clonePicks(item)
	}

	return &EntryRepository{picks: byKey}
}

func (r *EntryRepository) GetByEntryAndEvent(_ context.Context, entryID, event int) (entry.Picks, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.picks[pickKey{entryID: entryID, event: event}]
	if !ok {
		return entry.Picks{}, false, nil
	}
	return clonePicks(item), true, nil
}

func (r *EntryRepository) Upsert(_ context.Context, picks entry.Picks) error {
	r.mu.Lock()
	r.picks[pickKey{entryID: picks.EntryID, event: picks.Event}] = clonePicks(picks)
	r.mu.Unlock()
	return nil
}

func clonePicks(item entry.Picks) entry.Picks {
	out := item
	out.Picks = make([]entry.Pick, len(item.Picks))
	copy(out.Picks, item.Picks)
	return out
}
