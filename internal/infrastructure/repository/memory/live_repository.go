package memory

import (
	"context"
	"sync"

	"github.com/fplhub/fpl-live/internal/domain/live"
)

type LiveRepository struct {
	mu      sync.RWMutex
	byEvent map[int][]live.Element
}

func NewLiveRepository(elementsByEvent map[int][]live.Element) *LiveRepository {
	byEvent := make(map[int][]live.Element, len(elementsByEvent))
	for event, elements := range elementsByEvent {
		next := make([]live.Element, len(elements))
		copy(next, elements)
		byEvent[event] = next
	}

	return &LiveRepository{byEvent: byEvent}
}

func (r *LiveRepository) ListByEvent(_ context.Context, event int) ([]live.Element, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byEvent[event]
	out := make([]live.Element, len(items))
	copy(out, items)
	return out, nil
}

func (r *LiveRepository) MapByEvent(_ context.Context, event int) (map[int]live.Element, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byEvent[event]
	out := make(map[int]live.Element, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out, nil
}

func (r *LiveRepository) ReplaceByEvent(_ context.Context, event int, elements []live.Element) error {
	next := make([]live.Element, len(elements))
	copy(next, elements)

	r.mu.Lock()
	r.byEvent[event] = next
	r.mu.Unlock()
	return nil
}
