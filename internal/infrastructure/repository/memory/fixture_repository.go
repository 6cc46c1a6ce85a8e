package memory

import (
	"context"
	"sync"

	"github.com/fplhub/fpl-live/internal/domain/fixture"
)

type FixtureRepository struct {
	mu      sync.RWMutex
	byEvent map[int][]fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	byEvent := make(map[int][]fixture.Fixture)
	for _, item := range fixtures {
		byEvent[item.Event] = append(byEvent[item.Event], item)
	}

	return &FixtureRepository{byEvent: byEvent}
}

func (r *FixtureRepository) ListByEvent(_ context.Context, event int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byEvent[event]
	out := make([]fixture.Fixture, len(items))
	copy(out, items)
	return out, nil
}

func (r *FixtureRepository) ReplaceByEvent(_ context.Context, event int, fixtures []fixture.Fixture) error {
	next := make([]fixture.Fixture, len(fixtures))
	copy(next, fixtures)

	r.mu.Lock()
	r.byEvent[event] = next
	r.mu.Unlock()
	return nil
}
