package memory

import (
	"context"
	"sync"

	"github.com/fplhub/fpl-live/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
	byID  map[int]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	repo := &TeamRepository{}
	repo.store(teams)
	return repo
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, len(r.teams))
	copy(out, r.teams)
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[teamID]
	return item, ok, nil
}

func (r *TeamRepository) Replace(_ context.Context, teams []team.Team) error {
	r.store(teams)
	return nil
}

func (r *TeamRepository) store(teams []team.Team) {
	next := make([]team.Team, len(teams))
	copy(next, teams)
	byID := make(map[int]team.Team, len(next))
	for _, item := range next {
		byID[item.ID] = item
	}

	r.mu.Lock()
	r.teams = next
	r.byID = byID
	r.mu.Unlock()
}
