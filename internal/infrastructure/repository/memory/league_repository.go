package memory

import (
	"context"
	"sync"

	"github.com/fplhub/fpl-live/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	leagues map[int]league.League
	members map[int][]league.Member
}

func NewLeagueRepository(leagues []league.League, membersByLeague map[int][]league.Member) *LeagueRepository {
	byID := make(map[int]league.League, len(leagues))
	for _, item := range leagues {
		byID[item.ID] = item
	}
	members := make(map[int][]league.Member, len(membersByLeague))
	for leagueID, items := range membersByLeague {
		next := make([]league.Member, len(items))
		copy(next, items)
		members[leagueID] = next
	}

	return &LeagueRepository{leagues: byID, members: members}
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.leagues[leagueID]
	return item, ok, nil
}

func (r *LeagueRepository) ListMembers(_ context.Context, leagueID int) ([]league.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.members[leagueID]
	out := make([]league.Member, len(items))
	copy(out, items)
	return out, nil
}

func (r *LeagueRepository) Upsert(_ context.Context, item league.League, members []league.Member) error {
	next := make([]league.Member, len(members))
	copy(next, members)

	r.mu.Lock()
	r.leagues[item.ID] = item
	r.members[item.ID] = next
	r.mu.Unlock()
	return nil
}
