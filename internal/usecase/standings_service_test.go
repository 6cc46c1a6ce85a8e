package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fplhub/fpl-live/internal/domain/league"
	"github.com/fplhub/fpl-live/internal/platform/cache"
)

type stubLeagueRepository struct {
	byID    map[int]league.League
	members map[int][]league.Member
}

func (s *stubLeagueRepository) GetByID(ctx context.Context, leagueID int) (league.League, bool, error) {
	item, ok := s.byID[leagueID]
	return item, ok, nil
}

func (s *stubLeagueRepository) ListMembers(ctx context.Context, leagueID int) ([]league.Member, error) {
	return s.members[leagueID], nil
}

type stubScorer struct {
	netPoints map[int]int
	missing   map[int]struct{}
	calls     atomic.Int64
}

func (s *stubScorer) EntryLive(ctx context.Context, event, entryID int, withAutoSubs bool) (EntryLiveSummary, error) {
	s.calls.Add(1)
	if _, gone := s.missing[entryID]; gone {
		return EntryLiveSummary{}, fmt.Errorf("%w: no picks for entry=%d event=%d", ErrNotFound, entryID, event)
	}
	net, ok := s.netPoints[entryID]
	if !ok {
		return EntryLiveSummary{}, errors.New("unexpected entry")
	}
	return EntryLiveSummary{
		EntryID: entryID,
		Event:   event,
		Score:   GameweekScore{TotalPoints: net, NetPoints: net},
	}, nil
}

func TestStandingsService_LiveStandings_RanksWithSharedTies(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepository{
		byID: map[int]league.League{9001: {ID: 9001, Name: "Office League"}},
		members: map[int][]league.Member{
			9001: {
				{EntryID: 1, EntryName: "Zonal Marking", ManagerName: "Dana"},
				{EntryID: 2, EntryName: "Bench Boost FC", ManagerName: "Ari"},
				{EntryID: 3, EntryName: "Alewives", ManagerName: "Robin"},
				{EntryID: 4, EntryName: "Wildcards", ManagerName: "Sam"},
			},
		},
	}
	scorer := &stubScorer{netPoints: map[int]int{1: 50, 2: 60, 3: 50, 4: 40}}

	service := NewStandingsService(repo, scorer, nil, 2, nil)

	got, err := service.LiveStandings(context.Background(), 9001, 7)
	if err != nil {
		t.Fatalf("LiveStandings error: %v", err)
	}

	if got.LeagueName != "Office League" || got.Event != 7 {
		t.Fatalf("unexpected header: %+v", got)
	}
	if len(got.Rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(got.Rows))
	}

	if got.Rows[0].EntryID != 2 || got.Rows[0].Rank != 1 {
		t.Fatalf("unexpected leader: %+v", got.Rows[0])
	}
	// Entries 1 and 3 tie on 50 and share rank 2, ordered by entry name.
	if got.Rows[1].EntryID != 3 || got.Rows[1].Rank != 2 {
		t.Fatalf("unexpected second row: %+v", got.Rows[1])
	}
	if got.Rows[2].EntryID != 1 || got.Rows[2].Rank != 2 {
		t.Fatalf("unexpected third row: %+v", got.Rows[2])
	}
	if got.Rows[3].EntryID != 4 || got.Rows[3].Rank != 4 {
		t.Fatalf("unexpected fourth row: %+v", got.Rows[3])
	}
}

func TestStandingsService_LiveStandings_SkipsMembersWithoutPicks(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepository{
		byID: map[int]league.League{9001: {ID: 9001, Name: "Office League"}},
		members: map[int][]league.Member{
			9001: {
				{EntryID: 1, EntryName: "Zonal Marking"},
				{EntryID: 2, EntryName: "Late Joiner"},
			},
		},
	}
	scorer := &stubScorer{
		netPoints: map[int]int{1: 55},
		missing:   map[int]struct{}{2: {}},
	}

	service := NewStandingsService(repo, scorer, nil, 4, nil)

	got, err := service.LiveStandings(context.Background(), 9001, 7)
	if err != nil {
		t.Fatalf("LiveStandings error: %v", err)
	}
	if len(got.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(got.Rows))
	}
	if got.Rows[0].EntryID != 1 || got.Rows[0].Rank != 1 {
		t.Fatalf("unexpected row: %+v", got.Rows[0])
	}
}

func TestStandingsService_LiveStandings_Errors(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepository{byID: map[int]league.League{}}
	service := NewStandingsService(repo, &stubScorer{}, nil, 4, nil)

	if _, err := service.LiveStandings(context.Background(), 0, 7); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.LiveStandings(context.Background(), 9001, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.LiveStandings(context.Background(), 9001, 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown league, got %v", err)
	}
}

func TestStandingsService_LiveStandings_CachesComputedTable(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepository{
		byID: map[int]league.League{9001: {ID: 9001, Name: "Office League"}},
		members: map[int][]league.Member{
			9001: {{EntryID: 1, EntryName: "Zonal Marking"}},
		},
	}
	scorer := &stubScorer{netPoints: map[int]int{1: 50}}
	store := cache.NewStore(time.Minute)

	service := NewStandingsService(repo, scorer, store, 4, nil)

	first, err := service.LiveStandings(context.Background(), 9001, 7)
	if err != nil {
		t.Fatalf("LiveStandings error: %v", err)
	}
	second, err := service.LiveStandings(context.Background(), 9001, 7)
	if err != nil {
		t.Fatalf("LiveStandings error: %v", err)
	}

	if scorer.calls.Load() != 1 {
		t.Fatalf("scorer calls = %d, want 1 (second read served from cache)", scorer.calls.Load())
	}
	if first.Rows[0] != second.Rows[0] {
		t.Fatalf("cached table diverged: %+v vs %+v", first.Rows[0], second.Rows[0])
	}

	// Dropping the standings prefix forces a recompute.
	store.DeletePrefix(context.Background(), "standings:")
	if _, err := service.LiveStandings(context.Background(), 9001, 7); err != nil {
		t.Fatalf("LiveStandings error: %v", err)
	}
	if scorer.calls.Load() != 2 {
		t.Fatalf("scorer calls = %d, want 2 after invalidation", scorer.calls.Load())
	}
}
