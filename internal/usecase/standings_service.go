package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/fplhub/fpl-live/internal/domain/league"
	"github.com/fplhub/fpl-live/internal/platform/cache"
	"github.com/fplhub/fpl-live/internal/platform/logging"
)

const (
	defaultStandingsWorkers = 8
	standingsCachePrefix    = "standings:"
)

// entryLiveScorer is the slice of LiveScoreService the standings fan-out needs.
type entryLiveScorer interface {
	EntryLive(ctx context.Context, event, entryID int, withAutoSubs bool) (EntryLiveSummary, error)
}

// StandingRow is one ranked manager in a live league table.
type StandingRow struct {
	Rank        int
	EntryID     int
	EntryName   string
	ManagerName string
	Score       GameweekScore
}

// LeagueStandings is the computed live table for one league gameweek.
type LeagueStandings struct {
	LeagueID   int
	LeagueName string
	Event      int
	Rows       []StandingRow
}

type StandingsService struct {
	leagueRepo league.Repository
	scorer     entryLiveScorer
	store      *cache.Store
	maxWorkers int
	logger     *logging.Logger
}

func NewStandingsService(
	leagueRepo league.Repository,
	scorer entryLiveScorer,
	store *cache.Store,
	maxWorkers int,
	logger *logging.Logger,
) *StandingsService {
	if maxWorkers <= 0 {
		maxWorkers = defaultStandingsWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingsService{
		leagueRepo: leagueRepo,
		scorer:     scorer,
		store:      store,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

// LiveStandings computes the live league table for one gameweek, scoring every
// member entry with auto-substitutions applied. Results are cached until the
// next snapshot ingestion invalidates them.
func (s *StandingsService) LiveStandings(ctx context.Context, leagueID, event int) (LeagueStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.LiveStandings")
	defer span.End()

	if leagueID <= 0 || event <= 0 {
		return LeagueStandings{}, fmt.Errorf("%w: league id and event must be greater than zero", ErrInvalidInput)
	}

	if s.store == nil {
		return s.computeStandings(ctx, leagueID, event)
	}

	key := fmt.Sprintf("%s%d:%d", standingsCachePrefix, leagueID, event)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.computeStandings(ctx, leagueID, event)
	})
	if err != nil {
		return LeagueStandings{}, err
	}

	standings, ok := value.(LeagueStandings)
	if !ok {
		return LeagueStandings{}, fmt.Errorf("unexpected standings cache entry for %s", key)
	}
	return standings, nil
}

func (s *StandingsService) computeStandings(ctx context.Context, leagueID, event int) (LeagueStandings, error) {
	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return LeagueStandings{}, fmt.Errorf("get league %d: %w", leagueID, err)
	}
	if !exists {
		return LeagueStandings{}, fmt.Errorf("%w: league %d", ErrNotFound, leagueID)
	}

	members, err := s.leagueRepo.ListMembers(ctx, leagueID)
	if err != nil {
		return LeagueStandings{}, fmt.Errorf("list members league=%d: %w", leagueID, err)
	}

	standings := LeagueStandings{
		LeagueID:   leagueID,
		LeagueName: item.Name,
		Event:      event,
		Rows:       make([]StandingRow, 0, len(members)),
	}
	if len(members) == 0 {
		return standings, nil
	}

	workerCount := s.maxWorkers
	if workerCount > len(members) {
		workerCount = len(members)
	}

	workers, err := ants.NewPool(workerCount)
	if err != nil {
		return LeagueStandings{}, fmt.Errorf("create standings pool: %w", err)
	}
	defer workers.Release()

	rows := make(chan StandingRow, len(members))
	var wg sync.WaitGroup
	for _, member := range members {
		member := member
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			summary, scoreErr := s.scorer.EntryLive(ctx, event, member.EntryID, true)
			if scoreErr != nil {
				// Members without a scoreable entry drop out of the table
				// instead of failing the whole league.
				if errors.Is(scoreErr, ErrNotFound) {
					s.logger.WarnContext(ctx, "skipping league member without picks",
						"league_id", leagueID, "entry_id", member.EntryID, "event", event)
					return
				}
				s.logger.ErrorContext(ctx, "scoring league member failed",
					"league_id", leagueID, "entry_id", member.EntryID, "event", event, "error", scoreErr)
				return
			}

			rows <- StandingRow{
				EntryID:     member.EntryID,
				EntryName:   member.EntryName,
				ManagerName: member.ManagerName,
				Score:       summary.Score,
			}
		}); err != nil {
			wg.Done()
			return LeagueStandings{}, fmt.Errorf("submit standings task: %w", err)
		}
	}

	wg.Wait()
	close(rows)

	for row := range rows {
		standings.Rows = append(standings.Rows, row)
	}

	rankRows(standings.Rows)
	return standings, nil
}

// rankRows orders rows by net points descending and assigns shared ranks to
// tied scores.
func rankRows(rows []StandingRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score.NetPoints != rows[j].Score.NetPoints {
			return rows[i].Score.NetPoints > rows[j].Score.NetPoints
		}
		if rows[i].EntryName != rows[j].EntryName {
			return rows[i].EntryName < rows[j].EntryName
		}
		return rows[i].EntryID < rows[j].EntryID
	})

	for i := range rows {
		if i > 0 && rows[i].Score.NetPoints == rows[i-1].Score.NetPoints {
			rows[i].Rank = rows[i-1].Rank
			continue
		}
		rows[i].Rank = i + 1
	}
}
