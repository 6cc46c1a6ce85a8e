package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"

	"github.com/fplhub/fpl-live/internal/domain/entry"
	"github.com/fplhub/fpl-live/internal/domain/fixture"
	"github.com/fplhub/fpl-live/internal/domain/league"
	"github.com/fplhub/fpl-live/internal/domain/live"
	"github.com/fplhub/fpl-live/internal/domain/player"
	"github.com/fplhub/fpl-live/internal/domain/team"
	"github.com/fplhub/fpl-live/internal/platform/cache"
	"github.com/fplhub/fpl-live/internal/platform/logging"
)

// IngestionService replaces in-memory snapshots with externally fetched data
// and invalidates any computed views derived from them.
type IngestionService struct {
	playerWriter  player.Writer
	teamWriter    team.Writer
	fixtureWriter fixture.Writer
	liveWriter    live.Writer
	entryWriter   entry.Writer
	leagueWriter  league.Writer
	store         *cache.Store
	logger        *logging.Logger
}

func NewIngestionService(
	playerWriter player.Writer,
	teamWriter team.Writer,
	fixtureWriter fixture.Writer,
	liveWriter live.Writer,
	entryWriter entry.Writer,
	leagueWriter league.Writer,
	store *cache.Store,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &IngestionService{
		playerWriter:  playerWriter,
		teamWriter:    teamWriter,
		fixtureWriter: fixtureWriter,
		liveWriter:    liveWriter,
		entryWriter:   entryWriter,
		leagueWriter:  leagueWriter,
		store:         store,
		logger:        logger,
	}
}

// ReplaceBootstrap swaps the full player and team snapshot.
func (s *IngestionService) ReplaceBootstrap(ctx context.Context, players []player.Player, teams []team.Team) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplaceBootstrap")
	defer span.End()

	if len(players) == 0 {
		return crerr.Mark(crerr.New("bootstrap snapshot has no players"), ErrInvalidInput)
	}
	if len(teams) == 0 {
		return crerr.Mark(crerr.New("bootstrap snapshot has no teams"), ErrInvalidInput)
	}
	for _, item := range players {
		if err := item.Validate(); err != nil {
			return crerr.Mark(crerr.Wrapf(err, "player %d", item.ID), ErrInvalidInput)
		}
	}

	if err := s.teamWriter.Replace(ctx, teams); err != nil {
		return fmt.Errorf("replace teams: %w", err)
	}
	if err := s.playerWriter.Replace(ctx, players); err != nil {
		return fmt.Errorf("replace players: %w", err)
	}

	s.invalidate(ctx)
	s.logger.InfoContext(ctx, "bootstrap snapshot replaced", "players", len(players), "teams", len(teams))
	return nil
}

// ReplaceFixtures swaps the fixture snapshot for one gameweek.
func (s *IngestionService) ReplaceFixtures(ctx context.Context, event int, fixtures []fixture.Fixture) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplaceFixtures")
	defer span.End()

	if event <= 0 {
		return crerr.Mark(crerr.New("event must be greater than zero"), ErrInvalidInput)
	}
	for _, item := range fixtures {
		if item.Event != event {
			return crerr.Mark(crerr.Newf("fixture %d belongs to event %d, snapshot is for event %d", item.ID, item.Event, event), ErrInvalidInput)
		}
	}

	if err := s.fixtureWriter.ReplaceByEvent(ctx, event, fixtures); err != nil {
		return fmt.Errorf("replace fixtures event=%d: %w", event, err)
	}

	s.invalidate(ctx)
	s.logger.InfoContext(ctx, "fixture snapshot replaced", "event", event, "fixtures", len(fixtures))
	return nil
}

// ReplaceLive swaps the live element snapshot for one gameweek.
func (s *IngestionService) ReplaceLive(ctx context.Context, event int, elements []live.Element) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplaceLive")
	defer span.End()

	if event <= 0 {
		return crerr.Mark(crerr.New("event must be greater than zero"), ErrInvalidInput)
	}
	seen := make(map[int]struct{}, len(elements))
	for _, item := range elements {
		if item.ID <= 0 {
			return crerr.Mark(crerr.New("live element id must be greater than zero"), ErrInvalidInput)
		}
		if _, dup := seen[item.ID]; dup {
			return crerr.Mark(crerr.Newf("duplicate live element %d", item.ID), ErrInvalidInput)
		}
		seen[item.ID] = struct{}{}
	}

	if err := s.liveWriter.ReplaceByEvent(ctx, event, elements); err != nil {
		return fmt.Errorf("replace live elements event=%d: %w", event, err)
	}

	s.invalidate(ctx)
	s.logger.InfoContext(ctx, "live snapshot replaced", "event", event, "elements", len(elements))
	return nil
}

// UpsertEntryPicks stores one manager's gameweek picks.
func (s *IngestionService) UpsertEntryPicks(ctx context.Context, picks entry.Picks) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.UpsertEntryPicks")
	defer span.End()

	if picks.EntryID <= 0 || picks.Event <= 0 {
		return crerr.Mark(crerr.New("entry id and event must be greater than zero"), ErrInvalidInput)
	}
	if err := picks.Validate(); err != nil {
		return crerr.Mark(crerr.Wrapf(err, "picks entry=%d event=%d", picks.EntryID, picks.Event), ErrInvalidInput)
	}

	if err := s.entryWriter.Upsert(ctx, picks); err != nil {
		return fmt.Errorf("upsert picks entry=%d event=%d: %w", picks.EntryID, picks.Event, err)
	}

	s.invalidate(ctx)
	s.logger.InfoContext(ctx, "entry picks upserted", "entry_id", picks.EntryID, "event", picks.Event)
	return nil
}

// UpsertLeague stores one league and its full membership.
func (s *IngestionService) UpsertLeague(ctx context.Context, item league.League, members []league.Member) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.UpsertLeague")
	defer span.End()

	if err := item.Validate(); err != nil {
		return crerr.Mark(err, ErrInvalidInput)
	}
	for _, member := range members {
		if err := member.Validate(); err != nil {
			return crerr.Mark(crerr.Wrapf(err, "league %d", item.ID), ErrInvalidInput)
		}
	}

	if err := s.leagueWriter.Upsert(ctx, item, members); err != nil {
		return fmt.Errorf("upsert league %d: %w", item.ID, err)
	}

	s.invalidate(ctx)
	s.logger.InfoContext(ctx, "league snapshot upserted", "league_id", item.ID, "members", len(members))
	return nil
}

// invalidate drops computed standings so the next read reflects the new data.
func (s *IngestionService) invalidate(ctx context.Context) {
	if s.store == nil {
		return
	}
	s.store.DeletePrefix(ctx, standingsCachePrefix)
}
