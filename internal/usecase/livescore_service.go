package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/fplhub/fpl-live/internal/domain/autosubs"
	"github.com/fplhub/fpl-live/internal/domain/bonus"
	"github.com/fplhub/fpl-live/internal/domain/entry"
	"github.com/fplhub/fpl-live/internal/domain/fixture"
	"github.com/fplhub/fpl-live/internal/domain/live"
	"github.com/fplhub/fpl-live/internal/domain/player"
	"github.com/fplhub/fpl-live/internal/domain/team"
	"github.com/fplhub/fpl-live/internal/platform/logging"
)

const bonusPoolMaxGoroutines = 4

// GameweekScore is the net live-points summary for one manager gameweek.
type GameweekScore struct {
	BasePoints       int
	ProvisionalBonus int
	TotalPoints      int
	HitsCost         int
	NetPoints        int
}

// PickScore is the per-pick breakdown row backing the live summary view.
type PickScore struct {
	Element          int
	Name             string
	Position         player.Position
	PickPosition     int
	Multiplier       int
	IsCaptain        bool
	IsViceCaptain    bool
	Points           int
	ProvisionalBonus int
	CountedPoints    int
}

// EntryLiveSummary is the full live view for one manager entry.
type EntryLiveSummary struct {
	EntryID    int
	Event      int
	ActiveChip string
	Score      GameweekScore
	Picks      []PickScore
	AutoSubs   *autosubs.Result
}

// BonusAward is one row of a fixture's provisional bonus standing.
type BonusAward struct {
	Element int
	Name    string
	BPS     int
	Bonus   int
}

// FixtureBonusView is the provisional bonus state of one fixture.
type FixtureBonusView struct {
	FixtureID   int
	HomeTeam    string
	AwayTeam    string
	Minutes     int
	Finished    bool
	InWindow    bool
	Provisional []BonusAward
}

type LiveScoreService struct {
	playerRepo  player.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	liveRepo    live.Repository
	entryRepo   entry.Repository
	logger      *logging.Logger
}

func NewLiveScoreService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	liveRepo live.Repository,
	entryRepo entry.Repository,
	logger *logging.Logger,
) *LiveScoreService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LiveScoreService{
		playerRepo:  playerRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		liveRepo:    liveRepo,
		entryRepo:   entryRepo,
		logger:      logger,
	}
}

// EntryLive computes the live gameweek summary for one manager entry,
// optionally applying the auto-substitution projection first.
func (s *LiveScoreService) EntryLive(ctx context.Context, event, entryID int, withAutoSubs bool) (EntryLiveSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveScoreService.EntryLive")
	defer span.End()

	if event <= 0 || entryID <= 0 {
		return EntryLiveSummary{}, fmt.Errorf("%w: event and entry id must be greater than zero", ErrInvalidInput)
	}

	picks, exists, err := s.entryRepo.GetByEntryAndEvent(ctx, entryID, event)
	if err != nil {
		return EntryLiveSummary{}, fmt.Errorf("get picks entry=%d event=%d: %w", entryID, event, err)
	}
	if !exists {
		return EntryLiveSummary{}, fmt.Errorf("%w: no picks for entry=%d event=%d", ErrNotFound, entryID, event)
	}

	elements, err := s.liveRepo.MapByEvent(ctx, event)
	if err != nil {
		return EntryLiveSummary{}, fmt.Errorf("map live elements event=%d: %w", event, err)
	}
	fixtures, err := s.fixtureRepo.ListByEvent(ctx, event)
	if err != nil {
		return EntryLiveSummary{}, fmt.Errorf("list fixtures event=%d: %w", event, err)
	}
	players, err := s.playerRepo.MapByID(ctx)
	if err != nil {
		return EntryLiveSummary{}, fmt.Errorf("map players: %w", err)
	}

	provisional := s.provisionalBonus(ctx, fixtures, elements)

	effective := picks.Picks
	var autoResult *autosubs.Result
	if withAutoSubs {
		result := autosubs.Apply(picks.Picks, players, elements, fixtures)
		autoResult = &result
		effective = result.Picks
	}

	summary := EntryLiveSummary{
		EntryID:    entryID,
		Event:      event,
		ActiveChip: picks.ActiveChip,
		Score:      scoreGameweek(effective, elements, provisional, picks.TransfersCost),
		Picks:      buildPickScores(effective, players, elements, provisional),
		AutoSubs:   autoResult,
	}

	return summary, nil
}

// EntryAutoSubs returns only the auto-substitution projection for an entry.
func (s *LiveScoreService) EntryAutoSubs(ctx context.Context, event, entryID int) (autosubs.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveScoreService.EntryAutoSubs")
	defer span.End()

	summary, err := s.EntryLive(ctx, event, entryID, true)
	if err != nil {
		return autosubs.Result{}, err
	}
	return *summary.AutoSubs, nil
}

// FixtureBonus returns the provisional bonus standing of every fixture in the
// gameweek, ranked by BPS within each fixture.
func (s *LiveScoreService) FixtureBonus(ctx context.Context, event int) ([]FixtureBonusView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveScoreService.FixtureBonus")
	defer span.End()

	if event <= 0 {
		return nil, fmt.Errorf("%w: event must be greater than zero", ErrInvalidInput)
	}

	fixtures, err := s.fixtureRepo.ListByEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("list fixtures event=%d: %w", event, err)
	}
	elements, err := s.liveRepo.MapByEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("map live elements event=%d: %w", event, err)
	}
	players, err := s.playerRepo.MapByID(ctx)
	if err != nil {
		return nil, fmt.Errorf("map players: %w", err)
	}

	teamNameByID := make(map[int]string)
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	for _, item := range teams {
		teamNameByID[item.ID] = item.Name
	}

	entriesByFixture := bpsEntriesByFixture(fixtures, elements)

	out := make([]FixtureBonusView, 0, len(fixtures))
	for _, item := range fixtures {
		view := FixtureBonusView{
			FixtureID: item.ID,
			HomeTeam:  teamNameByID[item.HomeTeamID],
			AwayTeam:  teamNameByID[item.AwayTeamID],
			Minutes:   item.Minutes,
			Finished:  item.Finished,
			InWindow:  item.InBonusWindow(),
		}

		if view.InWindow {
			entries := entriesByFixture[item.ID]
			awarded := bonus.Provisional(entries)
			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].BPS > entries[j].BPS
			})
			for _, candidate := range entries {
				award, ok := awarded[candidate.Element]
				if !ok {
					continue
				}
				name := ""
				if p, found := players[candidate.Element]; found {
					name = p.Name
				}
				view.Provisional = append(view.Provisional, BonusAward{
					Element: candidate.Element,
					Name:    name,
					BPS:     candidate.BPS,
					Bonus:   award,
				})
			}
		}

		out = append(out, view)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FixtureID < out[j].FixtureID
	})
	return out, nil
}

// provisionalBonus builds the gameweek-wide element→bonus estimate. Each
// qualifying fixture is ranked independently; merging is safe because an
// element appears in at most one fixture per gameweek snapshot.
func (s *LiveScoreService) provisionalBonus(ctx context.Context, fixtures []fixture.Fixture, elements map[int]live.Element) map[int]int {
	_, span := startUsecaseSpan(ctx, "usecase.LiveScoreService.provisionalBonus")
	defer span.End()

	entriesByFixture := bpsEntriesByFixture(fixtures, elements)
	if len(entriesByFixture) == 0 {
		return map[int]int{}
	}

	workers := pool.NewWithResults[map[int]int]().WithMaxGoroutines(bonusPoolMaxGoroutines)
	for _, item := range fixtures {
		if !item.InBonusWindow() {
			continue
		}
		entries := entriesByFixture[item.ID]
		if len(entries) == 0 {
			continue
		}
		workers.Go(func() map[int]int {
			return bonus.Provisional(entries)
		})
	}

	merged := make(map[int]int)
	for _, awarded := range workers.Wait() {
		for element, value := range awarded {
			merged[element] = value
		}
	}
	return merged
}

// bpsEntriesByFixture gathers (element, bps) pairs per qualifying fixture by
// following each live element's explain references.
func bpsEntriesByFixture(fixtures []fixture.Fixture, elements map[int]live.Element) map[int][]bonus.BPSEntry {
	inWindow := make(map[int]struct{}, len(fixtures))
	for _, item := range fixtures {
		if item.InBonusWindow() {
			inWindow[item.ID] = struct{}{}
		}
	}
	if len(inWindow) == 0 {
		return map[int][]bonus.BPSEntry{}
	}

	out := make(map[int][]bonus.BPSEntry, len(inWindow))
	for _, element := range elements {
		for _, block := range element.Explain {
			if _, ok := inWindow[block.Fixture]; !ok {
				continue
			}
			out[block.Fixture] = append(out[block.Fixture], bonus.BPSEntry{
				Element: element.ID,
				BPS:     element.Stats.BPS,
			})
		}
	}

	// Deterministic input order for the per-fixture ranking.
	for _, entries := range out {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Element < entries[j].Element
		})
	}
	return out
}

// scoreGameweek aggregates net live points over the (possibly auto-sub
// adjusted) picks. Provisional bonus only tops up elements whose official
// bonus has not been confirmed yet.
func scoreGameweek(picks []entry.Pick, elements map[int]live.Element, provisional map[int]int, hitsCost int) GameweekScore {
	score := GameweekScore{HitsCost: hitsCost}

	for _, pick := range picks {
		if pick.Multiplier == 0 {
			continue
		}
		element, ok := elements[pick.Element]
		if !ok {
			continue
		}
		score.BasePoints += element.Stats.TotalPoints * pick.Multiplier
		if element.Stats.Bonus == 0 {
			score.ProvisionalBonus += provisional[pick.Element] * pick.Multiplier
		}
	}

	score.TotalPoints = score.BasePoints + score.ProvisionalBonus
	score.NetPoints = score.TotalPoints - score.HitsCost
	return score
}

func buildPickScores(picks []entry.Pick, players map[int]player.Player, elements map[int]live.Element, provisional map[int]int) []PickScore {
	ordered := append([]entry.Pick(nil), picks...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	out := make([]PickScore, 0, len(ordered))
	for _, pick := range ordered {
		row := PickScore{
			Element:       pick.Element,
			PickPosition:  pick.Position,
			Multiplier:    pick.Multiplier,
			IsCaptain:     pick.IsCaptain,
			IsViceCaptain: pick.IsViceCaptain,
		}
		if item, ok := players[pick.Element]; ok {
			row.Name = item.Name
			row.Position = item.Position
		}
		if element, ok := elements[pick.Element]; ok {
			row.Points = element.Stats.TotalPoints
			if element.Stats.Bonus == 0 {
				row.ProvisionalBonus = provisional[pick.Element]
			}
		}
		row.CountedPoints = (row.Points + row.ProvisionalBonus) * pick.Multiplier
		out = append(out, row)
	}

	return out
}
