package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/fplhub/fpl-live/internal/domain/entry"
	"github.com/fplhub/fpl-live/internal/domain/fixture"
	"github.com/fplhub/fpl-live/internal/domain/league"
	"github.com/fplhub/fpl-live/internal/domain/live"
	"github.com/fplhub/fpl-live/internal/domain/player"
	"github.com/fplhub/fpl-live/internal/domain/team"
	"github.com/fplhub/fpl-live/internal/usecase"
)

func (h *Handler) IngestBootstrap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestBootstrap")
	defer span.End()

	var req bootstrapSnapshotRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	players := make([]player.Player, 0, len(req.Elements))
	for _, record := range req.Elements {
		position, ok := player.PositionFromElementType(record.ElementType)
		if !ok {
			writeError(ctx, w, fmt.Errorf("%w: element %d has unknown element_type %d", usecase.ErrInvalidInput, record.ID, record.ElementType))
			return
		}
		players = append(players, player.Player{
			ID:       record.ID,
			TeamID:   record.Team,
			Name:     strings.TrimSpace(record.WebName),
			Position: position,
		})
	}
	teams := make([]team.Team, 0, len(req.Teams))
	for _, record := range req.Teams {
		teams = append(teams, team.Team{
			ID:        record.ID,
			Name:      strings.TrimSpace(record.Name),
			ShortName: strings.TrimSpace(record.ShortName),
		})
	}

	if err := h.ingestionService.ReplaceBootstrap(ctx, players, teams); err != nil {
		h.logger.WarnContext(ctx, "ingest bootstrap failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{
		"players": len(players),
		"teams":   len(teams),
	})
}

func (h *Handler) IngestFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestFixtures")
	defer span.End()

	var req fixturesSnapshotRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures := make([]fixture.Fixture, 0, len(req.Fixtures))
	for _, record := range req.Fixtures {
		item, err := fixtureFromRecord(ctx, record)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		fixtures = append(fixtures, item)
	}

	if err := h.ingestionService.ReplaceFixtures(ctx, req.Event, fixtures); err != nil {
		h.logger.WarnContext(ctx, "ingest fixtures failed", "event", req.Event, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"fixtures": len(fixtures)})
}

func (h *Handler) IngestLive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestLive")
	defer span.End()

	var req liveSnapshotRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	elements := make([]live.Element, 0, len(req.Elements))
	for _, record := range req.Elements {
		elements = append(elements, liveElementFromRecord(record))
	}

	if err := h.ingestionService.ReplaceLive(ctx, req.Event, elements); err != nil {
		h.logger.WarnContext(ctx, "ingest live failed", "event", req.Event, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"elements": len(elements)})
}

func (h *Handler) IngestEntryPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestEntryPicks")
	defer span.End()

	var req entryPicksSnapshotRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	picks := entry.Picks{
		EntryID:       req.Entry,
		Event:         req.Event,
		ActiveChip:    strings.TrimSpace(req.ActiveChip),
		TransfersCost: req.EntryHistory.EventTransfersCost,
		Picks:         make([]entry.Pick, 0, len(req.Picks)),
	}
	for _, record := range req.Picks {
		picks.Picks = append(picks.Picks, entry.Pick{
			Element:       record.Element,
			Position:      record.Position,
			Multiplier:    record.Multiplier,
			IsCaptain:     record.IsCaptain,
			IsViceCaptain: record.IsViceCaptain,
		})
	}

	if err := h.ingestionService.UpsertEntryPicks(ctx, picks); err != nil {
		h.logger.WarnContext(ctx, "ingest picks failed", "entry_id", req.Entry, "event", req.Event, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{
		"entry": req.Entry,
		"event": req.Event,
	})
}

func (h *Handler) IngestLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestLeague")
	defer span.End()

	var req leagueSnapshotRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	members := make([]league.Member, 0, len(req.Members))
	for _, record := range req.Members {
		members = append(members, league.Member{
			EntryID:     record.Entry,
			EntryName:   strings.TrimSpace(record.EntryName),
			ManagerName: strings.TrimSpace(record.PlayerName),
		})
	}

	item := league.League{ID: req.League.ID, Name: strings.TrimSpace(req.League.Name)}
	if err := h.ingestionService.UpsertLeague(ctx, item, members); err != nil {
		h.logger.WarnContext(ctx, "ingest league failed", "league_id", req.League.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{
		"league":  req.League.ID,
		"members": len(members),
	})
}

func fixtureFromRecord(ctx context.Context, record fixtureSnapshotRecord) (fixture.Fixture, error) {
	ctx, span := startSpan(ctx, "httpapi.fixtureFromRecord")
	defer span.End()

	kickoffAt := time.Time{}
	if raw := strings.TrimSpace(record.KickoffTime); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fixture.Fixture{}, fmt.Errorf("%w: fixture %d has invalid kickoff_time: %v", usecase.ErrInvalidInput, record.ID, err)
		}
		kickoffAt = parsed
	}

	stats := make([]fixture.Stat, 0, len(record.Stats))
	for _, stat := range record.Stats {
		stats = append(stats, fixture.Stat{
			Identifier: stat.Identifier,
			Home:       statValuesFromRecords(stat.H),
			Away:       statValuesFromRecords(stat.A),
		})
	}

	return fixture.Fixture{
		ID:                  record.ID,
		Event:               record.Event,
		HomeTeamID:          record.TeamH,
		AwayTeamID:          record.TeamA,
		Started:             record.Started,
		Finished:            record.Finished,
		FinishedProvisional: record.FinishedProvisional,
		Minutes:             record.Minutes,
		KickoffAt:           kickoffAt,
		HomeScore:           record.TeamHScore,
		AwayScore:           record.TeamAScore,
		Stats:               stats,
	}, nil
}

func statValuesFromRecords(records []statValueRecord) []fixture.StatValue {
	out := make([]fixture.StatValue, 0, len(records))
	for _, record := range records {
		out = append(out, fixture.StatValue{Element: record.Element, Value: record.Value})
	}
	return out
}

func liveElementFromRecord(record liveElementRecord) live.Element {
	explain := make([]live.Explain, 0, len(record.Explain))
	for _, block := range record.Explain {
		stats := make([]live.ExplainStat, 0, len(block.Stats))
		for _, stat := range block.Stats {
			stats = append(stats, live.ExplainStat{
				Identifier: stat.Identifier,
				Points:     stat.Points,
				Value:      stat.Value,
			})
		}
		explain = append(explain, live.Explain{Fixture: block.Fixture, Stats: stats})
	}

	return live.Element{
		ID: record.ID,
		Stats: live.Stats{
			Minutes:               record.Stats.Minutes,
			GoalsScored:           record.Stats.GoalsScored,
			Assists:               record.Stats.Assists,
			CleanSheets:           record.Stats.CleanSheets,
			GoalsConceded:         record.Stats.GoalsConceded,
			OwnGoals:              record.Stats.OwnGoals,
			PenaltiesSaved:        record.Stats.PenaltiesSaved,
			PenaltiesMissed:       record.Stats.PenaltiesMissed,
			YellowCards:           record.Stats.YellowCards,
			RedCards:              record.Stats.RedCards,
			Saves:                 record.Stats.Saves,
			Bonus:                 record.Stats.Bonus,
			BPS:                   record.Stats.BPS,
			DefensiveContribution: record.Stats.DefensiveContribution,
			TotalPoints:           record.Stats.TotalPoints,
		},
		Explain: explain,
	}
}
