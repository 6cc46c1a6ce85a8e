package httpapi

import (
	"context"

	"github.com/fplhub/fpl-live/internal/domain/autosubs"
	"github.com/fplhub/fpl-live/internal/usecase"
)

// Snapshot request bodies mirror the upstream feed's JSON shapes so captured
// payloads can be replayed against the internal endpoints unchanged.

type bootstrapSnapshotRequest struct {
	Elements []bootstrapElementRecord `json:"elements" validate:"required,min=1,dive"`
	Teams    []bootstrapTeamRecord    `json:"teams" validate:"required,min=1,dive"`
}

type bootstrapElementRecord struct {
	ID          int    `json:"id" validate:"required,gt=0"`
	Team        int    `json:"team" validate:"required,gt=0"`
	WebName     string `json:"web_name" validate:"required"`
	ElementType int    `json:"element_type" validate:"required,gte=1,lte=4"`
}

type bootstrapTeamRecord struct {
	ID        int    `json:"id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"short_name" validate:"required,max=4"`
}

type fixturesSnapshotRequest struct {
	Event    int                     `json:"event" validate:"required,gt=0"`
	Fixtures []fixtureSnapshotRecord `json:"fixtures" validate:"dive"`
}

type fixtureSnapshotRecord struct {
	ID                  int                 `json:"id" validate:"required,gt=0"`
	Event               int                 `json:"event" validate:"required,gt=0"`
	TeamH               int                 `json:"team_h" validate:"required,gt=0"`
	TeamA               int                 `json:"team_a" validate:"required,gt=0"`
	Started             bool                `json:"started"`
	Finished            bool                `json:"finished"`
	FinishedProvisional bool                `json:"finished_provisional"`
	Minutes             int                 `json:"minutes" validate:"gte=0"`
	KickoffTime         string              `json:"kickoff_time"`
	TeamHScore          *int                `json:"team_h_score"`
	TeamAScore          *int                `json:"team_a_score"`
	Stats               []fixtureStatRecord `json:"stats"`
}

type fixtureStatRecord struct {
	Identifier string            `json:"identifier" validate:"required"`
	H          []statValueRecord `json:"h"`
	A          []statValueRecord `json:"a"`
}

type statValueRecord struct {
	Element int `json:"element" validate:"required,gt=0"`
	Value   int `json:"value"`
}

type liveSnapshotRequest struct {
	Event    int                 `json:"event" validate:"required,gt=0"`
	Elements []liveElementRecord `json:"elements" validate:"dive"`
}

type liveElementRecord struct {
	ID      int                 `json:"id" validate:"required,gt=0"`
	Stats   liveStatsRecord     `json:"stats"`
	Explain []liveExplainRecord `json:"explain"`
}

type liveStatsRecord struct {
	Minutes               int `json:"minutes"`
	GoalsScored           int `json:"goals_scored"`
	Assists               int `json:"assists"`
	CleanSheets           int `json:"clean_sheets"`
	GoalsConceded         int `json:"goals_conceded"`
	OwnGoals              int `json:"own_goals"`
	PenaltiesSaved        int `json:"penalties_saved"`
	PenaltiesMissed       int `json:"penalties_missed"`
	YellowCards           int `json:"yellow_cards"`
	RedCards              int `json:"red_cards"`
	Saves                 int `json:"saves"`
	Bonus                 int `json:"bonus"`
	BPS                   int `json:"bps"`
	DefensiveContribution int `json:"defensive_contribution"`
	TotalPoints           int `json:"total_points"`
}

type liveExplainRecord struct {
	Fixture int                     `json:"fixture" validate:"required,gt=0"`
	Stats   []liveExplainStatRecord `json:"stats"`
}

type liveExplainStatRecord struct {
	Identifier string `json:"identifier"`
	Points     int    `json:"points"`
	Value      int    `json:"value"`
}

type entryPicksSnapshotRequest struct {
	Entry        int                `json:"entry" validate:"required,gt=0"`
	Event        int                `json:"event" validate:"required,gt=0"`
	ActiveChip   string             `json:"active_chip"`
	EntryHistory entryHistoryRecord `json:"entry_history"`
	Picks        []entryPickRecord  `json:"picks" validate:"required,len=15,dive"`
}

type entryHistoryRecord struct {
	EventTransfersCost int `json:"event_transfers_cost" validate:"gte=0"`
}

type entryPickRecord struct {
	Element       int  `json:"element" validate:"required,gt=0"`
	Position      int  `json:"position" validate:"required,gte=1,lte=15"`
	Multiplier    int  `json:"multiplier" validate:"gte=0,lte=3"`
	IsCaptain     bool `json:"is_captain"`
	IsViceCaptain bool `json:"is_vice_captain"`
}

type leagueSnapshotRequest struct {
	League  leagueRecord         `json:"league" validate:"required"`
	Members []leagueMemberRecord `json:"members" validate:"required,min=1,dive"`
}

type leagueRecord struct {
	ID   int    `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,max=120"`
}

type leagueMemberRecord struct {
	Entry      int    `json:"entry" validate:"required,gt=0"`
	EntryName  string `json:"entry_name" validate:"required,max=120"`
	PlayerName string `json:"player_name" validate:"max=120"`
}

// Response DTOs.

type gameweekScoreDTO struct {
	BasePoints       int `json:"basePoints"`
	ProvisionalBonus int `json:"provisionalBonus"`
	TotalPoints      int `json:"totalPoints"`
	HitsCost         int `json:"hitsCost"`
	NetPoints        int `json:"netPoints"`
}

type pickScoreDTO struct {
	Element          int    `json:"element"`
	Name             string `json:"name"`
	Position         string `json:"position"`
	PickPosition     int    `json:"pickPosition"`
	Multiplier       int    `json:"multiplier"`
	IsCaptain        bool   `json:"isCaptain"`
	IsViceCaptain    bool   `json:"isViceCaptain"`
	Points           int    `json:"points"`
	ProvisionalBonus int    `json:"provisionalBonus"`
	CountedPoints    int    `json:"countedPoints"`
}

type entryLiveDTO struct {
	EntryID    int              `json:"entryId"`
	Event      int              `json:"event"`
	ActiveChip string           `json:"activeChip,omitempty"`
	Score      gameweekScoreDTO `json:"score"`
	Picks      []pickScoreDTO   `json:"picks"`
	AutoSubs   *autoSubsDTO     `json:"autoSubs,omitempty"`
}

type autoSubsDTO struct {
	Substitutions     []substitutionDTO `json:"substitutions"`
	CaptainPromoted   bool              `json:"captainPromoted"`
	OriginalCaptainID int               `json:"originalCaptainId,omitempty"`
}

type substitutionDTO struct {
	Out substitutionSideDTO `json:"out"`
	In  substitutionSideDTO `json:"in"`
}

type substitutionSideDTO struct {
	Element      int    `json:"element"`
	PickPosition int    `json:"pickPosition"`
	Position     string `json:"position"`
	Name         string `json:"name"`
}

type fixtureBonusDTO struct {
	FixtureID   int             `json:"fixtureId"`
	HomeTeam    string          `json:"homeTeam"`
	AwayTeam    string          `json:"awayTeam"`
	Minutes     int             `json:"minutes"`
	Finished    bool            `json:"finished"`
	InWindow    bool            `json:"inBonusWindow"`
	Provisional []bonusAwardDTO `json:"provisional"`
}

type bonusAwardDTO struct {
	Element int    `json:"element"`
	Name    string `json:"name"`
	BPS     int    `json:"bps"`
	Bonus   int    `json:"bonus"`
}

type standingsDTO struct {
	LeagueID   int              `json:"leagueId"`
	LeagueName string           `json:"leagueName"`
	Event      int              `json:"event"`
	Rows       []standingRowDTO `json:"rows"`
}

type standingRowDTO struct {
	Rank        int              `json:"rank"`
	EntryID     int              `json:"entryId"`
	EntryName   string           `json:"entryName"`
	ManagerName string           `json:"managerName"`
	Score       gameweekScoreDTO `json:"score"`
}

func gameweekScoreToDTO(v usecase.GameweekScore) gameweekScoreDTO {
	return gameweekScoreDTO{
		BasePoints:       v.BasePoints,
		ProvisionalBonus: v.ProvisionalBonus,
		TotalPoints:      v.TotalPoints,
		HitsCost:         v.HitsCost,
		NetPoints:        v.NetPoints,
	}
}

func entryLiveToDTO(ctx context.Context, v usecase.EntryLiveSummary) entryLiveDTO {
	ctx, span := startSpan(ctx, "httpapi.entryLiveToDTO")
	defer span.End()

	picks := make([]pickScoreDTO, 0, len(v.Picks))
	for _, row := range v.Picks {
		picks = append(picks, pickScoreDTO{
			Element:          row.Element,
			Name:             row.Name,
			Position:         string(row.Position),
			PickPosition:     row.PickPosition,
			Multiplier:       row.Multiplier,
			IsCaptain:        row.IsCaptain,
			IsViceCaptain:    row.IsViceCaptain,
			Points:           row.Points,
			ProvisionalBonus: row.ProvisionalBonus,
			CountedPoints:    row.CountedPoints,
		})
	}

	dto := entryLiveDTO{
		EntryID:    v.EntryID,
		Event:      v.Event,
		ActiveChip: v.ActiveChip,
		Score:      gameweekScoreToDTO(v.Score),
		Picks:      picks,
	}
	if v.AutoSubs != nil {
		subs := autoSubsToDTO(ctx, *v.AutoSubs)
		dto.AutoSubs = &subs
	}
	return dto
}

func autoSubsToDTO(ctx context.Context, v autosubs.Result) autoSubsDTO {
	ctx, span := startSpan(ctx, "httpapi.autoSubsToDTO")
	defer span.End()

	subs := make([]substitutionDTO, 0, len(v.Substitutions))
	for _, swap := range v.Substitutions {
		subs = append(subs, substitutionDTO{
			Out: substitutionSideToDTO(swap.Out),
			In:  substitutionSideToDTO(swap.In),
		})
	}

	return autoSubsDTO{
		Substitutions:     subs,
		CaptainPromoted:   v.CaptainPromoted,
		OriginalCaptainID: v.OriginalCaptainID,
	}
}

func substitutionSideToDTO(v autosubs.SubstitutionSide) substitutionSideDTO {
	return substitutionSideDTO{
		Element:      v.Element,
		PickPosition: v.PickPosition,
		Position:     string(v.Position),
		Name:         v.Name,
	}
}

func fixtureBonusToDTO(ctx context.Context, v usecase.FixtureBonusView) fixtureBonusDTO {
	ctx, span := startSpan(ctx, "httpapi.fixtureBonusToDTO")
	defer span.End()

	awards := make([]bonusAwardDTO, 0, len(v.Provisional))
	for _, award := range v.Provisional {
		awards = append(awards, bonusAwardDTO{
			Element: award.Element,
			Name:    award.Name,
			BPS:     award.BPS,
			Bonus:   award.Bonus,
		})
	}

	return fixtureBonusDTO{
		FixtureID:   v.FixtureID,
		HomeTeam:    v.HomeTeam,
		AwayTeam:    v.AwayTeam,
		Minutes:     v.Minutes,
		Finished:    v.Finished,
		InWindow:    v.InWindow,
		Provisional: awards,
	}
}

func standingsToDTO(ctx context.Context, v usecase.LeagueStandings) standingsDTO {
	ctx, span := startSpan(ctx, "httpapi.standingsToDTO")
	defer span.End()

	rows := make([]standingRowDTO, 0, len(v.Rows))
	for _, row := range v.Rows {
		rows = append(rows, standingRowDTO{
			Rank:        row.Rank,
			EntryID:     row.EntryID,
			EntryName:   row.EntryName,
			ManagerName: row.ManagerName,
			Score:       gameweekScoreToDTO(row.Score),
		})
	}

	return standingsDTO{
		LeagueID:   v.LeagueID,
		LeagueName: v.LeagueName,
		Event:      v.Event,
		Rows:       rows,
	}
}
