package memory

import (
	"time"

	"github.com/fplhub/fpl-live/internal/domain/entry"
	"github.com/fplhub/fpl-live/internal/domain/fixture"
	"github.com/fplhub/fpl-live/internal/domain/league"
	"github.com/fplhub/fpl-live/internal/domain/live"
	"github.com/fplhub/fpl-live/internal/domain/player"
	"github.com/fplhub/fpl-live/internal/domain/team"
)

// Seed data describes one small in-progress demo gameweek so the API serves
// something useful before real snapshots are ingested.

const SeedEvent = 1

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Arsenal", ShortName: "ARS"},
		{ID: 2, Name: "Chelsea", ShortName: "CHE"},
		{ID: 3, Name: "Liverpool", ShortName: "LIV"},
		{ID: 4, Name: "Newcastle", ShortName: "NEW"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, TeamID: 1, Name: "Raya", Position: player.PositionGoalkeeper},
		{ID: 2, TeamID: 1, Name: "Saliba", Position: player.PositionDefender},
		{ID: 3, TeamID: 1, Name: "Gabriel", Position: player.PositionDefender},
		{ID: 4, TeamID: 2, Name: "Chalobah", Position: player.PositionDefender},
		{ID: 5, TeamID: 2, Name: "Cucurella", Position: player.PositionDefender},
		{ID: 6, TeamID: 2, Name: "Palmer", Position: player.PositionMidfielder},
		{ID: 7, TeamID: 3, Name: "Szoboszlai", Position: player.PositionMidfielder},
		{ID: 8, TeamID: 3, Name: "Gakpo", Position: player.PositionMidfielder},
		{ID: 9, TeamID: 3, Name: "Salah", Position: player.PositionMidfielder},
		{ID: 10, TeamID: 4, Name: "Gordon", Position: player.PositionMidfielder},
		{ID: 11, TeamID: 4, Name: "Isak", Position: player.PositionForward},
		{ID: 12, TeamID: 2, Name: "Sanchez", Position: player.PositionGoalkeeper},
		{ID: 13, TeamID: 4, Name: "Woltemade", Position: player.PositionForward},
		{ID: 14, TeamID: 3, Name: "Konate", Position: player.PositionDefender},
		{ID: 15, TeamID: 1, Name: "Havertz", Position: player.PositionForward},
	}
}

func SeedFixtures() []fixture.Fixture {
	kickoff := time.Date(2025, time.August, 16, 14, 0, 0, 0, time.UTC)
	homeGoals, awayGoals := 2, 1
	liveHome, liveAway := 1, 0

	return []fixture.Fixture{
		{
			ID:                  101,
			Event:               SeedEvent,
			HomeTeamID:          1,
			AwayTeamID:          2,
			Started:             true,
			FinishedProvisional: true,
			Minutes:             90,
			KickoffAt:           kickoff,
			HomeScore:           &homeGoals,
			AwayScore:           &awayGoals,
			Stats: []fixture.Stat{
				{
					Identifier: fixture.IdentifierBPS,
					Home: []fixture.StatValue{
						{Element: 2, Value: 32},
						{Element: 15, Value: 28},
						{Element: 1, Value: 24},
					},
					Away: []fixture.StatValue{
						{Element: 6, Value: 30},
					},
				},
			},
		},
		{
			ID:         102,
			Event:      SeedEvent,
			HomeTeamID: 3,
			AwayTeamID: 4,
			Started:    true,
			Minutes:    72,
			KickoffAt:  kickoff.Add(3 * time.Hour),
			HomeScore:  &liveHome,
			AwayScore:  &liveAway,
			Stats: []fixture.Stat{
				{
					Identifier: fixture.IdentifierBPS,
					Home: []fixture.StatValue{
						{Element: 9, Value: 44},
						{Element: 7, Value: 25},
					},
					Away: []fixture.StatValue{
						{Element: 10, Value: 25},
					},
				},
			},
		},
	}
}

func SeedLiveElements() map[int][]live.Element {
	playedMinutes := func(fixtureID, minutes, points int) live.Explain {
		return live.Explain{
			Fixture: fixtureID,
			Stats: []live.ExplainStat{
				{Identifier: live.IdentifierMinutes, Points: points, Value: minutes},
			},
		}
	}
	benched := func(fixtureID int) live.Explain {
		return live.Explain{
			Fixture: fixtureID,
			Stats: []live.ExplainStat{
				{Identifier: live.IdentifierMinutes, Points: 0, Value: 0},
			},
		}
	}

	return map[int][]live.Element{
		SeedEvent: {
			{ID: 1, Stats: live.Stats{Minutes: 90, Saves: 4, BPS: 24, TotalPoints: 3}, Explain: []live.Explain{playedMinutes(101, 90, 2)}},
			{ID: 2, Stats: live.Stats{Minutes: 90, GoalsScored: 1, CleanSheets: 0, BPS: 32, TotalPoints: 8}, Explain: []live.Explain{
				{Fixture: 101, Stats: []live.ExplainStat{
					{Identifier: live.IdentifierMinutes, Points: 2, Value: 90},
					{Identifier: "goals_scored", Points: 6, Value: 1},
				}},
			}},
			{ID: 3, Stats: live.Stats{}, Explain: []live.Explain{benched(101)}},
			{ID: 4, Stats: live.Stats{Minutes: 90, YellowCards: 1, BPS: 9, TotalPoints: 1}, Explain: []live.Explain{
				{Fixture: 101, Stats: []live.ExplainStat{
					{Identifier: live.IdentifierMinutes, Points: 2, Value: 90},
					{Identifier: "yellow_cards", Points: -1, Value: 1},
				}},
			}},
			{ID: 5, Stats: live.Stats{Minutes: 78, BPS: 12, TotalPoints: 2}, Explain: []live.Explain{playedMinutes(101, 78, 2)}},
			{ID: 6, Stats: live.Stats{Minutes: 90, Assists: 1, BPS: 30, TotalPoints: 5}, Explain: []live.Explain{
				{Fixture: 101, Stats: []live.ExplainStat{
					{Identifier: live.IdentifierMinutes, Points: 2, Value: 90},
					{Identifier: "assists", Points: 3, Value: 1},
				}},
			}},
			{ID: 7, Stats: live.Stats{Minutes: 72, BPS: 25, TotalPoints: 2}, Explain: []live.Explain{playedMinutes(102, 72, 2)}},
			{ID: 8, Stats: live.Stats{Minutes: 60, BPS: 14, TotalPoints: 2}, Explain: []live.Explain{playedMinutes(102, 60, 2)}},
			{ID: 9, Stats: live.Stats{Minutes: 72, GoalsScored: 1, BPS: 44, TotalPoints: 7}, Explain: []live.Explain{
				{Fixture: 102, Stats: []live.ExplainStat{
					{Identifier: live.IdentifierMinutes, Points: 1, Value: 72},
					{Identifier: "goals_scored", Points: 5, Value: 1},
				}},
			}},
			{ID: 10, Stats: live.Stats{Minutes: 72, BPS: 25, TotalPoints: 2}, Explain: []live.Explain{playedMinutes(102, 72, 2)}},
			{ID: 11, Stats: live.Stats{Minutes: 45, BPS: 8, TotalPoints: 1}, Explain: []live.Explain{playedMinutes(102, 45, 1)}},
			{ID: 12, Stats: live.Stats{}, Explain: []live.Explain{benched(101)}},
			{ID: 13, Stats: live.Stats{Minutes: 27, BPS: 6, TotalPoints: 1}, Explain: []live.Explain{playedMinutes(102, 27, 1)}},
			{ID: 14, Stats: live.Stats{Minutes: 72, BPS: 19, TotalPoints: 2}, Explain: []live.Explain{playedMinutes(102, 72, 2)}},
			{ID: 15, Stats: live.Stats{Minutes: 84, BPS: 28, TotalPoints: 2}, Explain: []live.Explain{playedMinutes(101, 84, 2)}},
		},
	}
}

func SeedEntryPicks() []entry.Picks {
	return []entry.Picks{
		{
			EntryID: 5001,
			Event:   SeedEvent,
			Picks: []entry.Pick{
				{Element: 1, Position: 1, Multiplier: 1},
				{Element: 2, Position: 2, Multiplier: 1},
				{Element: 4, Position: 3, Multiplier: 1},
				{Element: 5, Position: 4, Multiplier: 1},
				{Element: 14, Position: 5, Multiplier: 1},
				{Element: 6, Position: 6, Multiplier: 1},
				{Element: 7, Position: 7, Multiplier: 1},
				{Element: 9, Position: 8, Multiplier: 2, IsCaptain: true},
				{Element: 10, Position: 9, Multiplier: 1},
				{Element: 11, Position: 10, Multiplier: 1, IsViceCaptain: true},
				{Element: 15, Position: 11, Multiplier: 1},
				{Element: 12, Position: 12, Multiplier: 0},
				{Element: 13, Position: 13, Multiplier: 0},
				{Element: 3, Position: 14, Multiplier: 0},
				{Element: 8, Position: 15, Multiplier: 0},
			},
		},
		{
			EntryID:       5002,
			Event:         SeedEvent,
			TransfersCost: 4,
			Picks: []entry.Pick{
				{Element: 12, Position: 1, Multiplier: 1},
				{Element: 3, Position: 2, Multiplier: 1},
				{Element: 4, Position: 3, Multiplier: 1},
				{Element: 14, Position: 4, Multiplier: 1},
				{Element: 2, Position: 5, Multiplier: 1},
				{Element: 6, Position: 6, Multiplier: 2, IsCaptain: true},
				{Element: 8, Position: 7, Multiplier: 1},
				{Element: 10, Position: 8, Multiplier: 1},
				{Element: 9, Position: 9, Multiplier: 1, IsViceCaptain: true},
				{Element: 11, Position: 10, Multiplier: 1},
				{Element: 13, Position: 11, Multiplier: 1},
				{Element: 1, Position: 12, Multiplier: 0},
				{Element: 5, Position: 13, Multiplier: 0},
				{Element: 7, Position: 14, Multiplier: 0},
				{Element: 15, Position: 15, Multiplier: 0},
			},
		},
	}
}

func SeedLeagues() ([]league.League, map[int][]league.Member) {
	leagues := []league.League{
		{ID: 9001, Name: "Office Legends"},
	}
	members := map[int][]league.Member{
		9001: {
			{EntryID: 5001, EntryName: "Bench Mob", ManagerName: "Riski B"},
			{EntryID: 5002, EntryName: "Klopp's Kids", ManagerName: "Dina W"},
		},
	}
	return leagues, members
}
