package stats

import (
	"CourtsideApi/internal/assert"
	"testing"
)

func intPtr(i int) *int { return &i }

func TestAccumulateEmpty(t *testing.T) {
	totals := Accumulate(nil)

	assert.Equal(t, totals, Totals{})
	assert.Equal(t, totals.GamesPlayed, 0)
}

func TestAccumulateSums(t *testing.T) {
	lines := []StatLine{
		{
			GameID: 1, PlayerID: 7, TeamID: 2,
			Minutes: 30, Points: 15,
			FieldGoalsMade: 5, FieldGoalsAttempted: 10,
			ThreePointsMade: 2, ThreePointsAttempted: 4,
			FreeThrowsMade: 3, FreeThrowsAttempted: 4,
			Rebounds: 8, OffensiveRebounds: intPtr(3), DefensiveRebounds: intPtr(5),
			Assists: 4, Steals: 2, Blocks: 1, Turnovers: 3, Fouls: 2,
		},
		{
			GameID: 2, PlayerID: 7, TeamID: 2,
			Minutes: 22, Points: 9,
			FieldGoalsMade: 3, FieldGoalsAttempted: 8,
			ThreePointsMade: 1, ThreePointsAttempted: 3,
			FreeThrowsMade: 2, FreeThrowsAttempted: 2,
			Rebounds: 4,
			Assists:  6, Steals: 1, Blocks: 0, Turnovers: 2, Fouls: 4,
		},
	}

	totals := Accumulate(lines)

	assert.Equal(t, totals.GamesPlayed, 2)
	assert.Equal(t, totals.Minutes, 52)
	assert.Equal(t, totals.Points, 24)
	assert.Equal(t, totals.FieldGoalsMade, 8)
	assert.Equal(t, totals.FieldGoalsAttempted, 18)
	assert.Equal(t, totals.ThreePointsMade, 3)
	assert.Equal(t, totals.ThreePointsAttempted, 7)
	assert.Equal(t, totals.FreeThrowsMade, 5)
	assert.Equal(t, totals.FreeThrowsAttempted, 6)
	assert.Equal(t, totals.Rebounds, 12)
	assert.Equal(t, totals.OffensiveRebounds, 3)
	assert.Equal(t, totals.DefensiveRebounds, 5)
	assert.Equal(t, totals.Assists, 10)
	assert.Equal(t, totals.Steals, 3)
	assert.Equal(t, totals.Blocks, 1)
	assert.Equal(t, totals.Turnovers, 5)
	assert.Equal(t, totals.Fouls, 6)
}

func TestAccumulateZeroMinutesStillCountsGame(t *testing.T) {
	lines := []StatLine{
		{GameID: 1, Minutes: 0},
		{GameID: 2, Minutes: 35, Points: 20},
	}

	totals := Accumulate(lines)

	assert.Equal(t, totals.GamesPlayed, 2)
}

func TestAccumulateTeamAddsUnattributedRebounds(t *testing.T) {
	lines := []StatLine{
		{GameID: 1, PlayerID: 1, TeamID: 9, Rebounds: 10,
			OffensiveRebounds: intPtr(4), DefensiveRebounds: intPtr(6)},
		{GameID: 1, PlayerID: 2, TeamID: 9, Rebounds: 6,
			OffensiveRebounds: intPtr(2), DefensiveRebounds: intPtr(4)},
	}
	teamLines := []TeamLine{
		{GameID: 1, TeamID: 9, OffensiveRebounds: 3, DefensiveRebounds: 2},
	}

	totals := AccumulateTeam(lines, teamLines)

	// Team rebounds must equal attributed player rebounds plus the
	// unattributed team rebounds, never one alone.
	assert.Equal(t, totals.Rebounds, 21)
	assert.Equal(t, totals.OffensiveRebounds, 9)
	assert.Equal(t, totals.DefensiveRebounds, 12)
	assert.Equal(t, totals.GamesPlayed, 1)
}

func TestAccumulateTeamCountsDistinctGames(t *testing.T) {
	lines := []StatLine{
		{GameID: 1, PlayerID: 1, TeamID: 9},
		{GameID: 1, PlayerID: 2, TeamID: 9},
		{GameID: 2, PlayerID: 1, TeamID: 9},
	}
	teamLines := []TeamLine{
		{GameID: 3, TeamID: 9, OffensiveRebounds: 1},
	}

	totals := AccumulateTeam(lines, teamLines)

	assert.Equal(t, totals.GamesPlayed, 3)
}
