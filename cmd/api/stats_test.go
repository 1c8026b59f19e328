package main

import (
	"CourtsideApi/internal/assert"
	"CourtsideApi/internal/data"
	"testing"
	"time"
)

func TestGameResults(t *testing.T) {
	endedAt := time.Date(2025, 1, 12, 20, 0, 0, 0, time.UTC)
	games := []*data.Game{
		{ID: 1, HomeTeamID: 10, AwayTeamID: 20, HomeScore: 88, AwayScore: 80,
			EndedAt: &endedAt},
		{ID: 2, HomeTeamID: 20, AwayTeamID: 10, HomeScore: 71, AwayScore: 75},
	}

	results := gameResults(games)

	assert.Equal(t, len(results), 2)
	assert.Equal(t, results[0].GameID, int64(1))
	assert.Equal(t, results[0].HomeScore, 88)
	assert.Equal(t, results[0].EndedAt, endedAt)
	assert.Equal(t, results[1].AwayTeamID, int64(10))
	assert.Equal(t, results[1].EndedAt, time.Time{})
}

func TestGameIDs(t *testing.T) {
	games := []*data.Game{{ID: 4}, {ID: 9}, {ID: 2}}

	assert.Int64SliceEqual(t, gameIDs(games), []int64{4, 9, 2})
}

func TestTeamDisplayName(t *testing.T) {
	names := map[int64]string{7: "Northside Hawks"}

	assert.Equal(t, teamDisplayName(names, 7), "Northside Hawks")
	assert.Equal(t, teamDisplayName(names, 8), "Unknown")
}
