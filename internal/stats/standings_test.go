package stats

import (
	"CourtsideApi/internal/assert"
	"testing"
	"time"
)

func gameAt(day int, home, away int64, homeScore, awayScore int) GameResult {
	return GameResult{
		GameID:     int64(day),
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		EndedAt:    time.Date(2025, 11, day, 20, 0, 0, 0, time.UTC),
	}
}

func TestComputeStandingsRecordScenario(t *testing.T) {
	// Team 1: home games won 3 lost 1, away games won 2 lost 2.
	games := []GameResult{
		gameAt(1, 1, 2, 80, 70),
		gameAt(2, 1, 2, 75, 68),
		gameAt(3, 1, 2, 90, 85),
		gameAt(4, 1, 2, 60, 72),
		gameAt(5, 2, 1, 55, 62),
		gameAt(6, 2, 1, 70, 71),
		gameAt(7, 2, 1, 88, 80),
		gameAt(8, 2, 1, 91, 84),
	}

	standings := ComputeStandings([]int64{1, 2}, games)

	team1 := standings[0]
	assert.Equal(t, team1.TeamID, int64(1))
	assert.Equal(t, team1.Wins, 5)
	assert.Equal(t, team1.Losses, 3)
	assert.Equal(t, team1.WinPct, 62.5)
	assert.Equal(t, team1.HomeRecord, "3-1")
	assert.Equal(t, team1.AwayRecord, "2-2")
	assert.Equal(t, team1.Rank, 1)
	assert.Equal(t, team1.GamesBack, 0.0)
}

func TestStreakStopsAtFirstMismatch(t *testing.T) {
	// Most recent first: W, W, L, W, W -> "W2".
	games := []GameResult{
		gameAt(1, 1, 2, 80, 70), // W
		gameAt(2, 1, 2, 80, 70), // W
		gameAt(3, 2, 1, 90, 70), // L
		gameAt(4, 1, 2, 80, 70), // W
		gameAt(5, 1, 2, 80, 70), // W (most recent)
	}

	standings := ComputeStandings([]int64{1}, games)

	assert.Equal(t, standings[0].Streak, "W2")
}

func TestStreakNoGames(t *testing.T) {
	standings := ComputeStandings([]int64{1}, nil)

	assert.Equal(t, standings[0].Streak, "-")
	assert.Equal(t, standings[0].WinPct, 0.0)
	assert.Equal(t, standings[0].HomeRecord, "0-0")
}

func TestStreakOnlyConsidersLastFiveGames(t *testing.T) {
	// Six straight wins: the walk is capped at the five most recent.
	var games []GameResult
	for day := 1; day <= 6; day++ {
		games = append(games, gameAt(day, 1, 2, 80, 70))
	}

	standings := ComputeStandings([]int64{1}, games)

	assert.Equal(t, standings[0].Streak, "W5")
}

func TestRankingWinsDominateTieBreaks(t *testing.T) {
	// Team 2 has a huge point differential but fewer wins; team 1 still
	// ranks first.
	games := []GameResult{
		gameAt(1, 1, 3, 70, 69),
		gameAt(2, 1, 3, 70, 69),
		gameAt(3, 2, 3, 120, 40),
		gameAt(4, 3, 2, 90, 50),
	}

	standings := ComputeStandings([]int64{1, 2, 3}, games)

	assert.Equal(t, standings[0].TeamID, int64(1))
	assert.Equal(t, standings[0].Rank, 1)
	assert.Equal(t, standings[1].TeamID, int64(2))
}

func TestGamesBackFromLeader(t *testing.T) {
	games := []GameResult{
		gameAt(1, 1, 2, 80, 70),
		gameAt(2, 1, 2, 80, 70),
		gameAt(3, 1, 2, 80, 70),
		gameAt(4, 2, 1, 80, 70),
	}

	standings := ComputeStandings([]int64{1, 2}, games)

	// Leader 3-1, trailer 1-3: ((3-1)+(3-1))/2 = 2.
	assert.Equal(t, standings[0].GamesBack, 0.0)
	assert.Equal(t, standings[1].GamesBack, 2.0)
}

func TestTiedScoreCountsAsLossForBothTeams(t *testing.T) {
	games := []GameResult{
		gameAt(1, 1, 2, 77, 77),
	}

	standings := ComputeStandings([]int64{1, 2}, games)

	for _, s := range standings {
		assert.Equal(t, s.Wins, 0)
		assert.Equal(t, s.Losses, 1)
	}
}

func TestRankingTiesRetainInputOrder(t *testing.T) {
	games := []GameResult{
		gameAt(1, 1, 2, 80, 70),
		gameAt(2, 2, 1, 80, 70),
	}

	standings := ComputeStandings([]int64{2, 1}, games)

	// Identical records: team 2 listed first stays first.
	assert.Equal(t, standings[0].TeamID, int64(2))
	assert.Equal(t, standings[1].TeamID, int64(1))
}

func TestStandingsPointsForAndAgainst(t *testing.T) {
	games := []GameResult{
		gameAt(1, 1, 2, 80, 70),
		gameAt(2, 2, 1, 66, 90),
	}

	standings := ComputeStandings([]int64{1, 2}, games)

	team1 := standings[0]
	assert.Equal(t, team1.TeamID, int64(1))
	assert.Equal(t, team1.PointsFor, 170)
	assert.Equal(t, team1.PointsAgainst, 136)
	assert.Equal(t, team1.PointDiff(), 34)
}
