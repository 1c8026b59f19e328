package stats

import (
	"CourtsideApi/internal/assert"
	"testing"
)

func ratingFor(playerID int64, lines ...StatLine) PlayerRating {
	totals := Accumulate(lines)
	averages := Rates(totals)
	return PlayerRating{
		PlayerID: playerID,
		Totals:   totals,
		Averages: averages,
		Advanced: AdvancedMetrics(totals, averages),
	}
}

func TestLeaderboardSortsDescending(t *testing.T) {
	ratings := []PlayerRating{
		ratingFor(1, StatLine{GameID: 1, Points: 10}),
		ratingFor(2, StatLine{GameID: 1, Points: 25}),
		ratingFor(3, StatLine{GameID: 1, Points: 18}),
	}

	entries := Leaderboard(ratings, CategoryPoints, 0)

	assert.Equal(t, len(entries), 3)
	assert.Equal(t, entries[0].PlayerID, int64(2))
	assert.Equal(t, entries[0].Rank, 1)
	assert.Equal(t, entries[0].Value, 25.0)
	assert.Equal(t, entries[1].PlayerID, int64(3))
	assert.Equal(t, entries[2].PlayerID, int64(1))
	assert.Equal(t, entries[2].Rank, 3)
}

func TestLeaderboardQualificationIsHardFilter(t *testing.T) {
	ratings := []PlayerRating{
		// 9 of 9 from the field, but under the 10-attempt minimum.
		ratingFor(1, StatLine{GameID: 1, FieldGoalsMade: 9, FieldGoalsAttempted: 9}),
		ratingFor(2, StatLine{GameID: 1, FieldGoalsMade: 4, FieldGoalsAttempted: 10}),
	}

	entries := Leaderboard(ratings, CategoryFieldGoalPct, 0)

	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0].PlayerID, int64(2))
}

func TestLeaderboardMinimumAttempts(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		line     StatLine
		want     int
	}{
		{
			name:     "Three Point Under Minimum",
			category: CategoryThreePointPct,
			line:     StatLine{GameID: 1, ThreePointsMade: 4, ThreePointsAttempted: 4},
			want:     0,
		},
		{
			name:     "Three Point At Minimum",
			category: CategoryThreePointPct,
			line:     StatLine{GameID: 1, ThreePointsMade: 4, ThreePointsAttempted: 5},
			want:     1,
		},
		{
			name:     "Free Throw Under Minimum",
			category: CategoryFreeThrowPct,
			line:     StatLine{GameID: 1, FreeThrowsMade: 4, FreeThrowsAttempted: 4},
			want:     0,
		},
		{
			name:     "Counting Category No Minimum",
			category: CategorySteals,
			line:     StatLine{GameID: 1, Steals: 1},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Leaderboard([]PlayerRating{ratingFor(1, tt.line)}, tt.category, 0)
			assert.Equal(t, len(entries), tt.want)
		})
	}
}

func TestLeaderboardExcludesZeroGames(t *testing.T) {
	ratings := []PlayerRating{
		ratingFor(1),
		ratingFor(2, StatLine{GameID: 1, Points: 2}),
	}

	entries := Leaderboard(ratings, CategoryPoints, 0)

	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0].PlayerID, int64(2))
}

func TestLeaderboardDefaultLimit(t *testing.T) {
	var ratings []PlayerRating
	for i := int64(1); i <= 15; i++ {
		ratings = append(ratings, ratingFor(i, StatLine{GameID: 1, Points: int(i)}))
	}

	entries := Leaderboard(ratings, CategoryPoints, 0)

	assert.Equal(t, len(entries), DefaultLeaderboardLimit)

	entries = Leaderboard(ratings, CategoryPoints, 3)
	assert.Equal(t, len(entries), 3)
	assert.Equal(t, entries[0].Value, 15.0)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "Points", input: "points", want: CategoryPoints},
		{name: "Field Goal Pct", input: "field_goal_pct", want: CategoryFieldGoalPct},
		{name: "Unknown", input: "dunks", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, err := ParseCategory(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, category, tt.want)
		})
	}
}

func TestBuildPlayerRatingsPreservesFirstAppearanceOrder(t *testing.T) {
	lines := []StatLine{
		{GameID: 1, PlayerID: 5, Points: 10},
		{GameID: 1, PlayerID: 3, Points: 8},
		{GameID: 2, PlayerID: 5, Points: 12},
	}

	ratings := BuildPlayerRatings(lines)

	assert.Equal(t, len(ratings), 2)
	assert.Equal(t, ratings[0].PlayerID, int64(5))
	assert.Equal(t, ratings[0].Totals.GamesPlayed, 2)
	assert.Equal(t, ratings[0].Averages.Points, 11.0)
	assert.Equal(t, ratings[1].PlayerID, int64(3))
}

func TestBuildTeamRatingsIncludesTeamOnlyLines(t *testing.T) {
	lines := []StatLine{
		{GameID: 1, PlayerID: 1, TeamID: 7, Rebounds: 5},
	}
	teamLines := []TeamLine{
		{GameID: 1, TeamID: 7, OffensiveRebounds: 2, DefensiveRebounds: 1},
		{GameID: 1, TeamID: 8, OffensiveRebounds: 4, DefensiveRebounds: 0},
	}

	ratings := BuildTeamRatings(lines, teamLines)

	assert.Equal(t, len(ratings), 2)
	assert.Equal(t, ratings[0].TeamID, int64(7))
	assert.Equal(t, ratings[0].Totals.Rebounds, 8)
	assert.Equal(t, ratings[1].TeamID, int64(8))
	assert.Equal(t, ratings[1].Totals.Rebounds, 4)
}

func TestComparePlayerZeroGames(t *testing.T) {
	record := ComparePlayer(4, nil)

	assert.Equal(t, record.PlayerID, int64(4))
	assert.Equal(t, record.Totals, Totals{})
	assert.Equal(t, record.Averages, Averages{})
}

func TestComparePlayerIndependentRecords(t *testing.T) {
	a := ComparePlayer(1, []StatLine{{GameID: 1, Points: 20, Assists: 5}})
	b := ComparePlayer(2, []StatLine{
		{GameID: 1, Points: 10},
		{GameID: 2, Points: 14},
	})

	assert.Equal(t, a.Totals.Points, 20)
	assert.Equal(t, a.Averages.Points, 20.0)
	assert.Equal(t, b.Totals.GamesPlayed, 2)
	assert.Equal(t, b.Averages.Points, 12.0)
}
