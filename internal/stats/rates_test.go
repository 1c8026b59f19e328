package stats

import (
	"CourtsideApi/internal/assert"
	"testing"
)

func TestRatesZeroGames(t *testing.T) {
	averages := Rates(Totals{})

	assert.Equal(t, averages, Averages{})
}

func TestRatesZeroAttempts(t *testing.T) {
	totals := Totals{GamesPlayed: 3, Points: 12}

	averages := Rates(totals)

	assert.Equal(t, averages.FieldGoalPct, 0.0)
	assert.Equal(t, averages.ThreePointPct, 0.0)
	assert.Equal(t, averages.FreeThrowPct, 0.0)
	assert.Equal(t, averages.Points, 4.0)
}

func TestRatesShootingScenario(t *testing.T) {
	totals := Totals{
		GamesPlayed:          1,
		Points:               15,
		FieldGoalsMade:       5,
		FieldGoalsAttempted:  10,
		ThreePointsMade:      2,
		ThreePointsAttempted: 4,
		FreeThrowsMade:       3,
		FreeThrowsAttempted:  4,
	}

	averages := Rates(totals)

	assert.Equal(t, averages.FieldGoalPct, 50.0)
	assert.Equal(t, averages.ThreePointPct, 50.0)
	assert.Equal(t, averages.FreeThrowPct, 75.0)
	assert.Equal(t, averages.Points, 15.0)
}

func TestRatesRounding(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "Round Down", value: 7.24, want: 7.2},
		{name: "Round Half Away From Zero", value: 7.25, want: 7.3},
		{name: "Round Up", value: 7.26, want: 7.3},
		{name: "Idempotent", value: 7.3, want: 7.3},
		{name: "Whole Number", value: 12, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, round1(tt.value), tt.want)
			assert.Equal(t, round1(round1(tt.value)), tt.want)
		})
	}
}

func TestRatesAveragesRoundToOneDecimal(t *testing.T) {
	totals := Totals{GamesPlayed: 3, Points: 29, Assists: 7, Rebounds: 16}

	averages := Rates(totals)

	// 29/3 = 9.666... -> 9.7, 7/3 = 2.333... -> 2.3, 16/3 = 5.333... -> 5.3
	assert.Equal(t, averages.Points, 9.7)
	assert.Equal(t, averages.Assists, 2.3)
	assert.Equal(t, averages.Rebounds, 5.3)
}
