package stats

import (
	"CourtsideApi/internal/assert"
	"testing"
)

func TestAdvancedMetricsZeroGames(t *testing.T) {
	adv := AdvancedMetrics(Totals{}, Averages{})

	assert.Equal(t, adv, Advanced{})
}

func TestAdvancedMetricsShootingScenario(t *testing.T) {
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

	adv := AdvancedMetrics(totals, Rates(totals))

	// eFG% = (5 + 0.5*2) / 10 * 100
	assert.Equal(t, adv.EffectiveFieldGoalPct, 60.0)
	// TS% = 15 / (2 * (10 + 0.44*4)) * 100 = 63.775... -> one decimal
	assert.Equal(t, adv.TrueShootingPct, 63.8)
}

func TestEffectiveFieldGoalNeverBelowFieldGoalPct(t *testing.T) {
	tests := []struct {
		name      string
		threeMade int
	}{
		{name: "No Threes", threeMade: 0},
		{name: "Some Threes", threeMade: 3},
		{name: "All Threes", threeMade: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := Totals{
				GamesPlayed:         2,
				FieldGoalsMade:      6,
				FieldGoalsAttempted: 14,
				ThreePointsMade:     tt.threeMade,
			}
			averages := Rates(totals)
			adv := AdvancedMetrics(totals, averages)

			if tt.threeMade == 0 {
				assert.Equal(t, adv.EffectiveFieldGoalPct, averages.FieldGoalPct)
			} else if adv.EffectiveFieldGoalPct < averages.FieldGoalPct {
				t.Errorf("eFG%% %v below FG%% %v with %d three-point makes",
					adv.EffectiveFieldGoalPct, averages.FieldGoalPct, tt.threeMade)
			}
		})
	}
}

func TestAdvancedMetricsZeroAttempts(t *testing.T) {
	totals := Totals{GamesPlayed: 2, Rebounds: 8}

	adv := AdvancedMetrics(totals, Rates(totals))

	assert.Equal(t, adv.EffectiveFieldGoalPct, 0.0)
	assert.Equal(t, adv.TrueShootingPct, 0.0)
}

func TestEfficiencyNeverNegative(t *testing.T) {
	totals := Totals{
		GamesPlayed:         2,
		FieldGoalsAttempted: 20,
		FreeThrowsAttempted: 10,
		Turnovers:           12,
	}

	adv := AdvancedMetrics(totals, Rates(totals))

	assert.Equal(t, adv.Efficiency, 0.0)
}

func TestEfficiencyFormula(t *testing.T) {
	totals := Totals{
		GamesPlayed:          1,
		FieldGoalsMade:       5,
		FieldGoalsAttempted:  10,
		ThreePointsMade:      2,
		ThreePointsAttempted: 4,
		FreeThrowsMade:       3,
		FreeThrowsAttempted:  4,
		Rebounds:             8,
		Assists:              4,
		Steals:               2,
		Blocks:               1,
		Turnovers:            3,
	}

	adv := AdvancedMetrics(totals, Rates(totals))

	// 15 * (5 + 1 + 3 + 8 + 4 + 2 + 1 - 5 - 1 - 3) = 15 * 15
	assert.Equal(t, adv.Efficiency, 225.0)
}

func TestUsageEstimateFixedPaceBaseline(t *testing.T) {
	totals := Totals{
		GamesPlayed:         2,
		FieldGoalsAttempted: 30,
		FreeThrowsAttempted: 10,
		Turnovers:           6,
	}

	adv := AdvancedMetrics(totals, Rates(totals))

	// (30 + 0.44*10 + 6) / (2 * 100) * 100 = 20.2
	assert.Equal(t, adv.UsageEstimate, 20.2)
}

func TestAssistTurnoverRatio(t *testing.T) {
	tests := []struct {
		name      string
		assists   int
		turnovers int
		want      float64
	}{
		{name: "Normal Ratio", assists: 9, turnovers: 4, want: 2.25},
		{name: "Zero Turnovers Returns Raw Assists", assists: 6, turnovers: 0, want: 6},
		{name: "Zero Both", assists: 0, turnovers: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := Totals{GamesPlayed: 1, Assists: tt.assists, Turnovers: tt.turnovers}
			adv := AdvancedMetrics(totals, Rates(totals))
			assert.Equal(t, adv.AssistTurnoverRatio, tt.want)
		})
	}
}
