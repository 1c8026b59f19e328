package stats

// Advanced holds composite efficiency metrics derived from totals and
// per-game averages.
type Advanced struct {
	EffectiveFieldGoalPct float64 `json:"effective_field_goal_pct"`
	TrueShootingPct       float64 `json:"true_shooting_pct"`
	Efficiency            float64 `json:"efficiency"`
	UsageEstimate         float64 `json:"usage_estimate"`
	AssistTurnoverRatio   float64 `json:"assist_turnover_ratio"`
}

// AdvancedMetrics derives composite metrics from a Totals record and its
// Averages. Zero games played yields an all-zero record.
//
// UsageEstimate assumes a fixed 100-possession-per-game baseline instead of a
// measured pace figure. It is a deliberate simplification kept for
// compatibility with historical leaderboard values; do not substitute the
// team-normalized textbook formula.
func AdvancedMetrics(t Totals, a Averages) Advanced {
	if t.GamesPlayed == 0 {
		return Advanced{}
	}

	var adv Advanced

	if t.FieldGoalsAttempted > 0 {
		adv.EffectiveFieldGoalPct = round1(
			(float64(t.FieldGoalsMade) + 0.5*float64(t.ThreePointsMade)) /
				float64(t.FieldGoalsAttempted) * 100)
	}

	tsDenominator := 2 * (float64(t.FieldGoalsAttempted) + 0.44*float64(t.FreeThrowsAttempted))
	if tsDenominator > 0 {
		adv.TrueShootingPct = round1(float64(t.Points) / tsDenominator * 100)
	}

	efficiency := 15 * (a.FieldGoalsMade + 0.5*a.ThreePointsMade + a.FreeThrowsMade +
		a.Rebounds + a.Assists + a.Steals + a.Blocks -
		(a.FieldGoalsAttempted - a.FieldGoalsMade) -
		(a.FreeThrowsAttempted - a.FreeThrowsMade) -
		a.Turnovers)
	if efficiency < 0 {
		efficiency = 0
	}
	adv.Efficiency = round1(efficiency)

	adv.UsageEstimate = round1(
		(float64(t.FieldGoalsAttempted) + 0.44*float64(t.FreeThrowsAttempted) +
			float64(t.Turnovers)) / (float64(t.GamesPlayed) * 100) * 100)

	if t.Turnovers > 0 {
		adv.AssistTurnoverRatio = round2(float64(t.Assists) / float64(t.Turnovers))
	} else {
		adv.AssistTurnoverRatio = float64(t.Assists)
	}

	return adv
}
