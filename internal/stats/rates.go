package stats

// Averages holds per-game averages and shooting percentages derived from a
// Totals record. All values are rounded half away from zero to one decimal.
type Averages struct {
	Minutes              float64 `json:"minutes"`
	Points               float64 `json:"points"`
	FieldGoalsMade       float64 `json:"field_goals_made"`
	FieldGoalsAttempted  float64 `json:"field_goals_attempted"`
	ThreePointsMade      float64 `json:"three_points_made"`
	ThreePointsAttempted float64 `json:"three_points_attempted"`
	FreeThrowsMade       float64 `json:"free_throws_made"`
	FreeThrowsAttempted  float64 `json:"free_throws_attempted"`
	Rebounds             float64 `json:"rebounds"`
	OffensiveRebounds    float64 `json:"offensive_rebounds"`
	DefensiveRebounds    float64 `json:"defensive_rebounds"`
	Assists              float64 `json:"assists"`
	Steals               float64 `json:"steals"`
	Blocks               float64 `json:"blocks"`
	Turnovers            float64 `json:"turnovers"`
	Fouls                float64 `json:"fouls"`
	FieldGoalPct         float64 `json:"field_goal_pct"`
	ThreePointPct        float64 `json:"three_point_pct"`
	FreeThrowPct         float64 `json:"free_throw_pct"`
}

// Rates derives per-game averages and made/attempted percentages from a
// Totals record. Zero games played yields all-zero averages; a zero attempt
// denominator yields a zero percentage. Neither is an error.
func Rates(t Totals) Averages {
	gp := t.GamesPlayed

	return Averages{
		Minutes:              perGame(t.Minutes, gp),
		Points:               perGame(t.Points, gp),
		FieldGoalsMade:       perGame(t.FieldGoalsMade, gp),
		FieldGoalsAttempted:  perGame(t.FieldGoalsAttempted, gp),
		ThreePointsMade:      perGame(t.ThreePointsMade, gp),
		ThreePointsAttempted: perGame(t.ThreePointsAttempted, gp),
		FreeThrowsMade:       perGame(t.FreeThrowsMade, gp),
		FreeThrowsAttempted:  perGame(t.FreeThrowsAttempted, gp),
		Rebounds:             perGame(t.Rebounds, gp),
		OffensiveRebounds:    perGame(t.OffensiveRebounds, gp),
		DefensiveRebounds:    perGame(t.DefensiveRebounds, gp),
		Assists:              perGame(t.Assists, gp),
		Steals:               perGame(t.Steals, gp),
		Blocks:               perGame(t.Blocks, gp),
		Turnovers:            perGame(t.Turnovers, gp),
		Fouls:                perGame(t.Fouls, gp),
		FieldGoalPct:         percent(t.FieldGoalsMade, t.FieldGoalsAttempted),
		ThreePointPct:        percent(t.ThreePointsMade, t.ThreePointsAttempted),
		FreeThrowPct:         percent(t.FreeThrowsMade, t.FreeThrowsAttempted),
	}
}
