package stats

// Totals holds plain sums of every counting stat across a set of stat lines.
type Totals struct {
	GamesPlayed          int `json:"games_played"`
	Minutes              int `json:"minutes"`
	Points               int `json:"points"`
	FieldGoalsMade       int `json:"field_goals_made"`
	FieldGoalsAttempted  int `json:"field_goals_attempted"`
	ThreePointsMade      int `json:"three_points_made"`
	ThreePointsAttempted int `json:"three_points_attempted"`
	FreeThrowsMade       int `json:"free_throws_made"`
	FreeThrowsAttempted  int `json:"free_throws_attempted"`
	Rebounds             int `json:"rebounds"`
	OffensiveRebounds    int `json:"offensive_rebounds"`
	DefensiveRebounds    int `json:"defensive_rebounds"`
	Assists              int `json:"assists"`
	Steals               int `json:"steals"`
	Blocks               int `json:"blocks"`
	Turnovers            int `json:"turnovers"`
	Fouls                int `json:"fouls"`
}

// Accumulate sums counting stats across a set of stat lines belonging to one
// player. GamesPlayed is the cardinality of the input set, not a minutes
// filter. Missing rebound splits default to zero. An empty input yields an
// all-zero Totals.
func Accumulate(lines []StatLine) Totals {
	var t Totals
	t.GamesPlayed = len(lines)

	for _, l := range lines {
		t.Minutes += l.Minutes
		t.Points += l.Points
		t.FieldGoalsMade += l.FieldGoalsMade
		t.FieldGoalsAttempted += l.FieldGoalsAttempted
		t.ThreePointsMade += l.ThreePointsMade
		t.ThreePointsAttempted += l.ThreePointsAttempted
		t.FreeThrowsMade += l.FreeThrowsMade
		t.FreeThrowsAttempted += l.FreeThrowsAttempted
		t.Rebounds += l.Rebounds
		if l.OffensiveRebounds != nil {
			t.OffensiveRebounds += *l.OffensiveRebounds
		}
		if l.DefensiveRebounds != nil {
			t.DefensiveRebounds += *l.DefensiveRebounds
		}
		t.Assists += l.Assists
		t.Steals += l.Steals
		t.Blocks += l.Blocks
		t.Turnovers += l.Turnovers
		t.Fouls += l.Fouls
	}

	return t
}

// AccumulateTeam sums one team's player lines and adds unattributed team
// rebounds on top of the attributed player rebounds. GamesPlayed is the
// number of distinct games any of the lines reference.
func AccumulateTeam(lines []StatLine, teamLines []TeamLine) Totals {
	t := Accumulate(lines)

	games := make(map[int64]bool)
	for _, l := range lines {
		games[l.GameID] = true
	}
	for _, tl := range teamLines {
		games[tl.GameID] = true

		t.Rebounds += tl.OffensiveRebounds + tl.DefensiveRebounds
		t.OffensiveRebounds += tl.OffensiveRebounds
		t.DefensiveRebounds += tl.DefensiveRebounds
	}
	t.GamesPlayed = len(games)

	return t
}
