package stats

import (
	"fmt"
	"sort"
)

// PlayerRating is the full derived record for one player: totals, per-game
// rates and advanced metrics.
type PlayerRating struct {
	PlayerID   int64    `json:"-"`
	PlayerName string   `json:"player_name,omitempty"`
	Totals     Totals   `json:"totals"`
	Averages   Averages `json:"averages"`
	Advanced   Advanced `json:"advanced"`
}

// TeamRating is the derived record for one team, including unattributed team
// rebounds in its totals.
type TeamRating struct {
	TeamID   int64    `json:"-"`
	TeamName string   `json:"team_name,omitempty"`
	Totals   Totals   `json:"totals"`
	Averages Averages `json:"averages"`
	Advanced Advanced `json:"advanced"`
}

// BuildPlayerRatings groups stat lines by player and derives one rating per
// player, preserving the order players first appear in the input.
func BuildPlayerRatings(lines []StatLine) []PlayerRating {
	var order []int64
	byPlayer := make(map[int64][]StatLine)
	for _, l := range lines {
		if _, seen := byPlayer[l.PlayerID]; !seen {
			order = append(order, l.PlayerID)
		}
		byPlayer[l.PlayerID] = append(byPlayer[l.PlayerID], l)
	}

	ratings := make([]PlayerRating, 0, len(order))
	for _, playerID := range order {
		totals := Accumulate(byPlayer[playerID])
		averages := Rates(totals)
		ratings = append(ratings, PlayerRating{
			PlayerID: playerID,
			Totals:   totals,
			Averages: averages,
			Advanced: AdvancedMetrics(totals, averages),
		})
	}

	return ratings
}

// BuildTeamRatings groups player and team lines by team and derives one
// rating per team, preserving first-appearance order.
func BuildTeamRatings(lines []StatLine, teamLines []TeamLine) []TeamRating {
	var order []int64
	byTeam := make(map[int64][]StatLine)
	for _, l := range lines {
		if _, seen := byTeam[l.TeamID]; !seen {
			order = append(order, l.TeamID)
		}
		byTeam[l.TeamID] = append(byTeam[l.TeamID], l)
	}

	teamLinesByTeam := make(map[int64][]TeamLine)
	for _, tl := range teamLines {
		if _, seen := byTeam[tl.TeamID]; !seen {
			order = append(order, tl.TeamID)
			byTeam[tl.TeamID] = nil
		}
		teamLinesByTeam[tl.TeamID] = append(teamLinesByTeam[tl.TeamID], tl)
	}

	ratings := make([]TeamRating, 0, len(order))
	for _, teamID := range order {
		totals := AccumulateTeam(byTeam[teamID], teamLinesByTeam[teamID])
		averages := Rates(totals)
		ratings = append(ratings, TeamRating{
			TeamID:   teamID,
			Totals:   totals,
			Averages: averages,
			Advanced: AdvancedMetrics(totals, averages),
		})
	}

	return ratings
}

// Category names one leaderboard ordering. The set is closed: each category
// maps to an explicit accessor rather than a runtime field lookup.
type Category string

const (
	CategoryPoints        Category = "points"
	CategoryRebounds      Category = "rebounds"
	CategoryAssists       Category = "assists"
	CategorySteals        Category = "steals"
	CategoryBlocks        Category = "blocks"
	CategoryFieldGoalPct  Category = "field_goal_pct"
	CategoryThreePointPct Category = "three_point_pct"
	CategoryFreeThrowPct  Category = "free_throw_pct"
)

// DefaultLeaderboardLimit is used when the caller does not request a limit.
const DefaultLeaderboardLimit = 10

type categorySpec struct {
	value func(r PlayerRating) float64
	// minAttempts qualifies percentage categories; attempts extracts the
	// denominator it applies to. Counting categories leave both unset.
	minAttempts int
	attempts    func(t Totals) int
}

var categories = map[Category]categorySpec{
	CategoryPoints:   {value: func(r PlayerRating) float64 { return r.Averages.Points }},
	CategoryRebounds: {value: func(r PlayerRating) float64 { return r.Averages.Rebounds }},
	CategoryAssists:  {value: func(r PlayerRating) float64 { return r.Averages.Assists }},
	CategorySteals:   {value: func(r PlayerRating) float64 { return r.Averages.Steals }},
	CategoryBlocks:   {value: func(r PlayerRating) float64 { return r.Averages.Blocks }},
	CategoryFieldGoalPct: {
		value:       func(r PlayerRating) float64 { return r.Averages.FieldGoalPct },
		minAttempts: 10,
		attempts:    func(t Totals) int { return t.FieldGoalsAttempted },
	},
	CategoryThreePointPct: {
		value:       func(r PlayerRating) float64 { return r.Averages.ThreePointPct },
		minAttempts: 5,
		attempts:    func(t Totals) int { return t.ThreePointsAttempted },
	},
	CategoryFreeThrowPct: {
		value:       func(r PlayerRating) float64 { return r.Averages.FreeThrowPct },
		minAttempts: 5,
		attempts:    func(t Totals) int { return t.FreeThrowsAttempted },
	},
}

// ParseCategory maps a request string onto a known Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categories[c]; !ok {
		return "", fmt.Errorf("unknown stat category %q", s)
	}
	return c, nil
}

// CategoryValue returns the rating's value for a category. The category must
// come from ParseCategory or the package constants.
func CategoryValue(r PlayerRating, category Category) float64 {
	return categories[category].value(r)
}

// LeaderboardEntry is one qualified player's position in a category.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	PlayerID    int64   `json:"-"`
	PlayerName  string  `json:"player_name,omitempty"`
	Value       float64 `json:"value"`
	GamesPlayed int     `json:"games_played"`
}

// Leaderboard ranks qualified players by a category's value, descending.
// Players with zero games are excluded; percentage categories additionally
// require the category's minimum attempt count. Equal values retain input
// order. A limit of zero or less falls back to DefaultLeaderboardLimit.
func Leaderboard(ratings []PlayerRating, category Category, limit int) []LeaderboardEntry {
	spec := categories[category]
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	entries := make([]LeaderboardEntry, 0, len(ratings))
	for _, r := range ratings {
		if r.Totals.GamesPlayed == 0 {
			continue
		}
		if spec.minAttempts > 0 && spec.attempts(r.Totals) < spec.minAttempts {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			PlayerID:    r.PlayerID,
			PlayerName:  r.PlayerName,
			Value:       spec.value(r),
			GamesPlayed: r.Totals.GamesPlayed,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// ComparisonRecord is one side of a pairwise player comparison: totals and
// per-game rates, with no cross-player normalization.
type ComparisonRecord struct {
	PlayerID   int64    `json:"-"`
	PlayerName string   `json:"player_name,omitempty"`
	Totals     Totals   `json:"totals"`
	Averages   Averages `json:"averages"`
}

// ComparePlayer derives one comparison record from a player's stat lines. A
// player with no lines yields an explicit all-zero record rather than being
// omitted.
func ComparePlayer(playerID int64, lines []StatLine) ComparisonRecord {
	totals := Accumulate(lines)
	return ComparisonRecord{
		PlayerID: playerID,
		Totals:   totals,
		Averages: Rates(totals),
	}
}
