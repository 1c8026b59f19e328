// Package stats derives season aggregates, shooting rates, advanced metrics,
// leaderboards and team standings from raw per-game stat lines. Every
// function is a pure computation over its inputs; callers are responsible for
// restricting inputs to completed games.
package stats

import "time"

// StatLine is one player's recorded counting stats for a single completed
// game. At most one line exists per (player, game) pair. A line with zero
// minutes still counts as a game played.
type StatLine struct {
	GameID                int64 `json:"-"`
	PlayerID              int64 `json:"-"`
	TeamID                int64 `json:"-"`
	Minutes               int   `json:"minutes"`
	Points                int   `json:"points"`
	FieldGoalsMade        int   `json:"field_goals_made"`
	FieldGoalsAttempted   int   `json:"field_goals_attempted"`
	ThreePointsMade       int   `json:"three_points_made"`
	ThreePointsAttempted  int   `json:"three_points_attempted"`
	FreeThrowsMade        int   `json:"free_throws_made"`
	FreeThrowsAttempted   int   `json:"free_throws_attempted"`
	Rebounds              int   `json:"rebounds"`
	OffensiveRebounds     *int  `json:"offensive_rebounds,omitempty"`
	DefensiveRebounds     *int  `json:"defensive_rebounds,omitempty"`
	Assists               int   `json:"assists"`
	Steals                int   `json:"steals"`
	Blocks                int   `json:"blocks"`
	Turnovers             int   `json:"turnovers"`
	Fouls                 int   `json:"fouls"`
}

// TeamLine carries rebounds recorded against a team rather than any player.
// Team aggregates must count these on top of attributed player rebounds.
type TeamLine struct {
	GameID            int64 `json:"-"`
	TeamID            int64 `json:"-"`
	OffensiveRebounds int   `json:"offensive_rebounds"`
	DefensiveRebounds int   `json:"defensive_rebounds"`
}

// GameResult is the completed-game view the standings engine consumes.
type GameResult struct {
	GameID     int64
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  int
	AwayScore  int
	EndedAt    time.Time
}
