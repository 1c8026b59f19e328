package data

import (
	"CourtsideApi/internal/stats"
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// StatLineModel reads the per-game box-score rows recorded during live play.
// The statistics engine only ever sees rows belonging to completed games, so
// every method takes the caller's completed-game id set.
type StatLineModel struct {
	db *sql.DB
}

func (m *StatLineModel) GetForGames(gameIDs []int64) ([]stats.StatLine, error) {
	if len(gameIDs) == 0 {
		return []stats.StatLine{}, nil
	}

	stmt := `
		SELECT game_id, player_id, team_id, minutes, points, field_goals_made,
			field_goals_attempted, three_points_made, three_points_attempted,
			free_throws_made, free_throws_attempted, rebounds, offensive_rebounds,
			defensive_rebounds, assists, steals, blocks, turnovers, fouls
		FROM player_stat_lines
		WHERE game_id = ANY($1)
		ORDER BY game_id ASC, player_id ASC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, pq.Array(gameIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStatLines(rows)
}

func (m *StatLineModel) GetForPlayer(playerID int64, gameIDs []int64) ([]stats.StatLine, error) {
	if len(gameIDs) == 0 {
		return []stats.StatLine{}, nil
	}

	stmt := `
		SELECT game_id, player_id, team_id, minutes, points, field_goals_made,
			field_goals_attempted, three_points_made, three_points_attempted,
			free_throws_made, free_throws_attempted, rebounds, offensive_rebounds,
			defensive_rebounds, assists, steals, blocks, turnovers, fouls
		FROM player_stat_lines
		WHERE player_id = $1 AND game_id = ANY($2)
		ORDER BY game_id ASC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, playerID, pq.Array(gameIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStatLines(rows)
}

func (m *StatLineModel) GetTeamLinesForGames(gameIDs []int64) ([]stats.TeamLine, error) {
	if len(gameIDs) == 0 {
		return []stats.TeamLine{}, nil
	}

	stmt := `
		SELECT game_id, team_id, offensive_rebounds, defensive_rebounds
		FROM team_stat_lines
		WHERE game_id = ANY($1)
		ORDER BY game_id ASC, team_id ASC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, pq.Array(gameIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teamLines := make([]stats.TeamLine, 0)
	for rows.Next() {
		var line stats.TeamLine
		err := rows.Scan(
			&line.GameID,
			&line.TeamID,
			&line.OffensiveRebounds,
			&line.DefensiveRebounds,
		)
		if err != nil {
			return nil, err
		}
		teamLines = append(teamLines, line)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return teamLines, nil
}

func scanStatLines(rows *sql.Rows) ([]stats.StatLine, error) {
	lines := make([]stats.StatLine, 0)
	for rows.Next() {
		var line stats.StatLine
		var offReb, defReb sql.NullInt64
		err := rows.Scan(
			&line.GameID,
			&line.PlayerID,
			&line.TeamID,
			&line.Minutes,
			&line.Points,
			&line.FieldGoalsMade,
			&line.FieldGoalsAttempted,
			&line.ThreePointsMade,
			&line.ThreePointsAttempted,
			&line.FreeThrowsMade,
			&line.FreeThrowsAttempted,
			&line.Rebounds,
			&offReb,
			&defReb,
			&line.Assists,
			&line.Steals,
			&line.Blocks,
			&line.Turnovers,
			&line.Fouls,
		)
		if err != nil {
			return nil, err
		}
		if offReb.Valid {
			v := int(offReb.Int64)
			line.OffensiveRebounds = &v
		}
		if defReb.Valid {
			v := int(defReb.Int64)
			line.DefensiveRebounds = &v
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
