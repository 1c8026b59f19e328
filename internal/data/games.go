package data

import (
	"CourtsideApi/internal/pins"
	"CourtsideApi/internal/validator"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type GameStatus int64

const (
	GameScheduled GameStatus = iota
	GameActive
	GamePaused
	GameCompleted
)

func (s GameStatus) MarshalJSON() ([]byte, error) {
	switch s {
	case GameScheduled:
		return []byte(`"scheduled"`), nil
	case GameActive:
		return []byte(`"active"`), nil
	case GamePaused:
		return []byte(`"paused"`), nil
	case GameCompleted:
		return []byte(`"completed"`), nil
	default:
		return nil, errors.New("invalid game status")
	}
}

type Game struct {
	ID          int64      `json:"-"`
	PinID       pins.Pin   `json:"pin"`
	UserID      int64      `json:"-"`
	LeagueID    int64      `json:"-"`
	HomeTeamID  int64      `json:"-"`
	AwayTeamID  int64      `json:"-"`
	HomeTeamPin string     `json:"home_team_pin"`
	AwayTeamPin string     `json:"away_team_pin"`
	HomeScore   int        `json:"home_score"`
	AwayScore   int        `json:"away_score"`
	Status      GameStatus `json:"status"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	CreatedAt   time.Time  `json:"-"`
	Version     int64      `json:"-"`
}

func ValidateGame(v *validator.Validator, game *Game) {
	v.Check(game.HomeTeamPin != "", "home_team_pin", "must be provided")
	v.Check(game.AwayTeamPin != "", "away_team_pin", "must be provided")
	v.Check(game.HomeTeamPin != game.AwayTeamPin, "away_team_pin", "cannot match home team")
	v.Check(!game.ScheduledAt.IsZero(), "scheduled_at", "must be provided")
	v.Check(game.HomeScore >= 0, "home_score", "must be 0 or greater")
	v.Check(game.AwayScore >= 0, "away_score", "must be 0 or greater")
}

type GameModel struct {
	db *sql.DB
}

func (m *GameModel) Insert(game *Game) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	pin, err := newPinWithRetry(pins.PinScopeGames, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}
	game.PinID = *pin

	stmt := `
		INSERT INTO games (pin_id, user_id, league_id, home_team_id, away_team_id, scheduled_at)
		SELECT $1, $2, $3, home.id, away.id, $4
		FROM teams AS home
		INNER JOIN pins AS home_pins ON home.pin_id = home_pins.id
		CROSS JOIN teams AS away
		INNER JOIN pins AS away_pins ON away.pin_id = away_pins.id
		WHERE home_pins.pin = $5 AND away_pins.pin = $6
		AND home.league_id = $3 AND away.league_id = $3
		RETURNING id, home_team_id, away_team_id, created_at, version, status`

	args := []any{
		game.PinID.ID,
		game.UserID,
		game.LeagueID,
		game.ScheduledAt,
		game.HomeTeamPin,
		game.AwayTeamPin,
	}

	err = tx.QueryRowContext(ctx, stmt, args...).Scan(
		&game.ID,
		&game.HomeTeamID,
		&game.AwayTeamID,
		&game.CreatedAt,
		&game.Version,
		&game.Status,
	)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrTeamNotFound
		default:
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	return nil
}

func (m *GameModel) Get(userID int64, pin string) (*Game, error) {
	stmt := `
		SELECT games.id, pins.id, pins.pin, pins.scope, games.user_id, games.league_id,
			games.home_team_id, games.away_team_id, home_pins.pin, away_pins.pin,
			games.home_score, games.away_score, games.status, games.scheduled_at,
			games.started_at, games.ended_at, games.created_at, games.version
		FROM games
		INNER JOIN pins ON games.pin_id = pins.id
		INNER JOIN teams AS home ON games.home_team_id = home.id
		INNER JOIN pins AS home_pins ON home.pin_id = home_pins.id
		INNER JOIN teams AS away ON games.away_team_id = away.id
		INNER JOIN pins AS away_pins ON away.pin_id = away_pins.id
		WHERE games.user_id = $1 AND pins.pin = $2`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var game Game
	err := m.db.QueryRowContext(ctx, stmt, userID, pin).Scan(
		&game.ID,
		&game.PinID.ID,
		&game.PinID.Pin,
		&game.PinID.Scope,
		&game.UserID,
		&game.LeagueID,
		&game.HomeTeamID,
		&game.AwayTeamID,
		&game.HomeTeamPin,
		&game.AwayTeamPin,
		&game.HomeScore,
		&game.AwayScore,
		&game.Status,
		&game.ScheduledAt,
		&game.StartedAt,
		&game.EndedAt,
		&game.CreatedAt,
		&game.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &game, nil
}

func (m *GameModel) GetAllForLeague(leagueID int64, statuses []GameStatus,
	filters Filters) ([]*Game, Metadata, error) {
	stmt := fmt.Sprintf(`
		SELECT count(*) OVER(), games.id, pins.id, pins.pin, pins.scope, games.user_id,
			games.league_id, games.home_team_id, games.away_team_id, home_pins.pin,
			away_pins.pin, games.home_score, games.away_score, games.status,
			games.scheduled_at, games.started_at, games.ended_at, games.created_at,
			games.version
		FROM games
		INNER JOIN pins ON games.pin_id = pins.id
		INNER JOIN teams AS home ON games.home_team_id = home.id
		INNER JOIN pins AS home_pins ON home.pin_id = home_pins.id
		INNER JOIN teams AS away ON games.away_team_id = away.id
		INNER JOIN pins AS away_pins ON away.pin_id = away_pins.id
		WHERE games.league_id = $1
		AND (($2 IS FALSE) OR games.status = ANY($3::integer[]))
		ORDER BY %s %s, games.id ASC
		LIMIT $4 OFFSET $5`, filters.sortColumn(), filters.sortDirection())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	statusValues := make([]int64, 0, len(statuses))
	for _, s := range statuses {
		statusValues = append(statusValues, int64(s))
	}

	args := []any{
		leagueID,
		statuses != nil,
		pq.Array(statusValues),
		filters.limit(),
		filters.offset(),
	}

	rows, err := m.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, Metadata{}, err
	}
	defer rows.Close()

	totalRecords := 0
	games := make([]*Game, 0)
	for rows.Next() {
		var game Game
		err := rows.Scan(
			&totalRecords,
			&game.ID,
			&game.PinID.ID,
			&game.PinID.Pin,
			&game.PinID.Scope,
			&game.UserID,
			&game.LeagueID,
			&game.HomeTeamID,
			&game.AwayTeamID,
			&game.HomeTeamPin,
			&game.AwayTeamPin,
			&game.HomeScore,
			&game.AwayScore,
			&game.Status,
			&game.ScheduledAt,
			&game.StartedAt,
			&game.EndedAt,
			&game.CreatedAt,
			&game.Version,
		)
		if err != nil {
			return nil, Metadata{}, err
		}
		games = append(games, &game)
	}
	if err = rows.Err(); err != nil {
		return nil, Metadata{}, err
	}

	metadata := CalculateMetadata(totalRecords, filters.Page, filters.PageSize)

	return games, metadata, nil
}

// GetCompletedForLeague is the single completed-games lookup every statistics
// component is fed from. Only games in this result set are eligible for any
// derived statistic.
func (m *GameModel) GetCompletedForLeague(leagueID int64) ([]*Game, error) {
	stmt := `
		SELECT games.id, games.home_team_id, games.away_team_id, games.home_score,
			games.away_score, games.ended_at
		FROM games
		WHERE games.league_id = $1 AND games.status = $2
		ORDER BY games.ended_at ASC, games.id ASC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, leagueID, GameCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]*Game, 0)
	for rows.Next() {
		game := Game{Status: GameCompleted}
		err := rows.Scan(
			&game.ID,
			&game.HomeTeamID,
			&game.AwayTeamID,
			&game.HomeScore,
			&game.AwayScore,
			&game.EndedAt,
		)
		if err != nil {
			return nil, err
		}
		games = append(games, &game)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return games, nil
}

// Update applies an administrative correction to a game's scores, status and
// timestamps. Completed games are otherwise immutable.
func (m *GameModel) Update(game *Game) error {
	stmt := `
		UPDATE games
		SET home_score = $1, away_score = $2, status = $3, scheduled_at = $4, started_at = $5,
			ended_at = $6, version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING version`

	args := []any{
		game.HomeScore,
		game.AwayScore,
		game.Status,
		game.ScheduledAt,
		game.StartedAt,
		game.EndedAt,
		game.ID,
		game.Version,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := m.db.QueryRowContext(ctx, stmt, args...).Scan(&game.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}

	return nil
}

func (m *GameModel) Delete(userID int64, pin string) error {
	stmt := `
		DELETE FROM games
		USING pins
		WHERE games.pin_id = pins.id AND games.user_id = $1 AND pins.pin = $2
		RETURNING games.pin_id`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var pinID int64
	err = tx.QueryRowContext(ctx, stmt, userID, pin).Scan(&pinID)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}

	err = deletePin(pinID, pins.PinScopeGames, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	err = tx.Commit()
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	return nil
}
