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

var (
	ErrDuplicateTeamName = errors.New("duplicate team name")
	ErrPlayerNotFound    = errors.New("player(s) not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrPlayerNotOnTeam   = errors.New("player not on team")
	ErrDuplicatePlayer   = errors.New("duplicate player team assignment")
)

type Team struct {
	ID         int64     `json:"-"`
	PinID      pins.Pin  `json:"pin"`
	UserID     int64     `json:"-"`
	LeagueID   int64     `json:"-"`
	Name       string    `json:"name"`
	Size       int       `json:"size"`
	CreatedAt  time.Time `json:"-"`
	Version    int32     `json:"-"`
	IsActive   bool      `json:"is_active"`
	PlayerPins []string  `json:"-"`
	Players    []*Player `json:"players,omitempty"`
}

func ValidateTeam(v *validator.Validator, team *Team) {
	v.Check(team.Name != "", "name", "must be provided")
	v.Check(len(team.Name) <= 20, "name", "must be 20 characters or less")
	v.Check(validator.Unique(team.PlayerPins), "player_pins", "must not contain duplicates")
}

type TeamModel struct {
	db *sql.DB
}

func (m *TeamModel) Insert(team *Team) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	pin, err := newPinWithRetry(pins.PinScopeTeams, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}
	team.PinID = *pin

	stmt := `
		INSERT INTO teams (pin_id, user_id, league_id, name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version, is_active`

	args := []any{team.PinID.ID, team.UserID, team.LeagueID, team.Name}

	err = tx.QueryRowContext(ctx, stmt, args...).Scan(
		&team.ID,
		&team.CreatedAt,
		&team.Version,
		&team.IsActive,
	)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint`+
			` "unq_leagueid_team_name"`:
			return ErrDuplicateTeamName
		default:
			return err
		}
	}

	if len(team.PlayerPins) != 0 {
		err := assignPlayers(team, team.PlayerPins, tx, ctx)
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return rollbackErr
			}
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

func (m *TeamModel) Get(userID int64, pin string) (*Team, error) {
	stmt := `
		SELECT teams.id, pins.id, pins.pin, pins.scope, teams.user_id, teams.league_id,
			teams.name, teams.size, teams.created_at, teams.version, teams.is_active
		FROM teams
		INNER JOIN pins ON teams.pin_id = pins.id
		WHERE teams.user_id = $1 AND pins.pin = $2`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var team Team
	err := m.db.QueryRowContext(ctx, stmt, userID, pin).Scan(
		&team.ID,
		&team.PinID.ID,
		&team.PinID.Pin,
		&team.PinID.Scope,
		&team.UserID,
		&team.LeagueID,
		&team.Name,
		&team.Size,
		&team.CreatedAt,
		&team.Version,
		&team.IsActive,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &team, nil
}

func (m *TeamModel) GetAllForLeague(leagueID int64, name string, filters Filters) ([]*Team,
	Metadata, error) {
	stmt := fmt.Sprintf(`
		SELECT count(*) OVER(), teams.id, pins.id, pins.pin, pins.scope, teams.user_id,
			teams.league_id, teams.name, teams.size, teams.created_at, teams.version,
			teams.is_active
		FROM teams
		INNER JOIN pins ON teams.pin_id = pins.id
		WHERE teams.league_id = $1
		AND (to_tsvector('simple', teams.name) @@ plainto_tsquery('simple', $2) OR $2 = '')
		ORDER BY %s %s, teams.id ASC
		LIMIT $3 OFFSET $4`, filters.sortColumn(), filters.sortDirection())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, leagueID, name, filters.limit(), filters.offset())
	if err != nil {
		return nil, Metadata{}, err
	}
	defer rows.Close()

	totalRecords := 0
	teams := make([]*Team, 0)
	for rows.Next() {
		var team Team
		err := rows.Scan(
			&totalRecords,
			&team.ID,
			&team.PinID.ID,
			&team.PinID.Pin,
			&team.PinID.Scope,
			&team.UserID,
			&team.LeagueID,
			&team.Name,
			&team.Size,
			&team.CreatedAt,
			&team.Version,
			&team.IsActive,
		)
		if err != nil {
			return nil, Metadata{}, err
		}
		teams = append(teams, &team)
	}
	if err = rows.Err(); err != nil {
		return nil, Metadata{}, err
	}

	metadata := CalculateMetadata(totalRecords, filters.Page, filters.PageSize)

	return teams, metadata, nil
}

// GetIDsForLeague returns team ids in creation order, the stable input order
// the standings engine preserves through ranking ties.
func (m *TeamModel) GetIDsForLeague(leagueID int64) ([]int64, error) {
	stmt := `
		SELECT id
		FROM teams
		WHERE league_id = $1
		ORDER BY id ASC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		err := rows.Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// GetNamesByIDs resolves team display names. Callers decorating output fall
// back to a placeholder for ids missing from the result.
func (m *TeamModel) GetNamesByIDs(teamIDs []int64) (map[int64]string, error) {
	stmt := `
		SELECT id, name
		FROM teams
		WHERE id = ANY($1)`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, pq.Array(teamIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		err := rows.Scan(&id, &name)
		if err != nil {
			return nil, err
		}
		names[id] = name
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

func (m *TeamModel) Update(team *Team) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt := `
		UPDATE teams
		SET name = $1, is_active = $2, version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version`

	args := []any{team.Name, team.IsActive, team.ID, team.Version}

	err = tx.QueryRowContext(ctx, stmt, args...).Scan(&team.Version)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		case err.Error() == `pq: duplicate key value violates unique constraint`+
			` "unq_leagueid_team_name"`:
			return ErrDuplicateTeamName
		default:
			return err
		}
	}

	assignList, unassignList := parsePinList(team.PlayerPins)
	if len(assignList) != 0 {
		err := assignPlayers(team, assignList, tx, ctx)
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return rollbackErr
			}
			return err
		}
	}
	if len(unassignList) != 0 {
		err := unassignPlayers(team, unassignList, tx, ctx)
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return rollbackErr
			}
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

func (m *TeamModel) Delete(userID int64, pin string) error {
	stmt := `
		DELETE FROM teams
		USING pins
		WHERE teams.pin_id = pins.id AND teams.user_id = $1 AND pins.pin = $2
		RETURNING teams.pin_id`

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

	err = deletePin(pinID, pins.PinScopeTeams, tx, ctx)
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

func assignPlayers(team *Team, playerPins []string, tx *sql.Tx, ctx context.Context) error {
	insertStmt := `
		INSERT INTO teams_players (user_id, team_id, player_id)
		SELECT $1, $2, players.id
		FROM players
		INNER JOIN pins ON players.pin_id = pins.id
		WHERE pins.pin = ANY($3)`

	result, err := tx.ExecContext(ctx, insertStmt, team.UserID, team.ID, pq.Array(playerPins))
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint`+
			` "teams_players_pkey"`:
			return ErrDuplicatePlayer
		default:
			return err
		}
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if inserted != int64(len(playerPins)) {
		return ErrPlayerNotFound
	}

	return adjustTeamSize(team, int(inserted), tx, ctx)
}

func unassignPlayers(team *Team, playerPins []string, tx *sql.Tx, ctx context.Context) error {
	deleteStmt := `
		DELETE FROM teams_players
		USING players, pins
		WHERE teams_players.player_id = players.id
		AND players.pin_id = pins.id
		AND teams_players.team_id = $1
		AND pins.pin = ANY($2)`

	result, err := tx.ExecContext(ctx, deleteStmt, team.ID, pq.Array(playerPins))
	if err != nil {
		return err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted != int64(len(playerPins)) {
		return ErrPlayerNotOnTeam
	}

	return adjustTeamSize(team, -int(deleted), tx, ctx)
}

func adjustTeamSize(team *Team, delta int, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		UPDATE teams
		SET size = size + $1, version = version + 1
		WHERE id = $2 AND size = $3 AND version = $4
		RETURNING size, version`

	args := []any{delta, team.ID, team.Size, team.Version}

	err := tx.QueryRowContext(ctx, stmt, args...).Scan(&team.Size, &team.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		}
		return err
	}

	return nil
}
