package data

import (
	"CourtsideApi/internal/pins"
	"CourtsideApi/internal/validator"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrDuplicateLeagueName = errors.New("duplicate league name")

type League struct {
	ID        int64     `json:"-"`
	PinID     pins.Pin  `json:"pin"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	Season    string    `json:"season,omitempty"`
	CreatedAt time.Time `json:"-"`
	Version   int32     `json:"-"`
	IsActive  bool      `json:"is_active"`
}

func ValidateLeague(v *validator.Validator, league *League) {
	v.Check(league.Name != "", "name", "must be provided")
	v.Check(len(league.Name) <= 30, "name", "must be 30 characters or less")
	v.Check(len(league.Season) <= 20, "season", "must be 20 characters or less")
}

type LeagueModel struct {
	db *sql.DB
}

func (m *LeagueModel) Insert(league *League) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	pin, err := newPinWithRetry(pins.PinScopeLeagues, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}
	league.PinID = *pin

	stmt := `
		INSERT INTO leagues (pin_id, user_id, name, season)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version, is_active`

	args := []any{league.PinID.ID, league.UserID, league.Name, league.Season}

	err = tx.QueryRowContext(ctx, stmt, args...).Scan(
		&league.ID,
		&league.CreatedAt,
		&league.Version,
		&league.IsActive,
	)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint`+
			` "unq_userid_league_name"`:
			return ErrDuplicateLeagueName
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

func (m *LeagueModel) Get(userID int64, pin string) (*League, error) {
	stmt := `
		SELECT leagues.id, pins.id, pins.pin, pins.scope, leagues.user_id, leagues.name,
			leagues.season, leagues.created_at, leagues.version, leagues.is_active
		FROM leagues
		INNER JOIN pins ON leagues.pin_id = pins.id
		WHERE leagues.user_id = $1 AND pins.pin = $2`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var league League
	err := m.db.QueryRowContext(ctx, stmt, userID, pin).Scan(
		&league.ID,
		&league.PinID.ID,
		&league.PinID.Pin,
		&league.PinID.Scope,
		&league.UserID,
		&league.Name,
		&league.Season,
		&league.CreatedAt,
		&league.Version,
		&league.IsActive,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &league, nil
}

func (m *LeagueModel) GetAll(userID int64, name string, filters Filters) ([]*League, Metadata,
	error) {
	stmt := fmt.Sprintf(`
		SELECT count(*) OVER(), leagues.id, pins.id, pins.pin, pins.scope, leagues.user_id,
			leagues.name, leagues.season, leagues.created_at, leagues.version, leagues.is_active
		FROM leagues
		INNER JOIN pins ON leagues.pin_id = pins.id
		WHERE leagues.user_id = $1
		AND (to_tsvector('simple', leagues.name) @@ plainto_tsquery('simple', $2) OR $2 = '')
		ORDER BY %s %s, leagues.id ASC
		LIMIT $3 OFFSET $4`, filters.sortColumn(), filters.sortDirection())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, userID, name, filters.limit(), filters.offset())
	if err != nil {
		return nil, Metadata{}, err
	}
	defer rows.Close()

	totalRecords := 0
	leagues := make([]*League, 0)
	for rows.Next() {
		var league League
		err := rows.Scan(
			&totalRecords,
			&league.ID,
			&league.PinID.ID,
			&league.PinID.Pin,
			&league.PinID.Scope,
			&league.UserID,
			&league.Name,
			&league.Season,
			&league.CreatedAt,
			&league.Version,
			&league.IsActive,
		)
		if err != nil {
			return nil, Metadata{}, err
		}
		leagues = append(leagues, &league)
	}
	if err = rows.Err(); err != nil {
		return nil, Metadata{}, err
	}

	metadata := CalculateMetadata(totalRecords, filters.Page, filters.PageSize)

	return leagues, metadata, nil
}

func (m *LeagueModel) Update(league *League) error {
	stmt := `
		UPDATE leagues
		SET name = $1, season = $2, is_active = $3, version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version`

	args := []any{league.Name, league.Season, league.IsActive, league.ID, league.Version}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := m.db.QueryRowContext(ctx, stmt, args...).Scan(&league.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		case err.Error() == `pq: duplicate key value violates unique constraint`+
			` "unq_userid_league_name"`:
			return ErrDuplicateLeagueName
		default:
			return err
		}
	}

	return nil
}

func (m *LeagueModel) Delete(userID int64, pin string) error {
	stmt := `
		DELETE FROM leagues
		USING pins
		WHERE leagues.pin_id = pins.id AND leagues.user_id = $1 AND pins.pin = $2
		RETURNING leagues.pin_id`

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

	err = deletePin(pinID, pins.PinScopeLeagues, tx, ctx)
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
