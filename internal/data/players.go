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

type Player struct {
	ID         int64     `json:"-"`
	PinID      pins.Pin  `json:"pin"`
	UserID     int64     `json:"-"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	PrefNumber int       `json:"pref_number"`
	CreatedAt  time.Time `json:"-"`
	Version    int32     `json:"-"`
	IsActive   bool      `json:"is_active"`
}

func ValidatePlayer(v *validator.Validator, player *Player) {
	v.Check(player.FirstName != "", "first_name", "must be provided")
	v.Check(len(player.FirstName) <= 20, "first_name", "must be 20 characters or less")

	v.Check(player.LastName != "", "last_name", "must be provided")
	v.Check(len(player.LastName) <= 20, "last_name", "must be 20 characters or less")

	v.Check(player.PrefNumber >= 0, "pref_number", "must be 0 or greater")
	v.Check(player.PrefNumber < 100, "pref_number", "must be less than 100")
}

type PlayerModel struct {
	db *sql.DB
}

func (m *PlayerModel) Insert(player *Player) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	pin, err := newPinWithRetry(pins.PinScopePlayers, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}
	player.PinID = *pin

	stmt := `
		INSERT INTO players (pin_id, user_id, first_name, last_name, pref_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version, is_active`

	args := []any{player.PinID.ID, player.UserID, player.FirstName, player.LastName,
		player.PrefNumber}

	err = tx.QueryRowContext(ctx, stmt, args...).Scan(
		&player.ID,
		&player.CreatedAt,
		&player.Version,
		&player.IsActive,
	)
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

func (m *PlayerModel) Get(userID int64, pin string) (*Player, error) {
	stmt := `
		SELECT players.id, pins.id, pins.pin, pins.scope, players.user_id, players.first_name,
			players.last_name, players.pref_number, players.created_at, players.version,
			players.is_active
		FROM players
		INNER JOIN pins ON players.pin_id = pins.id
		WHERE players.user_id = $1 AND pins.pin = $2`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var player Player
	err := m.db.QueryRowContext(ctx, stmt, userID, pin).Scan(
		&player.ID,
		&player.PinID.ID,
		&player.PinID.Pin,
		&player.PinID.Scope,
		&player.UserID,
		&player.FirstName,
		&player.LastName,
		&player.PrefNumber,
		&player.CreatedAt,
		&player.Version,
		&player.IsActive,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &player, nil
}

func (m *PlayerModel) GetAll(userID int64, name string, filters Filters) ([]*Player, Metadata,
	error) {
	stmt := fmt.Sprintf(`
		SELECT count(*) OVER(), players.id, pins.id, pins.pin, pins.scope, players.user_id,
			players.first_name, players.last_name, players.pref_number, players.created_at,
			players.version, players.is_active
		FROM players
		INNER JOIN pins ON players.pin_id = pins.id
		WHERE players.user_id = $1
		AND (to_tsvector('simple', players.first_name || ' ' || players.last_name)
			@@ plainto_tsquery('simple', $2) OR $2 = '')
		ORDER BY %s %s, players.id ASC
		LIMIT $3 OFFSET $4`, filters.sortColumn(), filters.sortDirection())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, userID, name, filters.limit(), filters.offset())
	if err != nil {
		return nil, Metadata{}, err
	}
	defer rows.Close()

	totalRecords := 0
	players := make([]*Player, 0)
	for rows.Next() {
		var player Player
		err := rows.Scan(
			&totalRecords,
			&player.ID,
			&player.PinID.ID,
			&player.PinID.Pin,
			&player.PinID.Scope,
			&player.UserID,
			&player.FirstName,
			&player.LastName,
			&player.PrefNumber,
			&player.CreatedAt,
			&player.Version,
			&player.IsActive,
		)
		if err != nil {
			return nil, Metadata{}, err
		}
		players = append(players, &player)
	}
	if err = rows.Err(); err != nil {
		return nil, Metadata{}, err
	}

	metadata := CalculateMetadata(totalRecords, filters.Page, filters.PageSize)

	return players, metadata, nil
}

// GetNamesByIDs resolves player display names for output decoration.
func (m *PlayerModel) GetNamesByIDs(playerIDs []int64) (map[int64]string, error) {
	stmt := `
		SELECT id, first_name || ' ' || last_name
		FROM players
		WHERE id = ANY($1)`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, pq.Array(playerIDs))
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

func (m *PlayerModel) Update(player *Player) error {
	stmt := `
		UPDATE players
		SET first_name = $1, last_name = $2, pref_number = $3, is_active = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version`

	args := []any{
		player.FirstName,
		player.LastName,
		player.PrefNumber,
		player.IsActive,
		player.ID,
		player.Version,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := m.db.QueryRowContext(ctx, stmt, args...).Scan(&player.Version)
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

func (m *PlayerModel) Delete(userID int64, pin string) error {
	stmt := `
		DELETE FROM players
		USING pins
		WHERE players.pin_id = pins.id AND players.user_id = $1 AND pins.pin = $2
		RETURNING players.pin_id`

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

	err = deletePin(pinID, pins.PinScopePlayers, tx, ctx)
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
