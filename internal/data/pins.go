package data

import (
	"CourtsideApi/internal/pins"
	"context"
	"database/sql"
	"errors"
)

var pinLength = 6

// newPin inserts a fresh random pin in the given scope, retrying on the rare
// collision with an existing pin.
func newPin(scope string, tx *sql.Tx, ctx context.Context) (*pins.Pin, error) {
	stmt := `
		INSERT INTO pins (pin, scope)
		VALUES ($1, $2)
		RETURNING id`

	pin := &pins.Pin{
		Pin:   pins.GeneratePin(pinLength),
		Scope: scope,
	}

	err := tx.QueryRowContext(ctx, stmt, pin.Pin, pin.Scope).Scan(&pin.ID)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "pins_pin_key"`:
			return nil, pins.ErrDuplicatePin
		default:
			return nil, err
		}
	}

	return pin, nil
}

func newPinWithRetry(scope string, tx *sql.Tx, ctx context.Context) (*pins.Pin, error) {
	pin, err := newPin(scope, tx, ctx)
	if err != nil {
		if errors.Is(err, pins.ErrDuplicatePin) {
			return newPinWithRetry(scope, tx, ctx)
		}
		return nil, err
	}

	return pin, nil
}

func deletePin(pinID int64, scope string, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		DELETE FROM pins
		WHERE id = $1 AND scope = $2`

	_, err := tx.ExecContext(ctx, stmt, pinID, scope)
	return err
}
