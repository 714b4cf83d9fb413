package postgres

import (
	"errors"
	"fmt"
	"tally/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapError translates PostgreSQL error codes into storage sentinel errors.
// The original error stays in the chain.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", storage.ErrConflict, err)
	case pgerrcode.LockNotAvailable:
		return fmt.Errorf("%w: %w", storage.ErrLockTimeout, err)
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return fmt.Errorf("%w: %w", storage.ErrSerialization, err)
	case pgerrcode.ReadOnlySQLTransaction:
		return fmt.Errorf("%w: %w", storage.ErrReadOnly, err)
	default:
		return err
	}
}
