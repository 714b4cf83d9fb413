package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
	// ErrLockTimeout is returned when a row lock could not be acquired in time.
	ErrLockTimeout = errors.New("lock timeout")
	// ErrSerialization is returned when the backend aborted the transaction
	// because of a serialization failure or a deadlock. The transaction can
	// be retried as a whole.
	ErrSerialization = errors.New("serialization failure")
	// ErrReadOnly is returned when a write is attempted through a snapshot handle.
	ErrReadOnly = errors.New("read-only storage")
)

// IsTransient reports whether err is a storage failure that may succeed when
// the whole transaction is retried.
func IsTransient(err error) bool {
	return errors.Is(err, ErrLockTimeout) || errors.Is(err, ErrSerialization)
}
