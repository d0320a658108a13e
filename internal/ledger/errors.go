package ledger

import "errors"

var (
	// ErrNotOpen is raised (as a panic) when a Store is used before Open.
	ErrNotOpen = errors.New("ledger: store used before Open")

	ErrPersonNotFound     = errors.New("person not found")
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrItemOutOfRange     = errors.New("settlement item index out of range")
	ErrAlreadyExists      = errors.New("already exists")

	// ErrPersist wraps failures of the underlying storage.Store. The in-memory
	// change that triggered the write has already been applied and stays.
	ErrPersist = errors.New("failed to persist ledger")
)
