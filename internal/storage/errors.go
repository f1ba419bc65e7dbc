package storage

import "errors"

var (
	// ErrUnavailable indicates the backing medium is unreachable or corrupt.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrNotFound indicates an update or delete referenced a missing task id.
	ErrNotFound = errors.New("task not found")

	// ErrTransport indicates a remote call failed in flight (network error,
	// unexpected status). Triggers optimistic rollback at the coordinator.
	ErrTransport = errors.New("transport failure")
)
