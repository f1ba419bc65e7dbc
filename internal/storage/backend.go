package storage

import (
	"context"

	"github.com/alexanderramin/weekboard/internal/auth"
	"github.com/alexanderramin/weekboard/internal/domain"
)

// Backend is the uniform persistence contract the coordinator talks to. Two
// implementations exist: LocalBackend over the versioned serializer, and
// RemoteBackend over the task API. Which one is in use is a pure function of
// authentication status (see Select).
type Backend interface {
	// ListTasks returns every stored task. Fails with ErrUnavailable when
	// the medium is unreachable.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// CreateTask stores a new task, filling id and createdAt if absent, and
	// returns the canonical stored record.
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)

	// UpdateTask merges a partial update into the stored task and returns
	// the full updated record. Fails with ErrNotFound for an unknown id.
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, error)

	// DeleteTask removes a task. Idempotent: deleting an unknown id is not
	// an error.
	DeleteTask(ctx context.Context, id string) error
}

// Select picks the backend for an authentication status: a signed-in user
// syncs to the remote API, everyone else (guest, still loading, auth error)
// stays on local persistence. Switching status means a full reload through
// the new backend, tasks are never merged across backends.
func Select(status auth.Status, local, remote Backend) Backend {
	if status == auth.StatusAuthenticated {
		return remote
	}
	return local
}
