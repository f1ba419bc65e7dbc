package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/alexanderramin/weekboard/internal/persist"
)

// LocalBackend implements Backend over the versioned serializer. Every
// operation is a whole-envelope read-modify-write, there are no partial
// writes, so the coordinator keeps at most one mutation in flight to avoid
// lost updates.
type LocalBackend struct {
	serializer *persist.Serializer
}

// NewLocalBackend creates a Backend over the given serializer.
func NewLocalBackend(serializer *persist.Serializer) *LocalBackend {
	return &LocalBackend{serializer: serializer}
}

func (b *LocalBackend) ListTasks(ctx context.Context) ([]domain.Task, error) {
	state, err := b.load(ctx)
	if err != nil {
		return nil, err
	}
	return state.Tasks, nil
}

func (b *LocalBackend) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	state, err := b.load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	if task.ID == "" {
		task.ID = domain.NewTaskID(time.Now())
	}
	if task.CreatedAt == 0 {
		task.CreatedAt = time.Now().UnixMilli()
	}
	state.Tasks = append(state.Tasks, task)
	b.serializer.Save(ctx, *state)
	return task, nil
}

func (b *LocalBackend) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, error) {
	state, err := b.load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	for i := range state.Tasks {
		if state.Tasks[i].ID == id {
			patch.Apply(&state.Tasks[i])
			b.serializer.Save(ctx, *state)
			return state.Tasks[i], nil
		}
	}
	return domain.Task{}, fmt.Errorf("updating task %s: %w", id, ErrNotFound)
}

func (b *LocalBackend) DeleteTask(ctx context.Context, id string) error {
	state, err := b.load(ctx)
	if err != nil {
		return err
	}
	for i := range state.Tasks {
		if state.Tasks[i].ID == id {
			state.Tasks = append(state.Tasks[:i], state.Tasks[i+1:]...)
			b.serializer.Save(ctx, *state)
			return nil
		}
	}
	// Deleting an unknown id is not an error.
	return nil
}

// ReplaceAll overwrites the whole persisted state. Used by the coordinator
// for auto-save and bulk import.
func (b *LocalBackend) ReplaceAll(ctx context.Context, state persist.State) {
	b.serializer.Save(ctx, state)
}

// load reads the envelope. An empty medium yields an empty state; only an
// unreachable medium is an error.
func (b *LocalBackend) load(ctx context.Context) (*persist.State, error) {
	state, err := b.serializer.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if state == nil {
		state = &persist.State{}
	}
	return state, nil
}
