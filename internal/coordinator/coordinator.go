package coordinator

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/alexanderramin/weekboard/internal/auth"
	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/alexanderramin/weekboard/internal/persist"
	"github.com/alexanderramin/weekboard/internal/storage"
	"github.com/alexanderramin/weekboard/internal/store"
)

// Notifier surfaces user-visible error notifications (the toast analog).
type Notifier interface {
	Notify(message string)
}

// NoopNotifier discards all notifications. Useful for tests.
type NoopNotifier struct{}

func (NoopNotifier) Notify(string) {}

// Config wires a Coordinator.
type Config struct {
	Store      *store.Store
	Local      *storage.LocalBackend
	Remote     storage.Backend
	Serializer *persist.Serializer
	Auth       auth.Provider
	Logger     *log.Logger
	Notifier   Notifier
	// AutosaveDelay is the quiet period before coalesced state changes hit
	// local persistence. Defaults to 500ms.
	AutosaveDelay time.Duration
}

// Coordinator bridges the task store to the storage backends. Mutations are
// applied to in-memory state first (instant feedback) and rolled back via
// compensating reducer actions if the backend call fails, so the store is the
// single mutation path in both directions. At most one mutation is in flight
// at a time: the local backend's whole-envelope read-modify-write has no
// concurrency control of its own.
type Coordinator struct {
	store      *store.Store
	local      *storage.LocalBackend
	remote     storage.Backend
	serializer *persist.Serializer
	auth       auth.Provider
	logger     *log.Logger
	notifier   Notifier
	saver      *autosaver

	mu sync.Mutex // serializes mutations and reloads
}

// New creates a Coordinator, hooks debounced auto-save to store changes and
// schedules a full reload on every authentication transition.
func New(cfg Config) *Coordinator {
	if cfg.Logger == nil {
		cfg.Logger = log.StandardLogger()
	}
	if cfg.Notifier == nil {
		cfg.Notifier = NoopNotifier{}
	}
	if cfg.AutosaveDelay <= 0 {
		cfg.AutosaveDelay = 500 * time.Millisecond
	}

	c := &Coordinator{
		store:      cfg.Store,
		local:      cfg.Local,
		remote:     cfg.Remote,
		serializer: cfg.Serializer,
		auth:       cfg.Auth,
		logger:     cfg.Logger,
		notifier:   cfg.Notifier,
	}
	c.saver = newAutosaver(cfg.AutosaveDelay, c.saveLocal)

	c.store.Subscribe(func(st store.State) {
		if c.usingLocal() {
			c.saver.schedule(st)
		}
	})
	c.auth.OnChange(func(auth.Status) {
		// Sign-in/out selects a different backend; reload through it rather
		// than merging task sets.
		if err := c.Load(context.Background()); err != nil {
			c.logger.WithError(err).Warn("reload after auth change")
		}
	})
	return c
}

// Close flushes any pending auto-save and stops the timer.
func (c *Coordinator) Close() {
	c.saver.close()
}

// Flush forces a pending auto-save to disk immediately.
func (c *Coordinator) Flush() {
	c.saver.flush()
}

func (c *Coordinator) backend() storage.Backend {
	return storage.Select(c.auth.Status(), c.local, c.remote)
}

func (c *Coordinator) usingLocal() bool {
	return c.auth.Status() != auth.StatusAuthenticated
}

func (c *Coordinator) saveLocal(st store.State) {
	c.local.ReplaceAll(context.Background(), persist.State{
		Tasks:       st.Tasks,
		CurrentWeek: st.CurrentWeek,
	})
}

// Load populates the store through the currently selected backend. The
// loading flag never hangs: it is cleared on success and failure alike, and a
// failed load falls back to an empty task list plus a surfaced error.
func (c *Coordinator) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Dispatch(store.SetLoading{Loading: true})
	week := domain.CurrentWeek()

	tasks, err := c.backend().ListTasks(ctx)
	if err != nil {
		c.store.Dispatch(store.LoadState{Tasks: nil, CurrentWeek: &week})
		c.fail("loading tasks", err)
		return err
	}

	c.store.Dispatch(store.LoadState{Tasks: tasks, CurrentWeek: &week})
	c.store.Dispatch(store.SetError{})
	return nil
}

// CreateTask optimistically appends the task, then persists it. On backend
// failure the optimistic task is removed again. A remote create that returns
// a canonical id replaces the provisional client-assigned one.
func (c *Coordinator) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	if err := task.Validate(); err != nil {
		c.notifier.Notify(err.Error())
		return domain.Task{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if task.ID == "" {
		task.ID = domain.NewTaskID(time.Now())
	}
	if task.CreatedAt == 0 {
		task.CreatedAt = time.Now().UnixMilli()
	}

	st := c.store.Dispatch(store.AddTask{Task: task})
	applied, _ := st.TaskByID(task.ID)

	created, err := c.backend().CreateTask(ctx, applied)
	if err != nil {
		c.store.Dispatch(store.DeleteTask{ID: task.ID})
		c.fail("creating task", err)
		return domain.Task{}, err
	}
	if created.ID != applied.ID {
		c.store.Dispatch(store.AdoptTaskID{OldID: applied.ID, NewID: created.ID})
		applied.ID = created.ID
	}
	return applied, nil
}

// UpdateTask optimistically merges the patch, then persists it. On failure
// the inverse patch, built from the snapshot captured at dispatch time,
// restores the pre-update field values exactly.
func (c *Coordinator) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) error {
	if patch.Title != nil {
		if err := (&domain.Task{Title: *patch.Title}).Validate(); err != nil {
			c.notifier.Notify(err.Error())
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, ok := c.store.State().TaskByID(id)
	if !ok {
		return fmt.Errorf("updating task %s: %w", id, storage.ErrNotFound)
	}

	st := c.store.Dispatch(store.UpdateTask{ID: id, Patch: patch})
	cur, _ := st.TaskByID(id)

	if _, err := c.backend().UpdateTask(ctx, id, patch); err != nil {
		c.store.Dispatch(store.UpdateTask{ID: id, Patch: domain.PatchOf(cur, prev)})
		c.fail("updating task", err)
		return err
	}
	return nil
}

// DeleteTask optimistically removes the task; a backend failure re-inserts it
// at its previous position.
func (c *Coordinator) DeleteTask(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, ok := c.store.State().TaskByID(id)
	if !ok {
		// Idempotent like the backends.
		return nil
	}

	c.store.Dispatch(store.DeleteTask{ID: id})

	if err := c.backend().DeleteTask(ctx, id); err != nil {
		order := prev.Order
		c.store.Dispatch(store.AddTask{Task: prev, Order: &order})
		c.fail("deleting task", err)
		return err
	}
	return nil
}

// ToggleComplete optimistically flips the completed flag; a backend failure
// flips it back.
func (c *Coordinator) ToggleComplete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, ok := c.store.State().TaskByID(id)
	if !ok {
		return fmt.Errorf("toggling task %s: %w", id, storage.ErrNotFound)
	}

	c.store.Dispatch(store.ToggleComplete{ID: id})

	completed := !prev.Completed
	if _, err := c.backend().UpdateTask(ctx, id, domain.TaskPatch{Completed: &completed}); err != nil {
		c.store.Dispatch(store.ToggleComplete{ID: id})
		c.fail("toggling task", err)
		return err
	}
	return nil
}

// MoveTask reorders/moves a task through the reconciler and persists every
// task whose placement changed. On failure the whole pre-move snapshot is
// restored.
func (c *Coordinator) MoveTask(ctx context.Context, id, column string, order int) error {
	return c.reconcileAndPersist(ctx, store.MoveTask{ID: id, Column: column, Order: order})
}

// HandleDrop is the raw drag form: overID names a column or a sibling task.
func (c *Coordinator) HandleDrop(ctx context.Context, activeID, overID string, columns []string) error {
	return c.reconcileAndPersist(ctx, store.Drop{ActiveID: activeID, OverID: overID, Columns: columns})
}

func (c *Coordinator) reconcileAndPersist(ctx context.Context, action store.Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.store.State()
	next := c.store.Dispatch(action)

	if err := c.persistPlacement(ctx, prev.Tasks, next); err != nil {
		c.store.Dispatch(store.LoadState{Tasks: prev.Tasks, CurrentWeek: prev.CurrentWeek})
		c.fail("moving task", err)
		return err
	}
	return nil
}

// persistPlacement writes a reconciled ordering. The local backend takes the
// whole state in one envelope write; the remote backend gets one partial
// update per task whose column or order changed.
func (c *Coordinator) persistPlacement(ctx context.Context, prevTasks []domain.Task, next store.State) error {
	if c.usingLocal() {
		c.saveLocal(next)
		return nil
	}

	prevByID := make(map[string]domain.Task, len(prevTasks))
	for _, t := range prevTasks {
		prevByID[t.ID] = t
	}
	for _, t := range next.Tasks {
		before, ok := prevByID[t.ID]
		if !ok || before == t {
			continue
		}
		if _, err := c.backend().UpdateTask(ctx, t.ID, domain.PatchOf(before, t)); err != nil {
			return err
		}
	}
	return nil
}

// Week navigation only touches in-memory state; the debounced auto-save
// carries it to local persistence.

func (c *Coordinator) NextWeek()     { c.store.Dispatch(store.GoToNextWeek{}) }
func (c *Coordinator) PreviousWeek() { c.store.Dispatch(store.GoToPreviousWeek{}) }
func (c *Coordinator) ThisWeek()     { c.store.Dispatch(store.GoToCurrentWeek{}) }

// fail records a recoverable error: log, store error field, user-visible
// notification. Backend errors never escape a dispatch un-handled.
func (c *Coordinator) fail(op string, err error) {
	c.logger.WithError(err).Warn(op)
	msg := fmt.Sprintf("%s failed: %v", op, err)
	c.store.Dispatch(store.SetError{Message: msg})
	c.notifier.Notify(msg)
}
