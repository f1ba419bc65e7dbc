package store

import "github.com/alexanderramin/weekboard/internal/domain"

// Action is the sealed set of state transitions the reducer understands.
// Unknown or nil actions are no-ops.
type Action interface {
	isAction()
}

// LoadState replaces tasks and current week wholesale and clears loading.
type LoadState struct {
	Tasks       []domain.Task
	CurrentWeek *domain.Week
}

// AddTask appends a task. Order is optional: when nil the task goes to the
// end of its column; when set the task is inserted at that position and the
// column is renumbered. ID and CreatedAt are filled in if absent.
type AddTask struct {
	Task  domain.Task
	Order *int
}

// UpdateTask shallow-merges a patch into the matching task. Missing id is a
// no-op.
type UpdateTask struct {
	ID    string
	Patch domain.TaskPatch
}

// DeleteTask removes the task and compacts the remaining orders in its
// column.
type DeleteTask struct {
	ID string
}

// ToggleComplete flips the completed flag.
type ToggleComplete struct {
	ID string
}

// MoveTask places the task at Order within Column and renumbers the affected
// columns. Missing id is a no-op.
type MoveTask struct {
	ID     string
	Column string
	Order  int
}

// Drop is the lower-level drag form: OverID names either a column (drop on
// empty space) or another task (insert near that task). Columns is the set of
// valid drop-container ids; when empty the weekday keys are assumed.
type Drop struct {
	ActiveID string
	OverID   string
	Columns  []string
}

// AdoptTaskID swaps a provisional client-assigned task id for the backend's
// canonical one after a successful remote create. Missing id is a no-op.
type AdoptTaskID struct {
	OldID string
	NewID string
}

// SetCurrentWeek replaces the current week.
type SetCurrentWeek struct {
	Week domain.Week
}

// GoToNextWeek advances the current week. No-op while the week is unset.
type GoToNextWeek struct{}

// GoToPreviousWeek rewinds the current week. No-op while the week is unset.
type GoToPreviousWeek struct{}

// GoToCurrentWeek jumps back to the week bounding today.
type GoToCurrentWeek struct{}

// SetLoading toggles the loading flag.
type SetLoading struct {
	Loading bool
}

// SetError records a recoverable, user-visible error message. An empty
// message clears it.
type SetError struct {
	Message string
}

func (LoadState) isAction()        {}
func (AddTask) isAction()          {}
func (UpdateTask) isAction()       {}
func (DeleteTask) isAction()       {}
func (ToggleComplete) isAction()   {}
func (MoveTask) isAction()         {}
func (Drop) isAction()             {}
func (AdoptTaskID) isAction()      {}
func (SetCurrentWeek) isAction()   {}
func (GoToNextWeek) isAction()     {}
func (GoToPreviousWeek) isAction() {}
func (GoToCurrentWeek) isAction()  {}
func (SetLoading) isAction()       {}
func (SetError) isAction()         {}
