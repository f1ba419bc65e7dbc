package store

import "github.com/alexanderramin/weekboard/internal/domain"

// State is the full in-memory model the UI renders from. It is treated as
// immutable: Reduce returns a fresh State and never mutates its input.
type State struct {
	Tasks       []domain.Task `json:"tasks"`
	CurrentWeek *domain.Week  `json:"currentWeek,omitempty"`
	Loading     bool          `json:"-"`
	Err         string        `json:"-"`
}

// Clone returns a deep copy of the state. Task is a value struct, so copying
// the slice is sufficient.
func (s State) Clone() State {
	out := s
	if s.Tasks != nil {
		out.Tasks = make([]domain.Task, len(s.Tasks))
		copy(out.Tasks, s.Tasks)
	}
	if s.CurrentWeek != nil {
		w := *s.CurrentWeek
		out.CurrentWeek = &w
	}
	return out
}

// TaskByID returns the task with the given id, if present.
func (s State) TaskByID(id string) (domain.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// ColumnTasks returns the tasks in a column sorted by their order.
func (s State) ColumnTasks(column string) []domain.Task {
	return columnTasks(s.Tasks, column, "")
}
