package store

import (
	"time"

	"github.com/alexanderramin/weekboard/internal/domain"
)

// WeekdayColumns are the default drop containers of the weekly board.
var WeekdayColumns = []string{"sunday", "monday", "tuesday", "wednesday", "thursday"}

// Reduce applies an action to a state and returns the next state. It is pure
// and total: it never mutates its input, never suspends, and never fails:
// actions referencing missing tasks leave the state unchanged.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case LoadState:
		next := s.Clone()
		next.Tasks = make([]domain.Task, len(a.Tasks))
		copy(next.Tasks, a.Tasks)
		next.CurrentWeek = a.CurrentWeek
		next.Loading = false
		return next

	case AddTask:
		next := s.Clone()
		task := a.Task
		if task.ID == "" {
			task.ID = domain.NewTaskID(time.Now())
		}
		if task.CreatedAt == 0 {
			task.CreatedAt = time.Now().UnixMilli()
		}
		if a.Order != nil {
			next.Tasks = append(next.Tasks, task)
			next.Tasks = moveTask(next.Tasks, task.ID, task.Column, *a.Order)
		} else {
			task.Order = len(columnTasks(next.Tasks, task.Column, ""))
			next.Tasks = append(next.Tasks, task)
		}
		return next

	case UpdateTask:
		idx := indexOf(s.Tasks, a.ID)
		if idx < 0 {
			return s
		}
		next := s.Clone()
		a.Patch.Apply(&next.Tasks[idx])
		return next

	case DeleteTask:
		idx := indexOf(s.Tasks, a.ID)
		if idx < 0 {
			return s
		}
		next := s.Clone()
		column := next.Tasks[idx].Column
		next.Tasks = append(next.Tasks[:idx], next.Tasks[idx+1:]...)
		renumberColumn(next.Tasks, column)
		return next

	case ToggleComplete:
		idx := indexOf(s.Tasks, a.ID)
		if idx < 0 {
			return s
		}
		next := s.Clone()
		next.Tasks[idx].Completed = !next.Tasks[idx].Completed
		return next

	case MoveTask:
		next := s.Clone()
		next.Tasks = moveTask(next.Tasks, a.ID, a.Column, a.Order)
		return next

	case Drop:
		columns := a.Columns
		if len(columns) == 0 {
			columns = WeekdayColumns
		}
		next := s.Clone()
		next.Tasks = resolveDrop(next.Tasks, a.ActiveID, a.OverID, columns)
		return next

	case AdoptTaskID:
		idx := indexOf(s.Tasks, a.OldID)
		if idx < 0 {
			return s
		}
		next := s.Clone()
		next.Tasks[idx].ID = a.NewID
		return next

	case SetCurrentWeek:
		next := s.Clone()
		w := a.Week
		next.CurrentWeek = &w
		return next

	case GoToNextWeek:
		if s.CurrentWeek == nil {
			return s
		}
		next := s.Clone()
		w := domain.NextWeek(*s.CurrentWeek)
		next.CurrentWeek = &w
		return next

	case GoToPreviousWeek:
		if s.CurrentWeek == nil {
			return s
		}
		next := s.Clone()
		w := domain.PreviousWeek(*s.CurrentWeek)
		next.CurrentWeek = &w
		return next

	case GoToCurrentWeek:
		next := s.Clone()
		w := domain.CurrentWeek()
		next.CurrentWeek = &w
		return next

	case SetLoading:
		next := s.Clone()
		next.Loading = a.Loading
		return next

	case SetError:
		next := s.Clone()
		next.Err = a.Message
		return next

	default:
		return s
	}
}

func indexOf(tasks []domain.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
