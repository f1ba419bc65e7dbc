package store

import (
	"sort"

	"github.com/alexanderramin/weekboard/internal/domain"
)

// The reconciler computes the new order assignment after a drag-and-drop
// move. Callers pass a slice they own (the reducer always hands it a fresh
// copy); tasks are updated in place by index and the same slice is returned.
// A missing active or target task makes the whole operation a no-op.

// moveTask places the task at targetOrder within targetColumn, renumbering
// the target column and, on a cross-column move, the vacated source column.
// targetOrder is clamped to the column bounds.
func moveTask(tasks []domain.Task, id, targetColumn string, targetOrder int) []domain.Task {
	idx := indexOf(tasks, id)
	if idx < 0 {
		return tasks
	}
	sourceColumn := tasks[idx].Column

	// Insertion frame: the target column without the active task, in order.
	frame := columnTasks(tasks, targetColumn, id)
	if targetOrder < 0 {
		targetOrder = 0
	}
	if targetOrder > len(frame) {
		targetOrder = len(frame)
	}

	tasks[idx].Column = targetColumn
	tasks[idx].Order = targetOrder
	for i, t := range frame {
		pos := i
		if i >= targetOrder {
			pos = i + 1
		}
		tasks[indexOf(tasks, t.ID)].Order = pos
	}

	if sourceColumn != targetColumn {
		renumberColumn(tasks, sourceColumn)
	}
	return tasks
}

// resolveDrop maps a raw (activeID, overID) drop to a move. overID names
// either a drop container from columns (append to that column) or a sibling
// task (insert near it). The same-column direction rule matches the visual
// drag semantics: dragging downward displaces the target upward, so the
// active task lands after it; dragging upward lands before it. Cross-column
// drops always insert before the target, since the active task has no
// original position there to compare against.
func resolveDrop(tasks []domain.Task, activeID, overID string, columns []string) []domain.Task {
	active, ok := taskByID(tasks, activeID)
	if !ok {
		return tasks
	}

	for _, c := range columns {
		if overID == c {
			return moveTask(tasks, activeID, c, len(columnTasks(tasks, c, activeID)))
		}
	}

	over, ok := taskByID(tasks, overID)
	if !ok || over.ID == active.ID {
		return tasks
	}

	frame := columnTasks(tasks, over.Column, activeID)
	overPos := 0
	for i, t := range frame {
		if t.ID == over.ID {
			overPos = i
			break
		}
	}

	insertAt := overPos
	if over.Column == active.Column {
		col := columnTasks(tasks, over.Column, "")
		activeIdx, overIdx := -1, -1
		for i, t := range col {
			switch t.ID {
			case active.ID:
				activeIdx = i
			case over.ID:
				overIdx = i
			}
		}
		if activeIdx < overIdx {
			// Moving downward: the dragged task passes over the target.
			insertAt = overPos + 1
		}
	}

	return moveTask(tasks, activeID, over.Column, insertAt)
}

// columnTasks returns the tasks of a column sorted by order ascending,
// excluding excludeID. Ties break by creation time, then id, so the frame is
// deterministic even on corrupt input with duplicate orders.
func columnTasks(tasks []domain.Task, column, excludeID string) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if t.Column == column && t.ID != excludeID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// renumberColumn reassigns contiguous orders 0..N-1 within a column,
// preserving the existing relative order.
func renumberColumn(tasks []domain.Task, column string) {
	for i, t := range columnTasks(tasks, column, "") {
		tasks[indexOf(tasks, t.ID)].Order = i
	}
}

func taskByID(tasks []domain.Task, id string) (domain.Task, bool) {
	idx := indexOf(tasks, id)
	if idx < 0 {
		return domain.Task{}, false
	}
	return tasks[idx], true
}
