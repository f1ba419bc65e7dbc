package persist

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/weekboard/internal/domain"
)

// migrations maps a schema version to the step that lifts data to the next
// version. Load applies every step between the stored version and
// CurrentVersion in order.
var migrations = map[int]func(json.RawMessage) (json.RawMessage, error){
	1: migrateV1,
}

func runMigration(version int, data json.RawMessage) (json.RawMessage, error) {
	step, ok := migrations[version]
	if !ok {
		return nil, fmt.Errorf("no migration from version %d", version)
	}
	out, err := step(data)
	if err != nil {
		return nil, fmt.Errorf("migrating from version %d: %w", version, err)
	}
	return out, nil
}

// migrateV1 normalizes version-1 task records: every task is guaranteed to
// carry id, title, completed, column, order, createdAt and description after
// this step, with defaults filled for missing fields. Records that are not
// objects at all are dropped. Orders are recomputed contiguously per column,
// keeping the relative position of records that already had one and placing
// orderless records after them.
func migrateV1(data json.RawMessage) (json.RawMessage, error) {
	var state struct {
		Tasks       []json.RawMessage `json:"tasks"`
		CurrentWeek *domain.Week      `json:"currentWeek"`
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	type v1Task struct {
		ID          string  `json:"id"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Content     string  `json:"content"` // older saves used "content"
		Column      string  `json:"column"`
		Date        string  `json:"date"` // and some used the wire name
		Order       *int    `json:"order"`
		Completed   bool    `json:"completed"`
		CreatedAt   int64   `json:"createdAt"`
		ProjectID   string  `json:"projectId"`
		ParentID    *string `json:"parentId"`
	}

	type slot struct {
		task     domain.Task
		hasOrder bool
		order    int
	}
	byColumn := make(map[string][]slot)
	var columns []string

	for _, raw := range state.Tasks {
		var old v1Task
		if err := json.Unmarshal(raw, &old); err != nil {
			// Not recognizable as a task in any supported shape; drop it.
			continue
		}
		t := domain.Task{
			ID:          old.ID,
			Title:       old.Title,
			Description: old.Description,
			Column:      old.Column,
			Completed:   old.Completed,
			CreatedAt:   old.CreatedAt,
			ProjectID:   old.ProjectID,
		}
		if t.Description == "" {
			t.Description = old.Content
		}
		if t.Column == "" {
			t.Column = old.Date
		}
		if t.Column == "" {
			t.Column = "sunday"
		}
		if old.ParentID != nil {
			t.ParentID = *old.ParentID
		}
		if t.ID == "" {
			t.ID = domain.NewTaskID(time.Now())
		}
		if t.Title == "" {
			t.Title = "Untitled task"
		}
		if t.CreatedAt == 0 {
			t.CreatedAt = time.Now().UnixMilli()
		}

		if _, seen := byColumn[t.Column]; !seen {
			columns = append(columns, t.Column)
		}
		s := slot{task: t, hasOrder: old.Order != nil}
		if old.Order != nil {
			s.order = *old.Order
		}
		byColumn[t.Column] = append(byColumn[t.Column], s)
	}

	var tasks []domain.Task
	for _, column := range columns {
		slots := byColumn[column]
		// Stable sort: ordered records first by their order, orderless after.
		sorted := make([]slot, 0, len(slots))
		for _, s := range slots {
			if s.hasOrder {
				sorted = append(sorted, s)
			}
		}
		for i := 1; i < len(sorted); i++ {
			for j := i; j > 0 && sorted[j].order < sorted[j-1].order; j-- {
				sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
			}
		}
		for _, s := range slots {
			if !s.hasOrder {
				sorted = append(sorted, s)
			}
		}
		for i, s := range sorted {
			s.task.Order = i
			tasks = append(tasks, s.task)
		}
	}

	return json.Marshal(State{Tasks: tasks, CurrentWeek: state.CurrentWeek})
}
