package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/alexanderramin/weekboard/internal/store"
)

// resolveTask finds a task by exact id, unique id prefix, or unique
// case-insensitive title substring, in that order.
func resolveTask(st store.State, ref string) (domain.Task, error) {
	if t, ok := st.TaskByID(ref); ok {
		return t, nil
	}

	var byPrefix []domain.Task
	for _, t := range st.Tasks {
		if strings.HasPrefix(t.ID, ref) {
			byPrefix = append(byPrefix, t)
		}
	}
	if len(byPrefix) == 1 {
		return byPrefix[0], nil
	}
	if len(byPrefix) > 1 {
		return domain.Task{}, fmt.Errorf("id prefix %q matches %d tasks", ref, len(byPrefix))
	}

	var byTitle []domain.Task
	needle := strings.ToLower(ref)
	for _, t := range st.Tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			byTitle = append(byTitle, t)
		}
	}
	if len(byTitle) == 1 {
		return byTitle[0], nil
	}
	if len(byTitle) > 1 {
		return domain.Task{}, fmt.Errorf("title %q matches %d tasks, use an id", ref, len(byTitle))
	}

	return domain.Task{}, fmt.Errorf("no task matches %q", ref)
}

// resolveColumn normalizes a day argument to a board column. "today" picks
// the current weekday, falling back to sunday on Friday and Saturday.
func resolveColumn(day string) (string, error) {
	day = strings.ToLower(strings.TrimSpace(day))
	if day == "" || day == "today" {
		return todayColumn(), nil
	}
	for _, col := range store.WeekdayColumns {
		if day == col || day == col[:3] {
			return col, nil
		}
	}
	return "", fmt.Errorf("unknown day %q, expected sunday through thursday", day)
}

// shortID trims an id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func todayColumn() string {
	switch weekday := time.Now().Weekday(); weekday {
	case time.Friday, time.Saturday:
		return "sunday"
	default:
		return store.WeekdayColumns[int(weekday)]
	}
}
