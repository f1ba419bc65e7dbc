package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyTitle is returned when a task is saved without a title.
var ErrEmptyTitle = errors.New("task title must not be empty")

// Task is the core persisted entity: one card on the weekly board.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// Column is the logical bucket the task lives in: a day key for the
	// weekly board (e.g. "sunday") or a YYYY-MM-DD date string.
	Column    string `json:"column"`
	Order     int    `json:"order"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"` // epoch millis

	// Optional project hierarchy. No cascade semantics in this core.
	ProjectID string `json:"projectId,omitempty"`
	ParentID  string `json:"parentId,omitempty"`
}

// Validate checks the fields required for a save.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// NewTaskID generates a client-side provisional id. A remote backend replaces
// it with the canonical id once the create round-trip succeeds.
func NewTaskID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.New().String()[:8])
}

// TaskPatch carries a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Column      *string `json:"column,omitempty"`
	Order       *int    `json:"order,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	ProjectID   *string `json:"projectId,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
}

// Apply shallow-merges the patch into t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Column != nil {
		t.Column = *p.Column
	}
	if p.Order != nil {
		t.Order = *p.Order
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.ProjectID != nil {
		t.ProjectID = *p.ProjectID
	}
	if p.ParentID != nil {
		t.ParentID = *p.ParentID
	}
}

// PatchOf builds the patch that would turn `from` into `to`. Used by the
// coordinator to construct compensating updates for rollback.
func PatchOf(from, to Task) TaskPatch {
	var p TaskPatch
	if from.Title != to.Title {
		p.Title = &to.Title
	}
	if from.Description != to.Description {
		p.Description = &to.Description
	}
	if from.Column != to.Column {
		p.Column = &to.Column
	}
	if from.Order != to.Order {
		p.Order = &to.Order
	}
	if from.Completed != to.Completed {
		p.Completed = &to.Completed
	}
	if from.ProjectID != to.ProjectID {
		p.ProjectID = &to.ProjectID
	}
	if from.ParentID != to.ParentID {
		p.ParentID = &to.ParentID
	}
	return p
}
