package testutil

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/alexanderramin/weekboard/internal/domain"
)

// TaskOption customizes a fixture task.
type TaskOption func(*domain.Task)

// WithOrder sets the task's order.
func WithOrder(order int) TaskOption {
	return func(t *domain.Task) { t.Order = order }
}

// WithDescription sets the task's markdown description.
func WithDescription(desc string) TaskOption {
	return func(t *domain.Task) { t.Description = desc }
}

// WithCompleted marks the task completed.
func WithCompleted() TaskOption {
	return func(t *domain.Task) { t.Completed = true }
}

// NewTestTask creates a task fixture in the given column.
func NewTestTask(id, title, column string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:        id,
		Title:     title,
		Column:    column,
		CreatedAt: time.Now().UnixMilli(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// SilentLogger returns a logger that discards everything, for tests
// exercising swallowed-failure paths.
func SilentLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
