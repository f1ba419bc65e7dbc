package domain

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidate(t *testing.T) {
	task := Task{Title: "Write report"}
	assert.NoError(t, task.Validate())

	task.Title = "   "
	assert.ErrorIs(t, task.Validate(), ErrEmptyTitle)
}

func TestNewTaskID_CarriesTimestampPrefix(t *testing.T) {
	now := time.Now()
	id := NewTaskID(now)

	prefix, suffix, found := strings.Cut(id, "-")
	require.True(t, found)
	millis, err := strconv.ParseInt(prefix, 10, 64)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), millis)
	assert.Len(t, suffix, 8)
}

func TestTaskPatch_ApplyMergesOnlySetFields(t *testing.T) {
	task := Task{ID: "t1", Title: "Old", Description: "keep", Column: "sunday", Order: 2}

	title := "New"
	order := 0
	TaskPatch{Title: &title, Order: &order}.Apply(&task)

	assert.Equal(t, "New", task.Title)
	assert.Equal(t, 0, task.Order)
	assert.Equal(t, "keep", task.Description)
	assert.Equal(t, "sunday", task.Column)
}

func TestPatchOf_ProducesInverse(t *testing.T) {
	before := Task{ID: "t1", Title: "Old", Column: "monday", Order: 1, Completed: false}
	after := before
	after.Title = "New"
	after.Completed = true
	after.Order = 3

	inverse := PatchOf(after, before)
	inverse.Apply(&after)

	assert.Equal(t, before, after)
}

func TestPatchOf_IdenticalTasksIsEmpty(t *testing.T) {
	task := Task{ID: "t1", Title: "Same"}

	p := PatchOf(task, task)

	assert.Equal(t, TaskPatch{}, p)
}
