package cli

import (
	"testing"

	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/alexanderramin/weekboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTask(t *testing.T) {
	st := store.State{Tasks: []domain.Task{
		{ID: "1700000000000-aaaa1111", Title: "Write weekly report"},
		{ID: "1700000000001-bbbb2222", Title: "Review the report"},
		{ID: "1700000000002-cccc3333", Title: "Book flights"},
	}}

	t.Run("exact id", func(t *testing.T) {
		task, err := resolveTask(st, "1700000000002-cccc3333")
		require.NoError(t, err)
		assert.Equal(t, "Book flights", task.Title)
	})

	t.Run("unique id prefix", func(t *testing.T) {
		task, err := resolveTask(st, "1700000000001")
		require.NoError(t, err)
		assert.Equal(t, "Review the report", task.Title)
	})

	t.Run("ambiguous id prefix", func(t *testing.T) {
		_, err := resolveTask(st, "1700000000")
		assert.Error(t, err)
	})

	t.Run("unique title substring", func(t *testing.T) {
		task, err := resolveTask(st, "flights")
		require.NoError(t, err)
		assert.Equal(t, "Book flights", task.Title)
	})

	t.Run("ambiguous title", func(t *testing.T) {
		_, err := resolveTask(st, "report")
		assert.Error(t, err)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := resolveTask(st, "nothing here")
		assert.Error(t, err)
	})
}

func TestResolveColumn(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"sunday", "sunday", true},
		{"Monday", "monday", true},
		{"wed", "wednesday", true},
		{"THU", "thursday", true},
		{"friday", "", false},
		{"noday", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := resolveColumn(tt.input)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveColumn_TodayNeverFallsOutsideTheWeek(t *testing.T) {
	got, err := resolveColumn("today")
	require.NoError(t, err)
	assert.Contains(t, store.WeekdayColumns, got)
}
