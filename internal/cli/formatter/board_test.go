package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boardColumns = []string{"sunday", "monday", "tuesday", "wednesday", "thursday"}

func TestRenderBoard_ShowsColumnsAndDates(t *testing.T) {
	week := domain.WeekBounds(time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local))
	tasks := []domain.Task{
		{ID: "t1", Title: "Write report", Column: "sunday", Order: 0},
		{ID: "t2", Title: "Review PRs", Column: "sunday", Order: 1},
		{ID: "t3", Title: "Plan sprint", Column: "wednesday", Order: 0},
	}

	out := RenderBoard(tasks, &week, boardColumns, "")

	assert.Contains(t, out, "Sunday")
	assert.Contains(t, out, "Thursday")
	assert.Contains(t, out, "Sep 7")
	assert.Contains(t, out, "Sep 11")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "Plan sprint")
	assert.Contains(t, out, "(empty)")
}

func TestRenderBoard_OrdersWithinColumn(t *testing.T) {
	tasks := []domain.Task{
		{ID: "b", Title: "Second", Column: "monday", Order: 1},
		{ID: "a", Title: "First", Column: "monday", Order: 0},
	}

	out := RenderBoard(tasks, nil, []string{"monday"}, "")

	first := strings.Index(out, "First")
	second := strings.Index(out, "Second")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestRenderBoard_HighlightsSelection(t *testing.T) {
	tasks := []domain.Task{{ID: "t1", Title: "Pick me", Column: "sunday"}}

	out := RenderBoard(tasks, nil, []string{"sunday"}, "t1")

	assert.Contains(t, out, "▸")
}

func TestTaskLine_CompletedUsesCheckmark(t *testing.T) {
	line := TaskLine(domain.Task{Title: "Done thing", Completed: true}, false)
	assert.Contains(t, line, "✓")

	line = TaskLine(domain.Task{Title: "Open thing"}, false)
	assert.Contains(t, line, "•")
}

func TestFormatTaskDetail(t *testing.T) {
	out := FormatTaskDetail(domain.Task{
		ID:          "abcdef1234",
		Title:       "Ship release",
		Description: "Cut the tag and *announce* it.",
		Column:      "thursday",
		Order:       2,
		CreatedAt:   time.Date(2025, time.September, 8, 10, 0, 0, 0, time.UTC).UnixMilli(),
	})

	assert.Contains(t, out, "Ship release")
	assert.Contains(t, out, "Thursday")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "announce")
}

func TestRenderMarkdown_FallsBackToRawOnTinyWidth(t *testing.T) {
	out := RenderMarkdown("plain text", 5)
	assert.Contains(t, out, "plain text")
}
