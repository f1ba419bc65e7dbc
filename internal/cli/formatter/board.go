package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const columnWidth = 24

var (
	styleColumn = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1).
			Width(columnWidth)

	styleColumnTitle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// WeekTitle renders the week range heading, e.g. "Sep 7 to Sep 11, 2025".
func WeekTitle(week *domain.Week) string {
	if week == nil {
		return Header("This week")
	}
	text := fmt.Sprintf("%s to %s", week.Start.Format("Jan 2"), week.End.Format("Jan 2, 2006"))
	return Header(text)
}

// RenderBoard renders the five weekday columns side by side. A non-empty
// selectedID highlights that task, which the interactive board uses for the
// cursor.
func RenderBoard(tasks []domain.Task, week *domain.Week, columns []string, selectedID string) string {
	dates := weekDates(week, len(columns))

	rendered := make([]string, 0, len(columns))
	for i, col := range columns {
		rendered = append(rendered, renderColumn(col, dates[i], columnTasks(tasks, col), selectedID))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return WeekTitle(week) + "\n" + board
}

func renderColumn(column string, date string, tasks []domain.Task, selectedID string) string {
	title := styleColumnTitle.Render(capitalize(column))
	if date != "" {
		title += " " + Dim(date)
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	if len(tasks) == 0 {
		b.WriteString(Dim("(empty)"))
	}
	for i, t := range tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(TaskLine(t, t.ID == selectedID))
	}

	return styleColumn.Render(b.String())
}

// TaskLine renders a one-line board entry for a task.
func TaskLine(t domain.Task, selected bool) string {
	bullet := "•"
	style := StyleFg
	if t.Completed {
		bullet = "✓"
		style = StyleDone
	}
	line := fmt.Sprintf("%s %s", bullet, style.Render(truncate(t.Title, columnWidth-6)))
	if selected {
		return StyleYellow.Render("▸ ") + line
	}
	return "  " + line
}

// columnTasks returns the tasks of one column in display order.
func columnTasks(tasks []domain.Task, column string) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if t.Column == column {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out
}

func weekDates(week *domain.Week, n int) []string {
	out := make([]string, n)
	if week == nil {
		return out
	}
	for i, d := range domain.WeekDates(week.Start) {
		if i >= n {
			break
		}
		out[i] = d.Format("Jan 2")
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, max int) string {
	if max <= 1 || len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
