package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/charmbracelet/glamour"
)

// FormatTaskDetail renders a boxed detail view of a single task.
func FormatTaskDetail(t domain.Task) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n\n", Bold(t.Title)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("ID     "), TruncID(t.ID)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("DAY    "), capitalize(t.Column)))
	b.WriteString(fmt.Sprintf("  %s  #%d\n", Dim("ORDER  "), t.Order))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("STATUS "), donePill(t.Completed)))
	if t.CreatedAt > 0 {
		created := time.UnixMilli(t.CreatedAt)
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("CREATED"), created.Format("Jan 2, 2006")))
	}

	if t.Description != "" {
		b.WriteString("\n" + RenderMarkdown(t.Description, 60))
	}

	return RenderBox("Task", b.String())
}

// RenderMarkdown renders markdown text for the terminal, falling back to the
// raw text when the renderer cannot be built.
func RenderMarkdown(text string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	rendered, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(rendered, "\n")
}

func donePill(done bool) string {
	if done {
		return StyleGreen.Render("● DONE")
	}
	return StyleYellow.Render("● OPEN")
}
