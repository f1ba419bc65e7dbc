package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/weekboard/internal/cli/formatter"
	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/alexanderramin/weekboard/internal/store"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func weekboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func dayOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(store.WeekdayColumns))
	for _, col := range store.WeekdayColumns {
		opts = append(opts, huh.NewOption(col, col))
	}
	return opts
}

// runEditForm opens an interactive form prefilled with the task's fields and
// applies the resulting changes as a single patch.
func runEditForm(ctx context.Context, app *App, task domain.Task) error {
	title := task.Title
	description := task.Description
	column := task.Column

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&title).
				Validate(func(s string) error {
					return (&domain.Task{Title: s}).Validate()
				}),
			huh.NewText().
				Title("Description").
				Value(&description),
			huh.NewSelect[string]().
				Title("Day").
				Options(dayOptions()...).
				Value(&column),
		),
	).WithTheme(weekboardHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	var patch domain.TaskPatch
	if title != task.Title {
		patch.Title = &title
	}
	if description != task.Description {
		patch.Description = &description
	}
	if column != task.Column {
		patch.Column = &column
	}
	if patch.Title == nil && patch.Description == nil && patch.Column == nil {
		fmt.Println("No changes")
		return nil
	}

	if err := app.Coordinator.UpdateTask(ctx, task.ID, patch); err != nil {
		return err
	}
	fmt.Printf("Updated task %s\n", shortID(task.ID))
	return nil
}
