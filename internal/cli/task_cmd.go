package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/weekboard/internal/cli/formatter"
	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var day, description string

	cmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: "Add a task to a day",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			column, err := resolveColumn(day)
			if err != nil {
				return err
			}
			if err := app.Coordinator.Load(ctx); err != nil {
				return err
			}

			task, err := app.Coordinator.CreateTask(ctx, domain.Task{
				Title:       strings.Join(args, " "),
				Description: description,
				Column:      column,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added %q to %s (%s)\n", task.Title, column, shortID(task.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Day column (sunday..thursday, default today)")
	cmd.Flags().StringVar(&description, "desc", "", "Task description (markdown)")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show TASK",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Coordinator.Load(ctx); err != nil {
				return err
			}
			task, err := resolveTask(app.Store.State(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTaskDetail(task))
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	var title, description, day string

	cmd := &cobra.Command{
		Use:   "edit TASK",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Coordinator.Load(ctx); err != nil {
				return err
			}
			task, err := resolveTask(app.Store.State(), args[0])
			if err != nil {
				return err
			}

			// Without field flags, open the interactive form.
			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("desc") && !cmd.Flags().Changed("day") {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("no fields given and no terminal for the edit form")
				}
				return runEditForm(ctx, app, task)
			}

			var patch domain.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("day") {
				column, err := resolveColumn(day)
				if err != nil {
					return err
				}
				patch.Column = &column
			}

			if err := app.Coordinator.UpdateTask(ctx, task.ID, patch); err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", shortID(task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "desc", "", "New description")
	cmd.Flags().StringVar(&day, "day", "", "New day column")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done TASK",
		Short: "Toggle a task's completed state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Coordinator.Load(ctx); err != nil {
				return err
			}
			task, err := resolveTask(app.Store.State(), args[0])
			if err != nil {
				return err
			}
			if err := app.Coordinator.ToggleComplete(ctx, task.ID); err != nil {
				return err
			}
			updated, _ := app.Store.State().TaskByID(task.ID)
			if updated.Completed {
				fmt.Printf("Completed %q\n", updated.Title)
			} else {
				fmt.Printf("Reopened %q\n", updated.Title)
			}
			return nil
		},
	}
}

func newMoveCmd(app *App) *cobra.Command {
	var position int

	cmd := &cobra.Command{
		Use:   "move TASK DAY",
		Short: "Move a task to another day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Coordinator.Load(ctx); err != nil {
				return err
			}
			task, err := resolveTask(app.Store.State(), args[0])
			if err != nil {
				return err
			}
			column, err := resolveColumn(args[1])
			if err != nil {
				return err
			}

			order := position
			if !cmd.Flags().Changed("position") {
				order = len(app.Store.State().ColumnTasks(column))
			}
			if err := app.Coordinator.MoveTask(ctx, task.ID, column, order); err != nil {
				return err
			}
			fmt.Printf("Moved %q to %s\n", task.Title, column)
			return nil
		},
	}

	cmd.Flags().IntVarP(&position, "position", "p", 0, "Position within the day, top is 0 (default: end)")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm TASK",
		Aliases: []string{"remove"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Coordinator.Load(ctx); err != nil {
				return err
			}
			task, err := resolveTask(app.Store.State(), args[0])
			if err != nil {
				return err
			}
			if err := app.Coordinator.DeleteTask(ctx, task.ID); err != nil {
				return err
			}
			fmt.Printf("Removed %q\n", task.Title)
			return nil
		},
	}
}
