package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newNextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next work week",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Coordinator.Load(context.Background()); err != nil {
				return err
			}
			app.Coordinator.NextWeek()
			printBoard(app)
			return nil
		},
	}
}

func newPrevCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Show the previous work week",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Coordinator.Load(context.Background()); err != nil {
				return err
			}
			app.Coordinator.PreviousWeek()
			printBoard(app)
			return nil
		},
	}
}

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Jump back to the current work week",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Coordinator.Load(context.Background()); err != nil {
				return err
			}
			app.Coordinator.ThisWeek()
			printBoard(app)
			return nil
		},
	}
}
