package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/weekboard/internal/cli/formatter"
	"github.com/alexanderramin/weekboard/internal/store"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the weekly board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Coordinator.Load(ctx); err != nil {
				return err
			}

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("interactive board requires a terminal")
				}
				p := tea.NewProgram(newBoardModel(app), tea.WithAltScreen())
				_, err := p.Run()
				return err
			}

			st := app.Store.State()
			fmt.Println(formatter.RenderBoard(st.Tasks, st.CurrentWeek, store.WeekdayColumns, ""))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the interactive board")
	return cmd
}

func printBoard(app *App) {
	st := app.Store.State()
	fmt.Println(formatter.RenderBoard(st.Tasks, st.CurrentWeek, store.WeekdayColumns, ""))
}
