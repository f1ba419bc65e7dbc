package cli

import (
	"github.com/alexanderramin/weekboard/internal/auth"
	"github.com/alexanderramin/weekboard/internal/coordinator"
	"github.com/alexanderramin/weekboard/internal/store"
	"github.com/spf13/cobra"
)

// App holds the wired application services used by CLI commands.
type App struct {
	Coordinator *coordinator.Coordinator
	Store       *store.Store
	Auth        auth.Provider

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "weekboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "weekboard",
		Short: "Weekly task board for the Sunday-to-Thursday work week",
	}

	root.AddCommand(
		newBoardCmd(app),
		newAddCmd(app),
		newShowCmd(app),
		newEditCmd(app),
		newDoneCmd(app),
		newMoveCmd(app),
		newRemoveCmd(app),
		newNextCmd(app),
		newPrevCmd(app),
		newTodayCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
	)

	return root
}
