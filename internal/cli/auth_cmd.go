package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/weekboard/internal/auth"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var tokenFlag string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an access token",
		Long:  "Sign in with a bearer token. Pass it via --token or pipe it on stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := strings.TrimSpace(tokenFlag)
			if token == "" {
				fmt.Fprint(os.Stderr, "Token: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading token: %w", err)
				}
				token = strings.TrimSpace(line)
			}
			if token == "" {
				return fmt.Errorf("no token given")
			}

			if err := app.Auth.SignIn(context.Background(), token); err != nil {
				return err
			}
			user := app.Auth.User()
			if user != nil && user.Email != "" {
				fmt.Printf("Signed in as %s\n", user.Email)
			} else {
				fmt.Println("Signed in")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenFlag, "token", "", "Bearer token")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and return to the local board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.SignOut(); err != nil {
				return err
			}
			fmt.Println("Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Auth.Status() != auth.StatusAuthenticated {
				fmt.Println("Not signed in (using the local board)")
				return nil
			}
			user := app.Auth.User()
			switch {
			case user == nil:
				fmt.Println("Signed in")
			case user.Email != "":
				fmt.Printf("Signed in as %s (%s)\n", user.Email, user.ID)
			default:
				fmt.Printf("Signed in as %s\n", user.ID)
			}
			return nil
		},
	}
}
