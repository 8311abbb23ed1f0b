package cmd

import (
	gerrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studafishka/afishactl/internal/errors"
	"github.com/studafishka/afishactl/internal/platform"
	"github.com/studafishka/afishactl/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to StudAfishka",
	Long: `Login to StudAfishka with your username and password.

The issued token pair is stored in the state directory and reused by later
invocations until it is rejected or you log out.

Examples:
  afishactl login
  afishactl login --username alice
  afishactl login --username alice --return-to /my-events`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		input := tui.LoginInput{}
		input.Username, _ = cmd.Flags().GetString("username")
		input.Password, _ = cmd.Flags().GetString("password")
		returnTo, _ := cmd.Flags().GetString("return-to")

		if input.Username == "" || input.Password == "" {
			if err := tui.RunLoginForm(&input); err != nil {
				return err
			}
		}

		// Token first, then profile: the profile request depends on the
		// token being attached to outgoing requests.
		pair, err := rt.client.IssueToken(ctx, input.Username, input.Password)
		if err != nil {
			var apiErr *platform.APIError
			if gerrors.As(err, &apiErr) && apiErr.IsUnauthorized() {
				// Rejected credentials leave the session untouched.
				return errors.NewAuthRejectedError(err)
			}
			return err
		}
		rt.store.SetTokens(pair.Access, pair.Refresh)

		user, err := rt.client.CurrentUser(ctx)
		if err != nil {
			// The stored token stays; the next bootstrap purges it if it
			// is genuinely bad.
			return fmt.Errorf("logged in, but fetching your profile failed: %w", err)
		}
		rt.store.SetUser(user)

		fmt.Fprintln(cmd.OutOrStdout(), tui.Success("Logged in as "+displayName(user.Name, user.Username)))

		if returnTo != "" {
			fmt.Fprintln(cmd.OutOrStdout())
			return rt.navigateTo(ctx, cmd.OutOrStdout(), returnTo)
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and clear stored credentials",
	Long: `Logout and clear the stored token pair.

Logging out twice is harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}

		wasAuthed := rt.store.IsAuthenticated()
		rt.store.Logout()

		if wasAuthed {
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
		}
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		user := rt.store.User()
		if user == nil {
			fmt.Fprintln(w, "Not logged in.")
			fmt.Fprintln(w, "Use 'afishactl login' to authenticate.")
			return nil
		}

		fmt.Fprintf(w, "Username: %s\n", user.Username)
		fmt.Fprintf(w, "Name:     %s\n", user.Name)
		fmt.Fprintf(w, "Email:    %s\n", user.Email)
		fmt.Fprintf(w, "Roles:    %s\n", roleSummary(user.IsStudent, user.IsOrganizer))
		return nil
	},
}

func roleSummary(student, organizer bool) string {
	switch {
	case student && organizer:
		return "student, organizer"
	case student:
		return "student"
	case organizer:
		return "organizer"
	default:
		return "none"
	}
}

func init() {
	loginCmd.Flags().String("username", "", "Username (prompted when omitted)")
	loginCmd.Flags().String("password", "", "Password (prompted when omitted)")
	loginCmd.Flags().String("return-to", "", "Route to open after a successful login")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
