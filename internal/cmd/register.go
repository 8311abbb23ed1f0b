package cmd

import (
	gerrors "errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/studafishka/afishactl/internal/platform"
	"github.com/studafishka/afishactl/internal/tui"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Register a new StudAfishka account as a student or an organizer.

Registration does not log you in; follow up with 'afishactl login'.

Examples:
  afishactl register
  afishactl register --username bob --email bob@example.edu --name "Bob" --organizer`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		input := tui.RegisterInput{}
		input.Username, _ = cmd.Flags().GetString("username")
		input.Email, _ = cmd.Flags().GetString("email")
		input.Password, _ = cmd.Flags().GetString("password")
		input.Name, _ = cmd.Flags().GetString("name")
		input.IsOrganizer, _ = cmd.Flags().GetBool("organizer")

		if input.Username == "" || input.Email == "" || input.Password == "" {
			if err := tui.RunRegisterForm(&input); err != nil {
				return err
			}
		}

		user, err := rt.client.Register(ctx, platform.RegisterRequest{
			Username:    input.Username,
			Email:       input.Email,
			Password:    input.Password,
			Name:        input.Name,
			IsOrganizer: input.IsOrganizer,
		})
		if err != nil {
			var apiErr *platform.APIError
			if gerrors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
				printFieldErrors(cmd, apiErr)
				return fmt.Errorf("registration failed")
			}
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, tui.Success("Account created: "+user.Username))
		fmt.Fprintln(w, "Use 'afishactl login' to sign in.")
		return nil
	},
}

// printFieldErrors attaches validation messages to the fields they belong
// to, the way the registration form does.
func printFieldErrors(cmd *cobra.Command, apiErr *platform.APIError) {
	w := cmd.ErrOrStderr()

	fields := make([]string, 0, len(apiErr.Fields))
	for field := range apiErr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		for _, msg := range apiErr.Fields[field] {
			fmt.Fprintln(w, tui.Failure(field+": "+msg))
		}
	}
	if apiErr.Detail != "" {
		fmt.Fprintln(w, tui.Failure(apiErr.Detail))
	}
}

func init() {
	registerCmd.Flags().String("username", "", "Username (prompted when omitted)")
	registerCmd.Flags().String("email", "", "Email address (prompted when omitted)")
	registerCmd.Flags().String("password", "", "Password (prompted when omitted)")
	registerCmd.Flags().String("name", "", "Display name")
	registerCmd.Flags().Bool("organizer", false, "Register as an organizer")

	rootCmd.AddCommand(registerCmd)
}
