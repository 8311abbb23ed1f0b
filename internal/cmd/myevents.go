package cmd

import (
	"github.com/spf13/cobra"

	"github.com/studafishka/afishactl/internal/guard"
)

var myEventsCmd = &cobra.Command{
	Use:   "my-events",
	Short: "List your event registrations (students)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		proceed, err := rt.guardPath(ctx, cmd.OutOrStdout(), "/my-events", []guard.Role{guard.RoleStudent})
		if err != nil || !proceed {
			return err
		}
		return rt.renderMyEvents(ctx, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(myEventsCmd)
}
