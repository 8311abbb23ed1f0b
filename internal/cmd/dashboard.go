package cmd

import (
	"github.com/spf13/cobra"

	"github.com/studafishka/afishactl/internal/guard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "List the events you organize (organizers)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		proceed, err := rt.guardPath(ctx, cmd.OutOrStdout(), "/dashboard", []guard.Role{guard.RoleOrganizer})
		if err != nil || !proceed {
			return err
		}
		return rt.renderDashboard(ctx, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
