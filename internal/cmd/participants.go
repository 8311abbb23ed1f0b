package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studafishka/afishactl/internal/guard"
)

var participantsCmd = &cobra.Command{
	Use:   "participants <event-id>",
	Short: "List registrations for your event (organizers)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("event id must be a number")
		}

		proceed, err := rt.guardPath(ctx, cmd.OutOrStdout(),
			fmt.Sprintf("/events/%d/participants", id), []guard.Role{guard.RoleOrganizer})
		if err != nil || !proceed {
			return err
		}
		return rt.renderParticipants(ctx, cmd.OutOrStdout(), id)
	},
}

func init() {
	rootCmd.AddCommand(participantsCmd)
}
