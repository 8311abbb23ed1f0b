package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studafishka/afishactl/internal/guard"
	"github.com/studafishka/afishactl/internal/platform"
	"github.com/studafishka/afishactl/internal/tui"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and manage events",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming events",
	Long: `List upcoming events, optionally filtered by tags.

Examples:
  afishactl events list
  afishactl events list --tags 1,3
  afishactl events list --tag-names music,sports`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		opts := platform.ListEventsOptions{}
		if raw, _ := cmd.Flags().GetString("tags"); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				id, err := strconv.Atoi(strings.TrimSpace(part))
				if err != nil {
					return fmt.Errorf("--tags must be a comma-separated list of IDs")
				}
				opts.TagIDs = append(opts.TagIDs, id)
			}
		}
		if raw, _ := cmd.Flags().GetString("tag-names"); raw != "" {
			opts.TagNames = strings.Split(raw, ",")
		}

		return rt.renderEventList(ctx, cmd.OutOrStdout(), opts)
	},
}

var eventsShowCmd = &cobra.Command{
	Use:   "show <event-id>",
	Short: "Show one event",
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
		return rt.renderEventDetail(ctx, cmd.OutOrStdout(), id)
	},
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an event (organizers)",
	Long: `Create a new event. Organizer role required.

Examples:
  afishactl events create --title "Go Meetup" --start "2026-10-01 18:00" --location "Main hall"
  afishactl events create --title "Hackathon" --start 2026-11-07T10:00 --location "Lab 3" --max 60 --tag-ids 2,5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		proceed, err := rt.guardPath(ctx, cmd.OutOrStdout(), "/create-event", []guard.Role{guard.RoleOrganizer})
		if err != nil || !proceed {
			return err
		}

		input, err := eventInputFromFlags(cmd)
		if err != nil {
			return err
		}

		event, err := rt.client.CreateEvent(ctx, input)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tui.Success(fmt.Sprintf("Event %d created: %s", event.ID, event.Title)))
		return nil
	},
}

var eventsEditCmd = &cobra.Command{
	Use:   "edit <event-id>",
	Short: "Edit an event (organizers)",
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
			fmt.Sprintf("/edit-event/%d", id), []guard.Role{guard.RoleOrganizer})
		if err != nil || !proceed {
			return err
		}

		// Start from the current state so unchanged fields survive the PUT.
		current, err := rt.client.GetEvent(ctx, id)
		if err != nil {
			return err
		}
		input := platform.EventInput{
			Title:           current.Title,
			Description:     current.Description,
			DtStart:         current.DtStart,
			LocationText:    current.LocationText,
			MaxParticipants: current.MaxParticipants,
		}
		for _, t := range current.Tags {
			input.TagIDs = append(input.TagIDs, t.ID)
		}
		if err := applyEventFlags(cmd, &input); err != nil {
			return err
		}

		event, err := rt.client.UpdateEvent(ctx, id, input)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tui.Success(fmt.Sprintf("Event %d updated: %s", event.ID, event.Title)))
		return nil
	},
}

var eventsRegisterCmd = &cobra.Command{
	Use:   "register <event-id>",
	Short: "Register for an event (students)",
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

		reg, err := rt.client.RegisterForEvent(ctx, id)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, tui.Success("Registered for "+reg.EventTitle))
		fmt.Fprintf(w, "Your QR code: %s\n", reg.QRCodeData)
		return nil
	},
}

var eventsUnregisterCmd = &cobra.Command{
	Use:   "unregister <event-id>",
	Short: "Cancel your registration (students)",
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

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			confirmed, err := tui.PromptForConfirmation("Cancel your registration?", false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Kept your registration.")
				return nil
			}
		}

		if err := rt.client.UnregisterFromEvent(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Registration cancelled.")
		return nil
	},
}

func eventInputFromFlags(cmd *cobra.Command) (platform.EventInput, error) {
	var input platform.EventInput
	if err := applyEventFlags(cmd, &input); err != nil {
		return input, err
	}
	if input.Title == "" {
		return input, fmt.Errorf("--title is required")
	}
	if input.DtStart.IsZero() {
		return input, fmt.Errorf("--start is required")
	}
	if input.LocationText == "" {
		return input, fmt.Errorf("--location is required")
	}
	return input, nil
}

func applyEventFlags(cmd *cobra.Command, input *platform.EventInput) error {
	if v, _ := cmd.Flags().GetString("title"); v != "" {
		input.Title = v
	}
	if v, _ := cmd.Flags().GetString("description"); v != "" {
		input.Description = v
	}
	if v, _ := cmd.Flags().GetString("location"); v != "" {
		input.LocationText = v
	}
	if v, _ := cmd.Flags().GetString("start"); v != "" {
		ts, err := parseEventTime(v)
		if err != nil {
			return err
		}
		input.DtStart = ts
	}
	if cmd.Flags().Changed("max") {
		max, _ := cmd.Flags().GetInt("max")
		if max <= 0 {
			input.MaxParticipants = nil
		} else {
			input.MaxParticipants = &max
		}
	}
	if v, _ := cmd.Flags().GetString("tag-ids"); v != "" {
		input.TagIDs = nil
		for _, part := range strings.Split(v, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return fmt.Errorf("--tag-ids must be a comma-separated list of IDs")
			}
			input.TagIDs = append(input.TagIDs, id)
		}
	}
	return nil
}

func addEventFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Event title")
	cmd.Flags().String("description", "", "Event description")
	cmd.Flags().String("start", "", `Start time (RFC3339 or "2006-01-02 15:04")`)
	cmd.Flags().String("location", "", "Location")
	cmd.Flags().Int("max", 0, "Maximum participants (0 = unlimited)")
	cmd.Flags().String("tag-ids", "", "Comma-separated tag IDs")
}

func init() {
	eventsListCmd.Flags().String("tags", "", "Filter by comma-separated tag IDs")
	eventsListCmd.Flags().String("tag-names", "", "Filter by comma-separated tag names")
	addEventFlags(eventsCreateCmd)
	addEventFlags(eventsEditCmd)
	eventsUnregisterCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsShowCmd)
	eventsCmd.AddCommand(eventsCreateCmd)
	eventsCmd.AddCommand(eventsEditCmd)
	eventsCmd.AddCommand(eventsRegisterCmd)
	eventsCmd.AddCommand(eventsUnregisterCmd)

	rootCmd.AddCommand(eventsCmd)
}
