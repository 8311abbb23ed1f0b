package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studafishka/afishactl/internal/checkin"
	"github.com/studafishka/afishactl/internal/guard"
	"github.com/studafishka/afishactl/internal/tui"
)

var checkInCmd = &cobra.Command{
	Use:   "check-in <event-id> [code...]",
	Short: "Run attendance check-in for your event (organizers)",
	Long: `Run attendance check-in for an event you organize.

With no codes the interactive console opens: scan or paste registration
codes one at a time, Esc to finish. Codes may also be passed as arguments
or piped on stdin, one per line.

Examples:
  afishactl check-in 12
  afishactl check-in 12 550e8400-e29b-41d4-a716-446655440000
  cat codes.txt | afishactl check-in 12`,
	Args: cobra.MinimumNArgs(1),
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
			fmt.Sprintf("/events/%d/check-in", id), []guard.Role{guard.RoleOrganizer})
		if err != nil || !proceed {
			return err
		}

		event, err := rt.client.GetEvent(ctx, id)
		if err != nil {
			return err
		}

		processor := checkin.NewProcessor(rt.client, id)

		codes := args[1:]
		if len(codes) == 0 && stdinIsPiped() {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				codes = append(codes, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read codes from stdin: %w", err)
			}
		}

		w := cmd.OutOrStdout()
		if len(codes) > 0 {
			sum := processor.RunBatch(ctx, codes, func(s checkin.Status) {
				if s.OK() {
					fmt.Fprintln(w, tui.Success(s.Message))
				} else {
					fmt.Fprintln(w, tui.Failure(s.Code+": "+s.Message))
				}
			})
			fmt.Fprintf(w, "\nAccepted %d, rejected %d, invalid %d.\n",
				sum.Accepted, sum.Rejected, sum.Invalid)
			return nil
		}

		accepted, err := checkin.RunConsole(ctx, processor, event.Title)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Check-in finished: %d attendee(s) confirmed.\n", accepted)
		return nil
	},
}

// stdinIsPiped reports whether stdin carries piped data rather than a
// terminal, which selects batch mode over the interactive console.
func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func init() {
	rootCmd.AddCommand(checkInCmd)
}
