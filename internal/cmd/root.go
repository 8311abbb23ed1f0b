package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "afishactl",
	Short: "Terminal client for the StudAfishka campus-events platform",
	Long: `afishactl is the terminal client for the StudAfishka campus-events platform.

Students browse and search events and register for them; organizers create and
edit events and confirm attendance by scanning registration QR codes.

The session (access and refresh token) is stored in the state directory
(default ~/.afishactl) and is re-validated against the platform on every
invocation before any command runs.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
