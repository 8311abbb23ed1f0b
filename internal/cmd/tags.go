package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/studafishka/afishactl/internal/platform"
	"github.com/studafishka/afishactl/internal/tui"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Browse and manage event tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		tags, err := rt.client.ListTags(ctx)
		if err != nil {
			return err
		}
		return renderTags(cmd, tags)
	},
}

var tagsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		color, _ := cmd.Flags().GetString("color")
		tag, err := rt.client.CreateTag(ctx, args[0], color)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tui.Success(fmt.Sprintf("Tag %d created: %s", tag.ID, tag.Name)))
		return nil
	},
}

var tagsPopularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List the most used tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		tags, err := rt.client.PopularTags(ctx)
		if err != nil {
			return err
		}
		return renderTags(cmd, tags)
	},
}

func renderTags(cmd *cobra.Command, tags []platform.Tag) error {
	w := cmd.OutOrStdout()
	if len(tags) == 0 {
		fmt.Fprintln(w, "No tags.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOLOR")
	for _, t := range tags {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, t.Name, t.Color)
	}
	return tw.Flush()
}

func init() {
	tagsCreateCmd.Flags().String("color", "", "Tag color (hex, e.g. #ff8800)")

	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsCreateCmd)
	tagsCmd.AddCommand(tagsPopularCmd)

	rootCmd.AddCommand(tagsCmd)
}
