package commands

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (c *CLI) newCollectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collection",
		Aliases: []string{"col"},
		Short:   "Manage build collections",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all collections",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.ListCollections(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "show <collection>",
			Short: "Show a collection's entries",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.ShowCollection(cmd.Context(), args[0])
			},
		},
		c.newCollectionNewCmd(),
		&cobra.Command{
			Use:   "add <collection> [profiles...]",
			Short: "Append profiles to a collection, or an empty slot when none are given",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.AddToCollection(cmd.Context(), args[0], args[1:])
			},
		},
		&cobra.Command{
			Use:   "remove <collection> <position>",
			Short: "Remove the entry at a 1-based position",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				position, err := strconv.Atoi(args[1])
				if err != nil {
					return err
				}
				return c.app.RemoveFromCollection(cmd.Context(), args[0], position)
			},
		},
		&cobra.Command{
			Use:   "prune <collection>",
			Short: "Remove dangling and repeated entries",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.PruneCollection(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "use <collection>",
			Short: "Make a collection the default for run",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.UseCollection(cmd.Context(), args[0])
			},
		},
	)

	return cmd
}

func (c *CLI) newCollectionNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <path>",
		Short: "Create an empty collection asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			return c.app.NewCollection(cmd.Context(), args[0], name)
		},
	}
	cmd.Flags().StringP("name", "n", "", "Display name (defaults to the file name)")
	return cmd
}
