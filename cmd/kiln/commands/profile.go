package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage build profiles",
	}

	cmd.AddCommand(
		c.newProfileListCmd(),
		c.newProfileNewCmd(),
		&cobra.Command{
			Use:   "toggle <profile>",
			Short: "Flip a profile's active flag",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.ToggleProfile(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "import-symbols <profile>",
			Short: "Copy the current global define symbols into a profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.ImportSymbols(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "validate <profile>",
			Short: "Check that a profile's scenes resolve",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.ValidateProfile(cmd.Context(), args[0])
			},
		},
	)

	return cmd
}

func (c *CLI) newProfileListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List profiles, optionally filtered by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return c.app.ListProfiles(cmd.Context(), query, all)
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Include profiles hidden from discovery")
	return cmd
}

func (c *CLI) newProfileNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <path>",
		Short: "Create a profile asset with default settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			return c.app.NewProfile(cmd.Context(), args[0], name)
		},
	}
	cmd.Flags().StringP("name", "n", "", "Display name (defaults to the file name)")
	return cmd
}
