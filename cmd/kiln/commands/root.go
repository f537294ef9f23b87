// Package commands implements the CLI commands for the kiln batch builder.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/build"
)

// CLI represents the command line interface for kiln.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	confirm ConfirmFunc
}

// Application represents the application logic interface.
type Application interface {
	RunBatch(ctx context.Context, identifiers []string) error
	History(ctx context.Context) error
	SetVerbose(verbose bool)

	ListCollections(ctx context.Context) error
	ShowCollection(ctx context.Context, identifier string) error
	NewCollection(ctx context.Context, path, name string) error
	AddToCollection(ctx context.Context, identifier string, profiles []string) error
	RemoveFromCollection(ctx context.Context, identifier string, position int) error
	PruneCollection(ctx context.Context, identifier string) error
	UseCollection(ctx context.Context, identifier string) error

	ListProfiles(ctx context.Context, query string, all bool) error
	NewProfile(ctx context.Context, path, name string) error
	ToggleProfile(ctx context.Context, identifier string) error
	ImportSymbols(ctx context.Context, identifier string) error
	ValidateProfile(ctx context.Context, identifier string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "kiln",
		Short:         "Batch builds of player build profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		a.SetVerbose(verbose)
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		confirm: promptConfirm,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCollectionCmd())
	rootCmd.AddCommand(c.newProfileCmd())
	rootCmd.AddCommand(c.newHistoryCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// WithConfirm replaces the interactive confirmation prompt.
func (c *CLI) WithConfirm(fn ConfirmFunc) *CLI {
	c.confirm = fn
	return c
}
