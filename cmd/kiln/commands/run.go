package commands

import (
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/core/domain"
)

// ConfirmPrompt is shown before a batch starts.
const ConfirmPrompt = "This process cannot be canceled. Proceed?"

// ConfirmFunc asks the operator a yes/no question.
type ConfirmFunc func(title string) (bool, error)

func promptConfirm(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Build").
		Negative("Cancel").
		Value(&ok).
		Run()
	return ok, err
}

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [collections...]",
		Short: "Build the active profiles of one or more collections",
		Long: "Build the active profiles of the given collections in order. " +
			"Without arguments the collections of the previous batch are built.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				ok, err := c.confirm(ConfirmPrompt)
				if err != nil {
					return err
				}
				if !ok {
					return domain.ErrAborted
				}
			}
			return c.app.RunBatch(cmd.Context(), args)
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
