package cli

import (
	"github.com/spf13/cobra"

	apperrors "github.com/Binkle/DefaultApplication/internal/errors"
	"github.com/Binkle/DefaultApplication/internal/output"
	"github.com/Binkle/DefaultApplication/internal/picker"
	"github.com/Binkle/DefaultApplication/internal/workflow"
)

var addCmd = &cobra.Command{
	Use:     "add <extension>",
	Short:   "Track a new extension and pick its default application",
	GroupID: GroupAssociations,
	Args:    cobra.ExactArgs(1),
	Long: `Track a new file extension. The extension is registered first;
when registration succeeds an application chooser opens so a default
application can be bound in the same step.

Cancelling the chooser keeps the extension tracked without a binding.
Extensions may contain letters, digits, plus, and minus; a leading dot
and surrounding whitespace are stripped, and case is folded.`,
	Example: `  # Track .svg and choose its application
  defaultapp add svg

  # Track without opening the chooser
  defaultapp add svg --no-picker`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var chooser picker.Picker
		if noPicker, _ := cmd.Flags().GetBool("no-picker"); noPicker {
			chooser = picker.Cancelled{}
		}

		a, err := newApp(cmd, chooser)
		if err != nil {
			return err
		}

		if state := a.ctl.Check(cmd.Context()); state != workflow.PermissionGranted {
			return permissionFailure(a.ctl.Snapshot())
		}

		spin := a.spinner()
		spin.Start("Registering extension")
		res, addErr := a.ctl.AddExtension(cmd.Context(), args[0])
		spin.Stop()

		snap := a.ctl.Snapshot()
		if addErr != nil {
			if !res.Registered {
				if res.Extension == "" {
					return apperrors.NewInputError(
						snap.Err,
						"defaultapp add <extension>",
					)
				}
				return apperrors.NewAddError(snap.Err)
			}
			// Registration held; only the binding step failed.
			return modifyFailure(snap.Err)
		}

		output.PrintFeedback(cmd.OutOrStdout(), snap.Feedback, a.symbols)
		return nil
	},
}

func init() {
	addCmd.Flags().Bool("no-picker", false, "register the extension without choosing an application")
	rootCmd.AddCommand(addCmd)
}
