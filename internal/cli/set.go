package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Binkle/DefaultApplication/internal/assoc"
	apperrors "github.com/Binkle/DefaultApplication/internal/errors"
	"github.com/Binkle/DefaultApplication/internal/output"
	"github.com/Binkle/DefaultApplication/internal/picker"
	"github.com/Binkle/DefaultApplication/internal/workflow"
)

var setCmd = &cobra.Command{
	Use:     "set <extension> [application-path]",
	Short:   "Change the default application for an extension",
	GroupID: GroupAssociations,
	Args:    cobra.RangeArgs(1, 2),
	Long: `Change which application opens the given extension.

With only an extension, an application chooser opens in the configured
applications directory. With an explicit application path the chooser is
skipped; the path may be the .app bundle itself, a file inside it, or a
file:// URL.

Cancelling the chooser leaves everything unchanged and exits successfully.`,
	Example: `  # Pick the application interactively
  defaultapp set md

  # Bind directly, no chooser
  defaultapp set md /Applications/Typora.app
  defaultapp set md ~/Applications/Typora.app/Contents/MacOS/Typora`,
	RunE: func(cmd *cobra.Command, args []string) error {
		extension := assoc.NormalizeExtension(args[0])
		if extension == "" {
			return apperrors.NewInputError(
				"extension must not be empty",
				"defaultapp set <extension> [application-path]",
			)
		}

		var chooser picker.Picker
		if len(args) == 2 {
			chooser = picker.Static(args[1])
		}

		a, err := newApp(cmd, chooser)
		if err != nil {
			return err
		}

		if state := a.ctl.Check(cmd.Context()); state != workflow.PermissionGranted {
			return permissionFailure(a.ctl.Snapshot())
		}

		spin := a.spinner()
		spin.Start("Updating default application")
		modifyErr := a.ctl.Modify(cmd.Context(), extension)
		spin.Stop()

		snap := a.ctl.Snapshot()
		if modifyErr != nil {
			return modifyFailure(snap.Err)
		}

		// A cancelled chooser leaves both slots empty; stay quiet.
		output.PrintFeedback(cmd.OutOrStdout(), snap.Feedback, a.symbols)
		return nil
	},
}

// modifyFailure picks the error category from the failure text: chooser
// breakage gets picker remediation, everything else is an update failure.
func modifyFailure(msg string) error {
	if strings.HasPrefix(msg, "Application picker failed") {
		return apperrors.NewPickerError(msg)
	}
	return apperrors.NewModifyError(msg)
}

func init() {
	rootCmd.AddCommand(setCmd)
}
