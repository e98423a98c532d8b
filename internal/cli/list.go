package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	apperrors "github.com/Binkle/DefaultApplication/internal/errors"
	"github.com/Binkle/DefaultApplication/internal/output"
	"github.com/Binkle/DefaultApplication/internal/workflow"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show the tracked extensions and their default applications",
	GroupID: GroupAssociations,
	Long: `Show every tracked extension with the application currently
registered to open it. Extensions are ordered by kind: images first, then
documents, media, web files, data files, and archives; unrecognized
extensions keep their relative order at the end.`,
	Example: `  # Human-readable table
  defaultapp list

  # Machine-readable output for scripting
  defaultapp list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, nil)
		if err != nil {
			return err
		}

		if state := a.ctl.Check(cmd.Context()); state != workflow.PermissionGranted {
			return permissionFailure(a.ctl.Snapshot())
		}

		asJSON, _ := cmd.Flags().GetBool("json")

		spin := a.spinner()
		if !asJSON {
			spin.Start("Loading associations")
		}
		refreshErr := a.ctl.Refresh(cmd.Context())
		spin.Stop()

		snap := a.ctl.Snapshot()
		if refreshErr != nil {
			return apperrors.NewListError(snap.Err)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snap.Associations)
		}

		output.PrintAssociations(cmd.OutOrStdout(), snap.Associations)
		return nil
	},
}

// permissionFailure converts a denied or failed permission check into the
// structured error the command should return.
func permissionFailure(snap workflow.Snapshot) error {
	msg := snap.Err
	if msg == "" {
		msg = snap.Feedback
	}
	if msg == "" {
		msg = "Full Disk Access is not granted"
	}
	return apperrors.NewPermissionError(msg)
}

func init() {
	listCmd.Flags().Bool("json", false, "emit the association list as JSON")
	rootCmd.AddCommand(listCmd)
}
