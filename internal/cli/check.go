package cli

import (
	"github.com/spf13/cobra"

	"github.com/Binkle/DefaultApplication/internal/output"
	"github.com/Binkle/DefaultApplication/internal/workflow"
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Check whether Full Disk Access is granted",
	GroupID: GroupPermission,
	Long: `Check whether defaultapp has the Full Disk Access permission it
needs to read the LaunchServices registry.

Exits with code 2 when the permission is denied, so the command can gate
scripts.`,
	Example: `  # Probe the permission
  defaultapp check

  # Probe and jump to the right System Settings pane when denied
  defaultapp check --open-settings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, nil)
		if err != nil {
			return err
		}

		state := a.ctl.Check(cmd.Context())
		output.PrintPermission(cmd.OutOrStdout(), state, a.symbols)

		if state == workflow.PermissionGranted {
			return nil
		}

		if openSettings, _ := cmd.Flags().GetBool("open-settings"); openSettings {
			_ = a.ctl.RequestElevation(cmd.Context())
		}

		return permissionFailure(a.ctl.Snapshot())
	},
}

func init() {
	checkCmd.Flags().Bool("open-settings", false, "open the Full Disk Access pane in System Settings when denied")
	rootCmd.AddCommand(checkCmd)
}
