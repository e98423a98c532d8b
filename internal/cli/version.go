package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Binkle/DefaultApplication/internal/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Show the defaultapp version",
	GroupID: GroupConfiguration,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "defaultapp %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
