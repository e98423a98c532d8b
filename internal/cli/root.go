// Package cli defines the defaultapp command tree. Commands are thin: they
// load configuration, assemble the workflow controller, drive it, and
// render its snapshot. All association semantics live in internal/workflow.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	apperrors "github.com/Binkle/DefaultApplication/internal/errors"
)

// Command group IDs for help output.
const (
	GroupAssociations  = "associations"
	GroupPermission    = "permission"
	GroupConfiguration = "configuration"
)

var rootCmd = &cobra.Command{
	Use:   "defaultapp",
	Short: "Manage macOS default application associations",
	Long: `defaultapp manages which application opens each file extension.

It reads and edits the per-user LaunchServices registry, keeps its own
list of tracked extensions, and guides you through granting the Full
Disk Access permission the registry requires.`,
	Example: `  # Check Full Disk Access and show the association list
  defaultapp check
  defaultapp list

  # Change the default application for an extension
  defaultapp set md
  defaultapp set md /Applications/Typora.app

  # Track a new extension and pick its default application
  defaultapp add svg

  # Re-render the list whenever the registry changes
  defaultapp watch`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupAssociations, Title: "Association Commands:"},
		&cobra.Group{ID: GroupPermission, Title: "Permission Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration Commands:"},
	)

	rootCmd.PersistentFlags().String("config", "", "path to project config file (default .defaultapp/config.yml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("apps-dir", "", "directory the application chooser starts in")
	rootCmd.PersistentFlags().Bool("scripted", false, "use the platform-neutral gateway (no OS changes)")
	_ = rootCmd.PersistentFlags().MarkHidden("scripted")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	}
}

// Execute runs the root command until completion or SIGINT/SIGTERM.
// Structured CLI errors are rendered with their remediation steps;
// anything else is printed as a single line.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var cliErr *apperrors.CLIError
	if stderrors.As(err, &cliErr) {
		apperrors.FprintError(os.Stderr, cliErr)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
