package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/Binkle/DefaultApplication/internal/errors"
	"github.com/Binkle/DefaultApplication/internal/gateway/launchsvc"
	"github.com/Binkle/DefaultApplication/internal/output"
	"github.com/Binkle/DefaultApplication/internal/watch"
	"github.com/Binkle/DefaultApplication/internal/workflow"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Short:   "Re-render the association list whenever it changes",
	GroupID: GroupAssociations,
	Long: `Print the association list, then keep watching the LaunchServices
registry and the tracked-extension file and reprint on every change.
Bursts of writes are coalesced; tune the window with watch_debounce_ms.

Stop with Ctrl-C.`,
	Example: `  defaultapp watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, nil)
		if err != nil {
			return err
		}
		if a.cfg.Scripted || runtime.GOOS != "darwin" {
			return apperrors.NewConfigError(
				"watch mode needs the LaunchServices registry and is only available on macOS",
			)
		}

		if state := a.ctl.Check(cmd.Context()); state != workflow.PermissionGranted {
			return permissionFailure(a.ctl.Snapshot())
		}

		home, err := os.UserHomeDir()
		if err != nil {
			return apperrors.NewConfigError(err.Error())
		}

		debounce := time.Duration(a.cfg.WatchDebounceMS) * time.Millisecond
		watcher, err := watch.New(debounce, launchsvc.PlistPath(home), a.store.Path())
		if err != nil {
			return apperrors.NewConfigError(err.Error())
		}

		render := func() {
			if err := a.ctl.Refresh(cmd.Context()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", a.ctl.Snapshot().Err)
				return
			}
			output.PrintAssociations(cmd.OutOrStdout(), a.ctl.Snapshot().Associations)
		}

		render()
		runErr := watcher.Run(cmd.Context(), render, func(err error) {
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		})
		if errors.Is(runErr, context.Canceled) {
			return nil
		}
		return runErr
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
