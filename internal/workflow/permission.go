package workflow

import (
	"context"
	"errors"

	"github.com/Binkle/DefaultApplication/internal/gateway"
)

const (
	msgPermissionCheckFailed = "permission check failed"
	msgGrantInstruction      = "Grant Full Disk Access in System Settings, then run the permission check again."
	msgSettingsOpenFailed    = "Could not open System Settings. Open Privacy & Security > Full Disk Access manually."
)

// Check queries the gateway for the disk-access permission and moves the
// state machine to Granted or Denied. A gateway failure lands in Denied
// with an error recorded, regardless of the true underlying permission;
// an explicit denial lands in Denied with stale feedback cleared and any
// existing error preserved.
func (c *Controller) Check(ctx context.Context) PermissionState {
	granted, err := c.gw.QueryPermission(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err != nil:
		c.permission = PermissionDenied
		c.feedback = ""
		c.errMsg = msgPermissionCheckFailed + ": " + gateway.FailureText(err)
	case granted:
		c.permission = PermissionGranted
		c.feedback = ""
		c.errMsg = ""
	default:
		c.permission = PermissionDenied
		c.feedback = ""
	}
	return c.permission
}

// Recheck re-runs the permission query. Granted and Denied are both
// re-enterable. It never chains a list refresh itself; the caller refreshes
// when the result is Granted, which keeps the two testable independently.
func (c *Controller) Recheck(ctx context.Context) PermissionState {
	return c.Check(ctx)
}

// RequestElevation asks the gateway to open the OS settings pane where the
// user can grant access. Fire and forget: the permission state does not
// change. Success leaves an instruction in the feedback slot; failure
// leaves a manual-navigation instruction in the error slot.
func (c *Controller) RequestElevation(ctx context.Context) error {
	err := c.gw.OpenPermissionSettings(ctx)
	if err != nil {
		c.fail(msgSettingsOpenFailed)
		return errors.New(msgSettingsOpenFailed)
	}
	c.succeed(msgGrantInstruction)
	return nil
}
