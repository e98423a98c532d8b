package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Binkle/DefaultApplication/internal/assoc"
	"github.com/Binkle/DefaultApplication/internal/gateway"
	"github.com/Binkle/DefaultApplication/internal/picker"
)

const (
	msgInvalidExtension = "invalid extension"

	listFailurePrefix   = "Failed to load associations: "
	addFailurePrefix    = "Add failed: "
	updateFailureLabel  = "Update failed: "
	pickerFailurePrefix = "Application picker failed: "
)

// AddResult is the two-phase outcome of AddExtension. Phase one registers
// the extension; phase two, attempted whenever phase one succeeds, lets the
// user bind a default application to it.
type AddResult struct {
	// Extension is the normalized extension the phases operated on.
	Extension string
	// Registered reports that phase one replaced the association list.
	Registered bool
	// PickerCancelled reports that the user backed out of phase two.
	PickerCancelled bool
	// DefaultSet reports that phase two bound an application.
	DefaultSet bool
}

// Refresh fetches the association list from the gateway, applies the
// ordering policy, and replaces the authoritative list atomically. On
// failure the previous list is left untouched. The loading flag is cleared
// on every exit path.
func (c *Controller) Refresh(ctx context.Context) error {
	c.setLoading(true)
	defer c.setLoading(false)

	c.mu.Lock()
	c.errMsg = ""
	c.mu.Unlock()

	list, err := c.gw.ListAssociations(ctx)
	if err != nil {
		msg := listFailurePrefix + gateway.FailureText(err)
		c.fail(msg)
		return errors.New(msg)
	}

	c.replaceAssociations(assoc.Sorted(list))
	return nil
}

// Modify lets the user pick an application for an existing extension and
// binds it through the gateway. Cancelling the picker returns silently:
// no error, no feedback, list untouched. A successful bind records a
// confirmation and triggers a refresh.
func (c *Controller) Modify(ctx context.Context, extension string) error {
	c.setLoading(true)
	defer c.setLoading(false)

	path, err := c.pk.Choose(ctx, picker.ApplicationBundle(c.appsDir))
	if errors.Is(err, picker.ErrCancelled) {
		return nil
	}
	if err != nil {
		msg := pickerFailurePrefix + err.Error()
		c.fail(msg)
		return errors.New(msg)
	}

	c.clearSlots()
	if err := c.gw.SetDefaultApplication(ctx, extension, path); err != nil {
		msg := updateFailureText(err)
		c.fail(msg)
		return errors.New(msg)
	}

	c.succeed(fmt.Sprintf("Default application updated for .%s", extension))
	return c.Refresh(ctx)
}

// AddExtension registers a new extension and then, as a second phase of
// the same user action, offers the picker so a default application can be
// bound immediately. If registration fails the picker phase is never
// attempted. The pending input is cleared only when registration succeeds.
func (c *Controller) AddExtension(ctx context.Context, raw string) (AddResult, error) {
	c.SetPendingInput(raw)

	normalized := assoc.NormalizeExtension(raw)
	res := AddResult{Extension: normalized}
	if normalized == "" {
		c.fail(msgInvalidExtension)
		return res, errors.New(msgInvalidExtension)
	}

	c.setLoading(true)
	defer c.setLoading(false)
	c.clearSlots()

	list, err := c.gw.AddExtension(ctx, normalized)
	if err != nil {
		msg := addFailurePrefix + gateway.FailureText(err)
		c.fail(msg)
		return res, errors.New(msg)
	}

	res.Registered = true
	c.mu.Lock()
	c.associations = assoc.Sorted(list)
	c.pending = ""
	c.feedback = fmt.Sprintf("Extension .%s added", normalized)
	c.errMsg = ""
	c.mu.Unlock()

	path, perr := c.pk.Choose(ctx, picker.ApplicationBundle(c.appsDir))
	switch {
	case errors.Is(perr, picker.ErrCancelled):
		res.PickerCancelled = true
		return res, nil
	case perr != nil:
		msg := pickerFailurePrefix + perr.Error()
		c.fail(msg)
		return res, errors.New(msg)
	}

	if err := c.gw.SetDefaultApplication(ctx, normalized, path); err != nil {
		msg := updateFailureText(err)
		c.fail(msg)
		return res, errors.New(msg)
	}

	res.DefaultSet = true
	c.succeed(fmt.Sprintf("Default application set for .%s", normalized))
	if err := c.Refresh(ctx); err != nil {
		return res, err
	}
	return res, nil
}

// updateFailureText applies the fixed failure-context label unless the
// gateway's text already describes itself as an update failure, so a
// payload like "Update failed: permission denied" is never double-prefixed.
func updateFailureText(err error) string {
	msg := gateway.FailureText(err)
	if strings.Contains(strings.ToLower(msg), "update failed") {
		return msg
	}
	return updateFailureLabel + msg
}
