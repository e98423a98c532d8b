package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsChecking(t *testing.T) {
	t.Parallel()

	c := New(&fakeGateway{}, &fakePicker{})

	snap := c.Snapshot()
	assert.Equal(t, PermissionChecking, snap.Permission)
	assert.Empty(t, snap.Associations)
	assert.False(t, snap.Loading)
}

func TestCheck_Granted(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{permission: true}
	c := New(gw, &fakePicker{})

	state := c.Check(context.Background())

	assert.Equal(t, PermissionGranted, state)
	snap := c.Snapshot()
	assert.Empty(t, snap.Err)
	assert.Empty(t, snap.Feedback)
	// Granted never chains a refresh by itself.
	assert.Zero(t, gw.listCalls)
}

func TestCheck_DeniedClearsFeedbackPreservesError(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{permission: false, openErr: nil}
	c := New(gw, &fakePicker{})

	// Seed a feedback message, then an explicit denial must clear it.
	require.NoError(t, c.RequestElevation(context.Background()))
	require.NotEmpty(t, c.Snapshot().Feedback)

	state := c.Check(context.Background())

	assert.Equal(t, PermissionDenied, state)
	snap := c.Snapshot()
	assert.Empty(t, snap.Feedback)
	assert.Empty(t, snap.Err)
	assert.Zero(t, gw.listCalls, "no automatic list refresh after denial")
}

func TestCheck_GatewayFailureLandsDeniedWithError(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{permissionErr: errors.New("probe failed")}
	c := New(gw, &fakePicker{})

	state := c.Check(context.Background())

	assert.Equal(t, PermissionDenied, state)
	snap := c.Snapshot()
	assert.Contains(t, snap.Err, "permission check failed")
	assert.Contains(t, snap.Err, "probe failed")
}

func TestCheck_DeniedPreservesExistingError(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{permissionErr: errors.New("probe failed")}
	c := New(gw, &fakePicker{})

	// First check fails and records an error.
	c.Check(context.Background())
	firstErr := c.Snapshot().Err
	require.NotEmpty(t, firstErr)

	// Second check resolves to an explicit denial; the error survives.
	gw.permissionErr = nil
	gw.permission = false
	state := c.Recheck(context.Background())

	assert.Equal(t, PermissionDenied, state)
	assert.Equal(t, firstErr, c.Snapshot().Err)
}

func TestRecheck_ReentersGranted(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{permission: false}
	c := New(gw, &fakePicker{})

	assert.Equal(t, PermissionDenied, c.Check(context.Background()))

	gw.permission = true
	assert.Equal(t, PermissionGranted, c.Recheck(context.Background()))

	gw.permission = false
	assert.Equal(t, PermissionDenied, c.Recheck(context.Background()))
}

func TestRequestElevation_Success(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	c := New(gw, &fakePicker{})

	err := c.RequestElevation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, gw.openCalls)
	snap := c.Snapshot()
	assert.Contains(t, snap.Feedback, "Full Disk Access")
	assert.Empty(t, snap.Err)
	// Permission state does not change.
	assert.Equal(t, PermissionChecking, snap.Permission)
}

func TestRequestElevation_Failure(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{openErr: errors.New("open failed")}
	c := New(gw, &fakePicker{})

	err := c.RequestElevation(context.Background())

	require.Error(t, err)
	snap := c.Snapshot()
	assert.Empty(t, snap.Feedback)
	assert.Contains(t, snap.Err, "manually")
	assert.Equal(t, PermissionChecking, snap.Permission)
}

func TestPermissionState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "checking", PermissionChecking.String())
	assert.Equal(t, "granted", PermissionGranted.String())
	assert.Equal(t, "denied", PermissionDenied.String())
	assert.Equal(t, "unknown", PermissionState(42).String())
}
