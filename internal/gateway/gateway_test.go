package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureText(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want string
	}{
		"nil error": {
			err:  nil,
			want: "",
		},
		"string payload passes through": {
			err:  &CommandError{Op: OpSetDefaultApplication, Payload: "Update failed: permission denied"},
			want: "Update failed: permission denied",
		},
		"structured payload serializes": {
			err:  &CommandError{Op: OpListAssociations, Payload: map[string]string{"code": "EIO"}},
			want: `{"code":"EIO"}`,
		},
		"error payload uses its message": {
			err:  &CommandError{Op: OpAddExtension, Payload: errors.New("registry unavailable")},
			want: "registry unavailable",
		},
		"underlying error when no payload": {
			err:  &CommandError{Op: OpQueryPermission, Err: errors.New("probe failed")},
			want: "probe failed",
		},
		"bare command error falls back to op": {
			err:  &CommandError{Op: OpQueryPermission},
			want: "queryPermission failed",
		},
		"plain error": {
			err:  errors.New("boom"),
			want: "boom",
		},
		"wrapped command error": {
			err:  fmt.Errorf("refresh: %w", &CommandError{Op: OpListAssociations, Payload: "registry busy"}),
			want: "registry busy",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FailureText(tt.err))
		})
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := &CommandError{Op: OpListAssociations, Err: inner}

	assert.ErrorIs(t, err, inner)
}

func TestScripted_PermissionAlwaysGranted(t *testing.T) {
	t.Parallel()

	granted, err := NewScripted().QueryPermission(context.Background())

	require.NoError(t, err)
	assert.True(t, granted)
}

func TestScripted_MutationsRefused(t *testing.T) {
	t.Parallel()

	s := NewScripted()

	err := s.SetDefaultApplication(context.Background(), "pdf", "/Applications/Preview.app")
	require.Error(t, err)
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, OpSetDefaultApplication, cmdErr.Op)

	assert.Error(t, s.OpenPermissionSettings(context.Background()))
}

func TestScripted_AddExtension(t *testing.T) {
	t.Parallel()

	s := NewScripted()

	list, err := s.AddExtension(context.Background(), " .SVG ")
	require.NoError(t, err)

	found := false
	for _, a := range list {
		if a.Extension == "svg" {
			found = true
		}
	}
	assert.True(t, found, "svg should appear in the updated list")

	// Adding again is a no-op, not a duplicate row.
	again, err := s.AddExtension(context.Background(), "svg")
	require.NoError(t, err)
	assert.Len(t, again, len(list))
}

func TestScripted_AddExtensionEmpty(t *testing.T) {
	t.Parallel()

	_, err := NewScripted().AddExtension(context.Background(), " . ")

	assert.Error(t, err)
}
