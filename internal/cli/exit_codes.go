package cli

import (
	stderrors "errors"

	apperrors "github.com/Binkle/DefaultApplication/internal/errors"
)

// Exit codes for the defaultapp CLI
// These codes support scripting and CI integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a command failed
	ExitFailure = 1

	// ExitPermissionDenied indicates Full Disk Access is not granted
	ExitPermissionDenied = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3
)

// ExitCode maps a command error to its process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cliErr *apperrors.CLIError
	if stderrors.As(err, &cliErr) {
		switch cliErr.Category {
		case apperrors.Permission:
			return ExitPermissionDenied
		case apperrors.Input:
			return ExitInvalidArguments
		}
	}
	return ExitFailure
}
