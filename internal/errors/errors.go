// Package errors provides structured error handling for the defaultapp CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Permission errors come from the disk-access permission workflow.
	Permission ErrorCategory = iota
	// Input errors are caused by invalid command input, such as an empty
	// extension.
	Input
	// List errors occur while fetching the association list.
	List
	// Modify errors occur while changing an existing default application.
	Modify
	// Add errors occur while registering a new extension.
	Add
	// Picker errors come from the application chooser failing (a cancelled
	// pick is not an error and never reaches this package).
	Picker
	// Configuration errors are caused by invalid or missing configuration.
	Configuration
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Permission:
		return "Permission Error"
	case Input:
		return "Input Error"
	case List:
		return "List Error"
	case Modify:
		return "Update Error"
	case Add:
		return "Add Error"
	case Picker:
		return "Picker Error"
	case Configuration:
		return "Configuration Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Permission, Input, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for input errors).
	Usage string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewPermissionError creates a permission error with the standard
// remediation steps for granting Full Disk Access.
func NewPermissionError(message string) *CLIError {
	return &CLIError{
		Category: Permission,
		Message:  message,
		Remediation: []string{
			"Run 'defaultapp check --open-settings' to open System Settings",
			"Enable this tool under Privacy & Security > Full Disk Access",
			"Run 'defaultapp check' again",
		},
	}
}

// NewInputError creates an input error with usage syntax.
func NewInputError(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Input,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewListError creates an error for a failed association listing.
func NewListError(message string) *CLIError {
	return &CLIError{
		Category: List,
		Message:  message,
		Remediation: []string{
			"Check that Full Disk Access is granted ('defaultapp check')",
			"Retry with 'defaultapp list'",
		},
	}
}

// NewModifyError creates an error for a failed default-application update.
func NewModifyError(message string) *CLIError {
	return &CLIError{
		Category: Modify,
		Message:  message,
		Remediation: []string{
			"Verify the selected application is a valid .app bundle",
			"Check that Full Disk Access is granted ('defaultapp check')",
		},
	}
}

// NewAddError creates an error for a failed extension registration.
func NewAddError(message string) *CLIError {
	return &CLIError{
		Category: Add,
		Message:  message,
		Remediation: []string{
			"Extensions may only contain letters, digits, '+' or '-'",
		},
	}
}

// NewPickerError creates an error for a failed application chooser.
func NewPickerError(message string) *CLIError {
	return &CLIError{
		Category: Picker,
		Message:  message,
		Remediation: []string{
			"Pass the application path directly: defaultapp set <ext> <path>",
		},
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap converts a plain error into a CLIError of the given category,
// passing an existing CLIError through unchanged.
func Wrap(err error, category ErrorCategory) *CLIError {
	if err == nil {
		return nil
	}
	if cliErr, ok := err.(*CLIError); ok {
		return cliErr
	}
	return &CLIError{
		Category: category,
		Message:  fmt.Sprintf("%v", err),
	}
}
