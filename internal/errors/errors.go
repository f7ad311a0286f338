// Package errors provides structured error types for ipp-mingw.
// These errors carry context information that can be formatted
// for human-readable CLI output or machine-readable JSON.
//
//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

// Category represents the classification of an error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryInstall Category = "install"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Config errors (E2xx)
	CodeConfigInvalid Code = "E201"

	// Install errors (E3xx)
	CodeInstallFailed  Code = "E301"
	CodeSourceNotFound Code = "E303"
	CodePatchFailed    Code = "E304"
)

// Error is the base error type for ipp-mingw.
// It provides structured information that can be formatted for CLI output.
type Error struct {
	// Category classifies the error type.
	Category Category `json:"category"`

	// Code is a machine-readable error code.
	Code Code `json:"code,omitempty"`

	// Message is a short description of the error.
	Message string `json:"message"`

	// Hint provides actionable advice for the user.
	Hint string `json:"hint,omitempty"`

	// Cause is the underlying error.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}
