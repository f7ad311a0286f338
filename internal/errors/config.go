//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import (
	"fmt"
	"strings"
)

// ConfigError represents an invalid command-line setting.
type ConfigError struct {
	Base Error `json:"error"`

	// Flag is the flag name without dashes.
	Flag string `json:"flag,omitempty"`

	// Got is the rejected value.
	Got string `json:"got,omitempty"`

	// Expected lists the accepted values.
	Expected []string `json:"expected,omitempty"`
}

// NewFlagError creates a ConfigError for a flag value outside the accepted set.
func NewFlagError(flag, got string, expected ...string) *ConfigError {
	return &ConfigError{
		Base: Error{
			Category: CategoryConfig,
			Code:     CodeConfigInvalid,
			Message:  fmt.Sprintf("invalid value for --%s", flag),
			Hint:     fmt.Sprintf("Use one of: %s", strings.Join(expected, ", ")),
		},
		Flag:     flag,
		Got:      got,
		Expected: expected,
	}
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %q", e.Base.Error(), e.Got)
}

// Unwrap returns the underlying error for ConfigError.
func (e *ConfigError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
