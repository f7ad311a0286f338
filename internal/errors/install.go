//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// Pipeline stages reported in InstallError.
const (
	StageLayout    = "layout"
	StageHeaders   = "headers"
	StageLibraries = "libraries"
	StagePatch     = "patch"
)

// InstallError represents a failed filesystem step of the install pipeline.
type InstallError struct {
	Base Error `json:"error"`

	// Stage is the pipeline stage that failed.
	Stage string `json:"stage,omitempty"`

	// Path is the file or directory being operated on.
	Path string `json:"path,omitempty"`

	// Dest is the destination path for copy failures.
	Dest string `json:"dest,omitempty"`
}

// NewInstallError creates an InstallError.
func NewInstallError(stage, path string, cause error) *InstallError {
	code := CodeInstallFailed
	if stage == StagePatch {
		code = CodePatchFailed
	}
	return &InstallError{
		Base: Error{
			Category: CategoryInstall,
			Code:     code,
			Message:  fmt.Sprintf("%s failed", stage),
			Cause:    cause,
		},
		Stage: stage,
		Path:  path,
	}
}

// WithDest sets the destination path.
func (e *InstallError) WithDest(dest string) *InstallError {
	e.Dest = dest
	return e
}

// WithHint sets the hint.
func (e *InstallError) WithHint(hint string) *InstallError {
	e.Base.Hint = hint
	return e
}

// Error implements the error interface for InstallError.
func (e *InstallError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error for InstallError.
func (e *InstallError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *InstallError) Is(target error) bool {
	t, ok := target.(*InstallError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}

// SourceNotFoundError reports a missing IPP installation.
type SourceNotFoundError struct {
	Base Error `json:"error"`

	// Root is the configured IPP installation root.
	Root string `json:"root,omitempty"`

	// Dir is the directory that was expected to exist.
	Dir string `json:"dir,omitempty"`
}

// NewSourceNotFoundError creates a SourceNotFoundError.
func NewSourceNotFoundError(root, dir string) *SourceNotFoundError {
	return &SourceNotFoundError{
		Base: Error{
			Category: CategoryInstall,
			Code:     CodeSourceNotFound,
			Message:  "IPP installation not found",
			Hint:     "Pass the IPP installation root with --path.",
		},
		Root: root,
		Dir:  dir,
	}
}

// Error implements the error interface for SourceNotFoundError.
func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("%s at %s", e.Base.Message, e.Root)
}

// Unwrap returns the underlying error for SourceNotFoundError.
func (e *SourceNotFoundError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *SourceNotFoundError) Is(target error) bool {
	t, ok := target.(*SourceNotFoundError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
