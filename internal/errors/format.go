//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import (
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats errors for CLI output.
type Formatter struct {
	NoColor bool
	Writer  io.Writer

	// Colors
	errorColor    *color.Color
	codeColor     *color.Color
	resourceColor *color.Color
	hintColor     *color.Color
	expectedColor *color.Color
	gotColor      *color.Color
	dimColor      *color.Color
}

// NewFormatter creates a new Formatter.
func NewFormatter(w io.Writer, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		NoColor:       noColor,
		Writer:        w,
		errorColor:    color.New(color.FgRed, color.Bold),
		codeColor:     color.New(color.FgRed),
		resourceColor: color.New(color.FgCyan),
		hintColor:     color.New(color.FgGreen),
		expectedColor: color.New(color.FgYellow),
		gotColor:      color.New(color.FgRed),
		dimColor:      color.New(color.FgHiBlack),
	}
}

// formatErrorHeader writes the error header with code.
// Format: "Error [E301]: message" or "Error: message" if no code.
func (f *Formatter) formatErrorHeader(sb *strings.Builder, code Code, message string) {
	sb.WriteString(f.errorColor.Sprint("Error"))
	if code != "" {
		sb.WriteString(" ")
		sb.WriteString(f.codeColor.Sprintf("[%s]", code))
	}
	sb.WriteString(f.errorColor.Sprint(": "))
	sb.WriteString(message)
	sb.WriteString("\n")
}

// Format formats an error for CLI display.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	var configErr *ConfigError
	var installErr *InstallError
	var notFoundErr *SourceNotFoundError

	switch {
	case errors.As(err, &configErr):
		f.formatConfigError(&sb, configErr)
	case errors.As(err, &notFoundErr):
		f.formatSourceNotFoundError(&sb, notFoundErr)
	case errors.As(err, &installErr):
		f.formatInstallError(&sb, installErr)
	default:
		sb.WriteString(f.errorColor.Sprint("Error: "))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// Print writes the formatted error to the Formatter's writer.
func (f *Formatter) Print(err error) {
	if err == nil || f.Writer == nil {
		return
	}
	_, _ = io.WriteString(f.Writer, f.Format(err))
}

func (f *Formatter) formatConfigError(sb *strings.Builder, err *ConfigError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.Flag != "" {
		f.writeField(sb, "Flag:     ", f.resourceColor.Sprint("--"+err.Flag))
	}
	if len(err.Expected) > 0 {
		f.writeField(sb, "Expected: ", f.expectedColor.Sprint(strings.Join(err.Expected, ", ")))
	}
	f.writeField(sb, "Got:      ", f.gotColor.Sprintf("%q", err.Got))

	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatInstallError(sb *strings.Builder, err *InstallError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.Path != "" {
		f.writeField(sb, "Path:  ", f.resourceColor.Sprint(err.Path))
	}
	if err.Dest != "" {
		f.writeField(sb, "Dest:  ", f.resourceColor.Sprint(err.Dest))
	}

	f.formatCause(sb, &err.Base)
	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatSourceNotFoundError(sb *strings.Builder, err *SourceNotFoundError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.Root != "" {
		f.writeField(sb, "Root:     ", f.resourceColor.Sprint(err.Root))
	}
	if err.Dir != "" {
		f.writeField(sb, "Expected: ", f.expectedColor.Sprint(err.Dir))
	}

	f.formatHint(sb, &err.Base)
}

func (f *Formatter) writeField(sb *strings.Builder, label, value string) {
	sb.WriteString("  ")
	sb.WriteString(f.dimColor.Sprint(label))
	sb.WriteString(value)
	sb.WriteString("\n")
}

func (f *Formatter) formatCause(sb *strings.Builder, err *Error) {
	if err.Cause == nil {
		return
	}
	sb.WriteString("\n  ")
	sb.WriteString(f.dimColor.Sprint("Cause: "))
	sb.WriteString(err.Cause.Error())
	sb.WriteString("\n")
}

func (f *Formatter) formatHint(sb *strings.Builder, err *Error) {
	if err.Hint == "" {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(f.hintColor.Sprint("Hint: "))
	// Handle multi-line hints
	lines := strings.Split(err.Hint, "\n")
	sb.WriteString(lines[0])
	sb.WriteString("\n")
	for _, line := range lines[1:] {
		sb.WriteString("      ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
