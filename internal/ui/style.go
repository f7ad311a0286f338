package ui

import (
	"github.com/fatih/color"
)

// Style holds common output styling for CLI commands.
type Style struct {
	Arrow *color.Color
	Path  *color.Color
	Warn  *color.Color
}

// NewStyle creates a new Style with standard colors.
// Colors are dropped when color.NoColor is set.
func NewStyle() *Style {
	return &Style{
		Arrow: color.New(color.FgYellow),
		Path:  color.New(color.FgCyan),
		Warn:  color.New(color.FgYellow, color.Bold),
	}
}
