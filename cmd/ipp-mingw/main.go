package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/terassyi/ippmingw/internal/errors"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		noColor := rootCfg.noColor || !isTerminal(os.Stderr)
		formatter := errors.NewFormatter(os.Stderr, noColor)
		formatter.Print(err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
